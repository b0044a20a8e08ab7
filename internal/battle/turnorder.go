package battle

import (
	"math/rand/v2"

	"github.com/tatianab/pocket-battle/internal/pokemon"
)

// Rand is the random source used for tie-breaks and opponent move choice.
// *rand.Rand from math/rand/v2 satisfies it.
type Rand interface {
	IntN(n int) int
}

type globalRand struct{}

func (globalRand) IntN(n int) int { return rand.IntN(n) }

// Turn is the resolved attack order for one round.
type Turn struct {
	First      *pokemon.Pokemon
	FirstMove  *pokemon.Move
	Second     *pokemon.Pokemon
	SecondMove *pokemon.Move
}

// Order puts the faster Pokémon first. Equal speeds are decided by a coin flip.
func Order(player *pokemon.Pokemon, playerMove *pokemon.Move, opponent *pokemon.Pokemon, opponentMove *pokemon.Move, rng Rand) Turn {
	playerFirst := Turn{First: player, FirstMove: playerMove, Second: opponent, SecondMove: opponentMove}
	opponentFirst := Turn{First: opponent, FirstMove: opponentMove, Second: player, SecondMove: playerMove}

	switch {
	case player.Speed > opponent.Speed:
		return playerFirst
	case player.Speed < opponent.Speed:
		return opponentFirst
	case rng.IntN(2) == 0:
		return playerFirst
	default:
		return opponentFirst
	}
}

// ChooseMove picks one of p's moves uniformly at random, or nil if it knows
// none.
func ChooseMove(rng Rand, p *pokemon.Pokemon) *pokemon.Move {
	moves := p.MoveList()
	if len(moves) == 0 {
		return nil
	}
	return moves[rng.IntN(len(moves))]
}
