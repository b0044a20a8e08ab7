package battle

import (
	"math"

	"github.com/tatianab/pocket-battle/internal/pokemon"
	"github.com/tatianab/pocket-battle/internal/typechart"
)

// DefaultPower is used when an attack has no move or a move without power.
const DefaultPower = 40

// ComputeDamage returns the damage an attack deals before it is clamped to the
// defender's remaining health. The pre-multiplier damage is never below 1, but
// a resisted hit may round down to 0. Defense below 1 is treated as 1.
func ComputeDamage(level, attack, defense, power int, multiplier float64) int {
	if power <= 0 {
		power = DefaultPower
	}
	defense = max(defense, 1)

	scaled := (2*float64(level)/5 + 2) * float64(power) * (float64(attack) / float64(defense))
	base := max(1, math.Floor(scaled/50+2))
	return int(math.Floor(base * multiplier))
}

// attackType is the elemental type of move, Normal when there is none.
func attackType(move *pokemon.Move) typechart.Type {
	if move == nil {
		return typechart.Normal
	}
	return move.Type
}

func attackPower(move *pokemon.Move) int {
	if move == nil {
		return DefaultPower
	}
	return move.BasePower
}

func moveName(move *pokemon.Move) string {
	if move == nil {
		return "attacked"
	}
	return move.Name
}
