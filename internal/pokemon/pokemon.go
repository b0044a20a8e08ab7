// Package pokemon models battle participants: their stats, health, moves and
// experience progression. Values here are mutated only by the battle engine;
// presentation code may read them.
package pokemon

import (
	"fmt"

	"github.com/tatianab/pocket-battle/internal/typechart"
)

// MaxMoves is the number of move slots a Pokémon has.
const MaxMoves = 4

// Point is a screen position used as a tween target by presentation code.
type Point struct {
	X float64
	Y float64
}

// Move is an immutable attack definition shared by every Pokémon that knows it.
type Move struct {
	Name      string
	Type      typechart.Type
	BasePower int
}

// Stats is the set of level-dependent battle stats.
type Stats struct {
	Health  int
	Attack  int
	Defense int
	Speed   int
}

// Total sums all four stats.
func (s Stats) Total() int {
	return s.Health + s.Attack + s.Defense + s.Speed
}

// Pokemon is a battle participant.
type Pokemon struct {
	Name string
	Type typechart.Type

	// Base holds the species base stats that drive growth on level-up.
	Base Stats
	// Stats are the stats for the current level. Health is the maximum.
	Stats
	CurrentHealth int

	Level             int
	CurrentExperience int
	LevelExperience   int // threshold at the start of the current level
	TargetExperience  int // threshold for the next level

	Moves [MaxMoves]*Move

	Position       Point
	BattlePosition Point
	AttackPosition Point
	Alpha          float64
}

// New creates a Pokémon at full health with experience at the start of level.
// It panics if level is below 1 or more than MaxMoves moves are given.
func New(name string, typ typechart.Type, base Stats, level int, moves []*Move) *Pokemon {
	if level < 1 {
		panic(fmt.Sprintf("pokemon: %s created at level %d", name, level))
	}
	if len(moves) > MaxMoves {
		panic(fmt.Sprintf("pokemon: %s created with %d moves", name, len(moves)))
	}

	p := &Pokemon{
		Name:  name,
		Type:  typ,
		Base:  base,
		Level: level,
		Alpha: 1,
	}
	copy(p.Moves[:], moves)
	p.Stats = StatsAt(base, level)
	p.CurrentHealth = p.Health
	p.LevelExperience = ExperienceForLevel(level)
	p.TargetExperience = ExperienceForLevel(level + 1)
	p.CurrentExperience = p.LevelExperience
	return p
}

// StatsAt computes the stats a species with the given base stats has at level.
// Every stat is non-decreasing in level.
func StatsAt(base Stats, level int) Stats {
	scale := func(b int) int { return 2 * b * level / 100 }
	return Stats{
		Health:  scale(base.Health) + level + 10,
		Attack:  scale(base.Attack) + 5,
		Defense: scale(base.Defense) + 5,
		Speed:   scale(base.Speed) + 5,
	}
}

// SetPositions places the Pokémon at its battle position and records where it
// lunges to when attacking.
func (p *Pokemon) SetPositions(battle, attack Point) {
	p.BattlePosition = battle
	p.AttackPosition = attack
	p.Position = battle
}

// MoveList returns the filled move slots in order.
func (p *Pokemon) MoveList() []*Move {
	var moves []*Move
	for _, m := range p.Moves {
		if m != nil {
			moves = append(moves, m)
		}
	}
	return moves
}

// TakeDamage subtracts damage from the current health, flooring at zero, and
// returns the amount actually removed. Negative damage is a programming error.
func (p *Pokemon) TakeDamage(damage int) int {
	if damage < 0 {
		panic(fmt.Sprintf("pokemon: negative damage %d dealt to %s", damage, p.Name))
	}
	applied := min(damage, p.CurrentHealth)
	p.CurrentHealth -= applied
	return applied
}

// Heal restores the Pokémon to full health and opacity.
func (p *Pokemon) Heal() {
	p.CurrentHealth = p.Health
	p.Alpha = 1
}

// Fainted reports whether the Pokémon has no health left.
func (p *Pokemon) Fainted() bool {
	return p.CurrentHealth <= 0
}

func (p *Pokemon) String() string {
	return fmt.Sprintf("%s Lv%d %d/%d", p.Name, p.Level, p.CurrentHealth, p.Health)
}
