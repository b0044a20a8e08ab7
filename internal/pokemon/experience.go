package pokemon

import "fmt"

// ExperienceForLevel is the total experience needed to reach level.
func ExperienceForLevel(level int) int {
	return level * level * level
}

// ExperienceAward is the experience earned for defeating p. It grows with
// both the defeated Pokémon's level and its stat total.
func ExperienceAward(defeated *Pokemon) int {
	return defeated.Stats.Total()*defeated.Level/7 + defeated.Level
}

// AwardExperience adds experience without leveling up; call ApplyLevelUps
// afterwards.
func (p *Pokemon) AwardExperience(amount int) {
	if amount < 0 {
		panic(fmt.Sprintf("pokemon: negative experience %d awarded to %s", amount, p.Name))
	}
	p.CurrentExperience += amount
}

// CanLevelUp reports whether the current experience has reached the next
// level's threshold.
func (p *Pokemon) CanLevelUp() bool {
	return p.CurrentExperience >= p.TargetExperience
}

// LevelUp advances exactly one level. Stats are recomputed from Base and the
// health gained is added to the current health. CurrentExperience is left
// untouched.
func (p *Pokemon) LevelUp() {
	p.Level++
	old := p.Stats
	p.Stats = StatsAt(p.Base, p.Level)
	p.CurrentHealth = min(p.Health, p.CurrentHealth+max(0, p.Health-old.Health))
	p.LevelExperience = ExperienceForLevel(p.Level)
	p.TargetExperience = ExperienceForLevel(p.Level + 1)
}

// ApplyLevelUps levels up for as long as the experience allows and returns the
// number of levels gained.
func (p *Pokemon) ApplyLevelUps() int {
	gained := 0
	for p.CanLevelUp() {
		p.LevelUp()
		gained++
	}
	return gained
}
