// Package audio names the sound cues the battle flow asks a player to play.
package audio

// Cue identifies a sound effect or music track.
type Cue string

const (
	HitSuperEffective Cue = "hit-super-effective"
	HitNotEffective   Cue = "hit-not-effective"
	HitRegular        Cue = "hit-regular"

	PokemonFaint   Cue = "pokemon-faint"
	BattleLoop     Cue = "battle-loop"
	BattleVictory  Cue = "battle-victory"
	ExperienceGain Cue = "experience-gain"
	ExperienceFull Cue = "experience-full"

	SelectionChoice Cue = "selection-choice"
	SelectionMove   Cue = "selection-move"
)
