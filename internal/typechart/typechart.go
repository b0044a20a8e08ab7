// Package typechart holds the elemental type effectiveness table.
package typechart

import (
	"fmt"
	"strings"

	"github.com/tatianab/pocket-battle/internal/audio"
)

// Type is an elemental type. The set is closed; use ParseType to validate
// names coming from data files.
type Type string

const (
	Fire   Type = "Fire"
	Water  Type = "Water"
	Grass  Type = "Grass"
	Normal Type = "Normal"
)

// Types lists every known type in chart order.
var Types = []Type{Fire, Water, Grass, Normal}

// Damage multipliers the chart can produce.
const (
	SuperEffective   = 2.0
	Neutral          = 1.0
	NotVeryEffective = 0.5
)

// chart maps attacking type -> defending type -> multiplier.
// Pairs not listed are neutral.
var chart = map[Type]map[Type]float64{
	Fire: {
		Water: NotVeryEffective,
		Grass: SuperEffective,
	},
	Water: {
		Fire:  SuperEffective,
		Grass: NotVeryEffective,
	},
	Grass: {
		Fire:  NotVeryEffective,
		Water: SuperEffective,
	},
}

// ParseType matches name case-insensitively against the known types.
func ParseType(name string) (Type, error) {
	for _, t := range Types {
		if strings.EqualFold(string(t), strings.TrimSpace(name)) {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown type %q", name)
}

// UnmarshalText lets YAML and other text decoders validate type names.
func (t *Type) UnmarshalText(text []byte) error {
	parsed, err := ParseType(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Multiplier returns the damage multiplier for a move of type attack hitting
// a defender of type defend.
func Multiplier(attack, defend Type) float64 {
	if m, ok := chart[attack][defend]; ok {
		return m
	}
	return Neutral
}

// Message returns the effectiveness text for a multiplier, or "" when the hit
// is neutral.
func Message(multiplier float64) string {
	switch multiplier {
	case SuperEffective:
		return "It's super effective!"
	case NotVeryEffective:
		return "It's not very effective..."
	}
	return ""
}

// SoundCue returns the hit sound for a multiplier.
func SoundCue(multiplier float64) audio.Cue {
	switch multiplier {
	case SuperEffective:
		return audio.HitSuperEffective
	case NotVeryEffective:
		return audio.HitNotEffective
	}
	return audio.HitRegular
}
