package dex

import (
	"github.com/tatianab/pocket-battle/internal/pokemon"
	"github.com/tatianab/pocket-battle/internal/typechart"
)

// MoveDef is a move as written in a data pack.
type MoveDef struct {
	Name      string         `yaml:"name"`
	Type      typechart.Type `yaml:"type"`
	BasePower int            `yaml:"base_power"`
}

// SpeciesDef is a species as written in a data pack.
type SpeciesDef struct {
	Name      string         `yaml:"name"`
	Type      typechart.Type `yaml:"type"`
	BaseStats pokemon.Stats  `yaml:"base_stats"`
	Moves     []string       `yaml:"moves"` // names from the move table, at most 4
}

// Pack is a complete set of species and move definitions.
type Pack struct {
	Title       string       `yaml:"title"`
	Description string       `yaml:"description"`
	Species     []SpeciesDef `yaml:"-"`
	Moves       []MoveDef    `yaml:"-"`
}
