// Package dex loads species and move definitions and builds Pokémon from them.
//
// Definitions are validated once when a Dex is built, so the battle engine
// only ever sees well-formed data.
package dex

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/tatianab/pocket-battle/internal/pokemon"
	"github.com/tatianab/pocket-battle/internal/typechart"
)

// Rand picks random indexes. *rand.Rand from math/rand/v2 satisfies it.
type Rand interface {
	IntN(n int) int
}

// Dex is a validated, read-only index over a Pack.
type Dex struct {
	pack    *Pack
	species map[string]SpeciesDef
	moves   map[string]*pokemon.Move
	names   []string
}

// key normalizes a name for case-insensitive lookup. Casers are stateful, so
// one is made per call.
func key(name string) string {
	return cases.Fold().String(strings.TrimSpace(name))
}

func displayName(name string) string {
	return cases.Title(language.English).String(strings.TrimSpace(name))
}

// New validates pack and indexes it. Every problem found is reported.
func New(pack *Pack) (*Dex, error) {
	d := &Dex{
		pack:    pack,
		species: make(map[string]SpeciesDef),
		moves:   make(map[string]*pokemon.Move),
	}

	var errs []error
	for _, m := range pack.Moves {
		if m.Name == "" {
			errs = append(errs, errors.New("move with empty name"))
			continue
		}
		if _, err := typechart.ParseType(string(m.Type)); err != nil {
			errs = append(errs, fmt.Errorf("move %s: %w", m.Name, err))
		}
		if m.BasePower < 0 {
			errs = append(errs, fmt.Errorf("move %s: negative base power %d", m.Name, m.BasePower))
		}
		if _, ok := d.moves[key(m.Name)]; ok {
			errs = append(errs, fmt.Errorf("move %s defined twice", m.Name))
		}
		d.moves[key(m.Name)] = &pokemon.Move{Name: m.Name, Type: m.Type, BasePower: m.BasePower}
	}

	for _, s := range pack.Species {
		if s.Name == "" {
			errs = append(errs, errors.New("species with empty name"))
			continue
		}
		s.Name = displayName(s.Name)
		if err := d.validateSpecies(s); err != nil {
			errs = append(errs, err)
		}
		if _, ok := d.species[key(s.Name)]; ok {
			errs = append(errs, fmt.Errorf("species %s defined twice", s.Name))
			continue
		}
		d.species[key(s.Name)] = s
		d.names = append(d.names, s.Name)
	}

	if len(d.species) == 0 {
		errs = append(errs, errors.New("pack has no species"))
	}
	if err := errors.Join(errs...); err != nil {
		return nil, fmt.Errorf("invalid pack %q: %w", pack.Title, err)
	}

	sort.Strings(d.names)
	return d, nil
}

func (d *Dex) validateSpecies(s SpeciesDef) error {
	var errs []error
	if _, err := typechart.ParseType(string(s.Type)); err != nil {
		errs = append(errs, err)
	}
	b := s.BaseStats
	if b.Health <= 0 || b.Attack <= 0 || b.Defense <= 0 || b.Speed <= 0 {
		errs = append(errs, fmt.Errorf("base stats must be positive, got %+v", b))
	}
	if len(s.Moves) > pokemon.MaxMoves {
		errs = append(errs, fmt.Errorf("%d moves, at most %d allowed", len(s.Moves), pokemon.MaxMoves))
	}
	for _, name := range s.Moves {
		if _, ok := d.moves[key(name)]; !ok {
			errs = append(errs, fmt.Errorf("unknown move %q", name))
		}
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("species %s: %w", s.Name, err)
	}
	return nil
}

// Default builds a Dex from the embedded pack.
func Default() (*Dex, error) {
	pack, err := DefaultPack()
	if err != nil {
		return nil, err
	}
	return New(pack)
}

// Pack returns the definitions the Dex was built from.
func (d *Dex) Pack() *Pack { return d.pack }

// Names lists species names in alphabetical order.
func (d *Dex) Names() []string { return d.names }

// Species looks up a species case-insensitively.
func (d *Dex) Species(name string) (SpeciesDef, bool) {
	s, ok := d.species[key(name)]
	return s, ok
}

// Move looks up a move case-insensitively. The returned value is shared.
func (d *Dex) Move(name string) (*pokemon.Move, bool) {
	m, ok := d.moves[key(name)]
	return m, ok
}

// NewPokemon creates a fresh Pokémon of the named species at level.
func (d *Dex) NewPokemon(name string, level int) (*pokemon.Pokemon, error) {
	s, ok := d.Species(name)
	if !ok {
		return nil, fmt.Errorf("unknown species %q", name)
	}
	if level < 1 {
		return nil, fmt.Errorf("invalid level %d for %s", level, s.Name)
	}

	moves := make([]*pokemon.Move, 0, len(s.Moves))
	for _, mn := range s.Moves {
		m, _ := d.Move(mn)
		moves = append(moves, m)
	}
	return pokemon.New(s.Name, s.Type, s.BaseStats, level, moves), nil
}

// RandomSpecies picks a species name uniformly.
func (d *Dex) RandomSpecies(rng Rand) string {
	return d.names[rng.IntN(len(d.names))]
}
