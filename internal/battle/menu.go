package battle

import (
	"time"

	"github.com/tatianab/pocket-battle/internal/audio"
	"github.com/tatianab/pocket-battle/internal/pokemon"
)

// MenuOption is an entry of the battle menu.
type MenuOption string

const (
	Fight  MenuOption = "FIGHT"
	Status MenuOption = "STATUS"
	Run    MenuOption = "RUN"
)

// MenuOptions lists the battle menu entries top to bottom.
var MenuOptions = []MenuOption{Fight, Status, Run}

// Menu is the FIGHT / STATUS / RUN menu shown between rounds.
type Menu struct {
	Messages MessageDisplay
	Session  SessionControl
	// StatusDelay is how long the status message stays up.
	StatusDelay time.Duration

	cursor int
}

// NewMenu returns a menu with the cursor on FIGHT.
func NewMenu(svc Services) *Menu {
	return &Menu{
		Messages:    svc.Messages,
		Session:     svc.Session,
		StatusDelay: DefaultPacing.Status,
	}
}

// Cursor is the highlighted option.
func (m *Menu) Cursor() MenuOption { return MenuOptions[m.cursor] }

func (m *Menu) Up() {
	if m.cursor > 0 {
		m.cursor--
	}
}

func (m *Menu) Down() {
	if m.cursor < len(MenuOptions)-1 {
		m.cursor++
	}
}

// Confirm selects the highlighted option.
func (m *Menu) Confirm() {
	m.Select(m.Cursor())
}

// Select performs option regardless of the cursor.
func (m *Menu) Select(option MenuOption) {
	switch option {
	case Fight:
		m.Session.PushMoveSelection()
	case Status:
		m.Messages.Show("You're doing great!", AutoAdvance(m.StatusDelay), func() {})
	case Run:
		m.Session.ExitBattle()
	}
}

// MoveGrid is the 2x2 move selection grid. Slots are laid out
//
//	0 1
//	2 3
type MoveGrid struct {
	pokemon  *pokemon.Pokemon
	audio    AudioCue
	selected int
}

// NewMoveGrid returns a grid over p's move slots with slot 0 selected.
func NewMoveGrid(p *pokemon.Pokemon, a AudioCue) *MoveGrid {
	return &MoveGrid{pokemon: p, audio: a}
}

// Selected is the highlighted slot index.
func (g *MoveGrid) Selected() int { return g.selected }

func (g *MoveGrid) Left() {
	g.audio.Play(audio.SelectionChoice)
	if g.selected%2 == 1 {
		g.selected--
	}
}

func (g *MoveGrid) Right() {
	g.audio.Play(audio.SelectionChoice)
	if g.selected%2 == 0 {
		g.selected++
	}
}

func (g *MoveGrid) Up() {
	g.audio.Play(audio.SelectionChoice)
	if g.selected >= 2 {
		g.selected -= 2
	}
}

func (g *MoveGrid) Down() {
	g.audio.Play(audio.SelectionChoice)
	if g.selected < 2 {
		g.selected += 2
	}
}

// Back plays the selection sound; the caller returns to the main menu.
func (g *MoveGrid) Back() {
	g.audio.Play(audio.SelectionChoice)
}

// Confirm returns the move in the selected slot. Empty slots cannot be chosen.
func (g *MoveGrid) Confirm() (*pokemon.Move, bool) {
	move := g.pokemon.Moves[g.selected]
	if move == nil {
		return nil, false
	}
	g.audio.Play(audio.SelectionMove)
	return move, true
}

// Labels returns the move names per slot, "-" for empty slots.
func (g *MoveGrid) Labels() [pokemon.MaxMoves]string {
	var labels [pokemon.MaxMoves]string
	for i, m := range g.pokemon.Moves {
		if m == nil {
			labels[i] = "-"
		} else {
			labels[i] = m.Name
		}
	}
	return labels
}
