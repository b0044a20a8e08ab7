// Package headless implements the battle services without a screen. Every
// request completes immediately and is recorded in a transcript, which makes
// it suitable for simulations and tests.
package headless

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/tatianab/pocket-battle/internal/audio"
	"github.com/tatianab/pocket-battle/internal/battle"
	"github.com/tatianab/pocket-battle/internal/pokemon"
)

// Event kinds recorded in the transcript.
const (
	KindMessage = "message"
	KindTween   = "tween"
	KindRepeat  = "repeat"
	KindPlay    = "play"
	KindStop    = "stop"
	KindSession = "session"
)

// Event is one recorded service call.
type Event struct {
	Kind   string
	Detail string
}

func (e Event) String() string {
	return e.Kind + ": " + e.Detail
}

// Presenter satisfies every battle service interface.
type Presenter struct {
	Events []Event

	// Exited is set once the battle asked to leave.
	Exited bool
	// MainMenus counts how often control was handed back to the menu.
	MainMenus      int
	MoveSelections int

	log *slog.Logger
}

// New returns an empty presenter. A nil logger uses slog.Default.
func New(log *slog.Logger) *Presenter {
	if log == nil {
		log = slog.Default()
	}
	return &Presenter{log: log}
}

// Services exposes the presenter as a battle.Services bundle.
func (p *Presenter) Services() battle.Services {
	return battle.Services{
		Messages: p,
		Animator: p,
		Tasks:    p,
		Audio:    p,
		Session:  p,
	}
}

func (p *Presenter) record(kind, detail string) {
	p.Events = append(p.Events, Event{Kind: kind, Detail: detail})
	p.log.Debug("headless event", "kind", kind, "detail", detail)
}

// Messages returns the text of every message shown, in order.
func (p *Presenter) Messages() []string {
	var msgs []string
	for _, e := range p.Events {
		if e.Kind == KindMessage {
			msgs = append(msgs, e.Detail)
		}
	}
	return msgs
}

// Cues returns every cue played, in order.
func (p *Presenter) Cues() []audio.Cue {
	var cues []audio.Cue
	for _, e := range p.Events {
		if e.Kind == KindPlay {
			cues = append(cues, audio.Cue(e.Detail))
		}
	}
	return cues
}

// Reset clears the transcript and session counters.
func (p *Presenter) Reset() {
	p.Events = nil
	p.Exited = false
	p.MainMenus = 0
	p.MoveSelections = 0
}

func (p *Presenter) Show(text string, advance battle.Advance, onComplete func()) {
	p.record(KindMessage, text)
	onComplete()
}

// Tween jumps straight to the destination.
func (p *Presenter) Tween(target *pokemon.Point, to pokemon.Point, duration time.Duration, ease battle.Easing, onComplete func()) {
	p.record(KindTween, fmt.Sprintf("(%g,%g)->(%g,%g) %s", target.X, target.Y, to.X, to.Y, duration))
	*target = to
	onComplete()
}

// Repeat runs action once per elapsed interval.
func (p *Presenter) Repeat(action func(), interval, total time.Duration, onComplete func()) {
	n := 0
	if interval > 0 {
		for elapsed := interval; elapsed <= total; elapsed += interval {
			action()
			n++
		}
	}
	p.record(KindRepeat, fmt.Sprintf("%d times", n))
	onComplete()
}

func (p *Presenter) Play(cue audio.Cue) { p.record(KindPlay, string(cue)) }
func (p *Presenter) Stop(cue audio.Cue) { p.record(KindStop, string(cue)) }

func (p *Presenter) ExitBattle() {
	p.record(KindSession, "exit")
	p.Exited = true
}

func (p *Presenter) PushMoveSelection() {
	p.record(KindSession, "move-selection")
	p.MoveSelections++
}

func (p *Presenter) PushMainMenu() {
	p.record(KindSession, "main-menu")
	p.MainMenus++
}
