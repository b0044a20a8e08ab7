package battle

import (
	"time"

	"github.com/tatianab/pocket-battle/internal/audio"
	"github.com/tatianab/pocket-battle/internal/pokemon"
)

//go:generate go tool mockgen -destination=./mocks/services_mock.go -package=mocks . MessageDisplay,Animator,IntervalTask,AudioCue,SessionControl

// Advance controls how a message is dismissed. The zero value waits for the
// player.
type Advance struct {
	Delay time.Duration
}

// ManualAdvance waits for the player to dismiss the message.
var ManualAdvance = Advance{}

// AutoAdvance dismisses the message on its own after d.
func AutoAdvance(d time.Duration) Advance {
	return Advance{Delay: d}
}

// Manual reports whether the message waits for the player.
func (a Advance) Manual() bool {
	return a.Delay <= 0
}

// MessageDisplay presents battle text and calls onComplete once it has been
// dismissed.
type MessageDisplay interface {
	Show(text string, advance Advance, onComplete func())
}

// Easing maps linear progress in [0, 1] to eased progress.
type Easing func(t float64) float64

// Linear is the identity easing.
func Linear(t float64) float64 { return t }

// Animator moves a point to a destination over time and then calls onComplete.
type Animator interface {
	Tween(target *pokemon.Point, to pokemon.Point, duration time.Duration, ease Easing, onComplete func())
}

// IntervalTask invokes action every interval until total has elapsed, then
// calls onComplete.
type IntervalTask interface {
	Repeat(action func(), interval, total time.Duration, onComplete func())
}

// AudioCue plays and stops sounds. Both calls return immediately.
type AudioCue interface {
	Play(cue audio.Cue)
	Stop(cue audio.Cue)
}

// SessionControl hands control back to the screen hosting the battle.
type SessionControl interface {
	ExitBattle()
	PushMoveSelection()
	PushMainMenu()
}

// Services bundles the collaborators the engine drives.
type Services struct {
	Messages MessageDisplay
	Animator Animator
	Tasks    IntervalTask
	Audio    AudioCue
	Session  SessionControl
}

func (s Services) validate() {
	if s.Messages == nil || s.Animator == nil || s.Tasks == nil || s.Audio == nil || s.Session == nil {
		panic("battle: all services are required")
	}
}
