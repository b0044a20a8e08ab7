package tui

import (
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tatianab/pocket-battle/internal/audio"
	"github.com/tatianab/pocket-battle/internal/battle"
	"github.com/tatianab/pocket-battle/internal/pokemon"
)

const frameRate = time.Second / 60

type screen int

const (
	screenTurn screen = iota
	screenMainMenu
	screenMoveMenu
	screenExited
)

type messageTimeoutMsg struct{ id int }

type frameMsg time.Time

type taskTickMsg struct{ id int }

type tween struct {
	target   *pokemon.Point
	from     pokemon.Point
	to       pokemon.Point
	start    time.Time
	duration time.Duration
	ease     battle.Easing
	done     func()
}

type intervalTask struct {
	id       int
	action   func()
	interval time.Duration
	elapsed  time.Duration
	total    time.Duration
	done     func()
}

// presenter implements the battle services on top of the bubbletea update
// loop. Requests queue commands; completions are delivered as messages that
// model.Update routes back here, so every callback runs on the update
// goroutine.
type presenter struct {
	log *slog.Logger
	now func() time.Time

	screen screen

	message   string
	manual    bool
	onDismiss func()
	autoID    int
	onTimeout func()
	history   []string

	tweens  []*tween
	framing bool

	tasks map[int]*intervalTask

	nowPlaying audio.Cue
	looping    bool

	nextID int
	cmds   []tea.Cmd
}

func newPresenter(log *slog.Logger) *presenter {
	return &presenter{
		log:   log,
		now:   time.Now,
		tasks: make(map[int]*intervalTask),
	}
}

func (p *presenter) services() battle.Services {
	return battle.Services{
		Messages: p,
		Animator: p,
		Tasks:    p,
		Audio:    p,
		Session:  p,
	}
}

func (p *presenter) queue(cmd tea.Cmd) {
	p.cmds = append(p.cmds, cmd)
}

// drain returns and clears the queued commands.
func (p *presenter) drain() tea.Cmd {
	cmds := p.cmds
	p.cmds = nil
	return tea.Batch(cmds...)
}

func (p *presenter) id() int {
	p.nextID++
	return p.nextID
}

// busy reports whether a message is on screen and input should wait.
func (p *presenter) busy() bool {
	return p.message != ""
}

func (p *presenter) Show(text string, advance battle.Advance, onComplete func()) {
	p.message = text
	p.history = append(p.history, text)
	p.log.Debug("message", "text", text, "manual", advance.Manual())

	if advance.Manual() {
		p.manual = true
		p.onDismiss = onComplete
		return
	}

	id := p.id()
	p.manual = false
	p.autoID = id
	p.onTimeout = onComplete
	p.queue(tea.Tick(advance.Delay, func(time.Time) tea.Msg {
		return messageTimeoutMsg{id: id}
	}))
}

// dismiss closes a manual message.
func (p *presenter) dismiss() {
	if !p.manual || p.onDismiss == nil {
		return
	}
	done := p.onDismiss
	p.onDismiss = nil
	p.manual = false
	p.message = ""
	done()
}

func (p *presenter) handleTimeout(msg messageTimeoutMsg) {
	if msg.id != p.autoID || p.onTimeout == nil {
		return
	}
	done := p.onTimeout
	p.onTimeout = nil
	p.message = ""
	done()
}

func (p *presenter) Tween(target *pokemon.Point, to pokemon.Point, duration time.Duration, ease battle.Easing, onComplete func()) {
	p.tweens = append(p.tweens, &tween{
		target:   target,
		from:     *target,
		to:       to,
		start:    p.now(),
		duration: duration,
		ease:     ease,
		done:     onComplete,
	})
	p.ensureFrames()
}

func (p *presenter) ensureFrames() {
	if p.framing {
		return
	}
	p.framing = true
	p.queue(tea.Tick(frameRate, func(t time.Time) tea.Msg {
		return frameMsg(t)
	}))
}

func (p *presenter) handleFrame(now time.Time) {
	p.framing = false

	active := p.tweens
	p.tweens = nil
	var finished []*tween
	for _, tw := range active {
		progress := 1.0
		if tw.duration > 0 {
			progress = min(1, float64(now.Sub(tw.start))/float64(tw.duration))
		}
		eased := tw.ease(progress)
		tw.target.X = tw.from.X + (tw.to.X-tw.from.X)*eased
		tw.target.Y = tw.from.Y + (tw.to.Y-tw.from.Y)*eased

		if progress >= 1 {
			*tw.target = tw.to
			finished = append(finished, tw)
		} else {
			p.tweens = append(p.tweens, tw)
		}
	}

	for _, tw := range finished {
		tw.done()
	}
	if len(p.tweens) > 0 {
		p.ensureFrames()
	}
}

func (p *presenter) Repeat(action func(), interval, total time.Duration, onComplete func()) {
	task := &intervalTask{
		id:       p.id(),
		action:   action,
		interval: interval,
		total:    total,
		done:     onComplete,
	}
	p.tasks[task.id] = task
	p.scheduleTask(task)
}

func (p *presenter) scheduleTask(task *intervalTask) {
	id := task.id
	p.queue(tea.Tick(task.interval, func(time.Time) tea.Msg {
		return taskTickMsg{id: id}
	}))
}

func (p *presenter) handleTaskTick(msg taskTickMsg) {
	task, ok := p.tasks[msg.id]
	if !ok {
		return
	}
	task.action()
	task.elapsed += task.interval
	if task.elapsed >= task.total || task.interval <= 0 {
		delete(p.tasks, task.id)
		task.done()
		return
	}
	p.scheduleTask(task)
}

// The terminal has no mixer; cues are shown in the status line instead.

func (p *presenter) Play(cue audio.Cue) {
	p.nowPlaying = cue
	if cue == audio.BattleLoop {
		p.looping = true
	}
	p.log.Debug("play", "cue", cue)
}

func (p *presenter) Stop(cue audio.Cue) {
	if cue == audio.BattleLoop {
		p.looping = false
	}
	if p.nowPlaying == cue {
		p.nowPlaying = ""
	}
	p.log.Debug("stop", "cue", cue)
}

func (p *presenter) ExitBattle()        { p.screen = screenExited }
func (p *presenter) PushMoveSelection() { p.screen = screenMoveMenu }
func (p *presenter) PushMainMenu()      { p.screen = screenMainMenu }
