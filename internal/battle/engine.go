// Package battle resolves turn-based battles between two Pokémon. The engine
// owns no rendering state: every message, animation and sound is requested
// from the Services it is given, and the engine waits for each request to
// complete before moving on.
package battle

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/tatianab/pocket-battle/internal/audio"
	"github.com/tatianab/pocket-battle/internal/pokemon"
	"github.com/tatianab/pocket-battle/internal/typechart"
)

// Phase is where the engine is within a round.
type Phase int

const (
	NotStarted Phase = iota
	FirstAttack
	SecondAttack
	RoundComplete
	Ended
)

func (p Phase) String() string {
	switch p {
	case NotStarted:
		return "NotStarted"
	case FirstAttack:
		return "FirstAttack"
	case SecondAttack:
		return "SecondAttack"
	case RoundComplete:
		return "RoundComplete"
	case Ended:
		return "Ended"
	}
	return fmt.Sprintf("Phase(%d)", int(p))
}

// Outcome is how a battle finished.
type Outcome int

const (
	Undecided Outcome = iota
	Won
	Lost
)

func (o Outcome) String() string {
	switch o {
	case Won:
		return "won"
	case Lost:
		return "lost"
	}
	return "undecided"
}

// Pacing holds the fixed durations used by the battle flow.
type Pacing struct {
	Announce      time.Duration
	Lunge         time.Duration
	FlashInterval time.Duration
	Flash         time.Duration
	Effectiveness time.Duration
	PlayerFaint   time.Duration
	OpponentFaint time.Duration
	Experience    time.Duration
	Status        time.Duration
}

// DefaultPacing is the standard battle rhythm.
var DefaultPacing = Pacing{
	Announce:      500 * time.Millisecond,
	Lunge:         100 * time.Millisecond,
	FlashInterval: 50 * time.Millisecond,
	Flash:         500 * time.Millisecond,
	Effectiveness: time.Second,
	PlayerFaint:   200 * time.Millisecond,
	OpponentFaint: 400 * time.Millisecond,
	Experience:    1500 * time.Millisecond,
	Status:        2 * time.Second,
}

// Hit records one resolved attack.
type Hit struct {
	Attacker   *pokemon.Pokemon
	Defender   *pokemon.Pokemon
	Move       *pokemon.Move
	Multiplier float64
	Damage     int // health actually removed
}

// Engine runs rounds between the player's Pokémon and an opponent.
type Engine struct {
	id       string
	player   *pokemon.Pokemon
	opponent *pokemon.Pokemon
	svc      Services
	rng      Rand
	ctx      context.Context
	log      *slog.Logger
	pacing   Pacing
	// offscreenY is where fainted Pokémon are tweened to.
	offscreenY float64

	phase   Phase
	round   int
	turn    Turn
	hits    []Hit
	outcome Outcome

	experience   int
	levelsGained int
}

// Option configures an Engine.
type Option func(*Engine)

// WithRand sets the random source for tie-breaks and the opponent's move.
func WithRand(rng Rand) Option {
	return func(e *Engine) { e.rng = rng }
}

// WithLogger sets the logger. The battle id is attached to every record.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) { e.log = l }
}

// WithContext sets the context passed to log records.
func WithContext(ctx context.Context) Option {
	return func(e *Engine) { e.ctx = ctx }
}

// WithPacing overrides DefaultPacing.
func WithPacing(p Pacing) Option {
	return func(e *Engine) { e.pacing = p }
}

// WithOffscreenY sets the Y coordinate fainted Pokémon slide to.
func WithOffscreenY(y float64) Option {
	return func(e *Engine) { e.offscreenY = y }
}

// NewEngine creates an engine for one encounter. It panics if either Pokémon
// or any service is missing.
func NewEngine(player, opponent *pokemon.Pokemon, svc Services, opts ...Option) *Engine {
	if player == nil || opponent == nil {
		panic("battle: both combatants are required")
	}
	svc.validate()

	e := &Engine{
		id:         uuid.NewString(),
		player:     player,
		opponent:   opponent,
		svc:        svc,
		rng:        globalRand{},
		ctx:        context.Background(),
		log:        slog.Default(),
		pacing:     DefaultPacing,
		offscreenY: 100,
	}
	for _, opt := range opts {
		opt(e)
	}
	e.log = e.log.With("battle", e.id)
	return e
}

func (e *Engine) ID() string                 { return e.id }
func (e *Engine) Phase() Phase               { return e.phase }
func (e *Engine) Round() int                 { return e.round }
func (e *Engine) Order() Turn                { return e.turn }
func (e *Engine) Outcome() Outcome           { return e.outcome }
func (e *Engine) Player() *pokemon.Pokemon   { return e.player }
func (e *Engine) Opponent() *pokemon.Pokemon { return e.opponent }

// Hits returns the attacks resolved in the current round.
func (e *Engine) Hits() []Hit { return e.hits }

// ExperienceEarned is the experience awarded on victory.
func (e *Engine) ExperienceEarned() int { return e.experience }

// LevelsGained is the number of level-ups applied on victory.
func (e *Engine) LevelsGained() int { return e.levelsGained }

// StartRound resolves one round with the player's chosen move. The opponent's
// move is picked at random. When the round completes the engine hands control
// back to the main menu; when either side faints the battle-end flow runs and
// the session is told to exit.
//
// Starting a round while one is in progress or after the battle ended panics.
func (e *Engine) StartRound(playerMove *pokemon.Move) {
	if e.phase != NotStarted && e.phase != RoundComplete {
		panic(fmt.Sprintf("battle: round started in phase %s", e.phase))
	}

	e.round++
	e.hits = nil
	opponentMove := ChooseMove(e.rng, e.opponent)
	e.turn = Order(e.player, playerMove, e.opponent, opponentMove, e.rng)
	e.phase = FirstAttack

	e.log.InfoContext(e.ctx, "round started",
		"round", e.round,
		"first", e.turn.First.Name, "firstMove", moveName(e.turn.FirstMove),
		"second", e.turn.Second.Name, "secondMove", moveName(e.turn.SecondMove),
	)

	round := Sequence(
		e.attack(e.turn.First, e.turn.Second, e.turn.FirstMove),
		e.checkpoint(SecondAttack),
		e.attack(e.turn.Second, e.turn.First, e.turn.SecondMove),
		e.checkpoint(RoundComplete),
	)
	round(e.svc.Session.PushMainMenu)
}

// attack announces the move, lunges the attacker, flashes the defender while
// damage resolves and finally reports the effectiveness.
func (e *Engine) attack(attacker, defender *pokemon.Pokemon, move *pokemon.Move) Step {
	multiplier := typechart.Multiplier(attackType(move), defender.Type)

	steps := []Step{
		e.show(fmt.Sprintf("%s used %s!", attacker.Name, moveName(move)), AutoAdvance(e.pacing.Announce)),
		e.tween(&attacker.Position, attacker.AttackPosition, e.pacing.Lunge),
		e.tween(&attacker.Position, attacker.BattlePosition, e.pacing.Lunge),
		e.inflictDamage(attacker, defender, move, multiplier),
	}
	if msg := typechart.Message(multiplier); msg != "" {
		steps = append(steps, e.show(msg, AutoAdvance(e.pacing.Effectiveness)))
	}
	return Sequence(steps...)
}

func (e *Engine) inflictDamage(attacker, defender *pokemon.Pokemon, move *pokemon.Move, multiplier float64) Step {
	return func(next func()) {
		e.svc.Audio.Play(typechart.SoundCue(multiplier))

		flash := func() {
			if defender.Alpha == 1 {
				defender.Alpha = 0.5
			} else {
				defender.Alpha = 1
			}
		}
		e.svc.Tasks.Repeat(flash, e.pacing.FlashInterval, e.pacing.Flash, func() {
			defender.Alpha = 1

			damage := ComputeDamage(attacker.Level, attacker.Attack, defender.Defense, attackPower(move), multiplier)
			applied := defender.TakeDamage(damage)
			e.hits = append(e.hits, Hit{
				Attacker:   attacker,
				Defender:   defender,
				Move:       move,
				Multiplier: multiplier,
				Damage:     applied,
			})

			e.log.DebugContext(e.ctx, "damage resolved",
				"attacker", attacker.Name, "defender", defender.Name,
				"move", moveName(move), "type", attackType(move),
				"multiplier", multiplier, "damage", applied,
				"health", defender.CurrentHealth,
			)
			next()
		})
	}
}

// checkpoint ends the battle if either side fainted; otherwise it enters phase
// and continues.
func (e *Engine) checkpoint(phase Phase) Step {
	return func(next func()) {
		var end Step
		switch {
		case e.player.Fainted():
			e.outcome = Lost
			end = e.defeat()
		case e.opponent.Fainted():
			e.outcome = Won
			end = e.victory()
		default:
			e.phase = phase
			next()
			return
		}

		e.phase = Ended
		e.log.InfoContext(e.ctx, "battle ended", "round", e.round, "outcome", e.outcome)
		end(e.svc.Session.ExitBattle)
	}
}

func (e *Engine) defeat() Step {
	return Sequence(
		e.play(audio.PokemonFaint),
		e.tween(&e.player.Position, pokemon.Point{X: e.player.Position.X, Y: e.offscreenY}, e.pacing.PlayerFaint),
		e.show(fmt.Sprintf("%s fainted!", e.player.Name), ManualAdvance),
	)
}

func (e *Engine) victory() Step {
	return Sequence(
		e.play(audio.PokemonFaint),
		e.tween(&e.opponent.Position, pokemon.Point{X: e.opponent.Position.X, Y: e.offscreenY}, e.pacing.OpponentFaint),
		do(func() {
			e.svc.Audio.Stop(audio.BattleLoop)
			e.svc.Audio.Play(audio.BattleVictory)
		}),
		e.show("You won!", ManualAdvance),
		e.awardExperience(),
		e.levelUp(),
	)
}

func (e *Engine) awardExperience() Step {
	return func(next func()) {
		e.experience = pokemon.ExperienceAward(e.opponent)
		e.player.AwardExperience(e.experience)
		e.svc.Audio.Play(audio.ExperienceGain)

		e.log.InfoContext(e.ctx, "experience awarded", "pokemon", e.player.Name, "experience", e.experience, "total", e.player.CurrentExperience)
		msg := fmt.Sprintf("%s earned %d experience points!", e.player.Name, e.experience)
		e.show(msg, AutoAdvance(e.pacing.Experience))(next)
	}
}

func (e *Engine) levelUp() Step {
	return func(next func()) {
		if !e.player.CanLevelUp() {
			next()
			return
		}

		e.svc.Audio.Play(audio.ExperienceFull)
		before := e.player.Stats
		e.levelsGained = e.player.ApplyLevelUps()
		after := e.player.Stats

		e.log.InfoContext(e.ctx, "level up", "pokemon", e.player.Name, "level", e.player.Level, "gained", e.levelsGained)
		Sequence(
			e.show(fmt.Sprintf("%s grew to LV. %d!", e.player.Name, e.player.Level), ManualAdvance),
			e.show(StatComparison(before, after), ManualAdvance),
		)(next)
	}
}

// StatComparison formats stats before and after a level-up.
func StatComparison(before, after pokemon.Stats) string {
	return fmt.Sprintf("Health: %d>%d  Attack: %d>%d\nDefense: %d>%d  Speed: %d>%d",
		before.Health, after.Health, before.Attack, after.Attack,
		before.Defense, after.Defense, before.Speed, after.Speed)
}

func (e *Engine) show(text string, advance Advance) Step {
	return func(next func()) {
		e.svc.Messages.Show(text, advance, next)
	}
}

func (e *Engine) tween(target *pokemon.Point, to pokemon.Point, d time.Duration) Step {
	return func(next func()) {
		e.svc.Animator.Tween(target, to, d, Linear, next)
	}
}

func (e *Engine) play(cue audio.Cue) Step {
	return do(func() { e.svc.Audio.Play(cue) })
}
