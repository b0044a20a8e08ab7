package battle_test

import (
	"context"
	"io"
	"log/slog"
	"math/rand/v2"
	"slices"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/tatianab/pocket-battle/internal/audio"
	"github.com/tatianab/pocket-battle/internal/battle"
	"github.com/tatianab/pocket-battle/internal/battle/mocks"
	"github.com/tatianab/pocket-battle/internal/headless"
	"github.com/tatianab/pocket-battle/internal/pokemon"
	"github.com/tatianab/pocket-battle/internal/typechart"
	"go.uber.org/mock/gomock"
)

var quiet = slog.New(slog.NewTextHandler(io.Discard, nil))

var (
	ember  = &pokemon.Move{Name: "Ember", Type: typechart.Fire, BasePower: 40}
	tackle = &pokemon.Move{Name: "Tackle", Type: typechart.Normal, BasePower: 40}
)

// newPlayer is level 5, speed 12, attack 20, defense 15, health 40/40. Base is
// chosen so StatsAt(Base, 5) reproduces those stats.
func newPlayer() *pokemon.Pokemon {
	p := &pokemon.Pokemon{
		Name:              "Charmander",
		Type:              typechart.Fire,
		Base:              pokemon.Stats{Health: 250, Attack: 150, Defense: 100, Speed: 70},
		Stats:             pokemon.Stats{Health: 40, Attack: 20, Defense: 15, Speed: 12},
		CurrentHealth:     40,
		Level:             5,
		CurrentExperience: 125,
		LevelExperience:   125,
		TargetExperience:  216,
		Alpha:             1,
	}
	p.Moves[0] = ember
	p.Moves[1] = tackle
	p.SetPositions(pokemon.Point{X: 2, Y: 10}, pokemon.Point{X: 6, Y: 10})
	return p
}

// newOpponent is a Grass type with speed 8, defense 12, health 30/30.
func newOpponent() *pokemon.Pokemon {
	p := &pokemon.Pokemon{
		Name:              "Oddish",
		Type:              typechart.Grass,
		Base:              pokemon.Stats{Health: 150, Attack: 50, Defense: 70, Speed: 30},
		Stats:             pokemon.Stats{Health: 30, Attack: 10, Defense: 12, Speed: 8},
		CurrentHealth:     30,
		Level:             5,
		CurrentExperience: 125,
		LevelExperience:   125,
		TargetExperience:  216,
		Alpha:             1,
	}
	p.Moves[0] = tackle
	p.SetPositions(pokemon.Point{X: 30, Y: 2}, pokemon.Point{X: 26, Y: 2})
	return p
}

func newEngine(player, opponent *pokemon.Pokemon, svc battle.Services) *battle.Engine {
	return battle.NewEngine(player, opponent, svc,
		battle.WithRand(rand.New(rand.NewPCG(1, 2))),
		battle.WithLogger(quiet),
		battle.WithOffscreenY(24),
	)
}

func TestRoundPlayerFasterAttacksFirst(t *testing.T) {
	player, opponent := newPlayer(), newOpponent()
	p := headless.New(quiet)
	eng := newEngine(player, opponent, p.Services())

	eng.StartRound(ember)

	// floor(floor(((2*5/5+2)*40*(20/12))/50+2)*2)
	if opponent.CurrentHealth != 30-14 {
		t.Errorf("opponent health = %d, want 16", opponent.CurrentHealth)
	}
	// floor(((2*5/5+2)*40*(10/15))/50+2)
	if player.CurrentHealth != 40-4 {
		t.Errorf("player health = %d, want 36", player.CurrentHealth)
	}

	hits := eng.Hits()
	if len(hits) != 2 {
		t.Fatalf("expected 2 hits, got %d", len(hits))
	}
	if hits[0].Attacker != player || hits[0].Defender != opponent || hits[0].Move != ember {
		t.Errorf("first hit was %s -> %s", hits[0].Attacker.Name, hits[0].Defender.Name)
	}
	if hits[0].Multiplier != 2 || hits[0].Damage != 14 {
		t.Errorf("first hit multiplier %v damage %d", hits[0].Multiplier, hits[0].Damage)
	}

	want := []string{"Charmander used Ember!", "It's super effective!", "Oddish used Tackle!"}
	if got := p.Messages(); !slices.Equal(got, want) {
		t.Errorf("messages = %q, want %q", got, want)
	}
	if eng.Phase() != battle.RoundComplete {
		t.Errorf("phase = %s, want RoundComplete", eng.Phase())
	}
	if p.MainMenus != 1 || p.Exited {
		t.Errorf("expected control back at the main menu, got menus=%d exited=%v", p.MainMenus, p.Exited)
	}
	if player.Position != player.BattlePosition || opponent.Position != opponent.BattlePosition {
		t.Error("attackers did not return to their battle positions")
	}
	if opponent.Alpha != 1 || player.Alpha != 1 {
		t.Error("alpha not restored after flashing")
	}
}

func TestRoundOpponentFasterAttacksFirst(t *testing.T) {
	player, opponent := newPlayer(), newOpponent()
	opponent.Speed = 20
	p := headless.New(quiet)
	eng := newEngine(player, opponent, p.Services())

	eng.StartRound(tackle)

	if got := eng.Order().First; got != opponent {
		t.Fatalf("first actor = %s, want Oddish", got.Name)
	}
	if msgs := p.Messages(); msgs[0] != "Oddish used Tackle!" {
		t.Errorf("first message = %q", msgs[0])
	}
}

func TestRoundsCanRepeat(t *testing.T) {
	player, opponent := newPlayer(), newOpponent()
	p := headless.New(quiet)
	eng := newEngine(player, opponent, p.Services())

	eng.StartRound(tackle)
	eng.StartRound(tackle)

	if eng.Round() != 2 {
		t.Errorf("round = %d, want 2", eng.Round())
	}
	if p.MainMenus != 2 {
		t.Errorf("main menu pushed %d times, want 2", p.MainMenus)
	}
	if len(eng.Hits()) != 2 {
		t.Errorf("hits are per round, got %d", len(eng.Hits()))
	}
}

func TestVictorySkipsSecondAttack(t *testing.T) {
	player, opponent := newPlayer(), newOpponent()
	opponent.CurrentHealth = 10
	p := headless.New(quiet)
	eng := newEngine(player, opponent, p.Services())

	eng.StartRound(ember)

	if eng.Phase() != battle.Ended || eng.Outcome() != battle.Won {
		t.Fatalf("phase %s outcome %s, want Ended/won", eng.Phase(), eng.Outcome())
	}
	if opponent.CurrentHealth != 0 {
		t.Errorf("opponent health = %d, want 0", opponent.CurrentHealth)
	}
	if player.CurrentHealth != 40 {
		t.Errorf("player was hit after the opponent fainted: %d", player.CurrentHealth)
	}
	if eng.Hits()[0].Damage != 10 {
		t.Errorf("applied damage = %d, want clamp to 10", eng.Hits()[0].Damage)
	}

	award := pokemon.ExperienceAward(opponent)
	want := []string{
		"Charmander used Ember!",
		"It's super effective!",
		"You won!",
		"Charmander earned " + strconv.Itoa(award) + " experience points!",
	}
	if got := p.Messages(); !slices.Equal(got, want) {
		t.Errorf("messages = %q, want %q", got, want)
	}
	if eng.ExperienceEarned() != award || player.CurrentExperience != 125+award {
		t.Errorf("experience earned %d, player now %d", eng.ExperienceEarned(), player.CurrentExperience)
	}

	wantCues := []audio.Cue{audio.HitSuperEffective, audio.PokemonFaint, audio.BattleVictory, audio.ExperienceGain}
	if got := p.Cues(); !slices.Equal(got, wantCues) {
		t.Errorf("cues = %v, want %v", got, wantCues)
	}
	if !slices.Contains(p.Events, headless.Event{Kind: headless.KindStop, Detail: string(audio.BattleLoop)}) {
		t.Error("battle loop was not stopped")
	}
	if opponent.Position.Y != 24 {
		t.Errorf("opponent not moved off-screen: %+v", opponent.Position)
	}
	if !p.Exited || p.MainMenus != 0 {
		t.Errorf("exited=%v menus=%d, want exit only", p.Exited, p.MainMenus)
	}
}

func TestVictoryWithLevelUps(t *testing.T) {
	player, opponent := newPlayer(), newOpponent()
	opponent.CurrentHealth = 1
	// The award lands exactly on the level 7 threshold.
	player.CurrentExperience = 343 - pokemon.ExperienceAward(opponent)
	before := player.Stats
	p := headless.New(quiet)
	eng := newEngine(player, opponent, p.Services())

	eng.StartRound(ember)

	if eng.LevelsGained() != 2 || player.Level != 7 {
		t.Fatalf("levels gained %d, level %d, want 2 and 7", eng.LevelsGained(), player.Level)
	}
	if player.CurrentExperience != 343 {
		t.Errorf("current experience = %d, want 343", player.CurrentExperience)
	}

	msgs := p.Messages()
	if len(msgs) < 2 {
		t.Fatalf("too few messages: %q", msgs)
	}
	if got := msgs[len(msgs)-2]; got != "Charmander grew to LV. 7!" {
		t.Errorf("level message = %q", got)
	}
	if got, want := msgs[len(msgs)-1], battle.StatComparison(before, player.Stats); got != want {
		t.Errorf("stat comparison = %q, want %q", got, want)
	}
	if cues := p.Cues(); cues[len(cues)-1] != audio.ExperienceFull {
		t.Errorf("last cue = %s, want experience-full", cues[len(cues)-1])
	}
	if !p.Exited {
		t.Error("battle did not exit")
	}
}

func TestDefeat(t *testing.T) {
	player, opponent := newPlayer(), newOpponent()
	player.CurrentHealth = 3
	p := headless.New(quiet)
	eng := newEngine(player, opponent, p.Services())

	eng.StartRound(tackle)

	if eng.Outcome() != battle.Lost || eng.Phase() != battle.Ended {
		t.Fatalf("outcome %s phase %s", eng.Outcome(), eng.Phase())
	}
	msgs := p.Messages()
	if got := msgs[len(msgs)-1]; got != "Charmander fainted!" {
		t.Errorf("last message = %q", got)
	}
	for _, m := range msgs {
		if strings.Contains(m, "experience") {
			t.Errorf("experience awarded on defeat: %q", m)
		}
	}
	if player.CurrentExperience != 125 {
		t.Errorf("experience changed to %d", player.CurrentExperience)
	}
	if player.Position.Y != 24 {
		t.Errorf("player not moved off-screen: %+v", player.Position)
	}
	if !p.Exited {
		t.Error("battle did not exit")
	}
}

func TestOpponentWithoutMovesUsesDefaultAttack(t *testing.T) {
	player, opponent := newPlayer(), newOpponent()
	opponent.Moves = [pokemon.MaxMoves]*pokemon.Move{}
	p := headless.New(quiet)
	eng := newEngine(player, opponent, p.Services())

	eng.StartRound(tackle)

	if got := p.Messages()[1]; got != "Oddish used attacked!" {
		t.Errorf("fallback announcement = %q", got)
	}
	hit := eng.Hits()[1]
	if hit.Move != nil || hit.Multiplier != 1 {
		t.Errorf("fallback hit move %v multiplier %v", hit.Move, hit.Multiplier)
	}
	if want := battle.ComputeDamage(5, 10, 15, battle.DefaultPower, 1); hit.Damage != want {
		t.Errorf("fallback damage = %d, want %d", hit.Damage, want)
	}
}

func TestStartRoundAfterEndPanics(t *testing.T) {
	player, opponent := newPlayer(), newOpponent()
	opponent.CurrentHealth = 1
	eng := newEngine(player, opponent, headless.New(quiet).Services())
	eng.StartRound(ember)

	defer func() {
		if recover() == nil {
			t.Error("expected panic when starting a round after the battle ended")
		}
	}()
	eng.StartRound(ember)
}

func TestNewEnginePanicsWithoutCombatant(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for missing opponent")
		}
	}()
	battle.NewEngine(newPlayer(), nil, headless.New(quiet).Services())
}

// TestAttackStepOrder drives one neutral round through mocks and checks every
// collaborator call happens strictly after the previous one completed.
func TestAttackStepOrder(t *testing.T) {
	ctrl := gomock.NewController(t)

	player, opponent := newPlayer(), newOpponent()
	opponent.Type = typechart.Normal

	msgs := mocks.NewMockMessageDisplay(ctrl)
	anim := mocks.NewMockAnimator(ctrl)
	tasks := mocks.NewMockIntervalTask(ctrl)
	sounds := mocks.NewMockAudioCue(ctrl)
	session := mocks.NewMockSessionControl(ctrl)

	complete := func(_ string, _ battle.Advance, done func()) { done() }
	move := func(target *pokemon.Point, to pokemon.Point, _ time.Duration, _ battle.Easing, done func()) {
		*target = to
		done()
	}
	flash := func(defender *pokemon.Pokemon) func(func(), time.Duration, time.Duration, func()) {
		return func(action func(), interval, total time.Duration, done func()) {
			if defender.CurrentHealth != defender.Health {
				t.Errorf("%s damaged before the flash finished", defender.Name)
			}
			action()
			if defender.Alpha != 0.5 {
				t.Errorf("%s alpha = %v during flash", defender.Name, defender.Alpha)
			}
			done()
		}
	}

	gomock.InOrder(
		msgs.EXPECT().Show("Charmander used Ember!", battle.AutoAdvance(500*time.Millisecond), gomock.Any()).Do(complete),
		anim.EXPECT().Tween(&player.Position, player.AttackPosition, 100*time.Millisecond, gomock.Any(), gomock.Any()).Do(move),
		anim.EXPECT().Tween(&player.Position, player.BattlePosition, 100*time.Millisecond, gomock.Any(), gomock.Any()).Do(move),
		sounds.EXPECT().Play(audio.HitRegular),
		tasks.EXPECT().Repeat(gomock.Any(), 50*time.Millisecond, 500*time.Millisecond, gomock.Any()).Do(flash(opponent)),
		msgs.EXPECT().Show("Oddish used Tackle!", battle.AutoAdvance(500*time.Millisecond), gomock.Any()).Do(complete),
		anim.EXPECT().Tween(&opponent.Position, opponent.AttackPosition, 100*time.Millisecond, gomock.Any(), gomock.Any()).Do(move),
		anim.EXPECT().Tween(&opponent.Position, opponent.BattlePosition, 100*time.Millisecond, gomock.Any(), gomock.Any()).Do(move),
		sounds.EXPECT().Play(audio.HitRegular),
		tasks.EXPECT().Repeat(gomock.Any(), 50*time.Millisecond, 500*time.Millisecond, gomock.Any()).Do(flash(player)),
		session.EXPECT().PushMainMenu(),
	)

	svc := battle.Services{Messages: msgs, Animator: anim, Tasks: tasks, Audio: sounds, Session: session}
	eng := newEngine(player, opponent, svc)
	eng.StartRound(ember)

	if eng.Phase() != battle.RoundComplete {
		t.Errorf("phase = %s", eng.Phase())
	}
}

// TestRoundWaitsForCompletion checks that nothing happens past a pending
// message until it is dismissed.
func TestRoundWaitsForCompletion(t *testing.T) {
	ctrl := gomock.NewController(t)

	player, opponent := newPlayer(), newOpponent()
	p := headless.New(quiet)
	msgs := mocks.NewMockMessageDisplay(ctrl)

	var pending func()
	msgs.EXPECT().Show("Charmander used Ember!", gomock.Any(), gomock.Any()).
		Do(func(_ string, _ battle.Advance, done func()) { pending = done })

	svc := p.Services()
	svc.Messages = msgs
	eng := newEngine(player, opponent, svc)
	eng.StartRound(ember)

	if len(p.Events) != 0 {
		t.Fatalf("events ran before the announcement completed: %v", p.Events)
	}
	if eng.Phase() != battle.FirstAttack {
		t.Errorf("phase = %s, want FirstAttack", eng.Phase())
	}

	msgs.EXPECT().Show(gomock.Any(), gomock.Any(), gomock.Any()).
		Do(func(_ string, _ battle.Advance, done func()) { done() }).AnyTimes()
	pending()

	if eng.Phase() != battle.RoundComplete {
		t.Errorf("phase = %s after completing, want RoundComplete", eng.Phase())
	}
	if opponent.CurrentHealth != 16 {
		t.Errorf("opponent health = %d, want 16", opponent.CurrentHealth)
	}
}

type ctxKey struct{}

// captureHandler keeps every record together with the context it was logged
// with.
type captureHandler struct {
	attrs   []slog.Attr
	records *[]capturedRecord
}

type capturedRecord struct {
	msg   string
	ctx   context.Context
	attrs map[string]string
}

func (h captureHandler) Enabled(context.Context, slog.Level) bool { return true }

func (h captureHandler) Handle(ctx context.Context, r slog.Record) error {
	rec := capturedRecord{msg: r.Message, ctx: ctx, attrs: map[string]string{}}
	for _, a := range h.attrs {
		rec.attrs[a.Key] = a.Value.String()
	}
	r.Attrs(func(a slog.Attr) bool {
		rec.attrs[a.Key] = a.Value.String()
		return true
	})
	*h.records = append(*h.records, rec)
	return nil
}

func (h captureHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return captureHandler{attrs: append(slices.Clone(h.attrs), attrs...), records: h.records}
}

func (h captureHandler) WithGroup(string) slog.Handler { return h }

func TestEngineLogsWithContextAndBattleID(t *testing.T) {
	var records []capturedRecord
	logger := slog.New(captureHandler{records: &records})
	ctx := context.WithValue(context.Background(), ctxKey{}, "encounter-1")

	player, opponent := newPlayer(), newOpponent()
	opponent.CurrentHealth = 1
	eng := battle.NewEngine(player, opponent, headless.New(quiet).Services(),
		battle.WithRand(rand.New(rand.NewPCG(1, 2))),
		battle.WithContext(ctx),
		battle.WithLogger(logger),
	)
	eng.StartRound(ember)

	var msgs []string
	for _, r := range records {
		msgs = append(msgs, r.msg)
		if r.ctx.Value(ctxKey{}) != "encounter-1" {
			t.Errorf("%q logged without the engine context", r.msg)
		}
		if r.attrs["battle"] != eng.ID() {
			t.Errorf("%q has battle=%q, want %q", r.msg, r.attrs["battle"], eng.ID())
		}
	}
	for _, want := range []string{"round started", "damage resolved", "battle ended", "experience awarded"} {
		if !slices.Contains(msgs, want) {
			t.Errorf("no %q record in %q", want, msgs)
		}
	}
}
