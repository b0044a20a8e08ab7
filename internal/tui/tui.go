package tui

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tatianab/pocket-battle/internal/audio"
	"github.com/tatianab/pocket-battle/internal/battle"
	"github.com/tatianab/pocket-battle/internal/config"
	"github.com/tatianab/pocket-battle/internal/dex"
	"github.com/tatianab/pocket-battle/internal/pokemon"
)

// Arena coordinates, in terminal cells. Sprites sit on a short strip; Y grows
// downwards and anything at or below offscreenY is not drawn.
const (
	arenaHeight = 3
	offscreenY  = arenaHeight
)

var (
	playerBattle   = pokemon.Point{X: 2, Y: 0}
	playerAttack   = pokemon.Point{X: 8, Y: 0}
	opponentBattle = pokemon.Point{X: 38, Y: 0}
	opponentAttack = pokemon.Point{X: 32, Y: 0}
)

// Game is what the UI needs to run encounters.
type Game struct {
	Dex    *dex.Dex
	Player *pokemon.Pokemon
	Rand   *rand.Rand
	Logger *slog.Logger
}

type model struct {
	game *Game
	p    *presenter

	eng      *battle.Engine
	opponent *pokemon.Pokemon
	menu     *battle.Menu
	grid     *battle.MoveGrid

	playerHealth   progress.Model
	opponentHealth progress.Model
	experience     progress.Model
	log            viewport.Model

	encounters int
	wins       int
	err        error
	width      int
	height     int
}

func newModel(g *Game) model {
	p := newPresenter(g.Logger)
	m := model{
		game:           g,
		p:              p,
		menu:           battle.NewMenu(p.services()),
		grid:           battle.NewMoveGrid(g.Player, p),
		playerHealth:   newBar(healthColor(1)),
		opponentHealth: newBar(healthColor(1)),
		experience:     newBar(experienceColor),
		log:            viewport.New(logWidth, arenaHeight+9),
	}
	m.startEncounter()
	return m
}

func newBar(color string) progress.Model {
	return progress.New(
		progress.WithSolidFill(color),
		progress.WithoutPercentage(),
		progress.WithWidth(barWidth),
	)
}

func (m model) Init() tea.Cmd {
	return tea.Batch(m.p.drain(), m.syncBars())
}

// startEncounter heals the player and sends out a fresh wild opponent close
// to the player's level.
func (m *model) startEncounter() {
	player := m.game.Player
	level := max(1, player.Level-1+m.game.Rand.IntN(3))
	species := m.game.Dex.RandomSpecies(m.game.Rand)

	opponent, err := m.game.Dex.NewPokemon(species, level)
	if err != nil {
		m.err = err
		return
	}

	player.Heal()
	player.SetPositions(playerBattle, playerAttack)
	opponent.SetPositions(opponentBattle, opponentAttack)

	ctx := context.Background()
	m.opponent = opponent
	m.encounters++
	m.eng = battle.NewEngine(player, opponent, m.p.services(),
		battle.WithRand(m.game.Rand),
		battle.WithContext(ctx),
		battle.WithLogger(m.game.Logger),
		battle.WithOffscreenY(offscreenY),
	)
	m.game.Logger.InfoContext(ctx, "encounter started",
		"battle", m.eng.ID(), "encounter", m.encounters,
		"player", player.String(), "opponent", opponent.String(),
	)

	m.p.screen = screenTurn
	m.p.Play(audio.BattleLoop)
	m.p.Show(fmt.Sprintf("A wild %s appeared!", opponent.Name), battle.ManualAdvance, m.p.PushMainMenu)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if cmd := m.handleKey(msg); cmd != nil {
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case messageTimeoutMsg:
		m.p.handleTimeout(msg)

	case frameMsg:
		m.p.handleFrame(time.Time(msg))

	case taskTickMsg:
		m.p.handleTaskTick(msg)

	case progress.FrameMsg:
		cmds = append(cmds, m.updateBars(msg))
	}

	m.log.SetContent(m.renderLog())
	m.log.GotoBottom()

	cmds = append(cmds, m.p.drain(), m.syncBars())
	return m, tea.Batch(cmds...)
}

func (m *model) handleKey(msg tea.KeyMsg) tea.Cmd {
	key := msg.String()

	if m.err != nil {
		return tea.Quit
	}

	// A message on screen owns the keyboard.
	if m.p.busy() {
		if key == "enter" || key == " " {
			m.p.dismiss()
		}
		return nil
	}

	switch m.p.screen {
	case screenMainMenu:
		switch key {
		case "up", "w":
			m.menu.Up()
		case "down", "s":
			m.menu.Down()
		case "enter":
			m.menu.Confirm()
			if m.p.screen == screenMoveMenu {
				m.grid = battle.NewMoveGrid(m.game.Player, m.p)
			}
		}

	case screenMoveMenu:
		switch key {
		case "left", "a":
			m.grid.Left()
		case "right", "d":
			m.grid.Right()
		case "up", "w":
			m.grid.Up()
		case "down", "s":
			m.grid.Down()
		case "esc":
			m.grid.Back()
			m.p.screen = screenMainMenu
		case "enter":
			if move, ok := m.grid.Confirm(); ok {
				m.p.screen = screenTurn
				m.eng.StartRound(move)
			}
		}

	case screenExited:
		switch key {
		case "enter":
			if m.eng.Outcome() == battle.Won {
				m.wins++
			}
			m.startEncounter()
		case "q", "esc":
			return tea.Quit
		}
	}
	return nil
}

// syncBars points every bar at the current stats; the bars animate towards
// their targets on their own.
func (m *model) syncBars() tea.Cmd {
	if m.opponent == nil {
		return nil
	}
	player := m.game.Player

	var cmds []tea.Cmd
	set := func(bar *progress.Model, value, maximum int, color string) {
		pct := 0.0
		if maximum > 0 {
			pct = float64(value) / float64(maximum)
		}
		bar.FullColor = color
		if pct != bar.Percent() {
			cmds = append(cmds, bar.SetPercent(pct))
		}
	}

	set(&m.playerHealth, player.CurrentHealth, player.Health, healthColor(healthRatio(player)))
	set(&m.opponentHealth, m.opponent.CurrentHealth, m.opponent.Health, healthColor(healthRatio(m.opponent)))
	set(&m.experience,
		player.CurrentExperience-player.LevelExperience,
		player.TargetExperience-player.LevelExperience,
		experienceColor)
	return tea.Batch(cmds...)
}

func (m *model) updateBars(msg progress.FrameMsg) tea.Cmd {
	var cmds []tea.Cmd
	for _, bar := range []*progress.Model{&m.playerHealth, &m.opponentHealth, &m.experience} {
		updated, cmd := bar.Update(msg)
		*bar = updated.(progress.Model)
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

func healthRatio(p *pokemon.Pokemon) float64 {
	if p.Health == 0 {
		return 0
	}
	return float64(p.CurrentHealth) / float64(p.Health)
}

// Run starts the battle UI.
func Run(g *Game) error {
	p := tea.NewProgram(newModel(g), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Start runs the UI with the built-in pack and a level 5 Charmander. Logging
// follows LOG_FILE and LOG_LEVEL.
func Start() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	g, closeLog, err := defaultGame(cfg)
	if err != nil {
		return err
	}
	defer closeLog()
	return Run(g)
}

func defaultGame(cfg *config.Config) (*Game, func() error, error) {
	logger, closeLog, err := cfg.NewLogger()
	if err != nil {
		return nil, nil, err
	}
	d, err := dex.Default()
	if err != nil {
		closeLog()
		return nil, nil, err
	}
	player, err := d.NewPokemon("Charmander", 5)
	if err != nil {
		closeLog()
		return nil, nil, err
	}
	seed := uint64(time.Now().UnixNano())
	return &Game{
		Dex:    d,
		Player: player,
		Rand:   rand.New(rand.NewPCG(seed, seed>>1)),
		Logger: logger,
	}, closeLog, nil
}
