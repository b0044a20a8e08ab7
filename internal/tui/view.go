package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/tatianab/pocket-battle/internal/battle"
	"github.com/tatianab/pocket-battle/internal/pokemon"
	"github.com/tatianab/pocket-battle/internal/typechart"
)

const (
	arenaWidth = 48
	barWidth   = 20
	logWidth   = 34

	experienceColor = "#1E90FF" // dodger blue
)

// healthColor follows the usual green / gold / red thresholds.
func healthColor(ratio float64) string {
	switch {
	case ratio > 0.5:
		return "#7FFF00" // chartreuse
	case ratio > 0.25:
		return "#FFD700" // gold
	}
	return "#DC143C" // crimson
}

var (
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#5F5F87")).
			Padding(0, 1).
			Width(barWidth + 4)

	textboxStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("#EEEEEE")).
			Padding(0, 1).
			Width(arenaWidth - 2).
			Height(2)

	logStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color("#3C3C3C")).
			PaddingLeft(2).
			Foreground(lipgloss.Color("#AAAAAA"))

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFA500")).
			Bold(true).
			Underline(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			Italic(true)

	cursorStyle = lipgloss.NewStyle().Bold(true)

	typeColors = map[typechart.Type]lipgloss.Color{
		typechart.Fire:   lipgloss.Color("#FF7F50"),
		typechart.Water:  lipgloss.Color("#1E90FF"),
		typechart.Grass:  lipgloss.Color("#32CD32"),
		typechart.Normal: lipgloss.Color("#D3D3D3"),
	}
)

func upper(s string) string {
	return cases.Upper(language.English).String(s)
}

func (m model) View() string {
	if m.err != nil {
		return fmt.Sprintf("\n  Error: %v\n\nPress any key to quit.\n", m.err)
	}

	player := m.game.Player

	top := m.renderPanel(m.opponent, &m.opponentHealth, false)
	bottom := lipgloss.PlaceHorizontal(arenaWidth, lipgloss.Right,
		m.renderPanel(player, &m.playerHealth, true),
	)

	arena := lipgloss.JoinVertical(lipgloss.Left,
		top,
		renderStrip(m.opponent),
		renderStrip(player),
		bottom,
		m.renderBottom(),
		m.renderStatus(),
	)

	history := logStyle.Height(m.log.Height).Render(titleStyle.Render("BATTLE LOG") + "\n" + m.log.View())
	return "\n" + lipgloss.JoinHorizontal(lipgloss.Top, arena, history) + "\n"
}

// renderPanel shows name, level and health. The player's panel adds the
// health numbers and the experience bar.
func (m model) renderPanel(p *pokemon.Pokemon, bar *progress.Model, withDetails bool) string {
	name := upper(p.Name)
	level := fmt.Sprintf("Lv%d", p.Level)
	gap := max(1, barWidth-lipgloss.Width(name)-lipgloss.Width(level))
	lines := []string{
		name + strings.Repeat(" ", gap) + level,
		bar.View(),
	}

	if withDetails {
		health := fmt.Sprintf("%d / %d", p.CurrentHealth, p.Health)
		lines = append(lines,
			lipgloss.PlaceHorizontal(barWidth, lipgloss.Right, health),
			m.experience.View(),
		)
	}
	return panelStyle.Render(strings.Join(lines, "\n"))
}

// renderStrip draws a sprite row. Position.X is the column and Position.Y
// drops the sprite down the strip until it leaves the arena.
func renderStrip(p *pokemon.Pokemon) string {
	rows := make([]string, arenaHeight)
	if p.Position.Y < offscreenY {
		style := lipgloss.NewStyle().Foreground(typeColors[p.Type]).Bold(true)
		if p.Alpha < 1 {
			style = style.Faint(true)
		}
		sprite := style.Render("<" + upper(p.Name) + ">")
		row := max(0, int(p.Position.Y))
		rows[row] = strings.Repeat(" ", max(0, int(p.Position.X))) + sprite
	}
	return lipgloss.NewStyle().Width(arenaWidth).Render(strings.Join(rows, "\n"))
}

func (m model) renderBottom() string {
	if m.p.busy() {
		text := m.p.message
		if m.p.manual {
			text += " ▼"
		}
		return textboxStyle.Render(text)
	}

	switch m.p.screen {
	case screenMainMenu:
		var lines []string
		for _, opt := range battle.MenuOptions {
			prefix := "  "
			if opt == m.menu.Cursor() {
				prefix = cursorStyle.Render("> ")
			}
			lines = append(lines, prefix+string(opt))
		}
		return textboxStyle.Height(len(lines)).Render(strings.Join(lines, "\n"))

	case screenMoveMenu:
		labels := m.grid.Labels()
		cells := make([]string, len(labels))
		for i, label := range labels {
			prefix := "  "
			if i == m.grid.Selected() {
				prefix = cursorStyle.Render("> ")
			}
			cells[i] = lipgloss.NewStyle().Width(20).Render(prefix + label)
		}
		grid := lipgloss.JoinVertical(lipgloss.Left,
			lipgloss.JoinHorizontal(lipgloss.Top, cells[0], cells[1]),
			lipgloss.JoinHorizontal(lipgloss.Top, cells[2], cells[3]),
		)
		return textboxStyle.Render(grid)

	case screenExited:
		summary := fmt.Sprintf("Battle over (%s). Encounters: %d  Wins: %d", m.eng.Outcome(), m.encounters, m.wins)
		return textboxStyle.Render(summary + "\n" + helpStyle.Render("enter: next encounter  q: quit"))
	}
	return textboxStyle.Render("")
}

func (m model) renderStatus() string {
	status := "w/a/s/d or arrows to move, enter to confirm, esc to go back"
	if m.p.nowPlaying != "" {
		status = "♪ " + string(m.p.nowPlaying) + "   " + status
	}
	return helpStyle.Render(status)
}

func (m model) renderLog() string {
	var b strings.Builder
	for _, line := range m.p.history {
		b.WriteString(lipgloss.NewStyle().Width(logWidth - 2).Render(line))
		b.WriteString("\n")
	}
	return b.String()
}
