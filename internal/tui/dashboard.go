// Package tui is the interactive dashboard: one screen with every
// activity's score, progress bar and the composite fat-loss line, with
// day-by-day navigation.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/gmsas95/fitloop-cli/internal/activity"
	"github.com/gmsas95/fitloop-cli/internal/composite"
	"github.com/gmsas95/fitloop-cli/internal/datekey"
	"github.com/gmsas95/fitloop-cli/internal/scoring"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#3b82f6"))
	dayStyle    = lipgloss.NewStyle().Bold(true)
	labelStyle  = lipgloss.NewStyle().Width(14)
	scoreStyle  = lipgloss.NewStyle().Width(8).Align(lipgloss.Right)
	noteStyle   = lipgloss.NewStyle().Faint(true)
	footerStyle = lipgloss.NewStyle().Faint(true).MarginTop(1)
)

// Model is the dashboard state.
type Model struct {
	registry *activity.Registry
	fatloss  *composite.FatLoss
	day      datekey.Key
	bar      progress.Model
	width    int
}

// NewModel builds the dashboard showing today.
func NewModel(registry *activity.Registry, fatloss *composite.FatLoss) Model {
	bar := progress.New(progress.WithDefaultGradient())
	bar.Width = 30
	return Model{
		registry: registry,
		fatloss:  fatloss,
		day:      datekey.Today(),
		bar:      bar,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "left", "h":
			m.day = datekey.Prev(m.day)
		case "right", "l":
			if m.day < datekey.Today() {
				m.day = datekey.Next(m.day)
			}
		case "t":
			m.day = datekey.Today()
		}
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("fitloop"))
	b.WriteString("  ")
	b.WriteString(dayStyle.Render(m.day))
	if m.day == datekey.Today() {
		b.WriteString(noteStyle.Render("  (today)"))
	}
	b.WriteString("\n\n")

	for _, a := range m.registry.List() {
		b.WriteString(m.activityRow(a))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.fatlossRow())
	b.WriteString(footerStyle.Render("\n←/→ day  t today  q quit"))
	return b.String()
}

func (m Model) activityRow(a activity.Activity) string {
	var row strings.Builder
	row.WriteString(labelStyle.Render(a.Title()))
	row.WriteString(scoreStyle.Render(fmt.Sprintf("%.0f", a.ScoreByDate(m.day))))
	row.WriteString("  ")

	if len(a.Thresholds()) > 0 {
		ratio := a.Ratio(m.day)
		shown := ratio
		if shown > 1 {
			shown = 1
		}
		row.WriteString(m.bar.ViewAs(shown))
		if th, ok := scoring.PickThreshold(a.Thresholds(), ratio); ok && a.HasRecord(m.day) {
			row.WriteString("  ")
			row.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(th.Color)).Render(th.Message))
		}
	} else if lvl, ok := a.Level(m.day); ok {
		row.WriteString(noteStyle.Render(fmt.Sprintf("level %+d", lvl)))
	} else if a.HasRecord(m.day) {
		row.WriteString(noteStyle.Render(fmt.Sprintf("effort %.0f", a.WeightedByDate(m.day))))
	} else {
		row.WriteString(noteStyle.Render("no record"))
	}
	return row.String()
}

func (m Model) fatlossRow() string {
	metrics := m.fatloss.MetricsByDate(m.day)
	return fmt.Sprintf("%s%s  diet %.0f  exercise %.0f  lifestyle %.0f  active %d  %s\n",
		labelStyle.Render("Fat loss"),
		scoreStyle.Render(fmt.Sprintf("%.0f", metrics.TotalScore)),
		metrics.DietScore, metrics.ExerciseScore, metrics.LifestyleScore,
		metrics.RecordCount, metrics.Trend)
}

// Run starts the dashboard and blocks until the user quits.
func Run(registry *activity.Registry, fatloss *composite.FatLoss) error {
	_, err := tea.NewProgram(NewModel(registry, fatloss), tea.WithAltScreen()).Run()
	return err
}
