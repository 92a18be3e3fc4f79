// Package tui provides the interactive Bubble Tea cracker.
package tui

import (
	"bytes"
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/decaesar/internal/analysis"
	"github.com/verte-zerg/decaesar/internal/freq"
	"github.com/verte-zerg/decaesar/internal/model"
	"github.com/verte-zerg/decaesar/internal/report"
)

const (
	tabRanking = iota
	tabLetterMap
	tabBruteForce
	tabFrequencies
)

const (
	inputHeight = 5
	chartHeight = 10
)

var (
	activeNavStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F0F0F0")).
			Bold(true).
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#C89A3A"))
	inactiveNavStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#B0B0B0")).
				Padding(0, 1).
				Border(lipgloss.RoundedBorder(), true).
				BorderForeground(lipgloss.Color("#4A4A4A"))
	titleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	bestStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
)

// Model implements the interactive cracking UI: a ciphertext editor plus
// tabbed result views.
type Model struct {
	cfg   model.Config
	table freq.Table

	input   textarea.Model
	editing bool

	ciphertext string
	ranking    model.Ranking

	tabs      []string
	activeTab int
	rankTable table.Model
	viewports map[int]viewport.Model

	width  int
	height int
}

// NewModel constructs the cracker UI with the given crack settings and
// reference table.
func NewModel(cfg model.Config, refTable freq.Table) *Model {
	input := textarea.New()
	input.Placeholder = "Paste ciphertext and press Enter"
	input.SetHeight(inputHeight)
	input.Focus()

	m := &Model{
		cfg:     cfg,
		table:   refTable,
		input:   input,
		editing: true,
		tabs:    []string{"Ranking", "Letter Map", "Brute Force", "Frequencies"},
		viewports: map[int]viewport.Model{
			tabLetterMap:   viewport.New(0, 0),
			tabBruteForce:  viewport.New(0, 0),
			tabFrequencies: viewport.New(0, 0),
		},
	}
	m.rankTable = table.New(
		table.WithColumns(rankColumns(0)),
		table.WithFocused(true),
	)
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return textarea.Blink
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil
	case tea.KeyMsg:
		if m.editing {
			return m.updateEditing(msg)
		}
		return m.updateResults(msg)
	default:
		return m, nil
	}
}

func (m *Model) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit
	case tea.KeyEnter:
		m.analyze(m.input.Value())
		return m, nil
	case tea.KeyEsc:
		if m.ciphertext != "" || len(m.ranking.Candidates) > 0 {
			m.editing = false
			m.input.Blur()
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) updateResults(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyCtrlC, msg.String() == "q":
		return m, tea.Quit
	case msg.String() == "e":
		m.editing = true
		m.input.Focus()
		return m, textarea.Blink
	case msg.Type == tea.KeyTab, msg.String() == "right":
		m.activeTab = (m.activeTab + 1) % len(m.tabs)
		return m, nil
	case msg.Type == tea.KeyShiftTab, msg.String() == "left":
		m.activeTab = (m.activeTab + len(m.tabs) - 1) % len(m.tabs)
		return m, nil
	}
	var cmd tea.Cmd
	if m.activeTab == tabRanking {
		m.rankTable, cmd = m.rankTable.Update(msg)
		return m, cmd
	}
	vp := m.viewports[m.activeTab]
	vp, cmd = vp.Update(msg)
	m.viewports[m.activeTab] = vp
	return m, cmd
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.editing {
		return m.viewEditor()
	}
	return m.viewResults()
}

func (m *Model) viewEditor() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("decaesar"))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	help := "enter: analyze · ctrl+c: quit"
	if m.ciphertext != "" || len(m.ranking.Candidates) > 0 {
		help = "enter: analyze · esc: back to results · ctrl+c: quit"
	}
	b.WriteString(footerStyle.Render(help))
	return b.String()
}

func (m *Model) viewResults() string {
	var b strings.Builder
	b.WriteString(m.navView())
	b.WriteString("\n")
	if best, ok := m.ranking.Best(); ok {
		b.WriteString(bestStyle.Render(bestLine(best)))
		b.WriteString("\n\n")
	}
	if m.activeTab == tabRanking {
		b.WriteString(m.rankTable.View())
	} else {
		b.WriteString(m.viewports[m.activeTab].View())
	}
	b.WriteString("\n")
	b.WriteString(footerStyle.Render("tab: switch view · e: edit ciphertext · q: quit"))
	return b.String()
}

func (m *Model) navView() string {
	parts := make([]string, 0, len(m.tabs))
	for i, tab := range m.tabs {
		if i == m.activeTab {
			parts = append(parts, activeNavStyle.Render(tab))
			continue
		}
		parts = append(parts, inactiveNavStyle.Render(tab))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m *Model) analyze(text string) {
	m.ciphertext = strings.TrimSuffix(text, "\n")
	m.ranking = analysis.Rank(m.ciphertext, m.table, m.cfg.TopN)
	m.editing = false
	m.input.Blur()
	m.refreshViews()
}

func (m *Model) refreshViews() {
	m.rankTable.SetColumns(rankColumns(m.contentWidth()))
	m.rankTable.SetRows(rankRows(m.ranking.Candidates))

	vp := m.viewports[tabLetterMap]
	vp.SetContent(letterMapContent(m.ranking.Guesses))
	m.viewports[tabLetterMap] = vp

	var brute bytes.Buffer
	if err := report.RenderBruteForce(&brute, m.ciphertext); err == nil {
		vp = m.viewports[tabBruteForce]
		vp.SetContent(brute.String())
		m.viewports[tabBruteForce] = vp
	}

	var freqs bytes.Buffer
	if err := report.RenderFrequencies(&freqs, freq.Count(m.ciphertext), m.table, chartHeight, false); err == nil {
		vp = m.viewports[tabFrequencies]
		vp.SetContent(freqs.String())
		m.viewports[tabFrequencies] = vp
	}
}

func (m *Model) resize() {
	if m.width <= 0 || m.height <= 0 {
		return
	}
	m.input.SetWidth(m.contentWidth())
	contentHeight := m.height - 8
	if contentHeight < 3 {
		contentHeight = 3
	}
	m.rankTable.SetHeight(contentHeight)
	m.rankTable.SetColumns(rankColumns(m.contentWidth()))
	for tab, vp := range m.viewports {
		vp.Width = m.contentWidth()
		vp.Height = contentHeight
		m.viewports[tab] = vp
	}
}

func (m *Model) contentWidth() int {
	if m.width <= 2 {
		return 78
	}
	return m.width - 2
}

func rankColumns(totalWidth int) []table.Column {
	plaintextWidth := totalWidth - 18
	if plaintextWidth < 20 {
		plaintextWidth = 20
	}
	return []table.Column{
		{Title: "#", Width: 3},
		{Title: "Shift", Width: 5},
		{Title: "Chi2", Width: 8},
		{Title: "Plaintext", Width: plaintextWidth},
	}
}

func rankRows(candidates []model.Candidate) []table.Row {
	rows := make([]table.Row, 0, len(candidates))
	for i, c := range candidates {
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", i+1),
			fmt.Sprintf("%d", c.Shift),
			scoreCell(c.Score),
			c.Plaintext,
		})
	}
	return rows
}

func letterMapContent(guesses []model.Guess) string {
	if len(guesses) == 0 {
		return "No alphabetic characters found in ciphertext."
	}
	var b strings.Builder
	for i, g := range guesses {
		fmt.Fprintf(&b, "%2d. Map %c -> %c  (shift %2d)\n", i+1, g.Cipher, g.Target, g.Shift)
		fmt.Fprintf(&b, "    %s\n", g.Plaintext)
	}
	return b.String()
}

func bestLine(best model.Candidate) string {
	return fmt.Sprintf("Best guess: shift %d (chi2=%s) %s", best.Shift, scoreCell(best.Score), best.Plaintext)
}

func scoreCell(score float64) string {
	if math.IsInf(score, 1) {
		return "inf"
	}
	return fmt.Sprintf("%.2f", score)
}

