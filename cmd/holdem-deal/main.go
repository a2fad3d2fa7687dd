package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/lox/holdem-eval/internal/config"
	"github.com/lox/holdem-eval/poker"
)

type CLI struct {
	Seed     *int64 `help:"Seed for the deck (defaults to the deterministic deck seed)"`
	Config   string `short:"c" default:"holdem-tools.hcl" help:"HCL config file with tool defaults"`
	LogLevel string `help:"Set the log-level" enum:"debug,info,warn,error" default:"warn"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("holdem-deal"),
		kong.Description("Interactively deal and rank seven-card hands"),
		kong.UsageOnError(),
	)

	level, err := log.ParseLevel(cli.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing log level: %v\n", err)
		ctx.Exit(1)
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{Level: level})

	cfg, err := config.Load(cli.Config)
	if err != nil {
		logger.Fatal("Failed to load config", "file", cli.Config, "error", err)
	}

	seed := cfg.Stats.Seed
	if cli.Seed != nil {
		seed = *cli.Seed
	}

	m := newModel(poker.NewDeckSeeded(seed))
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		logger.Fatal("TUI failed", "error", err)
	}
}

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15"))
	rankStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	redCardStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	blkCardStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("15"))
	helpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	histStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
)

type model struct {
	deck    *poker.Deck
	hand    []poker.Card
	ranking poker.HandRanking
	history viewport.Model
	lines   []string
	deals   int
	ready   bool
}

func newModel(deck *poker.Deck) *model {
	m := &model{deck: deck}
	m.deal()
	return m
}

// deal draws the next seven cards, reshuffling when the deck runs
// short.
func (m *model) deal() {
	if m.deck.Remaining() < 7 {
		m.deck.Shuffle()
	}
	m.hand = m.hand[:0]
	var cs poker.CardSet
	for i := 0; i < 7; i++ {
		c := m.deck.Deal()
		m.hand = append(m.hand, c)
		cs.Add(c)
	}
	m.ranking = cs.RankTexasHoldem()
	m.deals++

	m.lines = append(m.lines, fmt.Sprintf("#%d  %s  %s", m.deals, renderCards(m.hand), m.ranking))
	if m.ready {
		m.history.SetContent(histStyle.Render(strings.Join(m.lines, "\n")))
		m.history.GotoBottom()
	}
}

func (m *model) Init() tea.Cmd {
	return nil
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case " ", "enter", "d":
			m.deal()
			return m, nil
		case "s":
			m.deck.Shuffle()
			return m, nil
		}

	case tea.WindowSizeMsg:
		height := msg.Height - 8
		if height < 3 {
			height = 3
		}
		if !m.ready {
			m.history = viewport.New(msg.Width, height)
			m.ready = true
		} else {
			m.history.Width = msg.Width
			m.history.Height = height
		}
		m.history.SetContent(histStyle.Render(strings.Join(m.lines, "\n")))
		m.history.GotoBottom()
	}

	var cmd tea.Cmd
	m.history, cmd = m.history.Update(msg)
	return m, cmd
}

func (m *model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("holdem-deal"))
	b.WriteString("\n\n")
	b.WriteString(renderCards(m.hand))
	b.WriteString("\n")
	b.WriteString(rankStyle.Render(m.ranking.String()))
	b.WriteString("\n\n")
	if m.ready {
		b.WriteString(m.history.View())
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render("space/d: deal  s: shuffle  q: quit"))

	return b.String()
}

func renderCards(cards []poker.Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		if c.IsRed() {
			parts[i] = redCardStyle.Render(c.String())
		} else {
			parts[i] = blkCardStyle.Render(c.String())
		}
	}
	return strings.Join(parts, " ")
}
