package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"

	"github.com/lox/holdem-eval/poker"
)

type CLI struct {
	Hands []string `arg:"" required:"true" help:"Seven-card hands in 'AsKsQsJsTs9h8h' notation (quoted, spaces allowed)"`
}

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	handStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("14"))

	categoryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("12"))

	winStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))
)

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("holdem-rank"),
		kong.Description("Rank seven-card Texas Hold'em hands and name the winner"),
		kong.UsageOnError(),
	)

	hands, err := parseHands(cli.Hands)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		ctx.Exit(1)
	}

	rankings := make([]poker.HandRanking, len(hands))
	best := poker.HandRanking(0)
	for i, cs := range hands {
		rankings[i] = cs.RankTexasHoldem()
		if rankings[i] > best {
			best = rankings[i]
		}
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\t%s\t\n", headerStyle.Render("hand"), headerStyle.Render("ranking"))
	for i, cs := range hands {
		marker := ""
		if len(hands) > 1 && rankings[i] == best {
			marker = winStyle.Render("wins")
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n",
			handStyle.Render(cs.String()),
			categoryStyle.Render(rankings[i].String()),
			marker)
	}
	w.Flush()
}

func parseHands(args []string) ([]poker.CardSet, error) {
	var hands []poker.CardSet

	for i, arg := range args {
		cards, err := poker.ParseCards(strings.TrimSpace(arg))
		if err != nil {
			return nil, fmt.Errorf("hand %d: %w", i+1, err)
		}
		if len(cards) != 7 {
			return nil, fmt.Errorf("hand %d: must contain exactly 7 cards, got %d", i+1, len(cards))
		}

		var cs poker.CardSet
		for _, c := range cards {
			if cs.Contains(c) {
				return nil, fmt.Errorf("hand %d: duplicate card %s", i+1, c)
			}
			cs.Add(c)
		}
		hands = append(hands, cs)
	}

	return hands, nil
}
