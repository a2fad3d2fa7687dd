package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"

	"github.com/lox/holdem-eval/internal/config"
	"github.com/lox/holdem-eval/internal/stats"
	"github.com/lox/holdem-eval/poker"
)

type CLI struct {
	Iterations uint64 `short:"i" help:"Number of sampled hands (ignored with --exhaustive)"`
	Exhaustive bool   `short:"e" help:"Enumerate every C(52,7) combination instead of sampling"`
	Workers    int    `short:"w" help:"Worker goroutines (0 = one per CPU)"`
	Seed       *int64 `help:"Random seed for reproducible sampling"`
	Config     string `short:"c" default:"holdem-tools.hcl" help:"HCL config file with tool defaults"`
	LogLevel   string `help:"Set the log-level" enum:"debug,info,warn,error" default:"info"`
	Color      bool   `help:"Force colored log output"`
}

var (
	headerStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15"))
	categoryStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	countStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	percentStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("holdem-stats"),
		kong.Description("Survey the seven-card hand category distribution"),
		kong.UsageOnError(),
	)

	level, err := log.ParseLevel(cli.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing log level: %v\n", err)
		ctx.Exit(1)
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{Level: level})
	if cli.Color {
		logger.SetColorProfile(termenv.TrueColor)
	}

	cfg, err := config.Load(cli.Config)
	if err != nil {
		logger.Fatal("Failed to load config", "file", cli.Config, "error", err)
	}

	iterations := cfg.Stats.Iterations
	if cli.Iterations > 0 {
		iterations = cli.Iterations
	}
	workers := cfg.Stats.Workers
	if cli.Workers > 0 {
		workers = cli.Workers
	}
	seed := cfg.Stats.Seed
	if cli.Seed != nil {
		seed = *cli.Seed
	}

	runCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	runner := &stats.Runner{Workers: workers}

	var result stats.Result
	if cli.Exhaustive {
		logger.Info("Enumerating all seven-card combinations",
			"combinations", stats.TotalCombinations, "workers", runner.Workers)
		result, err = runner.Enumerate(runCtx)
	} else {
		logger.Info("Sampling seven-card hands",
			"iterations", iterations, "seed", seed, "workers", runner.Workers)
		result, err = runner.Sample(runCtx, iterations, seed)
	}
	if err != nil {
		logger.Fatal("Run failed", "error", err)
	}

	displayResult(result)
	logger.Info("Done",
		"hands", result.Total,
		"elapsed", result.Elapsed.Truncate(time.Millisecond),
		"hands_per_sec", fmt.Sprintf("%.0f", result.Rate()))
}

func displayResult(result stats.Result) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)

	fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
		headerStyle.Render("category"),
		headerStyle.Render("count"),
		headerStyle.Render("observed"),
		headerStyle.Render("expected"))

	for c := poker.StraightFlush; ; c-- {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			categoryStyle.Render(c.String()),
			countStyle.Render(fmt.Sprintf("%d", result.Counts[c])),
			percentStyle.Render(fmt.Sprintf("%.4f%%", result.Fraction(c)*100)),
			percentStyle.Render(fmt.Sprintf("%.4f%%", stats.ExpectedFraction(c)*100)))
		if c == poker.HighCard {
			break
		}
	}

	w.Flush()
}
