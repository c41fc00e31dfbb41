// Package main provides newsctl, a terminal client for the news brief API.
// Usage: newsctl <headlines|search|summarize|browse> [flags]
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"

	"newsbrief/internal/config"
	"newsbrief/internal/domain/entity"
	"newsbrief/internal/infra/apiclient"
	"newsbrief/internal/observability/logging"
	"newsbrief/internal/usecase/view"
)

// newsAPI is the subset of apiclient.Client used by the commands.
type newsAPI interface {
	Headlines(ctx context.Context, category string) ([]entity.Article, error)
	Search(ctx context.Context, q string) ([]entity.Article, error)
	Summarize(ctx context.Context, articleURL string) (string, error)
}

// app carries what every subcommand needs.
type app struct {
	api     newsAPI
	catalog *config.NewsCatalog
	stdin   io.Reader
	stdout  io.Writer
	stderr  io.Writer
}

var errUsage = errors.New("usage")

func main() {
	_ = godotenv.Load()

	logger := initLogger()

	catalog, err := config.LoadCatalog(os.Getenv("NEWS_CATALOG_FILE"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: Failed to load news catalog: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a := &app{
		api:     apiclient.New(os.Getenv("NEWSBRIEF_URL"), apiclient.WithLogger(logger)),
		catalog: catalog,
		stdin:   os.Stdin,
		stdout:  os.Stdout,
		stderr:  os.Stderr,
	}
	os.Exit(a.run(ctx, os.Args[1:]))
}

// initLogger writes human readable logs to stderr so they never mix with
// command output. Only warnings are shown unless LOG_LEVEL is set.
func initLogger() *slog.Logger {
	level := slog.LevelWarn
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		level = logging.ParseLevel(v)
	}
	return logging.New(os.Stderr, logging.FormatText, level)
}

// run executes one subcommand and returns the process exit code.
func (a *app) run(ctx context.Context, args []string) int {
	if len(args) == 0 {
		a.usage()
		return 2
	}

	var err error
	switch args[0] {
	case "headlines":
		err = a.headlines(ctx, args[1:])
	case "search":
		err = a.search(ctx, args[1:])
	case "summarize":
		err = a.summarize(ctx, args[1:])
	case "browse":
		err = a.browse(ctx, args[1:])
	case "-h", "--help", "help":
		a.usage()
		return 0
	default:
		fmt.Fprintf(a.stderr, "Error: Unknown command '%s'\n\n", args[0])
		a.usage()
		return 2
	}

	switch {
	case err == nil:
		return 0
	case errors.Is(err, errUsage):
		return 2
	default:
		fmt.Fprintf(a.stderr, "Error: %v\n", err)
		return 1
	}
}

func (a *app) usage() {
	fmt.Fprintln(a.stderr, "Usage: newsctl <command> [flags]")
	fmt.Fprintln(a.stderr, "")
	fmt.Fprintln(a.stderr, "Commands:")
	fmt.Fprintln(a.stderr, "  headlines [--category name] [--output json]   Show top headlines")
	fmt.Fprintln(a.stderr, "  search --q text [--output json]               Search all articles")
	fmt.Fprintln(a.stderr, "  summarize --url article-url                   Summarize an article")
	fmt.Fprintln(a.stderr, "  browse [--category name]                      Interactive reader")
	fmt.Fprintln(a.stderr, "")
	fmt.Fprintln(a.stderr, "Environment:")
	fmt.Fprintf(a.stderr, "  NEWSBRIEF_URL  API server address (default %s)\n", apiclient.DefaultBaseURL)
}

func (a *app) newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet("newsctl "+name, flag.ContinueOnError)
	fs.SetOutput(a.stderr)
	return fs
}

// parseFlags parses args. flag has already reported any error, so it is
// returned as a usage error.
func parseFlags(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %w", errUsage, err)
	}
	return nil
}

func (a *app) headlines(ctx context.Context, args []string) error {
	fs := a.newFlagSet("headlines")
	category := fs.String("category", a.catalog.DefaultCategory, "Headline category or reserved source token")
	output := fs.String("output", "text", "Output format: text or json")
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	state := view.NewListState(*category)
	return a.list(ctx, state, state.Load(), *output)
}

func (a *app) search(ctx context.Context, args []string) error {
	fs := a.newFlagSet("search")
	q := fs.String("q", "", "Search text (required)")
	output := fs.String("output", "text", "Output format: text or json")
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	state := view.NewListState(a.catalog.DefaultCategory)
	fetch, ok := state.SubmitSearch(*q)
	if !ok {
		fmt.Fprintln(a.stderr, "Error: --q is required")
		fs.Usage()
		return errUsage
	}
	return a.list(ctx, state, fetch, *output)
}

// list performs fetch, resolves state and prints it.
func (a *app) list(ctx context.Context, state *view.ListState, fetch view.Fetch, output string) error {
	articles, err := a.fetch(ctx, fetch)
	state.Resolve(articles, err)

	if output == "json" {
		if err != nil {
			return err
		}
		enc := json.NewEncoder(a.stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(articles)
	}

	if rerr := view.RenderList(a.stdout, state, a.catalog.CategoryNames()); rerr != nil {
		return rerr
	}
	return err
}

func (a *app) fetch(ctx context.Context, f view.Fetch) ([]entity.Article, error) {
	if f.IsSearch() {
		return a.api.Search(ctx, f.Query)
	}
	return a.api.Headlines(ctx, f.Category)
}

func (a *app) summarize(ctx context.Context, args []string) error {
	fs := a.newFlagSet("summarize")
	articleURL := fs.String("url", "", "Article URL (required)")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if strings.TrimSpace(*articleURL) == "" {
		fmt.Fprintln(a.stderr, "Error: --url is required")
		fs.Usage()
		return errUsage
	}

	summary, err := a.api.Summarize(ctx, *articleURL)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(a.stdout, summary)
	return err
}
