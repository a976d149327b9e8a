package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/mstolarski/emwiki"
	"github.com/mstolarski/emwiki/crawl"
	"github.com/mstolarski/emwiki/goquery"
	emwikihttp "github.com/mstolarski/emwiki/http"
	emwikislog "github.com/mstolarski/emwiki/slog"
	"github.com/mstolarski/emwiki/sqlite"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database used by the character store.
	DB *sqlite.DB

	// Service for end-to-end testing.
	CharacterService emwiki.CharacterService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("emwiki"),
		kong.Description("Fire Emblem wiki character scraper"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'emwiki --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set EMWIKI_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	m.CharacterService = sqlite.NewCharacterService(m.DB)
	deps.Characters = m.CharacterService

	if cmd == "crawl" {
		fetcher := emwikihttp.NewFetcher()
		defer fetcher.Close()

		var links emwiki.LinkDiscoverer = goquery.NewDiscoverer(cli.Crawl.BaseURL)
		var extractor emwiki.CharacterExtractor = goquery.NewExtractor(
			cli.Crawl.BaseURL,
			goquery.WithMaxOtherImages(cli.Crawl.MaxImages),
		)

		if cli.Crawl.Verbose {
			logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
			links = emwikislog.NewLoggingLinkDiscoverer(links, logger)
			extractor = emwikislog.NewLoggingCharacterExtractor(extractor, logger)
		}

		deps.Crawler = &crawl.Crawler{
			Fetcher:     fetcher,
			Links:       links,
			Characters:  extractor,
			Store:       m.CharacterService,
			Limiter:     crawl.NewDomainLimiter(cli.Crawl.Rate),
			Concurrency: cli.Crawl.Concurrency,
			MaxListings: cli.Crawl.MaxListings,
		}
	}

	return kongCtx.Run(deps)
}

func defaultDBPath() string {
	if path := os.Getenv("EMWIKI_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "emwiki.db"
	}
	dir := filepath.Join(home, ".emwiki")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "emwiki.db")
}
