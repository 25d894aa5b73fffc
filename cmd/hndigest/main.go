package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	hndigest "github.com/chris-buckminster/hn-daily-digest"
	"github.com/chris-buckminster/hn-daily-digest/algolia"
	"github.com/chris-buckminster/hn-daily-digest/bluemonday"
	"github.com/chris-buckminster/hn-daily-digest/config"
	"github.com/chris-buckminster/hn-daily-digest/digest"
	"github.com/chris-buckminster/hn-daily-digest/firebase"
	"github.com/chris-buckminster/hn-daily-digest/fs"
	"github.com/chris-buckminster/hn-daily-digest/gemini"
	"github.com/chris-buckminster/hn-daily-digest/goquery"
	"github.com/chris-buckminster/hn-daily-digest/htmltomarkdown"
	hnhttp "github.com/chris-buckminster/hn-daily-digest/http"
	"github.com/chris-buckminster/hn-daily-digest/readability"
	"github.com/chris-buckminster/hn-daily-digest/render"
	hnslog "github.com/chris-buckminster/hn-daily-digest/slog"
	"github.com/chris-buckminster/hn-daily-digest/trafilatura"
	"github.com/google/uuid"
	"google.golang.org/genai"
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
	// ConfigPath is the config file consulted when --config is not given.
	// Set before calling Run().
	ConfigPath string
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{ConfigPath: defaultConfigPath()}
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
		kong.Name("hndigest"),
		kong.Description("Generates a daily reading digest of yesterday's top Hacker News stories."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) > 0 {
		cmd := args[0]
		if cmd == "help" || cmd == "--help" || cmd == "-h" {
			_, _ = parser.Parse([]string{"--help"})
			return nil
		}
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	cfg, err := m.loadConfig(cli)
	if err != nil {
		fmt.Fprintf(stderr, "error: %s\n", hndigest.ErrorMessage(err))
		return err
	}
	ApplyFlags(cfg, cli)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "error: %s\n", hndigest.ErrorMessage(err))
		return err
	}

	outputDir := cfg.OutputDir
	if outputDir == "" {
		outputDir = defaultOutputDir()
	}

	logger, closeLog, err := setupLogger(outputDir, stderr, cli.Verbose)
	if err != nil {
		return err
	}
	defer closeLog()

	var summarizer hndigest.Summarizer
	if apiKey := os.Getenv("GEMINI_API_KEY"); apiKey != "" {
		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  apiKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
			return fmt.Errorf("failed to connect to Gemini API: %w", err)
		}
		summarizer = gemini.NewSummarizer(client, cfg.GeminiModel)
	}

	deps.Logger = logger
	deps.Config = cfg
	deps.Builder = buildBuilder(cfg, summarizer, logger)
	deps.Renderer = buildRenderer(cfg)
	deps.Writer = fs.NewWriter(outputDir)

	return kongCtx.Run(deps)
}

// loadConfig resolves the config for this run. A missing file at the
// default location falls back to defaults; a missing file named with
// --config is an error.
func (m *Main) loadConfig(cli *CLI) (*config.Config, error) {
	path := cli.Config
	explicit := path != ""
	if !explicit {
		path = m.ConfigPath
	}

	cfg, err := config.Load(path)
	if err != nil {
		if !explicit && hndigest.ErrorCode(err) == hndigest.ENOTFOUND {
			return config.Defaults(), nil
		}
		return nil, err
	}
	return cfg, nil
}

// ApplyFlags merges command-line overrides into the config. Flags win over
// the file; unset flags keep the file's values.
func ApplyFlags(cfg *config.Config, cli *CLI) {
	for _, f := range []GenerateFlags{cli.Generate.GenerateFlags, cli.Schedule.GenerateFlags} {
		if f.Output != "" {
			cfg.OutputDir = f.Output
		}
		if f.Format != "" {
			cfg.Format = f.Format
		}
		if f.Extractor != "" {
			cfg.Extractor = f.Extractor
		}
		if f.Posts > 0 {
			cfg.Posts = f.Posts
		}
		if f.Comments > 0 {
			cfg.Comments = f.Comments
		}
		if f.Concurrency > 0 {
			cfg.Concurrency = f.Concurrency
		}
	}
	if cli.Schedule.At != "" {
		cfg.ScheduleTime = cli.Schedule.At
	}
	if cli.Schedule.Timezone != "" {
		cfg.Timezone = cli.Schedule.Timezone
	}
}

// buildBuilder wires the digest pipeline from the config.
func buildBuilder(cfg *config.Config, summarizer hndigest.Summarizer, logger *slog.Logger) *digest.Builder {
	var extractor hndigest.Extractor
	switch cfg.Extractor {
	case "readability":
		extractor = readability.NewExtractor()
	default:
		extractor = trafilatura.NewExtractor()
	}

	var fetcher hndigest.Fetcher = hnhttp.NewFetcher(hnhttp.WithUserAgent(cfg.UserAgent))

	return &digest.Builder{
		Discovery:    hnslog.NewLoggingDiscoveryService(algolia.NewDiscoveryService(nil), logger),
		Items:        hnslog.NewLoggingItemService(firebase.NewItemService(nil), logger),
		Fetcher:      hnslog.NewLoggingFetcher(fetcher, logger),
		Extractor:    extractor,
		Sanitizer:    hndigest.ChainSanitizers(goquery.NewRewriter(), bluemonday.NewSanitizer()),
		Summarizer:   summarizer,
		Limiter:      digest.NewDomainLimiter(cfg.ArticleRPS),
		Logger:       logger,
		PostLimit:    cfg.Posts,
		CommentLimit: cfg.Comments,
		Concurrency:  cfg.Concurrency,
	}
}

// buildRenderer selects the artifact renderer from the config.
func buildRenderer(cfg *config.Config) hndigest.Renderer {
	switch cfg.Format {
	case "markdown":
		return render.NewMarkdown(htmltomarkdown.NewConverter())
	case "rss":
		return render.NewRSS()
	default:
		return render.NewHTML()
	}
}

// setupLogger writes the run log to stderr and to a log file next to the
// artifacts. Each run is tagged with an id so interleaved scheduled runs
// can be told apart in the file.
func setupLogger(outputDir string, stderr io.Writer, verbose bool) (*slog.Logger, func(), error) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, nil, fmt.Errorf("failed to create output directory %q: %w", outputDir, err)
	}

	logPath := filepath.Join(outputDir, "hn-digest.log")
	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file %q: %w", logPath, err)
	}

	handler := slog.NewTextHandler(io.MultiWriter(stderr, logFile), &slog.HandlerOptions{Level: level})
	logger := slog.New(handler).With("run_id", uuid.NewString())
	return logger, func() { logFile.Close() }, nil
}

func defaultConfigPath() string {
	if path := os.Getenv("HN_DIGEST_CONFIG"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "hn-digest.yaml"
	}
	return filepath.Join(home, ".config", "hn-digest", "config.yaml")
}

func defaultOutputDir() string {
	if dir := os.Getenv("HN_DIGEST_OUTPUT"); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "hn-digests"
	}
	return filepath.Join(home, "Documents", "hn-digests")
}
