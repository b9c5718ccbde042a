package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/docsnip"
	"github.com/fwojciec/docsnip/etree"
	"github.com/fwojciec/docsnip/fs"
	"github.com/fwojciec/docsnip/git"
	"github.com/fwojciec/docsnip/pipeline"
	docslog "github.com/fwojciec/docsnip/slog"
	"github.com/fwojciec/docsnip/sqlite"
	"github.com/fwojciec/docsnip/yaml"
	"github.com/joho/godotenv"
)

func main() {
	ctx := context.Background()

	// Environment from .env is optional.
	_ = godotenv.Load()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", docsnip.ErrorMessage(err))
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path for the report ledger. Set before calling Run().
	DBPath string

	// SQLite database used by the report ledger.
	DB *sqlite.DB
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

// ledgerCommands are the commands that read or write stage reports.
var ledgerCommands = map[string]bool{
	"check":   true,
	"extract": true,
	"run":     true,
	"report":  true,
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
		kong.Name("docsnip"),
		kong.Description("Turn component documentation into IDE live templates"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'docsnip --help' to see available commands")
	}

	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	cmd := strings.Fields(kongCtx.Command())[0]

	cfg, err := loadConfig(cli)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	deps.Config = cfg
	deps.Logger = logger

	if ledgerCommands[cmd] {
		m.DB = sqlite.NewDB(m.DBPath)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintf(stderr, "Hint: Set DOCSNIP_DB to use a different database path\n")
			return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
		}
		defer m.Close()
		deps.Reports = sqlite.NewReportService(m.DB)
	}

	if err := m.wire(deps, cli.Verbose); err != nil {
		return err
	}

	return kongCtx.Run(deps)
}

// wire builds the stage services from the loaded configuration.
func (m *Main) wire(deps *Dependencies, verbose bool) error {
	cfg, logger := deps.Config, deps.Logger

	classifier, err := docsnip.NewClassifier(cfg.Policy)
	if err != nil {
		return err
	}
	classifier = docslog.NewLoggingClassifier(classifier, logger)

	source := fs.NewSource()
	templates := etree.NewTemplateStore(cfg.TemplatesDir)
	records := docslog.NewLoggingRecordStore(fs.NewRecordStore(cfg.RecordsDir, cfg.Overwrite), logger)

	var opts []git.Option
	if verbose {
		opts = append(opts, git.WithProgress(deps.Stderr))
	}

	deps.Source = source
	deps.Classifier = classifier
	deps.Fetcher = docslog.NewLoggingFetcher(git.NewFetcher(cfg.Repository, opts...), logger)
	deps.Checker = &pipeline.Checker{
		Source:     source,
		Classifier: classifier,
		AutoDocs:   fs.NewWriter(cfg.AutoDocsDir, cfg.Overwrite),
		Review:     &pipeline.ReviewRouter{Writer: fs.NewWriter(cfg.ManualDocsDir, false)},
		Reports:    deps.Reports,
	}
	deps.Extractor = &pipeline.Extractor{
		Source:     source,
		Classifier: classifier,
		Records:    records,
		Reports:    deps.Reports,
	}
	deps.Assembler = &pipeline.Assembler{
		Records:   records,
		Templates: docslog.NewLoggingTemplateWriter(templates, logger),
		Config:    cfg.Templates,
	}
	deps.TemplateSets = templates
	deps.Installer = fs.NewInstaller()
	return nil
}

// loadConfig reads the config file and applies flag overrides.
func loadConfig(cli *CLI) (*docsnip.Config, error) {
	cfg, err := yaml.LoadConfig(cli.Config)
	if err != nil {
		return nil, err
	}
	if cli.Policy != "" {
		cfg.Policy = docsnip.Policy(cli.Policy)
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

func defaultDBPath() string {
	if path := os.Getenv("DOCSNIP_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "docsnip.db"
	}
	dir := filepath.Join(home, ".docsnip")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "docsnip.db")
}
