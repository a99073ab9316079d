package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/callscore"
	"github.com/fwojciec/callscore/extract"
	"github.com/fwojciec/callscore/html"
	"github.com/fwojciec/callscore/htmltomarkdown"
	callhttp "github.com/fwojciec/callscore/http"
	"github.com/fwojciec/callscore/jsonschema"
	"github.com/fwojciec/callscore/pdf"
	callslog "github.com/fwojciec/callscore/slog"
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
	// Client is the analysis service client, available after Run parses
	// its arguments.
	Client *callhttp.Client
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
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
		kong.Name("callscore"),
		kong.Description("Score earnings call transcripts with a remote analysis service"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'callscore --help' to see available commands")
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

	cfg, err := LoadConfig(cli.Config)
	if err != nil {
		fmt.Fprintf(stderr, "error: %s\n", callscore.ErrorMessage(err))
		return err
	}
	deps.Config = cfg.Override(cli.Endpoint, cli.Timeout, "", "")

	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelDebug
	}
	deps.Logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	checker, err := jsonschema.NewChecker()
	if err != nil {
		return fmt.Errorf("failed to compile response schema: %w", err)
	}
	m.Client = callhttp.NewClient(deps.Config.Endpoint,
		callhttp.WithTimeout(deps.Config.Timeout),
		callhttp.WithShapeChecker(checker),
	)

	deps.Extractor = callslog.NewLoggingExtractor(extract.NewExtractor(pdf.NewOpener()), deps.Logger)
	deps.Analyzer = callslog.NewLoggingAnalyzer(m.Client, deps.Logger)
	deps.Samples = m.Client
	deps.Health = m.Client

	return kongCtx.Run(deps)
}

// NewPresenter returns the presenter for an output format.
func NewPresenter(format string) (callscore.Presenter, error) {
	switch strings.ToLower(format) {
	case FormatText:
		return callscore.TextPresenter{}, nil
	case FormatHTML:
		return html.NewPresenter(), nil
	case FormatMarkdown, "md":
		return htmltomarkdown.NewPresenter(html.NewPresenter(), htmltomarkdown.NewConverter()), nil
	default:
		return nil, callscore.Errorf(callscore.EINVALID, "unknown format %q (want text, markdown or html)", format)
	}
}
