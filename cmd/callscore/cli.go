package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/callscore"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Logger    *slog.Logger
	Config    Config
	Extractor callscore.Extractor
	Analyzer  callscore.Analyzer
	Samples   callscore.SampleService
	Health    callscore.HealthChecker
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Endpoint string        `short:"e" env:"CALLSCORE_ENDPOINT" help:"Analysis service URL (default http://localhost:8001)"`
	Config   string        `short:"c" env:"CALLSCORE_CONFIG" type:"path" help:"YAML config file"`
	Timeout  time.Duration `help:"Request timeout (0 uses transport defaults)"`
	Verbose  bool          `short:"v" help:"Enable debug logging"`

	Extract ExtractCmd `cmd:"" help:"Print the text extracted from a transcript file"`
	Analyze AnalyzeCmd `cmd:"" help:"Analyze a transcript file and print the report"`
	Health  HealthCmd  `cmd:"" help:"Check the analysis service health"`
	Samples SamplesCmd `cmd:"" help:"List sample analyses offered by the service"`
	Sample  SampleCmd  `cmd:"" help:"Print the report for a sample analysis"`
	Serve   ServeCmd   `cmd:"" help:"Serve the analyzer as a local web page"`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	Path string `arg:"" type:"existingfile" help:"Transcript file (.txt or .pdf)"`
}

// AnalyzeCmd is the "analyze" subcommand.
type AnalyzeCmd struct {
	Path   string `arg:"" type:"existingfile" help:"Transcript file (.txt or .pdf)"`
	Format string `short:"f" help:"Output format: text, markdown or html"`
}

// HealthCmd is the "health" subcommand.
type HealthCmd struct{}

// SamplesCmd is the "samples" subcommand.
type SamplesCmd struct{}

// SampleCmd is the "sample" subcommand.
type SampleCmd struct {
	Key    string `arg:"" help:"Sample key"`
	Format string `short:"f" help:"Output format: text, markdown or html"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr string `short:"a" help:"Listen address (default 127.0.0.1:8080)"`
}
