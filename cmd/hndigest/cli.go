package main

import (
	"context"
	"io"
	"log/slog"

	hndigest "github.com/chris-buckminster/hn-daily-digest"
	"github.com/chris-buckminster/hn-daily-digest/config"
	"github.com/chris-buckminster/hn-daily-digest/digest"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	Logger   *slog.Logger
	Config   *config.Config
	Builder  *digest.Builder
	Renderer hndigest.Renderer
	Writer   hndigest.ArtifactWriter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Config  string `help:"Path to a YAML config file"`
	Verbose bool   `short:"v" help:"Enable debug logging"`

	Generate GenerateCmd `cmd:"" default:"1" help:"Generate the digest for yesterday (UTC)"`
	Schedule ScheduleCmd `cmd:"" help:"Keep running and generate the digest daily at a fixed time"`
}

// GenerateFlags are shared by the generate and schedule commands. Zero
// values mean "not set" and keep the config file's value.
type GenerateFlags struct {
	Output      string `short:"o" help:"Output directory"`
	Format      string `short:"f" help:"Artifact format: html, markdown, or rss"`
	Extractor   string `help:"Article extraction strategy: trafilatura or readability"`
	Posts       int    `short:"n" help:"How many top stories to include"`
	Comments    int    `help:"How many top comments to keep per story"`
	Concurrency int    `short:"c" help:"How many stories to process at once"`
}

// GenerateCmd is the "generate" subcommand.
type GenerateCmd struct {
	GenerateFlags
}

// ScheduleCmd is the "schedule" subcommand.
type ScheduleCmd struct {
	GenerateFlags

	At       string `help:"Daily run time in HH:MM form"`
	Timezone string `help:"IANA timezone the run time is evaluated in"`
}
