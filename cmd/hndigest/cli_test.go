package main_test

import (
	"bytes"
	"testing"

	"github.com/alecthomas/kong"
	main "github.com/chris-buckminster/hn-daily-digest/cmd/hndigest"
	"github.com/chris-buckminster/hn-daily-digest/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestParser(t *testing.T, cli *main.CLI) (*kong.Kong, *bytes.Buffer) {
	t.Helper()

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	// Use kong.Exit to prevent os.Exit from being called during tests
	parser, err := kong.New(cli,
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	require.NoError(t, err)
	return parser, stdout
}

func TestCLI_HelpShowsAllCommands(t *testing.T) {
	t.Parallel()

	parser, stdout := newTestParser(t, &main.CLI{})

	// Parse --help (Kong writes help to stdout)
	_, _ = parser.Parse([]string{"--help"})

	helpOutput := stdout.String()
	for _, cmd := range []string{"generate", "schedule"} {
		assert.Contains(t, helpOutput, cmd, "Help should mention %s command", cmd)
	}
}

func TestCLI_DefaultCommandIsGenerate(t *testing.T) {
	t.Parallel()

	parser, _ := newTestParser(t, &main.CLI{})

	ctx, err := parser.Parse([]string{})
	require.NoError(t, err)
	assert.Equal(t, "generate", ctx.Command())
}

func TestCLI_ParsesGenerateFlags(t *testing.T) {
	t.Parallel()

	cli := &main.CLI{}
	parser, _ := newTestParser(t, cli)

	_, err := parser.Parse([]string{
		"generate",
		"-o", "/tmp/digests",
		"-f", "markdown",
		"--extractor", "readability",
		"-n", "5",
		"--comments", "3",
		"-c", "2",
	})
	require.NoError(t, err)

	assert.Equal(t, "/tmp/digests", cli.Generate.Output)
	assert.Equal(t, "markdown", cli.Generate.Format)
	assert.Equal(t, "readability", cli.Generate.Extractor)
	assert.Equal(t, 5, cli.Generate.Posts)
	assert.Equal(t, 3, cli.Generate.Comments)
	assert.Equal(t, 2, cli.Generate.Concurrency)
}

func TestCLI_ParsesScheduleFlags(t *testing.T) {
	t.Parallel()

	cli := &main.CLI{}
	parser, _ := newTestParser(t, cli)

	_, err := parser.Parse([]string{
		"schedule",
		"--at", "07:15",
		"--timezone", "Europe/Warsaw",
		"-f", "rss",
	})
	require.NoError(t, err)

	assert.Equal(t, "07:15", cli.Schedule.At)
	assert.Equal(t, "Europe/Warsaw", cli.Schedule.Timezone)
	assert.Equal(t, "rss", cli.Schedule.Format)
}

func TestApplyFlags(t *testing.T) {
	t.Parallel()

	t.Run("flags override config values", func(t *testing.T) {
		t.Parallel()

		cfg := config.Defaults()
		cli := &main.CLI{}
		cli.Generate.Output = "/tmp/out"
		cli.Generate.Format = "markdown"
		cli.Generate.Posts = 7

		main.ApplyFlags(cfg, cli)

		assert.Equal(t, "/tmp/out", cfg.OutputDir)
		assert.Equal(t, "markdown", cfg.Format)
		assert.Equal(t, 7, cfg.Posts)
	})

	t.Run("unset flags keep config values", func(t *testing.T) {
		t.Parallel()

		cfg := config.Defaults()
		cfg.OutputDir = "/var/digests"
		cfg.Posts = 4

		main.ApplyFlags(cfg, &main.CLI{})

		assert.Equal(t, "/var/digests", cfg.OutputDir)
		assert.Equal(t, 4, cfg.Posts)
		assert.Equal(t, "html", cfg.Format)
	})

	t.Run("schedule flags override run time and zone", func(t *testing.T) {
		t.Parallel()

		cfg := config.Defaults()
		cli := &main.CLI{}
		cli.Schedule.At = "21:00"
		cli.Schedule.Timezone = "America/New_York"
		cli.Schedule.Comments = 2

		main.ApplyFlags(cfg, cli)

		assert.Equal(t, "21:00", cfg.ScheduleTime)
		assert.Equal(t, "America/New_York", cfg.Timezone)
		assert.Equal(t, 2, cfg.Comments)
	})
}
