// Package config loads digest settings from an optional YAML file.
package config

import (
	"errors"
	"os"
	"time"

	hndigest "github.com/chris-buckminster/hn-daily-digest"
	"github.com/chris-buckminster/hn-daily-digest/cron"
	"github.com/chris-buckminster/hn-daily-digest/digest"
	hnhttp "github.com/chris-buckminster/hn-daily-digest/http"
	"gopkg.in/yaml.v3"
)

// Config holds all digest settings. Flags override file values; the file
// overrides defaults.
type Config struct {
	// OutputDir is where artifacts and the run log are written. Empty
	// means the per-user default directory.
	OutputDir string `yaml:"output_dir"`

	// Format selects the artifact renderer: html, markdown, or rss.
	Format string `yaml:"format"`

	// Extractor selects the article extraction strategy: trafilatura or
	// readability.
	Extractor string `yaml:"extractor"`

	// Posts is how many top stories go into a digest.
	Posts int `yaml:"posts"`

	// Comments is how many top comments are kept per story.
	Comments int `yaml:"comments"`

	// Concurrency is how many stories are processed at once.
	Concurrency int `yaml:"concurrency"`

	// ScheduleTime is the daily run time in HH:MM form, used by the
	// schedule command.
	ScheduleTime string `yaml:"schedule_time"`

	// Timezone is the IANA zone the schedule time is evaluated in.
	Timezone string `yaml:"timezone"`

	// GeminiModel is the model used for article ledes. Ledes are only
	// generated when GEMINI_API_KEY is set.
	GeminiModel string `yaml:"gemini_model"`

	// UserAgent identifies article fetches to the sites being read.
	UserAgent string `yaml:"user_agent"`

	// ArticleRPS is the per-domain request rate for article fetches.
	ArticleRPS float64 `yaml:"article_rps"`
}

// Defaults returns the configuration used when no file and no flags are
// given.
func Defaults() *Config {
	return &Config{
		Format:       "html",
		Extractor:    "trafilatura",
		Posts:        digest.DefaultPostLimit,
		Comments:     digest.DefaultCommentLimit,
		Concurrency:  digest.DefaultConcurrency,
		ScheduleTime: "06:30",
		Timezone:     "UTC",
		UserAgent:    hnhttp.DefaultUserAgent,
		ArticleRPS:   digest.DefaultArticleRPS,
	}
}

// Load reads a YAML config file on top of the defaults. Keys absent from
// the file keep their default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, hndigest.Errorf(hndigest.ENOTFOUND, "config file %q not found", path)
		}
		return nil, err
	}

	cfg := Defaults()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, hndigest.Errorf(hndigest.EINVALID, "parsing config file %q: %v", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that all settings are usable.
func (c *Config) Validate() error {
	switch c.Format {
	case "html", "markdown", "rss":
	default:
		return hndigest.Errorf(hndigest.EINVALID, "format must be html, markdown, or rss, got %q", c.Format)
	}

	switch c.Extractor {
	case "trafilatura", "readability":
	default:
		return hndigest.Errorf(hndigest.EINVALID, "extractor must be trafilatura or readability, got %q", c.Extractor)
	}

	if c.Posts < 1 {
		return hndigest.Errorf(hndigest.EINVALID, "posts must be at least 1, got %d", c.Posts)
	}
	if c.Comments < 1 {
		return hndigest.Errorf(hndigest.EINVALID, "comments must be at least 1, got %d", c.Comments)
	}
	if c.Concurrency < 1 {
		return hndigest.Errorf(hndigest.EINVALID, "concurrency must be at least 1, got %d", c.Concurrency)
	}
	if c.ArticleRPS <= 0 {
		return hndigest.Errorf(hndigest.EINVALID, "article_rps must be positive, got %g", c.ArticleRPS)
	}

	if _, _, err := cron.ParseClock(c.ScheduleTime); err != nil {
		return err
	}
	if _, err := time.LoadLocation(c.Timezone); err != nil {
		return hndigest.Errorf(hndigest.EINVALID, "invalid timezone %q", c.Timezone)
	}

	if c.UserAgent == "" {
		return hndigest.Errorf(hndigest.EINVALID, "user_agent must not be empty")
	}

	return nil
}

// Location returns the configured timezone. Call Validate first; an
// unknown zone falls back to UTC here.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}
