package main

import (
	"context"
	"fmt"
	"os"

	flags "github.com/jessevdk/go-flags"

	catalogcmd "github.com/goliatone/go-article-index/internal/commands/catalog"
	"github.com/goliatone/go-article-index/internal/logging/gologger"
	"github.com/goliatone/go-article-index/internal/runtimeconfig"
)

type options struct {
	Root        string `long:"root" env:"ARTICLES_ROOT" required:"true" description:"Root directory of the articles tree"`
	Intro       string `long:"intro" env:"ARTICLES_INTRO" default:"intro.md" description:"Static introduction document prepended to the README"`
	ArticlesOut string `long:"articles-out" env:"ARTICLES_OUT" default:"articles.json" description:"Output path for the article metadata JSON"`
	SeriesOut   string `long:"series-out" env:"SERIES_OUT" default:"series.json" description:"Output path for the series metadata JSON"`
	ReadmeOut   string `long:"readme-out" env:"README_OUT" default:"README.md" description:"Output path for the regenerated README"`
	RawBaseURL  string `long:"raw-base-url" env:"RAW_BASE_URL" default:"https://raw.githubusercontent.com/goliatone/articles/master" description:"Source-hosting base URL for raw document links"`
	LogLevel    string `long:"log-level" env:"LOG_LEVEL" default:"info" description:"Log level (trace|debug|info|warn|error|fatal)"`
	LogFormat   string `long:"log-format" env:"LOG_FORMAT" default:"console" description:"Log format (json|console|pretty)"`
	LogSource   bool   `long:"log-source" env:"LOG_SOURCE" description:"Attach source locations to log entries"`
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "indexer: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	var opts options
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.ParseArgs(args); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			return nil
		}
		return fmt.Errorf("parse configuration: %w", err)
	}

	cfg := runtimeconfig.Config{
		Root:        opts.Root,
		Intro:       opts.Intro,
		ArticlesOut: opts.ArticlesOut,
		SeriesOut:   opts.SeriesOut,
		ReadmeOut:   opts.ReadmeOut,
		RawBaseURL:  opts.RawBaseURL,
		Logging: runtimeconfig.LoggingConfig{
			Level:     opts.LogLevel,
			Format:    opts.LogFormat,
			AddSource: opts.LogSource,
		},
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	provider, err := gologger.NewProvider(gologger.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		AddSource: cfg.Logging.AddSource,
	})
	if err != nil {
		return err
	}

	handler := catalogcmd.NewGenerateHandler(provider)
	return handler.Execute(context.Background(), catalogcmd.GenerateCommand{
		Root:        cfg.Root,
		Intro:       cfg.Intro,
		ArticlesOut: cfg.ArticlesOut,
		SeriesOut:   cfg.SeriesOut,
		ReadmeOut:   cfg.ReadmeOut,
		RawBaseURL:  cfg.RawBaseURL,
	})
}
