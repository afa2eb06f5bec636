// Command sitepipe runs the content aggregation, classification, and
// navigation stages against a playbook and prints a summary of the
// resulting catalog. It is a thin demonstration driver; the "real" site
// renderer (templates, asset pipeline, HTTP server) is an external
// collaborator that consumes the same catalog and navigation types.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"

	"github.com/inful/sitepipe/internal/aggmetrics"
	"github.com/inful/sitepipe/internal/aggregate"
	"github.com/inful/sitepipe/internal/catalog"
	"github.com/inful/sitepipe/internal/compose"
	"github.com/inful/sitepipe/internal/config"
	apperrors "github.com/inful/sitepipe/internal/foundation/errors"
	"github.com/inful/sitepipe/internal/ingest"
)

var cli struct {
	Playbook      string `arg:"" help:"Path to the playbook YAML file" default:"playbook.yml"`
	Verbose       bool   `short:"v" help:"Enable debug logging"`
	Metrics       bool   `help:"Record aggregation metrics in an in-process Prometheus registry (not printed)"`
	CheckExamples bool   `help:"Report every link found in Markdown example snippets"`
}

func main() {
	kong.Parse(&cli)

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	adapter := apperrors.NewCLIErrorAdapter(cli.Verbose, logger)
	if err := run(); err != nil {
		adapter.HandleError(err)
	}
}

func run() error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	pb, err := config.LoadPlaybook(cli.Playbook)
	if err != nil {
		return err
	}

	var recorder aggmetrics.Recorder = aggmetrics.NoopRecorder{}
	if cli.Metrics {
		recorder = aggmetrics.NewPrometheusRecorder(nil)
	}

	bundles, err := aggregate.Aggregate(ctx, pb, os.Stderr, recorder)
	if err != nil {
		return err
	}
	slog.Info("aggregation complete", "component_versions", len(bundles))

	cat, err := ingest.BuildCatalog(bundles, pb.URLs.HTMLExtensionStyle)
	if err != nil {
		return err
	}
	navCat := ingest.BuildNavigation(bundles, cat)

	composer := compose.NewComposer(pb, cat, navCat, nil)
	printSummary(composer, cat)

	if cli.CheckExamples {
		if err := reportExampleLinks(cat); err != nil {
			return err
		}
	}
	return nil
}

// reportExampleLinks runs the link-extraction pass over Markdown example
// snippets and prints one line per link found, so a maintainer can spot an
// obviously broken destination without opening every file by hand.
func reportExampleLinks(cat *catalog.ContentCatalog) error {
	links, err := ingest.ExtractExampleLinks(cat)
	if err != nil {
		return err
	}
	fmt.Printf("example links: %d\n", len(links))
	for _, l := range links {
		fmt.Printf("  %s -> %s (%s)\n", l.File.Src.Relative, l.Link.Destination, l.Link.Kind)
	}
	return nil
}

func printSummary(composer *compose.Composer, cat *catalog.ContentCatalog) {
	fmt.Printf("site: %s (%s)\n", composer.Site.Title, composer.Site.URL)
	for _, comp := range composer.Site.Components {
		fmt.Printf("  component %s: %s\n", comp.Name, comp.Title)
	}

	files := cat.FindBy(catalog.Filter{})
	fmt.Printf("classified files: %d\n", len(files))

	published := 0
	for _, f := range files {
		if f.Pub != nil {
			published++
		}
	}
	fmt.Printf("publishable: %d\n", published)
}
