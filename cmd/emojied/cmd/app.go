package cmd

import (
	"errors"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/gogpu/gg"

	"emojied/internal/config"
	"emojied/internal/dataset"
	"emojied/internal/domain"
	"emojied/internal/eventbus"
	"emojied/internal/matcher"
	"emojied/internal/raster"
)

var errNoMatch = errors.New("no emojis found")

// app holds what every command needs
type app struct {
	bus       eventbus.EventBus
	configSvc config.ConfigService
	cfg       *config.Config
	ds        *dataset.Dataset
	matcher   *matcher.Matcher
	logs      io.Closer
}

// loadApp reads config and dataset, honouring --config and --dataset, and
// points logging at the configured log file. Callers must Close the app.
func loadApp(bus eventbus.EventBus) (*app, error) {
	path := configPath
	if path == "" {
		path = config.DefaultPath()
	}
	svc := config.NewConfigServiceWithBus(path, bus)
	cfg, err := svc.Load()
	if err != nil {
		return nil, err
	}
	if datasetPath != "" {
		cfg.Dataset.Path = datasetPath
	}

	logs := setupLogging(cfg)
	logEvents(bus)

	ds, err := dataset.Load(cfg.Dataset.Path)
	if err != nil {
		if logs != nil {
			logs.Close()
		}
		return nil, fmt.Errorf("failed to load dataset: %w", err)
	}
	bus.Publish(eventbus.DatasetLoadedEvent{Source: ds.Source(), Count: ds.Len()})

	return &app{
		bus:       bus,
		configSvc: svc,
		cfg:       cfg,
		ds:        ds,
		matcher:   matcher.New(ds, matcherOptions(cfg)),
		logs:      logs,
	}, nil
}

// Close releases the log file
func (a *app) Close() error {
	if a.logs == nil {
		return nil
	}
	log.SetOutput(io.Discard)
	return a.logs.Close()
}

func matcherOptions(cfg *config.Config) matcher.Options {
	opts := matcher.DefaultOptions()
	opts.Threshold = cfg.Search.Threshold
	opts.Distance = cfg.Search.Distance
	opts.Algorithm = matcher.Algorithm(cfg.Search.Algorithm)
	opts.IgnoreDiacritics = cfg.Search.IgnoreDiacritics
	return opts
}

// newRasterizer builds the PNG exporter from the export settings
func newRasterizer(cfg *config.Config, saver raster.Saver) (*raster.Rasterizer, error) {
	src, err := raster.LoadFont(cfg.Export.FontPath)
	if err != nil {
		return nil, err
	}
	return raster.New(raster.NewGGCanvas(src, cfg.Export.Color), saver, cfg.Export.Size), nil
}

// setupLogging sends the standard logger and gg's slog logger to the log
// file. The returned closer is nil when no file was opened.
func setupLogging(cfg *config.Config) io.Closer {
	if cfg.Log.File == "" {
		log.SetOutput(io.Discard)
		return nil
	}
	logFile, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Printf("Could not open log file: %v", err)
		return nil
	}
	log.SetOutput(logFile)
	gg.SetLogger(slog.New(slog.NewTextHandler(logFile, &slog.HandlerOptions{
		Level: parseLevel(cfg.Log.Level),
	})))
	return logFile
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// logEvents writes every domain event to the standard logger
func logEvents(bus eventbus.EventBus) {
	for _, t := range []eventbus.EventType{
		eventbus.EventModeToggled,
		eventbus.EventNotificationShown,
		eventbus.EventActivationFailed,
		eventbus.EventDatasetLoaded,
		eventbus.EventDatasetReloadFailed,
		eventbus.EventConfigLoaded,
		eventbus.EventConfigSaved,
	} {
		bus.Subscribe(t, func(e eventbus.DomainEvent) {
			log.Printf("event %s: %+v", e.Type(), e)
		})
	}
}

// bestMatch resolves a query to a glyph. A query that is itself a glyph in
// the dataset wins over a name match.
func (a *app) bestMatch(query string) (domain.Glyph, error) {
	if g, ok := a.ds.ByChar(query); ok {
		return g, nil
	}
	results := a.matcher.Search(query)
	if len(results) == 0 {
		return domain.Glyph{}, fmt.Errorf("%w for %q", errNoMatch, query)
	}
	return results[0], nil
}
