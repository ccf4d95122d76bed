package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/saaga0h/jeeves-daylight/internal/preview"
	"github.com/saaga0h/jeeves-daylight/pkg/config"
	"github.com/saaga0h/jeeves-daylight/pkg/hsv"
	"github.com/saaga0h/jeeves-daylight/pkg/light"
	"github.com/saaga0h/jeeves-daylight/pkg/solar"
)

func main() {
	// Load configuration with hierarchy: defaults → file → env → flags
	cfg := config.NewConfig()
	if err := cfg.Load(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(1)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(1)
	}

	// Set up structured logging
	logLevel := parseLogLevel(cfg.LogLevel)
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	logger.Info("Starting J.E.E.V.E.S. Daylight Preview",
		"version", "1.0",
		"service_name", cfg.ServiceName,
		"latitude", cfg.Latitude,
		"longitude", cfg.Longitude,
		"timezone", cfg.Timezone,
		"log_level", cfg.LogLevel)

	if err := run(cfg, time.Now(), os.Stdout, logger); err != nil {
		logger.Error("Preview failed", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, now time.Time, out io.Writer, logger *slog.Logger) error {
	loc := cfg.Location()
	previewer := preview.NewPreviewer(solar.Suncalc{Location: loc}, logger)
	pos := solar.Position{
		Latitude:  cfg.Latitude,
		Longitude: cfg.Longitude,
		Height:    cfg.Height,
	}

	day := cfg.Day(now)
	fmt.Fprintf(out, "Daylight on %s at %.4f, %.4f\n", day.Format(time.DateOnly), pos.Latitude, pos.Longitude)
	samples := previewer.DayCurve(day, pos, cfg.SampleInterval())
	if err := preview.WriteDayCurve(out, samples); err != nil {
		return err
	}

	from := hsv.Color{
		Hue:        float32(cfg.FromHue),
		Saturation: float32(cfg.Saturation),
		Brightness: float32(cfg.FromBrightness),
	}
	to := hsv.Color{
		Hue:        float32(cfg.ToHue),
		Saturation: float32(cfg.Saturation),
		Brightness: float32(cfg.ToBrightness),
	}
	steps := light.Steps{
		Hue:        float32(cfg.HueStep),
		Saturation: float32(cfg.SaturationStep),
		Brightness: float32(cfg.BrightnessStep),
	}

	fmt.Fprintln(out)
	if err := preview.WriteColors(out, "Stepped transition", previewer.Transition(from, to, steps, cfg.MaxTicks)); err != nil {
		return err
	}

	fmt.Fprintln(out)
	if err := preview.WriteColors(out, "One-shot blend", previewer.Blend(from, to, cfg.BlendFrames)); err != nil {
		return err
	}

	logger.Info("Preview complete", "samples", len(samples))
	return nil
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
