// cmd/simulate/main.go
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"survivors-night/internal/app"
	"survivors-night/internal/config"
	"survivors-night/internal/input"
)

const step = 1.0 / 60.0

var (
	duration   = flag.Duration("duration", 5*time.Minute, "simulated time to run for")
	timeout    = flag.Duration("timeout", time.Minute, "wall-clock limit")
	seed       = flag.Int64("seed", 1, "PRNG seed")
	script     = flag.String("input", "circle", "scripted input: idle|circle")
	format     = flag.String("format", "json", "report format: json|msgpack")
	configPath = flag.String("config", "", "YAML config file")
	snapshots  = flag.Bool("snapshots", false, "write one snapshot per simulated second before the report")
)

var errUnknownFormat = errors.New("unknown report format")

// encoder writes one value per call.
type encoder func(v any) error

func newEncoder(w io.Writer, name string) (encoder, error) {
	switch name {
	case "json":
		return json.NewEncoder(w).Encode, nil
	case "msgpack":
		return msgpack.NewEncoder(w).Encode, nil
	default:
		return nil, fmt.Errorf("%w: %q", errUnknownFormat, name)
	}
}

func main() {
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		cfg = loaded
	}
	cfg.Seed = *seed
	logger := config.NewLogger(os.Stderr, cfg.LogLevel, true)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, *timeout)
	defer cancel()

	if err := run(ctx, cfg, logger, os.Stdout); err != nil {
		logger.Error("simulation failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config, logger *slog.Logger, out io.Writer) error {
	in, err := input.ByName(*script)
	if err != nil {
		return err
	}
	encode, err := newEncoder(out, *format)
	if err != nil {
		return err
	}
	g, err := app.NewGame(cfg, in, logger)
	if err != nil {
		return err
	}

	total := int(math.Round(duration.Seconds() / step))
	perSecond := int(1 / step)
	started := time.Now()
	for tick := 1; tick <= total; tick++ {
		if err := ctx.Err(); err != nil {
			logger.Warn("simulation interrupted", "tick", tick, "reason", err)
			break
		}
		over := g.Update(step)
		if *snapshots && tick%perSecond == 0 {
			if err := encode(g.Snapshot()); err != nil {
				return fmt.Errorf("failed to write snapshot: %w", err)
			}
		}
		if over {
			break
		}
	}

	report := g.Report()
	logger.Info("simulation done",
		"ticks", report.Ticks,
		"survival", report.Survival,
		"score", report.Final.Score,
		"wall", time.Since(started).String(),
	)
	if err := encode(report); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}
