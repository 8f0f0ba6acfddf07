package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/alecthomas/kong"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/times-circle/internal/config"
	"github.com/iburimskiy/times-circle/internal/game"
	"github.com/iburimskiy/times-circle/internal/pattern"
)

type cli struct {
	Config      string `help:"TOML file with the pattern settings." type:"path"`
	Watch       bool   `help:"Reload the pattern file whenever it changes."`
	Audio       string `help:"Audio file whose loudness drives the sweep tempo." type:"existingfile"`
	Animate     bool   `help:"Start with the multiplier sweep running."`
	Flat        bool   `help:"Draw plain lines instead of tubes."`
	TPS         int    `help:"Ticks per second." default:"60"`
	LogLevel    string `help:"Log level." default:"info" enum:"debug,info,warn,error"`
	PrintConfig bool   `help:"Print the effective pattern settings as TOML and exit."`
}

func main() {
	var c cli
	kong.Parse(&c,
		kong.Name("times-circle"),
		kong.Description("Times-table circle visualizer: n points on a circle, point i linked to point i*m mod n."),
		kong.UsageOnError(),
	)
	if err := run(c); err != nil {
		fmt.Fprintln(os.Stderr, "times-circle:", err)
		os.Exit(1)
	}
}

func run(c cli) error {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	cfg := config.Default()
	if c.Config != "" {
		loaded, err := config.Load(c.Config)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if c.Animate {
		cfg.Animate = true
	}
	if c.Flat {
		cfg.ThreeDimensional = false
	}

	if c.PrintConfig {
		data, err := config.Encode(cfg)
		if err != nil {
			return err
		}
		_, err = os.Stdout.Write(data)
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var updates <-chan config.Config
	if c.Watch {
		if c.Config == "" {
			return errors.New("--watch needs --config")
		}
		ch, err := config.Watch(ctx, c.Config, log)
		if err != nil {
			return err
		}
		updates = ch
		log.Info("watching config", "path", c.Config)
	}

	g := game.New(pattern.New(cfg), log, updates)
	if c.Audio != "" {
		if err := g.Play(c.Audio); err != nil {
			return err
		}
	}

	ebiten.SetTPS(c.TPS)
	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle("Times Circle - Space: animate, D: 3D, C: color, Esc/Q: quit")

	log.Info("starting", "n", cfg.N, "m", cfg.M, "animate", cfg.Animate, "3d", cfg.ThreeDimensional)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
