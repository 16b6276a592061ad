package main

import (
	"errors"
	"log/slog"
	"os"

	"github.com/urfave/cli"

	"github.com/dotmatrix-gb/dotmatrix/dotmatrix"
	"github.com/dotmatrix-gb/dotmatrix/dotmatrix/backend"
	"github.com/dotmatrix-gb/dotmatrix/dotmatrix/backend/headless"
	"github.com/dotmatrix-gb/dotmatrix/dotmatrix/backend/sdl2"
	"github.com/dotmatrix-gb/dotmatrix/dotmatrix/backend/terminal"
	"github.com/dotmatrix-gb/dotmatrix/dotmatrix/saves"
	"github.com/dotmatrix-gb/dotmatrix/dotmatrix/timing"
)

func main() {
	app := cli.NewApp()
	app.Name = "dotmatrix"
	app.Description = "A DMG Game Boy emulator"
	app.Usage = "dotmatrix [options] <ROM file>"
	app.Version = "1.0.0"
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "rom",
			Usage: "Path to the ROM file",
		},
		cli.StringFlag{
			Name:  "backend",
			Usage: "Display backend: terminal or sdl2",
			Value: "terminal",
		},
		cli.StringFlag{
			Name:  "save-dir",
			Usage: "Directory for savefiles",
			Value: "savefiles",
		},
		cli.BoolFlag{
			Name:  "headless",
			Usage: "Run without a display",
		},
		cli.IntFlag{
			Name:  "frames",
			Usage: "Number of frames to run in headless mode",
			Value: 0,
		},
	}
	app.Action = runEmulator

	if err := app.Run(os.Args); err != nil {
		slog.Error("error running emulator", "error", err)
		os.Exit(1)
	}
}

func runEmulator(c *cli.Context) error {
	romPath := c.String("rom")
	if romPath == "" {
		if c.NArg() == 0 {
			cli.ShowAppHelp(c)
			return errors.New("no ROM path provided")
		}
		romPath = c.Args().Get(0)
	}

	b, limiter, err := selectBackend(c)
	if err != nil {
		return err
	}

	store := saves.NewFileStore(c.String("save-dir"))

	emu, err := dotmatrix.NewEmulator(romPath, b, store, limiter)
	if err != nil {
		return err
	}

	return emu.Run()
}

func selectBackend(c *cli.Context) (backend.Backend, timing.Limiter, error) {
	if c.Bool("headless") {
		frames := c.Int("frames")
		if frames <= 0 {
			return nil, nil, errors.New("headless mode requires --frames with a positive value")
		}
		return headless.New(frames), timing.NewNoOpLimiter(), nil
	}

	switch name := c.String("backend"); name {
	case "terminal":
		return terminal.New(), timing.NewFrameLimiter(), nil
	case "sdl2":
		b, err := sdl2.New()
		if err != nil {
			return nil, nil, err
		}
		return b, timing.NewFrameLimiter(), nil
	default:
		return nil, nil, errors.New("unknown backend: " + name)
	}
}
