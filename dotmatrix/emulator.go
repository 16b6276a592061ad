package dotmatrix

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/dotmatrix-gb/dotmatrix/dotmatrix/backend"
	"github.com/dotmatrix-gb/dotmatrix/dotmatrix/memory"
	"github.com/dotmatrix-gb/dotmatrix/dotmatrix/saves"
	"github.com/dotmatrix-gb/dotmatrix/dotmatrix/timing"
	"github.com/dotmatrix-gb/dotmatrix/dotmatrix/video"
)

// Emulator runs a DMG against a backend: it paces frames, feeds input
// events back into the machine and persists external RAM on shutdown
// and on fatal machine faults.
type Emulator struct {
	dmg     *DMG
	backend backend.Backend
	limiter timing.Limiter
	store   saves.Store

	saveName      string
	colorMapIndex int
}

// NewEmulator loads a ROM file, restores its savefile if one exists and
// wires the machine to the given backend.
func NewEmulator(romPath string, b backend.Backend, store saves.Store, limiter timing.Limiter) (*Emulator, error) {
	rom, err := os.ReadFile(romPath)
	if err != nil {
		return nil, fmt.Errorf("reading ROM: %w", err)
	}
	slog.Info("loaded ROM", "path", romPath, "size", len(rom))

	header, err := memory.ParseHeader(rom)
	if err != nil {
		return nil, err
	}
	slog.Info("parsed cartridge header",
		"title", header.Title,
		"type", header.CartridgeType.String(),
		"version", header.Version)

	ramSize, err := header.RAMBytes()
	if err != nil {
		return nil, err
	}

	ram, err := store.Load(header.SaveName(), ramSize)
	if err != nil {
		return nil, err
	}

	dmg, err := NewDMG(rom, ram)
	if err != nil {
		return nil, err
	}

	return &Emulator{
		dmg:      dmg,
		backend:  b,
		limiter:  limiter,
		store:    store,
		saveName: header.SaveName(),
	}, nil
}

// DMG returns the underlying machine.
func (e *Emulator) DMG() *DMG { return e.dmg }

// Run drives the emulation loop until the backend requests a shutdown
// or a fatal fault occurs. External RAM is persisted in both cases.
func (e *Emulator) Run() error {
	if err := e.backend.Init(backend.Config{Title: e.dmg.Cartridge().Header().Title}); err != nil {
		return err
	}
	defer e.backend.Cleanup()

	for {
		if err := e.runFrame(); err != nil {
			e.persistRAM()
			return err
		}

		events, err := e.backend.Update(e.dmg.Frame())
		if err != nil {
			e.persistRAM()
			return err
		}

		for _, event := range events {
			switch event.Type {
			case backend.KeyPressed:
				e.dmg.PressKey(event.Key)
			case backend.KeyReleased:
				e.dmg.ReleaseKey(event.Key)
			case backend.ColorMapCycled:
				e.colorMapIndex = (e.colorMapIndex + 1) % len(video.ColorMaps)
				e.dmg.SetColorMap(video.ColorMaps[e.colorMapIndex])
			case backend.Quit:
				slog.Info("shutdown requested")
				e.persistRAM()
				return nil
			}
		}

		e.limiter.WaitForNextFrame()
	}
}

// runFrame executes one frame, converting machine faults (illegal
// opcodes, disallowed memory accesses) into errors so RAM can still be
// persisted before the emulator exits.
func (e *Emulator) runFrame() (err error) {
	defer func() {
		if fault := recover(); fault != nil {
			err = fmt.Errorf("fatal machine fault: %v", fault)
		}
	}()

	e.dmg.RunUntilFrame()
	return nil
}

func (e *Emulator) persistRAM() {
	cart := e.dmg.Cartridge()
	if !cart.Header().CartridgeType.HasBattery() || len(cart.RAM()) == 0 {
		return
	}

	if err := e.store.Save(e.saveName, cart.RAM()); err != nil {
		slog.Error("failed to persist external RAM", "error", err)
	}
}
