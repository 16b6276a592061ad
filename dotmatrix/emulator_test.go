package dotmatrix

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dotmatrix-gb/dotmatrix/dotmatrix/backend/headless"
	"github.com/dotmatrix-gb/dotmatrix/dotmatrix/saves"
	"github.com/dotmatrix-gb/dotmatrix/dotmatrix/timing"
)

func writeTestROMFile(t *testing.T, rom []byte) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.gb")
	assert.NoError(t, os.WriteFile(path, rom, 0o644))
	return path
}

func TestEmulatorRunsHeadless(t *testing.T) {
	romPath := writeTestROMFile(t, testROM(nil))
	store := saves.NewFileStore(t.TempDir())
	b := headless.New(3)

	emu, err := NewEmulator(romPath, b, store, timing.NewNoOpLimiter())
	assert.NoError(t, err)

	assert.NoError(t, emu.Run())
	assert.NotNil(t, b.LastFrame)
}

func TestEmulatorRejectsCorruptHeader(t *testing.T) {
	rom := testROM(nil)
	rom[0x14D] ^= 0xFF
	romPath := writeTestROMFile(t, rom)

	_, err := NewEmulator(romPath, headless.New(1), saves.NewFileStore(t.TempDir()), timing.NewNoOpLimiter())
	assert.ErrorContains(t, err, "header checksum mismatch")
}

func TestEmulatorRejectsMissingROM(t *testing.T) {
	_, err := NewEmulator(filepath.Join(t.TempDir(), "nope.gb"),
		headless.New(1), saves.NewFileStore(t.TempDir()), timing.NewNoOpLimiter())
	assert.Error(t, err)
}

func TestEmulatorSurfacesFatalFaults(t *testing.T) {
	// 0xD3 is an illegal encoding; the fault must come back as an
	// error instead of a panic.
	romPath := writeTestROMFile(t, testROM([]byte{0xD3}))

	emu, err := NewEmulator(romPath, headless.New(1), saves.NewFileStore(t.TempDir()), timing.NewNoOpLimiter())
	assert.NoError(t, err)

	err = emu.Run()
	assert.ErrorContains(t, err, "fatal machine fault")
}

func TestEmulatorPersistsRAMOnQuit(t *testing.T) {
	rom := testROM(nil)
	rom[0x147] = 0x03 // MBC1+RAM+BATTERY
	rom[0x149] = 0x02 // 8 KiB

	// fix up the checksum after the header edit
	var sum uint8
	for _, b := range rom[0x134:0x14D] {
		sum = sum - b - 1
	}
	rom[0x14D] = sum

	romPath := writeTestROMFile(t, rom)
	saveDir := t.TempDir()
	store := saves.NewFileStore(saveDir)

	emu, err := NewEmulator(romPath, headless.New(1), store, timing.NewNoOpLimiter())
	assert.NoError(t, err)

	// Scribble into external RAM so the savefile has content.
	emu.DMG().Cartridge().RAM()[0] = 0xAA

	assert.NoError(t, emu.Run())

	saved, err := os.ReadFile(filepath.Join(saveDir, "____"))
	assert.NoError(t, err)
	assert.Equal(t, 8*1024, len(saved))
	assert.Equal(t, uint8(0xAA), saved[0])
}
