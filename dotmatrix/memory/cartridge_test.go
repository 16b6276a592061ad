package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// makeTestROM builds a ROM image with a valid header. Each 16 KiB bank
// is filled with its own bank number so bank switching is observable.
func makeTestROM(kind CartridgeType, ramSizeCode uint8, banks int) []byte {
	rom := make([]byte, banks*0x4000)
	for i := range rom {
		rom[i] = uint8(i / 0x4000)
	}

	copy(rom[titleAddress:], "TEST CART")
	rom[cartridgeTypeAddress] = uint8(kind)
	rom[ramSizeAddress] = ramSizeCode

	var sum uint8
	for _, b := range rom[titleAddress:headerChecksumAddress] {
		sum = sum - b - 1
	}
	rom[headerChecksumAddress] = sum

	return rom
}

func TestHeaderParse(t *testing.T) {
	rom := makeTestROM(MBC1BatteryRAM, 0x02, 2)

	header, err := ParseHeader(rom)
	assert.NoError(t, err)
	assert.Equal(t, "TEST CART", header.Title)
	assert.Equal(t, MBC1BatteryRAM, header.CartridgeType)

	size, err := header.RAMBytes()
	assert.NoError(t, err)
	assert.Equal(t, 8*1024, size)
}

func TestHeaderChecksumMismatch(t *testing.T) {
	rom := makeTestROM(ROMOnly, 0x00, 2)
	rom[titleAddress] ^= 0xFF

	_, err := ParseHeader(rom)
	assert.ErrorContains(t, err, "header checksum mismatch")
}

func TestHeaderRAMSizes(t *testing.T) {
	testCases := []struct {
		code uint8
		want int
	}{
		{code: 0x00, want: 0},
		{code: 0x02, want: 8 * 1024},
		{code: 0x03, want: 32 * 1024},
		{code: 0x04, want: 128 * 1024},
		{code: 0x05, want: 64 * 1024},
	}
	for _, tC := range testCases {
		header := &Header{RAMSize: tC.code}
		size, err := header.RAMBytes()
		assert.NoError(t, err)
		assert.Equal(t, tC.want, size)
	}

	_, err := (&Header{RAMSize: 0x01}).RAMBytes()
	assert.Error(t, err)
}

func TestSaveName(t *testing.T) {
	header := &Header{Title: "DR MARIO"}
	assert.Equal(t, "__DR_MARIO__", header.SaveName())

	header = &Header{Title: "TETRIS"}
	assert.Equal(t, "__TETRIS__", header.SaveName())
}

func TestUnsupportedCartridgeType(t *testing.T) {
	rom := makeTestROM(CartridgeType(0x05), 0x00, 2)

	_, err := NewCartridge(rom, nil)
	assert.ErrorContains(t, err, "unsupported cartridge type")
}

func TestRAMSizeMismatch(t *testing.T) {
	rom := makeTestROM(MBC1BatteryRAM, 0x02, 2)

	_, err := NewCartridge(rom, make([]byte, 16))
	assert.ErrorContains(t, err, "header declares")
}

func TestROMOnlyReads(t *testing.T) {
	rom := makeTestROM(ROMOnly, 0x00, 2)
	cart, err := NewCartridge(rom, nil)
	assert.NoError(t, err)

	assert.Equal(t, uint8(0), cart.Read(0x0000))
	assert.Equal(t, uint8(1), cart.Read(0x4000))

	// Bank select writes are accepted and ignored.
	cart.Write(0x2000, 0x02)
	assert.Equal(t, uint8(1), cart.Read(0x4000))
}

func TestBankSwitching(t *testing.T) {
	rom := makeTestROM(MBC1, 0x00, 4)
	cart, err := NewCartridge(rom, nil)
	assert.NoError(t, err)

	testCases := []struct {
		desc string
		bank uint8
		want uint8
	}{
		{desc: "default is bank 1", bank: 1, want: 1},
		{desc: "bank 2", bank: 2, want: 2},
		{desc: "bank 3", bank: 3, want: 3},
		{desc: "bank 0 maps to bank 1", bank: 0, want: 1},
	}
	for _, tC := range testCases {
		t.Run(tC.desc, func(t *testing.T) {
			cart.Write(0x2000, tC.bank)
			assert.Equal(t, tC.want, cart.Read(0x4000))
			// bank 0 stays fixed
			assert.Equal(t, uint8(0), cart.Read(0x0000))
		})
	}
}

func TestExternalRAM(t *testing.T) {
	rom := makeTestROM(MBC3BatteryRAM, 0x03, 2)
	cart, err := NewCartridge(rom, make([]byte, 32*1024))
	assert.NoError(t, err)

	t.Run("disabled by default", func(t *testing.T) {
		cart.Write(0xA000, 0x42)
		assert.Equal(t, uint8(0xFF), cart.Read(0xA000))
	})

	t.Run("enable with 0x0A", func(t *testing.T) {
		cart.Write(0x0000, 0x0A)
		cart.Write(0xA000, 0x42)
		assert.Equal(t, uint8(0x42), cart.Read(0xA000))
	})

	t.Run("banked access", func(t *testing.T) {
		cart.Write(0x4000, 0x01)
		cart.Write(0xA000, 0x99)
		assert.Equal(t, uint8(0x99), cart.Read(0xA000))

		cart.Write(0x4000, 0x00)
		assert.Equal(t, uint8(0x42), cart.Read(0xA000))
		assert.Equal(t, uint8(0x99), cart.RAM()[0x2000])
	})

	t.Run("disable drops writes", func(t *testing.T) {
		cart.Write(0x0000, 0x00)
		cart.Write(0xA000, 0x77)
		assert.Equal(t, uint8(0xFF), cart.Read(0xA000))

		cart.Write(0x0000, 0x0A)
		assert.Equal(t, uint8(0x42), cart.Read(0xA000))
	})

	t.Run("RTC writes are ignored", func(t *testing.T) {
		cart.Write(0x6000, 0x01)
		assert.Equal(t, uint8(0x42), cart.Read(0xA000))
	})
}

func TestHasBattery(t *testing.T) {
	assert.False(t, ROMOnly.HasBattery())
	assert.False(t, MBC1.HasBattery())
	assert.True(t, MBC1BatteryRAM.HasBattery())
	assert.True(t, MBC3BatteryRAM.HasBattery())
}
