package lib

import (
    "os"
    "path/filepath"
    "testing"
)

func writeRom(test *testing.T, data []byte) string {
    path := filepath.Join(test.TempDir(), "test.ch8")
    err := os.WriteFile(path, data, 0644)
    if err != nil {
        test.Fatalf("could not write rom file: %v", err)
    }
    return path
}

func TestParseRomFile(test *testing.T) {
    data := []byte{0x61, 0xaa, 0x12, 0x00}
    path := writeRom(test, data)

    rom, err := ParseRomFile(path)
    if err != nil {
        test.Fatalf("could not parse rom: %v", err)
    }

    if len(rom) != len(data) {
        test.Fatalf("rom expected to be %v bytes but was %v", len(data), len(rom))
    }
    for i := range data {
        if rom[i] != data[i] {
            test.Fatalf("rom byte %v expected to be 0x%x but was 0x%x", i, data[i], rom[i])
        }
    }
}

func TestParseRomFileTooLarge(test *testing.T) {
    path := writeRom(test, make([]byte, MaxRomSize + 1))

    _, err := ParseRomFile(path)
    if err == nil {
        test.Fatalf("oversized rom expected to be rejected")
    }
}

func TestParseRomFileEmpty(test *testing.T) {
    path := writeRom(test, nil)

    _, err := ParseRomFile(path)
    if err == nil {
        test.Fatalf("empty rom expected to be rejected")
    }
}

func TestParseRomFileMissing(test *testing.T) {
    _, err := ParseRomFile(filepath.Join(test.TempDir(), "missing.ch8"))
    if err == nil {
        test.Fatalf("missing rom expected to be an error")
    }
}
