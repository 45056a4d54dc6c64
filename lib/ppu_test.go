package lib

import (
    "testing"
)

type nullGrid struct {
    presented int
}

func (grid *nullGrid) SetPixel(x int, y int, on bool) {
}

func (grid *nullGrid) Clear() {
}

func (grid *nullGrid) Present() {
    grid.presented += 1
}

func TestSetPixel(test *testing.T) {
    ppu := MakePPU(&nullGrid{})

    ppu.SetPixel(1, 1, 1)
    if !ppu.GetPixel(1, 1) {
        test.Fatalf("pixel (1,1) expected to be set")
    }

    ppu.SetPixel(1, 1, 0)
    if ppu.GetPixel(1, 1) {
        test.Fatalf("pixel (1,1) expected to be cleared")
    }
}

func TestClear(test *testing.T) {
    ppu := MakePPU(&nullGrid{})

    ppu.SetPixel(1, 1, 1)
    ppu.Clear()

    if ppu.GetPixel(1, 1) {
        test.Fatalf("pixel (1,1) expected to be cleared")
    }
}

func TestDrawPattern(test *testing.T) {
    ppu := MakePPU(&nullGrid{})

    ppu.Draw(0, 0, []byte{0b00110011, 0b11001010})

    expectedTop := []bool{false, false, true, true, false, false, true, true}
    for x, expected := range expectedTop {
        if ppu.GetPixel(x, 0) != expected {
            test.Fatalf("pixel (%v,0) expected to be %v", x, expected)
        }
    }

    expectedBottom := []bool{true, true, false, false, true, false, true, false}
    for x, expected := range expectedBottom {
        if ppu.GetPixel(x, 1) != expected {
            test.Fatalf("pixel (%v,1) expected to be %v", x, expected)
        }
    }
}

func TestDrawCollision(test *testing.T) {
    ppu := MakePPU(&nullGrid{})

    /* disjoint bits never collide, overlapping a lit pixel does */
    if ppu.Draw(0, 0, []byte{0b00110000}) {
        test.Fatalf("first draw expected no collision")
    }

    if ppu.Draw(0, 0, []byte{0b00000011}) {
        test.Fatalf("disjoint draw expected no collision")
    }

    if !ppu.Draw(0, 0, []byte{0b00000001}) {
        test.Fatalf("overlapping draw expected a collision")
    }

    /* the xor draw turned that pixel back off */
    if ppu.GetPixel(7, 0) {
        test.Fatalf("pixel (7,0) expected to be erased by the xor draw")
    }
}

func TestDrawWrapsAround(test *testing.T) {
    ppu := MakePPU(&nullGrid{})

    ppu.Draw(ScreenWidth - 2, ScreenHeight - 1, []byte{0b11110000, 0b10000000})

    if !ppu.GetPixel(ScreenWidth - 2, ScreenHeight - 1) {
        test.Fatalf("pixel at the right edge expected to be set")
    }
    if !ppu.GetPixel(0, ScreenHeight - 1) {
        test.Fatalf("sprite expected to wrap to column 0")
    }
    if !ppu.GetPixel(1, ScreenHeight - 1) {
        test.Fatalf("sprite expected to wrap to column 1")
    }
    if !ppu.GetPixel(ScreenWidth - 2, 0) {
        test.Fatalf("sprite expected to wrap to row 0")
    }
}

func TestDrawPresents(test *testing.T) {
    grid := nullGrid{}
    ppu := MakePPU(&grid)

    ppu.Draw(0, 0, []byte{0xff})
    ppu.Clear()

    if grid.presented != 2 {
        test.Fatalf("host grid expected 2 presents but saw %v", grid.presented)
    }
}

func TestFontSetShape(test *testing.T) {
    if len(FontSet) != 80 {
        test.Fatalf("font set expected to be 80 bytes but was %v", len(FontSet))
    }
}
