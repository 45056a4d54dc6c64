package lib

const ScreenWidth = 64
const ScreenHeight = 32

/* what the cpu needs from an output surface */
type Display interface {
    Clear()
    Draw(x int, y int, sprite []byte) bool
    SetPixel(x int, y int, value byte)
    GetPixel(x int, y int) bool
}

/* how the ppu presents pixels to the host. the frontend supplies one of
 * these, tests supply a mock
 */
type PixelGrid interface {
    SetPixel(x int, y int, on bool)
    Clear()
    Present()
}

/* the 64x32 monochrome framebuffer. one byte per pixel, sprites are
 * drawn by xor so redrawing a sprite erases it
 */
type PPUState struct {
    Memory []byte
    Grid PixelGrid
}

func MakePPU(grid PixelGrid) *PPUState {
    return &PPUState{
        Memory: make([]byte, ScreenWidth * ScreenHeight),
        Grid: grid,
    }
}

func (ppu *PPUState) Clear() {
    for i := range ppu.Memory {
        ppu.Memory[i] = 0
    }
    ppu.Grid.Clear()
    ppu.Grid.Present()
}

/* xor-draw the sprite rows at (x, y), wrapping around the screen edges.
 * reports whether any pixel that was already lit got turned off.
 */
func (ppu *PPUState) Draw(x int, y int, sprite []byte) bool {
    collision := false
    for j, row := range sprite {
        for i := 0; i < 8; i++ {
            value := (row >> (7 - i)) & 0x1
            if value == 1 {
                xi := (x + i) % ScreenWidth
                yj := (y + j) % ScreenHeight
                old := ppu.GetPixel(xi, yj)
                if old {
                    collision = true
                }
                var oldValue byte
                if old {
                    oldValue = 1
                }
                ppu.SetPixel(xi, yj, value ^ oldValue)
            }
        }
    }
    ppu.Grid.Present()
    return collision
}

func (ppu *PPUState) SetPixel(x int, y int, value byte) {
    ppu.Memory[x + y * ScreenWidth] = value
    ppu.Grid.SetPixel(x, y, value == 1)
}

func (ppu *PPUState) GetPixel(x int, y int) bool {
    return ppu.Memory[x + y * ScreenWidth] == 1
}

/* the built-in hexadecimal glyphs, 5 bytes per digit, installed at
 * address 0 on reset
 */
var FontSet = []byte{
    0xf0, 0x90, 0x90, 0x90, 0xf0, // 0
    0x20, 0x60, 0x20, 0x20, 0x70, // 1
    0xf0, 0x10, 0xf0, 0x80, 0xf0, // 2
    0xf0, 0x10, 0xf0, 0x10, 0xf0, // 3
    0x90, 0x90, 0xf0, 0x10, 0x10, // 4
    0xf0, 0x80, 0xf0, 0x10, 0xf0, // 5
    0xf0, 0x80, 0xf0, 0x90, 0xf0, // 6
    0xf0, 0x10, 0x20, 0x40, 0x40, // 7
    0xf0, 0x90, 0xf0, 0x90, 0xf0, // 8
    0xf0, 0x90, 0xf0, 0x10, 0xf0, // 9
    0xf0, 0x90, 0xf0, 0x90, 0x90, // A
    0xe0, 0x90, 0xe0, 0x90, 0xe0, // B
    0xf0, 0x80, 0x80, 0x80, 0xf0, // C
    0xe0, 0x90, 0x90, 0x90, 0xe0, // D
    0xf0, 0x80, 0xf0, 0x80, 0xf0, // E
    0xf0, 0x80, 0xf0, 0x80, 0x80, // F
}
