package main

import (
    "sync"

    chip8 "github.com/kazzmir/chip8/lib"

    "github.com/hajimehoshi/ebiten/v2"
)

/* the host side of the framebuffer. the machine goroutine writes pixels,
 * the render goroutine copies the last presented frame out, so the two
 * sides only meet under the lock.
 */
type EbitenGrid struct {
    Lock sync.Mutex

    /* rgba, written by SetPixel */
    work []byte
    /* the last frame handed over by Present */
    front []byte
}

func MakeEbitenGrid() *EbitenGrid {
    size := chip8.ScreenWidth * chip8.ScreenHeight * 4
    return &EbitenGrid{
        work: make([]byte, size),
        front: make([]byte, size),
    }
}

func (grid *EbitenGrid) SetPixel(x int, y int, on bool) {
    var value byte
    if on {
        value = 0xff
    }

    base := (y * chip8.ScreenWidth + x) * 4
    grid.work[base] = value
    grid.work[base + 1] = value
    grid.work[base + 2] = value
    grid.work[base + 3] = 0xff
}

func (grid *EbitenGrid) Clear() {
    for i := range grid.work {
        grid.work[i] = 0
    }
    /* alpha stays opaque */
    for i := 3; i < len(grid.work); i += 4 {
        grid.work[i] = 0xff
    }
}

func (grid *EbitenGrid) Present() {
    grid.Lock.Lock()
    defer grid.Lock.Unlock()

    copy(grid.front, grid.work)
}

func (grid *EbitenGrid) Render(screen *ebiten.Image) {
    grid.Lock.Lock()
    defer grid.Lock.Unlock()

    screen.WritePixels(grid.front)
}
