package main

import (
    "fmt"
    "sync"

    "github.com/kazzmir/chip8/cmd/chip8/common"

    "github.com/hajimehoshi/ebiten/v2"
)

/* key names usable in the config file */
var keyNames = map[string]ebiten.Key{
    "1": ebiten.KeyDigit1,
    "2": ebiten.KeyDigit2,
    "3": ebiten.KeyDigit3,
    "4": ebiten.KeyDigit4,
    "5": ebiten.KeyDigit5,
    "6": ebiten.KeyDigit6,
    "7": ebiten.KeyDigit7,
    "8": ebiten.KeyDigit8,
    "9": ebiten.KeyDigit9,
    "0": ebiten.KeyDigit0,
    "a": ebiten.KeyA,
    "b": ebiten.KeyB,
    "c": ebiten.KeyC,
    "d": ebiten.KeyD,
    "e": ebiten.KeyE,
    "f": ebiten.KeyF,
    "g": ebiten.KeyG,
    "h": ebiten.KeyH,
    "i": ebiten.KeyI,
    "j": ebiten.KeyJ,
    "k": ebiten.KeyK,
    "l": ebiten.KeyL,
    "m": ebiten.KeyM,
    "n": ebiten.KeyN,
    "o": ebiten.KeyO,
    "p": ebiten.KeyP,
    "q": ebiten.KeyQ,
    "r": ebiten.KeyR,
    "s": ebiten.KeyS,
    "t": ebiten.KeyT,
    "u": ebiten.KeyU,
    "v": ebiten.KeyV,
    "w": ebiten.KeyW,
    "x": ebiten.KeyX,
    "y": ebiten.KeyY,
    "z": ebiten.KeyZ,
}

/* maps the host keyboard onto the 16 logical keys. Scan runs on the
 * render goroutine because ebiten key state is only valid there, Get
 * hands the latest set to the machine goroutine.
 */
type KeyboardKeys struct {
    Lock sync.Mutex
    mapping map[ebiten.Key]byte
    pressed []byte
}

func MakeKeyboardKeys(config common.ConfigData) (*KeyboardKeys, error) {
    mapping := make(map[ebiten.Key]byte)
    for name, index := range config.Keymap {
        key, ok := keyNames[name]
        if !ok {
            return nil, fmt.Errorf("unknown key name '%v' in keymap", name)
        }
        if index >= 16 {
            return nil, fmt.Errorf("key '%v' is bound to %v but the keypad only has keys 0-15", name, index)
        }
        mapping[key] = index
    }

    return &KeyboardKeys{
        mapping: mapping,
    }, nil
}

func (keyboard *KeyboardKeys) Scan() {
    var pressed []byte
    for key, index := range keyboard.mapping {
        if ebiten.IsKeyPressed(key) {
            pressed = append(pressed, index)
        }
    }

    keyboard.Lock.Lock()
    keyboard.pressed = pressed
    keyboard.Lock.Unlock()
}

func (keyboard *KeyboardKeys) Get() []byte {
    keyboard.Lock.Lock()
    defer keyboard.Lock.Unlock()

    return keyboard.pressed
}
