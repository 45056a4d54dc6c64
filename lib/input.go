package lib

const KeypadKeys = 16

/* pressed/released state of the 16 logical keys. the driver replaces the
 * whole pressed set once per cycle, there is no partial update
 */
type Keypad struct {
    Keys []bool
}

func MakeKeypad() *Keypad {
    return &Keypad{
        Keys: make([]bool, KeypadKeys),
    }
}

/* release every key, then press exactly the given ones */
func (keypad *Keypad) SetPressed(indexes []byte) {
    for i := range keypad.Keys {
        keypad.Keys[i] = false
    }
    for _, index := range indexes {
        keypad.Keys[index] = true
    }
}

func (keypad *Keypad) IsKeyDown(index byte) bool {
    return keypad.Keys[index]
}

/* the host side of input: scan whatever physical device is attached and
 * report the logical keys currently held
 */
type HostKeys interface {
    Get() []byte
}
