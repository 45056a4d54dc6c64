package lib

import (
    "testing"
)

func TestKeypadPress(test *testing.T) {
    keypad := MakeKeypad()

    keypad.SetPressed([]byte{2, 0xf})

    if !keypad.IsKeyDown(2) {
        test.Fatalf("key 2 expected to be down")
    }
    if !keypad.IsKeyDown(0xf) {
        test.Fatalf("key 0xf expected to be down")
    }
    if keypad.IsKeyDown(3) {
        test.Fatalf("key 3 expected to be up")
    }
}

/* each call replaces the whole set, keys missing from the new set are
 * released even if they were held before
 */
func TestKeypadReplacesSet(test *testing.T) {
    keypad := MakeKeypad()

    keypad.SetPressed([]byte{2, 5})
    keypad.SetPressed([]byte{5, 9})

    if keypad.IsKeyDown(2) {
        test.Fatalf("key 2 expected to be released")
    }
    if !keypad.IsKeyDown(5) {
        test.Fatalf("key 5 expected to stay down")
    }
    if !keypad.IsKeyDown(9) {
        test.Fatalf("key 9 expected to be down")
    }

    keypad.SetPressed(nil)
    for key := byte(0); key < KeypadKeys; key++ {
        if keypad.IsKeyDown(key) {
            test.Fatalf("key %v expected to be released", key)
        }
    }
}
