package main

import (
    "log"

    opcodetest "github.com/kazzmir/chip8/test/all-test/opcode-test"
    test_utils "github.com/kazzmir/chip8/test/all-test/utils"
)

func main() {
    log.SetFlags(log.Lshortfile | log.Lmicroseconds)

    ok, err := opcodetest.Run(false)
    if err != nil {
        log.Printf("Error: opcode tests failed with an error: %v", err)
    } else {
        if ok {
            log.Printf("%s", test_utils.Success("opcode tests"))
        } else {
            log.Printf("%s", test_utils.Failure("opcode tests"))
        }
    }
}
