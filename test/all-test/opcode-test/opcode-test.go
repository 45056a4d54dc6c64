package opcodetest

/* self-checking programs in machine code. each one computes something,
 * verifies the result with skip instructions and jumps to the pass or
 * fail address, the harness just watches where PC settles.
 */

import (
    "fmt"
    "log"

    chip8 "github.com/kazzmir/chip8/lib"
    test_utils "github.com/kazzmir/chip8/test/all-test/utils"
)

const passAddress uint16 = 0x2f0
const failAddress uint16 = 0x2f4

/* plenty for programs a handful of instructions long */
const cycleBudget uint64 = 1000

type nullGrid struct {
}

func (grid *nullGrid) SetPixel(x int, y int, on bool) {
}

func (grid *nullGrid) Clear() {
}

func (grid *nullGrid) Present() {
}

func assemble(words []uint16) []byte {
    var out []byte
    for _, word := range words {
        out = append(out, byte(word >> 8), byte(word & 0xff))
    }
    return out
}

func doTest(program []uint16, debug bool) (bool, error) {
    cpu := chip8.StartupState(chip8.MakePPU(&nullGrid{}))
    if debug {
        cpu.Debug = 1
    }
    cpu.Reset()
    cpu.Load(assemble(program))

    for cpu.PC != passAddress && cpu.PC != failAddress {
        if cpu.Cycle >= cycleBudget {
            return false, fmt.Errorf("no verdict after %v cycles, PC stuck at 0x%x", cycleBudget, cpu.PC)
        }

        err := cpu.RunCycle()
        if err != nil {
            return false, err
        }
    }

    return cpu.PC == passAddress, nil
}

type OpcodeTest struct {
    Name string
    Program []uint16
}

func allTests() []OpcodeTest {
    return []OpcodeTest{
        OpcodeTest{
            Name: "arithmetic",
            Program: []uint16{
                0x6a0a, // va = 10
                0x6b64, // vb = 100
                0x8ab4, // va += vb, no carry so vf keeps its 0
                0x3f00, // skip unless vf changed
                0x12f4,
                0x3a6e, // va == 110
                0x12f4,
                0x6bfa, // vb = 250
                0x8ab4, // va += vb, wraps to 0x68 with carry
                0x3f01, // vf == 1
                0x12f4,
                0x3a68, // va == 0x68
                0x12f4,
                0x12f0,
            },
        },
        OpcodeTest{
            Name: "subroutine",
            Program: []uint16{
                0x220a, // call 0x20a
                0x3a07, // the subroutine left 7 in va
                0x12f4,
                0x12f0,
                0x0000, // padding so the subroutine starts at 0x20a
                0x6a07, // va = 7
                0x00ee, // ret, resumes at 0x202
            },
        },
        OpcodeTest{
            Name: "bcd round trip",
            Program: []uint16{
                0x6aea, // va = 234
                0xa300, // i = 0x300
                0xfa33, // digits 2,3,4 into memory[i..]
                0xf265, // load memory[i..] into v0-v2
                0x3002, // v0 == 2
                0x12f4,
                0x3103, // v1 == 3
                0x12f4,
                0x3204, // v2 == 4
                0x12f4,
                0x12f0,
            },
        },
        OpcodeTest{
            Name: "sprite collision",
            Program: []uint16{
                0x6a05, // va = 5
                0xfa29, // i = font glyph for 5
                0x6b00, // vb = 0
                0xdbb5, // draw the glyph at (0,0) on a fresh screen
                0x3f00, // no collision
                0x12f4,
                0xdbb5, // drawing it again erases every pixel
                0x3f01, // which counts as a collision
                0x12f4,
                0x12f0,
            },
        },
        OpcodeTest{
            Name: "timers",
            Program: []uint16{
                0x6a05, // va = 5
                0xfa15, // dt = 5, the end-of-cycle tick takes it to 4
                0xfb07, // vb = dt (4)
                0x3b04,
                0x12f4,
                0x12f0,
            },
        },
    }
}

func Run(debug bool) (bool, error) {
    tests := allTests()

    allPassed := true
    for _, test := range tests {
        passed, err := doTest(test.Program, debug)

        if err != nil {
            log.Print(test_utils.Fault(fmt.Sprintf("opcode test %v", test.Name), err))
            allPassed = false
            continue
        }

        if passed {
            log.Print(test_utils.Success(fmt.Sprintf("opcode test %v", test.Name)))
        } else {
            log.Print(test_utils.Failure(fmt.Sprintf("opcode test %v", test.Name)))
            allPassed = false
        }
    }

    return allPassed, nil
}
