package lib

import (
    "crypto/rand"
    "fmt"
    "log"
)

/* opcode references
 * http://devernay.free.fr/hacks/chip8/C8TECH10.HTM -- cowgod's technical reference
 * https://github.com/mattmikolay/chip-8/wiki/CHIP%E2%80%908-Instruction-Set
 */

const MemorySize = 4096

/* programs are loaded at 0x200, everything below belongs to the interpreter */
const ProgramStart uint16 = 0x200

const StackSize = 16

/* written into a stack slot after its return address has been popped */
const StackSentinel uint16 = 0xbeef

/* an instruction word that doesn't decode to anything. the program counter
 * has already been moved past the word by the time this error is returned,
 * so a caller that wants to keep going can just run the next cycle.
 */
type UnknownOpcodeError struct {
    Opcode uint16
}

func (err *UnknownOpcodeError) Error() string {
    return fmt.Sprintf("unknown opcode 0x%04x", err.Opcode)
}

type CPUState struct {
    /* index register, used as a memory pointer by the Annn/Dxyn/Fxxx families */
    I uint16
    PC uint16
    Memory []byte
    /* V0-VF. VF doubles as the carry/borrow/collision flag */
    Registers []byte
    Stack []uint16
    SP byte
    DelayTimer byte
    SoundTimer byte

    Cycle uint64
    Debug uint

    Keypad *Keypad
    Screen Display
}

func StartupState(screen Display) CPUState {
    return CPUState{
        Memory: make([]byte, MemorySize),
        Registers: make([]byte, 16),
        Stack: make([]uint16, StackSize),
        Keypad: MakeKeypad(),
        Screen: screen,
    }
}

func (cpu *CPUState) String() string {
    return fmt.Sprintf("PC:0x%X I:0x%X SP:0x%X DT:%v ST:%v Cycle:%v", cpu.PC, cpu.I, cpu.SP, cpu.DelayTimer, cpu.SoundTimer, cpu.Cycle)
}

func (cpu *CPUState) Reset() {
    cpu.I = 0
    cpu.PC = ProgramStart
    for i := range cpu.Memory {
        cpu.Memory[i] = 0
    }
    for i := range cpu.Registers {
        cpu.Registers[i] = 0
    }
    for i := range cpu.Stack {
        cpu.Stack[i] = 0
    }
    cpu.SP = 0
    cpu.DelayTimer = 0
    cpu.SoundTimer = 0
    cpu.Screen.Clear()

    copy(cpu.Memory[0:len(FontSet)], FontSet)
}

/* copy a program image verbatim into memory starting at 0x200 */
func (cpu *CPUState) Load(data []byte) {
    copy(cpu.Memory[ProgramStart:], data)
    log.Printf("Loaded %v bytes at 0x%x", len(data), ProgramStart)
}

/* combine the two bytes at PC big-endian into one instruction word */
func (cpu *CPUState) ReadWord() uint16 {
    high := cpu.Memory[cpu.PC]
    low := cpu.Memory[cpu.PC + 1]
    return (uint16(high) << 8) | uint16(low)
}

func (cpu *CPUState) RunCycle() error {
    opcode := cpu.ReadWord()

    if cpu.Debug > 0 {
        log.Printf("Execute opcode 0x%04x %v", opcode, cpu.String())
    }

    err := cpu.Execute(opcode)
    if err != nil {
        return err
    }

    cpu.Cycle += 1
    return nil
}

func randomByte() (byte, error) {
    buffer := make([]byte, 1)
    _, err := rand.Read(buffer)
    if err != nil {
        return 0, err
    }
    return buffer[0], nil
}

/* decode and execute one instruction word, then tick the timers.
 * an unrecognized word still moves PC forward by 2 but skips the
 * timer tick for that cycle.
 */
func (cpu *CPUState) Execute(opcode uint16) error {
    x := (opcode >> 8) & 0xf
    y := (opcode >> 4) & 0xf
    kk := byte(opcode & 0xff)
    nnn := opcode & 0xfff

    switch opcode >> 12 {
        case 0x0:
            switch opcode {
                /* 00E0: clear the screen */
                case 0x00e0:
                    cpu.Screen.Clear()
                    cpu.PC += 2
                /* 00EE: return from a subroutine. the stack holds the
                 * address of the CALL instruction itself, so move past it
                 */
                case 0x00ee:
                    cpu.SP -= 1
                    cpu.PC = cpu.Stack[cpu.SP]
                    cpu.Stack[cpu.SP] = StackSentinel
                    cpu.PC += 2
                default:
                    cpu.PC += 2
                    return &UnknownOpcodeError{Opcode: opcode}
            }
        /* 1nnn: jump */
        case 0x1:
            cpu.PC = nnn
        /* 2nnn: call subroutine at nnn */
        case 0x2:
            cpu.Stack[cpu.SP] = cpu.PC
            cpu.PC = nnn
            cpu.SP += 1
        /* 3xkk: skip next instruction if Vx == kk */
        case 0x3:
            if cpu.Registers[x] == kk {
                cpu.PC += 4
            } else {
                cpu.PC += 2
            }
        /* 4xkk: skip next instruction if Vx != kk */
        case 0x4:
            if cpu.Registers[x] != kk {
                cpu.PC += 4
            } else {
                cpu.PC += 2
            }
        /* 5xy0: skip next instruction if Vx == Vy */
        case 0x5:
            if cpu.Registers[x] == cpu.Registers[y] {
                cpu.PC += 4
            } else {
                cpu.PC += 2
            }
        /* 6xkk: Vx = kk */
        case 0x6:
            cpu.Registers[x] = kk
            cpu.PC += 2
        /* 7xkk: Vx += kk, wrapping, no carry flag */
        case 0x7:
            cpu.Registers[x] += kk
            cpu.PC += 2
        case 0x8:
            switch opcode & 0xf {
                /* 8xy0: Vx = Vy */
                case 0x0:
                    cpu.Registers[x] = cpu.Registers[y]
                    cpu.PC += 2
                /* 8xy1: Vx |= Vy */
                case 0x1:
                    cpu.Registers[x] |= cpu.Registers[y]
                    cpu.PC += 2
                /* 8xy2: Vx &= Vy */
                case 0x2:
                    cpu.Registers[x] &= cpu.Registers[y]
                    cpu.PC += 2
                /* 8xy3: Vx ^= Vy */
                case 0x3:
                    cpu.Registers[x] ^= cpu.Registers[y]
                    cpu.PC += 2
                /* 8xy4: Vx += Vy. VF is set to 1 on carry but is left
                 * alone when there is no carry
                 */
                case 0x4:
                    value := cpu.Registers[x] + cpu.Registers[y]
                    if value < cpu.Registers[x] {
                        cpu.Registers[0xf] = 1
                    }
                    cpu.Registers[x] = value
                    cpu.PC += 2
                /* 8xy5: Vx -= Vy. VF = 1 if the original Vx was strictly
                 * greater than Vy, else 0
                 */
                case 0x5:
                    value := cpu.Registers[x] - cpu.Registers[y]
                    if cpu.Registers[x] > cpu.Registers[y] {
                        cpu.Registers[0xf] = 1
                    } else {
                        cpu.Registers[0xf] = 0
                    }
                    cpu.Registers[x] = value
                    cpu.PC += 2
                /* 8xy6: VF = lowest bit of Vx, then Vx >>= 1 */
                case 0x6:
                    cpu.Registers[0xf] = cpu.Registers[x] & 0x1
                    cpu.Registers[x] >>= 1
                    cpu.PC += 2
                /* 8xy7: Vx = Vy - Vx. VF = 0 on borrow, else 1 */
                case 0x7:
                    value := cpu.Registers[y] - cpu.Registers[x]
                    if cpu.Registers[x] > cpu.Registers[y] {
                        cpu.Registers[0xf] = 0
                    } else {
                        cpu.Registers[0xf] = 1
                    }
                    cpu.Registers[x] = value
                    cpu.PC += 2
                /* 8xyE: VF = raw masked high bit of Vx (0x80 or 0, not
                 * normalized to 1), then Vx <<= 1
                 */
                case 0xe:
                    cpu.Registers[0xf] = cpu.Registers[x] & 0x80
                    cpu.Registers[x] <<= 1
                    cpu.PC += 2
                default:
                    cpu.PC += 2
                    return &UnknownOpcodeError{Opcode: opcode}
            }
        /* 9xy0: skip next instruction if Vx != Vy */
        case 0x9:
            if cpu.Registers[x] != cpu.Registers[y] {
                cpu.PC += 4
            } else {
                cpu.PC += 2
            }
        /* Annn: I = nnn */
        case 0xa:
            cpu.I = nnn
            cpu.PC += 2
        /* Bnnn: jump to nnn + V0 */
        case 0xb:
            cpu.PC = uint16(cpu.Registers[0]) + nnn
        /* Cxkk: Vx = random byte & kk */
        case 0xc:
            random, err := randomByte()
            if err != nil {
                return fmt.Errorf("could not read a random byte: %v", err)
            }
            cpu.Registers[x] = random & kk
            cpu.PC += 2
        /* Dxyn: draw an n-row sprite from memory[I] at (Vx, Vy),
         * VF = collision
         */
        case 0xd:
            xPosition := int(cpu.Registers[x])
            yPosition := int(cpu.Registers[y])
            height := opcode & 0xf
            sprite := cpu.Memory[cpu.I:cpu.I + height]

            if cpu.Screen.Draw(xPosition, yPosition, sprite) {
                cpu.Registers[0xf] = 1
            } else {
                cpu.Registers[0xf] = 0
            }
            cpu.PC += 2
        case 0xe:
            switch kk {
                /* Ex9E: skip next instruction if key Vx is held */
                case 0x9e:
                    if cpu.Keypad.IsKeyDown(cpu.Registers[x]) {
                        cpu.PC += 4
                    } else {
                        cpu.PC += 2
                    }
                /* ExA1: skip next instruction if key Vx is not held */
                case 0xa1:
                    if !cpu.Keypad.IsKeyDown(cpu.Registers[x]) {
                        cpu.PC += 4
                    } else {
                        cpu.PC += 2
                    }
                default:
                    cpu.PC += 2
                    return &UnknownOpcodeError{Opcode: opcode}
            }
        case 0xf:
            switch kk {
                /* Fx07: Vx = delay timer */
                case 0x07:
                    cpu.Registers[x] = cpu.DelayTimer
                /* Fx0A: wait for a key press as a non-blocking poll.
                 * every key held during the scan stores its index and
                 * bumps PC, so with no key held the cycle ends with only
                 * the trailing +2 and the instruction runs again
                 */
                case 0x0a:
                    for key := byte(0); key < KeypadKeys; key++ {
                        if cpu.Keypad.IsKeyDown(key) {
                            cpu.Registers[x] = key
                            cpu.PC += 2
                        }
                    }
                /* Fx15: delay timer = Vx */
                case 0x15:
                    cpu.DelayTimer = cpu.Registers[x]
                /* Fx18: sound timer = Vx */
                case 0x18:
                    cpu.SoundTimer = cpu.Registers[x]
                /* Fx1E: I += Vx */
                case 0x1e:
                    cpu.I += uint16(cpu.Registers[x])
                /* Fx29: I = address of the font glyph for digit Vx */
                case 0x29:
                    cpu.I = uint16(cpu.Registers[x]) * 5
                /* Fx33: store the decimal digits of Vx at I, I+1, I+2 */
                case 0x33:
                    cpu.Memory[cpu.I] = cpu.Registers[x] / 100
                    cpu.Memory[cpu.I + 1] = (cpu.Registers[x] / 10) % 10
                    cpu.Memory[cpu.I + 2] = (cpu.Registers[x] % 100) % 10
                /* Fx55: copy V0..=Vx into memory starting at I */
                case 0x55:
                    for offset := uint16(0); offset <= x; offset++ {
                        cpu.Memory[cpu.I + offset] = cpu.Registers[offset]
                    }
                /* Fx65: copy memory starting at I into V0..=Vx */
                case 0x65:
                    for offset := uint16(0); offset <= x; offset++ {
                        cpu.Registers[offset] = cpu.Memory[cpu.I + offset]
                    }
                default:
                    cpu.PC += 2
                    return &UnknownOpcodeError{Opcode: opcode}
            }
            cpu.PC += 2
    }

    if cpu.DelayTimer > 0 {
        cpu.DelayTimer -= 1
    }
    if cpu.SoundTimer > 0 {
        cpu.SoundTimer -= 1
    }

    return nil
}
