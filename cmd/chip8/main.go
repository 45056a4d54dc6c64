package main

import (
    "context"
    "errors"
    "fmt"
    "log"
    "os"
    "strconv"

    chip8 "github.com/kazzmir/chip8/lib"

    "github.com/kazzmir/chip8/cmd/chip8/common"
    "github.com/kazzmir/chip8/cmd/chip8/debug"

    "github.com/hajimehoshi/ebiten/v2"
    "github.com/hajimehoshi/ebiten/v2/inpututil"
)

/* the machine runs in its own goroutine so the debugger can hold it
 * stopped without freezing the window. the render loop only pushes key
 * state in and pulls the framebuffer out.
 */
var MaxCyclesReached error = errors.New("maximum cycles reached")

func runMachine(cpu *chip8.CPUState, debugger debug.Debugger, host chip8.HostKeys, maxCycles uint64, cyclesPerSecond int, quit context.Context) error {
    ticker := common.MakeCycleTicker(cyclesPerSecond)
    defer ticker.Stop()

    for quit.Err() == nil {
        if maxCycles > 0 && cpu.Cycle >= maxCycles {
            log.Printf("Maximum cycles %v reached", maxCycles)
            return MaxCyclesReached
        }

        ticker.Wait(quit)

        debugger.Handle(cpu)
        if quit.Err() != nil {
            return nil
        }

        cpu.Keypad.SetPressed(host.Get())

        err := cpu.RunCycle()
        if err != nil {
            return err
        }
    }

    return nil
}

type Engine struct {
    grid *EbitenGrid
    keyboard *KeyboardKeys
    machineError <-chan error
}

func (engine *Engine) Update() error {
    engine.keyboard.Scan()

    keys := inpututil.AppendJustPressedKeys(nil)
    for _, key := range keys {
        switch key {
            case ebiten.KeyEscape, ebiten.KeyCapsLock:
                return ebiten.Termination
        }
    }

    select {
        case err := <-engine.machineError:
            if err != nil && err != MaxCyclesReached {
                return err
            }
            return ebiten.Termination
        default:
    }

    return nil
}

func (engine *Engine) Draw(screen *ebiten.Image) {
    engine.grid.Render(screen)
}

func (engine *Engine) Layout(outsideWidth int, outsideHeight int) (int, int) {
    return chip8.ScreenWidth, chip8.ScreenHeight
}

func Run(romPath string, debugLevel uint, maxCycles uint64, windowSizeMultiple int, cyclesPerSecond int, monitor bool) error {
    rom, err := chip8.ParseRomFile(romPath)
    if err != nil {
        return err
    }

    config, err := common.LoadConfigData()
    if err != nil {
        log.Printf("Using default key bindings: %v", err)
    }

    keyboard, err := MakeKeyboardKeys(config)
    if err != nil {
        return err
    }

    grid := MakeEbitenGrid()

    cpu := chip8.StartupState(chip8.MakePPU(grid))
    cpu.Debug = debugLevel
    cpu.Reset()
    cpu.Load(rom)

    quit, cancel := context.WithCancel(context.Background())
    defer cancel()

    var debugger debug.Debugger = &debug.NullDebugger{}
    if monitor {
        stepper := debug.MakeDebugger()
        debugger = stepper
        go func() {
            err := debug.RunMonitor(&cpu, stepper, quit, cancel)
            if err != nil {
                log.Printf("Could not run the monitor: %v", err)
            }
        }()
    }

    machineError := make(chan error, 1)
    go func() {
        machineError <- runMachine(&cpu, debugger, keyboard, maxCycles, cyclesPerSecond, quit)
    }()

    engine := Engine{
        grid: grid,
        keyboard: keyboard,
        machineError: machineError,
    }

    ebiten.SetWindowTitle("chip8")
    ebiten.SetWindowSize(chip8.ScreenWidth * windowSizeMultiple, chip8.ScreenHeight * windowSizeMultiple)
    ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

    err = ebiten.RunGame(&engine)
    cancel()
    return err
}

func main() {
    log.SetFlags(log.Lshortfile | log.Lmicroseconds | log.Ldate)

    var romPath string
    var debugLevel uint
    var maxCycles uint64
    var windowSizeMultiple int64 = 10
    var cyclesPerSecond int64 = 500
    var monitor bool

    argIndex := 1
    for argIndex < len(os.Args) {
        arg := os.Args[argIndex]
        switch arg {
            case "-debug", "--debug":
                debugLevel = 1
            case "-monitor", "--monitor":
                monitor = true
            case "-size", "--size":
                var err error
                argIndex += 1
                if argIndex >= len(os.Args) {
                    log.Fatalf("Expected an integer argument for -size")
                }
                windowSizeMultiple, err = strconv.ParseInt(os.Args[argIndex], 10, 64)
                if err != nil {
                    log.Fatalf("Error reading size argument: %v", err)
                }
            case "-speed", "--speed":
                var err error
                argIndex += 1
                if argIndex >= len(os.Args) {
                    log.Fatalf("Expected a cycles-per-second argument for -speed")
                }
                cyclesPerSecond, err = strconv.ParseInt(os.Args[argIndex], 10, 64)
                if err != nil {
                    log.Fatalf("Error reading speed argument: %v", err)
                }
            case "-cycles", "--cycles":
                var err error
                argIndex += 1
                if argIndex >= len(os.Args) {
                    log.Fatalf("Expected a number of cycles")
                }
                maxCycles, err = strconv.ParseUint(os.Args[argIndex], 10, 64)
                if err != nil {
                    log.Fatalf("Error parsing cycles: %v", err)
                }
            default:
                romPath = arg
        }

        argIndex += 1
    }

    if romPath == "" {
        fmt.Printf("Give a chip8 rom argument\n")
        return
    }

    err := Run(romPath, debugLevel, maxCycles, int(windowSizeMultiple), int(cyclesPerSecond), monitor)
    if err != nil {
        log.Printf("Error: %v", err)
    }
    log.Printf("Bye")
}
