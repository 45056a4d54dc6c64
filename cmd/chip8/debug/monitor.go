package debug

import (
    "context"
    "fmt"
    "time"

    chip8 "github.com/kazzmir/chip8/lib"

    "github.com/jroimartin/gocui"
)

/* how many instruction words to show around PC in the memory view */
const memoryWindow = 12

type Monitor struct {
    cpu *chip8.CPUState
    debugger *DefaultDebugger
}

/* a terminal view of the machine, driven by gocui. the machine starts
 * stopped, 's' steps one cycle, 'c' runs until a breakpoint, 'p' stops
 * a running machine, 'q' shuts the whole emulator down.
 */
func RunMonitor(cpu *chip8.CPUState, debugger *DefaultDebugger, quit context.Context, cancel context.CancelFunc) error {
    gui, err := gocui.NewGui(gocui.OutputNormal)
    if err != nil {
        return err
    }
    defer gui.Close()

    monitor := &Monitor{
        cpu: cpu,
        debugger: debugger,
    }

    gui.SetManagerFunc(monitor.layout)

    doQuit := func(gui *gocui.Gui, view *gocui.View) error {
        cancel()
        return gocui.ErrQuit
    }

    sendCommand := func(command DebugCommand) func(*gocui.Gui, *gocui.View) error {
        return func(gui *gocui.Gui, view *gocui.View) error {
            select {
                case monitor.debugger.Commands <- command:
                default:
            }
            return nil
        }
    }

    err = gui.SetKeybinding("", 'q', gocui.ModNone, doQuit)
    if err != nil {
        return err
    }
    err = gui.SetKeybinding("", gocui.KeyCtrlC, gocui.ModNone, doQuit)
    if err != nil {
        return err
    }
    err = gui.SetKeybinding("", 's', gocui.ModNone, sendCommand(DebugCommandStep))
    if err != nil {
        return err
    }
    err = gui.SetKeybinding("", 'c', gocui.ModNone, sendCommand(DebugCommandContinue))
    if err != nil {
        return err
    }
    err = gui.SetKeybinding("", 'p', gocui.ModNone, sendCommand(DebugCommandStop))
    if err != nil {
        return err
    }

    /* refresh while the machine is running, and tear the gui down when
     * the rest of the emulator quits first
     */
    go func() {
        ticker := time.NewTicker(100 * time.Millisecond)
        defer ticker.Stop()
        for {
            select {
                case <-quit.Done():
                    gui.Update(func(gui *gocui.Gui) error {
                        return gocui.ErrQuit
                    })
                    return
                case <-ticker.C:
                    gui.Update(func(gui *gocui.Gui) error {
                        return nil
                    })
            }
        }
    }()

    err = gui.MainLoop()
    cancel()
    if err == gocui.ErrQuit {
        return nil
    }
    return err
}

func (monitor *Monitor) layout(gui *gocui.Gui) error {
    width, height := gui.Size()

    registers, err := gui.SetView("registers", 0, 0, width / 2 - 1, height - 4)
    if err != nil && err != gocui.ErrUnknownView {
        return err
    }
    registers.Clear()
    registers.Title = "machine"
    monitor.writeRegisters(registers)

    memory, err := gui.SetView("memory", width / 2, 0, width - 1, height - 4)
    if err != nil && err != gocui.ErrUnknownView {
        return err
    }
    memory.Clear()
    memory.Title = "memory"
    monitor.writeMemory(memory)

    help, err := gui.SetView("help", 0, height - 3, width - 1, height - 1)
    if err != nil && err != gocui.ErrUnknownView {
        return err
    }
    help.Clear()
    fmt.Fprintf(help, "s: step  c: continue  p: stop  q: quit")

    return nil
}

func (monitor *Monitor) writeRegisters(view *gocui.View) {
    cpu := monitor.cpu

    state := "running"
    if monitor.debugger.IsStopped() {
        state = "stopped"
    }

    fmt.Fprintf(view, " %v\n\n", state)
    fmt.Fprintf(view, " PC: 0x%04x  I: 0x%04x\n", cpu.PC, cpu.I)
    fmt.Fprintf(view, " SP: 0x%02x  DT: %3v  ST: %3v\n", cpu.SP, cpu.DelayTimer, cpu.SoundTimer)
    fmt.Fprintf(view, " Cycle: %v\n\n", cpu.Cycle)

    for i := 0; i < 8; i++ {
        fmt.Fprintf(view, " V%X: 0x%02x    V%X: 0x%02x\n", i, cpu.Registers[i], i + 8, cpu.Registers[i + 8])
    }

    fmt.Fprintf(view, "\n Stack:\n")
    for i := byte(0); i < cpu.SP; i++ {
        fmt.Fprintf(view, "  %v: 0x%04x\n", i, cpu.Stack[i])
    }
}

func (monitor *Monitor) writeMemory(view *gocui.View) {
    cpu := monitor.cpu

    start := int(cpu.PC) - memoryWindow
    if start < 0 {
        start = 0
    }
    /* keep instruction alignment relative to PC */
    if (int(cpu.PC) - start) % 2 != 0 {
        start += 1
    }

    for address := start; address < start + memoryWindow * 2 && address + 1 < len(cpu.Memory); address += 2 {
        marker := "  "
        if address == int(cpu.PC) {
            marker = "=>"
        }
        word := (uint16(cpu.Memory[address]) << 8) | uint16(cpu.Memory[address + 1])
        fmt.Fprintf(view, " %v 0x%03x: 0x%04x\n", marker, address, word)
    }
}
