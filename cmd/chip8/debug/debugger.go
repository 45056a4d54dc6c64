package debug

import (
    chip8 "github.com/kazzmir/chip8/lib"
)

type DebugCommand interface {
    Name() string
}

type DebugCommandSimple struct {
    name string
}

func (command *DebugCommandSimple) Name() string {
    return command.name
}

func makeCommand(name string) DebugCommand {
    return &DebugCommandSimple{name: name}
}

var DebugCommandStep DebugCommand = makeCommand("step")
var DebugCommandContinue DebugCommand = makeCommand("continue")
var DebugCommandStop DebugCommand = makeCommand("stop")

// break when the cpu's PC is at a specific value
// TODO: break on reads/writes of specific memory addresses
type Breakpoint struct {
    PC uint16
    Id uint64
}

func (breakpoint *Breakpoint) Hit(cpu *chip8.CPUState) bool {
    return breakpoint.PC == cpu.PC
}

/* consulted by the machine goroutine once per cycle, before the cycle runs */
type Debugger interface {
    Handle(*chip8.CPUState)
}

/* used when no monitor is attached */
type NullDebugger struct {
}

func (debugger *NullDebugger) Handle(cpu *chip8.CPUState) {
}

type DefaultDebugger struct {
    Commands chan DebugCommand
    Stopped bool
    Breakpoints []Breakpoint
    BreakpointId uint64
}

func (debugger *DefaultDebugger) IsStopped() bool {
    return debugger.Stopped
}

func (debugger *DefaultDebugger) ContinueUntilBreak() {
    debugger.Stopped = false
}

func (debugger *DefaultDebugger) AddPCBreakpoint(pc uint16) {
    debugger.Breakpoints = append(debugger.Breakpoints, Breakpoint{
        PC: pc,
        Id: debugger.BreakpointId,
    })
    debugger.BreakpointId += 1
}

func (debugger *DefaultDebugger) RemoveBreakpoint(id uint64) {
    var out []Breakpoint
    for _, breakpoint := range debugger.Breakpoints {
        if breakpoint.Id != id {
            out = append(out, breakpoint)
        }
    }
    debugger.Breakpoints = out
}

func (debugger *DefaultDebugger) Stop() {
    debugger.Stopped = true
}

func (debugger *DefaultDebugger) Handle(cpu *chip8.CPUState) {
    /* a running machine only peeks at the channel so a stop request can
     * take hold mid-run
     */
    if !debugger.IsStopped() {
        select {
            case command := <-debugger.Commands:
                if command == DebugCommandStop {
                    debugger.Stop()
                }
            default:
        }
    }

    for _, breakpoint := range debugger.Breakpoints {
        if breakpoint.Hit(cpu) {
            debugger.Stop()
        }
    }

    for debugger.IsStopped() {
        command := <-debugger.Commands
        if command == DebugCommandStep {
            return
        }
        if command == DebugCommandContinue {
            debugger.ContinueUntilBreak()
            return
        }
    }
}

func MakeDebugger() *DefaultDebugger {
    return &DefaultDebugger{
        Commands: make(chan DebugCommand, 5),
        Stopped: true,
        BreakpointId: 1,
    }
}
