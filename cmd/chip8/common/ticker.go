package common

import (
    "context"
    "time"
)

/* run the host timer at this frequency so the counter doesn't tick
 * too fast. anything above 1ms seems ok, 10ms is probably an upper limit.
 */
const hostTickSpeed = 5 * time.Millisecond

/* doles out machine cycles at a fixed rate. Wait blocks until the next
 * cycle is due, crediting a batch of cycles each host tick.
 */
type CycleTicker struct {
    ticker *time.Ticker
    perTick float64
    counter float64
}

func MakeCycleTicker(cyclesPerSecond int) *CycleTicker {
    return &CycleTicker{
        ticker: time.NewTicker(hostTickSpeed),
        perTick: float64(cyclesPerSecond) * hostTickSpeed.Seconds(),
    }
}

func (cycle *CycleTicker) Wait(quit context.Context) {
    for cycle.counter < 1 {
        select {
            case <-quit.Done():
                return
            case <-cycle.ticker.C:
                cycle.counter += cycle.perTick
        }
    }

    cycle.counter -= 1
}

func (cycle *CycleTicker) Stop() {
    cycle.ticker.Stop()
}
