package lib

import (
    "fmt"
    "log"
    "os"
)

/* the largest program image that fits between 0x200 and the end of memory */
const MaxRomSize = MemorySize - int(ProgramStart)

/* read a raw program image. there is no header, the whole file is copied
 * into memory at 0x200 by CPUState.Load
 */
func ParseRomFile(path string) ([]byte, error) {
    data, err := os.ReadFile(path)
    if err != nil {
        return nil, err
    }

    log.Printf("%v is %v bytes", path, len(data))

    if len(data) == 0 {
        return nil, fmt.Errorf("empty rom file %v", path)
    }

    if len(data) > MaxRomSize {
        return nil, fmt.Errorf("rom is %v bytes but only %v fit above 0x%x", len(data), MaxRomSize, ProgramStart)
    }

    return data, nil
}
