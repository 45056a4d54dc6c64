package common

import (
    "encoding/json"
    "log"
    "os"
    "path/filepath"
)

const CurrentVersion = 1

type ConfigData struct {
    Version int `json:"version,omitempty"`
    /* key name -> logical keypad index 0-15 */
    Keymap map[string]byte `json:"keymap,omitempty"`
}

/* make the directory where the config file lives, which is ~/.config/jon-chip8 on linux */
func GetOrCreateConfigDir() (string, error) {
    configDir, err := os.UserConfigDir()
    if err != nil {
        return "", err
    }
    configPath := filepath.Join(configDir, "jon-chip8")
    err = os.MkdirAll(configPath, 0755)
    if err != nil {
        return "", err
    }

    return configPath, nil
}

/* the classic 4x4 block on a qwerty keyboard:
 *   1 2 3 4        1 2 3 c
 *   q w e r   ->   4 5 6 d
 *   a s d f        7 8 9 e
 *   z x c v        a 0 b f
 */
func DefaultKeymap() map[string]byte {
    return map[string]byte{
        "1": 0x1, "2": 0x2, "3": 0x3, "4": 0xc,
        "q": 0x4, "w": 0x5, "e": 0x6, "r": 0xd,
        "a": 0x7, "s": 0x8, "d": 0x9, "f": 0xe,
        "z": 0xa, "x": 0x0, "c": 0xb, "v": 0xf,
    }
}

func DefaultConfigData() ConfigData {
    return ConfigData{
        Version: CurrentVersion,
        Keymap: DefaultKeymap(),
    }
}

func LoadConfigData() (ConfigData, error) {
    configPath, err := GetOrCreateConfigDir()
    if err != nil {
        return DefaultConfigData(), err
    }
    config := filepath.Join(configPath, "config.json")
    file, err := os.Open(config)
    if err != nil {
        return DefaultConfigData(), err
    }
    defer file.Close()

    var data ConfigData
    decoder := json.NewDecoder(file)
    err = decoder.Decode(&data)
    if err != nil {
        log.Printf("Could not load config data: %v", err)
        return DefaultConfigData(), err
    }

    if data.Version != CurrentVersion {
        return DefaultConfigData(), nil
    }

    if len(data.Keymap) == 0 {
        data.Keymap = DefaultKeymap()
    }

    return data, nil
}

/* create the config.json file in the config dir, overwriting whatever was there */
func SaveConfigData(data ConfigData) error {
    configPath, err := GetOrCreateConfigDir()
    if err != nil {
        return err
    }
    config := filepath.Join(configPath, "config.json")

    file, err := os.Create(config)
    if err != nil {
        return err
    }
    defer file.Close()

    encoder := json.NewEncoder(file)
    encoder.SetIndent("", "  ")
    return encoder.Encode(data)
}
