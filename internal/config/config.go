// Package config loads optional machine-size overrides from a TOML file.
// Absent a file (or absent fields within one), the emulator uses the
// fixed constants from spec.md §3.
package config

import (
	"github.com/BurntSushi/toml"

	"github.com/lmarchetti/rv32i/internal/cpu"
)

// fileSchema mirrors the on-disk TOML layout; zero fields mean "use the
// default".
type fileSchema struct {
	IMEMBase  *uint32 `toml:"imem_base"`
	IMEMWords *int    `toml:"imem_words"`
	DMEMWords *int    `toml:"dmem_words"`
}

// Load reads path and returns a cpu.Config seeded with spec.md defaults,
// overridden field-by-field by whatever the file specifies. An empty
// path returns the defaults unchanged.
func Load(path string) (cpu.Config, error) {
	cfg := cpu.DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	var fs fileSchema
	if _, err := toml.DecodeFile(path, &fs); err != nil {
		return cpu.Config{}, err
	}
	if fs.IMEMBase != nil {
		cfg.IMEMBase = *fs.IMEMBase
	}
	if fs.IMEMWords != nil {
		cfg.IMEMWords = *fs.IMEMWords
	}
	if fs.DMEMWords != nil {
		cfg.DMEMWords = *fs.DMEMWords
	}
	return cfg, nil
}
