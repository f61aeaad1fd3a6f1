package config

import (
	"math"
	"sort"

	"github.com/san-kum/gasdyn/internal/units"
)

// mass density of one hydrogen atom per cm^3
var nH = units.CGS().ProtonMass

const kms = 1e5 // cm/s

var Presets = map[string]map[string]*Config{
	"uniform": {
		"cold": uniform("uniform/cold", 100*nH, 100, 0),
		"warm": uniform("uniform/warm", nH, 8000, 0),
		"hot":  uniform("uniform/hot", 0.01*nH, 1e6, 0),
	},
	"shock": {
		"sod":    step("shock/sod", [2]float64{nH, 0.125 * nH}, [2]float64{1e4, 8e3}, [2]float64{0, 0}),
		"strong": step("shock/strong", [2]float64{nH, nH}, [2]float64{1e7, 1e2}, [2]float64{100 * kms, 0}),
	},
	"wind": {
		"slow": wind("wind/slow", 10*nH, 1e4, 10*kms),
		"fast": wind("wind/fast", 10*nH, 1e6, 1000*kms),
	},
}

func uniform(name string, rho, temp, vel float64) *Config {
	cfg := DefaultConfig()
	cfg.Name = name
	cfg.Density = fill(rho)
	cfg.Temperature = fill(temp)
	cfg.Velocity = fill(vel)
	return cfg
}

// left and right states meet at the middle cell
func step(name string, rho, temp, vel [2]float64) *Config {
	cfg := DefaultConfig()
	cfg.Name = name
	for i := 0; i < DefaultCells; i++ {
		side := 0
		if i >= DefaultCells/2 {
			side = 1
		}
		cfg.Density = append(cfg.Density, rho[side])
		cfg.Temperature = append(cfg.Temperature, temp[side])
		cfg.Velocity = append(cfg.Velocity, vel[side])
	}
	return cfg
}

// inverse-square density with a linearly accelerating outflow
func wind(name string, rho0, temp, vmax float64) *Config {
	cfg := DefaultConfig()
	cfg.Name = name
	for i := 0; i < DefaultCells; i++ {
		r := float64(i + 1)
		cfg.Density = append(cfg.Density, rho0/math.Pow(r, 2))
		cfg.Temperature = append(cfg.Temperature, temp)
		cfg.Velocity = append(cfg.Velocity, vmax*float64(i)/float64(DefaultCells-1))
	}
	return cfg
}

func fill(v float64) []float64 {
	out := make([]float64, DefaultCells)
	for i := range out {
		out[i] = v
	}
	return out
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(model, preset string) *Config {
	modelPresets, ok := Presets[model]
	if !ok {
		return nil
	}
	cfg, ok := modelPresets[preset]
	if !ok {
		return nil
	}
	return cfg.clone()
}

func ListPresets(model string) []string {
	modelPresets, ok := Presets[model]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(modelPresets))
	for name := range modelPresets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func ListModels() []string {
	models := make([]string, 0, len(Presets))
	for m := range Presets {
		models = append(models, m)
	}
	sort.Strings(models)
	return models
}
