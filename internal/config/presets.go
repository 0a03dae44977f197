package config

import "sort"

// Presets are named starting points for a lesson.
var Presets = map[string]*Config{
	"animal": {
		CellType: "animal", Composition: "2n=4", Phase: "prophase",
		AutoplayMs: DefaultAutoplayMs, Lang: DefaultLang, LogLevel: DefaultLogLevel,
		Chart: ChartConfig{Width: DefaultChartWidth, Height: DefaultChartHeight, Composition: "2n=4", Color: true},
	},
	"plant": {
		CellType: "plant", Composition: "2n=6", Phase: "prophase",
		AutoplayMs: DefaultAutoplayMs, Lang: DefaultLang, LogLevel: DefaultLogLevel,
		Chart: ChartConfig{Width: DefaultChartWidth, Height: DefaultChartHeight, Composition: "2n=6", Color: true},
	},
	"triploid": {
		CellType: "plant", Composition: "3n=6", Phase: "metaphase",
		AutoplayMs: DefaultAutoplayMs, Lang: DefaultLang, LogLevel: DefaultLogLevel,
		Chart: ChartConfig{Width: DefaultChartWidth, Height: DefaultChartHeight, Composition: "3n=6", Color: true},
	},
	"classroom": {
		CellType: "animal", Composition: "2n=4", Phase: "prophase",
		AutoplayMs: 5000, Autostart: true, Lang: DefaultLang, LogLevel: DefaultLogLevel,
		Chart: ChartConfig{Width: 72, Height: 12, Composition: "2n=4", Color: true},
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := *p
	return &cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
