package config

import "sort"

// Preset is a named starting chamber with its usual force.
type Preset struct {
	Chamber string
	Force   int
}

var Presets = map[string]Preset{
	"center": {Chamber: ".....B.....", Force: 1},
	"edge":   {Chamber: "B....", Force: 1},
	"pair":   {Chamber: "B...B", Force: 1},
	"offset": {Chamber: "B..B.", Force: 1},
	"full":   {Chamber: "BBBBBBBBBB", Force: 1},
	"empty":  {Chamber: "..........", Force: 1},
	"wide":   {Chamber: "B......................B......................B...", Force: 3},
}

func GetPreset(name string) (Preset, bool) {
	p, ok := Presets[name]
	return p, ok
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Apply overwrites the chamber and force of c with the preset's values.
func (p Preset) Apply(c *Config) {
	c.Chamber = p.Chamber
	c.Force = p.Force
}
