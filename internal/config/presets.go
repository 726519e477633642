package config

var Presets = map[string]*Config{
	"undamped": {
		Spring: 1.0, Mass: 1.0, InitPos: 1.0,
		Steps: 10000, Duration: 20.0, DriveFreq: 0.1,
	},
	"damped": {
		Spring: 1.0, Mass: 1.0, InitPos: 1.0,
		Steps: 10000, Duration: 20.0, Damping: 0.5, DriveFreq: 0.1,
	},
	"critical": {
		// b = 2*sqrt(k*m): fastest return to rest without overshoot.
		Spring: 1.0, Mass: 1.0, InitPos: 1.0,
		Steps: 10000, Duration: 10.0, Damping: 2.0, DriveFreq: 0.1,
	},
	"driven": {
		Spring: 1.0, Mass: 1.0, InitPos: 0.0,
		Steps: 20000, Duration: 40.0, Damping: 0.2, DriveAmp: 0.5, DriveFreq: 0.7,
	},
	"resonance": {
		// Drive at the natural frequency of the undamped system.
		Spring: 1.0, Mass: 1.0, InitPos: 0.0,
		Steps: 20000, Duration: 60.0, Damping: 0.05, DriveAmp: 0.5, DriveFreq: 1.0,
	},
}

func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
