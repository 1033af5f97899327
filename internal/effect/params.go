package effect

// DefaultScale maps one kilometre onto ten screen units of the fixed viewport.
const DefaultScale = 10.0

// Params are the visualization-ready effect values. Radii are in screen units.
// A Params value is immutable once derived.
type Params struct {
	TotalDestructionRadius    float64
	SevereDestructionRadius   float64
	ModerateDestructionRadius float64
	FireRadius                float64
	DustRadius                float64
	EarthquakeMagnitude       float64
	TsunamiHeight             float64
	Fatalities                int64
	Injuries                  int64
	EnergyMegatons            float64
}

// Derive scales the kilometre radii of r by scale screen units per km.
// A non-positive scale falls back to DefaultScale.
func Derive(r Record, scale float64) Params {
	if !(scale > 0) {
		scale = DefaultScale
	}
	return Params{
		TotalDestructionRadius:    r.TotalDestructionZone * scale,
		SevereDestructionRadius:   r.SevereDestructionZone * scale,
		ModerateDestructionRadius: r.ModerateDestructionZone * scale,
		FireRadius:                r.Fire.Radius * scale,
		DustRadius:                r.Dust.Radius * scale,
		EarthquakeMagnitude:       r.Earthquake.Magnitude,
		TsunamiHeight:             r.Tsunami.Height,
		Fatalities:                r.Casualties.Fatalities,
		Injuries:                  r.Casualties.Injuries,
		EnergyMegatons:            r.EnergyMegatons,
	}
}

// Kilometres converts a screen-unit distance back to km for display.
func Kilometres(units, scale float64) float64 {
	if !(scale > 0) {
		return 0
	}
	return units / scale
}
