package catalog

import (
	"sort"

	"github.com/statikdev/gostatik/internal/statics"
)

// Profile is an immutable reference record for one rolled-steel section.
// Profiles apply to beams and frames; slabs use a user-entered thickness
// instead.
type Profile struct {
	ID         string
	I          float64 // second moment of area about the strong axis, m⁴
	W          float64 // elastic section modulus, m³
	SelfWeight float64 // kN/m
}

// IPE series per Euronorm 19-57, strong-axis values.
var profiles = map[string]Profile{
	"IPE 80":  {ID: "IPE 80", I: 80.1e-8, W: 20.0e-6, SelfWeight: 0.059},
	"IPE 100": {ID: "IPE 100", I: 171e-8, W: 34.2e-6, SelfWeight: 0.080},
	"IPE 120": {ID: "IPE 120", I: 318e-8, W: 53.0e-6, SelfWeight: 0.102},
	"IPE 140": {ID: "IPE 140", I: 541e-8, W: 77.3e-6, SelfWeight: 0.127},
	"IPE 160": {ID: "IPE 160", I: 869e-8, W: 108.7e-6, SelfWeight: 0.155},
	"IPE 180": {ID: "IPE 180", I: 1320e-8, W: 146.3e-6, SelfWeight: 0.184},
	"IPE 200": {ID: "IPE 200", I: 1940e-8, W: 194.3e-6, SelfWeight: 0.220},
	"IPE 220": {ID: "IPE 220", I: 2770e-8, W: 252.0e-6, SelfWeight: 0.257},
	"IPE 240": {ID: "IPE 240", I: 3890e-8, W: 324.3e-6, SelfWeight: 0.301},
	"IPE 270": {ID: "IPE 270", I: 5790e-8, W: 428.9e-6, SelfWeight: 0.354},
	"IPE 300": {ID: "IPE 300", I: 8360e-8, W: 557.1e-6, SelfWeight: 0.414},
	"IPE 330": {ID: "IPE 330", I: 11770e-8, W: 713.1e-6, SelfWeight: 0.482},
	"IPE 360": {ID: "IPE 360", I: 16270e-8, W: 903.6e-6, SelfWeight: 0.560},
	"IPE 400": {ID: "IPE 400", I: 23130e-8, W: 1156.0e-6, SelfWeight: 0.650},
	"IPE 450": {ID: "IPE 450", I: 33740e-8, W: 1500.0e-6, SelfWeight: 0.761},
	"IPE 500": {ID: "IPE 500", I: 48200e-8, W: 1928.0e-6, SelfWeight: 0.890},
	"IPE 550": {ID: "IPE 550", I: 67120e-8, W: 2441.0e-6, SelfWeight: 1.040},
	"IPE 600": {ID: "IPE 600", I: 92080e-8, W: 3069.0e-6, SelfWeight: 1.197},
}

// LookupProfile returns the profile for id.
func LookupProfile(id string) (Profile, error) {
	p, ok := profiles[id]
	if !ok {
		return Profile{}, &statics.NotFoundError{Kind: "profile", ID: id}
	}
	return p, nil
}

// Profiles returns all profiles sorted by second moment of area.
func Profiles() []Profile {
	out := make([]Profile, 0, len(profiles))
	for _, p := range profiles {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].I < out[j].I })
	return out
}
