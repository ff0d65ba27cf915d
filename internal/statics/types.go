package statics

// SupportKind identifies a support condition at a beam or frame node.
type SupportKind int

const (
	SupportPinned SupportKind = iota
	SupportRoller
	SupportFixed
	SupportFree
)

func (k SupportKind) String() string {
	switch k {
	case SupportPinned:
		return "pinned"
	case SupportRoller:
		return "roller"
	case SupportFixed:
		return "fixed"
	case SupportFree:
		return "free"
	}
	return "unknown"
}

// LoadKind identifies the load variant carried by a Load.
type LoadKind int

const (
	// LoadUniform is a uniformly distributed line load (kN/m).
	LoadUniform LoadKind = iota
	// LoadPoint is a concentrated load (kN) at a position along the span.
	LoadPoint
	// LoadArea is a uniformly distributed area load (kN/m²), slabs only.
	LoadArea
)

// Load is a tagged variant over the supported load types.
// Magnitudes may be negative for uplift cases.
type Load struct {
	Kind      LoadKind
	Magnitude float64 // kN/m, kN or kN/m² depending on Kind
	Position  float64 // m from the left support (point loads only)
	Span      int     // span index for continuous systems, 0-based
}

// Uniform returns a distributed line load of w kN/m.
func Uniform(w float64) Load {
	return Load{Kind: LoadUniform, Magnitude: w}
}

// UniformInSpan returns a distributed line load acting on one span of a
// continuous system.
func UniformInSpan(w float64, span int) Load {
	return Load{Kind: LoadUniform, Magnitude: w, Span: span}
}

// Point returns a concentrated load of p kN at position at (m).
func Point(p, at float64) Load {
	return Load{Kind: LoadPoint, Magnitude: p, Position: at}
}

// PointInSpan returns a concentrated load acting on one span of a
// continuous system; at is measured from the span's left support.
func PointInSpan(p, at float64, span int) Load {
	return Load{Kind: LoadPoint, Magnitude: p, Position: at, Span: span}
}

// Area returns a distributed area load of q kN/m².
func Area(q float64) Load {
	return Load{Kind: LoadArea, Magnitude: q}
}

// System is the closed set of structural configurations the engine solves.
// Each variant routes to exactly one solver entry point; construct a new
// value per calculation request and treat it as immutable.
type System interface {
	isSystem()
	Validate() error
}

// BeamSingle is a single-span beam, simply supported at both ends
// (Einfeldträger).
type BeamSingle struct {
	Span     float64 // m
	Supports [2]SupportKind
	Loads    []Load
	E        float64 // MPa
	I        float64 // m⁴
}

// BeamCantilever is a beam fixed at the left end with a free tip
// (Kragträger).
type BeamCantilever struct {
	Span  float64 // m
	Loads []Load
	E     float64 // MPa
	I     float64 // m⁴
}

// BeamContinuous is a 2- or 3-span continuous beam over intermediate
// supports (Durchlaufträger).
type BeamContinuous struct {
	Spans []float64 // m, one entry per bay
	Loads []Load    // per-span via the Span index
	E     float64   // MPa
	I     float64   // m⁴
}

// FrameSingleStory is a single-story planar frame with a mono-pitched
// roof member.
type FrameSingleStory struct {
	Width     float64 // m, column spacing
	Height    float64 // m, left column height
	RoofSlope float64 // degrees, 0 = flat
	RoofLoad  float64 // kN/m vertical on the roof member
	Lateral   float64 // kN horizontal at the left eaves node
	Bases     [2]SupportKind
	E         float64 // MPa
	I         float64 // m⁴
	A         float64 // m², member cross-section area
}

// FrameTwoStory is a two-story planar frame with girders at both levels.
type FrameTwoStory struct {
	Width        float64 // m
	LowerHeight  float64 // m, ground story
	UpperHeight  float64 // m, upper story
	FloorLoad    float64 // kN/m on the lower girder
	RoofLoad     float64 // kN/m on the upper girder
	LateralLower float64 // kN at the lower-girder level
	LateralUpper float64 // kN at the roof level
	Bases        [2]SupportKind
	E            float64 // MPa
	I            float64 // m⁴
	A            float64 // m²
}

// SlabSingle is a single-span slab strip or, with AllSides set, a slab
// supported on all four edges (allseitig gelagert).
type SlabSingle struct {
	SpanX     float64 // m, design direction
	SpanY     float64 // m, cross direction (AllSides only)
	Thickness float64 // m
	Load      float64 // kN/m²
	AllSides  bool
	E         float64 // MPa
}

// SlabContinuous is a 2–4 span one-way continuous slab strip.
type SlabContinuous struct {
	Spans     []float64 // m
	Thickness float64   // m
	Load      float64   // kN/m²
	E         float64   // MPa
}

func (*BeamSingle) isSystem()       {}
func (*BeamCantilever) isSystem()   {}
func (*BeamContinuous) isSystem()   {}
func (*FrameSingleStory) isSystem() {}
func (*FrameTwoStory) isSystem()    {}
func (*SlabSingle) isSystem()       {}
func (*SlabContinuous) isSystem()   {}
