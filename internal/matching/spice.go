package matching

// Spice preferences live on a 1..10 scale. A missing preference reads as
// the midpoint.
const (
	SpiceMin     = 1
	SpiceMax     = 10
	SpiceDefault = 5
)

// alignmentByDistance maps |spiceA - spiceB| to an alignment score.
// Distances beyond the table align at 0.
var alignmentByDistance = [...]float64{1.0, 0.85, 0.65, 0.35, 0.15}

// SpiceMatch records how two spice preferences line up.
type SpiceMatch struct {
	SourceSpice    int     `json:"sourceSpice"`
	TargetSpice    int     `json:"targetSpice"`
	Distance       int     `json:"distance"`
	AlignmentScore float64 `json:"alignmentScore"`
}

// ClampSpice snaps a preference onto the 1..10 scale. Zero means the
// preference was not provided and reads as the midpoint.
func ClampSpice(v int) int {
	switch {
	case v == 0:
		return SpiceDefault
	case v < SpiceMin:
		return SpiceMin
	case v > SpiceMax:
		return SpiceMax
	default:
		return v
	}
}

// Alignment returns the alignment score for two raw spice preferences.
func Alignment(a, b int) float64 {
	d := ClampSpice(a) - ClampSpice(b)
	if d < 0 {
		d = -d
	}
	if d >= len(alignmentByDistance) {
		return 0
	}
	return alignmentByDistance[d]
}

// MatchSpice builds the full spice record for a source and a candidate.
func MatchSpice(source, candidate int) SpiceMatch {
	s, c := ClampSpice(source), ClampSpice(candidate)
	d := s - c
	if d < 0 {
		d = -d
	}
	return SpiceMatch{
		SourceSpice:    s,
		TargetSpice:    c,
		Distance:       d,
		AlignmentScore: Alignment(s, c),
	}
}
