package matching

import (
	"github.com/oneinabillion/vedic-match/internal/gate"
	"github.com/oneinabillion/vedic-match/internal/manglik"
)

// Documented defaults for the tunable knobs.
const (
	DefaultMinimumViableScore = 18
	DefaultWeightVedic        = 0.8
	DefaultWeightSpice        = 0.2
)

// Options tune the gate and the ranker. Start from DefaultOptions; the
// zero value disables every check and weight.
type Options struct {
	// MinimumViableScore is the ashtakoota total below which the gate
	// rejects a pair.
	MinimumViableScore int
	// AllowNadiCancellation enables the classical nadi dosha waivers.
	AllowNadiCancellation bool
	// ApplySimpleManglikGate enables the manglik parity check.
	ApplySimpleManglikGate bool
	// ManglikPolicy names the policy used for manglik evaluation.
	// Unrecognized names fall back to the simple policy.
	ManglikPolicy string
	// WeightVedic and WeightSpice set the blend between the normalized
	// ashtakoota score and the spice alignment when ranking.
	WeightVedic float64
	WeightSpice float64
	// IncludeIneligible keeps gate-rejected candidates in rank output.
	IncludeIneligible bool
	// Concurrency caps parallel candidate scoring. Zero or negative
	// means one worker per available CPU.
	Concurrency int
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		MinimumViableScore:     DefaultMinimumViableScore,
		AllowNadiCancellation:  true,
		ApplySimpleManglikGate: true,
		ManglikPolicy:          manglik.PolicySimple,
		WeightVedic:            DefaultWeightVedic,
		WeightSpice:            DefaultWeightSpice,
	}
}

func (o Options) policy() manglik.Policy {
	return manglik.FromName(o.ManglikPolicy)
}

func (o Options) checks() []gate.Check {
	return gate.Checks(o.MinimumViableScore, o.AllowNadiCancellation, o.ApplySimpleManglikGate, o.policy())
}

// weights returns the normalized vedic and spice blend shares. Weights
// that cannot form a valid blend fall back to the defaults.
func (o Options) weights() (float64, float64) {
	wv, ws := o.WeightVedic, o.WeightSpice
	if wv < 0 || ws < 0 || wv+ws <= 0 {
		wv, ws = DefaultWeightVedic, DefaultWeightSpice
	}
	sum := wv + ws
	return wv / sum, ws / sum
}
