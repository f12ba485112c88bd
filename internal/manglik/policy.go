package manglik

import (
	"strings"

	"github.com/oneinabillion/vedic-match/internal/kundali"
)

// Policy names accepted in options and config files.
const (
	PolicySimple       = "simple"
	PolicyCancellation = "cancellation"
)

// Status is the manglik evaluation for one chart.
type Status struct {
	Afflicted bool
	Cancelled bool
	Reason    string
}

// Effective reports whether the affliction stands after cancellation.
func (s Status) Effective() bool { return s.Afflicted && !s.Cancelled }

// Policy evaluates the manglik status of a single chart. Implementations
// must be deterministic and safe for concurrent use.
type Policy interface {
	Name() string
	Evaluate(c kundali.Chart) Status
}

// afflictedHouses are the Mars placements that trigger the dosha.
var afflictedHouses = map[int]bool{
	1: true, 2: true, 4: true, 7: true, 8: true, 12: true,
}

// Afflicted reports whether the Mars house placement alone triggers the
// dosha. A missing placement never does.
func Afflicted(c kundali.Chart) bool {
	return afflictedHouses[c.MarsHouse]
}

type simplePolicy struct{}

// NewSimple returns the policy that takes the house affliction as final.
func NewSimple() Policy { return simplePolicy{} }

func (simplePolicy) Name() string { return PolicySimple }

func (simplePolicy) Evaluate(c kundali.Chart) Status {
	return Status{Afflicted: Afflicted(c)}
}

type cancellationPolicy struct{}

// NewCancellation returns the policy that waives the affliction for
// favourable Mars sign placements.
func NewCancellation() Policy { return cancellationPolicy{} }

func (cancellationPolicy) Name() string { return PolicyCancellation }

func (cancellationPolicy) Evaluate(c kundali.Chart) Status {
	status := Status{Afflicted: Afflicted(c)}
	if !status.Afflicted {
		return status
	}

	if reason, ok := cancellation(c); ok {
		status.Cancelled = true
		status.Reason = reason
	}

	return status
}

// cancellation applies the sign-based waivers, most specific first. An
// unknown Mars sign waives nothing.
func cancellation(c kundali.Chart) (string, bool) {
	switch {
	case c.MarsHouse == 1 && c.MarsSign == kundali.Aries:
		return "mars_in_ascendant_own_sign", true
	case c.MarsSign == kundali.Aries || c.MarsSign == kundali.Scorpio:
		return "mars_in_own_sign", true
	case c.MarsSign == kundali.Capricorn:
		return "mars_exalted", true
	case c.MarsSign == kundali.Leo || c.MarsSign == kundali.Aquarius:
		return "mars_in_exempt_sign", true
	default:
		return "", false
	}
}

// FromName resolves a configured policy name, falling back to the simple
// policy for unrecognized values.
func FromName(name string) Policy {
	if strings.EqualFold(strings.TrimSpace(name), PolicyCancellation) {
		return NewCancellation()
	}
	return NewSimple()
}
