package matching

import (
	"github.com/google/uuid"
	"github.com/oneinabillion/vedic-match/internal/gate"
	"github.com/oneinabillion/vedic-match/internal/kundali"
	"github.com/oneinabillion/vedic-match/internal/manglik"
	"go.uber.org/zap"
)

// Engine scores chart pairs and assembles results. It is stateless and
// safe for concurrent use.
type Engine struct {
	logger *zap.Logger
}

// New returns an engine logging through the given logger. A nil logger
// keeps the engine silent.
func New(logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{logger: logger}
}

func pairOf(a, b kundali.Chart) gate.Pair {
	return gate.Pair{A: a, B: b, Score: kundali.Score(a, b)}
}

// Score computes the breakdown and gate verdict for an ordered pair.
func (e *Engine) Score(a, b kundali.Chart, opts Options) ScoreResult {
	pair := pairOf(a, b)
	verdict := gate.Run(e.logger, opts.checks(), pair)

	e.logger.Debug("pair scored",
		zap.String("person_a", a.ID),
		zap.String("person_b", b.ID),
		zap.Int("total", pair.Score.Total),
		zap.Bool("eligible", verdict.Eligible),
	)

	return ScoreResult{
		SchemaVersion: SchemaVersion,
		Total:         pair.Score.Total,
		Breakdown:     Factors(pair.Score),
		Eligibility:   verdict,
	}
}

// Match computes the full structured result for an ordered pair.
func (e *Engine) Match(a, b kundali.Chart, opts Options) *MatchResult {
	pair := pairOf(a, b)
	verdict := gate.Run(e.logger, opts.checks(), pair)

	policy := opts.policy()
	statusA := policy.Evaluate(a)
	statusB := policy.Evaluate(b)

	result := &MatchResult{
		SchemaVersion:        SchemaVersion,
		MatchID:              uuid.NewString(),
		PersonA:              summarize(a, statusA),
		PersonB:              summarize(b, statusB),
		Factors:              Factors(pair.Score),
		Total:                pair.Score.Total,
		MaxTotal:             kundali.MaxTotal,
		Grade:                Grade(pair.Score.Total),
		Viability:            Viability(pair.Score.Total),
		Gate:                 verdict,
		Doshas:               doshaSummary(pair, statusA, statusB, opts),
		SeventhHouseStrength: neutralMidpoint,
		DashaTimingOverlap:   neutralMidpoint,
	}

	e.logger.Info("match assembled",
		zap.String("match_id", result.MatchID),
		zap.Int("total", result.Total),
		zap.String("grade", result.Grade),
		zap.Bool("eligible", verdict.Eligible),
	)

	return result
}

func summarize(c kundali.Chart, status manglik.Status) PersonSummary {
	return PersonSummary{
		ID:        c.ID,
		MoonSign:  c.MoonSign.String(),
		Nakshatra: c.Nakshatra.String(),
		Pada:      c.Pada,
		Varna:     c.EffectiveVarna().String(),
		Vashya:    c.EffectiveVashya().String(),
		Yoni:      c.EffectiveYoni().String(),
		Gana:      c.EffectiveGana().String(),
		Nadi:      c.EffectiveNadi().String(),
		SignLord:  c.Lord().String(),
		Manglik:   status.Effective(),
		Spice:     ClampSpice(c.Spice),
	}
}

func doshaSummary(p gate.Pair, a, b manglik.Status, opts Options) DoshaSummary {
	summary := DoshaSummary{
		ManglikA:      manglikState(a),
		ManglikB:      manglikState(b),
		ManglikParity: a.Effective() == b.Effective(),
		NadiDosha:     p.Score.NadiDosha,
		BhakootDosha:  p.Score.BhakootDosha.String(),
	}

	if p.Score.NadiDosha && opts.AllowNadiCancellation {
		if reason, waived := gate.NadiWaiver(p); waived {
			summary.NadiCancellation = reason
		}
	}

	return summary
}
