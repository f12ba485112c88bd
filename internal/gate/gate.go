package gate

import (
	"fmt"

	"github.com/oneinabillion/vedic-match/internal/kundali"
	"github.com/oneinabillion/vedic-match/internal/manglik"
	"go.uber.org/zap"
)

// Reason codes contributed by the checks.
const (
	ReasonNadiDosha        = "critical_nadi_dosha_uncancelled"
	ReasonManglikAsymmetry = "manglik_asymmetry"
)

// ReasonBelowMinimum formats the minimum-total reason code for the
// configured threshold.
func ReasonBelowMinimum(minTotal int) string {
	return fmt.Sprintf("ashtakoota_below_minimum_%d", minTotal)
}

// Pair bundles the charts and their breakdown for the checks.
type Pair struct {
	A, B  kundali.Chart
	Score kundali.Breakdown
}

// Check is a single eligibility rule applied to a scored pair. Checks never
// short-circuit: every enabled check runs and contributes its reason codes.
type Check interface {
	Name() string
	IsEnabled() bool
	Evaluate(p Pair) []string
}

// Verdict is the accumulated gate outcome. Reasons keep check order and the
// slice is never nil.
type Verdict struct {
	Eligible bool     `json:"eligible"`
	Reasons  []string `json:"reasons"`
}

// Run evaluates every enabled check in order, accumulating reasons.
func Run(logger *zap.Logger, checks []Check, p Pair) Verdict {
	reasons := make([]string, 0)

	for _, check := range checks {
		if !check.IsEnabled() {
			if logger != nil {
				logger.Debug("gate check disabled", zap.String("name", check.Name()))
			}
			continue
		}

		hits := check.Evaluate(p)
		if logger != nil {
			logger.Debug("gate check",
				zap.String("name", check.Name()),
				zap.Int("reasons", len(hits)),
			)
		}

		reasons = append(reasons, hits...)
	}

	return Verdict{Eligible: len(reasons) == 0, Reasons: reasons}
}

// Checks builds the standard pipeline: minimum total, nadi dosha, manglik
// parity, in that order.
func Checks(minTotal int, allowNadiCancellation, applyManglikGate bool, policy manglik.Policy) []Check {
	return []Check{
		&minimumTotalCheck{min: minTotal},
		&nadiDoshaCheck{allowCancellation: allowNadiCancellation},
		&manglikParityCheck{enabled: applyManglikGate, policy: policy},
	}
}
