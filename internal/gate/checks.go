package gate

import (
	"fmt"

	"github.com/oneinabillion/vedic-match/internal/kundali"
	"github.com/oneinabillion/vedic-match/internal/manglik"
)

// nadiWaiverTotal is the ashtakoota total at which a nadi dosha is waived.
const nadiWaiverTotal = 28

type minimumTotalCheck struct {
	min int
}

func (c *minimumTotalCheck) Name() string { return "minimum_total" }

func (c *minimumTotalCheck) IsEnabled() bool { return true }

func (c *minimumTotalCheck) Evaluate(p Pair) []string {
	if p.Score.Total < c.min {
		return []string{ReasonBelowMinimum(c.min)}
	}
	return nil
}

type nadiDoshaCheck struct {
	allowCancellation bool
}

func (c *nadiDoshaCheck) Name() string { return "nadi_dosha" }

func (c *nadiDoshaCheck) IsEnabled() bool { return true }

func (c *nadiDoshaCheck) Evaluate(p Pair) []string {
	if !p.Score.NadiDosha {
		return nil
	}
	if c.allowCancellation {
		if _, waived := NadiWaiver(p); waived {
			return nil
		}
	}
	return []string{ReasonNadiDosha}
}

// NadiWaiver reports the first applicable nadi dosha cancellation: a strong
// overall total, top graha maitri, or identical nakshatras on both sides.
func NadiWaiver(p Pair) (string, bool) {
	switch {
	case p.Score.Total >= nadiWaiverTotal:
		return fmt.Sprintf("total_at_or_above_%d", nadiWaiverTotal), true
	case p.Score.GrahaMaitri >= kundali.MaxGrahaMaitri:
		return "graha_maitri_at_maximum", true
	case p.A.Nakshatra != kundali.NakshatraUnknown && p.A.Nakshatra == p.B.Nakshatra:
		return "identical_nakshatra", true
	default:
		return "", false
	}
}

type manglikParityCheck struct {
	enabled bool
	policy  manglik.Policy
}

func (c *manglikParityCheck) Name() string { return "manglik_parity" }

func (c *manglikParityCheck) IsEnabled() bool { return c.enabled }

func (c *manglikParityCheck) Evaluate(p Pair) []string {
	policy := c.policy
	if policy == nil {
		policy = manglik.NewSimple()
	}

	if policy.Evaluate(p.A).Effective() != policy.Evaluate(p.B).Effective() {
		return []string{ReasonManglikAsymmetry}
	}
	return nil
}
