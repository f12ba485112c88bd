package matching

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/oneinabillion/vedic-match/internal/gate"
	"github.com/oneinabillion/vedic-match/internal/kundali"
	"github.com/oneinabillion/vedic-match/internal/manglik"
)

// SchemaVersion identifies the result shape carried by every operation.
const SchemaVersion = "1.0.0"

// neutralMidpoint fills the forward-compatible fields that need chart data
// beyond the minimal inputs.
const neutralMidpoint = 0.5

// Grades over the 0..36 total, five tiers.
const (
	GradePoor        = "poor"
	GradeAverage     = "average"
	GradeGood        = "good"
	GradeExcellent   = "excellent"
	GradeExceptional = "exceptional"
)

// Viability labels over the same breakpoints, collapsing the top two
// grades into one tier.
const (
	ViabilityNotViable   = "not_viable"
	ViabilityViable      = "viable"
	ViabilityStrong      = "strong"
	ViabilityExceptional = "exceptional"
)

// Grade buckets an ashtakoota total into the five-tier scale.
func Grade(total int) string {
	switch {
	case total <= 17:
		return GradePoor
	case total <= 24:
		return GradeAverage
	case total <= 32:
		return GradeGood
	case total <= 35:
		return GradeExcellent
	default:
		return GradeExceptional
	}
}

// Viability buckets an ashtakoota total into the four-tier scale.
func Viability(total int) string {
	switch {
	case total <= 17:
		return ViabilityNotViable
	case total <= 24:
		return ViabilityViable
	case total <= 32:
		return ViabilityStrong
	default:
		return ViabilityExceptional
	}
}

// FactorScore is one koota factor with its label metadata.
type FactorScore struct {
	Name   string `json:"name"`
	Score  int    `json:"score"`
	Max    int    `json:"max"`
	Detail string `json:"detail,omitempty"`
}

// Factors expands a breakdown into the eight factor entries in the
// traditional koota order.
func Factors(score kundali.Breakdown) []FactorScore {
	nadiDetail := ""
	if score.NadiDosha {
		nadiDetail = "dosha"
	}
	return []FactorScore{
		{Name: "varna", Score: score.Varna, Max: kundali.MaxVarna},
		{Name: "vashya", Score: score.Vashya, Max: kundali.MaxVashya},
		{Name: "tara", Score: score.Tara, Max: kundali.MaxTara, Detail: score.TaraType.String()},
		{Name: "yoni", Score: score.Yoni, Max: kundali.MaxYoni, Detail: kundali.YoniRelation(score.Yoni)},
		{Name: "graha_maitri", Score: score.GrahaMaitri, Max: kundali.MaxGrahaMaitri},
		{Name: "gana", Score: score.Gana, Max: kundali.MaxGana},
		{Name: "bhakoot", Score: score.Bhakoot, Max: kundali.MaxBhakoot, Detail: score.BhakootDosha.String()},
		{Name: "nadi", Score: score.Nadi, Max: kundali.MaxNadi, Detail: nadiDetail},
	}
}

// PersonSummary echoes one side's chart with its derived categories.
type PersonSummary struct {
	ID        string `json:"id"`
	MoonSign  string `json:"moon_sign"`
	Nakshatra string `json:"nakshatra"`
	Pada      int    `json:"pada,omitempty"`
	Varna     string `json:"varna"`
	Vashya    string `json:"vashya"`
	Yoni      string `json:"yoni"`
	Gana      string `json:"gana"`
	Nadi      string `json:"nadi"`
	SignLord  string `json:"sign_lord"`
	Manglik   bool   `json:"manglik"`
	Spice     int    `json:"spice"`
}

// ManglikState mirrors one manglik evaluation on the wire.
type ManglikState struct {
	Afflicted bool   `json:"afflicted"`
	Cancelled bool   `json:"cancelled"`
	Reason    string `json:"reason,omitempty"`
	Effective bool   `json:"effective"`
}

func manglikState(s manglik.Status) ManglikState {
	return ManglikState{
		Afflicted: s.Afflicted,
		Cancelled: s.Cancelled,
		Reason:    s.Reason,
		Effective: s.Effective(),
	}
}

// DoshaSummary gathers the dosha findings across both charts.
type DoshaSummary struct {
	ManglikA         ManglikState `json:"manglik_a"`
	ManglikB         ManglikState `json:"manglik_b"`
	ManglikParity    bool         `json:"manglik_parity"`
	NadiDosha        bool         `json:"nadi_dosha"`
	NadiCancellation string       `json:"nadi_cancellation,omitempty"`
	BhakootDosha     string       `json:"bhakoot_dosha"`
}

// MatchResult is the full structured outcome for one pair.
type MatchResult struct {
	SchemaVersion        string        `json:"schema_version"`
	MatchID              string        `json:"match_id"`
	PersonA              PersonSummary `json:"person_a"`
	PersonB              PersonSummary `json:"person_b"`
	Factors              []FactorScore `json:"factors"`
	Total                int           `json:"total"`
	MaxTotal             int           `json:"max_total"`
	Grade                string        `json:"grade"`
	Viability            string        `json:"viability"`
	Gate                 gate.Verdict  `json:"gate"`
	Doshas               DoshaSummary  `json:"doshas"`
	SeventhHouseStrength float64       `json:"seventh_house_strength"`
	DashaTimingOverlap   float64       `json:"dasha_timing_overlap"`
}

// ScoreResult is the compact outcome of the score operation.
type ScoreResult struct {
	SchemaVersion string        `json:"schema_version"`
	Total         int           `json:"total"`
	Breakdown     []FactorScore `json:"breakdown"`
	Eligibility   gate.Verdict  `json:"eligibility"`
}

// RankedMatch is one candidate's scored outcome within a rank request.
type RankedMatch struct {
	CandidateID string        `json:"candidate_id"`
	Factors     []FactorScore `json:"factors"`
	Total       int           `json:"total"`
	Grade       string        `json:"grade"`
	Viability   string        `json:"viability"`
	VedicScore  float64       `json:"vedic_score"`
	Spice       SpiceMatch    `json:"spice"`
	FinalScore  float64       `json:"final_score"`
	Gate        gate.Verdict  `json:"gate"`
}

// RankResult is the one-to-many envelope.
type RankResult struct {
	SchemaVersion   string         `json:"schema_version"`
	RequestID       string         `json:"request_id"`
	SourceID        string         `json:"source_id"`
	Matches         []*RankedMatch `json:"matches"`
	TotalCandidates int            `json:"total_candidates"`
	MatchesFound    int            `json:"matches_found"`
	ExcludedByGate  int            `json:"excluded_by_gate"`
}

func (r *RankResult) Len() int {
	return len(r.Matches)
}

func (r *RankResult) FindByID(id string) *RankedMatch {
	for _, match := range r.Matches {
		if match.CandidateID == id {
			return match
		}
	}
	return nil
}

// Report by grade tier.
func (r *RankResult) ReportByGrade() map[string][]map[string]string {
	report := make(map[string][]map[string]string)
	for _, match := range r.Matches {
		report[match.Grade] = append(report[match.Grade], map[string]string{
			"candidate":   match.CandidateID,
			"final score": fmt.Sprintf("%.4f", match.FinalScore),
			"total":       fmt.Sprintf("%d of %d", match.Total, kundali.MaxTotal),
			"viability":   match.Viability,
			"eligible":    fmt.Sprintf("%t", match.Gate.Eligible),
		})
	}
	return report
}

func (r *RankResult) DumpToTmpFile() (string, error) {
	file, err := os.CreateTemp("", "matches_*.json")
	if err != nil {
		return "", err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return "", err
	}
	return file.Name(), nil
}
