package matching

import (
	"context"
	"math"
	"testing"

	"github.com/google/uuid"
	"github.com/oneinabillion/vedic-match/internal/kundali"
	"go.uber.org/zap"
)

func rankFixture() (kundali.Chart, []kundali.Chart) {
	source := kundali.Chart{ID: "source", MoonSign: kundali.Aries, Nakshatra: kundali.Ashwini}
	candidates := []kundali.Chart{
		{ID: "b", MoonSign: kundali.Aries, Nakshatra: kundali.Ashwini},
		{ID: "a", MoonSign: kundali.Aries, Nakshatra: kundali.Ashwini},
		{ID: "c", MoonSign: kundali.Aries, Nakshatra: kundali.Ashwini, Spice: 9},
		{ID: "x", MoonSign: kundali.Virgo, Nakshatra: kundali.Ardra},
	}
	return source, candidates
}

func matchIDs(result *RankResult) []string {
	ids := make([]string, 0, result.Len())
	for _, match := range result.Matches {
		ids = append(ids, match.CandidateID)
	}
	return ids
}

func TestRankOrdersAndCounts(t *testing.T) {
	t.Parallel()

	engine := New(zap.NewNop())
	source, candidates := rankFixture()

	result, err := engine.Rank(context.Background(), source, candidates, DefaultOptions())
	if err != nil {
		t.Fatalf("rank failed: %v", err)
	}

	if result.SourceID != "source" {
		t.Fatalf("source id = %q", result.SourceID)
	}
	if _, err := uuid.Parse(result.RequestID); err != nil {
		t.Fatalf("request id %q is not a uuid: %v", result.RequestID, err)
	}
	if result.TotalCandidates != 4 || result.MatchesFound != 3 || result.ExcludedByGate != 1 {
		t.Fatalf("counts = %d/%d/%d", result.TotalCandidates, result.MatchesFound, result.ExcludedByGate)
	}

	want := []string{"a", "b", "c"}
	got := matchIDs(result)
	if len(got) != len(want) {
		t.Fatalf("matches = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("matches = %v, want %v", got, want)
		}
	}

	// Identical charts score 25; same spice blends at full alignment.
	wantFinal := 25.0/float64(kundali.MaxTotal)*0.8 + 1.0*0.2
	if math.Abs(result.Matches[0].FinalScore-wantFinal) > 1e-12 {
		t.Fatalf("final = %v, want %v", result.Matches[0].FinalScore, wantFinal)
	}
	if len(result.Matches[0].Factors) != 8 {
		t.Fatalf("factors = %d, want 8", len(result.Matches[0].Factors))
	}
	if result.Matches[2].Spice.AlignmentScore != 0.15 {
		t.Fatalf("spice alignment for distance 4 = %v", result.Matches[2].Spice.AlignmentScore)
	}
	if result.Matches[2].FinalScore >= result.Matches[1].FinalScore {
		t.Fatalf("weaker spice alignment must rank lower")
	}
}

func TestRankIncludesIneligibleOnRequest(t *testing.T) {
	t.Parallel()

	engine := New(zap.NewNop())
	source, candidates := rankFixture()

	opts := DefaultOptions()
	opts.IncludeIneligible = true

	result, err := engine.Rank(context.Background(), source, candidates, opts)
	if err != nil {
		t.Fatalf("rank failed: %v", err)
	}

	if result.Len() != 4 {
		t.Fatalf("expected all candidates returned, got %v", matchIDs(result))
	}
	if result.MatchesFound != 3 || result.ExcludedByGate != 1 {
		t.Fatalf("inclusion must not change counts: %d/%d", result.MatchesFound, result.ExcludedByGate)
	}

	last := result.Matches[3]
	if last.CandidateID != "x" || last.Gate.Eligible {
		t.Fatalf("ineligible candidate should rank last: %+v", last)
	}
	if len(last.Gate.Reasons) == 0 {
		t.Fatalf("ineligible candidate must keep its gate reasons")
	}
}

func TestRankWeightsFallBackToDefaults(t *testing.T) {
	t.Parallel()

	engine := New(zap.NewNop())
	source, candidates := rankFixture()

	opts := DefaultOptions()
	opts.WeightVedic = -1
	opts.WeightSpice = 0

	result, err := engine.Rank(context.Background(), source, candidates, opts)
	if err != nil {
		t.Fatalf("rank failed: %v", err)
	}

	wantFinal := 25.0/float64(kundali.MaxTotal)*0.8 + 1.0*0.2
	if math.Abs(result.Matches[0].FinalScore-wantFinal) > 1e-12 {
		t.Fatalf("final = %v, want default-weight blend %v", result.Matches[0].FinalScore, wantFinal)
	}
}

func TestRankIsDeterministicAcrossRuns(t *testing.T) {
	t.Parallel()

	engine := New(zap.NewNop())
	source, candidates := rankFixture()

	opts := DefaultOptions()
	opts.Concurrency = 4

	first, err := engine.Rank(context.Background(), source, candidates, opts)
	if err != nil {
		t.Fatalf("rank failed: %v", err)
	}
	second, err := engine.Rank(context.Background(), source, candidates, opts)
	if err != nil {
		t.Fatalf("rank failed: %v", err)
	}

	if first.Len() != second.Len() {
		t.Fatalf("runs disagree on match count: %d vs %d", first.Len(), second.Len())
	}
	for i := range first.Matches {
		a, b := first.Matches[i], second.Matches[i]
		if a.CandidateID != b.CandidateID || a.FinalScore != b.FinalScore {
			t.Fatalf("run mismatch at %d: %+v vs %+v", i, a, b)
		}
	}
}

func TestRankHonorsContextCancellation(t *testing.T) {
	t.Parallel()

	engine := New(zap.NewNop())
	source, candidates := rankFixture()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := engine.Rank(ctx, source, candidates, DefaultOptions()); err == nil {
		t.Fatalf("expected a context error")
	}
}

func TestRankWithNoCandidates(t *testing.T) {
	t.Parallel()

	engine := New(zap.NewNop())
	source, _ := rankFixture()

	result, err := engine.Rank(context.Background(), source, nil, DefaultOptions())
	if err != nil {
		t.Fatalf("rank failed: %v", err)
	}

	if result.Matches == nil || result.Len() != 0 {
		t.Fatalf("expected an empty match list, got %+v", result.Matches)
	}
	if result.TotalCandidates != 0 || result.MatchesFound != 0 || result.ExcludedByGate != 0 {
		t.Fatalf("counts = %d/%d/%d", result.TotalCandidates, result.MatchesFound, result.ExcludedByGate)
	}
}
