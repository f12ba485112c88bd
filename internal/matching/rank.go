package matching

import (
	"context"
	"runtime"
	"sort"

	"github.com/google/uuid"
	"github.com/oneinabillion/vedic-match/internal/gate"
	"github.com/oneinabillion/vedic-match/internal/kundali"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Rank scores every candidate against the source and returns the eligible
// ones ordered by blended score. Candidates have no cross dependencies, so
// scoring fans out on an errgroup; results land in indexed slots, keeping
// the output independent of scheduling. The only possible error is a
// cancelled context.
func (e *Engine) Rank(ctx context.Context, source kundali.Chart, candidates []kundali.Chart, opts Options) (*RankResult, error) {
	limit := opts.Concurrency
	if limit <= 0 {
		limit = runtime.GOMAXPROCS(0)
	}

	checks := opts.checks()
	wv, ws := opts.weights()
	scored := make([]*RankedMatch, len(candidates))

	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(limit)

	for idx, candidate := range candidates {
		idx, candidate := idx, candidate
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			scored[idx] = e.rankOne(source, candidate, checks, wv, ws)
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	found := 0
	matches := make([]*RankedMatch, 0, len(scored))
	for _, match := range scored {
		if match.Gate.Eligible {
			found++
		}
		if match.Gate.Eligible || opts.IncludeIneligible {
			matches = append(matches, match)
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		a, b := matches[i], matches[j]
		if a.FinalScore != b.FinalScore {
			return a.FinalScore > b.FinalScore
		}
		if a.Total != b.Total {
			return a.Total > b.Total
		}
		return a.CandidateID < b.CandidateID
	})

	result := &RankResult{
		SchemaVersion:   SchemaVersion,
		RequestID:       uuid.NewString(),
		SourceID:        source.ID,
		Matches:         matches,
		TotalCandidates: len(candidates),
		MatchesFound:    found,
		ExcludedByGate:  len(candidates) - found,
	}

	e.logger.Info("ranking completed",
		zap.String("request_id", result.RequestID),
		zap.String("source", source.ID),
		zap.Int("candidates", result.TotalCandidates),
		zap.Int("found", result.MatchesFound),
		zap.Int("excluded", result.ExcludedByGate),
	)

	return result, nil
}

func (e *Engine) rankOne(source, candidate kundali.Chart, checks []gate.Check, wv, ws float64) *RankedMatch {
	pair := pairOf(source, candidate)
	verdict := gate.Run(e.logger, checks, pair)

	spice := MatchSpice(source.Spice, candidate.Spice)
	vedic := float64(pair.Score.Total) / float64(kundali.MaxTotal)

	return &RankedMatch{
		CandidateID: candidate.ID,
		Factors:     Factors(pair.Score),
		Total:       pair.Score.Total,
		Grade:       Grade(pair.Score.Total),
		Viability:   Viability(pair.Score.Total),
		VedicScore:  vedic,
		Spice:       spice,
		FinalScore:  vedic*wv + spice.AlignmentScore*ws,
		Gate:        verdict,
	}
}
