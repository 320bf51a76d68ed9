package pipeline

import (
	"sort"
	"strings"

	"github.com/hirecheck/screener-cli/internal/model"
)

// RankedResults partitions a batch into flagged candidates, the top-N
// ranked candidates, and the ranked remainder. Every input result lands
// in exactly one partition.
type RankedResults struct {
	Flagged []model.ScreenedResult
	Top     []model.ScreenedResult
	Rest    []model.ScreenedResult
}

// Aggregate deterministically partitions and ranks screened results.
// Non-flagged candidates sort by final score descending with candidate
// name ascending as the tie break, so output order never depends on
// task completion order. Flagged candidates sort by name for the same
// reason.
func Aggregate(results []model.ScreenedResult, topN int) RankedResults {
	var flagged, valid []model.ScreenedResult
	for _, r := range results {
		if r.IsFlagged() {
			flagged = append(flagged, r)
		} else {
			valid = append(valid, r)
		}
	}

	sort.SliceStable(valid, func(i, j int) bool {
		si, sj := valid[i].FinalScore(), valid[j].FinalScore()
		if si != sj {
			return si > sj
		}
		return lessByName(valid[i], valid[j])
	})

	sort.SliceStable(flagged, func(i, j int) bool {
		return lessByName(flagged[i], flagged[j])
	})

	if topN < 0 {
		topN = 0
	}
	if topN > len(valid) {
		topN = len(valid)
	}

	return RankedResults{
		Flagged: flagged,
		Top:     valid[:topN],
		Rest:    valid[topN:],
	}
}

func lessByName(a, b model.ScreenedResult) bool {
	return strings.ToLower(a.Candidate.Identity()) < strings.ToLower(b.Candidate.Identity())
}
