package matching

import (
	"cmp"
	"slices"
	"strings"

	"preference_match/internal/domain"

	"github.com/samber/lo"
)

const (
	// DefaultMinScore — минимально допустимый score
	DefaultMinScore = 50
	// DefaultPriorityPercent — доля верхних результатов с флагом priority
	DefaultPriorityPercent = 80
)

// RankingPolicy — политика отсечения и приоритизации.
type RankingPolicy struct {
	MinScore        int
	PriorityPercent int
}

func DefaultRankingPolicy() RankingPolicy {
	return RankingPolicy{
		MinScore:        DefaultMinScore,
		PriorityPercent: DefaultPriorityPercent,
	}
}

// Rank отбрасывает кандидатов ниже порога, сортирует по убыванию score и помечает priority.
// При равном score первым идёт более свежее объявление, затем меньший ID.
func Rank(scored []domain.ScoredCandidate, policy RankingPolicy) []domain.MatchResult {
	kept := lo.Filter(scored, func(s domain.ScoredCandidate, _ int) bool {
		return s.Score >= policy.MinScore
	})

	slices.SortStableFunc(kept, compareScored)

	cutoff := PriorityCutoff(len(kept), policy.PriorityPercent)

	return lo.Map(kept, func(s domain.ScoredCandidate, i int) domain.MatchResult {
		return domain.MatchResult{
			Property:   s.Property,
			MatchScore: s.Score,
			IsPriority: i < cutoff,
		}
	})
}

func compareScored(a, b domain.ScoredCandidate) int {
	if a.Score != b.Score {
		return cmp.Compare(b.Score, a.Score)
	}
	if c := b.Property.CreatedAt.Compare(a.Property.CreatedAt); c != 0 {
		return c
	}
	return strings.Compare(a.Property.ID.String(), b.Property.ID.String())
}

// PriorityCutoff = ceil(n * percent / 100), в целочисленной арифметике.
func PriorityCutoff(n, percent int) int {
	if n <= 0 {
		return 0
	}
	percent = min(max(percent, 0), 100)
	return (n*percent + 99) / 100
}
