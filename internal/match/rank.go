package match

import (
	"sort"
)

// Candidate is a known name scored against an unknown one.
type Candidate struct {
	Name  string
	Score float64 // folded Levenshtein similarity (0-1)
}

// CandidateList is a list of candidates with ranking functionality.
type CandidateList []Candidate

// Rank scores every known name against name and returns them sorted by
// score (descending), then by name for determinism.
func Rank(name string, known []string) CandidateList {
	candidates := make(CandidateList, 0, len(known))
	for _, k := range known {
		candidates = append(candidates, Candidate{Name: k, Score: Similarity(name, k)})
	}

	sort.Sort(candidates)

	return candidates
}

// Len implements sort.Interface.
func (c CandidateList) Len() int { return len(c) }

// Swap implements sort.Interface.
func (c CandidateList) Swap(i, j int) { c[i], c[j] = c[j], c[i] }

// Less implements sort.Interface.
func (c CandidateList) Less(i, j int) bool {
	if c[i].Score != c[j].Score {
		return c[i].Score > c[j].Score
	}

	return c[i].Name < c[j].Name
}

// Best returns the best candidate if it scores at least minScore and is not
// tied with the runner-up, or nil.
func (c CandidateList) Best(minScore float64) *Candidate {
	if len(c) == 0 || c[0].Score < minScore {
		return nil
	}

	if len(c) > 1 && c[1].Score == c[0].Score {
		return nil
	}

	return &c[0]
}

// DefaultMinScore is the similarity a near-miss must reach to be suggested.
const DefaultMinScore = 0.7
