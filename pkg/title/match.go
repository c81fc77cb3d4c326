package title

import (
	"regexp"
	"sort"
	"strings"

	"github.com/hbollon/go-edlib"
)

var digitsRegex = regexp.MustCompile(`\b\d+\b`)

// Confidence buckets a similarity score.
type Confidence int

const (
	ConfidenceNone   Confidence = iota // below 0.70
	ConfidenceLow                      // 0.70 and up
	ConfidenceMedium                   // 0.85 and up
	ConfidenceHigh                     // 0.95 and up
)

func (c Confidence) String() string {
	switch c {
	case ConfidenceHigh:
		return "high"
	case ConfidenceMedium:
		return "medium"
	case ConfidenceLow:
		return "low"
	default:
		return "none"
	}
}

func confidenceFor(score float64) Confidence {
	switch {
	case score >= 0.95:
		return ConfidenceHigh
	case score >= 0.85:
		return ConfidenceMedium
	case score >= 0.70:
		return ConfidenceLow
	default:
		return ConfidenceNone
	}
}

// Match is one ranked candidate.
type Match struct {
	Index      int // position in the candidate slice
	Title      string
	Score      float64
	Confidence Confidence
}

// Similarity scores two titles in [0, 1] using Jaro-Winkler over their
// cleaned forms. A query that appears whole inside the candidate scores at
// least 0.9, and differing sequel numbers are penalized.
func Similarity(query, candidate string) float64 {
	q, c := Clean(query), Clean(candidate)
	if q == "" || c == "" {
		return 0
	}
	if q == c {
		return 1
	}

	score := float64(edlib.JaroWinklerSimilarity(q, c))
	if strings.Contains(" "+c+" ", " "+q+" ") {
		score = max(score, 0.9)
	}
	return adjustForSequel(score, digitsRegex.FindAllString(q, -1), digitsRegex.FindAllString(c, -1))
}

// adjustForSequel rewards a shared number and penalizes a missing or
// different one, so "Rocky 2" prefers "Rocky II" over "Rocky".
func adjustForSequel(score float64, queryNums, candNums []string) float64 {
	if len(queryNums) == 0 {
		return score
	}
	if len(candNums) == 0 {
		return score * 0.85
	}
	for _, qn := range queryNums {
		for _, cn := range candNums {
			if qn == cn {
				return min(score*1.05, 1.0)
			}
		}
	}
	return score * 0.90
}

// Rank scores every candidate against query and returns those with at least
// low confidence, best first. Equal scores keep candidate order. A limit of
// zero or less returns every match.
func Rank(query string, candidates []string, limit int) []Match {
	var matches []Match
	for i, c := range candidates {
		score := Similarity(query, c)
		conf := confidenceFor(score)
		if conf == ConfidenceNone {
			continue
		}
		matches = append(matches, Match{Index: i, Title: c, Score: score, Confidence: conf})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})

	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}
	return matches
}
