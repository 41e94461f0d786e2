// Package matching ranks freelancer postings against a job posting's
// required skills.
package matching

import (
	"errors"
	"math"
	"strings"
)

// ErrNoRequirements is returned when the job posting has no usable
// required skills after normalization.
var ErrNoRequirements = errors.New("no required skills found")

// Candidate is one freelancer posting under consideration. Several
// candidates may share a FreelancerID when a freelancer has multiple
// postings.
type Candidate struct {
	FreelancerID string
	Skills       []string
}

// Match is the score for a single freelancer.
type Match struct {
	FreelancerID string
	// Skills is the candidate's full normalized skill set.
	Skills []string
	// Matched is the intersection with the required skills.
	Matched []string
	// Percent is 100 * |Matched| / |required|, rounded to 2 decimals.
	Percent float64
}

// Normalize trims and lowercases every skill, dropping empties and
// duplicates while preserving first-seen order.
func Normalize(skills []string) []string {
	seen := make(map[string]bool, len(skills))
	out := make([]string, 0, len(skills))
	for _, s := range skills {
		s = strings.ToLower(strings.TrimSpace(s))
		if s == "" || seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}

// Rank scores candidates against the required skills and returns matches
// in discovery order together with the average match percent (0 when
// nothing matched).
//
// Candidates with an empty intersection are skipped. A freelancer is
// scored at most once: the first posting that matches wins and later
// postings by the same freelancer are ignored, even if they would score
// higher.
func Rank(required []string, candidates []Candidate) ([]Match, float64, error) {
	req := Normalize(required)
	if len(req) == 0 {
		return nil, 0, ErrNoRequirements
	}

	reqSet := make(map[string]bool, len(req))
	for _, s := range req {
		reqSet[s] = true
	}

	var (
		matches []Match
		total   float64
		seen    = make(map[string]bool)
	)

	for _, cand := range candidates {
		if seen[cand.FreelancerID] {
			continue
		}

		skills := Normalize(cand.Skills)
		var matched []string
		for _, s := range skills {
			if reqSet[s] {
				matched = append(matched, s)
			}
		}
		if len(matched) == 0 {
			continue
		}

		seen[cand.FreelancerID] = true
		percent := round2(100 * float64(len(matched)) / float64(len(req)))
		total += percent

		matches = append(matches, Match{
			FreelancerID: cand.FreelancerID,
			Skills:       skills,
			Matched:      matched,
			Percent:      percent,
		})
	}

	if len(matches) == 0 {
		return nil, 0, nil
	}

	return matches, round2(total / float64(len(matches))), nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
