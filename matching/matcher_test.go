package matching

import (
	"errors"
	"reflect"
	"testing"
)

func TestRankEmptyRequirements(t *testing.T) {
	for _, required := range [][]string{nil, {}, {"", "  ", "\t"}} {
		_, _, err := Rank(required, []Candidate{{FreelancerID: "a", Skills: []string{"go"}}})
		if !errors.Is(err, ErrNoRequirements) {
			t.Fatalf("required=%v: expected ErrNoRequirements, got %v", required, err)
		}
	}
}

func TestRankExample(t *testing.T) {
	// Posting requires {python, react}; A has {python, sql}, B has
	// {python, react, docker}. A matches at 50%, B at 100%, avg 75%.
	matches, avg, err := Rank([]string{"python", "react"}, []Candidate{
		{FreelancerID: "a", Skills: []string{"python", "sql"}},
		{FreelancerID: "b", Skills: []string{"python", "react", "docker"}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(matches) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(matches))
	}
	if matches[0].FreelancerID != "a" || matches[0].Percent != 50 {
		t.Fatalf("unexpected first match: %+v", matches[0])
	}
	if matches[1].FreelancerID != "b" || matches[1].Percent != 100 {
		t.Fatalf("unexpected second match: %+v", matches[1])
	}
	if avg != 75 {
		t.Fatalf("expected avg 75, got %v", avg)
	}
}

func TestRankSkipsEmptyIntersection(t *testing.T) {
	matches, avg, err := Rank([]string{"go"}, []Candidate{
		{FreelancerID: "a", Skills: []string{"java", "sql"}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(matches) != 0 {
		t.Fatalf("expected no matches, got %+v", matches)
	}
	if avg != 0 {
		t.Fatalf("expected avg 0 when nothing matched, got %v", avg)
	}
}

func TestRankFirstMatchWins(t *testing.T) {
	// The same freelancer appears twice; the second posting would score
	// higher but the first match must win.
	matches, _, err := Rank([]string{"go", "sql"}, []Candidate{
		{FreelancerID: "a", Skills: []string{"go"}},
		{FreelancerID: "a", Skills: []string{"go", "sql"}},
		{FreelancerID: "b", Skills: []string{"sql"}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(matches) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(matches))
	}
	if matches[0].FreelancerID != "a" || matches[0].Percent != 50 {
		t.Fatalf("expected first posting by a to win at 50%%: %+v", matches[0])
	}
	seen := map[string]int{}
	for _, m := range matches {
		seen[m.FreelancerID]++
	}
	for id, n := range seen {
		if n != 1 {
			t.Fatalf("freelancer %s appears %d times", id, n)
		}
	}
}

func TestRankNormalization(t *testing.T) {
	matches, _, err := Rank([]string{"  Python ", "REACT"}, []Candidate{
		{FreelancerID: "a", Skills: []string{"python", " React "}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(matches) != 1 || matches[0].Percent != 100 {
		t.Fatalf("expected full match after normalization, got %+v", matches)
	}
	if !reflect.DeepEqual(matches[0].Matched, []string{"python", "react"}) {
		t.Fatalf("unexpected matched skills: %v", matches[0].Matched)
	}
}

func TestRankPercentBounds(t *testing.T) {
	required := []string{"a", "b", "c"}
	candidates := []Candidate{
		{FreelancerID: "one", Skills: []string{"a"}},
		{FreelancerID: "two", Skills: []string{"a", "b"}},
		{FreelancerID: "three", Skills: []string{"a", "b", "c", "d"}},
	}

	matches, avg, err := Rank(required, candidates)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, m := range matches {
		if m.Percent < 0 || m.Percent > 100 {
			t.Fatalf("percent out of range: %+v", m)
		}
	}
	if matches[0].Percent != 33.33 {
		t.Fatalf("expected 33.33 for one of three skills, got %v", matches[0].Percent)
	}
	if avg < 0 || avg > 100 {
		t.Fatalf("avg out of range: %v", avg)
	}
}

func TestNormalizeDedupes(t *testing.T) {
	got := Normalize([]string{"Go", "go", " GO ", "sql", ""})
	if !reflect.DeepEqual(got, []string{"go", "sql"}) {
		t.Fatalf("unexpected normalization: %v", got)
	}
}
