// Package matching scores candidate mentors by how many skills they share with a user.
package matching

import (
	"sort"
	"strings"

	"github.com/mansi2425/punjab-alumni-connect/internal/model"
)

// SkillSet is a set of normalized skill tokens.
type SkillSet map[string]struct{}

// ParseSkills splits comma-separated text into a set of trimmed, lowercased tokens.
// Empty tokens are dropped.
func ParseSkills(text string) SkillSet {
	set := make(SkillSet)
	for _, part := range strings.Split(text, ",") {
		token := strings.ToLower(strings.TrimSpace(part))
		if token == "" {
			continue
		}
		set[token] = struct{}{}
	}
	return set
}

// Len returns the number of distinct skills.
func (s SkillSet) Len() int {
	return len(s)
}

// Overlap counts the skills present in both sets.
func (s SkillSet) Overlap(other SkillSet) int {
	small, large := s, other
	if len(small) > len(large) {
		small, large = large, small
	}
	n := 0
	for token := range small {
		if _, ok := large[token]; ok {
			n++
		}
	}
	return n
}

// Match is a scored mentor candidate.
type Match struct {
	Mentor model.User `json:"mentor"`
	Score  int        `json:"score"`
}

// Rank scores every candidate against target and returns at most limit matches,
// best first. Candidates with no shared skill and the candidate whose ID equals
// excludeID are left out. Equal scores are ordered by ascending user ID.
// A limit of zero or less means no cap.
func Rank(target SkillSet, excludeID uint, candidates []model.User, limit int) []Match {
	matches := make([]Match, 0)
	if target.Len() == 0 {
		return matches
	}

	for _, candidate := range candidates {
		if candidate.ID == excludeID {
			continue
		}
		score := target.Overlap(ParseSkills(candidate.Skills()))
		if score == 0 {
			continue
		}
		matches = append(matches, Match{Mentor: candidate, Score: score})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].Score != matches[j].Score {
			return matches[i].Score > matches[j].Score
		}
		return matches[i].Mentor.ID < matches[j].Mentor.ID
	})

	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}
	return matches
}
