package services

import (
	"fmt"
	"sort"
	"strings"
)

// maxSkillsDisplay caps the strengths and missing-skills lists in a result.
const maxSkillsDisplay = 10

// SkillSet is an unordered set of lowercase skill phrases. Ordered views
// (truncation, feedback) always go through Sorted so the output is
// deterministic.
type SkillSet map[string]struct{}

func (s SkillSet) Add(phrase string) {
	s[phrase] = struct{}{}
}

func (s SkillSet) Contains(phrase string) bool {
	_, ok := s[phrase]
	return ok
}

// Intersect returns the phrases present in both sets.
func (s SkillSet) Intersect(other SkillSet) SkillSet {
	result := SkillSet{}
	for phrase := range s {
		if other.Contains(phrase) {
			result.Add(phrase)
		}
	}
	return result
}

// Difference returns the phrases in s that are absent from other.
func (s SkillSet) Difference(other SkillSet) SkillSet {
	result := SkillSet{}
	for phrase := range s {
		if !other.Contains(phrase) {
			result.Add(phrase)
		}
	}
	return result
}

// Sorted returns the phrases in lexicographic order.
func (s SkillSet) Sorted() []string {
	phrases := make([]string, 0, len(s))
	for phrase := range s {
		phrases = append(phrases, phrase)
	}
	sort.Strings(phrases)
	return phrases
}

// ExtractSkills derives candidate skill phrases from text: contiguous
// adjective/noun runs of at most three tokens, headed by a noun, lowercased,
// with short and all-stop-word phrases discarded. Duplicates collapse.
// Unparseable or empty input yields an empty set.
func (n *NLPContext) ExtractSkills(text string) SkillSet {
	skills := SkillSet{}
	if strings.TrimSpace(text) == "" {
		return skills
	}

	tokens, err := n.tagTokens(text)
	if err != nil {
		return skills
	}

	var run []string
	hasNoun := false

	flush := func() {
		if hasNoun && len(run) > 0 && len(run) <= 3 {
			phrase := strings.ToLower(strings.Join(run, " "))
			if n.isSkillPhrase(phrase) {
				skills.Add(phrase)
			}
		}
		run = nil
		hasNoun = false
	}

	for _, tok := range tokens {
		switch {
		case strings.HasPrefix(tok.Tag, "NN"):
			run = append(run, tok.Text)
			hasNoun = true
		case strings.HasPrefix(tok.Tag, "JJ"):
			run = append(run, tok.Text)
		default:
			flush()
		}
	}
	flush()

	return skills
}

func (n *NLPContext) isSkillPhrase(phrase string) bool {
	if len(phrase) <= 2 {
		return false
	}
	for _, word := range strings.Fields(phrase) {
		if !n.IsStopWord(word) {
			return true
		}
	}
	return false
}

// AnalyzeSkillGap compares the job-description skills against a resume's.
// Strengths are the intersection, missing the job-side difference, both in
// lexicographic order and capped for display. Matching is literal string
// equality on the lemmatized phrases; morphological near-misses are a known
// precision limit, not something this layer tries to repair.
func AnalyzeSkillGap(jobSkills, resumeSkills SkillSet) (strengths, missing []string, feedback string) {
	if len(jobSkills) == 0 {
		return []string{}, []string{}, "Could not extract skills from Job Description."
	}

	strengths = jobSkills.Intersect(resumeSkills).Sorted()
	missing = jobSkills.Difference(resumeSkills).Sorted()

	var sb strings.Builder
	fmt.Fprintf(&sb, "Candidate shows strength in %d key areas. ", len(strengths))
	if len(missing) > 0 {
		examples := missing
		if len(examples) > 3 {
			examples = examples[:3]
		}
		fmt.Fprintf(&sb, "Potential gaps identified in %d areas like: %s...",
			len(missing), strings.Join(examples, ", "))
	} else {
		sb.WriteString("Covers all key skill areas identified.")
	}

	if len(strengths) > maxSkillsDisplay {
		strengths = strengths[:maxSkillsDisplay]
	}
	if len(missing) > maxSkillsDisplay {
		missing = missing[:maxSkillsDisplay]
	}

	return strengths, missing, sb.String()
}
