package services

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractSkillsEmptyInput(t *testing.T) {
	nlp := newTestNLPContext(t)

	assert.Empty(t, nlp.ExtractSkills(""))
	assert.Empty(t, nlp.ExtractSkills("   \n\t"))
}

func TestExtractSkillsInvariants(t *testing.T) {
	nlp := newTestNLPContext(t)

	text := "we build python services and maintain large sql databases while " +
		"deploying containers to kubernetes clusters every day"
	skills := nlp.ExtractSkills(text)
	require.NotEmpty(t, skills)

	for phrase := range skills {
		words := strings.Fields(phrase)
		assert.LessOrEqual(t, len(words), 3, "phrase %q exceeds three words", phrase)
		assert.Greater(t, len(phrase), 2, "phrase %q too short", phrase)
		assert.Equal(t, strings.ToLower(phrase), phrase, "phrase %q must be lowercase", phrase)

		allStop := true
		for _, w := range words {
			if !nlp.IsStopWord(w) {
				allStop = false
				break
			}
		}
		assert.False(t, allStop, "phrase %q is all stop words", phrase)
	}
}

func TestExtractSkillsFindsNouns(t *testing.T) {
	nlp := newTestNLPContext(t)

	skills := nlp.ExtractSkills("we use python every day")
	assert.True(t, skills.Contains("python"), "expected python in %v", skills.Sorted())
}

func TestExtractSkillsCollapsesDuplicates(t *testing.T) {
	nlp := newTestNLPContext(t)

	once := nlp.ExtractSkills("we use python daily")
	twice := nlp.ExtractSkills("we use python daily and we use python nightly")
	assert.True(t, twice.Contains("python"))
	assert.True(t, once.Contains("python"))
}

func TestAnalyzeSkillGapEmptyJobSet(t *testing.T) {
	strengths, missing, feedback := AnalyzeSkillGap(SkillSet{}, SkillSet{"python": {}})

	assert.Empty(t, strengths)
	assert.Empty(t, missing)
	assert.Equal(t, "Could not extract skills from Job Description.", feedback)
}

func TestAnalyzeSkillGapSetLaws(t *testing.T) {
	job := SkillSet{"python": {}, "sql": {}, "docker": {}, "terraform": {}}
	resume := SkillSet{"python": {}, "docker": {}, "golang": {}}

	strengths, missing, _ := AnalyzeSkillGap(job, resume)

	assert.ElementsMatch(t, []string{"docker", "python"}, strengths)
	assert.ElementsMatch(t, []string{"sql", "terraform"}, missing)

	// strengths and missing partition a subset of the job skills.
	for _, s := range strengths {
		assert.NotContains(t, missing, s)
		assert.True(t, job.Contains(s))
	}
	for _, m := range missing {
		assert.True(t, job.Contains(m))
	}
}

func TestAnalyzeSkillGapDeterministicOrder(t *testing.T) {
	job := SkillSet{"zig": {}, "ada": {}, "perl": {}, "lua": {}}
	resume := SkillSet{}

	_, missing1, _ := AnalyzeSkillGap(job, resume)
	for i := 0; i < 5; i++ {
		_, missing, _ := AnalyzeSkillGap(job, resume)
		assert.Equal(t, missing1, missing)
	}
	assert.Equal(t, []string{"ada", "lua", "perl", "zig"}, missing1)
}

func TestAnalyzeSkillGapCapsLists(t *testing.T) {
	job := SkillSet{}
	for i := 0; i < 25; i++ {
		job.Add(fmt.Sprintf("skill%02d", i))
	}
	resume := SkillSet{}
	for i := 0; i < 12; i++ {
		resume.Add(fmt.Sprintf("skill%02d", i))
	}

	strengths, missing, feedback := AnalyzeSkillGap(job, resume)

	assert.Len(t, strengths, 10)
	assert.Len(t, missing, 10)
	// Counts in the feedback reflect the full sets, not the capped lists.
	assert.Contains(t, feedback, "strength in 12 key areas")
	assert.Contains(t, feedback, "gaps identified in 13 areas")
}

func TestAnalyzeSkillGapFeedback(t *testing.T) {
	t.Run("names up to the first three missing skills", func(t *testing.T) {
		job := SkillSet{"aaa": {}, "bbb": {}, "ccc": {}, "ddd": {}, "eee": {}}
		_, _, feedback := AnalyzeSkillGap(job, SkillSet{"eee": {}})

		assert.Contains(t, feedback, "aaa, bbb, ccc")
		assert.NotContains(t, feedback, "ddd")
	})

	t.Run("full coverage", func(t *testing.T) {
		job := SkillSet{"python": {}, "sql": {}}
		_, missing, feedback := AnalyzeSkillGap(job, job)

		assert.Empty(t, missing)
		assert.Contains(t, feedback, "Covers all key skill areas identified.")
	})
}
