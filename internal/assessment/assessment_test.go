package assessment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuestions_FixedShape(t *testing.T) {
	t.Parallel()

	qs := Questions()
	assert.Len(t, qs, 5)
	for _, q := range qs {
		assert.Len(t, q.Options, 5)
		assert.NotEmpty(t, q.Question)
	}
}

func TestGenerate_RemoteTechnology(t *testing.T) {
	t.Parallel()

	r := Generate(map[int]string{0: "Remote/WFH", 3: "Technology"})

	// answers visited in question order, first-occurrence dedup, capped at 5
	assert.Equal(t, []string{
		"Digital Nomad", "Freelancer", "Remote Developer",
		"Software Developer", "Data Analyst",
	}, r.RecommendedRoles)

	assert.Equal(t, []string{
		"Time Management", "Self-discipline", "Digital Communication",
		"Programming", "Cloud Computing",
	}, r.Skills)

	assert.Equal(t, []string{"Technology"}, r.Industries)
	assert.Equal(t,
		"Consider learning emerging technologies like AI and blockchain to stay competitive.",
		r.Advice)
}

func TestGenerate_Deterministic(t *testing.T) {
	t.Parallel()

	answers := map[int]string{
		0: "Flexible",
		1: "Career growth",
		2: "Leadership",
		3: "Finance",
		4: "Client-facing",
	}
	first := Generate(answers)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Generate(answers))
	}
}

func TestGenerate_DeduplicatesAcrossAnswers(t *testing.T) {
	t.Parallel()

	// "Executive" appears under both Career growth and Leadership;
	// it must be listed once, at its first occurrence.
	r := Generate(map[int]string{1: "Career growth", 2: "Leadership"})
	assert.Equal(t, []string{
		"Management Trainee", "Tech Lead", "Executive",
		"Team Lead", "Department Head",
	}, r.RecommendedRoles)
}

func TestGenerate_EmptyAnswersFallsBackToDefaults(t *testing.T) {
	t.Parallel()

	r := Generate(nil)
	assert.Equal(t, []string{"Project Manager", "UX Designer", "Data Analyst"}, r.RecommendedRoles)
	assert.Equal(t, []string{"Agile Methodology", "User Research", "Data Visualization"}, r.Skills)
	assert.Equal(t, []string{"Technology", "Finance", "Healthcare"}, r.Industries)
	assert.Equal(t, defaultAdvice, r.Advice)
}

func TestGenerate_UnknownOptionContributesNothing(t *testing.T) {
	t.Parallel()

	r := Generate(map[int]string{0: "Underwater basket weaving"})
	assert.Equal(t, []string{"Project Manager", "UX Designer", "Data Analyst"}, r.RecommendedRoles)
	assert.Equal(t, defaultAdvice, r.Advice)
}

func TestGenerate_AdviceFollowsIndustryAnswer(t *testing.T) {
	t.Parallel()

	r := Generate(map[int]string{3: "Healthcare"})
	assert.Equal(t,
		"Specializing in a medical niche can increase your career opportunities.",
		r.Advice)
	assert.Equal(t, []string{"Healthcare"}, r.Industries)
}
