package persona

import (
	"math/rand"
	"testing"

	"github.com/FitMunity/feed-service/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestExpertFor(t *testing.T) {
	fitness := ExpertFor([]model.Tag{model.TagFitness})
	assert.Equal(t, "Alex Thompson", fitness.Name)
	assert.Equal(t, "Fitness Trainer", fitness.Role)

	// fitness wins when both are present, regardless of order
	both := ExpertFor([]model.Tag{model.TagFood, model.TagFitness})
	assert.Equal(t, "Alex Thompson", both.Name)

	food := ExpertFor([]model.Tag{model.TagFood, model.TagMood})
	assert.Equal(t, "Sarah Chen", food.Name)
	assert.Equal(t, "Dietary Specialist", food.Role)

	fallback := ExpertFor([]model.Tag{model.TagMood})
	assert.Equal(t, "Dr. Emma Parker", fallback.Name)
	assert.Equal(t, "Mental Health Specialist", fallback.Role)

	assert.Equal(t, "Dr. Emma Parker", ExpertFor(nil).Name)
}

func TestPickName_DrawsWithoutReplacement(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	used := map[string]bool{}

	seen := map[string]bool{}
	for i := 0; i < NamePoolSize(); i++ {
		name := PickName(rng, used)
		assert.False(t, seen[name], "name %q drawn twice", name)
		seen[name] = true
	}
	assert.Len(t, seen, NamePoolSize())
}

func TestPickName_SkipsPreseededNames(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	used := map[string]bool{"Alex Thompson": true, "Emma": true}

	for i := 0; i < NamePoolSize()-1; i++ {
		assert.NotEqual(t, "Emma", PickName(rng, used))
	}
}

func TestPickUserPersona(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	styles := map[string]bool{}

	for i := 0; i < 100; i++ {
		p := PickUserPersona(rng)
		assert.Contains(t, []string{"casual", "supportive", "humorous", "analytical"}, p.Style)
		assert.NotEmpty(t, p.SystemRole)
		styles[p.Style] = true
	}
	assert.Len(t, styles, 4)
}
