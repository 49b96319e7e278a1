package ai

import (
	"context"
	"math/rand"
	"testing"

	"github.com/FitMunity/feed-service/internal/model"
	"github.com/FitMunity/feed-service/internal/persona"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestOrchestrator(llm *fakeModel, seed int64) *Orchestrator {
	rng := rand.New(rand.NewSource(seed))
	gen := NewGenerator(zap.NewNop(), llm, rng)
	return NewOrchestrator(zap.NewNop(), gen, rng)
}

func TestOrchestrator_FitnessPostGetsFitnessExpertFirst(t *testing.T) {
	llm := &fakeModel{responses: []string{"Nice work!"}}
	orch := newTestOrchestrator(llm, 1)

	post := textPost() // tagged Fitness
	clusters, err := orch.GenerateClusters(context.Background(), post)
	require.NoError(t, err)
	require.NotEmpty(t, clusters)

	expert := clusters[0]
	assert.Equal(t, "Alex Thompson", expert.Persona.Name)
	assert.Equal(t, persona.StyleProfessional, expert.Persona.Style)
	require.Len(t, expert.Comments, 1)
	assert.Equal(t, model.CommentKindExpert, expert.Comments[0].Kind)
	assert.Equal(t, "Fitness Trainer", expert.Comments[0].ExpertiseArea)
}

func TestOrchestrator_ClusterCountAndNameUniqueness(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		llm := &fakeModel{responses: []string{"Sounds delicious!"}}
		orch := newTestOrchestrator(llm, seed)

		post := imagePost() // tagged Food
		clusters, err := orch.GenerateClusters(context.Background(), post)
		require.NoError(t, err)

		// exactly one expert plus 1-4 generic clusters
		require.GreaterOrEqual(t, len(clusters), 2, "seed %d", seed)
		require.LessOrEqual(t, len(clusters), 5, "seed %d", seed)

		assert.Equal(t, "Sarah Chen", clusters[0].Persona.Name)

		seen := map[string]bool{}
		for _, cluster := range clusters {
			assert.False(t, seen[cluster.Persona.Name], "duplicate persona name %q (seed %d)", cluster.Persona.Name, seed)
			seen[cluster.Persona.Name] = true

			require.Len(t, cluster.Comments, 1)
			assert.Equal(t, cluster.ID, cluster.Comments[0].ClusterID)
			assert.Equal(t, post.ID, cluster.PostID)
			assert.Equal(t, cluster.Persona.Name, cluster.Comments[0].UserName)
		}

		for _, cluster := range clusters[1:] {
			assert.NotEqual(t, persona.StyleProfessional, cluster.Persona.Style)
			assert.Equal(t, model.CommentKindUser, cluster.Comments[0].Kind)
		}
	}
}

func TestOrchestrator_MoodPostDefaultsToMentalHealthExpert(t *testing.T) {
	llm := &fakeModel{responses: []string{"That sounds like a lovely day."}}
	orch := newTestOrchestrator(llm, 3)

	post := textPost()
	post.Tags = []model.Tag{model.TagMood}

	clusters, err := orch.GenerateClusters(context.Background(), post)
	require.NoError(t, err)
	assert.Equal(t, "Dr. Emma Parker", clusters[0].Persona.Name)
}

func TestOrchestrator_GenerationFailureAbortsAll(t *testing.T) {
	llm := &fakeModel{responses: []string{"First reply works."}, failOn: 2}
	orch := newTestOrchestrator(llm, 1)

	clusters, err := orch.GenerateClusters(context.Background(), textPost())
	assert.ErrorIs(t, err, errFakeModel)
	assert.Nil(t, clusters)
}

func TestOrchestrator_ContinueThread(t *testing.T) {
	llm := &fakeModel{responses: []string{"Happy to help, try foam rolling."}}
	orch := newTestOrchestrator(llm, 1)

	post := textPost()
	clusterID := uuid.New()
	post.CommentClusters = []*model.CommentCluster{
		{
			ID:     clusterID,
			PostID: post.ID,
			Persona: model.Persona{
				Name:       "Alex Thompson",
				Style:      persona.StyleProfessional,
				SystemRole: "You are a certified fitness trainer.",
			},
			Comments: []*model.Comment{
				{ID: uuid.New(), ClusterID: clusterID, Content: "Great job on the 10k!", Kind: model.CommentKindExpert, ExpertiseArea: "Fitness Trainer"},
				{ID: uuid.New(), ClusterID: clusterID, Content: "Thanks for the tip!", Kind: model.CommentKindUser, IsUserReply: true},
			},
		},
	}

	comment, err := orch.ContinueThread(context.Background(), post, clusterID, "Thanks for the tip!")
	require.NoError(t, err)

	assert.Equal(t, clusterID, comment.ClusterID)
	assert.Equal(t, "Alex Thompson", comment.UserName)
	assert.Equal(t, model.CommentKindExpert, comment.Kind)
	assert.Equal(t, "Fitness Trainer", comment.ExpertiseArea)
	assert.NotEmpty(t, comment.Content)
	assert.False(t, comment.IsUserReply)

	// system + opening + 1 prior + live reply; the appended copy of the reply
	// is dropped from the replay
	require.Len(t, llm.calls, 1)
	assert.Len(t, llm.calls[0], 4)
}

func TestOrchestrator_ContinueThreadSendsReplyOnce(t *testing.T) {
	llm := &fakeModel{responses: []string{"Glad it helped!"}}
	orch := newTestOrchestrator(llm, 1)

	post := textPost()
	clusterID := uuid.New()
	cluster := &model.CommentCluster{
		ID:     clusterID,
		PostID: post.ID,
		Persona: model.Persona{
			Name:       "Emma",
			Style:      "casual",
			SystemRole: "You are a friendly, conversational user who shares personal experiences and opinions casually.",
		},
		Comments: []*model.Comment{
			{ID: uuid.New(), ClusterID: clusterID, Content: "Love this!", Kind: model.CommentKindUser},
		},
	}
	post.CommentClusters = []*model.CommentCluster{cluster}

	reply := "Thanks, it took months of training!"
	cluster.Comments = append(cluster.Comments, &model.Comment{
		ID:          uuid.New(),
		ClusterID:   clusterID,
		Content:     reply,
		Kind:        model.CommentKindUser,
		IsUserReply: true,
	})

	_, err := orch.ContinueThread(context.Background(), post, clusterID, reply)
	require.NoError(t, err)

	occurrences := 0
	for _, msg := range llm.calls[0] {
		if textOf(msg) == reply {
			occurrences++
		}
	}
	assert.Equal(t, 1, occurrences)
}

func TestOrchestrator_ContinueThreadUnknownCluster(t *testing.T) {
	llm := &fakeModel{responses: []string{"ok"}}
	orch := newTestOrchestrator(llm, 1)

	post := textPost()
	_, err := orch.ContinueThread(context.Background(), post, uuid.New(), "hello?")
	assert.ErrorIs(t, err, ErrClusterNotFound)
}
