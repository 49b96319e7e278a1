package ai

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"github.com/FitMunity/feed-service/internal/model"
	"github.com/FitMunity/feed-service/internal/persona"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var ErrClusterNotFound = errors.New("comment cluster not found")

type Orchestrator struct {
	logger *zap.Logger
	gen    *Generator
	rng    *rand.Rand
}

func NewOrchestrator(logger *zap.Logger, gen *Generator, rng *rand.Rand) *Orchestrator {
	return &Orchestrator{
		logger: logger,
		gen:    gen,
		rng:    rng,
	}
}

// GenerateClusters produces the initial comment burst for a fresh post: exactly
// one expert cluster first, then 1-4 generic-persona clusters with distinct
// display names. Completions run strictly one after another; the first failure
// aborts the rest and nothing partial is returned.
func (o *Orchestrator) GenerateClusters(ctx context.Context, post *model.Post) ([]*model.CommentCluster, error) {
	expert := persona.ExpertFor(post.Tags)

	expertComment, err := o.gen.Generate(ctx, post, PersonaSpec{
		Name:         expert.Name,
		Role:         expert.Role,
		SystemRole:   expert.SystemRole,
		ImagePrompts: expert.ImagePrompts,
	}, true, nil, "")
	if err != nil {
		return nil, err
	}

	clusters := []*model.CommentCluster{
		o.newCluster(post.ID, model.Persona{
			Name:       expert.Name,
			Style:      persona.StyleProfessional,
			SystemRole: expert.SystemRole,
		}, expertComment),
	}

	numUserClusters := o.rng.Intn(4) + 1
	usedNames := map[string]bool{expert.Name: true}

	for i := 0; i < numUserClusters; i++ {
		name := persona.PickName(o.rng, usedNames)
		p := persona.PickUserPersona(o.rng)

		comment, err := o.gen.Generate(ctx, post, PersonaSpec{
			Name:       name,
			SystemRole: p.SystemRole,
		}, false, nil, "")
		if err != nil {
			return nil, err
		}

		clusters = append(clusters, o.newCluster(post.ID, model.Persona{
			Name:       name,
			Style:      p.Style,
			SystemRole: p.SystemRole,
		}, comment))
	}

	return clusters, nil
}

// ContinueThread generates the persona's follow-up to a human reply. The caller
// may have already appended the human's own comment to the cluster; a trailing
// copy of the reply is dropped from the replayed history so the live reply
// reaches the model exactly once.
func (o *Orchestrator) ContinueThread(ctx context.Context, post *model.Post, clusterID uuid.UUID, replyText string) (*model.Comment, error) {
	var cluster *model.CommentCluster
	for _, c := range post.CommentClusters {
		if c.ID == clusterID {
			cluster = c
			break
		}
	}
	if cluster == nil {
		return nil, ErrClusterNotFound
	}

	isExpert := cluster.Persona.Style == persona.StyleProfessional
	spec := PersonaSpec{
		Name:       cluster.Persona.Name,
		SystemRole: cluster.Persona.SystemRole,
	}
	if isExpert && len(cluster.Comments) > 0 {
		spec.Role = cluster.Comments[0].ExpertiseArea
	}

	prior := cluster.Comments
	if n := len(prior); n > 0 && prior[n-1].IsUserReply && prior[n-1].Content == replyText {
		prior = prior[:n-1]
	}

	comment, err := o.gen.Generate(ctx, post, spec, isExpert, prior, replyText)
	if err != nil {
		return nil, err
	}

	comment.ClusterID = cluster.ID
	return comment, nil
}

func (o *Orchestrator) newCluster(postID uuid.UUID, p model.Persona, opening *model.Comment) *model.CommentCluster {
	cluster := &model.CommentCluster{
		ID:        uuid.New(),
		PostID:    postID,
		Persona:   p,
		CreatedAt: time.Now(),
	}
	opening.ClusterID = cluster.ID
	cluster.Comments = []*model.Comment{opening}
	return cluster
}
