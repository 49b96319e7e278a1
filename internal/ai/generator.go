package ai

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/FitMunity/feed-service/internal/model"
	"github.com/google/uuid"
	"github.com/tmc/langchaingo/llms"
	"go.uber.org/zap"
)

var ErrEmptyCompletion = errors.New("no response received from completion service")

const standingDirective = "IMPORTANT: Always respond directly to the most recent message. Never repeat previous responses."

// PersonaSpec is everything the generator needs to speak as one persona.
// Role is the expertise label and is only set for experts.
type PersonaSpec struct {
	Name         string
	Role         string
	SystemRole   string
	ImagePrompts []string
}

type Generator struct {
	logger *zap.Logger
	llm    llms.Model
	rng    *rand.Rand
}

func NewGenerator(logger *zap.Logger, llm llms.Model, rng *rand.Rand) *Generator {
	return &Generator{
		logger: logger,
		llm:    llm,
		rng:    rng,
	}
}

// Generate requests one completion as the given persona and wraps it in a new
// comment. prior replays the cluster's history; latestReply, when non-empty, is
// the human turn the persona reacts to. Errors propagate unmodified.
func (g *Generator) Generate(
	ctx context.Context,
	post *model.Post,
	spec PersonaSpec,
	isExpert bool,
	prior []*model.Comment,
	latestReply string,
) (*model.Comment, error) {
	messages := []llms.MessageContent{
		llms.TextParts(llms.ChatMessageTypeSystem, fmt.Sprintf("%s. %s", spec.SystemRole, standingDirective)),
		g.buildOpeningTurn(post, spec, latestReply),
	}

	for _, comment := range prior {
		role := llms.ChatMessageTypeAI
		if comment.IsUserReply {
			role = llms.ChatMessageTypeHuman
		}
		messages = append(messages, llms.TextParts(role, comment.Content))
	}

	// for image posts the reply is already folded into the single multimodal
	// opening turn
	if latestReply != "" && !post.HasImages() {
		messages = append(messages, llms.TextParts(llms.ChatMessageTypeHuman, latestReply))
	}

	resp, err := g.llm.GenerateContent(
		ctx,
		messages,
		llms.WithMaxTokens(300),
		llms.WithTemperature(0.7),
		llms.WithPresencePenalty(0.6),
		llms.WithFrequencyPenalty(0.6),
	)
	if err != nil {
		g.logger.Sugar().Errorf("failed to generate comment as %s on post(%s): %s", spec.Name, post.ID.String(), err.Error())
		return nil, err
	}

	content := ""
	if len(resp.Choices) > 0 {
		content = strings.TrimSpace(resp.Choices[0].Content)
	}
	if content == "" {
		return nil, ErrEmptyCompletion
	}

	comment := &model.Comment{
		ID:          uuid.New(),
		Content:     content,
		Kind:        model.CommentKindUser,
		UserName:    spec.Name,
		Likes:       0,
		TargetLikes: int64(g.rng.Intn(30)) + 1,
		LikedBy:     []string{},
		CreatedAt:   time.Now(),
	}
	if isExpert {
		comment.Kind = model.CommentKindExpert
		comment.ExpertiseArea = spec.Role
	}

	return comment, nil
}

func (g *Generator) buildOpeningTurn(post *model.Post, spec PersonaSpec, latestReply string) llms.MessageContent {
	if !post.HasImages() {
		return llms.TextParts(llms.ChatMessageTypeHuman, fmt.Sprintf("Initial context: %q", post.Content))
	}

	var prompt string
	switch {
	case len(spec.ImagePrompts) > 0 && latestReply == "":
		prompt = spec.ImagePrompts[g.rng.Intn(len(spec.ImagePrompts))]
	case latestReply != "":
		prompt = fmt.Sprintf("Respond to: %q while considering these images. Keep your response focused and engaging.", latestReply)
	case post.Content != "":
		prompt = fmt.Sprintf("Please analyze these images together and respond to: %q. Keep your response focused and engaging (max 2-3 sentences).", post.Content)
	default:
		prompt = "Please analyze these images together and provide your thoughts or feedback. Keep your response focused and engaging (max 2-3 sentences)."
	}

	parts := []llms.ContentPart{llms.TextPart(prompt)}
	for _, url := range post.MediaURLs {
		parts = append(parts, llms.ImageURLPart(url))
	}

	return llms.MessageContent{
		Role:  llms.ChatMessageTypeHuman,
		Parts: parts,
	}
}
