package ai

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/FitMunity/feed-service/internal/model"
	"github.com/tmc/langchaingo/llms"
	"go.uber.org/zap"
)

const estimatorSystemRole = "You are a precise calorie calculator. For multiple food items, analyze each one and provide the total calories. Respond only with a number representing the total estimated calories. No explanations or additional text."

type Estimator struct {
	logger *zap.Logger
	llm    llms.Model
}

func NewEstimator(logger *zap.Logger, llm llms.Model) *Estimator {
	return &Estimator{
		logger: logger,
		llm:    llm,
	}
}

// Estimate maps a food post to an estimated calorie count. It never fails:
// transport errors, empty replies and non-numeric replies all degrade to 0.
func (e *Estimator) Estimate(ctx context.Context, post *model.Post) int {
	messages := []llms.MessageContent{
		llms.TextParts(llms.ChatMessageTypeSystem, estimatorSystemRole),
		e.buildMealTurn(post),
	}

	resp, err := e.llm.GenerateContent(
		ctx,
		messages,
		llms.WithMaxTokens(10),
		llms.WithTemperature(0.3),
	)
	if err != nil {
		e.logger.Sugar().Errorf("failed to estimate calories for post(%s): %s", post.ID.String(), err.Error())
		return 0
	}

	if len(resp.Choices) == 0 {
		e.logger.Sugar().Errorf("empty calorie estimation response for post(%s)", post.ID.String())
		return 0
	}

	calories, err := parseLeadingInt(resp.Choices[0].Content)
	if err != nil || calories < 0 {
		e.logger.Sugar().Errorf("non-numeric calorie estimation for post(%s): %q", post.ID.String(), resp.Choices[0].Content)
		return 0
	}

	return calories
}

// parseLeadingInt reads the integer at the start of the reply, tolerating
// trailing text like "450 kcal".
func parseLeadingInt(s string) (int, error) {
	s = strings.TrimSpace(s)

	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}

	return strconv.Atoi(s[:end])
}

// buildMealTurn embeds the text and/or every image reference in one turn so the
// model considers all items together as a single meal.
func (e *Estimator) buildMealTurn(post *model.Post) llms.MessageContent {
	if !post.HasImages() {
		return llms.TextParts(
			llms.ChatMessageTypeHuman,
			fmt.Sprintf("Calculate the total calories for this food: %q. Respond with only the number.", post.Content),
		)
	}

	subject := "this food"
	if len(post.MediaURLs) > 1 {
		subject = "all these food items"
	}
	prompt := fmt.Sprintf("Calculate the total calories for %s. Consider the items together as a meal.", subject)
	if post.Content != "" {
		prompt += fmt.Sprintf(" Context: %s.", post.Content)
	}
	prompt += " Respond with only the total number."

	parts := []llms.ContentPart{llms.TextPart(prompt)}
	for _, url := range post.MediaURLs {
		parts = append(parts, llms.ImageURLPart(url))
	}

	return llms.MessageContent{
		Role:  llms.ChatMessageTypeHuman,
		Parts: parts,
	}
}
