package dto

import (
	"time"

	"github.com/FitMunity/feed-service/internal/model"
	"github.com/google/uuid"
)

type LikeResponse struct {
	Liked bool  `json:"liked"`
	Likes int64 `json:"likes"`
}

type CalorieEntry struct {
	PostID    uuid.UUID `json:"post_id"`
	Content   string    `json:"content"`
	Calories  int       `json:"calories"`
	CreatedAt time.Time `json:"created_at"`
}

type CalorieSummaryResponse struct {
	TotalCalories int            `json:"total_calories"`
	Entries       []CalorieEntry `json:"entries"`
}

type ReplyResponse struct {
	UserComment *model.Comment `json:"user_comment"`
	AIComment   *model.Comment `json:"ai_comment"`
}
