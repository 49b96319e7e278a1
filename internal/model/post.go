package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type Tag string

const (
	TagMood         Tag = "Mood"
	TagFood         Tag = "Food"
	TagFitness      Tag = "Fitness"
	TagAchievements Tag = "Achievements"
)

func ParseTag(s string) (Tag, error) {
	switch Tag(s) {
	case TagMood, TagFood, TagFitness, TagAchievements:
		return Tag(s), nil
	}
	return "", fmt.Errorf("unknown tag: %s", s)
}

type PostType string

const (
	PostTypeText  PostType = "text"
	PostTypeImage PostType = "image"
	PostTypeAudio PostType = "audio"
)

func ParsePostType(s string) (PostType, error) {
	switch PostType(s) {
	case PostTypeText, PostTypeImage, PostTypeAudio:
		return PostType(s), nil
	}
	return "", fmt.Errorf("unknown post type: %s", s)
}

type Post struct {
	ID              uuid.UUID         `json:"id"`
	UserID          uuid.UUID         `json:"user_id"`
	Content         string            `json:"content"`
	Type            PostType          `json:"type"`
	MediaURLs       []string          `json:"media_urls"`
	Tags            []Tag             `json:"tags"`
	Calories        int               `json:"calories"`
	WorkoutDetails  string            `json:"workout_details"`
	Likes           int64             `json:"likes"`
	TargetLikes     int64             `json:"target_likes"`
	LikedBy         []string          `json:"liked_by"`
	CommentClusters []*CommentCluster `json:"comment_clusters"`
	CreatedAt       time.Time         `json:"created_at"`
}

func (p *Post) HasTag(tag Tag) bool {
	for _, t := range p.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

func (p *Post) HasImages() bool {
	return p.Type == PostTypeImage && len(p.MediaURLs) > 0
}
