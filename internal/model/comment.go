package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type CommentKind string

const (
	CommentKindExpert CommentKind = "expert"
	CommentKindUser   CommentKind = "user"
)

func ParseCommentKind(s string) (CommentKind, error) {
	switch CommentKind(s) {
	case CommentKindExpert, CommentKindUser:
		return CommentKind(s), nil
	}
	return "", fmt.Errorf("unknown comment kind: %s", s)
}

// Persona is the voice that seeded a comment cluster. SystemRole is stored so
// reply continuations can replay the exact instruction the cluster was opened with.
type Persona struct {
	Name       string `json:"name"`
	Style      string `json:"style"`
	SystemRole string `json:"system_role"`
}

// CommentCluster is one persona's independent thread attached to a post.
// The first comment is always the persona's opening remark.
type CommentCluster struct {
	ID        uuid.UUID  `json:"id"`
	PostID    uuid.UUID  `json:"post_id"`
	Persona   Persona    `json:"persona"`
	Comments  []*Comment `json:"comments"`
	CreatedAt time.Time  `json:"created_at"`
}

type Comment struct {
	ID            uuid.UUID   `json:"id"`
	ClusterID     uuid.UUID   `json:"cluster_id"`
	Content       string      `json:"content"`
	Kind          CommentKind `json:"kind"`
	ExpertiseArea string      `json:"expertise_area,omitempty"`
	UserName      string      `json:"user_name"`
	Likes         int64       `json:"likes"`
	TargetLikes   int64       `json:"target_likes"`
	LikedBy       []string    `json:"liked_by"`
	IsUserReply   bool        `json:"is_user_reply"`
	CreatedAt     time.Time   `json:"created_at"`
}
