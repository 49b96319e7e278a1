package dto

import "github.com/google/uuid"

type ReplyRequest struct {
	PostID    uuid.UUID `json:"post_id" binding:"required"`
	ClusterID uuid.UUID `json:"cluster_id" binding:"required"`
	Content   string    `json:"content" binding:"required,min=1"`
}
