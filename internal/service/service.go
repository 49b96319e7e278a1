package service

import (
	"context"
	"math/rand"
	"mime/multipart"

	"github.com/FitMunity/feed-service/internal/ai"
	"github.com/FitMunity/feed-service/internal/dto"
	"github.com/FitMunity/feed-service/internal/model"
	"github.com/FitMunity/feed-service/internal/repository"
	"github.com/FitMunity/feed-service/internal/storage"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Post interface {
	Create(ctx context.Context, userID uuid.UUID, in dto.CreatePostRequest) (*model.Post, error)
	FindUserFeed(ctx context.Context, userID uuid.UUID) ([]*model.Post, error)
	CalorieSummary(ctx context.Context, userID uuid.UUID) (*dto.CalorieSummaryResponse, error)
	ToggleLike(ctx context.Context, userID uuid.UUID, postID uuid.UUID) (*dto.LikeResponse, error)
	Delete(ctx context.Context, userID uuid.UUID, postID uuid.UUID) error
	UploadImage(ctx context.Context, file multipart.File, fileHeader *multipart.FileHeader) (string, error)
}

type Comment interface {
	Reply(ctx context.Context, userID uuid.UUID, in dto.ReplyRequest) (*dto.ReplyResponse, error)
	ToggleLike(ctx context.Context, userID uuid.UUID, postID uuid.UUID, commentID uuid.UUID) (*dto.LikeResponse, error)
	Delete(ctx context.Context, userID uuid.UUID, postID uuid.UUID, commentID uuid.UUID) error
}

type Service struct {
	Post
	Comment
}

func New(
	logger *zap.Logger,
	repo *repository.Repository,
	orch *ai.Orchestrator,
	estimator *ai.Estimator,
	store *storage.Client,
	rng *rand.Rand,
) *Service {
	return &Service{
		Post:    newPostService(logger, repo, orch, estimator, store, rng),
		Comment: newCommentService(logger, repo, orch, rng),
	}
}
