package postgres

import (
	"context"

	"github.com/FitMunity/feed-service/internal/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Post interface {
	Create(ctx context.Context, post *model.Post) error
	FindByID(ctx context.Context, id uuid.UUID, userID uuid.UUID) (*model.Post, error)
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*model.Post, error)
	UpdateLikes(ctx context.Context, id uuid.UUID, userID uuid.UUID, likes int64, likedBy []string) error
	Delete(ctx context.Context, id uuid.UUID, userID uuid.UUID) error
}

type Cluster interface {
	Create(ctx context.Context, cluster *model.CommentCluster) error
	FindByPostIDs(ctx context.Context, postIDs []uuid.UUID) ([]*model.CommentCluster, error)
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByPostID(ctx context.Context, postID uuid.UUID) error
}

type Comment interface {
	Create(ctx context.Context, comment *model.Comment) error
	CreateMany(ctx context.Context, comments []*model.Comment) error
	FindByClusterIDs(ctx context.Context, clusterIDs []uuid.UUID) ([]*model.Comment, error)
	UpdateLikes(ctx context.Context, id uuid.UUID, likes int64) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByClusterID(ctx context.Context, clusterID uuid.UUID) error
	DeleteByPostID(ctx context.Context, postID uuid.UUID) error
}

type PostgresRepository struct {
	Post
	Cluster
	Comment
}

func New(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{
		Post:    newPostRepo(db),
		Cluster: newClusterRepo(db),
		Comment: newCommentRepo(db),
	}
}
