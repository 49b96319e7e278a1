package service

import (
	"context"
	"math/rand"
	"time"

	"github.com/FitMunity/feed-service/internal/ai"
	"github.com/FitMunity/feed-service/internal/dto"
	"github.com/FitMunity/feed-service/internal/feed"
	"github.com/FitMunity/feed-service/internal/model"
	"github.com/FitMunity/feed-service/internal/repository"
	"github.com/FitMunity/feed-service/internal/repository/redisrepo"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type commentService struct {
	logger *zap.Logger
	repo   *repository.Repository
	orch   *ai.Orchestrator
	rng    *rand.Rand
}

func newCommentService(logger *zap.Logger, repo *repository.Repository, orch *ai.Orchestrator, rng *rand.Rand) Comment {
	return &commentService{
		logger: logger,
		repo:   repo,
		orch:   orch,
		rng:    rng,
	}
}

// Reply appends the human's comment to the target cluster, persists it, then
// asks the cluster's persona for a follow-up. The reply itself travels as the
// live turn of the continuation, not as part of the replayed history. A failed
// follow-up leaves the human comment in place and is reported as an absent AI
// comment, not an error.
func (s *commentService) Reply(ctx context.Context, userID uuid.UUID, in dto.ReplyRequest) (*dto.ReplyResponse, error) {
	post, err := loadUserPost(ctx, s.repo, userID, in.PostID)
	if err != nil {
		if err == ErrPostNotFound {
			return nil, err
		}
		s.logger.Sugar().Errorf("failed to load post(%s): %s", in.PostID.String(), err.Error())
		return nil, ErrInternal
	}

	cluster := feed.FindCluster(post, in.ClusterID)
	if cluster == nil {
		return nil, ErrClusterNotFound
	}

	userComment := &model.Comment{
		ID:          uuid.New(),
		ClusterID:   cluster.ID,
		Content:     in.Content,
		Kind:        model.CommentKindUser,
		Likes:       0,
		TargetLikes: int64(s.rng.Intn(30)) + 1,
		LikedBy:     []string{},
		IsUserReply: true,
		CreatedAt:   time.Now(),
	}

	if err := s.repo.Postgres.Comment.Create(ctx, userComment); err != nil {
		s.logger.Sugar().Errorf("failed to save user reply to cluster(%s): %s", cluster.ID.String(), err.Error())
		return nil, ErrInternal
	}
	feed.AppendComment(cluster, userComment)

	aiComment, err := s.orch.ContinueThread(ctx, post, cluster.ID, in.Content)
	if err != nil {
		s.logger.Sugar().Errorf("failed to generate AI reply in cluster(%s): %s", cluster.ID.String(), err.Error())
		s.invalidateFeed(ctx, userID)
		return &dto.ReplyResponse{UserComment: userComment}, nil
	}

	if err := s.repo.Postgres.Comment.Create(ctx, aiComment); err != nil {
		s.logger.Sugar().Errorf("failed to save AI reply to cluster(%s): %s", cluster.ID.String(), err.Error())
	}
	feed.AppendComment(cluster, aiComment)

	s.invalidateFeed(ctx, userID)

	return &dto.ReplyResponse{UserComment: userComment, AIComment: aiComment}, nil
}

func (s *commentService) ToggleLike(ctx context.Context, userID uuid.UUID, postID uuid.UUID, commentID uuid.UUID) (*dto.LikeResponse, error) {
	post, err := loadUserPost(ctx, s.repo, userID, postID)
	if err != nil {
		if err == ErrPostNotFound {
			return nil, err
		}
		s.logger.Sugar().Errorf("failed to load post(%s): %s", postID.String(), err.Error())
		return nil, ErrInternal
	}

	comment := findComment(post, commentID)
	if comment == nil {
		return nil, ErrCommentNotFound
	}

	liked := feed.ToggleCommentLike(comment, userID.String())

	if err := s.repo.Postgres.Comment.UpdateLikes(ctx, comment.ID, comment.Likes); err != nil {
		s.logger.Sugar().Errorf("failed to update likes for comment(%s): %s", comment.ID.String(), err.Error())
		return nil, ErrInternal
	}
	s.invalidateFeed(ctx, userID)

	return &dto.LikeResponse{Liked: liked, Likes: comment.Likes}, nil
}

// Delete removes a single comment, or the whole cluster when the target is the
// cluster's opening comment.
func (s *commentService) Delete(ctx context.Context, userID uuid.UUID, postID uuid.UUID, commentID uuid.UUID) error {
	post, err := loadUserPost(ctx, s.repo, userID, postID)
	if err != nil {
		if err == ErrPostNotFound {
			return err
		}
		s.logger.Sugar().Errorf("failed to load post(%s): %s", postID.String(), err.Error())
		return ErrInternal
	}

	removedCluster, found := feed.RemoveComment(post, commentID)
	if !found {
		return ErrCommentNotFound
	}

	if removedCluster != nil {
		if err := s.repo.Postgres.Comment.DeleteByClusterID(ctx, removedCluster.ID); err != nil {
			s.logger.Sugar().Errorf("failed to delete comments of cluster(%s): %s", removedCluster.ID.String(), err.Error())
			return ErrInternal
		}
		if err := s.repo.Postgres.Cluster.Delete(ctx, removedCluster.ID); err != nil {
			s.logger.Sugar().Errorf("failed to delete cluster(%s): %s", removedCluster.ID.String(), err.Error())
			return ErrInternal
		}
	} else {
		if err := s.repo.Postgres.Comment.Delete(ctx, commentID); err != nil {
			s.logger.Sugar().Errorf("failed to delete comment(%s): %s", commentID.String(), err.Error())
			return ErrInternal
		}
	}

	s.invalidateFeed(ctx, userID)
	return nil
}

func (s *commentService) invalidateFeed(ctx context.Context, userID uuid.UUID) {
	if err := s.repo.Redis.Default.Del(ctx, redisrepo.UserFeedKey(userID.String())).Err(); err != nil {
		s.logger.Sugar().Errorf("failed to invalidate feed cache for user(%s): %s", userID.String(), err.Error())
	}
}

func findComment(post *model.Post, commentID uuid.UUID) *model.Comment {
	for _, cluster := range post.CommentClusters {
		for _, comment := range cluster.Comments {
			if comment.ID == commentID {
				return comment
			}
		}
	}
	return nil
}
