package service

import (
	"context"
	"math/rand"
	"mime/multipart"
	"time"

	"github.com/FitMunity/feed-service/internal/ai"
	"github.com/FitMunity/feed-service/internal/dto"
	"github.com/FitMunity/feed-service/internal/feed"
	"github.com/FitMunity/feed-service/internal/model"
	"github.com/FitMunity/feed-service/internal/repository"
	"github.com/FitMunity/feed-service/internal/repository/redisrepo"
	"github.com/FitMunity/feed-service/internal/storage"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type postService struct {
	logger    *zap.Logger
	repo      *repository.Repository
	orch      *ai.Orchestrator
	estimator *ai.Estimator
	store     *storage.Client
	rng       *rand.Rand
}

func newPostService(
	logger *zap.Logger,
	repo *repository.Repository,
	orch *ai.Orchestrator,
	estimator *ai.Estimator,
	store *storage.Client,
	rng *rand.Rand,
) Post {
	return &postService{
		logger:    logger,
		repo:      repo,
		orch:      orch,
		estimator: estimator,
		store:     store,
		rng:       rng,
	}
}

// Create persists the post first, then generates and persists its comment
// clusters. The post row always lands before any cluster row, and a cluster
// row before its comments. A generation failure leaves the post standing
// without AI comments.
func (s *postService) Create(ctx context.Context, userID uuid.UUID, in dto.CreatePostRequest) (*model.Post, error) {
	postType, err := model.ParsePostType(in.Type)
	if err != nil {
		return nil, ErrInvalidPostType
	}

	var tags []model.Tag
	for _, t := range in.Tags {
		tag, err := model.ParseTag(t)
		if err != nil {
			return nil, ErrInvalidTag
		}
		tags = append(tags, tag)
	}

	if in.Content == "" && len(in.MediaURLs) == 0 {
		return nil, ErrEmptyPost
	}

	post := &model.Post{
		ID:              uuid.New(),
		UserID:          userID,
		Content:         in.Content,
		Type:            postType,
		MediaURLs:       in.MediaURLs,
		Tags:            tags,
		WorkoutDetails:  in.WorkoutDetails,
		Likes:           0,
		TargetLikes:     int64(s.rng.Intn(30)) + 1,
		LikedBy:         []string{},
		CommentClusters: []*model.CommentCluster{},
		CreatedAt:       time.Now(),
	}
	if post.MediaURLs == nil {
		post.MediaURLs = []string{}
	}

	if post.HasTag(model.TagFood) {
		post.Calories = s.estimator.Estimate(ctx, post)
	}

	if err := s.repo.Postgres.Post.Create(ctx, post); err != nil {
		s.logger.Sugar().Errorf("failed to create user(%s) post: %s", userID.String(), err.Error())
		return nil, ErrInternal
	}

	clusters, err := s.orch.GenerateClusters(ctx, post)
	if err != nil {
		s.logger.Sugar().Errorf("failed to generate comments for post(%s): %s", post.ID.String(), err.Error())
		s.invalidateFeed(ctx, userID)
		return post, nil
	}

	for _, cluster := range clusters {
		if err := s.repo.Postgres.Cluster.Create(ctx, cluster); err != nil {
			s.logger.Sugar().Errorf("failed to save cluster(%s) for post(%s): %s", cluster.ID.String(), post.ID.String(), err.Error())
			continue
		}
		if err := s.repo.Postgres.Comment.CreateMany(ctx, cluster.Comments); err != nil {
			s.logger.Sugar().Errorf("failed to save comments for cluster(%s): %s", cluster.ID.String(), err.Error())
		}
	}

	feed.AppendClusters(post, clusters...)
	s.invalidateFeed(ctx, userID)

	return post, nil
}

func (s *postService) FindUserFeed(ctx context.Context, userID uuid.UUID) ([]*model.Post, error) {
	cached, err := redisrepo.GetMany[model.Post](s.repo.Redis.Default, ctx, redisrepo.UserFeedKey(userID.String()))
	if err == nil {
		return cached, nil
	}
	if err != redis.Nil {
		s.logger.Sugar().Errorf("failed to get user(%s) feed from redis: %s", userID.String(), err.Error())
	}

	posts, err := loadUserFeed(ctx, s.repo, userID)
	if err != nil {
		s.logger.Sugar().Errorf("failed to load user(%s) feed from postgres: %s", userID.String(), err.Error())
		return nil, ErrInternal
	}

	if err := s.repo.Redis.Default.SetJSON(ctx, redisrepo.UserFeedKey(userID.String()), posts, time.Hour); err != nil {
		s.logger.Sugar().Errorf("failed to set user(%s) feed in redis: %s", userID.String(), err.Error())
	}

	return posts, nil
}

// CalorieSummary aggregates the caller's Food posts with a calorie estimate,
// newest first, reusing the cached feed.
func (s *postService) CalorieSummary(ctx context.Context, userID uuid.UUID) (*dto.CalorieSummaryResponse, error) {
	posts, err := s.FindUserFeed(ctx, userID)
	if err != nil {
		return nil, err
	}

	total, foodPosts := feed.FoodCalories(posts)

	entries := make([]dto.CalorieEntry, 0, len(foodPosts))
	for _, p := range foodPosts {
		entries = append(entries, dto.CalorieEntry{
			PostID:    p.ID,
			Content:   p.Content,
			Calories:  p.Calories,
			CreatedAt: p.CreatedAt,
		})
	}

	return &dto.CalorieSummaryResponse{
		TotalCalories: total,
		Entries:       entries,
	}, nil
}

func (s *postService) ToggleLike(ctx context.Context, userID uuid.UUID, postID uuid.UUID) (*dto.LikeResponse, error) {
	post, err := s.repo.Postgres.Post.FindByID(ctx, postID, userID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, ErrPostNotFound
		}
		s.logger.Sugar().Errorf("failed to find post(%s): %s", postID.String(), err.Error())
		return nil, ErrInternal
	}

	liked := feed.TogglePostLike(post, userID.String())

	if err := s.repo.Postgres.Post.UpdateLikes(ctx, post.ID, userID, post.Likes, post.LikedBy); err != nil {
		s.logger.Sugar().Errorf("failed to update likes for post(%s): %s", post.ID.String(), err.Error())
		return nil, ErrInternal
	}
	s.invalidateFeed(ctx, userID)

	return &dto.LikeResponse{Liked: liked, Likes: post.Likes}, nil
}

// Delete removes the post, its clusters and comments, and any uploaded media.
// Media cleanup failures are logged but do not block row deletion.
func (s *postService) Delete(ctx context.Context, userID uuid.UUID, postID uuid.UUID) error {
	post, err := s.repo.Postgres.Post.FindByID(ctx, postID, userID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return ErrPostNotFound
		}
		s.logger.Sugar().Errorf("failed to find post(%s): %s", postID.String(), err.Error())
		return ErrInternal
	}

	for _, url := range post.MediaURLs {
		if err := s.store.Delete(ctx, url); err != nil {
			s.logger.Sugar().Errorf("failed to delete image %s for post(%s): %s", url, post.ID.String(), err.Error())
		}
	}

	if err := s.repo.Postgres.Comment.DeleteByPostID(ctx, post.ID); err != nil {
		s.logger.Sugar().Errorf("failed to delete comments for post(%s): %s", post.ID.String(), err.Error())
		return ErrInternal
	}
	if err := s.repo.Postgres.Cluster.DeleteByPostID(ctx, post.ID); err != nil {
		s.logger.Sugar().Errorf("failed to delete clusters for post(%s): %s", post.ID.String(), err.Error())
		return ErrInternal
	}
	if err := s.repo.Postgres.Post.Delete(ctx, post.ID, userID); err != nil {
		s.logger.Sugar().Errorf("failed to delete post(%s): %s", post.ID.String(), err.Error())
		return ErrInternal
	}

	s.invalidateFeed(ctx, userID)
	return nil
}

func (s *postService) UploadImage(ctx context.Context, file multipart.File, fileHeader *multipart.FileHeader) (string, error) {
	url, err := s.store.Upload(ctx, file, fileHeader)
	if err != nil {
		return "", ErrInternal
	}
	return url, nil
}

func (s *postService) invalidateFeed(ctx context.Context, userID uuid.UUID) {
	if err := s.repo.Redis.Default.Del(ctx, redisrepo.UserFeedKey(userID.String())).Err(); err != nil {
		s.logger.Sugar().Errorf("failed to invalidate feed cache for user(%s): %s", userID.String(), err.Error())
	}
}
