package postgres

import (
	"context"
	"time"

	"github.com/FitMunity/feed-service/internal/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postRepo struct {
	db *pgxpool.Pool
}

func newPostRepo(db *pgxpool.Pool) Post {
	return &postRepo{
		db: db,
	}
}

func (r *postRepo) Create(ctx context.Context, post *model.Post) error {
	if post.CreatedAt.IsZero() {
		post.CreatedAt = time.Now()
	}

	tags := make([]string, 0, len(post.Tags))
	for _, t := range post.Tags {
		tags = append(tags, string(t))
	}

	_, err := r.db.Exec(
		ctx,
		`INSERT INTO posts(id, user_id, content, type, media_urls, tags, calories, workout_details, likes, liked_by, target_likes, created_at)
		VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		post.ID,
		post.UserID,
		post.Content,
		string(post.Type),
		post.MediaURLs,
		tags,
		post.Calories,
		post.WorkoutDetails,
		post.Likes,
		post.LikedBy,
		post.TargetLikes,
		post.CreatedAt,
	)
	return err
}

func (r *postRepo) FindByID(ctx context.Context, id uuid.UUID, userID uuid.UUID) (*model.Post, error) {
	row := r.db.QueryRow(
		ctx,
		`SELECT id, user_id, content, type, media_urls, tags, calories, workout_details, likes, liked_by, target_likes, created_at
		FROM posts
		WHERE id = $1 AND user_id = $2`,
		id,
		userID,
	)

	return scanPost(row)
}

func (r *postRepo) FindByUser(ctx context.Context, userID uuid.UUID) ([]*model.Post, error) {
	rows, err := r.db.Query(
		ctx,
		`SELECT id, user_id, content, type, media_urls, tags, calories, workout_details, likes, liked_by, target_likes, created_at
		FROM posts
		WHERE user_id = $1
		ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []*model.Post
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return posts, nil
}

func (r *postRepo) UpdateLikes(ctx context.Context, id uuid.UUID, userID uuid.UUID, likes int64, likedBy []string) error {
	_, err := r.db.Exec(
		ctx,
		"UPDATE posts SET likes = $1, liked_by = $2 WHERE id = $3 AND user_id = $4",
		likes,
		likedBy,
		id,
		userID,
	)
	return err
}

func (r *postRepo) Delete(ctx context.Context, id uuid.UUID, userID uuid.UUID) error {
	_, err := r.db.Exec(ctx, "DELETE FROM posts WHERE id = $1 AND user_id = $2", id, userID)
	return err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPost(row rowScanner) (*model.Post, error) {
	var (
		post     model.Post
		postType string
		tags     []string
	)
	if err := row.Scan(
		&post.ID,
		&post.UserID,
		&post.Content,
		&postType,
		&post.MediaURLs,
		&tags,
		&post.Calories,
		&post.WorkoutDetails,
		&post.Likes,
		&post.LikedBy,
		&post.TargetLikes,
		&post.CreatedAt,
	); err != nil {
		return nil, err
	}

	post.Type = model.PostType(postType)
	for _, t := range tags {
		post.Tags = append(post.Tags, model.Tag(t))
	}
	if post.MediaURLs == nil {
		post.MediaURLs = []string{}
	}
	if post.LikedBy == nil {
		post.LikedBy = []string{}
	}

	return &post, nil
}
