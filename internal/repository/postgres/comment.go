package postgres

import (
	"context"
	"time"

	"github.com/FitMunity/feed-service/internal/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type commentRepo struct {
	db *pgxpool.Pool
}

func newCommentRepo(db *pgxpool.Pool) Comment {
	return &commentRepo{
		db: db,
	}
}

func (r *commentRepo) Create(ctx context.Context, comment *model.Comment) error {
	if comment.CreatedAt.IsZero() {
		comment.CreatedAt = time.Now()
	}

	_, err := r.db.Exec(
		ctx,
		`INSERT INTO comments(id, cluster_id, content, kind, expertise_area, user_name, likes, target_likes, is_user_reply, created_at)
		VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		comment.ID,
		comment.ClusterID,
		comment.Content,
		string(comment.Kind),
		comment.ExpertiseArea,
		comment.UserName,
		comment.Likes,
		comment.TargetLikes,
		comment.IsUserReply,
		comment.CreatedAt,
	)
	return err
}

func (r *commentRepo) CreateMany(ctx context.Context, comments []*model.Comment) error {
	for _, comment := range comments {
		if err := r.Create(ctx, comment); err != nil {
			return err
		}
	}
	return nil
}

func (r *commentRepo) FindByClusterIDs(ctx context.Context, clusterIDs []uuid.UUID) ([]*model.Comment, error) {
	if len(clusterIDs) == 0 {
		return nil, nil
	}

	rows, err := r.db.Query(
		ctx,
		`SELECT id, cluster_id, content, kind, expertise_area, user_name, likes, target_likes, is_user_reply, created_at
		FROM comments
		WHERE cluster_id = ANY($1)
		ORDER BY created_at ASC`,
		clusterIDs,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var comments []*model.Comment
	for rows.Next() {
		var (
			comment model.Comment
			kind    string
		)
		if err := rows.Scan(
			&comment.ID,
			&comment.ClusterID,
			&comment.Content,
			&kind,
			&comment.ExpertiseArea,
			&comment.UserName,
			&comment.Likes,
			&comment.TargetLikes,
			&comment.IsUserReply,
			&comment.CreatedAt,
		); err != nil {
			return nil, err
		}

		comment.Kind = model.CommentKind(kind)
		comment.LikedBy = []string{}

		comments = append(comments, &comment)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return comments, nil
}

func (r *commentRepo) UpdateLikes(ctx context.Context, id uuid.UUID, likes int64) error {
	_, err := r.db.Exec(ctx, "UPDATE comments SET likes = $1 WHERE id = $2", likes, id)
	return err
}

func (r *commentRepo) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.Exec(ctx, "DELETE FROM comments WHERE id = $1", id)
	return err
}

func (r *commentRepo) DeleteByClusterID(ctx context.Context, clusterID uuid.UUID) error {
	_, err := r.db.Exec(ctx, "DELETE FROM comments WHERE cluster_id = $1", clusterID)
	return err
}

func (r *commentRepo) DeleteByPostID(ctx context.Context, postID uuid.UUID) error {
	_, err := r.db.Exec(
		ctx,
		"DELETE FROM comments WHERE cluster_id IN (SELECT id FROM comment_clusters WHERE post_id = $1)",
		postID,
	)
	return err
}
