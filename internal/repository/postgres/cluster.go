package postgres

import (
	"context"
	"time"

	"github.com/FitMunity/feed-service/internal/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type clusterRepo struct {
	db *pgxpool.Pool
}

func newClusterRepo(db *pgxpool.Pool) Cluster {
	return &clusterRepo{
		db: db,
	}
}

func (r *clusterRepo) Create(ctx context.Context, cluster *model.CommentCluster) error {
	if cluster.CreatedAt.IsZero() {
		cluster.CreatedAt = time.Now()
	}

	_, err := r.db.Exec(
		ctx,
		`INSERT INTO comment_clusters(id, post_id, persona_name, persona_style, persona_system_role, created_at)
		VALUES($1, $2, $3, $4, $5, $6)`,
		cluster.ID,
		cluster.PostID,
		cluster.Persona.Name,
		cluster.Persona.Style,
		cluster.Persona.SystemRole,
		cluster.CreatedAt,
	)
	return err
}

func (r *clusterRepo) FindByPostIDs(ctx context.Context, postIDs []uuid.UUID) ([]*model.CommentCluster, error) {
	if len(postIDs) == 0 {
		return nil, nil
	}

	rows, err := r.db.Query(
		ctx,
		`SELECT id, post_id, persona_name, persona_style, persona_system_role, created_at
		FROM comment_clusters
		WHERE post_id = ANY($1)
		ORDER BY created_at ASC`,
		postIDs,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var clusters []*model.CommentCluster
	for rows.Next() {
		var cluster model.CommentCluster
		if err := rows.Scan(
			&cluster.ID,
			&cluster.PostID,
			&cluster.Persona.Name,
			&cluster.Persona.Style,
			&cluster.Persona.SystemRole,
			&cluster.CreatedAt,
		); err != nil {
			return nil, err
		}

		clusters = append(clusters, &cluster)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return clusters, nil
}

func (r *clusterRepo) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.Exec(ctx, "DELETE FROM comment_clusters WHERE id = $1", id)
	return err
}

func (r *clusterRepo) DeleteByPostID(ctx context.Context, postID uuid.UUID) error {
	_, err := r.db.Exec(ctx, "DELETE FROM comment_clusters WHERE post_id = $1", postID)
	return err
}
