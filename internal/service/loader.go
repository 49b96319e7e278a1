package service

import (
	"context"

	"github.com/FitMunity/feed-service/internal/model"
	"github.com/FitMunity/feed-service/internal/repository"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// loadUserFeed assembles the nested post -> cluster -> comment structure from
// the three tables: posts newest first, clusters and comments oldest first.
func loadUserFeed(ctx context.Context, repo *repository.Repository, userID uuid.UUID) ([]*model.Post, error) {
	posts, err := repo.Postgres.Post.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(posts) == 0 {
		return []*model.Post{}, nil
	}

	postIDs := make([]uuid.UUID, 0, len(posts))
	for _, p := range posts {
		postIDs = append(postIDs, p.ID)
	}

	clusters, err := repo.Postgres.Cluster.FindByPostIDs(ctx, postIDs)
	if err != nil {
		return nil, err
	}

	clusterIDs := make([]uuid.UUID, 0, len(clusters))
	for _, c := range clusters {
		clusterIDs = append(clusterIDs, c.ID)
	}

	comments, err := repo.Postgres.Comment.FindByClusterIDs(ctx, clusterIDs)
	if err != nil {
		return nil, err
	}

	commentsByCluster := make(map[uuid.UUID][]*model.Comment)
	for _, c := range comments {
		commentsByCluster[c.ClusterID] = append(commentsByCluster[c.ClusterID], c)
	}

	clustersByPost := make(map[uuid.UUID][]*model.CommentCluster)
	for _, c := range clusters {
		c.Comments = commentsByCluster[c.ID]
		if c.Comments == nil {
			c.Comments = []*model.Comment{}
		}
		clustersByPost[c.PostID] = append(clustersByPost[c.PostID], c)
	}

	for _, p := range posts {
		p.CommentClusters = clustersByPost[p.ID]
		if p.CommentClusters == nil {
			p.CommentClusters = []*model.CommentCluster{}
		}
	}

	return posts, nil
}

// loadUserPost assembles one owner-scoped post with its full comment history.
func loadUserPost(ctx context.Context, repo *repository.Repository, userID uuid.UUID, postID uuid.UUID) (*model.Post, error) {
	post, err := repo.Postgres.Post.FindByID(ctx, postID, userID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, ErrPostNotFound
		}
		return nil, err
	}

	clusters, err := repo.Postgres.Cluster.FindByPostIDs(ctx, []uuid.UUID{post.ID})
	if err != nil {
		return nil, err
	}

	clusterIDs := make([]uuid.UUID, 0, len(clusters))
	for _, c := range clusters {
		clusterIDs = append(clusterIDs, c.ID)
	}

	comments, err := repo.Postgres.Comment.FindByClusterIDs(ctx, clusterIDs)
	if err != nil {
		return nil, err
	}

	commentsByCluster := make(map[uuid.UUID][]*model.Comment)
	for _, c := range comments {
		commentsByCluster[c.ClusterID] = append(commentsByCluster[c.ClusterID], c)
	}

	for _, c := range clusters {
		c.Comments = commentsByCluster[c.ID]
		if c.Comments == nil {
			c.Comments = []*model.Comment{}
		}
	}
	post.CommentClusters = clusters

	return post, nil
}
