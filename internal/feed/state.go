// Package feed holds the pure in-memory operations over the nested
// post -> cluster -> comment structure. Every function here is synchronous and
// total; persisting the result is the caller's explicit follow-up step.
package feed

import (
	"github.com/FitMunity/feed-service/internal/model"
	"github.com/google/uuid"
)

func FindPost(posts []*model.Post, id uuid.UUID) *model.Post {
	for _, p := range posts {
		if p.ID == id {
			return p
		}
	}
	return nil
}

func RemovePost(posts []*model.Post, id uuid.UUID) []*model.Post {
	out := posts[:0]
	for _, p := range posts {
		if p.ID != id {
			out = append(out, p)
		}
	}
	return out
}

func FindCluster(post *model.Post, clusterID uuid.UUID) *model.CommentCluster {
	for _, c := range post.CommentClusters {
		if c.ID == clusterID {
			return c
		}
	}
	return nil
}

func AppendClusters(post *model.Post, clusters ...*model.CommentCluster) {
	post.CommentClusters = append(post.CommentClusters, clusters...)
}

func AppendComment(cluster *model.CommentCluster, comment *model.Comment) {
	cluster.Comments = append(cluster.Comments, comment)
}

// RemoveComment deletes a comment from whichever cluster owns it. Deleting a
// cluster's first comment removes the whole cluster. The removed cluster is
// returned in that case so callers can cascade the store deletion.
func RemoveComment(post *model.Post, commentID uuid.UUID) (removedCluster *model.CommentCluster, found bool) {
	for i, cluster := range post.CommentClusters {
		for j, comment := range cluster.Comments {
			if comment.ID != commentID {
				continue
			}
			if j == 0 {
				post.CommentClusters = append(post.CommentClusters[:i], post.CommentClusters[i+1:]...)
				return cluster, true
			}
			cluster.Comments = append(cluster.Comments[:j], cluster.Comments[j+1:]...)
			return nil, true
		}
	}
	return nil, false
}

// TogglePostLike flips userID's like on the post, keeping likes == len(likedBy).
// Returns whether the post is liked after the toggle.
func TogglePostLike(post *model.Post, userID string) bool {
	for i, id := range post.LikedBy {
		if id == userID {
			post.LikedBy = append(post.LikedBy[:i], post.LikedBy[i+1:]...)
			post.Likes--
			return false
		}
	}
	post.LikedBy = append(post.LikedBy, userID)
	post.Likes++
	return true
}

// FoodCalories collects the Food-tagged posts carrying a calorie estimate,
// preserving the feed's newest-first order, along with their total.
func FoodCalories(posts []*model.Post) (int, []*model.Post) {
	total := 0
	var food []*model.Post
	for _, p := range posts {
		if p.HasTag(model.TagFood) && p.Calories > 0 {
			total += p.Calories
			food = append(food, p)
		}
	}
	return total, food
}

// ToggleCommentLike flips userID's like on the comment.
func ToggleCommentLike(comment *model.Comment, userID string) bool {
	for i, id := range comment.LikedBy {
		if id == userID {
			comment.LikedBy = append(comment.LikedBy[:i], comment.LikedBy[i+1:]...)
			comment.Likes--
			return false
		}
	}
	comment.LikedBy = append(comment.LikedBy, userID)
	comment.Likes++
	return true
}
