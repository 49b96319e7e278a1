package feed

import (
	"testing"

	"github.com/FitMunity/feed-service/internal/model"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildPost() *model.Post {
	post := &model.Post{ID: uuid.New(), Content: "morning run", Type: model.PostTypeText}
	cluster := &model.CommentCluster{ID: uuid.New(), PostID: post.ID}
	cluster.Comments = []*model.Comment{
		{ID: uuid.New(), ClusterID: cluster.ID, Content: "Great pace!"},
		{ID: uuid.New(), ClusterID: cluster.ID, Content: "Thanks!", IsUserReply: true},
		{ID: uuid.New(), ClusterID: cluster.ID, Content: "Keep it up."},
	}
	post.CommentClusters = []*model.CommentCluster{cluster}
	return post
}

func TestFindPost(t *testing.T) {
	a, b := buildPost(), buildPost()
	posts := []*model.Post{a, b}

	assert.Same(t, b, FindPost(posts, b.ID))
	assert.Nil(t, FindPost(posts, uuid.New()))
}

func TestRemovePost(t *testing.T) {
	a, b, c := buildPost(), buildPost(), buildPost()
	posts := RemovePost([]*model.Post{a, b, c}, b.ID)

	require.Len(t, posts, 2)
	assert.Same(t, a, posts[0])
	assert.Same(t, c, posts[1])

	assert.Len(t, RemovePost(posts, uuid.New()), 2)
}

func TestFindCluster(t *testing.T) {
	post := buildPost()
	cluster := post.CommentClusters[0]

	assert.Same(t, cluster, FindCluster(post, cluster.ID))
	assert.Nil(t, FindCluster(post, uuid.New()))
}

func TestAppendCommentKeepsReplyOrder(t *testing.T) {
	post := buildPost()
	cluster := post.CommentClusters[0]

	reply := &model.Comment{ID: uuid.New(), ClusterID: cluster.ID, Content: "Any tips for hills?", IsUserReply: true}
	followUp := &model.Comment{ID: uuid.New(), ClusterID: cluster.ID, Content: "Shorten your stride going up."}
	AppendComment(cluster, reply)
	AppendComment(cluster, followUp)

	n := len(cluster.Comments)
	assert.True(t, cluster.Comments[n-2].IsUserReply)
	assert.Equal(t, "Any tips for hills?", cluster.Comments[n-2].Content)
	assert.False(t, cluster.Comments[n-1].IsUserReply)
}

func TestRemoveComment_MiddleCommentSplices(t *testing.T) {
	post := buildPost()
	cluster := post.CommentClusters[0]
	target := cluster.Comments[1]

	removed, found := RemoveComment(post, target.ID)
	assert.True(t, found)
	assert.Nil(t, removed)

	require.Len(t, post.CommentClusters, 1)
	require.Len(t, cluster.Comments, 2)
	assert.Equal(t, "Great pace!", cluster.Comments[0].Content)
	assert.Equal(t, "Keep it up.", cluster.Comments[1].Content)
}

func TestRemoveComment_FirstCommentDropsCluster(t *testing.T) {
	post := buildPost()
	cluster := post.CommentClusters[0]

	removed, found := RemoveComment(post, cluster.Comments[0].ID)
	assert.True(t, found)
	assert.Same(t, cluster, removed)
	assert.Empty(t, post.CommentClusters)
}

func TestRemoveComment_UnknownID(t *testing.T) {
	post := buildPost()

	removed, found := RemoveComment(post, uuid.New())
	assert.False(t, found)
	assert.Nil(t, removed)
	assert.Len(t, post.CommentClusters, 1)
}

func TestFoodCalories(t *testing.T) {
	newest := &model.Post{ID: uuid.New(), Content: "overnight oats", Tags: []model.Tag{model.TagFood}, Calories: 350}
	run := &model.Post{ID: uuid.New(), Content: "morning run", Tags: []model.Tag{model.TagFitness}}
	unestimated := &model.Post{ID: uuid.New(), Content: "mystery snack", Tags: []model.Tag{model.TagFood}, Calories: 0}
	oldest := &model.Post{ID: uuid.New(), Content: "chicken salad", Tags: []model.Tag{model.TagFood}, Calories: 420}

	total, foodPosts := FoodCalories([]*model.Post{newest, run, unestimated, oldest})

	assert.Equal(t, 770, total)
	require.Len(t, foodPosts, 2)
	assert.Same(t, newest, foodPosts[0])
	assert.Same(t, oldest, foodPosts[1])
}

func TestFoodCalories_EmptyFeed(t *testing.T) {
	total, foodPosts := FoodCalories(nil)

	assert.Zero(t, total)
	assert.Empty(t, foodPosts)
}

func TestTogglePostLike(t *testing.T) {
	post := buildPost()
	post.Likes = 2
	post.LikedBy = []string{"u1", "u2"}

	liked := TogglePostLike(post, "u3")
	assert.True(t, liked)
	assert.Equal(t, int64(3), post.Likes)
	assert.Contains(t, post.LikedBy, "u3")
	assert.Equal(t, int64(len(post.LikedBy)), post.Likes)

	liked = TogglePostLike(post, "u3")
	assert.False(t, liked)
	assert.Equal(t, int64(2), post.Likes)
	assert.NotContains(t, post.LikedBy, "u3")
	assert.Equal(t, int64(len(post.LikedBy)), post.Likes)
}

func TestToggleCommentLike(t *testing.T) {
	comment := &model.Comment{ID: uuid.New()}

	assert.True(t, ToggleCommentLike(comment, "u1"))
	assert.Equal(t, int64(1), comment.Likes)
	assert.Equal(t, []string{"u1"}, comment.LikedBy)

	assert.False(t, ToggleCommentLike(comment, "u1"))
	assert.Zero(t, comment.Likes)
	assert.Empty(t, comment.LikedBy)
}
