package dto

type CreatePostRequest struct {
	Content        string   `json:"content"`
	Type           string   `json:"type" binding:"required"`
	MediaURLs      []string `json:"media_urls"`
	Tags           []string `json:"tags" binding:"required,min=1"`
	WorkoutDetails string   `json:"workout_details"`
}
