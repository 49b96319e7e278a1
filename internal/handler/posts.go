package handler

import (
	"net/http"
	"strings"

	"github.com/FitMunity/feed-service/internal/dto"
	"github.com/FitMunity/feed-service/internal/model"
	"github.com/FitMunity/feed-service/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func (h *Handler) postsUploadImage(c *gin.Context) {
	file, fileHeader, err := c.Request.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, err.Error()))
		return
	}

	userID := h.getUserIDFromRequest(c)
	if userID == uuid.Nil {
		c.JSON(http.StatusUnauthorized, dto.NewBasicResponse(false, errNotAuthorized.Error()))
		return
	}

	url, err := h.services.Post.UploadImage(c.Request.Context(), file, fileHeader)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.NewBasicResponse(false, err.Error()))
		return
	}

	c.JSON(http.StatusOK, url)
}

func (h *Handler) postsCreate(c *gin.Context) {
	userID := h.getUserIDFromRequest(c)

	var input dto.CreatePostRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, err.Error()))
		return
	}

	createdPost, err := h.services.Post.Create(c.Request.Context(), userID, input)
	if err != nil {
		status := http.StatusInternalServerError
		switch err {
		case service.ErrEmptyPost, service.ErrInvalidPostType, service.ErrInvalidTag:
			status = http.StatusBadRequest
		}
		c.JSON(status, dto.NewBasicResponse(false, err.Error()))
		return
	}

	c.JSON(http.StatusCreated, *createdPost)
}

// postsGetMy returns the caller's feed; signed-out callers see an empty list.
func (h *Handler) postsGetMy(c *gin.Context) {
	userID := h.getUserIDFromRequest(c)
	if userID == uuid.Nil {
		c.JSON(http.StatusOK, []*model.Post{})
		return
	}

	posts, err := h.services.Post.FindUserFeed(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.NewBasicResponse(false, err.Error()))
		return
	}

	c.JSON(http.StatusOK, posts)
}

func (h *Handler) postsCalorieSummary(c *gin.Context) {
	userID := h.getUserIDFromRequest(c)
	if userID == uuid.Nil {
		c.JSON(http.StatusUnauthorized, dto.NewBasicResponse(false, errNotAuthorized.Error()))
		return
	}

	summary, err := h.services.Post.CalorieSummary(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.NewBasicResponse(false, err.Error()))
		return
	}

	c.JSON(http.StatusOK, summary)
}

func (h *Handler) postsLike(c *gin.Context) {
	userID := h.getUserIDFromRequest(c)

	postIDString := strings.TrimSpace(c.Param("postID"))
	postID, err := uuid.Parse(postIDString)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, errInvalidPostID.Error()))
		return
	}

	result, err := h.services.Post.ToggleLike(c.Request.Context(), userID, postID)
	if err != nil {
		status := http.StatusInternalServerError
		if err == service.ErrPostNotFound {
			status = http.StatusNotFound
		}
		c.JSON(status, dto.NewBasicResponse(false, err.Error()))
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *Handler) postsDelete(c *gin.Context) {
	userID := h.getUserIDFromRequest(c)

	postIDString := strings.TrimSpace(c.Param("postID"))
	postID, err := uuid.Parse(postIDString)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, errInvalidPostID.Error()))
		return
	}

	if err := h.services.Post.Delete(c.Request.Context(), userID, postID); err != nil {
		status := http.StatusInternalServerError
		if err == service.ErrPostNotFound {
			status = http.StatusNotFound
		}
		c.JSON(status, dto.NewBasicResponse(false, err.Error()))
		return
	}

	c.JSON(http.StatusOK, dto.NewBasicResponse(true, "post deleted"))
}
