package handler

import (
	"net/http"
	"strings"

	"github.com/FitMunity/feed-service/internal/dto"
	"github.com/FitMunity/feed-service/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func (h *Handler) commentsReply(c *gin.Context) {
	userID := h.getUserIDFromRequest(c)

	var input dto.ReplyRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, err.Error()))
		return
	}

	result, err := h.services.Comment.Reply(c.Request.Context(), userID, input)
	if err != nil {
		status := http.StatusInternalServerError
		switch err {
		case service.ErrPostNotFound, service.ErrClusterNotFound:
			status = http.StatusNotFound
		}
		c.JSON(status, dto.NewBasicResponse(false, err.Error()))
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *Handler) commentsLike(c *gin.Context) {
	userID := h.getUserIDFromRequest(c)

	postID, commentID, ok := h.parseCommentPath(c)
	if !ok {
		return
	}

	result, err := h.services.Comment.ToggleLike(c.Request.Context(), userID, postID, commentID)
	if err != nil {
		status := http.StatusInternalServerError
		switch err {
		case service.ErrPostNotFound, service.ErrCommentNotFound:
			status = http.StatusNotFound
		}
		c.JSON(status, dto.NewBasicResponse(false, err.Error()))
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *Handler) commentsDelete(c *gin.Context) {
	userID := h.getUserIDFromRequest(c)

	postID, commentID, ok := h.parseCommentPath(c)
	if !ok {
		return
	}

	if err := h.services.Comment.Delete(c.Request.Context(), userID, postID, commentID); err != nil {
		status := http.StatusInternalServerError
		switch err {
		case service.ErrPostNotFound, service.ErrCommentNotFound:
			status = http.StatusNotFound
		}
		c.JSON(status, dto.NewBasicResponse(false, err.Error()))
		return
	}

	c.JSON(http.StatusOK, dto.NewBasicResponse(true, "comment deleted"))
}

func (h *Handler) parseCommentPath(c *gin.Context) (postID uuid.UUID, commentID uuid.UUID, ok bool) {
	postID, err := uuid.Parse(strings.TrimSpace(c.Param("postID")))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, errInvalidPostID.Error()))
		return uuid.Nil, uuid.Nil, false
	}

	commentID, err = uuid.Parse(strings.TrimSpace(c.Param("commentID")))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, errInvalidCommentID.Error()))
		return uuid.Nil, uuid.Nil, false
	}

	return postID, commentID, true
}
