package handler

import (
	"github.com/FitMunity/feed-service/internal/service"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/spf13/viper"
)

type Handler struct {
	services *service.Service
}

func New(services *service.Service) *Handler {
	return &Handler{
		services: services,
	}
}

func (h *Handler) InitRoutes() *gin.Engine {
	r := gin.New()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{viper.GetString("client.origin")},
		AllowMethods:     []string{"POST", "GET", "DELETE"},
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	v1 := r.Group("/api/v1")
	{
		posts := v1.Group("/posts")
		{
			posts.POST("/uploadImage", h.authMiddleware, h.postsUploadImage)
			posts.POST("", h.authMiddleware, h.postsCreate)
			posts.GET("/my", h.notRequiredAuthMiddleware, h.postsGetMy)
			posts.GET("/summary", h.authMiddleware, h.postsCalorieSummary)

			post := posts.Group("/:postID")
			{
				post.POST("/like", h.authMiddleware, h.postsLike)
				post.DELETE("", h.authMiddleware, h.postsDelete)
			}
		}

		comments := v1.Group("/comments")
		{
			comments.POST("/reply", h.authMiddleware, h.commentsReply)

			comment := comments.Group("/:postID/:commentID")
			{
				comment.POST("/like", h.authMiddleware, h.commentsLike)
				comment.DELETE("", h.authMiddleware, h.commentsDelete)
			}
		}
	}

	return r
}

func userIDFromClaims(claims jwt.MapClaims) (uuid.UUID, error) {
	idString, ok := claims["id"].(string)
	if !ok {
		return uuid.Nil, errNotAuthorized
	}
	return uuid.Parse(idString)
}

// getUserIDFromRequest returns the authenticated user's id, or uuid.Nil when
// the request carries no valid session.
func (h *Handler) getUserIDFromRequest(c *gin.Context) uuid.UUID {
	idReq, _ := c.Get("userID")

	id, ok := idReq.(uuid.UUID)
	if !ok {
		return uuid.Nil
	}

	return id
}
