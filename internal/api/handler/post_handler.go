package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"miniblog/internal/api/dto"
	"miniblog/internal/api/middleware"
	"miniblog/internal/core/service"
)

type PostHandler struct {
	posts *service.PostService
	log   *zap.Logger
}

func NewPostHandler(posts *service.PostService, log *zap.Logger) *PostHandler {
	return &PostHandler{
		posts: posts,
		log:   log,
	}
}

// Index handles GET /
func (h *PostHandler) Index(c *gin.Context) {
	posts, err := h.posts.ListAll(c.Request.Context())
	if err != nil {
		h.log.Error("failed to list posts", zap.Error(err))
		c.String(http.StatusInternalServerError, "Something went wrong.")
		return
	}

	render(c, http.StatusOK, "index.html", gin.H{"Posts": posts})
}

// Create handles POST /post
func (h *PostHandler) Create(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		setFlash(c, "error", "You must be logged in to post.")
		c.Redirect(http.StatusSeeOther, "/login")
		return
	}

	var form dto.PostForm
	if err := c.ShouldBind(&form); err != nil {
		setFlash(c, "error", "Title and body are required.")
		c.Redirect(http.StatusSeeOther, "/")
		return
	}

	if _, err := h.posts.Create(c.Request.Context(), user.ID, form.Title, form.Body); err != nil {
		if errors.Is(err, service.ErrEmptyField) {
			setFlash(c, "error", "Title and body are required.")
		} else {
			h.log.Error("failed to create post", zap.Error(err))
			setFlash(c, "error", "Something went wrong. Please try again.")
		}
		c.Redirect(http.StatusSeeOther, "/")
		return
	}

	setFlash(c, "success", "Post created!")
	c.Redirect(http.StatusSeeOther, "/")
}
