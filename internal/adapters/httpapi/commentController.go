package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	commentPort "github.com/TopUP/blog/internal/ports/comment"
)

type CommentController struct{ uc CommentUseCase }

func NewCommentController(uc CommentUseCase) *CommentController {
	return &CommentController{uc: uc}
}

func (ctl *CommentController) Create(c *gin.Context) {
	var req struct {
		PostID uint   `json:"postId" binding:"required"`
		Body   string `json:"body" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}
	caller, ok := identity(c)
	if !ok {
		return
	}

	cm, err := ctl.uc.Create(c.Request.Context(), commentPort.CreateCommentInput{
		Body:   req.Body,
		PostID: req.PostID,
		UserID: caller.ID,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, cm)
}

func (ctl *CommentController) FindAll(c *gin.Context) {
	comments, err := ctl.uc.FindAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, comments)
}

func (ctl *CommentController) FindOne(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	cm, err := ctl.uc.FindOne(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cm)
}

func (ctl *CommentController) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	caller, ok := identity(c)
	if !ok {
		return
	}

	var req struct {
		Body string `json:"body" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	cm, err := ctl.uc.Update(c.Request.Context(), id, caller.ID, req.Body)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cm)
}

func (ctl *CommentController) Remove(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	caller, ok := identity(c)
	if !ok {
		return
	}

	if err := ctl.uc.Remove(c.Request.Context(), id, caller.ID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusCreated)
}
