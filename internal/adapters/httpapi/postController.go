package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	postPort "github.com/TopUP/blog/internal/ports/post"
)

type PostController struct{ uc PostUseCase }

func NewPostController(uc PostUseCase) *PostController { return &PostController{uc: uc} }

func (ctl *PostController) Create(c *gin.Context) {
	var req struct {
		Title      string `json:"title" binding:"required"`
		Body       string `json:"body" binding:"required"`
		CategoryID uint   `json:"categoryId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}
	caller, ok := identity(c)
	if !ok {
		return
	}

	p, err := ctl.uc.Create(c.Request.Context(), postPort.CreatePostInput{
		Title:      req.Title,
		Body:       req.Body,
		CategoryID: req.CategoryID,
		UserID:     caller.ID,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

func (ctl *PostController) FindAll(c *gin.Context) {
	posts, err := ctl.uc.FindAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, posts)
}

func (ctl *PostController) FindOne(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	p, err := ctl.uc.FindOne(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (ctl *PostController) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	caller, ok := identity(c)
	if !ok {
		return
	}

	var req struct {
		Title      *string `json:"title"`
		Body       *string `json:"body"`
		CategoryID *uint   `json:"categoryId"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	p, err := ctl.uc.Update(c.Request.Context(), id, caller.ID, postPort.UpdatePostInput{
		Title:      req.Title,
		Body:       req.Body,
		CategoryID: req.CategoryID,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (ctl *PostController) Remove(c *gin.Context) {
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
