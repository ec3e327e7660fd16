package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	categoryPort "github.com/TopUP/blog/internal/ports/category"
)

type CategoryController struct{ uc CategoryUseCase }

func NewCategoryController(uc CategoryUseCase) *CategoryController {
	return &CategoryController{uc: uc}
}

func (ctl *CategoryController) Create(c *gin.Context) {
	var req struct {
		Title string `json:"title" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	cat, err := ctl.uc.Create(c.Request.Context(), req.Title)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, cat)
}

func (ctl *CategoryController) FindAll(c *gin.Context) {
	categories, err := ctl.uc.FindAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, categories)
}

func (ctl *CategoryController) FindOne(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	cat, err := ctl.uc.FindOne(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cat)
}

func (ctl *CategoryController) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req struct {
		Title *string `json:"title"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	cat, err := ctl.uc.Update(c.Request.Context(), id, categoryPort.UpdateCategoryInput{Title: req.Title})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cat)
}

func (ctl *CategoryController) Remove(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := ctl.uc.Remove(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusCreated)
}
