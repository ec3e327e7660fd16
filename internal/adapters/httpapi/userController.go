package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	userPort "github.com/TopUP/blog/internal/ports/user"
)

type UserController struct{ uc UserUseCase }

func NewUserController(uc UserUseCase) *UserController { return &UserController{uc: uc} }

func (ctl *UserController) Create(c *gin.Context) {
	var req struct {
		FullName string `json:"full_name" binding:"required"`
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	u, err := ctl.uc.Create(c.Request.Context(), req.FullName, req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, u)
}

func (ctl *UserController) FindAll(c *gin.Context) {
	users, err := ctl.uc.FindAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

func (ctl *UserController) FindOne(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	u, err := ctl.uc.FindOne(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}

func (ctl *UserController) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	caller, ok := identity(c)
	if !ok {
		return
	}

	var req struct {
		FullName *string `json:"full_name"`
		Email    *string `json:"email" binding:"omitempty,email"`
		Password *string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	u, err := ctl.uc.Update(c.Request.Context(), id, caller.ID, userPort.UpdateUserInput{
		FullName: req.FullName,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}

func (ctl *UserController) Remove(c *gin.Context) {
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
