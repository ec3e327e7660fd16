package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type AuthController struct{ uc AuthUseCase }

func NewAuthController(uc AuthUseCase) *AuthController { return &AuthController{uc: uc} }

func (ctl *AuthController) Register(c *gin.Context) {
	var req struct {
		FullName             string `json:"full_name" binding:"required"`
		Email                string `json:"email" binding:"required,email"`
		Password             string `json:"password" binding:"required"`
		PasswordConfirmation string `json:"password_confirmation" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	token, err := ctl.uc.Register(c.Request.Context(), req.FullName, req.Email, req.Password, req.PasswordConfirmation)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, token)
}

func (ctl *AuthController) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"message":    "Unauthorized",
			"statusCode": http.StatusUnauthorized,
		})
		return
	}

	u, err := ctl.uc.ValidateCredentials(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	if u == nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"message":    "Unauthorized",
			"statusCode": http.StatusUnauthorized,
		})
		return
	}

	token, err := ctl.uc.Login(u)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, token)
}
