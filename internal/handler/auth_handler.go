package handler

import (
	"net/http"

	"anoa.com/greencampus/internal/dto"
	"anoa.com/greencampus/internal/middleware"
	"anoa.com/greencampus/internal/service"
	"anoa.com/greencampus/pkg/response"
	"anoa.com/greencampus/pkg/validator"
	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	service      service.AuthService
	cookieMaxAge int
}

func NewAuthHandler(authService service.AuthService, cookieMaxAge int) *AuthHandler {
	return &AuthHandler{
		service:      authService,
		cookieMaxAge: cookieMaxAge,
	}
}

func (h *AuthHandler) LoginPage(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "submit username and password via POST /login"})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	resp, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.SetCookie(middleware.SessionCookie, resp.Token, h.cookieMaxAge, "/", "", false, true)
	c.JSON(http.StatusOK, resp)
}

func (h *AuthHandler) RegisterPage(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "submit username and password via POST /register"})
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	if err := h.service.Register(c.Request.Context(), req); err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "account created, please log in"})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", false, true)
	c.Redirect(http.StatusFound, "/login")
}
