package handler

import (
	"net/http"

	"anoa.com/greencampus/internal/repository"
	"anoa.com/greencampus/internal/service"
	"anoa.com/greencampus/pkg/response"
	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	stats    service.StatService
	userRepo repository.UserRepository
}

func NewAdminHandler(stats service.StatService, userRepo repository.UserRepository) *AdminHandler {
	return &AdminHandler{
		stats:    stats,
		userRepo: userRepo,
	}
}

func (h *AdminHandler) Dashboard(c *gin.Context) {
	dashboard, err := h.stats.AdminDashboard(c.Request.Context())
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, dashboard)
}

// ManageUsers lists every account. Passwords never serialize (json:"-").
func (h *AdminHandler) ManageUsers(c *gin.Context) {
	users, err := h.userRepo.FindAll(c.Request.Context())
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": users})
}
