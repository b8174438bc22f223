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

type StudentHandler struct {
	stats         service.StatService
	contributions service.ContributionService
}

func NewStudentHandler(stats service.StatService, contributions service.ContributionService) *StudentHandler {
	return &StudentHandler{
		stats:         stats,
		contributions: contributions,
	}
}

func (h *StudentHandler) Dashboard(c *gin.Context) {
	userID, err := middleware.UserID(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	dashboard, err := h.stats.StudentDashboard(c.Request.Context(), userID)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, dashboard)
}

func (h *StudentHandler) Certificate(c *gin.Context) {
	userID, err := middleware.UserID(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	certificate, err := h.stats.Certificate(c.Request.Context(), userID)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, certificate)
}

func (h *StudentHandler) ListContributions(c *gin.Context) {
	userID, err := middleware.UserID(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	contributions, err := h.contributions.List(c.Request.Context(), userID)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": contributions})
}

func (h *StudentHandler) UploadContribution(c *gin.Context) {
	userID, err := middleware.UserID(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	var req dto.ContributionRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "a photo file is required"})
		return
	}

	contribution, err := h.contributions.Upload(c.Request.Context(), userID, req.Caption, file)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusCreated, contribution)
}
