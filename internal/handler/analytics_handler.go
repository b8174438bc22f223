package handler

import (
	"net/http"

	"anoa.com/greencampus/internal/service"
	"anoa.com/greencampus/pkg/response"
	"github.com/gin-gonic/gin"
)

type AnalyticsHandler struct {
	analytics service.AnalyticsService
	charts    service.ChartService
}

func NewAnalyticsHandler(analytics service.AnalyticsService, charts service.ChartService) *AnalyticsHandler {
	return &AnalyticsHandler{
		analytics: analytics,
		charts:    charts,
	}
}

func (h *AnalyticsHandler) Analytics(c *gin.Context) {
	summary, err := h.analytics.Summary(c.Request.Context())
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

func (h *AnalyticsHandler) Chart(c *gin.Context) {
	img, err := h.charts.Render(c.Request.Context(), c.Param("name"))
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.Data(http.StatusOK, "image/png", img)
}
