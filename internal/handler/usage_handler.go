package handler

import (
	"net/http"

	"anoa.com/greencampus/internal/dto"
	"anoa.com/greencampus/internal/service"
	"anoa.com/greencampus/pkg/response"
	"anoa.com/greencampus/pkg/validator"
	"github.com/gin-gonic/gin"
)

type UsageHandler struct {
	service service.UsageService
}

func NewUsageHandler(usageService service.UsageService) *UsageHandler {
	return &UsageHandler{service: usageService}
}

func (h *UsageHandler) ListUsage(c *gin.Context) {
	records, err := h.service.Recent(c.Request.Context())
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": records})
}

// SubmitUsage accepts either a CSV file field ("file") or single-record
// form fields. The CSV path reports per-row outcomes; the single-record
// path fails hard on any invalid input.
func (h *UsageHandler) SubmitUsage(c *gin.Context) {
	if file, err := c.FormFile("file"); err == nil {
		src, err := file.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "could not read uploaded file"})
			return
		}
		defer src.Close()

		report, err := h.service.IngestCSV(c.Request.Context(), src)
		if err != nil {
			response.ResponseError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "batch processed", "report": report})
		return
	}

	var req dto.UsageRecordRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	if err := h.service.Ingest(c.Request.Context(), req); err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "usage recorded"})
}
