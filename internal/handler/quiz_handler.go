package handler

import (
	"net/http"
	"strconv"

	"anoa.com/greencampus/internal/dto"
	"anoa.com/greencampus/internal/middleware"
	"anoa.com/greencampus/internal/service"
	"anoa.com/greencampus/pkg/response"
	"anoa.com/greencampus/pkg/validator"
	"github.com/gin-gonic/gin"
)

type QuizHandler struct {
	service service.QuizService
}

func NewQuizHandler(quizService service.QuizService) *QuizHandler {
	return &QuizHandler{service: quizService}
}

// ListQuizzes backs the admin authoring page: every quiz, newest first.
func (h *QuizHandler) ListQuizzes(c *gin.Context) {
	quizzes, err := h.service.AllQuizzes(c.Request.Context())
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": quizzes})
}

func (h *QuizHandler) CreateQuiz(c *gin.Context) {
	var req dto.CreateQuizRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	if err := h.service.CreateQuiz(c.Request.Context(), req); err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "quiz created and activated"})
}

func (h *QuizHandler) ActiveQuiz(c *gin.Context) {
	quiz, err := h.service.ActiveQuiz(c.Request.Context())
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, quiz)
}

func (h *QuizHandler) AttemptQuiz(c *gin.Context) {
	userID, err := middleware.UserID(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	var req dto.AttemptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	result, err := h.service.Attempt(c.Request.Context(), userID, req)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *QuizHandler) TopStudents(c *gin.Context) {
	limitStr := c.DefaultQuery("limit", strconv.Itoa(service.DefaultTopScorers))
	limit, _ := strconv.Atoi(limitStr)

	scorers, err := h.service.TopScorers(c.Request.Context(), limit)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": scorers})
}

func (h *QuizHandler) AllResults(c *gin.Context) {
	results, err := h.service.AllResults(c.Request.Context())
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": results})
}

func (h *QuizHandler) MyResults(c *gin.Context) {
	userID, err := middleware.UserID(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	results, err := h.service.ResultsForUser(c.Request.Context(), userID)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": results})
}
