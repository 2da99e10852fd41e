package handlers

import (
	"net/http"
	"strconv"

	"techblog/internal/ports/models"
	"techblog/internal/server/middleware"
	"techblog/internal/server/service"

	"github.com/gin-gonic/gin"
)

type QuestionHandler struct {
	questionService *service.QuestionService
}

func NewQuestionHandler(questionService *service.QuestionService) *QuestionHandler {
	return &QuestionHandler{questionService: questionService}
}

// @Summary Ask a question
// @Description Create a new question with tags
// @Tags questions
// @Accept json
// @Produce json
// @Param request body models.CreateQuestionRequest true "Question"
// @Success 201 {object} models.Question
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /questions [post]
func (h *QuestionHandler) CreateQuestion(c *gin.Context) {
	session, err := middleware.GetSessionFromContext(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req models.CreateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	q, err := h.questionService.CreateQuestion(c.Request.Context(), session, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, q)
}

// @Summary List questions
// @Description List active questions, newest first, optionally filtered by tag
// @Tags questions
// @Produce json
// @Param tag query string false "Tag filter"
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {array} models.Question
// @Router /questions [get]
func (h *QuestionHandler) ListQuestions(c *gin.Context) {
	page, _ := strconv.ParseInt(c.DefaultQuery("page", "1"), 10, 64)
	pageSize, _ := strconv.ParseInt(c.DefaultQuery("page_size", "20"), 10, 64)

	questions, err := h.questionService.ListQuestions(c.Request.Context(), c.Query("tag"), page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, questions)
}

// @Summary Get a question
// @Tags questions
// @Produce json
// @Param id path string true "Question ID"
// @Success 200 {object} models.Question
// @Failure 404 {object} map[string]string
// @Router /questions/{id} [get]
func (h *QuestionHandler) GetQuestion(c *gin.Context) {
	q, err := h.questionService.GetQuestion(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, q)
}

// @Summary Delete a question
// @Description Delete a question (author or admin only)
// @Tags questions
// @Param id path string true "Question ID"
// @Success 204
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /questions/{id} [delete]
func (h *QuestionHandler) DeleteQuestion(c *gin.Context) {
	session, err := middleware.GetSessionFromContext(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	if err := h.questionService.DeleteQuestion(c.Request.Context(), session, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Comment on a question
// @Tags questions
// @Accept json
// @Produce json
// @Param id path string true "Question ID"
// @Param request body models.CreateCommentRequest true "Comment"
// @Success 201 {object} models.Comment
// @Failure 404 {object} map[string]string
// @Router /questions/{id}/comments [post]
func (h *QuestionHandler) AddComment(c *gin.Context) {
	session, err := middleware.GetSessionFromContext(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req models.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	comment, err := h.questionService.AddComment(c.Request.Context(), session, c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, comment)
}

// @Summary Moderate a question
// @Description Change a question's status (admin only)
// @Tags admin
// @Accept json
// @Param id path string true "Question ID"
// @Param request body models.UpdateStatusRequest true "Status"
// @Success 204
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/questions/{id}/status [put]
func (h *QuestionHandler) UpdateStatus(c *gin.Context) {
	var req models.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.questionService.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
