package handlers

import (
	"net/http"

	"techblog/internal/ports/models"
	"techblog/internal/server/middleware"
	"techblog/internal/server/service"

	"github.com/gin-gonic/gin"
)

type AnswerHandler struct {
	answerService *service.AnswerService
}

func NewAnswerHandler(answerService *service.AnswerService) *AnswerHandler {
	return &AnswerHandler{answerService: answerService}
}

// @Summary Answer a question
// @Tags answers
// @Accept json
// @Produce json
// @Param id path string true "Question ID"
// @Param request body models.CreateAnswerRequest true "Answer"
// @Success 201 {object} models.Answer
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /questions/{id}/answers [post]
func (h *AnswerHandler) CreateAnswer(c *gin.Context) {
	session, err := middleware.GetSessionFromContext(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req models.CreateAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	answer, err := h.answerService.CreateAnswer(c.Request.Context(), session, c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, answer)
}

// @Summary List a question's answers
// @Tags answers
// @Produce json
// @Param id path string true "Question ID"
// @Success 200 {array} models.Answer
// @Router /questions/{id}/answers [get]
func (h *AnswerHandler) ListAnswers(c *gin.Context) {
	answers, err := h.answerService.ListAnswers(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, answers)
}

// @Summary Accept an answer
// @Description Mark an answer as accepted (asker only)
// @Tags answers
// @Param id path string true "Answer ID"
// @Success 204
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /answers/{id}/accept [post]
func (h *AnswerHandler) AcceptAnswer(c *gin.Context) {
	session, err := middleware.GetSessionFromContext(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	if err := h.answerService.AcceptAnswer(c.Request.Context(), session, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Comment on an answer
// @Tags answers
// @Accept json
// @Produce json
// @Param id path string true "Answer ID"
// @Param request body models.CreateCommentRequest true "Comment"
// @Success 201 {object} models.Comment
// @Failure 404 {object} map[string]string
// @Router /answers/{id}/comments [post]
func (h *AnswerHandler) AddComment(c *gin.Context) {
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

	comment, err := h.answerService.AddComment(c.Request.Context(), session, c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, comment)
}

// @Summary Moderate an answer
// @Description Change an answer's status (admin only)
// @Tags admin
// @Accept json
// @Param id path string true "Answer ID"
// @Param request body models.UpdateStatusRequest true "Status"
// @Success 204
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/answers/{id}/status [put]
func (h *AnswerHandler) UpdateStatus(c *gin.Context) {
	var req models.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.answerService.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
