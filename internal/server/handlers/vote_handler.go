package handlers

import (
	"net/http"

	"techblog/internal/ports/models"
	"techblog/internal/server/middleware"
	"techblog/internal/server/service"
	"techblog/internal/vote"

	"github.com/gin-gonic/gin"
)

type VoteHandler struct {
	voteService *service.VoteService
}

func NewVoteHandler(voteService *service.VoteService) *VoteHandler {
	return &VoteHandler{voteService: voteService}
}

// @Summary Vote on a question
// @Description Cast or switch an upvote/downvote. Re-voting in the same direction is a no-op.
// @Tags votes
// @Accept json
// @Produce json
// @Param id path string true "Question ID"
// @Param request body models.VoteRequest true "Vote Request"
// @Success 200 {object} models.VoteResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /questions/{id}/vote [post]
func (h *VoteHandler) CastQuestionVote(c *gin.Context) {
	h.castVote(c, vote.TargetQuestion)
}

// @Summary Vote on an answer
// @Description Cast or switch an upvote/downvote. Re-voting in the same direction is a no-op.
// @Tags votes
// @Accept json
// @Produce json
// @Param id path string true "Answer ID"
// @Param request body models.VoteRequest true "Vote Request"
// @Success 200 {object} models.VoteResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /answers/{id}/vote [post]
func (h *VoteHandler) CastAnswerVote(c *gin.Context) {
	h.castVote(c, vote.TargetAnswer)
}

func (h *VoteHandler) castVote(c *gin.Context, targetType vote.TargetType) {
	session, err := middleware.GetSessionFromContext(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req models.VoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	score, err := h.voteService.CastVote(
		c.Request.Context(),
		session.VoterID(),
		string(targetType),
		c.Param("id"),
		req.Direction,
	)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.VoteResponse{Score: score})
}
