package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"techblog/internal/apperr"
	"techblog/internal/ports/models"
	"techblog/internal/server/middleware"
	"techblog/internal/server/service"
	"techblog/internal/vote"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

type fakeVotableStore struct {
	states  map[string]vote.State
	authors map[string]string
}

func (s *fakeVotableStore) ApplyVote(_ context.Context, _ vote.TargetType, targetID, voterID string, d vote.Direction) (vote.State, string, error) {
	prev, ok := s.states[targetID]
	if !ok {
		return vote.State{}, "", fmt.Errorf("%w: target %s", apperr.ErrNotFound, targetID)
	}
	next, _, err := vote.Apply(prev, voterID, d)
	if err != nil {
		return vote.State{}, "", err
	}
	s.states[targetID] = next
	return prev, s.authors[targetID], nil
}

type noopPublisher struct{}

func (noopPublisher) Publish(context.Context, models.VoteTransitionMessage) error { return nil }

func newVoteTestRouter(store *fakeVotableStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := NewVoteHandler(service.NewVoteService(store, noopPublisher{}))

	router := gin.New()
	protected := router.Group("/api/v1")
	protected.Use(middleware.JWTAuth(testSecret))
	protected.POST("/questions/:id/vote", handler.CastQuestionVote)
	protected.POST("/answers/:id/vote", handler.CastAnswerVote)
	return router
}

func issueTestToken(t *testing.T, userID uint) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":      userID,
		"username": "tester",
		"admin":    false,
		"exp":      time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

func postVote(router *gin.Engine, path, token string, body any) *httptest.ResponseRecorder {
	payload, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCastVoteEndpointSuccess(t *testing.T) {
	store := &fakeVotableStore{
		states:  map[string]vote.State{"q1": {}},
		authors: map[string]string{"q1": "42"},
	}
	router := newVoteTestRouter(store)
	token := issueTestToken(t, 7)

	w := postVote(router, "/api/v1/questions/q1/vote", token, models.VoteRequest{Direction: "upvote"})
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.VoteResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Score)
}

func TestCastVoteEndpointUnauthorized(t *testing.T) {
	router := newVoteTestRouter(&fakeVotableStore{states: map[string]vote.State{}})

	w := postVote(router, "/api/v1/questions/q1/vote", "", models.VoteRequest{Direction: "upvote"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCastVoteEndpointInvalidDirection(t *testing.T) {
	store := &fakeVotableStore{
		states:  map[string]vote.State{"q1": {}},
		authors: map[string]string{"q1": "42"},
	}
	router := newVoteTestRouter(store)
	token := issueTestToken(t, 7)

	w := postVote(router, "/api/v1/questions/q1/vote", token, gin.H{"direction": "sideways"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = postVote(router, "/api/v1/questions/q1/vote", token, gin.H{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCastVoteEndpointTargetNotFound(t *testing.T) {
	router := newVoteTestRouter(&fakeVotableStore{states: map[string]vote.State{}})
	token := issueTestToken(t, 7)

	w := postVote(router, "/api/v1/questions/missing/vote", token, models.VoteRequest{Direction: "upvote"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCastVoteEndpointAnswerRoute(t *testing.T) {
	store := &fakeVotableStore{
		states:  map[string]vote.State{"a1": {Upvoters: []string{"3"}, Score: 1}},
		authors: map[string]string{"a1": "42"},
	}
	router := newVoteTestRouter(store)
	token := issueTestToken(t, 7)

	w := postVote(router, "/api/v1/answers/a1/vote", token, models.VoteRequest{Direction: "downvote"})
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.VoteResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 0, resp.Score)
}
