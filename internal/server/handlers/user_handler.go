package handlers

import (
	"net/http"
	"strconv"

	"techblog/internal/server/middleware"
	"techblog/internal/server/service"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userService *service.UserService
}

func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// @Summary Get own profile
// @Tags users
// @Produce json
// @Success 200 {object} models.User
// @Failure 401 {object} map[string]string
// @Router /profile [get]
func (h *UserHandler) GetProfile(c *gin.Context) {
	session, err := middleware.GetSessionFromContext(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	user, err := h.userService.GetProfile(c.Request.Context(), session.UserID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// @Summary Upload avatar
// @Description Upload an avatar image for the authenticated user
// @Tags users
// @Accept multipart/form-data
// @Produce json
// @Param avatar formData file true "Avatar image"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Router /profile/avatar [post]
func (h *UserHandler) UploadAvatar(c *gin.Context) {
	session, err := middleware.GetSessionFromContext(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	file, err := c.FormFile("avatar")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "avatar file required"})
		return
	}

	url, err := h.userService.SetAvatar(c.Request.Context(), session.UserID, file)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"avatar_url": url})
}

// @Summary Reputation history
// @Description List the authenticated user's recent reputation changes
// @Tags users
// @Produce json
// @Param limit query int false "Max entries"
// @Success 200 {array} models.ReputationEntry
// @Failure 401 {object} map[string]string
// @Router /profile/reputation [get]
func (h *UserHandler) ReputationHistory(c *gin.Context) {
	session, err := middleware.GetSessionFromContext(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	entries, err := h.userService.ReputationHistory(c.Request.Context(), session.UserID, limit)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, entries)
}
