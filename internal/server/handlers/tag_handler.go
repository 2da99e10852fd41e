package handlers

import (
	"net/http"

	"techblog/internal/server/service"

	"github.com/gin-gonic/gin"
)

type TagHandler struct {
	tagService *service.TagService
}

func NewTagHandler(tagService *service.TagService) *TagHandler {
	return &TagHandler{tagService: tagService}
}

// @Summary List tags
// @Description List tags with usage counts, most used first
// @Tags tags
// @Produce json
// @Success 200 {array} models.Tag
// @Router /tags [get]
func (h *TagHandler) ListTags(c *gin.Context) {
	tags, err := h.tagService.ListTags(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, tags)
}

type defineTagRequest struct {
	Definition string `json:"definition" binding:"required,max=500"`
}

// @Summary Define a tag
// @Description Set a tag's definition (admin only)
// @Tags admin
// @Accept json
// @Param name path string true "Tag name"
// @Param request body defineTagRequest true "Definition"
// @Success 204
// @Failure 403 {object} map[string]string
// @Router /admin/tags/{name} [put]
func (h *TagHandler) DefineTag(c *gin.Context) {
	var req defineTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.tagService.DefineTag(c.Request.Context(), c.Param("name"), req.Definition); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
