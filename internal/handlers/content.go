package handlers

import (
	"net/http"

	"github.com/harshjindal13/brainly-fullStack/internal/apperr"
	"github.com/harshjindal13/brainly-fullStack/internal/service"

	"github.com/gin-gonic/gin"
)

// Common response messages to avoid magic strings and typos.
const (
	msgContentAdded = "Content added"
	msgDeleted      = "Deleted"
)

// Request DTO for saving a link.
type createContentRequest struct {
	Title string   `json:"title" binding:"required"`
	Link  string   `json:"link" binding:"required"`
	Type  string   `json:"type" binding:"required"` // youtube | twitter
	Tags  []string `json:"tags"`
}

// CreateContentRequest is an exported model for Swagger docs of the content payload.
type CreateContentRequest struct {
	// Display title for the saved card
	Title string `json:"title" example:"Go concurrency talk"`
	// Link to the external content
	Link string `json:"link" example:"https://www.youtube.com/watch?v=f6kdp27TYZs"`
	// Content type. Allowed: youtube, twitter
	Type string `json:"type" example:"youtube"`
	// Optional tag labels
	Tags []string `json:"tags,omitempty"`
}

// Request DTO for removing a saved link.
type deleteContentRequest struct {
	ContentID string `json:"contentId" binding:"required"`
}

// mustUserID pulls the authenticated caller out of the context; routes
// behind userIdMiddleware always have one.
func (h *Handler) mustUserID(c *gin.Context) (int, bool) {
	uid, ok := userID(c)
	if !ok {
		h.respondError(c, apperr.New(apperr.KindAuth, "user identity missing"))
	}
	return uid, ok
}

// @Summary      Save content
// @Description  Stores a typed link (youtube or twitter) in the caller's brain
// @Tags         content
// @Accept       json
// @Produce      json
// @Param        body  body   CreateContentRequest  true  "Content payload"
// @Success      200   {object}  map[string]interface{}  "message, content"
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/v1/content [post]
// @Security     BearerAuth
func (h *Handler) createContent(c *gin.Context) {
	uid, ok := h.mustUserID(c)
	if !ok {
		return
	}

	var req createContentRequest
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}

	content, err := h.services.Contents.Create(c.Request.Context(), uid, service.CreateContentParams{
		Title: req.Title,
		Link:  req.Link,
		Type:  req.Type,
		Tags:  req.Tags,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": msgContentAdded,
		"content": content,
	})
}

// @Summary      List content
// @Description  Returns the caller's saved links, optionally narrowed by type
// @Tags         content
// @Produce      json
// @Param        type  query   string  false  "Content type filter"  Enums(youtube,twitter)
// @Success      200   {object}  map[string]interface{}  "content"
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/v1/content [get]
// @Security     BearerAuth
func (h *Handler) listContent(c *gin.Context) {
	uid, ok := h.mustUserID(c)
	if !ok {
		return
	}

	items, err := h.services.Contents.List(c.Request.Context(), uid, c.Query("type"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"content": items})
}

// @Summary      Delete content
// @Description  Removes one saved link owned by the caller; unknown ids are a no-op
// @Tags         content
// @Accept       json
// @Produce      json
// @Param        body  body   deleteContentRequest  true  "Content id payload"
// @Success      200   {object}  map[string]string
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/v1/content [delete]
// @Security     BearerAuth
func (h *Handler) deleteContent(c *gin.Context) {
	uid, ok := h.mustUserID(c)
	if !ok {
		return
	}

	var req deleteContentRequest
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}

	if err := h.services.Contents.Delete(c.Request.Context(), uid, req.ContentID); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": msgDeleted})
}
