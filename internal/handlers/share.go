package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const msgLinkRemoved = "Removed link"

// Request DTO for toggling sharing. A pointer keeps "share": false from
// tripping the required binding.
type shareRequest struct {
	Share *bool `json:"share" binding:"required"`
}

// ShareRequest is an exported model for Swagger docs of the share payload.
type ShareRequest struct {
	// Whether the caller's brain should be publicly reachable
	Share bool `json:"share" example:"true"`
}

// @Summary      Toggle sharing
// @Description  Enabling returns the live hash, minting one on first use; disabling revokes it
// @Tags         brain
// @Accept       json
// @Produce      json
// @Param        body  body   ShareRequest  true  "Share payload"
// @Success      200   {object}  map[string]string  "hash or message"
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/v1/brain/share [post]
// @Security     BearerAuth
func (h *Handler) shareBrain(c *gin.Context) {
	uid, ok := h.mustUserID(c)
	if !ok {
		return
	}

	var req shareRequest
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}

	hash, err := h.services.Sharing.SetSharing(c.Request.Context(), uid, *req.Share)
	if err != nil {
		h.respondError(c, err)
		return
	}

	if hash == "" {
		c.JSON(http.StatusOK, gin.H{"message": msgLinkRemoved})
		return
	}
	c.JSON(http.StatusOK, gin.H{"hash": hash})
}

// @Summary      View a shared brain
// @Description  Resolves a public share hash to the owner's username and content
// @Tags         brain
// @Produce      json
// @Param        shareLink  path  string  true  "Share hash"
// @Success      200  {object}  service.SharedBrain
// @Failure      411  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/brain/{shareLink} [get]
func (h *Handler) resolveBrain(c *gin.Context) {
	brain, err := h.services.Sharing.Resolve(c.Request.Context(), c.Param("shareLink"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, brain)
}
