package api

import (
	"errors"
	"net/http"

	reqdto "foodloop-server/internal/handler/dto/request"
	resdto "foodloop-server/internal/handler/dto/response"
	"foodloop-server/internal/handler/httperr"
	"foodloop-server/internal/handler/middleware"
	"foodloop-server/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ShareHandler struct {
	shareCommands commands.ShareCommands
}

func NewShareHandler(shareCommands commands.ShareCommands) *ShareHandler {
	return &ShareHandler{shareCommands: shareCommands}
}

// @Summary Create share
// @Description Offer surplus inventory for neighboring stores to claim
// @Tags shares
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateShareRequest true "Share request"
// @Success 201 {object} resdto.CreateShareResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /shares [post]
func (h *ShareHandler) CreateShare(c *gin.Context) {
	memberID, ok := middleware.GetMemberID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errMissingMember, "Internal server error", nil)
		return
	}

	var req reqdto.CreateShareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	shareID, err := h.shareCommands.CreateShare(c.Request.Context(), memberID, req)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrStoreNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Store not found", nil)
		case errors.Is(err, commands.ErrDomainValidation):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Validation failed", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.CreateShareResponse{ShareID: shareID})
}

// @Summary Delete share
// @Description Withdraw a share; pending claims against it are dropped. Shares
// with trade history cannot be deleted.
// @Tags shares
// @Produce json
// @Security BearerAuth
// @Param id path string true "Share ID"
// @Success 204
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /shares/{id} [delete]
func (h *ShareHandler) DeleteShare(c *gin.Context) {
	memberID, ok := middleware.GetMemberID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errMissingMember, "Internal server error", nil)
		return
	}

	shareID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid share ID", nil)
		return
	}

	if err := h.shareCommands.DeleteShare(c.Request.Context(), memberID, shareID); err != nil {
		switch {
		case errors.Is(err, commands.ErrShareNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Share not found", nil)
		case errors.Is(err, commands.ErrStoreNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Store not found", nil)
		case errors.Is(err, commands.ErrNotResourceOwner):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Not allowed", nil)
		case errors.Is(err, commands.ErrShareHasTradeHistory):
			httperr.AbortWithError(c, http.StatusConflict, err, "Share has trade history", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.Status(http.StatusNoContent)
}
