package api

import (
	"context"
	"errors"
	"net/http"

	resdto "foodloop-server/internal/handler/dto/response"
	"foodloop-server/internal/handler/httperr"
	"foodloop-server/internal/handler/middleware"
	"foodloop-server/internal/infra"
	"foodloop-server/internal/usecase/commands"
	"foodloop-server/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type TradeHandler struct {
	tradeCommands commands.TradeCommands
	tradeQueries  queries.TradeQueries
}

func NewTradeHandler(tradeCommands commands.TradeCommands, tradeQueries queries.TradeQueries) *TradeHandler {
	return &TradeHandler{
		tradeCommands: tradeCommands,
		tradeQueries:  tradeQueries,
	}
}

// @Summary Get trade detail
// @Tags trades
// @Produce json
// @Security BearerAuth
// @Param id path string true "Trade ID"
// @Success 200 {object} queries.TradeView
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /trades/{id} [get]
func (h *TradeHandler) GetTrade(c *gin.Context) {
	memberID, ok := middleware.GetMemberID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errMissingMember, "Internal server error", nil)
		return
	}

	tradeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid trade ID", nil)
		return
	}

	view, err := h.tradeQueries.GetByID(c.Request.Context(), memberID, tradeID)
	if err != nil {
		switch {
		case infra.IsKind(err, infra.KindNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Trade not found", nil)
		case errors.Is(err, queries.ErrNotTradeParty):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Not a party of this trade", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, view)
}

// @Summary Complete trade
// @Description Mark the handover as done. Completing twice is a no-op.
// @Tags trades
// @Produce json
// @Security BearerAuth
// @Param id path string true "Trade ID"
// @Success 200 {object} resdto.TradeResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /trades/{id}/complete [post]
func (h *TradeHandler) CompleteTrade(c *gin.Context) {
	h.transition(c, h.tradeCommands.CompleteTrade)
}

// @Summary Cancel trade
// @Description Cancel a matched trade, returning the reserved quantity to the
// share. Completed trades cannot be canceled.
// @Tags trades
// @Produce json
// @Security BearerAuth
// @Param id path string true "Trade ID"
// @Success 200 {object} resdto.TradeResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /trades/{id}/cancel [post]
func (h *TradeHandler) CancelTrade(c *gin.Context) {
	h.transition(c, h.tradeCommands.CancelTrade)
}

// @Summary List given trades
// @Description Trade history where the caller's store handed over inventory
// @Tags trades
// @Produce json
// @Security BearerAuth
// @Param after query string false "Pagination cursor"
// @Param limit query int false "Page size"
// @Success 200 {object} resdto.GivenTradeListResponse
// @Router /trades/given [get]
func (h *TradeHandler) ListGivenTrades(c *gin.Context) {
	memberID, ok := middleware.GetMemberID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errMissingMember, "Internal server error", nil)
		return
	}

	after, limit := paginationParams(c)
	items, next, err := h.tradeQueries.ListGiven(c.Request.Context(), memberID, after, limit)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid pagination cursor", nil)
		return
	}

	resp := resdto.GivenTradeListResponse{Items: items}
	if next != nil {
		resp.NextCursor = &next.After
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary List received trades
// @Description Trade history where the caller's store received inventory
// @Tags trades
// @Produce json
// @Security BearerAuth
// @Param after query string false "Pagination cursor"
// @Param limit query int false "Page size"
// @Success 200 {object} resdto.ReceivedTradeListResponse
// @Router /trades/received [get]
func (h *TradeHandler) ListReceivedTrades(c *gin.Context) {
	memberID, ok := middleware.GetMemberID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errMissingMember, "Internal server error", nil)
		return
	}

	after, limit := paginationParams(c)
	items, next, err := h.tradeQueries.ListReceived(c.Request.Context(), memberID, after, limit)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid pagination cursor", nil)
		return
	}

	resp := resdto.ReceivedTradeListResponse{Items: items}
	if next != nil {
		resp.NextCursor = &next.After
	}
	c.JSON(http.StatusOK, resp)
}

func (h *TradeHandler) transition(c *gin.Context, op func(ctx context.Context, memberID, tradeID uuid.UUID) (*commands.TradeResult, error)) {
	memberID, ok := middleware.GetMemberID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errMissingMember, "Internal server error", nil)
		return
	}

	tradeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid trade ID", nil)
		return
	}

	result, err := op(c.Request.Context(), memberID, tradeID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrTradeNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Trade not found", nil)
		case errors.Is(err, commands.ErrStoreNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Store not found", nil)
		case errors.Is(err, commands.ErrClaimNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Claim not found", nil)
		case errors.Is(err, commands.ErrShareNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Share not found", nil)
		case errors.Is(err, commands.ErrNotResourceOwner):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Not a party of this trade", nil)
		case errors.Is(err, commands.ErrCompletedTradeCancel):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Completed trade cannot be canceled", nil)
		case errors.Is(err, commands.ErrLockContention):
			httperr.AbortWithError(c, http.StatusConflict, err, "Resource busy, try again", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromTradeResult(result))
}
