package api

import (
	"context"
	"errors"
	"net/http"

	reqdto "foodloop-server/internal/handler/dto/request"
	resdto "foodloop-server/internal/handler/dto/response"
	"foodloop-server/internal/handler/httperr"
	"foodloop-server/internal/handler/middleware"
	"foodloop-server/internal/usecase/commands"
	"foodloop-server/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ClaimHandler struct {
	claimCommands commands.ClaimCommands
	claimQueries  queries.ClaimQueries
}

func NewClaimHandler(claimCommands commands.ClaimCommands, claimQueries queries.ClaimQueries) *ClaimHandler {
	return &ClaimHandler{
		claimCommands: claimCommands,
		claimQueries:  claimQueries,
	}
}

type createClaimRequest struct {
	WishID  uuid.UUID `json:"wish_id" binding:"required"`
	ShareID uuid.UUID `json:"share_id" binding:"required"`
}

// @Summary Create claim
// @Description File a claim for a share on behalf of the caller's wish
// @Tags claims
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body createClaimRequest true "Claim request"
// @Success 201 {object} resdto.ClaimResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /claims [post]
func (h *ClaimHandler) CreateClaim(c *gin.Context) {
	memberID, ok := middleware.GetMemberID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errMissingMember, "Internal server error", nil)
		return
	}

	var req createClaimRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.claimCommands.CreateClaim(c.Request.Context(), memberID, req.WishID, req.ShareID)
	if err != nil {
		h.respondClaimError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromClaimResult(result))
}

// @Summary Quick claim
// @Description Claim a listed share directly; the backing wish is created in
// the same transaction.
// @Tags claims
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.QuickClaimRequest true "Quick claim request"
// @Success 201 {object} resdto.ClaimResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /claims/quick [post]
func (h *ClaimHandler) QuickClaim(c *gin.Context) {
	memberID, ok := middleware.GetMemberID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errMissingMember, "Internal server error", nil)
		return
	}

	var req reqdto.QuickClaimRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.claimCommands.QuickClaim(c.Request.Context(), memberID, req)
	if err != nil {
		h.respondClaimError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromClaimResult(result))
}

// @Summary Accept claim
// @Description Accept a pending claim on the caller's share. Insufficient
// stock rejects the claim rather than failing the request.
// @Tags claims
// @Produce json
// @Security BearerAuth
// @Param id path string true "Claim ID"
// @Success 200 {object} resdto.ClaimResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /claims/{id}/accept [post]
func (h *ClaimHandler) AcceptClaim(c *gin.Context) {
	h.decide(c, h.claimCommands.AcceptClaim)
}

// @Summary Reject claim
// @Tags claims
// @Produce json
// @Security BearerAuth
// @Param id path string true "Claim ID"
// @Success 200 {object} resdto.ClaimResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /claims/{id}/reject [post]
func (h *ClaimHandler) RejectClaim(c *gin.Context) {
	h.decide(c, h.claimCommands.RejectClaim)
}

// @Summary Cancel claim
// @Description Cancel the caller's own pending claim. Accepted claims must be
// unwound through their trade.
// @Tags claims
// @Produce json
// @Security BearerAuth
// @Param id path string true "Claim ID"
// @Success 200 {object} resdto.ClaimResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /claims/{id}/cancel [post]
func (h *ClaimHandler) CancelClaim(c *gin.Context) {
	h.decide(c, h.claimCommands.CancelClaim)
}

// @Summary List sent claims
// @Tags claims
// @Produce json
// @Security BearerAuth
// @Param after query string false "Pagination cursor"
// @Param limit query int false "Page size"
// @Success 200 {object} resdto.SentClaimListResponse
// @Router /claims/sent [get]
func (h *ClaimHandler) ListSentClaims(c *gin.Context) {
	memberID, ok := middleware.GetMemberID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errMissingMember, "Internal server error", nil)
		return
	}

	after, limit := paginationParams(c)
	items, next, err := h.claimQueries.ListSent(c.Request.Context(), memberID, after, limit)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid pagination cursor", nil)
		return
	}

	resp := resdto.SentClaimListResponse{Items: items}
	if next != nil {
		resp.NextCursor = &next.After
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary List received claims
// @Tags claims
// @Produce json
// @Security BearerAuth
// @Param after query string false "Pagination cursor"
// @Param limit query int false "Page size"
// @Success 200 {object} resdto.ReceivedClaimListResponse
// @Router /claims/received [get]
func (h *ClaimHandler) ListReceivedClaims(c *gin.Context) {
	memberID, ok := middleware.GetMemberID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errMissingMember, "Internal server error", nil)
		return
	}

	after, limit := paginationParams(c)
	items, next, err := h.claimQueries.ListReceived(c.Request.Context(), memberID, after, limit)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid pagination cursor", nil)
		return
	}

	resp := resdto.ReceivedClaimListResponse{Items: items}
	if next != nil {
		resp.NextCursor = &next.After
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ClaimHandler) decide(c *gin.Context, op func(ctx context.Context, memberID, claimID uuid.UUID) (*commands.ClaimResult, error)) {
	memberID, ok := middleware.GetMemberID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errMissingMember, "Internal server error", nil)
		return
	}

	claimID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid claim ID", nil)
		return
	}

	result, err := op(c.Request.Context(), memberID, claimID)
	if err != nil {
		h.respondClaimError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromClaimResult(result))
}

func (h *ClaimHandler) respondClaimError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrWishNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Wish not found", nil)
	case errors.Is(err, commands.ErrShareNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Share not found", nil)
	case errors.Is(err, commands.ErrClaimNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Claim not found", nil)
	case errors.Is(err, commands.ErrStoreNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Store not found", nil)
	case errors.Is(err, commands.ErrDuplicateClaim):
		httperr.AbortWithError(c, http.StatusConflict, err, "Claim already exists for this wish and share", nil)
	case errors.Is(err, commands.ErrWishClosed):
		httperr.AbortWithError(c, http.StatusConflict, err, "Wish is closed", nil)
	case errors.Is(err, commands.ErrSelfClaim):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Cannot claim your own share", nil)
	case errors.Is(err, commands.ErrNotResourceOwner):
		httperr.AbortWithError(c, http.StatusForbidden, err, "Not allowed", nil)
	case errors.Is(err, commands.ErrAcceptedClaimCancel):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Accepted claim must be canceled through its trade", nil)
	case errors.Is(err, commands.ErrLockContention):
		httperr.AbortWithError(c, http.StatusConflict, err, "Resource busy, try again", nil)
	case errors.Is(err, commands.ErrDomainValidation):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Validation failed", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
