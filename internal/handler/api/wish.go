package api

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	reqdto "foodloop-server/internal/handler/dto/request"
	resdto "foodloop-server/internal/handler/dto/response"
	"foodloop-server/internal/handler/httperr"
	"foodloop-server/internal/handler/middleware"
	"foodloop-server/internal/infra"
	"foodloop-server/internal/usecase/commands"
	"foodloop-server/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type WishHandler struct {
	wishCommands commands.WishCommands
	matchQueries queries.MatchQueries
}

func NewWishHandler(wishCommands commands.WishCommands, matchQueries queries.MatchQueries) *WishHandler {
	return &WishHandler{
		wishCommands: wishCommands,
		matchQueries: matchQueries,
	}
}

// @Summary Create wish
// @Description Register a wish and return the first page of matching shares
// @Tags wishes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateWishRequest true "Wish request"
// @Success 201 {object} resdto.CreateWishResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /wishes [post]
func (h *WishHandler) CreateWish(c *gin.Context) {
	memberID, ok := middleware.GetMemberID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errMissingMember, "Internal server error", nil)
		return
	}

	var req reqdto.CreateWishRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	wishID, err := h.wishCommands.CreateWish(c.Request.Context(), memberID, req)
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

	// The wish stands even when its first match query fails
	matches, err := h.matchQueries.ListMatches(c.Request.Context(), wishID, 1, queries.DefaultMatchPageSize)
	if err != nil {
		slog.Warn("initial match lookup failed", "wish_id", wishID, "error", err.Error())
		matches = nil
	}

	c.JSON(http.StatusCreated, resdto.CreateWishResponse{
		WishID:  wishID,
		Matches: matches,
	})
}

// @Summary List matches for a wish
// @Tags wishes
// @Produce json
// @Security BearerAuth
// @Param id path string true "Wish ID"
// @Param page query int false "Page number (1-based)"
// @Param size query int false "Page size"
// @Success 200 {object} resdto.MatchListResponse
// @Failure 404 {object} httperr.Response
// @Router /wishes/{id}/matches [get]
func (h *WishHandler) ListMatches(c *gin.Context) {
	if _, ok := middleware.GetMemberID(c); !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errMissingMember, "Internal server error", nil)
		return
	}

	wishID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid wish ID", nil)
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(c.DefaultQuery("size", strconv.Itoa(queries.DefaultMatchPageSize)))

	items, err := h.matchQueries.ListMatches(c.Request.Context(), wishID, page, size)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Wish not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.MatchListResponse{
		Items: items,
		Page:  page,
		Size:  size,
	})
}
