//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"foodloop-server/internal/handler/api"
	"foodloop-server/internal/infra"
	"foodloop-server/internal/usecase/commands"
	"foodloop-server/internal/usecase/queries"
	"foodloop-server/tests/common/httptest"
	commandsmock "foodloop-server/tests/mock/commands"
	queriesmock "foodloop-server/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type TradeHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockTradeCommands
	mockQueries  *queriesmock.MockTradeQueries
	handler      *api.TradeHandler
	memberID     uuid.UUID
}

func (s *TradeHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockTradeCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockTradeQueries(s.mockCtrl)
	s.handler = api.NewTradeHandler(s.mockCommands, s.mockQueries)
	s.memberID = uuid.New()

	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("member_id", s.memberID)
		c.Next()
	}

	s.router.GET("/trades/given", authMiddleware, s.handler.ListGivenTrades)
	s.router.GET("/trades/received", authMiddleware, s.handler.ListReceivedTrades)
	s.router.GET("/trades/:id", authMiddleware, s.handler.GetTrade)
	s.router.POST("/trades/:id/complete", authMiddleware, s.handler.CompleteTrade)
	s.router.POST("/trades/:id/cancel", authMiddleware, s.handler.CancelTrade)
}

func (s *TradeHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestTradeHandlerSuite(t *testing.T) {
	suite.Run(t, new(TradeHandlerTestSuite))
}

// ================================================================================
// TestGetTrade
// ================================================================================

func (s *TradeHandlerTestSuite) TestGetTrade() {
	tradeID := uuid.New()
	url := "/trades/" + tradeID.String()

	s.Run("success: returns the detail view", func() {
		view := &queries.TradeView{
			TradeID:  tradeID,
			ClaimID:  uuid.New(),
			Status:   "MATCHED",
			ItemName: "tomato",
			Quantity: 3,
			Partner:  queries.StoreInfo{Name: "giver mart"},
		}
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.memberID, tradeID).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(tradeID.String(), body["trade_id"])
		s.Equal("MATCHED", body["status"])
	})

	s.Run("error: 403 when the caller is not a party", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.memberID, tradeID).
			Return(nil, queries.ErrNotTradeParty).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "")
	})

	s.Run("error: 404 on unknown trade", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.memberID, tradeID).
			Return(nil, infra.WrapRepoErr("trade not found", nil, infra.KindNotFound)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "")
	})
}

// ================================================================================
// TestListTrades
// ================================================================================

func (s *TradeHandlerTestSuite) TestListTrades() {
	s.Run("success: given trades with a next cursor", func() {
		next := &queries.Cursor{After: "v1:12345-" + uuid.New().String()}
		items := []*queries.GivenTradeItem{{TradeID: uuid.New(), Status: "COMPLETED"}}
		s.mockQueries.EXPECT().ListGiven(gomock.Any(), s.memberID, nil, 0).
			Return(items, next, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/trades/given", nil, "bearer-token")

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(next.After, body["nextCursor"])
		s.Len(body["items"], 1)
	})

	s.Run("success: received trades pass cursor and limit through", func() {
		after := &queries.Cursor{After: "v1:12345-" + uuid.New().String()}
		s.mockQueries.EXPECT().ListReceived(gomock.Any(), s.memberID, after, 5).
			Return([]*queries.ReceivedTradeItem{}, nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/trades/received?after="+after.After+"&limit=5", nil, "bearer-token")

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.NotContains(body, "nextCursor")
	})

	s.Run("error: 400 on an invalid cursor", func() {
		s.mockQueries.EXPECT().ListGiven(gomock.Any(), s.memberID, gomock.Any(), gomock.Any()).
			Return(nil, nil, errors.New("invalid cursor encoding")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/trades/given?after=garbage", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid pagination cursor")
	})
}

// ================================================================================
// TestCompleteTrade
// ================================================================================

func (s *TradeHandlerTestSuite) TestCompleteTrade() {
	tradeID := uuid.New()
	url := "/trades/" + tradeID.String() + "/complete"

	s.Run("success: returns 200 with COMPLETED status", func() {
		completedAt := time.Now().UTC()
		result := &commands.TradeResult{
			TradeID:     tradeID,
			ClaimID:     uuid.New(),
			Status:      "COMPLETED",
			CompletedAt: &completedAt,
		}
		s.mockCommands.EXPECT().CompleteTrade(gomock.Any(), s.memberID, tradeID).
			Return(result, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("COMPLETED", body["status"])
	})

	s.Run("error: 404 on unknown trade", func() {
		s.mockCommands.EXPECT().CompleteTrade(gomock.Any(), s.memberID, tradeID).
			Return(nil, commands.ErrTradeNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Trade not found")
	})

	s.Run("error: 403 for a stranger", func() {
		s.mockCommands.EXPECT().CompleteTrade(gomock.Any(), s.memberID, tradeID).
			Return(nil, commands.ErrNotResourceOwner).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "")
	})
}

// ================================================================================
// TestCancelTrade
// ================================================================================

func (s *TradeHandlerTestSuite) TestCancelTrade() {
	tradeID := uuid.New()
	url := "/trades/" + tradeID.String() + "/cancel"

	s.Run("success: returns 200 with CANCELED status", func() {
		canceledAt := time.Now().UTC()
		result := &commands.TradeResult{
			TradeID:    tradeID,
			ClaimID:    uuid.New(),
			Status:     "CANCELED",
			CanceledAt: &canceledAt,
		}
		s.mockCommands.EXPECT().CancelTrade(gomock.Any(), s.memberID, tradeID).
			Return(result, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("CANCELED", body["status"])
	})

	s.Run("error: 400 when the trade is already completed", func() {
		s.mockCommands.EXPECT().CancelTrade(gomock.Any(), s.memberID, tradeID).
			Return(nil, commands.ErrCompletedTradeCancel).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: 400 on malformed trade id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/trades/not-a-uuid/cancel", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})
}
