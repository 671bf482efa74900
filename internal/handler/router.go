package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"foodloop-server/internal/handler/api"
	"foodloop-server/internal/handler/middleware"
	"foodloop-server/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	wishHandler *api.WishHandler,
	shareHandler *api.ShareHandler,
	claimHandler *api.ClaimHandler,
	tradeHandler *api.TradeHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, wishHandler, shareHandler, claimHandler, tradeHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	wishHandler *api.WishHandler,
	shareHandler *api.ShareHandler,
	claimHandler *api.ClaimHandler,
	tradeHandler *api.TradeHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	apiGroup.Use(authMiddleware.RequireAuth())
	{
		wishes := apiGroup.Group("/wishes")
		addRoutes(wishes, []route{
			{Method: http.MethodPost, Path: "", Handler: wishHandler.CreateWish},
			{Method: http.MethodGet, Path: "/:id/matches", Handler: wishHandler.ListMatches},
		})

		shares := apiGroup.Group("/shares")
		addRoutes(shares, []route{
			{Method: http.MethodPost, Path: "", Handler: shareHandler.CreateShare},
			{Method: http.MethodDelete, Path: "/:id", Handler: shareHandler.DeleteShare},
		})

		claims := apiGroup.Group("/claims")
		addRoutes(claims, []route{
			{Method: http.MethodPost, Path: "", Handler: claimHandler.CreateClaim},
			{Method: http.MethodPost, Path: "/quick", Handler: claimHandler.QuickClaim},
			{Method: http.MethodGet, Path: "/sent", Handler: claimHandler.ListSentClaims},
			{Method: http.MethodGet, Path: "/received", Handler: claimHandler.ListReceivedClaims},
			{Method: http.MethodPost, Path: "/:id/accept", Handler: claimHandler.AcceptClaim},
			{Method: http.MethodPost, Path: "/:id/reject", Handler: claimHandler.RejectClaim},
			{Method: http.MethodPost, Path: "/:id/cancel", Handler: claimHandler.CancelClaim},
		})

		trades := apiGroup.Group("/trades")
		addRoutes(trades, []route{
			{Method: http.MethodGet, Path: "/given", Handler: tradeHandler.ListGivenTrades},
			{Method: http.MethodGet, Path: "/received", Handler: tradeHandler.ListReceivedTrades},
			{Method: http.MethodGet, Path: "/:id", Handler: tradeHandler.GetTrade},
			{Method: http.MethodPost, Path: "/:id/complete", Handler: tradeHandler.CompleteTrade},
			{Method: http.MethodPost, Path: "/:id/cancel", Handler: tradeHandler.CancelTrade},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
