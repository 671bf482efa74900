package api

import (
	"strconv"

	"foodloop-server/internal/pkg/errs"
	"foodloop-server/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

// Only reachable when a route skips RequireAuth; treated as a server bug.
var errMissingMember = errs.New("member id missing from context")

func paginationParams(c *gin.Context) (*queries.Cursor, int) {
	var after *queries.Cursor
	if cursor := c.Query("after"); cursor != "" {
		after = &queries.Cursor{After: cursor}
	}

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			limit = parsed
		}
	}
	return after, limit
}
