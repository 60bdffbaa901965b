package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
)

const (
	defaultPageLimit = 50
	maxPageLimit     = 100
)

// pagination carries the validated skip/limit pair shared by all list
// endpoints.
type pagination struct {
	Skip  int64
	Limit int64
}

// parsePagination reads the skip and limit query parameters. Missing
// values fall back to defaults; malformed or out-of-range values are
// rejected with 422 rather than silently clamped.
func parsePagination(c echo.Context) (pagination, error) {
	p := pagination{Skip: 0, Limit: defaultPageLimit}

	if raw := c.QueryParam("skip"); raw != "" {
		skip, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || skip < 0 {
			return p, echo.NewHTTPError(http.StatusUnprocessableEntity, "skip must be a non-negative integer")
		}
		p.Skip = skip
	}

	if raw := c.QueryParam("limit"); raw != "" {
		limit, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || limit < 1 || limit > maxPageLimit {
			return p, echo.NewHTTPError(http.StatusUnprocessableEntity, "limit must be between 1 and 100")
		}
		p.Limit = limit
	}

	return p, nil
}
