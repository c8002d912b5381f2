package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// ServerTime handles GET /api/time.  It returns the server's current
// time in milliseconds since epoch so clients can compute their clock
// drift and disable past slots against a trusted "now" instead of the
// local clock.
func ServerTime(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"now": time.Now().UnixMilli()})
}
