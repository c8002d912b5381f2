package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dafatsq/ShuttleBook/internal/model"
)

// courtView is the catalog entry shape served to the selection page:
// the raw hourly rate plus the display string the summary card shows.
type courtView struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	PricePerHour int64  `json:"price_per_hour"`
	PriceDisplay string `json:"price_display"`
}

// ListCourts handles GET /api/courts.  The catalog is compiled in, so
// the response is constant and safe to cache.
func ListCourts(c echo.Context) error {
	out := make([]courtView, 0, len(model.Courts))
	for _, ct := range model.Courts {
		out = append(out, courtView{
			ID:           ct.ID,
			Name:         ct.Name,
			PricePerHour: ct.PricePerHour,
			PriceDisplay: model.FormatIDR(ct.PricePerHour),
		})
	}
	return c.JSON(http.StatusOK, echo.Map{"courts": out})
}
