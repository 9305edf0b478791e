package dashboard

import (
	"net/http"
	"reflect"
	"time"

	"bizops/backend/foundation/web"
)

type Controller struct {
	dashboard Dashboard
}

func NewController(dashboard Dashboard) *Controller {
	return &Controller{dashboard}
}

func monthYear(c *web.Context) (int, int) {
	now := time.Now()
	month, year := int(now.Month()), now.Year()

	if m, ok := c.GetQueryFunc(reflect.Int, "month").(*int); ok && m != nil {
		month = *m
	}
	if y, ok := c.GetQueryFunc(reflect.Int, "year").(*int); ok && y != nil {
		year = *y
	}

	return month, year
}

func (uc Controller) GetMetrics(c *web.Context) error {
	month, year := monthYear(c)

	if err := c.ValidQuery(); err != nil {
		return c.RespondError(err)
	}

	response, err := uc.dashboard.GetMetrics(c.Ctx, month, year)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   response,
		"status": true,
	}, http.StatusOK)
}

func (uc Controller) GetCharts(c *web.Context) error {
	month, year := monthYear(c)

	if err := c.ValidQuery(); err != nil {
		return c.RespondError(err)
	}

	response, err := uc.dashboard.GetCharts(c.Ctx, month, year)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   response,
		"status": true,
	}, http.StatusOK)
}
