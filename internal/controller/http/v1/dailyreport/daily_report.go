package dailyreport

import (
	"net/http"
	"reflect"
	"time"

	"bizops/backend/foundation/web"
	"bizops/backend/internal/repository/postgres/dailyreport"
	"bizops/backend/internal/service/period"

	"github.com/pkg/errors"
)

type Controller struct {
	dailyReport DailyReport
}

func NewController(dailyReport DailyReport) *Controller {
	return &Controller{dailyReport}
}

// Submit records a shift report. Reports are append-only; there is no update
// or delete route.
func (uc Controller) Submit(c *web.Context) error {
	var request dailyreport.SubmitRequest

	if err := c.BindFunc(&request, "ReportDate", "Shift", "GroupID", "StartingSales", "EndingSales"); err != nil {
		return c.RespondError(err)
	}

	response, err := uc.dailyReport.Submit(c.Ctx, request)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   response,
		"status": true,
	}, http.StatusOK)
}

// PreviousClosing returns the closing balance the next shift should open
// with, so the form can prefill it.
func (uc Controller) PreviousClosing(c *web.Context) error {
	var request dailyreport.PreviousClosingRequest

	if groupID, ok := c.GetQueryFunc(reflect.Int, "group_id").(*int); ok && groupID != nil {
		request.GroupID = *groupID
	}
	if reportDate, ok := c.GetQueryFunc(reflect.String, "report_date").(*string); ok && reportDate != nil {
		request.ReportDate = *reportDate
	}
	if shift, ok := c.GetQueryFunc(reflect.Int, "shift").(*int); ok && shift != nil {
		request.Shift = *shift
	}

	if err := c.ValidQuery(); err != nil {
		return c.RespondError(err)
	}

	if request.GroupID == 0 || request.ReportDate == "" || !period.ValidShift(request.Shift) {
		return c.RespondError(web.NewValidationError(
			errors.New("group_id, report_date and shift are required"), http.StatusBadRequest,
			map[string]string{
				"group_id":    "required",
				"report_date": "required",
				"shift":       "must be 1, 2 or 3",
			}))
	}

	response, err := uc.dailyReport.PreviousClosing(c.Ctx, request)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   response,
		"status": true,
	}, http.StatusOK)
}

func (uc Controller) GetList(c *web.Context) error {
	var filter dailyreport.Filter

	if limit, ok := c.GetQueryFunc(reflect.Int, "limit").(*int); ok {
		filter.Limit = limit
	}
	if offset, ok := c.GetQueryFunc(reflect.Int, "offset").(*int); ok {
		filter.Offset = offset
	}
	if page, ok := c.GetQueryFunc(reflect.Int, "page").(*int); ok {
		filter.Page = page
	}
	if groupID, ok := c.GetQueryFunc(reflect.Int, "group_id").(*int); ok {
		filter.GroupID = groupID
	}
	if employeeID, ok := c.GetQueryFunc(reflect.Int, "employee_id").(*int); ok {
		filter.EmployeeID = employeeID
	}
	if dateFrom, ok := c.GetQueryFunc(reflect.String, "date_from").(*string); ok {
		filter.DateFrom = dateFrom
	}
	if dateTo, ok := c.GetQueryFunc(reflect.String, "date_to").(*string); ok {
		filter.DateTo = dateTo
	}
	if shift, ok := c.GetQueryFunc(reflect.Int, "shift").(*int); ok {
		filter.Shift = shift
	}

	if err := c.ValidQuery(); err != nil {
		return c.RespondError(err)
	}

	list, count, err := uc.dailyReport.GetList(c.Ctx, filter)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data": map[string]interface{}{
			"results": list,
			"count":   count,
		},
		"status": true,
	}, http.StatusOK)
}

func (uc Controller) GetDetailById(c *web.Context) error {
	id := c.GetParam(reflect.Int, "id").(int)

	if err := c.ValidParam(); err != nil {
		return c.RespondError(err)
	}

	response, err := uc.dailyReport.GetById(c.Ctx, id)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   response,
		"status": true,
	}, http.StatusOK)
}

// SalesTrend returns day-by-day sales for a month, defaulting to the current
// one.
func (uc Controller) SalesTrend(c *web.Context) error {
	now := time.Now()
	month, year := int(now.Month()), now.Year()

	if m, ok := c.GetQueryFunc(reflect.Int, "month").(*int); ok && m != nil {
		month = *m
	}
	if y, ok := c.GetQueryFunc(reflect.Int, "year").(*int); ok && y != nil {
		year = *y
	}

	if err := c.ValidQuery(); err != nil {
		return c.RespondError(err)
	}

	start, end := period.MonthBounds(time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC))

	list, err := uc.dailyReport.SalesTrend(c.Ctx, start, end)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   list,
		"status": true,
	}, http.StatusOK)
}
