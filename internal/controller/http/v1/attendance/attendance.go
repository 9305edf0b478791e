package attendance

import (
	"fmt"
	"net/http"
	"reflect"
	"time"

	"bizops/backend/foundation/web"
	"bizops/backend/internal/repository/postgres/attendance"
	"bizops/backend/internal/service"
)

type Controller struct {
	attendance Attendance
}

func NewController(attendance Attendance) *Controller {
	return &Controller{attendance}
}

// Today returns the caller's attendance row for the current work day.
func (uc Controller) Today(c *web.Context) error {
	response, err := uc.attendance.Today(c.Ctx)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   response,
		"status": true,
	}, http.StatusOK)
}

func (uc Controller) ClockIn(c *web.Context) error {
	response, err := uc.attendance.ClockIn(c.Ctx)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   response,
		"status": true,
	}, http.StatusOK)
}

func (uc Controller) ClockOut(c *web.Context) error {
	response, err := uc.attendance.ClockOut(c.Ctx)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   response,
		"status": true,
	}, http.StatusOK)
}

func (uc Controller) UpdateStatus(c *web.Context) error {
	id := c.GetParam(reflect.Int, "id").(int)

	if err := c.ValidParam(); err != nil {
		return c.RespondError(err)
	}

	var request attendance.UpdateStatusRequest

	if err := c.BindFunc(&request, "Status"); err != nil {
		return c.RespondError(err)
	}

	request.ID = id

	err := uc.attendance.UpdateStatus(c.Ctx, request)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   "ok!",
		"status": true,
	}, http.StatusOK)
}

func (uc Controller) GetList(c *web.Context) error {
	var filter attendance.Filter

	if limit, ok := c.GetQueryFunc(reflect.Int, "limit").(*int); ok {
		filter.Limit = limit
	}
	if offset, ok := c.GetQueryFunc(reflect.Int, "offset").(*int); ok {
		filter.Offset = offset
	}
	if page, ok := c.GetQueryFunc(reflect.Int, "page").(*int); ok {
		filter.Page = page
	}
	if search, ok := c.GetQueryFunc(reflect.String, "search").(*string); ok {
		filter.Search = search
	}
	if groupID, ok := c.GetQueryFunc(reflect.Int, "group_id").(*int); ok {
		filter.GroupID = groupID
	}
	if status, ok := c.GetQueryFunc(reflect.String, "status").(*string); ok {
		filter.Status = status
	}
	if date, ok := c.GetQueryFunc(reflect.String, "date").(*string); ok {
		filter.Date = date
	}

	if err := c.ValidQuery(); err != nil {
		return c.RespondError(err)
	}

	list, count, err := uc.attendance.GetList(c.Ctx, filter)
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

	response, err := uc.attendance.GetById(c.Ctx, id)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   response,
		"status": true,
	}, http.StatusOK)
}

func (uc Controller) ExportExcel(c *web.Context) error {
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

	rows, err := uc.attendance.GetMonthRows(c.Ctx, year, time.Month(month))
	if err != nil {
		return c.RespondError(err)
	}

	fileName := fmt.Sprintf("statics/attendance-%d-%02d.xlsx", year, month)
	if err := service.WriteAttendanceExcel(rows, fileName); err != nil {
		return c.RespondError(err)
	}

	c.File(fileName)
	return nil
}

func (uc Controller) Delete(c *web.Context) error {
	id := c.GetParam(reflect.Int, "id").(int)

	if err := c.ValidParam(); err != nil {
		return c.RespondError(err)
	}

	err := uc.attendance.Delete(c.Ctx, id)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   "ok!",
		"status": true,
	}, http.StatusOK)
}
