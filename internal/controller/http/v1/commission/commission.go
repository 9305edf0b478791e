package commission

import (
	"fmt"
	"net/http"
	"reflect"
	"time"

	"bizops/backend/foundation/web"
	"bizops/backend/internal/repository/postgres/commission"
	"bizops/backend/internal/service"
)

type Controller struct {
	commission Commission
}

func NewController(commission Commission) *Controller {
	return &Controller{commission}
}

// monthYear reads the month/year pair, defaulting to the current month.
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

func (uc Controller) GetList(c *web.Context) error {
	var filter commission.Filter

	if limit, ok := c.GetQueryFunc(reflect.Int, "limit").(*int); ok {
		filter.Limit = limit
	}
	if offset, ok := c.GetQueryFunc(reflect.Int, "offset").(*int); ok {
		filter.Offset = offset
	}
	if page, ok := c.GetQueryFunc(reflect.Int, "page").(*int); ok {
		filter.Page = page
	}
	if employeeID, ok := c.GetQueryFunc(reflect.Int, "employee_id").(*int); ok {
		filter.EmployeeID = employeeID
	}
	if groupID, ok := c.GetQueryFunc(reflect.Int, "group_id").(*int); ok {
		filter.GroupID = groupID
	}
	if accountID, ok := c.GetQueryFunc(reflect.Int, "account_id").(*int); ok {
		filter.AccountID = accountID
	}
	if week, ok := c.GetQueryFunc(reflect.String, "period_week").(*string); ok {
		filter.PeriodWeek = week
	}
	if month, ok := c.GetQueryFunc(reflect.Int, "period_month").(*int); ok {
		filter.PeriodMonth = month
	}
	if year, ok := c.GetQueryFunc(reflect.Int, "period_year").(*int); ok {
		filter.PeriodYear = year
	}

	if err := c.ValidQuery(); err != nil {
		return c.RespondError(err)
	}

	list, count, err := uc.commission.GetList(c.Ctx, filter)
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

	response, err := uc.commission.GetById(c.Ctx, id)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   response,
		"status": true,
	}, http.StatusOK)
}

func (uc Controller) Create(c *web.Context) error {
	var request commission.CreateRequest

	if err := c.BindFunc(&request, "EmployeeID", "CommissionDate", "GrossCommission"); err != nil {
		return c.RespondError(err)
	}

	response, err := uc.commission.Create(c.Ctx, request)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   response,
		"status": true,
	}, http.StatusOK)
}

func (uc Controller) UpdateColumns(c *web.Context) error {
	id := c.GetParam(reflect.Int, "id").(int)

	if err := c.ValidParam(); err != nil {
		return c.RespondError(err)
	}

	var request commission.UpdateRequest

	if err := c.BindFunc(&request); err != nil {
		return c.RespondError(err)
	}

	request.ID = id

	err := uc.commission.UpdateColumns(c.Ctx, request)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   "ok!",
		"status": true,
	}, http.StatusOK)
}

func (uc Controller) Delete(c *web.Context) error {
	id := c.GetParam(reflect.Int, "id").(int)

	if err := c.ValidParam(); err != nil {
		return c.RespondError(err)
	}

	err := uc.commission.Delete(c.Ctx, id)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   "ok!",
		"status": true,
	}, http.StatusOK)
}

func (uc Controller) MonthSummary(c *web.Context) error {
	month, year := monthYear(c)

	if err := c.ValidQuery(); err != nil {
		return c.RespondError(err)
	}

	response, err := uc.commission.MonthSummary(c.Ctx, month, year)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   response,
		"status": true,
	}, http.StatusOK)
}

func (uc Controller) ExportExcel(c *web.Context) error {
	month, year := monthYear(c)

	if err := c.ValidQuery(); err != nil {
		return c.RespondError(err)
	}

	rows, err := uc.commission.GetExportRows(c.Ctx, month, year)
	if err != nil {
		return c.RespondError(err)
	}

	fileName := fmt.Sprintf("statics/commissions-%d-%02d.xlsx", year, month)
	if err := service.WriteCommissionExcel(rows, fileName); err != nil {
		return c.RespondError(err)
	}

	c.File(fileName)
	return nil
}

// Statement renders one employee's monthly commission statement as pdf.
func (uc Controller) Statement(c *web.Context) error {
	id := c.GetParam(reflect.Int, "id").(int)

	if err := c.ValidParam(); err != nil {
		return c.RespondError(err)
	}

	month, year := monthYear(c)

	if err := c.ValidQuery(); err != nil {
		return c.RespondError(err)
	}

	fullName, rows, err := uc.commission.GetStatementRows(c.Ctx, id, month, year)
	if err != nil {
		return c.RespondError(err)
	}

	fileName := fmt.Sprintf("statics/statement-%d-%d-%02d.pdf", id, year, month)
	if err := service.WriteCommissionStatement(fullName, month, year, rows, fileName); err != nil {
		return c.RespondError(err)
	}

	c.File(fileName)
	return nil
}
