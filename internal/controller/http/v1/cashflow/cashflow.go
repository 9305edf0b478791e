package cashflow

import (
	"net/http"
	"reflect"

	"bizops/backend/foundation/web"
	"bizops/backend/internal/repository/postgres/cashflow"
)

type Controller struct {
	cashflow Cashflow
}

func NewController(cashflow Cashflow) *Controller {
	return &Controller{cashflow}
}

func buildFilter(c *web.Context) cashflow.Filter {
	var filter cashflow.Filter

	if limit, ok := c.GetQueryFunc(reflect.Int, "limit").(*int); ok {
		filter.Limit = limit
	}
	if offset, ok := c.GetQueryFunc(reflect.Int, "offset").(*int); ok {
		filter.Offset = offset
	}
	if page, ok := c.GetQueryFunc(reflect.Int, "page").(*int); ok {
		filter.Page = page
	}
	if t, ok := c.GetQueryFunc(reflect.String, "type").(*string); ok {
		filter.Type = t
	}
	if category, ok := c.GetQueryFunc(reflect.String, "category").(*string); ok {
		filter.Category = category
	}
	if groupID, ok := c.GetQueryFunc(reflect.Int, "group_id").(*int); ok {
		filter.GroupID = groupID
	}
	if dateFrom, ok := c.GetQueryFunc(reflect.String, "date_from").(*string); ok {
		filter.DateFrom = dateFrom
	}
	if dateTo, ok := c.GetQueryFunc(reflect.String, "date_to").(*string); ok {
		filter.DateTo = dateTo
	}

	return filter
}

func (uc Controller) GetList(c *web.Context) error {
	filter := buildFilter(c)

	if err := c.ValidQuery(); err != nil {
		return c.RespondError(err)
	}

	list, count, err := uc.cashflow.GetList(c.Ctx, filter)
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

func (uc Controller) GetTotals(c *web.Context) error {
	filter := buildFilter(c)

	if err := c.ValidQuery(); err != nil {
		return c.RespondError(err)
	}

	totals, err := uc.cashflow.GetTotals(c.Ctx, filter)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   totals,
		"status": true,
	}, http.StatusOK)
}

func (uc Controller) GetDetailById(c *web.Context) error {
	id := c.GetParam(reflect.Int, "id").(int)

	if err := c.ValidParam(); err != nil {
		return c.RespondError(err)
	}

	response, err := uc.cashflow.GetById(c.Ctx, id)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   response,
		"status": true,
	}, http.StatusOK)
}

func (uc Controller) Create(c *web.Context) error {
	var request cashflow.CreateRequest

	if err := c.BindFunc(&request, "TransactionDate", "Type", "Amount"); err != nil {
		return c.RespondError(err)
	}

	response, err := uc.cashflow.Create(c.Ctx, request)
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

	var request cashflow.UpdateRequest

	if err := c.BindFunc(&request); err != nil {
		return c.RespondError(err)
	}

	request.ID = id

	err := uc.cashflow.UpdateColumns(c.Ctx, request)
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

	err := uc.cashflow.Delete(c.Ctx, id)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   "ok!",
		"status": true,
	}, http.StatusOK)
}
