package web

import (
	"context"
	"fmt"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
)

// Context carries the request scoped values handlers work with. Ctx is the
// context claims are attached to; repositories read it through CheckClaims.
type Context struct {
	*gin.Context
	Ctx     context.Context
	Request *http.Request

	queryErrors map[string]string
	paramErrors map[string]string
}

func NewContext(c *gin.Context) *Context {
	return &Context{
		Context:     c,
		Ctx:         c.Request.Context(),
		Request:     c.Request,
		queryErrors: map[string]string{},
		paramErrors: map[string]string{},
	}
}

// BindFunc binds the json body into obj and checks the named fields are set.
func (c *Context) BindFunc(obj interface{}, requiredFields ...string) error {
	if err := c.ShouldBindJSON(obj); err != nil {
		return NewRequestError(errors.Wrap(err, "binding request body"), http.StatusBadRequest)
	}

	fields := map[string]string{}
	v := reflect.ValueOf(obj)
	for v.Kind() == reflect.Ptr {
		v = v.Elem()
	}
	for _, name := range requiredFields {
		f := v.FieldByName(name)
		if !f.IsValid() {
			continue
		}
		if f.Kind() == reflect.Ptr && f.IsNil() || f.Kind() != reflect.Ptr && f.IsZero() {
			fields[name] = "required field"
		}
	}
	if len(fields) > 0 {
		return NewValidationError(errors.New("required fields are missing"), http.StatusBadRequest, fields)
	}

	return nil
}

// GetQueryFunc reads an optional typed query parameter. A missing parameter
// yields a typed nil pointer, a malformed one is recorded for ValidQuery.
func (c *Context) GetQueryFunc(kind reflect.Kind, name string) interface{} {
	value, ok := c.GetQuery(name)

	switch kind {
	case reflect.Int:
		if !ok {
			return (*int)(nil)
		}
		n, err := strconv.Atoi(value)
		if err != nil {
			c.queryErrors[name] = "must be an integer"
			return (*int)(nil)
		}
		return &n
	case reflect.String:
		if !ok {
			return (*string)(nil)
		}
		return &value
	case reflect.Bool:
		if !ok {
			return (*bool)(nil)
		}
		b, err := strconv.ParseBool(value)
		if err != nil {
			c.queryErrors[name] = "must be a boolean"
			return (*bool)(nil)
		}
		return &b
	}

	c.queryErrors[name] = fmt.Sprintf("unsupported query kind %s", kind)
	return nil
}

// GetParam reads a typed path parameter. Failures are recorded for ValidParam.
func (c *Context) GetParam(kind reflect.Kind, name string) interface{} {
	value := c.Param(name)

	switch kind {
	case reflect.Int:
		n, err := strconv.Atoi(value)
		if err != nil {
			c.paramErrors[name] = "must be an integer"
			return 0
		}
		return n
	case reflect.String:
		return value
	}

	c.paramErrors[name] = fmt.Sprintf("unsupported param kind %s", kind)
	return nil
}

func (c *Context) ValidQuery() error {
	if len(c.queryErrors) == 0 {
		return nil
	}
	return NewValidationError(errors.New("invalid query parameters"), http.StatusBadRequest, c.queryErrors)
}

func (c *Context) ValidParam() error {
	if len(c.paramErrors) == 0 {
		return nil
	}
	return NewValidationError(errors.New("invalid path parameters"), http.StatusBadRequest, c.paramErrors)
}

func (c *Context) Respond(data interface{}, status int) error {
	c.JSON(status, data)
	return nil
}

// RespondError writes the error response. *web.Error carries its own status,
// anything else is an internal error with the text hidden from the client.
func (c *Context) RespondError(err error) error {
	var e *Error
	if errors.As(err, &e) {
		body := gin.H{
			"error":  e.Err.Error(),
			"status": false,
		}
		if len(e.Fields) > 0 {
			body["fields"] = e.Fields
		}
		c.JSON(e.Status, body)
		return err
	}

	c.JSON(http.StatusInternalServerError, gin.H{
		"error":  "internal server error",
		"status": false,
	})
	return err
}

// RequestPath is used by file handlers that need the raw trailing path.
func (c *Context) RequestPath(prefix string) string {
	return strings.TrimPrefix(c.Request.URL.Path, prefix)
}
