package web

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Handler is the application handler signature. Handlers return an error so
// middleware can short-circuit and the app can log failures in one place.
type Handler func(c *Context) error

// Middleware wraps a Handler with additional behaviour.
type Middleware func(Handler) Handler

// App is the thin layer over gin the whole api is built on.
type App struct {
	*gin.Engine
}

func NewApp() *App {
	return &App{Engine: gin.New()}
}

func (a *App) handle(method, path string, handler Handler, middlewares ...Middleware) {
	wrapped := handler
	for i := len(middlewares) - 1; i >= 0; i-- {
		wrapped = middlewares[i](wrapped)
	}

	a.Engine.Handle(method, path, func(c *gin.Context) {
		ctx := NewContext(c)
		if err := wrapped(ctx); err != nil {
			log.Println("handler error:", method, path, err)
		}
	})
}

func (a *App) Get(path string, handler Handler, middlewares ...Middleware) {
	a.handle(http.MethodGet, path, handler, middlewares...)
}

func (a *App) Post(path string, handler Handler, middlewares ...Middleware) {
	a.handle(http.MethodPost, path, handler, middlewares...)
}

func (a *App) Put(path string, handler Handler, middlewares ...Middleware) {
	a.handle(http.MethodPut, path, handler, middlewares...)
}

func (a *App) Patch(path string, handler Handler, middlewares ...Middleware) {
	a.handle(http.MethodPatch, path, handler, middlewares...)
}

func (a *App) Delete(path string, handler Handler, middlewares ...Middleware) {
	a.handle(http.MethodDelete, path, handler, middlewares...)
}
