package file

import (
	"net/http"
	"path/filepath"
	"strings"

	"bizops/backend/foundation/web"

	"github.com/gin-gonic/gin"
)

type Controller struct {
	*web.App
	fileServerBasePath string
}

func NewController(app *web.App, fileServerBasePath string) *Controller {
	return &Controller{app, fileServerBasePath}
}

// File serves uploaded photos and generated exports from the statics dir.
// Directory listings and path escapes return 404.
func (cf Controller) File(c *gin.Context) {
	name := c.Param("filepath")
	if strings.Contains(name, "..") {
		c.JSON(http.StatusNotFound, map[string]any{
			"error":  "file not found",
			"status": false,
		})
		return
	}

	fs := gin.Dir(cf.fileServerBasePath, false)
	f, err := fs.Open(name)
	if err != nil {
		c.JSON(http.StatusNotFound, map[string]any{
			"error":  "file not found",
			"status": false,
		})
		return
	}
	f.Close()

	http.ServeFile(c.Writer, c.Request, filepath.Join(cf.fileServerBasePath, name))
}
