package api

import (
	"path/filepath"
	"strings"

	"github.com/gin-contrib/static"
	"github.com/gin-gonic/gin"
)

// MountStatic serves the files under dir at the root of the server. Unknown
// paths outside /api and /swagger fall back to dir/index.html when present,
// so single page apps can route client side.
func MountStatic(r *gin.Engine, dir string) {
	r.Use(static.Serve("/", static.LocalFile(dir, false)))

	index := filepath.Join(dir, "index.html")
	r.NoRoute(func(c *gin.Context) {
		path := c.Request.URL.Path
		if strings.HasPrefix(path, "/api") || strings.HasPrefix(path, "/swagger") {
			return
		}
		c.File(index)
	})
}
