// README: Embedded static assets for the planner page.
package web

import (
	"embed"
	"io/fs"
	"net/http"

	"github.com/gin-gonic/gin"
)

//go:embed static
var assets embed.FS

// Register mounts the planner page at / and its assets under /static.
func Register(r *gin.Engine) {
	index, err := assets.ReadFile("static/index.html")
	if err != nil {
		panic("web: embedded index.html missing: " + err.Error())
	}
	r.GET("/", func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", index)
	})

	sub, err := fs.Sub(assets, "static")
	if err != nil {
		panic("web: embedded static dir missing: " + err.Error())
	}
	r.StaticFS("/static", http.FS(sub))
}
