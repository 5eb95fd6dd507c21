package sitegen

import (
	"fmt"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// Serve runs a local preview server over the project root so the generated
// page can be checked before deploying.
func (a *App) Serve() error {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{Level: 5}))
	e.Use(previewCacheControl)

	e.Static("/", a.Config.Root)

	fmt.Fprintf(a.Out, "previewing %s on %s\n", a.Config.Root, a.Config.Addr)
	return e.Start(a.Config.Addr)
}

// previewCacheControl disables caching for HTML so edits show up on reload;
// other assets get a short-lived cache.
func previewCacheControl(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		path := c.Request().URL.Path
		switch {
		case path == "/" || strings.HasSuffix(path, ".html"):
			c.Response().Header().Set("Cache-Control", "no-store")
		default:
			c.Response().Header().Set("Cache-Control", "public, max-age=60")
		}
		return next(c)
	}
}
