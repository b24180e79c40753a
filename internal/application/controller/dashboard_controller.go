package controller

import (
	"net/http"
	"slices"
	"time"

	"github.com/labstack/echo/v4"

	"zephyr/internal/application/dashboard"
	"zephyr/internal/application/panel"
	"zephyr/internal/application/view"
	"zephyr/pkg/util/numberutils"
)

// SessionCookie carries the dashboard session id
const SessionCookie = "zephyr_session"

const (
	htmxRequestHeader  = "HX-Request"
	htmxRedirectHeader = "HX-Redirect"
)

// DashboardController serves the server-rendered page and its panel fragments
type DashboardController struct {
	web      *echo.Group
	registry *dashboard.Registry
	now      func() time.Time
}

func NewDashboardController(web *echo.Group, registry *dashboard.Registry) *DashboardController {
	return &DashboardController{web: web, registry: registry, now: time.Now}
}

// InitDashboardRoutes initializes the page routes
func (controller *DashboardController) InitDashboardRoutes() {
	controller.web.GET("/", controller.Page)
	controller.web.POST("/search", controller.Search)
	controller.web.POST("/theme", controller.ToggleTheme)
	controller.web.POST("/refresh", controller.Refresh)
	controller.web.GET("/panels/:name", controller.Panel)
}

func (controller *DashboardController) Page(c echo.Context) error {
	d := controller.session(c)
	days := numberutils.ToIntWithDefault(c.QueryParam("days"), panel.WeeklyTabs[0])

	return c.Render(http.StatusOK, view.PageTemplate, view.PageData{
		Page: d.View(controller.options(days)),
		Days: days,
	})
}

func (controller *DashboardController) Search(c echo.Context) error {
	if d, ok := controller.lookup(c); ok {
		d.Search(c.FormValue("city"))
	}
	return c.Redirect(http.StatusSeeOther, "/")
}

func (controller *DashboardController) ToggleTheme(c echo.Context) error {
	if d, ok := controller.lookup(c); ok {
		d.ToggleTheme()
	}
	return c.Redirect(http.StatusSeeOther, "/")
}

func (controller *DashboardController) Refresh(c echo.Context) error {
	if d, ok := controller.lookup(c); ok {
		d.Refresh()
	}
	return c.Redirect(http.StatusSeeOther, "/")
}

// Panel renders one fragment; loading fragments poll this route until ready
func (controller *DashboardController) Panel(c echo.Context) error {
	name := c.Param("name")
	if !slices.Contains(dashboard.Layout, name) {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "unknown panel"})
	}

	d, ok := controller.lookup(c)
	if !ok {
		// htmx swaps redirected bodies into the fragment; ask it to reload the page instead
		if c.Request().Header.Get(htmxRequestHeader) != "" {
			c.Response().Header().Set(htmxRedirectHeader, "/")
			return c.NoContent(http.StatusNoContent)
		}
		return c.Redirect(http.StatusSeeOther, "/")
	}

	days := numberutils.ToIntWithDefault(c.QueryParam("days"), panel.WeeklyTabs[0])
	v, _ := d.Panel(name, controller.options(days))
	return c.Render(http.StatusOK, view.PanelTemplate, view.PanelData{View: v, Days: days})
}

func (controller *DashboardController) options(days int) panel.Options {
	return panel.Options{Days: days, Now: controller.now()}
}

// lookup resolves the cookie to an existing dashboard. Only the page creates sessions.
func (controller *DashboardController) lookup(c echo.Context) (*dashboard.Dashboard, bool) {
	cookie, err := c.Cookie(SessionCookie)
	if err != nil || cookie.Value == "" {
		return nil, false
	}
	return controller.registry.Lookup(cookie.Value)
}

// session resolves the cookie to a dashboard, issuing a new cookie for unknown ids
func (controller *DashboardController) session(c echo.Context) *dashboard.Dashboard {
	var current string
	if cookie, err := c.Cookie(SessionCookie); err == nil {
		current = cookie.Value
	}

	id, d := controller.registry.Get(current)
	if id != current {
		c.SetCookie(&http.Cookie{
			Name:     SessionCookie,
			Value:    id,
			Path:     "/",
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
	}
	return d
}
