package router

import (
	"github.com/labstack/echo/v4"
)

func New(
	e *echo.Echo,
	schedCtrl interface {
		List(echo.Context) error
		Stats(echo.Context) error
		Day(echo.Context) error
		SetWindow(echo.Context) error
		Create(echo.Context) error
		Complete(echo.Context) error
		Skip(echo.Context) error
		Delete(echo.Context) error
		Report(echo.Context) error
	},
	measCtrl interface {
		Create(echo.Context) error
		List(echo.Context) error
		Latest(echo.Context) error
	},
	healthCtrl interface{ Health(echo.Context) error },
) *echo.Echo {
	e.GET("/health", healthCtrl.Health)

	api := e.Group("")

	api.GET("/schedules", schedCtrl.List)
	api.GET("/schedules/stats", schedCtrl.Stats)
	api.GET("/schedules/report", schedCtrl.Report)
	api.GET("/schedules/day/:date", schedCtrl.Day)
	api.PUT("/schedules/window", schedCtrl.SetWindow)
	api.POST("/schedules/:id/complete", schedCtrl.Complete)
	api.POST("/schedules/:id/skip", schedCtrl.Skip)
	api.DELETE("/schedules/:id", schedCtrl.Delete)

	api.POST("/locations/:id/schedules", schedCtrl.Create)

	api.POST("/locations/:id/readings", measCtrl.Create)
	api.GET("/locations/:id/readings", measCtrl.List)
	api.GET("/locations/:id/readings/latest", measCtrl.Latest)

	return e
}
