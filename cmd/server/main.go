package main

import (
	"log"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"irricore/config"
	"irricore/database"
	"irricore/pkg/window"
	"irricore/router"

	healthCtrlImp "irricore/pkg/health/controllerImp"
	measCtrlImp "irricore/pkg/measure/controllerImp"
	measRepoImp "irricore/pkg/measure/repositoryImp"
	schedCtrlImp "irricore/pkg/schedule/controllerImp"
	schedRepoImp "irricore/pkg/schedule/repositoryImp"
	schedSvcImp "irricore/pkg/schedule/serviceImp"
)

func main() {
	// 1) Config
	cfg := config.Load()
	loc := cfg.Location()

	// 2) DB (sqlite) + automigrate
	db := database.OpenSQLite(cfg.DBPath)

	// 3) Echo
	e := echo.New()
	e.Use(echoMiddleware.Recover())

	// 4) Repos
	sRepo := schedRepoImp.New(db)
	mRepo := measRepoImp.New(db)

	// 5) Schedule store, primed to today's window
	store := schedSvcImp.New(sRepo, loc)
	if err := store.SetWindow(window.Today, nil); err != nil {
		log.Printf("WARN: initial refresh: %v", err)
	}

	// 6) Controllers
	scCtrl := schedCtrlImp.New(store)
	meCtrl := measCtrlImp.New(mRepo)
	hCtrl := healthCtrlImp.NewHealthCtrl(db)

	// 7) Router
	r := router.New(e, scCtrl, meCtrl, hCtrl)

	// 8) Start
	log.Printf("listening on :%s", cfg.Port)
	if err := r.Start(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
