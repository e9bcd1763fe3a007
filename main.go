package main

import (
	"log"
	"os"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/apis"
	"github.com/pocketbase/pocketbase/core"

	"tripconf/collections"
	"tripconf/handlers"
)

func main() {
	authCfg, err := handlers.LoadAuthConfig()
	if err != nil {
		log.Fatal(err)
	}

	app := pocketbase.New()
	sessions := handlers.NewSessionStore()

	// Create collections, seed the catalog and run migrations on startup
	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		collections.Setup(app)
		if err := collections.Seed(app); err != nil {
			log.Printf("Warning: seed data failed: %v", err)
		}
		if err := collections.MigrateRateSnapshots(app); err != nil {
			log.Printf("Warning: rate snapshot migration failed: %v", err)
		}
		return se.Next()
	})

	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		// Serve static files from ./static
		se.Router.GET("/static/{path...}", apis.Static(os.DirFS("./static"), false))

		// Everything below requires a valid login token
		se.Router.BindFunc(handlers.RequireAuth(authCfg))

		// ── Auth ─────────────────────────────────────────────────
		se.Router.GET("/login", handlers.HandleLoginPage())
		se.Router.POST("/login", handlers.HandleLogin(authCfg))
		se.Router.GET("/logout", handlers.HandleLogout())

		// ── Quote wizard ─────────────────────────────────────────
		se.Router.GET("/preventives/new", handlers.HandleWizardNew(app, sessions))
		se.Router.POST("/wizard/field", handlers.HandleWizardField(app, sessions))
		se.Router.POST("/wizard/next", handlers.HandleWizardNext(app, sessions))
		se.Router.POST("/wizard/previous", handlers.HandleWizardPrevious(app, sessions))
		se.Router.POST("/wizard/step/{step}", handlers.HandleWizardStep(app, sessions))
		se.Router.POST("/wizard/meal", handlers.HandleWizardMeal(app, sessions))
		se.Router.POST("/wizard/service/{id}", handlers.HandleWizardService(app, sessions))

		// ── Saved preventives ────────────────────────────────────
		se.Router.POST("/preventives", handlers.HandlePreventiveSubmit(app, sessions))
		se.Router.GET("/preventives", handlers.HandlePreventiveList(app))
		se.Router.GET("/preventives/{id}/export/pdf", handlers.HandlePreventiveExportPDF(app))
		se.Router.GET("/preventives/{id}/export/excel", handlers.HandlePreventiveExportExcel(app))
		se.Router.GET("/preventives/{id}", handlers.HandlePreventiveView(app))
		se.Router.DELETE("/preventives/{id}", handlers.HandlePreventiveDelete(app))

		// ── Catalog admin ────────────────────────────────────────
		se.Router.GET("/meals", handlers.HandleMealList(app))
		se.Router.POST("/meals", handlers.HandleMealCreate(app))
		se.Router.DELETE("/meals/{id}", handlers.HandleMealDelete(app))

		se.Router.GET("/services", handlers.HandleServiceList(app))
		se.Router.POST("/services", handlers.HandleServiceCreate(app))
		se.Router.DELETE("/services/{id}", handlers.HandleServiceDelete(app))
		se.Router.POST("/categories", handlers.HandleCategoryCreate(app))
		se.Router.DELETE("/categories/{id}", handlers.HandleCategoryDelete(app))

		// Home is the wizard
		se.Router.GET("/", func(e *core.RequestEvent) error {
			return e.Redirect(302, "/preventives/new")
		})

		return se.Next()
	})

	if err := app.Start(); err != nil {
		log.Fatal(err)
	}
}
