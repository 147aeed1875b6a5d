package routes

import (
	"cinematic-vault/internal/handlers"

	"github.com/gofiber/fiber/v2"
)

func Setup(app *fiber.App, pageHandler *handlers.PageHandler, movieHandler *handlers.MovieHandler, exportHandler *handlers.ExportHandler) {
	// Pages
	app.Get("/", pageHandler.Home)
	app.Get("/add", pageHandler.AddForm)
	app.Post("/add", pageHandler.AddSubmit)
	app.Get("/discover", pageHandler.Discover)
	app.Post("/discover", pageHandler.DiscoverSubmit)
	app.Post("/discover/era", pageHandler.DiscoverEra)
	app.Post("/discover/soulmate", pageHandler.Soulmate)
	app.Get("/update", pageHandler.UpdateSelect)
	app.Get("/update/:id", pageHandler.UpdateForm)
	app.Post("/update/:id", pageHandler.UpdateSubmit)
	app.Get("/remove", pageHandler.RemoveForm)
	app.Post("/remove", pageHandler.RemoveSubmit)
	app.Get("/analysis", pageHandler.Analysis)

	// API versioning
	api := app.Group("/api")
	v1 := api.Group("/v1")

	// Movie routes, static paths before /:id
	movies := v1.Group("/movies")
	{
		movies.Get("/", movieHandler.GetAllMovies)
		movies.Post("/", movieHandler.CreateMovie)
		movies.Get("/filter", movieHandler.FilterMovies)
		movies.Get("/count", movieHandler.CountMovies)
		movies.Get("/era", movieHandler.GetMoviesByEra)
		movies.Get("/top-rated", movieHandler.GetTopRated)
		movies.Get("/:id", movieHandler.GetMovieByID)
		movies.Put("/:id", movieHandler.UpdateMovie)
		movies.Delete("/:id", movieHandler.DeleteMovie)
		movies.Get("/:id/soulmate", movieHandler.FindSoulmate)
		movies.Get("/:id/insight", movieHandler.GetInsight)
		movies.Get("/:id/poster", movieHandler.GetPoster)
	}

	// Dashboard routes
	v1.Get("/dashboard", movieHandler.GetDashboard)

	// Chart routes - Visualization data
	charts := v1.Group("/charts")
	{
		charts.Get("/pie", movieHandler.GetPieChartData)
		charts.Get("/column", movieHandler.GetColumnChartData)
		charts.Get("/analysis", movieHandler.GetAnalysis)
	}

	// Export routes, absent when EXPORT_ENABLED=false
	if exportHandler != nil {
		export := v1.Group("/export")
		export.Get("/xlsx", exportHandler.DownloadXLSX)
		export.Post("/xlsx", exportHandler.PublishXLSX)
	}
}
