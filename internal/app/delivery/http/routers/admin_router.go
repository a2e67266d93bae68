package routers

import (
	"medassist-service/internal/app/delivery/http/middlewares"
	"medassist-service/internal/app/services/shared/snapshot"

	"github.com/go-chi/chi/v5"
)

func attachAdminRoutes(router chi.Router, middlewares *middlewares.Middlewares, snapshotController *snapshot.SnapshotController) {
	router.With(middlewares.RequireServiceAPIKey).Delete("/snapshots", snapshotController.ClearSnapshots)
	router.With(middlewares.RequireServiceAPIKey).Get("/snapshots/last-sync", snapshotController.GetLastSync)
}
