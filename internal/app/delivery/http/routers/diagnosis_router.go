package routers

import (
	"medassist-service/internal/app/services/core/diagnoses"

	"github.com/go-chi/chi/v5"
)

func attachDiagnosisRoutes(router chi.Router, diagnosisController *diagnoses.DiagnosisController) {
	router.Post("/analyze", diagnosisController.Analyze)
	router.Get("/", diagnosisController.ListDiagnoses)
	router.Get("/{diagnosisID}", diagnosisController.GetDiagnosisByID)
}
