package routers

import (
	"medassist-service/internal/app/services/core/diagnoses"
	"medassist-service/internal/app/services/core/patients"

	"github.com/go-chi/chi/v5"
)

func attachPatientRoutes(router chi.Router, patientController *patients.PatientController, diagnosisController *diagnoses.DiagnosisController) {
	router.Post("/", patientController.CreatePatient)
	router.Get("/", patientController.ListPatients)
	router.Get("/{patientID}", patientController.GetPatientByID)
	router.Get("/{patientID}/diagnoses", diagnosisController.ListDiagnosesByPatient)
}
