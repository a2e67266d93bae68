package routers

import (
	"fmt"
	"medassist-service/internal/app/config"
	"medassist-service/internal/app/delivery/http/middlewares"
	"medassist-service/internal/app/services/core/diagnoses"
	"medassist-service/internal/app/services/core/knowledge"
	"medassist-service/internal/app/services/core/patients"
	"medassist-service/internal/app/services/shared/snapshot"
	"medassist-service/internal/pkg/constvars"
	"medassist-service/internal/pkg/utils"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/sirupsen/logrus"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	requestLog *logrus.Logger,
	patientController *patients.PatientController,
	diagnosisController *diagnoses.DiagnosisController,
	knowledgeController *knowledge.KnowledgeController,
	snapshotController *snapshot.SnapshotController,
) {

	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", constvars.HeaderAPIKey},
		ExposedHeaders:   []string{"Link", constvars.HeaderRetryAfter},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	// Rate limiting middleware using httprate
	rateLimiter := httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second)
	router.Use(rateLimiter)

	router.Use(middlewares.ErrorHandler)
	router.Use(middlewares.RequestLogger(internalConfig.App, requestLog))

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Get("/health", healthHandler(internalConfig))

			r.Route("/patients", func(r chi.Router) {
				attachPatientRoutes(r, patientController, diagnosisController)
			})

			r.Route("/diagnoses", func(r chi.Router) {
				attachDiagnosisRoutes(r, diagnosisController)
			})

			r.Route("/knowledge", func(r chi.Router) {
				attachKnowledgeRoutes(r, knowledgeController)
			})

			r.Route("/admin", func(r chi.Router) {
				attachAdminRoutes(r, middlewares, snapshotController)
			})
		})
	})
}

func healthHandler(internalConfig *config.InternalConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ResponseSuccess, map[string]string{
			"status":  "healthy",
			"service": "medassist-service",
			"version": internalConfig.App.Version,
		})
	}
}
