package routers

import (
	"medassist-service/internal/app/services/core/knowledge"

	"github.com/go-chi/chi/v5"
)

func attachKnowledgeRoutes(router chi.Router, knowledgeController *knowledge.KnowledgeController) {
	router.Get("/search", knowledgeController.SearchKnowledge)
}
