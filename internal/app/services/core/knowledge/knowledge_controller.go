package knowledge

import (
	"context"
	"medassist-service/internal/app/contracts"
	"medassist-service/internal/pkg/constvars"
	"medassist-service/internal/pkg/dto/requests"
	"medassist-service/internal/pkg/exceptions"
	"medassist-service/internal/pkg/utils"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

type KnowledgeController struct {
	Log              *zap.Logger
	KnowledgeUsecase contracts.KnowledgeUsecase
}

func NewKnowledgeController(logger *zap.Logger, knowledgeUsecase contracts.KnowledgeUsecase) *KnowledgeController {
	return &KnowledgeController{
		Log:              logger,
		KnowledgeUsecase: knowledgeUsecase,
	}
}

// SearchKnowledge handles GET /knowledge/search?symptoms=a,b&age_group=adult&gender=male
func (ctrl *KnowledgeController) SearchKnowledge(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	var symptoms []string
	for _, raw := range strings.Split(query.Get("symptoms"), ",") {
		if trimmed := strings.TrimSpace(raw); trimmed != "" {
			symptoms = append(symptoms, trimmed)
		}
	}

	request := &requests.SearchKnowledge{
		Symptoms: symptoms,
		AgeGroup: query.Get("age_group"),
		Gender:   query.Get("gender"),
		Language: query.Get("language"),
	}

	err := utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.KnowledgeUsecase.SearchKnowledge(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.KnowledgeSearchSuccess, result)
}
