package snapshot

import (
	"context"
	"medassist-service/internal/app/contracts"
	"medassist-service/internal/pkg/constvars"
	"medassist-service/internal/pkg/dto/responses"
	"medassist-service/internal/pkg/utils"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// SnapshotController backs the API-key guarded admin routes.
type SnapshotController struct {
	Log           *zap.Logger
	SnapshotStore contracts.SnapshotStore
}

func NewSnapshotController(logger *zap.Logger, snapshotStore contracts.SnapshotStore) *SnapshotController {
	return &SnapshotController{
		Log:           logger,
		SnapshotStore: snapshotStore,
	}
}

func (ctrl *SnapshotController) ClearSnapshots(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if err := ctrl.SnapshotStore.ClearAll(ctx); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SnapshotClearedSuccess, nil)
}

func (ctrl *SnapshotController) GetLastSync(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	lastSync, found, err := ctrl.SnapshotStore.LastSync(ctx)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	result := &responses.SnapshotLastSync{}
	if found {
		result.LastSync = lastSync.Format(time.RFC3339)
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SnapshotLastSyncSuccess, result)
}
