package patients

import (
	"context"
	"medassist-service/internal/app/contracts"
	"medassist-service/internal/app/models"
	"medassist-service/internal/pkg/constvars"
	"medassist-service/internal/pkg/dto/requests"
	"medassist-service/internal/pkg/dto/responses"
	"medassist-service/internal/pkg/exceptions"
	"time"

	"go.uber.org/zap"
)

type patientUsecase struct {
	PatientRepository contracts.PatientRepository
	SnapshotStore     contracts.SnapshotStore
	Log               *zap.Logger
}

func NewPatientUsecase(
	patientMongoRepository contracts.PatientRepository,
	snapshotStore contracts.SnapshotStore,
	log *zap.Logger,
) contracts.PatientUsecase {
	return &patientUsecase{
		PatientRepository: patientMongoRepository,
		SnapshotStore:     snapshotStore,
		Log:               log,
	}
}

func (uc *patientUsecase) CreatePatient(ctx context.Context, request *requests.CreatePatient) (*responses.Patient, error) {
	patientModel := &models.Patient{
		Name:    request.Name,
		Age:     request.Age,
		Gender:  request.Gender,
		Weight:  request.Weight,
		Contact: request.Contact,
		Address: request.Address,
		TimeModel: models.TimeModel{
			CreatedAt: time.Now().UTC(),
		},
	}

	patientID, err := uc.PatientRepository.CreatePatient(ctx, patientModel)
	if err != nil {
		return nil, err
	}
	patientModel.ID = patientID

	return patientModel.ToResponse(), nil
}

func (uc *patientUsecase) GetPatientByID(ctx context.Context, patientID string) (*responses.Patient, error) {
	patient, err := uc.PatientRepository.FindByID(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrPatientNotExist(nil)
	}
	return patient.ToResponse(), nil
}

// ListPatients serves the live read and writes it through to the snapshot
// store. When the live read fails the last snapshot is served instead, so a
// storage outage degrades to stale data rather than an error page.
func (uc *patientUsecase) ListPatients(ctx context.Context) ([]responses.Patient, error) {
	patients, err := uc.PatientRepository.FindAll(ctx)
	if err != nil {
		var cached []responses.Patient
		found, snapErr := uc.SnapshotStore.Get(ctx, constvars.SnapshotCollectionPatients, &cached)
		if snapErr == nil && found {
			uc.Log.Warn("serving patient list from snapshot, live read failed",
				zap.Error(err),
			)
			return cached, nil
		}
		return nil, err
	}

	result := make([]responses.Patient, 0, len(patients))
	for i := range patients {
		result = append(result, *patients[i].ToResponse())
	}

	if err := uc.SnapshotStore.Save(ctx, constvars.SnapshotCollectionPatients, result); err != nil {
		uc.Log.Warn("failed to refresh patient snapshot", zap.Error(err))
	}
	return result, nil
}
