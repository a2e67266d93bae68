package patients

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/goccy/go-json"
)

func newTestController() *PatientController {
	usecase := NewPatientUsecase(newFakePatientRepository(), newFakeSnapshotStore(), zap.NewNop())
	return NewPatientController(zap.NewNop(), usecase)
}

func TestCreatePatientHandler(t *testing.T) {
	controller := newTestController()

	t.Run("Valid Request", func(t *testing.T) {
		body := []byte(`{"name":"Asha","age":34,"gender":"female"}`)
		req := httptest.NewRequest("POST", "/api/v1/patients", bytes.NewReader(body))

		rr := httptest.NewRecorder()
		controller.CreatePatient(rr, req)

		require.Equal(t, http.StatusCreated, rr.Code)

		var response struct {
			Success bool `json:"success"`
			Data    struct {
				ID   string `json:"id"`
				Name string `json:"name"`
			} `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
		assert.True(t, response.Success)
		assert.NotEmpty(t, response.Data.ID)
		assert.Equal(t, "Asha", response.Data.Name)
	})

	t.Run("Malformed JSON", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/api/v1/patients", bytes.NewReader([]byte(`{"name":`)))

		rr := httptest.NewRecorder()
		controller.CreatePatient(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Missing Name", func(t *testing.T) {
		body := []byte(`{"age":34,"gender":"female"}`)
		req := httptest.NewRequest("POST", "/api/v1/patients", bytes.NewReader(body))

		rr := httptest.NewRecorder()
		controller.CreatePatient(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Invalid Gender", func(t *testing.T) {
		body := []byte(`{"name":"Asha","age":34,"gender":"unknown"}`)
		req := httptest.NewRequest("POST", "/api/v1/patients", bytes.NewReader(body))

		rr := httptest.NewRecorder()
		controller.CreatePatient(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}
