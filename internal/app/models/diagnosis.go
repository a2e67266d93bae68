package models

import (
	"medassist-service/internal/pkg/dto/responses"
	"time"
)

type VitalSigns struct {
	Temperature      *float64 `bson:"temperature,omitempty" json:"temperature,omitempty"`
	BloodPressure    string   `bson:"bloodPressure,omitempty" json:"bloodPressure,omitempty"`
	HeartRate        *int     `bson:"heartRate,omitempty" json:"heartRate,omitempty"`
	RespiratoryRate  *int     `bson:"respiratoryRate,omitempty" json:"respiratoryRate,omitempty"`
	OxygenSaturation *float64 `bson:"oxygenSaturation,omitempty" json:"oxygenSaturation,omitempty"`
}

type DifferentialDiagnosis struct {
	Condition  string `bson:"condition"`
	Confidence int    `bson:"confidence"`
	Reasoning  string `bson:"reasoning,omitempty"`
}

type TreatmentMedication struct {
	Name      string `bson:"name"`
	Dosage    string `bson:"dosage"`
	Frequency string `bson:"frequency"`
	Duration  string `bson:"duration"`
}

type TreatmentProtocol struct {
	Medications []TreatmentMedication `bson:"medications,omitempty"`
	Procedures  []string              `bson:"procedures,omitempty"`
	Lifestyle   []string              `bson:"lifestyle,omitempty"`
}

// Diagnosis is created once by the resolver after a backend call and never
// mutated. Ordering of differentials is whatever the backend produced.
type Diagnosis struct {
	ID                    string                  `bson:"_id,omitempty"`
	PatientID             string                  `bson:"patientId"`
	Symptoms              []string                `bson:"symptoms"`
	VitalSigns            *VitalSigns             `bson:"vitalSigns,omitempty"`
	PrimaryDiagnosis      string                  `bson:"primaryDiagnosis"`
	DifferentialDiagnoses []DifferentialDiagnosis `bson:"differentialDiagnoses"`
	TreatmentProtocol     *TreatmentProtocol      `bson:"treatmentProtocol,omitempty"`
	RequiresReferral      bool                    `bson:"requiresReferral"`
	ReferralReason        string                  `bson:"referralReason,omitempty"`
	Language              string                  `bson:"language"`
	Provenance            string                  `bson:"provenance"`
	TimeModel             `bson:",inline"`
}

func (d *Diagnosis) ToResponse() *responses.Diagnosis {
	resp := &responses.Diagnosis{
		ID:                    d.ID,
		PatientID:             d.PatientID,
		Symptoms:              d.Symptoms,
		PrimaryDiagnosis:      d.PrimaryDiagnosis,
		DifferentialDiagnoses: make([]responses.DifferentialDiagnosis, 0, len(d.DifferentialDiagnoses)),
		RequiresReferral:      d.RequiresReferral,
		ReferralReason:        d.ReferralReason,
		Language:              d.Language,
		Provenance:            d.Provenance,
		CreatedAt:             d.CreatedAt.Format(time.RFC3339),
	}
	if d.VitalSigns != nil {
		resp.VitalSigns = d.VitalSigns
	}
	for _, diff := range d.DifferentialDiagnoses {
		resp.DifferentialDiagnoses = append(resp.DifferentialDiagnoses, responses.DifferentialDiagnosis{
			Condition:  diff.Condition,
			Confidence: diff.Confidence,
			Reasoning:  diff.Reasoning,
		})
	}
	if d.TreatmentProtocol != nil {
		resp.TreatmentProtocol = treatmentProtocolToResponse(d.TreatmentProtocol)
	}
	return resp
}

func treatmentProtocolToResponse(tp *TreatmentProtocol) *responses.TreatmentProtocol {
	out := &responses.TreatmentProtocol{
		Procedures: tp.Procedures,
		Lifestyle:  tp.Lifestyle,
	}
	for _, med := range tp.Medications {
		out.Medications = append(out.Medications, responses.TreatmentMedication{
			Name:      med.Name,
			Dosage:    med.Dosage,
			Frequency: med.Frequency,
			Duration:  med.Duration,
		})
	}
	return out
}
