package requests

// VitalSigns carries optional measurements exactly as the intake UI submits
// them. BloodPressure is the combined "systolic/diastolic" string form.
type VitalSigns struct {
	Temperature      *float64 `json:"temperature,omitempty"`
	BloodPressure    string   `json:"bloodPressure,omitempty" validate:"omitempty,blood_pressure"`
	HeartRate        *int     `json:"heartRate,omitempty"`
	RespiratoryRate  *int     `json:"respiratoryRate,omitempty"`
	OxygenSaturation *float64 `json:"oxygenSaturation,omitempty"`
}

// SymptomAnalysis is both the inbound analyze request and the payload
// forwarded verbatim to the diagnosis backends.
type SymptomAnalysis struct {
	PatientID     string      `json:"patientId" validate:"required"`
	Symptoms      []string    `json:"symptoms" validate:"required,min=1,dive,required"`
	VitalSigns    *VitalSigns `json:"vitalSigns,omitempty"`
	PatientAge    int         `json:"patientAge" validate:"gte=0,lte=150"`
	PatientGender string      `json:"patientGender" validate:"required,gender"`
	PatientWeight *float64    `json:"patientWeight,omitempty" validate:"omitempty,gt=0"`
	Language      string      `json:"language" validate:"language_code"`
}
