package requests

type SearchKnowledge struct {
	Symptoms []string `json:"symptoms" validate:"required,min=1,dive,required"`
	AgeGroup string   `json:"age_group" validate:"required,oneof=child adult senior"`
	Gender   string   `json:"gender" validate:"required,gender"`
	Language string   `json:"language" validate:"language_code"`
}
