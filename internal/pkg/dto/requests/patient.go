package requests

type CreatePatient struct {
	Name    string   `json:"name" validate:"required,min=1,max=120"`
	Age     int      `json:"age" validate:"gte=0,lte=150"`
	Gender  string   `json:"gender" validate:"required,gender"`
	Weight  *float64 `json:"weight,omitempty" validate:"omitempty,gt=0"`
	Contact string   `json:"contact,omitempty" validate:"omitempty,max=120"`
	Address string   `json:"address,omitempty" validate:"omitempty,max=500"`
}
