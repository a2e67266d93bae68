package models

import (
	"medassist-service/internal/pkg/dto/responses"
	"time"
)

type Patient struct {
	ID        string   `bson:"_id,omitempty"`
	Name      string   `bson:"name"`
	Age       int      `bson:"age"`
	Gender    string   `bson:"gender"`
	Weight    *float64 `bson:"weight,omitempty"`
	Contact   string   `bson:"contact,omitempty"`
	Address   string   `bson:"address,omitempty"`
	TimeModel `bson:",inline"`
}

func (p *Patient) ToResponse() *responses.Patient {
	return &responses.Patient{
		ID:        p.ID,
		Name:      p.Name,
		Age:       p.Age,
		Gender:    p.Gender,
		Weight:    p.Weight,
		Contact:   p.Contact,
		Address:   p.Address,
		CreatedAt: p.CreatedAt.Format(time.RFC3339),
	}
}
