package responses

type Patient struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Age       int      `json:"age"`
	Gender    string   `json:"gender"`
	Weight    *float64 `json:"weight,omitempty"`
	Contact   string   `json:"contact,omitempty"`
	Address   string   `json:"address,omitempty"`
	CreatedAt string   `json:"createdAt"`
}
