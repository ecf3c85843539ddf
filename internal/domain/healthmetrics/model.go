package healthmetrics

// Metric es una medición de salud de una mascota (peso, temperatura, etc.).
// PetID no se valida contra pets.
type Metric struct {
	ID     string  `json:"id"`
	PetID  string  `json:"pet_id"`
	Metric string  `json:"metric"`
	Value  float64 `json:"value"`
	Date   string  `json:"date"`
}
