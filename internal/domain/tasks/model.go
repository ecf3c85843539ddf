package tasks

// Task es una tarea de cuidado. PetName es texto libre, no referencia a pets.
type Task struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Time        string  `json:"time"`
	Type        string  `json:"type"`
	PetName     string  `json:"petName"`
	Completed   bool    `json:"completed"`
	Priority    string  `json:"priority"`
	Date        string  `json:"date"`
}
