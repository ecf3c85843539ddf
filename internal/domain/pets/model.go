package pets

// Pet es el documento guardado en la colección "pets" y también la forma en
// que la API lo devuelve. Los opcionales van como null, nunca se omiten.
type Pet struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Species string `json:"species"`
	Breed   string `json:"breed"`
	Age     string `json:"age"`

	// Avatar es la URL pública de la imagen subida, o nil.
	Avatar *string `json:"avatar"`
	Notes  *string `json:"notes"`
}
