package users

// User es un perfil de usuario. Plan es nil cuando no tiene plan asignado.
type User struct {
	ID       string  `json:"id"`
	Username string  `json:"username"`
	Email    string  `json:"email"`
	Plan     *string `json:"plan"`
}
