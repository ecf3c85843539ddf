package main

// @title PetCare API
// @version 1.0
// @description Backend CRUD de mascotas, tareas de cuidado, métricas de salud y usuarios.
// @BasePath /
func main() {
	Execute()
}
