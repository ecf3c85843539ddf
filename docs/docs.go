// Package docs registra el documento Swagger de la API. Se mantiene a mano:
// al cambiar las anotaciones @Router/@Param de un handler hay que reflejarlo acá.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Listar métricas de salud",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/healthmetrics.Metric"}}},
                    "500": {"description": "Internal Server Error", "schema": {"type": "object", "additionalProperties": {}}}
                }
            },
            "post": {
                "description": "Guarda la métrica bajo el ` + "`" + `id` + "`" + ` enviado (upsert). ` + "`" + `value` + "`" + ` acepta número o string numérico.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Registrar métrica de salud",
                "parameters": [
                    {"description": "Métrica", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/healthmetrics.createMetricRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/healthmetrics.Metric"}},
                    "422": {"description": "payload inválido", "schema": {"type": "object", "additionalProperties": {}}},
                    "500": {"description": "Internal Server Error", "schema": {"type": "object", "additionalProperties": {}}}
                }
            }
        },
        "/health/{metricID}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Obtener métrica de salud",
                "parameters": [
                    {"type": "string", "description": "ID de la métrica", "name": "metricID", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/healthmetrics.Metric"}},
                    "404": {"description": "Health metric not found", "schema": {"type": "object", "additionalProperties": {}}},
                    "500": {"description": "Internal Server Error", "schema": {"type": "object", "additionalProperties": {}}}
                }
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Borrar métrica de salud",
                "parameters": [
                    {"type": "string", "description": "ID de la métrica", "name": "metricID", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"type": "boolean"}}},
                    "500": {"description": "Internal Server Error", "schema": {"type": "object", "additionalProperties": {}}}
                }
            }
        },
        "/pets": {
            "get": {
                "description": "Devuelve todas las mascotas. Sin paginación ni orden garantizado.",
                "produces": ["application/json"],
                "tags": ["pets"],
                "summary": "Listar mascotas",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/pets.Pet"}}},
                    "500": {"description": "Internal Server Error", "schema": {"type": "object", "additionalProperties": {}}}
                }
            },
            "post": {
                "description": "Crea una mascota a partir de un form (multipart o urlencoded). Si viene ` + "`" + `image` + "`" + `, se sube al object store en ` + "`" + `pets/{id}/{filename}` + "`" + `, se publica y su URL queda en ` + "`" + `avatar` + "`" + `.",
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "tags": ["pets"],
                "summary": "Crear mascota",
                "parameters": [
                    {"type": "string", "description": "Nombre", "name": "name", "in": "formData", "required": true},
                    {"type": "string", "description": "Especie", "name": "species", "in": "formData", "required": true},
                    {"type": "string", "description": "Raza", "name": "breed", "in": "formData", "required": true},
                    {"type": "string", "description": "Edad", "name": "age", "in": "formData", "required": true},
                    {"type": "string", "description": "Notas", "name": "notes", "in": "formData"},
                    {"type": "file", "description": "Imagen de avatar", "name": "image", "in": "formData"}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/pets.Pet"}},
                    "422": {"description": "campos faltantes o form inválido", "schema": {"type": "object", "additionalProperties": {}}},
                    "500": {"description": "error de storage o upload", "schema": {"type": "object", "additionalProperties": {}}}
                }
            }
        },
        "/pets/{petID}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["pets"],
                "summary": "Obtener mascota",
                "parameters": [
                    {"type": "string", "description": "ID de la mascota", "name": "petID", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/pets.Pet"}},
                    "404": {"description": "Pet not found", "schema": {"type": "object", "additionalProperties": {}}},
                    "500": {"description": "Internal Server Error", "schema": {"type": "object", "additionalProperties": {}}}
                }
            },
            "delete": {
                "description": "Borra el documento. No falla si no existe y no borra la imagen subida.",
                "produces": ["application/json"],
                "tags": ["pets"],
                "summary": "Borrar mascota",
                "parameters": [
                    {"type": "string", "description": "ID de la mascota", "name": "petID", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"type": "boolean"}}},
                    "500": {"description": "Internal Server Error", "schema": {"type": "object", "additionalProperties": {}}}
                }
            }
        },
        "/tasks": {
            "get": {
                "produces": ["application/json"],
                "tags": ["tasks"],
                "summary": "Listar tareas",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/tasks.Task"}}},
                    "500": {"description": "Internal Server Error", "schema": {"type": "object", "additionalProperties": {}}}
                }
            },
            "post": {
                "description": "Guarda la tarea bajo el ` + "`" + `id` + "`" + ` enviado (upsert). ` + "`" + `completed` + "`" + ` es false si no viene.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["tasks"],
                "summary": "Crear tarea",
                "parameters": [
                    {"description": "Tarea", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/tasks.taskRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/tasks.Task"}},
                    "422": {"description": "payload inválido", "schema": {"type": "object", "additionalProperties": {}}},
                    "500": {"description": "Internal Server Error", "schema": {"type": "object", "additionalProperties": {}}}
                }
            }
        },
        "/tasks/{taskID}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["tasks"],
                "summary": "Obtener tarea",
                "parameters": [
                    {"type": "string", "description": "ID de la tarea", "name": "taskID", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/tasks.Task"}},
                    "404": {"description": "Task not found", "schema": {"type": "object", "additionalProperties": {}}},
                    "500": {"description": "Internal Server Error", "schema": {"type": "object", "additionalProperties": {}}}
                }
            },
            "put": {
                "description": "Guarda el body completo bajo el id del path; los campos omitidos no se conservan. El body se devuelve tal cual.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["tasks"],
                "summary": "Reemplazar tarea",
                "parameters": [
                    {"type": "string", "description": "ID de la tarea", "name": "taskID", "in": "path", "required": true},
                    {"description": "Tarea completa", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/tasks.taskRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/tasks.Task"}},
                    "422": {"description": "payload inválido", "schema": {"type": "object", "additionalProperties": {}}},
                    "500": {"description": "Internal Server Error", "schema": {"type": "object", "additionalProperties": {}}}
                }
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["tasks"],
                "summary": "Borrar tarea",
                "parameters": [
                    {"type": "string", "description": "ID de la tarea", "name": "taskID", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"type": "boolean"}}},
                    "500": {"description": "Internal Server Error", "schema": {"type": "object", "additionalProperties": {}}}
                }
            }
        },
        "/users": {
            "get": {
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Listar usuarios",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/users.User"}}},
                    "500": {"description": "Internal Server Error", "schema": {"type": "object", "additionalProperties": {}}}
                }
            },
            "post": {
                "description": "Guarda el usuario bajo el ` + "`" + `id` + "`" + ` enviado (upsert).",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Crear usuario",
                "parameters": [
                    {"description": "Usuario", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/users.createUserRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/users.User"}},
                    "422": {"description": "payload inválido", "schema": {"type": "object", "additionalProperties": {}}},
                    "500": {"description": "Internal Server Error", "schema": {"type": "object", "additionalProperties": {}}}
                }
            }
        },
        "/users/{userID}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Obtener usuario",
                "parameters": [
                    {"type": "string", "description": "ID del usuario", "name": "userID", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/users.User"}},
                    "404": {"description": "User not found", "schema": {"type": "object", "additionalProperties": {}}},
                    "500": {"description": "Internal Server Error", "schema": {"type": "object", "additionalProperties": {}}}
                }
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Borrar usuario",
                "parameters": [
                    {"type": "string", "description": "ID del usuario", "name": "userID", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"type": "boolean"}}},
                    "500": {"description": "Internal Server Error", "schema": {"type": "object", "additionalProperties": {}}}
                }
            }
        }
    },
    "definitions": {
        "healthmetrics.Metric": {
            "type": "object",
            "properties": {
                "date": {"type": "string"},
                "id": {"type": "string"},
                "metric": {"type": "string"},
                "pet_id": {"type": "string"},
                "value": {"type": "number"}
            }
        },
        "healthmetrics.createMetricRequest": {
            "type": "object",
            "required": ["date", "id", "metric", "pet_id", "value"],
            "properties": {
                "date": {"type": "string"},
                "id": {"type": "string"},
                "metric": {"type": "string"},
                "pet_id": {"type": "string"},
                "value": {"type": "number"}
            }
        },
        "pets.Pet": {
            "type": "object",
            "properties": {
                "age": {"type": "string"},
                "avatar": {"type": "string"},
                "breed": {"type": "string"},
                "id": {"type": "string"},
                "name": {"type": "string"},
                "notes": {"type": "string"},
                "species": {"type": "string"}
            }
        },
        "tasks.Task": {
            "type": "object",
            "properties": {
                "completed": {"type": "boolean"},
                "date": {"type": "string"},
                "description": {"type": "string"},
                "id": {"type": "string"},
                "petName": {"type": "string"},
                "priority": {"type": "string"},
                "time": {"type": "string"},
                "title": {"type": "string"},
                "type": {"type": "string"}
            }
        },
        "tasks.taskRequest": {
            "type": "object",
            "required": ["date", "id", "petName", "priority", "time", "title", "type"],
            "properties": {
                "completed": {"type": "boolean"},
                "date": {"type": "string"},
                "description": {"type": "string"},
                "id": {"type": "string"},
                "petName": {"type": "string"},
                "priority": {"type": "string"},
                "time": {"type": "string"},
                "title": {"type": "string"},
                "type": {"type": "string"}
            }
        },
        "users.User": {
            "type": "object",
            "properties": {
                "email": {"type": "string"},
                "id": {"type": "string"},
                "plan": {"type": "string"},
                "username": {"type": "string"}
            }
        },
        "users.createUserRequest": {
            "type": "object",
            "required": ["email", "id", "username"],
            "properties": {
                "email": {"type": "string"},
                "id": {"type": "string"},
                "plan": {"type": "string"},
                "username": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "PetCare API",
	Description:      "Backend CRUD de mascotas, tareas de cuidado, métricas de salud y usuarios.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
