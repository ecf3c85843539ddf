// Package httpjson concentra la escritura de respuestas JSON y la validación
// de payloads que comparten todos los módulos.
package httpjson

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"petcare-api/internal/platform/logger"
)

// FieldError describe un problema de un campo del payload. Conserva la forma
// {loc, msg, type} que ya consumen los clientes.
type FieldError struct {
	Loc  []string `json:"loc"`
	Msg  string   `json:"msg"`
	Type string   `json:"type"`
}

// ValidationError se responde como 422.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Errors))
	for _, fe := range e.Errors {
		parts = append(parts, strings.Join(fe.Loc, ".")+": "+fe.Msg)
	}
	return "validation error: " + strings.Join(parts, "; ")
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Reportamos el nombre del campo tal como llega (json o form), no el de Go.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		for _, tag := range []string{"json", "form"} {
			name := strings.SplitN(f.Tag.Get(tag), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}
		return f.Name
	})
	return v
}

// DecodeJSON decodifica el body en dst y valida sus tags `validate`.
// Los errores de forma del payload vuelven como *ValidationError.
func DecodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return decodeError(err)
	}
	return Validate(dst)
}

// Validate corre el validator sobre v (un struct o puntero a struct).
func Validate(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	out := &ValidationError{}
	for _, fe := range verrs {
		out.Errors = append(out.Errors, fieldError(fe))
	}
	return out
}

func fieldError(fe validator.FieldError) FieldError {
	loc := []string{"body", fe.Field()}
	switch fe.Tag() {
	case "required":
		return FieldError{Loc: loc, Msg: "field required", Type: "value_error.missing"}
	default:
		return FieldError{
			Loc:  loc,
			Msg:  fmt.Sprintf("failed on the '%s' rule", fe.Tag()),
			Type: "value_error." + fe.Tag(),
		}
	}
}

func decodeError(err error) error {
	var (
		syntaxErr *json.SyntaxError
		typeErr   *json.UnmarshalTypeError
	)

	switch {
	case errors.Is(err, io.EOF):
		return &ValidationError{Errors: []FieldError{{
			Loc: []string{"body"}, Msg: "field required", Type: "value_error.missing",
		}}}
	case errors.As(err, &syntaxErr), errors.Is(err, io.ErrUnexpectedEOF):
		return &ValidationError{Errors: []FieldError{{
			Loc: []string{"body"}, Msg: "invalid json", Type: "value_error.jsondecode",
		}}}
	case errors.As(err, &typeErr):
		loc := []string{"body"}
		if typeErr.Field != "" {
			loc = append(loc, strings.Split(typeErr.Field, ".")...)
		}
		return &ValidationError{Errors: []FieldError{{
			Loc:  loc,
			Msg:  fmt.Sprintf("value is not a valid %s", typeErr.Type.Kind()),
			Type: "type_error." + typeErr.Type.Kind().String(),
		}}}
	default:
		return &ValidationError{Errors: []FieldError{{
			Loc: []string{"body"}, Msg: err.Error(), Type: "value_error",
		}}}
	}
}

// Number es un float64 que acepta tanto un número JSON como un string
// numérico ("12.5").
type Number float64

func (n *Number) UnmarshalJSON(b []byte) error {
	raw := strings.TrimSpace(string(b))
	if strings.HasPrefix(raw, `"`) {
		s, err := strconv.Unquote(raw)
		if err != nil {
			return &json.UnmarshalTypeError{Value: "string", Type: reflect.TypeOf(float64(0))}
		}
		raw = strings.TrimSpace(s)
	}

	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return &json.UnmarshalTypeError{Value: raw, Type: reflect.TypeOf(float64(0))}
	}
	*n = Number(f)
	return nil
}

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteDetail responde {"detail": msg}.
func WriteDetail(w http.ResponseWriter, status int, msg string) {
	WriteJSON(w, status, map[string]any{"detail": msg})
}

// WriteOK responde {"ok": true}; lo usan los DELETE.
func WriteOK(w http.ResponseWriter) {
	WriteJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func WriteValidation(w http.ResponseWriter, err *ValidationError) {
	WriteJSON(w, http.StatusUnprocessableEntity, map[string]any{"detail": err.Errors})
}

// WriteBadInput responde 422 si err es de validación y 500 en otro caso.
func WriteBadInput(w http.ResponseWriter, log logger.Logger, op string, err error) {
	var verr *ValidationError
	if errors.As(err, &verr) {
		WriteValidation(w, verr)
		return
	}
	InternalError(w, log, op, err)
}

// InternalError loguea la causa y responde un 500 genérico.
func InternalError(w http.ResponseWriter, log logger.Logger, op string, err error) {
	if log != nil {
		log.Error("request failed", map[string]any{"op": op, "err": err})
	}
	WriteDetail(w, http.StatusInternalServerError, "Internal Server Error")
}
