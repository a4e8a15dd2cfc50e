package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/internal/domain"
)

const msgInternalError = "внутренняя ошибка сервера"

// ErrorResponse тело ответа с ошибкой
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// В сообщениях об ошибках используем имена полей из JSON
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// DecodeJSON декодирует тело запроса в v
func DecodeJSON(r *http.Request, v interface{}) error {
	if r.Body == nil {
		return errors.New("empty request body")
	}
	defer r.Body.Close()

	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("decode json: %w", err)
	}
	return nil
}

// Validate проверяет структуру по тегам validate
func Validate(v interface{}) error {
	return validate.Struct(v)
}

// ValidationMessage формирует читаемое сообщение из ошибки валидатора
func ValidationMessage(err error) string {
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		return err.Error()
	}

	parts := make([]string, 0, len(errs))
	for _, e := range errs {
		switch e.Tag() {
		case "required":
			parts = append(parts, fmt.Sprintf("%s is required", e.Field()))
		case "oneof":
			parts = append(parts, fmt.Sprintf("%s must be one of [%s]", e.Field(), e.Param()))
		case "max":
			parts = append(parts, fmt.Sprintf("%s must be at most %s", e.Field(), e.Param()))
		case "min":
			parts = append(parts, fmt.Sprintf("%s must be at least %s", e.Field(), e.Param()))
		default:
			parts = append(parts, fmt.Sprintf("%s is invalid (%s)", e.Field(), e.Tag()))
		}
	}
	return strings.Join(parts, "; ")
}

// RespondJSON пишет ответ в формате JSON
func RespondJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(body)
}

// RespondError пишет ошибку; код ошибки выводится из HTTP статуса
func RespondError(w http.ResponseWriter, status int, msg string) {
	RespondJSON(w, status, ErrorResponse{Error: codeForStatus(status), Message: msg})
}

// RespondBadRequest 400 VALIDATION_ERROR
func RespondBadRequest(w http.ResponseWriter, msg string) {
	RespondError(w, http.StatusBadRequest, msg)
}

// RespondNotFound 404 NOT_FOUND
func RespondNotFound(w http.ResponseWriter, msg string) {
	RespondError(w, http.StatusNotFound, msg)
}

// RespondInternalError 500 без подробностей
func RespondInternalError(w http.ResponseWriter) {
	RespondError(w, http.StatusInternalServerError, msgInternalError)
}

// RespondDomainError переводит ошибку бизнес-логики в HTTP ответ.
// Код, статус и текст берутся из таксономии domain; внутренние ошибки подробностей не раскрывают.
func RespondDomainError(w http.ResponseWriter, err error) {
	if !domain.IsCallerError(err) {
		RespondInternalError(w)
		return
	}
	RespondJSON(w, domain.HTTPStatus(err), ErrorResponse{
		Error:   domain.ErrorCode(err),
		Message: domain.Message(err),
	})
}

func codeForStatus(status int) string {
	switch status {
	case http.StatusBadRequest:
		return domain.CodeValidation
	case http.StatusNotFound:
		return domain.CodeNotFound
	case http.StatusConflict:
		return domain.CodeAppointmentConflict
	default:
		return domain.CodeInternal
	}
}
