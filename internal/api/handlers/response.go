package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/m04kA/SMC-StylistBooking/internal/domain"
)

const (
	msgInternalError   = "внутренняя ошибка сервера"
	msgNotFound        = "не найдено"
	msgInvalidSchedule = "время недоступно по расписанию"
	msgConflict        = "выбранное время уже занято"
	msgForbidden       = "доступ запрещен"
	msgInvalidInput    = "некорректные входные данные"
	msgInvalidStatus   = "недопустимое изменение статуса"
)

// ErrorResponse тело ответа с ошибкой
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// DecodeJSON декодирует тело запроса, неизвестные поля запрещены
func DecodeJSON(r *http.Request, v interface{}) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(v)
}

// RespondJSON отправляет JSON ответ
func RespondJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		_ = json.NewEncoder(w).Encode(v)
	}
}

// RespondError отправляет ошибку с указанным статусом
func RespondError(w http.ResponseWriter, status int, message string) {
	RespondJSON(w, status, ErrorResponse{Error: message})
}

func RespondBadRequest(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusBadRequest, message)
}

func RespondUnauthorized(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusUnauthorized, message)
}

func RespondForbidden(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusForbidden, message)
}

func RespondNotFound(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusNotFound, message)
}

func RespondInternalError(w http.ResponseWriter) {
	RespondError(w, http.StatusInternalServerError, msgInternalError)
}

// StatusFor возвращает HTTP статус для вида ошибки, 500 для неизвестных
func StatusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrInvalidSchedule):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrInvalidInput), errors.Is(err, domain.ErrInvalidTransition):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// RespondDomainError отвечает по виду ошибки. Для ошибок клиента в details
// передаётся текст ошибки, внутренние ошибки наружу не раскрываются.
func RespondDomainError(w http.ResponseWriter, err error) {
	status := StatusFor(err)
	if status == http.StatusInternalServerError {
		RespondInternalError(w)
		return
	}

	RespondJSON(w, status, ErrorResponse{Error: messageFor(err), Details: err.Error()})
}

func messageFor(err error) string {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return msgNotFound
	case errors.Is(err, domain.ErrInvalidSchedule):
		return msgInvalidSchedule
	case errors.Is(err, domain.ErrConflict):
		return msgConflict
	case errors.Is(err, domain.ErrForbidden):
		return msgForbidden
	case errors.Is(err, domain.ErrInvalidTransition):
		return msgInvalidStatus
	}
	return msgInvalidInput
}
