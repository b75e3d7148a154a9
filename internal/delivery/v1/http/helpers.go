package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/EduardoZakkNet/Eduardo-Amorim-Test/pkg/e"
)

type ErrorResponse struct {
	Code    int            `json:"code"`
	Message string         `json:"message"`
	Errors  []e.FieldError `json:"errors,omitempty"`
}

func NewErrorResponse(code int, message string) *ErrorResponse {
	return &ErrorResponse{
		Code:    code,
		Message: message,
	}
}

// ToHTTPResponse переводит ошибку приложения в статус и тело ответа.
// Нарушения валидации возвращаются списком по полям.
func ToHTTPResponse(err error) (int, *ErrorResponse) {
	var validationErr *e.ValidationError
	if errors.As(err, &validationErr) {
		resp := NewErrorResponse(http.StatusBadRequest, "validation failed")
		resp.Errors = validationErr.Fields
		return http.StatusBadRequest, resp
	}

	var limitErr *e.ProductLimitError
	if errors.As(err, &limitErr) {
		return http.StatusUnprocessableEntity,
			NewErrorResponse(http.StatusUnprocessableEntity, limitErr.Error())
	}

	switch {
	case errors.Is(err, e.ErrSaleNotFound):
		return http.StatusNotFound, NewErrorResponse(http.StatusNotFound, e.ErrSaleNotFound.Error())
	case errors.Is(err, e.ErrInvalidSaleID):
		return http.StatusBadRequest, NewErrorResponse(http.StatusBadRequest, e.ErrInvalidSaleID.Error())
	case errors.Is(err, e.ErrEmptyRequestBody):
		return http.StatusBadRequest, NewErrorResponse(http.StatusBadRequest, e.ErrEmptyRequestBody.Error())
	case errors.Is(err, e.ErrStatusBadRequest):
		return http.StatusBadRequest, NewErrorResponse(http.StatusBadRequest, e.ErrStatusBadRequest.Error())
	default:
		return http.StatusInternalServerError,
			NewErrorResponse(http.StatusInternalServerError, e.ErrInternalServerError.Error())
	}
}

func WriteError(w http.ResponseWriter, err error) {
	code, resp := ToHTTPResponse(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(resp)
}

func WriteSuccess(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
