// Package httperr пишет структурированное тело ошибки REST API.
package httperr

import (
	"encoding/json"
	"net/http"
)

type Kind string

const (
	KindIllegalTransition      Kind = "ILLEGAL_TRANSITION"
	KindInvalidState           Kind = "INVALID_STATE"
	KindConcurrentModification Kind = "CONCURRENT_MODIFICATION"
	KindQuantityExceeded       Kind = "QUANTITY_EXCEEDED"
	KindInvalidOrigin          Kind = "INVALID_ORIGIN"
	KindNotFound               Kind = "NOT_FOUND"
	KindValidation             Kind = "VALIDATION"
	KindInternal               Kind = "INTERNAL"
)

type Body struct {
	Error Detail `json:"error"`
}

type Detail struct {
	Kind    Kind   `json:"kind"`
	Message string `json:"message"`
}

func Write(w http.ResponseWriter, statusCode int, kind Kind, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	// Ошибку кодирования тела уже некуда репортить
	_ = json.NewEncoder(w).Encode(Body{
		Error: Detail{
			Kind:    kind,
			Message: message,
		},
	})
}
