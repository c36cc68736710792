package http

import (
	"encoding/json"
	"fmt"
	"net/http"
)

func httpWriteResponse(w http.ResponseWriter, code int, obj any) {

	objBytes, err := json.Marshal(obj)
	if err != nil {
		httpWriteResponseError(w, fmt.Errorf("failed to marshal JSON response: %w", err))
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=UTF-8")
	w.WriteHeader(code)
	_, _ = w.Write(objBytes)
}

func httpWriteResponseError(w http.ResponseWriter, err error) {

	codedErr, ok := err.(*ResponseError)
	if !ok {
		codedErr = NewResponseError(err, http.StatusInternalServerError)
	}

	objBytes, err := json.Marshal(codedErr)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=UTF-8")
	w.WriteHeader(codedErr.StatusCode())
	_, _ = w.Write(objBytes)
}

// ResponseError is rendered using the Google API error envelope, so that
// standard client libraries can decode it.
type ResponseError struct {
	ErrorBody `json:"error"`
}

type ErrorBody struct {
	Code   int    `json:"code"`
	Msg    string `json:"message"`
	Status string `json:"status"`
}

func NewResponseError(e error, c int) *ResponseError {
	return &ResponseError{
		ErrorBody: ErrorBody{
			Code:   c,
			Msg:    e.Error(),
			Status: statusFromCode(c),
		},
	}
}

func (e *ResponseError) StatusCode() int { return e.Code }

func (e *ResponseError) Error() string { return e.Msg }

func (e *ResponseError) String() string { return e.Msg }

func statusFromCode(code int) string {
	switch code {
	case http.StatusBadRequest:
		return "INVALID_ARGUMENT"
	case http.StatusUnauthorized:
		return "UNAUTHENTICATED"
	case http.StatusForbidden:
		return "PERMISSION_DENIED"
	case http.StatusNotFound:
		return "NOT_FOUND"
	case http.StatusConflict:
		return "ALREADY_EXISTS"
	default:
		return "INTERNAL"
	}
}
