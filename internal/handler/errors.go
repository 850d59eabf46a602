package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"

	"linxblog/internal/apperror"
)

const maxBodyBytes = 1 << 20

// writeError sends err as its apperror body. Internal causes are logged here
// and never reach the client.
func (h *Handlers) writeError(w http.ResponseWriter, r *http.Request, err error) {
	appErr := apperror.From(err)

	if appErr.Kind == apperror.KindInternal {
		h.Log.ErrorContext(r.Context(), "request failed",
			slog.String("req_id", chimw.GetReqID(r.Context())),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Any("error", appErr.Err),
		)
	}

	apperror.Write(w, appErr)
}

func writeSuccess(w http.ResponseWriter, data interface{}, statusCode int) {
	if statusCode == http.StatusNoContent {
		w.WriteHeader(statusCode)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

// decodeJSON reads exactly one JSON object into dst, rejecting unknown keys.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		var syntaxError *json.SyntaxError
		var unmarshalTypeError *json.UnmarshalTypeError
		var maxBytesError *http.MaxBytesError

		switch {
		case errors.As(err, &syntaxError), errors.Is(err, io.ErrUnexpectedEOF):
			return apperror.Validation("body contains badly-formed JSON")

		case errors.As(err, &unmarshalTypeError):
			if unmarshalTypeError.Field != "" {
				return apperror.InvalidFields([]string{
					fmt.Sprintf("%s must be a %s", unmarshalTypeError.Field, unmarshalTypeError.Type),
				})
			}
			return apperror.Validation("body contains incorrect JSON type")

		case errors.Is(err, io.EOF):
			return apperror.Validation("body must not be empty")

		case strings.HasPrefix(err.Error(), "json: unknown field "):
			field := strings.Trim(strings.TrimPrefix(err.Error(), "json: unknown field "), `"`)
			return apperror.InvalidFields([]string{fmt.Sprintf("property %s should not exist", field)})

		case errors.As(err, &maxBytesError):
			return apperror.Validation(fmt.Sprintf("body must not be larger than %d bytes", maxBytesError.Limit))

		default:
			return apperror.Validation("body could not be decoded")
		}
	}

	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return apperror.Validation("body must only contain a single JSON value")
	}

	return nil
}

// validate runs struct tags and reports one message per failed field.
func (h *Handlers) validate(v interface{}) error {
	err := h.Validate.Struct(v)
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return apperror.Internal(err)
	}

	messages := make([]string, 0, len(fieldErrors))
	for _, fe := range fieldErrors {
		messages = append(messages, fieldMessage(fe))
	}

	return apperror.InvalidFields(messages)
}

func fieldMessage(fe validator.FieldError) string {
	field := fe.Field()

	switch fe.Tag() {
	case "required":
		return field + " should not be empty"
	case "min":
		return fmt.Sprintf("%s must be longer than or equal to %s characters", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be shorter than or equal to %s characters", field, fe.Param())
	case "email":
		return field + " must be an email"
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}

// decodeAndValidate is decodeJSON followed by validate.
func (h *Handlers) decodeAndValidate(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	if err := decodeJSON(w, r, dst); err != nil {
		return err
	}
	return h.validate(dst)
}
