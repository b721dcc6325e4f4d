package utils

import (
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"
	"net/url"

	"github.com/go-playground/validator/v10"
	internal_errors "github.com/itchan-dev/anonboard/shared/errors"
	"github.com/itchan-dev/anonboard/shared/logger"
)

const maxBodySize = 1 << 20

var validate = validator.New(validator.WithRequiredStructEnabled())

func WriteErrorAndStatusCode(w http.ResponseWriter, err error) {
	var e *internal_errors.ErrorWithStatusCode
	if errors.As(err, &e) {
		http.Error(w, e.Message, e.StatusCode)
		return
	}
	// default error is 500
	logger.Log.Error("internal error", "error", err)
	http.Error(w, "Internal server error", http.StatusInternalServerError)
}

// WriteText answers with a plain text token such as "success" or "reported".
func WriteText(w http.ResponseWriter, text string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	io.WriteString(w, text)
}

// WriteJSON encodes v with the given status code.
func WriteJSON(w http.ResponseWriter, statusCode int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Error("failed to encode response", "error", err)
	}
}

// DecodeRequest fills body from a JSON or urlencoded form request and validates it.
// Form fields are matched against the json tags of body.
func DecodeRequest(r *http.Request, body any) error {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "application/x-www-form-urlencoded" || mediaType == "multipart/form-data" {
		return decodeForm(r, mediaType, body)
	}
	return DecodeValidate(http.MaxBytesReader(nil, r.Body, maxBodySize), body)
}

func decodeForm(r *http.Request, mediaType string, body any) error {
	r.Body = http.MaxBytesReader(nil, r.Body, maxBodySize)
	values, err := parseFormValues(r, mediaType)
	if err != nil {
		logger.Log.Debug("failed to parse form", "error", err)
		return &internal_errors.ErrorWithStatusCode{Message: "Body is invalid form", StatusCode: 400}
	}
	fields := make(map[string]string, len(values))
	for key := range values {
		fields[key] = values.Get(key)
	}
	// round trip through json so json tags stay the single source of field names
	raw, err := json.Marshal(fields)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(raw, body); err != nil {
		logger.Log.Debug("form does not fit request", "error", err)
		return &internal_errors.ErrorWithStatusCode{Message: "Body is invalid form", StatusCode: 400}
	}
	return Validate(body)
}

// parseFormValues reads the body itself for urlencoded forms,
// net/http ignores the body of DELETE requests.
func parseFormValues(r *http.Request, mediaType string) (url.Values, error) {
	if mediaType == "multipart/form-data" {
		if err := r.ParseMultipartForm(maxBodySize); err != nil {
			return nil, err
		}
		return r.PostForm, nil
	}
	raw, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, err
	}
	return url.ParseQuery(string(raw))
}

func DecodeValidate(r io.ReadCloser, body any) error {
	if err := Decode(r, body); err != nil {
		return err
	}
	return Validate(body)
}

func Decode(r io.ReadCloser, body any) error {
	if err := json.NewDecoder(r).Decode(body); err != nil {
		logger.Log.Debug("failed to decode body", "error", err)
		return &internal_errors.ErrorWithStatusCode{Message: "Body is invalid json", StatusCode: 400}
	}
	return nil
}

func Validate(body any) error {
	if err := validate.Struct(body); err != nil {
		logger.Log.Debug("validation failed", "error", err)
		return &internal_errors.ErrorWithStatusCode{Message: "Required fields missing", StatusCode: 400}
	}
	return nil
}
