package utils

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	internal_errors "github.com/itchan-dev/anonboard/shared/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testRequest struct {
	Field1 string `json:"field1" validate:"required"`
	Field2 string `json:"field2"`
}

func TestDecodeValidate(t *testing.T) {
	tests := []struct {
		name        string
		requestBody string
		expectedErr *internal_errors.ErrorWithStatusCode
	}{
		{
			name:        "Valid JSON and Validation",
			requestBody: `{"field1": "value", "field2": "123"}`,
		},
		{
			name:        "Optional field missing",
			requestBody: `{"field1": "value"}`,
		},
		{
			name:        "Invalid JSON",
			requestBody: `{"field1": "value", "field2": "123"`, // Missing closing brace
			expectedErr: &internal_errors.ErrorWithStatusCode{Message: "Body is invalid json", StatusCode: 400},
		},
		{
			name:        "Missing Required Field",
			requestBody: `{"field2": "123"}`,
			expectedErr: &internal_errors.ErrorWithStatusCode{Message: "Required fields missing", StatusCode: 400},
		},
		{
			name:        "Empty Body",
			requestBody: "",
			expectedErr: &internal_errors.ErrorWithStatusCode{Message: "Body is invalid json", StatusCode: 400},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader([]byte(tt.requestBody)))

			var body testRequest
			err := DecodeValidate(req.Body, &body)

			if tt.expectedErr == nil {
				assert.NoError(t, err)
				assert.Equal(t, "value", body.Field1)
			} else {
				e, ok := err.(*internal_errors.ErrorWithStatusCode)
				require.True(t, ok, "Error should be ErrorWithStatusCode")
				assert.Equal(t, tt.expectedErr.Message, e.Message)
				assert.Equal(t, tt.expectedErr.StatusCode, e.StatusCode)
			}
		})
	}
}

func TestDecodeRequest(t *testing.T) {
	t.Run("urlencoded form", func(t *testing.T) {
		form := url.Values{"field1": {"from form"}, "field2": {"7"}, "extra": {"ignored"}}
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

		var body testRequest
		require.NoError(t, DecodeRequest(req, &body))
		assert.Equal(t, "from form", body.Field1)
		assert.Equal(t, "7", body.Field2)
	})

	t.Run("urlencoded form on DELETE", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodDelete, "/", strings.NewReader("field1=gone"))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

		var body testRequest
		require.NoError(t, DecodeRequest(req, &body))
		assert.Equal(t, "gone", body.Field1)
	})

	t.Run("form missing required field", func(t *testing.T) {
		form := url.Values{"field2": {"7"}}
		req := httptest.NewRequest(http.MethodDelete, "/", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

		var body testRequest
		err := DecodeRequest(req, &body)
		var e *internal_errors.ErrorWithStatusCode
		require.True(t, errors.As(err, &e))
		assert.Equal(t, http.StatusBadRequest, e.StatusCode)
	})

	t.Run("json with charset", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPut, "/", strings.NewReader(`{"field1":"json"}`))
		req.Header.Set("Content-Type", "application/json; charset=utf-8")

		var body testRequest
		require.NoError(t, DecodeRequest(req, &body))
		assert.Equal(t, "json", body.Field1)
	})

	t.Run("no content type defaults to json", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPut, "/", strings.NewReader(`{"field1":"json"}`))

		var body testRequest
		require.NoError(t, DecodeRequest(req, &body))
		assert.Equal(t, "json", body.Field1)
	})
}

func TestWriteErrorAndStatusCode(t *testing.T) {
	t.Run("status error keeps its code", func(t *testing.T) {
		rr := httptest.NewRecorder()
		WriteErrorAndStatusCode(rr, internal_errors.NotFound("Thread not found"))
		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Equal(t, "Thread not found\n", rr.Body.String())
	})

	t.Run("plain error hides details", func(t *testing.T) {
		rr := httptest.NewRecorder()
		WriteErrorAndStatusCode(rr, errors.New("pq: connection refused"))
		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.NotContains(t, rr.Body.String(), "pq")
	})
}

func TestWriteText(t *testing.T) {
	rr := httptest.NewRecorder()
	WriteText(rr, "reported")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "reported", rr.Body.String())
	assert.Equal(t, "text/plain; charset=utf-8", rr.Header().Get("Content-Type"))
}
