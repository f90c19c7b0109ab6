package insert

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-sod/dotquad/internal/index"
	"github.com/go-sod/dotquad/pkg/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newHandler(t *testing.T, opts ...index.Option) (http.Handler, *index.Index) {
	t.Helper()
	idx, err := index.New(geom.Rect{X2: 800, Y2: 600}, opts...)
	require.NoError(t, err)
	h, err := NewHandler(&Config{RequestTimeout: time.Second, MaxDotsLen: 3}, idx)
	require.NoError(t, err)
	return h, idx
}

func TestHandler_ServeHTTP(t *testing.T) {
	tests := []struct {
		name           string
		method         string
		contentType    string
		body           string
		opts           []index.Option
		expectedStatus int
		expectedSize   int
	}{
		{
			name:           "positive",
			method:         http.MethodPost,
			contentType:    "application/json",
			body:           `{"dots":[{"x":400,"y":300,"label":"A"},{"x":150,"y":450}]}`,
			expectedStatus: http.StatusOK,
			expectedSize:   2,
		},
		{name: "wrong_method", method: http.MethodGet, contentType: "application/json", expectedStatus: http.StatusMethodNotAllowed},
		{name: "wrong_content_type", method: http.MethodPost, contentType: "text/plain", body: `{}`, expectedStatus: http.StatusUnsupportedMediaType},
		{name: "malformed", method: http.MethodPost, contentType: "application/json", body: `{"dots":[`, expectedStatus: http.StatusBadRequest},
		{name: "unknown_field", method: http.MethodPost, contentType: "application/json", body: `{"points":[]}`, expectedStatus: http.StatusBadRequest},
		{name: "empty", method: http.MethodPost, contentType: "application/json", body: `{"dots":[]}`, expectedStatus: http.StatusBadRequest},
		{
			name:           "too_many",
			method:         http.MethodPost,
			contentType:    "application/json",
			body:           `{"dots":[{"x":1,"y":1},{"x":2,"y":2},{"x":3,"y":3},{"x":4,"y":4}]}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "out_of_bounds",
			method:         http.MethodPost,
			contentType:    "application/json",
			body:           `{"dots":[{"x":1000,"y":1}]}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "full",
			method:         http.MethodPost,
			contentType:    "application/json",
			body:           `{"dots":[{"x":1,"y":1},{"x":2,"y":2}]}`,
			opts:           []index.Option{index.WithMaxPoints(1)},
			expectedStatus: http.StatusConflict,
		},
	}
	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			h, idx := newHandler(t, test.opts...)
			req := httptest.NewRequest(test.method, "/insert", strings.NewReader(test.body))
			req = req.WithContext(context.Background())
			req.Header.Set("Content-Type", test.contentType)
			rec := httptest.NewRecorder()

			h.ServeHTTP(rec, req)

			require.Equal(t, test.expectedStatus, rec.Code, rec.Body.String())
			assert.Equal(t, test.expectedSize, idx.Size())
			if rec.Code == http.StatusOK {
				var resp Response
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
				assert.Equal(t, test.expectedSize, resp.Size)
				assert.Len(t, resp.IDs, test.expectedSize)
			}
		})
	}
}
