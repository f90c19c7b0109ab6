package query

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-sod/dotquad/internal/dot"
	"github.com/go-sod/dotquad/internal/index"
	"github.com/go-sod/dotquad/pkg/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandler_ServeHTTP(t *testing.T) {
	ctx := context.Background()
	idx, err := index.New(geom.Rect{X2: 800, Y2: 600})
	require.NoError(t, err)
	require.NoError(t, idx.Insert(ctx,
		dot.New(400, 300, "A", nil),
		dot.New(150, 450, "B", nil),
		dot.New(250, 550, "C", nil),
	))
	h, err := NewHandler(&Config{RequestTimeout: time.Second, MaxRadius: 1000}, idx)
	require.NoError(t, err)

	tests := []struct {
		name             string
		body             string
		expectedStatus   int
		expectedLabels   []string
		expectedRect     int64
		expectedInCircle int64
	}{
		{name: "everything", body: `{"x":0,"y":0,"r":900}`, expectedStatus: http.StatusOK, expectedLabels: []string{"A", "B", "C"}, expectedRect: 3, expectedInCircle: 3},
		{name: "nearest_two", body: `{"x":0,"y":0,"r":900,"limit":2}`, expectedStatus: http.StatusOK, expectedLabels: []string{"B", "A"}, expectedRect: 3, expectedInCircle: 3},
		{name: "around_root", body: `{"x":400,"y":300,"r":10}`, expectedStatus: http.StatusOK, expectedLabels: []string{"A"}, expectedRect: 3, expectedInCircle: 2},
		{name: "around_b", body: `{"x":150,"y":450,"r":200}`, expectedStatus: http.StatusOK, expectedLabels: []string{"B", "C"}, expectedRect: 3, expectedInCircle: 3},
		{name: "negative_radius", body: `{"x":400,"y":300,"r":-1}`, expectedStatus: http.StatusOK, expectedLabels: []string{}, expectedRect: 1},
		{name: "radius_too_large", body: `{"x":0,"y":0,"r":5000}`, expectedStatus: http.StatusBadRequest},
		{name: "malformed", body: `{"x":"a"}`, expectedStatus: http.StatusBadRequest},
	}
	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/find", strings.NewReader(test.body))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()

			h.ServeHTTP(rec, req)

			require.Equal(t, test.expectedStatus, rec.Code, rec.Body.String())
			if rec.Code != http.StatusOK {
				return
			}
			var resp struct {
				Dots []struct {
					Label    string  `json:"label"`
					Distance float64 `json:"distance"`
				} `json:"dots"`
				RectangleTests int64 `json:"rectangleTests"`
				InCircleTests  int64 `json:"circleTests"`
			}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			labels := []string{}
			for _, d := range resp.Dots {
				labels = append(labels, d.Label)
			}
			assert.Equal(t, test.expectedLabels, labels)
			assert.Equal(t, test.expectedRect, resp.RectangleTests)
			assert.Equal(t, test.expectedInCircle, resp.InCircleTests)
		})
	}
}

func TestHandler_Distance(t *testing.T) {
	idx, err := index.New(geom.Rect{X2: 800, Y2: 600})
	require.NoError(t, err)
	require.NoError(t, idx.Insert(context.Background(), dot.New(403, 304, "A", nil)))
	h, err := NewHandler(&Config{RequestTimeout: time.Second}, idx)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/find", strings.NewReader(`{"x":400,"y":300,"r":5}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Dots, 1)
	assert.Equal(t, 5.0, resp.Dots[0].Distance)
}
