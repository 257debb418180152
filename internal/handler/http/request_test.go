// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadJSONObject(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr error
	}{
		{name: "object", body: `{"title":"Car"}`},
		{name: "object with whitespace", body: "  \n{\"title\":null}\t"},
		{name: "empty body", body: "", wantErr: errNoJSONData},
		{name: "whitespace only", body: "   ", wantErr: errNoJSONData},
		{name: "null", body: "null", wantErr: errNoJSONData},
		{name: "empty object", body: "{}", wantErr: errNoJSONData},
		{name: "array", body: "[]", wantErr: errInvalidJSON},
		{name: "array of objects", body: `[{"title":"Car"}]`, wantErr: errInvalidJSON},
		{name: "string", body: `"Car"`, wantErr: errInvalidJSON},
		{name: "number", body: "5", wantErr: errInvalidJSON},
		{name: "malformed", body: `{"title":`, wantErr: errInvalidJSON},
		{name: "trailing garbage", body: `{"title":"Car"}}`, wantErr: errInvalidJSON},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))

			raw, err := readJSONObject(req)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, raw)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, strings.TrimSpace(tt.body), string(raw))
		})
	}
}

func TestReadJSONObject_TooLarge(t *testing.T) {
	body := `{"description":"` + strings.Repeat("a", maxRequestBodySize) + `"}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))

	_, err := readJSONObject(req)
	assert.ErrorIs(t, err, errInvalidJSON)
}
