package netx

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDoJSON(t *testing.T) {
	var gotMethod, gotCT, gotAuth string
	var gotBody map[string]string

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotCT = r.Header.Get("Content-Type")
		gotAuth = r.Header.Get("Authorization")
		b, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(b, &gotBody)
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":"n1"}`))
	}))
	defer ts.Close()

	resp, err := DoJSON(context.Background(), ts.Client(), http.MethodPost, ts.URL+"/notes", "tok", map[string]string{"title": "t"})
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "application/json", gotCT)
	assert.Equal(t, "Bearer tok", gotAuth)
	assert.Equal(t, map[string]string{"title": "t"}, gotBody)

	assert.True(t, resp.OK())
	var out struct{ ID string }
	require.NoError(t, resp.Decode(&out))
	assert.Equal(t, "n1", out.ID)
}

func TestDoJSON_NoBodyNoToken(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "" || r.Header.Get("Content-Type") != "" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	defer ts.Close()

	resp, err := DoJSON(context.Background(), ts.Client(), http.MethodGet, ts.URL, "", nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.Status)
	assert.False(t, resp.OK())
	assert.Error(t, resp.Decode(&struct{}{}))
}

func TestDoJSON_TransportError(t *testing.T) {
	ts := httptest.NewServer(http.NotFoundHandler())
	url := ts.URL
	ts.Close()

	_, err := DoJSON(context.Background(), http.DefaultClient, http.MethodGet, url, "", nil)
	assert.Error(t, err)
}
