package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pgtools/pg-config-view/models"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/config/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode([]models.ConfigEntry{
			{Name: "BINDIR", Setting: "/usr/local/pgsql/bin"},
			{Name: "DOCDIR", Setting: "/usr/local/pgsql/share/doc/postgresql"},
		})
	})
	mux.HandleFunc("GET /api/config/{name}", func(w http.ResponseWriter, r *http.Request) {
		if r.PathValue("name") != "BINDIR" {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusNotFound)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "configuration entry was not found"})
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.ConfigEntry{Name: "BINDIR", Setting: "/usr/local/pgsql/bin"})
	})
	mux.HandleFunc("GET /api/version/", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("PostgreSQL 0.1.0-dev"))
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	return srv
}

func TestHTTPServerAdapter_GetConfig(t *testing.T) {
	srv := newTestServer(t)

	a, err := NewHTTPServerAdapter(HTTPClientConfig{BaseURL: srv.URL})
	require.NoError(t, err)

	entries, err := a.GetConfig(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "BINDIR", entries[0].Name)
	assert.Equal(t, "/usr/local/pgsql/bin", entries[0].Setting)
}

func TestHTTPServerAdapter_GetValue(t *testing.T) {
	srv := newTestServer(t)

	a, err := NewHTTPServerAdapter(HTTPClientConfig{BaseURL: srv.URL})
	require.NoError(t, err)

	entry, err := a.GetValue(context.Background(), "BINDIR")
	require.NoError(t, err)
	assert.Equal(t, models.ConfigEntry{Name: "BINDIR", Setting: "/usr/local/pgsql/bin"}, entry)
}

func TestHTTPServerAdapter_GetValue_Unknown(t *testing.T) {
	srv := newTestServer(t)

	a, err := NewHTTPServerAdapter(HTTPClientConfig{BaseURL: srv.URL})
	require.NoError(t, err)

	_, err = a.GetValue(context.Background(), "NOPE")
	assert.ErrorIs(t, err, ErrUnknownKey)
}

func TestHTTPServerAdapter_GetVersion(t *testing.T) {
	srv := newTestServer(t)

	a, err := NewHTTPServerAdapter(HTTPClientConfig{BaseURL: srv.URL})
	require.NoError(t, err)

	version, err := a.GetVersion(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "PostgreSQL 0.1.0-dev", version)
}

func TestHTTPServerAdapter_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)

	a, err := NewHTTPServerAdapter(HTTPClientConfig{BaseURL: srv.URL})
	require.NoError(t, err)

	_, err = a.GetConfig(context.Background())
	assert.ErrorIs(t, err, ErrServerError)
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "localhost:8080", want: "http://localhost:8080"},
		{in: "http://localhost:8080/", want: "http://localhost:8080"},
		{in: "https://pg.example.com", want: "https://pg.example.com"},
		{in: "  ", wantErr: true},
	}

	for _, tt := range tests {
		got, err := normalizeBaseURL(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}
