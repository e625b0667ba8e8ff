package export_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmendezv/fiado/internal/credit"
	"github.com/dmendezv/fiado/internal/credit/jsonstore"
	"github.com/dmendezv/fiado/internal/export"
	exporthttp "github.com/dmendezv/fiado/internal/http/export"
)

func newServer(t *testing.T) *httptest.Server {
	t.Helper()

	store, err := jsonstore.Open(t.TempDir() + "/ledger.json")
	require.NoError(t, err)

	svc := credit.NewService(store)

	_, err = svc.Create(context.Background(), credit.CreateParams{
		ClientName:     "Ana",
		ClientLastName: "Ruiz",
		IDNumber:       "123",
		Phone:          "555",
		Address:        "Calle 1",
		TotalAmount:    100000,
	})
	require.NoError(t, err)

	handler := exporthttp.NewHandler(export.NewService(svc))

	r := chi.NewRouter()
	r.Route("/export", handler.Routes)

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	return srv
}

func TestHandler_Credits(t *testing.T) {
	srv := newServer(t)

	resp, err := http.Get(srv.URL + "/export/credits")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/csv; charset=utf-8", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "creditos_")

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "Ana;Ruiz;123")
}

func TestHandler_Credits_BadDate(t *testing.T) {
	srv := newServer(t)

	resp, err := http.Get(srv.URL + "/export/credits?date=03-2024")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHandler_Clients(t *testing.T) {
	srv := newServer(t)

	resp, err := http.Get(srv.URL + "/export/clients")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "clientes_")

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "Ana;Ruiz;123;555;1;1")
}
