package main

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndexHandler(t *testing.T) {
	h := indexHandler(page{Title: "Cacaroids", SSHHost: "play.example.com", SSHPort: "2222"}, log.New(io.Discard))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	body := rec.Body.String()
	assert.Contains(t, body, "<title>Cacaroids</title>")
	assert.Contains(t, body, "ssh -t play.example.com -p 2222")
}

func TestIndexHandlerDefaultPort(t *testing.T) {
	h := indexHandler(page{Title: "Cacaroids", SSHHost: "play.example.com", SSHPort: "22"}, log.New(io.Discard))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Contains(t, rec.Body.String(), "ssh -t play.example.com</pre>")
}

func TestIndexHandlerUnknownPath(t *testing.T) {
	h := indexHandler(page{}, log.New(io.Discard))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/favicon.ico", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
