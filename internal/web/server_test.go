package web

import (
	"context"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/inodb/vibe-dna/internal/config"
	"github.com/inodb/vibe-dna/internal/pipeline"
	"github.com/inodb/vibe-dna/internal/render"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	p := pipeline.New(render.NewRenderer(320, 240))
	s := NewServer(config.ServerConfig{
		Addr:              "127.0.0.1:0",
		ReadTimeout:       5 * time.Second,
		WriteTimeout:      5 * time.Second,
		MaxSequenceLength: 64,
	}, p)
	s.SetLogger(zaptest.NewLogger(t))
	return s
}

func submit(t *testing.T, h http.Handler, seq string) *httptest.ResponseRecorder {
	t.Helper()
	form := url.Values{"sequence": {seq}}
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestIndex_Get(t *testing.T) {
	h := newTestServer(t).Handler()

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	body := rec.Body.String()
	assert.Contains(t, body, PageTitle)
	assert.Contains(t, body, `name="sequence"`)
	assert.NotContains(t, body, "<img")
}

func TestIndex_SubmitValid(t *testing.T) {
	h := newTestServer(t).Handler()

	rec := submit(t, h, "ATCGATCG")
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Equal(t, 3, strings.Count(body, `src="data:image/png;base64,`))
	assert.NotContains(t, body, `class="error"`)

	// Charts are embedded in pipeline order.
	iHelix := strings.Index(body, render.HelixTitle)
	iCodons := strings.Index(body, render.CodonTitle)
	iPie := strings.Index(body, render.ProportionTitle)
	require.True(t, iHelix >= 0 && iCodons >= 0 && iPie >= 0)
	assert.Less(t, iHelix, iCodons)
	assert.Less(t, iCodons, iPie)

	assert.Contains(t, body, "8 bases, 3 codons.")
	assert.Contains(t, body, "TAGCTAGC")
}

func TestIndex_SubmitInvalid(t *testing.T) {
	tests := []struct {
		name string
		seq  string
	}{
		{"invalid character", "ATXG"},
		{"lowercase", "atcg"},
		{"surrounding space", " ATCG"},
	}

	h := newTestServer(t).Handler()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := submit(t, h, tt.seq)
			assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

			body := rec.Body.String()
			assert.Contains(t, body, "The DNA sequence contains invalid characters.")
			assert.NotContains(t, body, "<img")
		})
	}
}

func TestIndex_SubmitEmpty(t *testing.T) {
	h := newTestServer(t).Handler()

	rec := submit(t, h, "")
	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.NotContains(t, body, `class="error"`)
	assert.NotContains(t, body, "<img")
}

func TestIndex_SubmitTooLong(t *testing.T) {
	h := newTestServer(t).Handler()

	rec := submit(t, h, strings.Repeat("A", 65))
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.Contains(t, rec.Body.String(), "too long")
	assert.NotContains(t, rec.Body.String(), "<img")
}

func TestIndex_InputEscaped(t *testing.T) {
	h := newTestServer(t).Handler()

	rec := submit(t, h, `"><script>`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.NotContains(t, rec.Body.String(), "<script>")
}

func TestIndex_MethodNotAllowed(t *testing.T) {
	h := newTestServer(t).Handler()

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestIndex_UnknownPath(t *testing.T) {
	h := newTestServer(t).Handler()

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHealth(t *testing.T) {
	h := newTestServer(t).Handler()

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}

func TestServe_Shutdown(t *testing.T) {
	s := newTestServer(t)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Serve(ctx, ln) }()

	resp, err := http.Get("http://" + ln.Addr().String() + "/healthz")
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)
	assert.Equal(t, "ok", string(body))

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(10 * time.Second):
		t.Fatal("server did not shut down")
	}
}
