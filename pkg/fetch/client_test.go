package fetch

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"snapvault/pkg/logger"
)

const testUserAgent = "snapvault-test/1.0"

func newTestServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return server
}

func TestClientDownload(t *testing.T) {
	var gotUserAgent string
	server := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotUserAgent = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "Image/JPEG")
		w.Write([]byte("jpeg bytes"))
	})

	client := NewClient(5*time.Second, testUserAgent, logger.NewTestLogger())
	body, contentType, err := client.Download(server.URL + "/photo.jpg")

	require.NoError(t, err)
	assert.Equal(t, []byte("jpeg bytes"), body)
	assert.Equal(t, "image/jpeg", contentType, "content type should be lowercased")
	assert.Equal(t, testUserAgent, gotUserAgent)
}

func TestClientDownloadNotFound(t *testing.T) {
	server := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})

	client := NewClient(5*time.Second, testUserAgent, logger.NewTestLogger())
	_, _, err := client.Download(server.URL + "/gone.jpg")

	require.Error(t, err)
	var fetchErr *Error
	require.ErrorAs(t, err, &fetchErr)
	assert.Equal(t, ErrorTypeNotFound, fetchErr.Type)
	assert.Equal(t, http.StatusNotFound, fetchErr.Code)
}

func TestClientDownloadServerError(t *testing.T) {
	server := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	client := NewClient(5*time.Second, testUserAgent, logger.NewTestLogger())
	_, _, err := client.Download(server.URL + "/flaky.jpg")

	require.Error(t, err)
	var fetchErr *Error
	require.ErrorAs(t, err, &fetchErr)
	assert.Equal(t, ErrorTypeServerError, fetchErr.Type)
}

func TestClientDownloadNetworkError(t *testing.T) {
	// Port 0 is never routable; the dial fails immediately.
	client := NewClient(time.Second, testUserAgent, logger.NewTestLogger())
	_, _, err := client.Download("http://127.0.0.1:0/unreachable")

	require.Error(t, err)
	var fetchErr *Error
	require.ErrorAs(t, err, &fetchErr)
	assert.Equal(t, ErrorTypeNetwork, fetchErr.Type)
}

func TestClientSetHeader(t *testing.T) {
	var gotHeader string
	server := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotHeader = r.Header.Get("X-Test")
		w.Write([]byte("ok"))
	})

	client := NewClient(5*time.Second, testUserAgent, logger.NewTestLogger())
	client.SetHeader("X-Test", "value")

	_, _, err := client.Download(server.URL)
	require.NoError(t, err)
	assert.Equal(t, "value", gotHeader)
}
