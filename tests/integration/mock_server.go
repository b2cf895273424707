package integration

import (
	"archive/zip"
	"bytes"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
)

// MockCDNServer simulates the Snapchat media CDN that download URLs in a
// memories export point at. Paths are registered with fixed payloads and
// content types; unregistered paths return 404.
type MockCDNServer struct {
	server       *httptest.Server
	requestCount int32
	mu           sync.RWMutex
	payloads     map[string]payload
	errors       map[string]int
}

type payload struct {
	data        []byte
	contentType string
}

// NewMockCDNServer creates a mock CDN with no registered media
func NewMockCDNServer() *MockCDNServer {
	m := &MockCDNServer{
		payloads: make(map[string]payload),
		errors:   make(map[string]int),
	}
	m.server = httptest.NewServer(http.HandlerFunc(m.handle))
	return m
}

func (m *MockCDNServer) handle(w http.ResponseWriter, r *http.Request) {
	atomic.AddInt32(&m.requestCount, 1)

	m.mu.RLock()
	code, hasErr := m.errors[r.URL.Path]
	p, ok := m.payloads[r.URL.Path]
	m.mu.RUnlock()

	if hasErr {
		w.WriteHeader(code)
		return
	}
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", p.contentType)
	w.WriteHeader(http.StatusOK)
	w.Write(p.data)
}

// AddMedia registers a payload served at the given path
func (m *MockCDNServer) AddMedia(path, contentType string, data []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.payloads[path] = payload{data: data, contentType: contentType}
}

// AddZipMedia registers a ZIP archive at the given path containing the
// provided entries in order.
func (m *MockCDNServer) AddZipMedia(path string, entries map[string][]byte, order []string) error {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, name := range order {
		f, err := zw.Create(name)
		if err != nil {
			return err
		}
		if _, err := f.Write(entries[name]); err != nil {
			return err
		}
	}
	if err := zw.Close(); err != nil {
		return err
	}

	m.AddMedia(path, "application/zip", buf.Bytes())
	return nil
}

// SetError makes the given path respond with an HTTP error code
func (m *MockCDNServer) SetError(path string, code int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errors[path] = code
}

// GetURL returns the mock server's base URL
func (m *MockCDNServer) GetURL() string {
	return m.server.URL
}

// GetRequestCount returns the total number of requests served
func (m *MockCDNServer) GetRequestCount() int32 {
	return atomic.LoadInt32(&m.requestCount)
}

// Close shuts down the mock server
func (m *MockCDNServer) Close() {
	m.server.Close()
}
