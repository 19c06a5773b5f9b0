package middleware

import (
	"bytes"
	"compress/gzip"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"ContactHub/internal/query"
	"ContactHub/internal/records"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gzipJSON(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	require.NoError(t, json.NewEncoder(zw).Encode(v))
	require.NoError(t, zw.Close())
	return &buf
}

func fetchRequest(t *testing.T, body io.Reader) *http.Request {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/records/contacts/fetch", body)
	req.Header.Set("Content-Type", "application/json")
	req.AddCookie(authCookie(t, 7, "s"))
	return req
}

func TestWithGzip_CompressedFetchQuery(t *testing.T) {
	h := recordsRouter(t, "s")
	q := query.New("Name").Filter(query.Eq("lastName_c", "johnson"))

	t.Run("gzip body, plain response", func(t *testing.T) {
		req := fetchRequest(t, gzipJSON(t, q))
		req.Header.Set("Content-Encoding", "gzip")
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Empty(t, rr.Header().Get("Content-Encoding"))
		var resp records.FetchResponse[records.Contact]
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.True(t, resp.Success)
		assert.Equal(t, 2, resp.Total)
		assert.Equal(t, "Sarah Johnson", resp.Data[0].Name)
	})

	t.Run("gzip body and gzip response", func(t *testing.T) {
		req := fetchRequest(t, gzipJSON(t, q))
		req.Header.Set("Content-Encoding", "gzip")
		req.Header.Set("Accept-Encoding", "gzip, deflate")
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "gzip", rr.Header().Get("Content-Encoding"))
		assert.Empty(t, rr.Header().Get("Content-Length"))
		zr, err := gzip.NewReader(rr.Body)
		require.NoError(t, err)
		defer zr.Close()
		var resp records.FetchResponse[records.Contact]
		require.NoError(t, json.NewDecoder(zr).Decode(&resp))
		assert.Equal(t, 2, resp.Total)
	})

	t.Run("plain body, gzip response", func(t *testing.T) {
		raw, err := json.Marshal(query.New("Name"))
		require.NoError(t, err)
		req := fetchRequest(t, bytes.NewReader(raw))
		req.Header.Set("Accept-Encoding", "gzip")
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, req)

		require.Equal(t, "gzip", rr.Header().Get("Content-Encoding"))
		zr, err := gzip.NewReader(rr.Body)
		require.NoError(t, err)
		var resp records.FetchResponse[records.Contact]
		require.NoError(t, json.NewDecoder(zr).Decode(&resp))
		assert.Equal(t, len(testContacts), resp.Total)
	})
}

func TestWithGzip_InvalidBody(t *testing.T) {
	h := recordsRouter(t, "s")
	req := fetchRequest(t, strings.NewReader(`{"where":[]}`))
	req.Header.Set("Content-Encoding", "gzip")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "invalid gzip body")
}
