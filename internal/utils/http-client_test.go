package utils_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/unicodetools/ucdsync/internal/utils"
)

func TestUCDHTTPClientHeaders(t *testing.T) {
	var gotUA, gotAuth, gotExtra string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		gotAuth = r.Header.Get("Authorization")
		gotExtra = r.Header.Get("X-Extra")
	}))
	defer server.Close()

	client := utils.NewUCDHTTPClient(utils.HTTPClientConfig{
		UserAgent: "ucdsync-test",
		Headers:   map[string]string{"Authorization": "Basic dXNlcjpwYXNz"},
	})
	client.SetHeader("X-Extra", "1")

	req, err := http.NewRequest(http.MethodGet, server.URL, nil)
	gt.NoError(t, err)
	resp, err := client.Do(req)
	gt.NoError(t, err)
	resp.Body.Close()

	gt.Equal(t, gotUA, "ucdsync-test")
	gt.Equal(t, gotAuth, "Basic dXNlcjpwYXNz")
	gt.Equal(t, gotExtra, "1")
}

func TestUCDHTTPClientDefaultUserAgent(t *testing.T) {
	var gotUA string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
	}))
	defer server.Close()

	client := utils.NewUCDHTTPClient(utils.HTTPClientConfig{})
	req, err := http.NewRequest(http.MethodGet, server.URL, nil)
	gt.NoError(t, err)
	resp, err := client.Do(req)
	gt.NoError(t, err)
	resp.Body.Close()

	gt.Equal(t, gotUA, "ucdsync-CLI")
}
