package proxy

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v3"
)

func TestPrefixForwardsPathQueryAndHeaders(t *testing.T) {
	var gotPath, gotQuery, gotSession, gotBody string
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		gotSession = r.Header.Get("X-Session-ID")
		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("X-Upstream", "editor")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":"s1"}`))
	}))
	defer upstream.Close()

	app := fiber.New()
	app.All("/api/v1/editor/*", Prefix(upstream.URL+"/", "/api/v1/editor"))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/editor/sessions?x=1", strings.NewReader(`{"a":1}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Session-ID", "abc")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusCreated || string(body) != `{"id":"s1"}` {
		t.Errorf("response = %d %s", resp.StatusCode, body)
	}
	if resp.Header.Get("X-Upstream") != "editor" {
		t.Error("upstream headers not copied")
	}
	if gotPath != "/sessions" || gotQuery != "x=1" {
		t.Errorf("upstream saw %s?%s", gotPath, gotQuery)
	}
	if gotSession != "abc" || gotBody != `{"a":1}` {
		t.Errorf("forwarded session %q body %q", gotSession, gotBody)
	}
}

func TestUnreachableUpstream(t *testing.T) {
	upstream := httptest.NewServer(http.NotFoundHandler())
	url := upstream.URL
	upstream.Close()

	app := fiber.New()
	app.Get("/api/fonts", Prefix(url, ""))
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/fonts", nil))
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusBadGateway {
		t.Errorf("status = %d, want 502", resp.StatusCode)
	}
}
