package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"sync"
	"testing"

	"layout-studio/internal/common/config"
	"layout-studio/internal/editor/service"
	"layout-studio/internal/layout/anchors"
	"layout-studio/internal/layout/preset"

	"github.com/gofiber/fiber/v3"
)

type memKV struct {
	mu   sync.Mutex
	data map[string]string
}

func (m *memKV) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *memKV) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

func (m *memKV) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

func (m *memKV) Keys(_ context.Context, prefix string) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	keys := []string{}
	for k := range m.data {
		if strings.HasPrefix(k, prefix) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys, nil
}

func newApp(t *testing.T) *fiber.App {
	t.Helper()
	kv := &memKV{data: map[string]string{}}
	limits := config.Panels{LeftMin: 180, LeftMax: 480, LeftDefault: 260, RightMin: 220, RightMax: 560, RightDefault: 320}
	h := NewEditorHandler(
		service.NewSessionManager(anchors.Default()),
		preset.New(kv),
		service.NewPanels(kv, limits),
		service.NewLayouts(kv),
	)
	app := fiber.New()
	h.Register(app)
	return app
}

// call sends one request and decodes a JSON answer into a generic value.
func call(t *testing.T, app *fiber.App, method, path, body string) (int, any) {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()
	raw, _ := io.ReadAll(resp.Body)

	var out any
	if len(raw) > 0 && strings.HasPrefix(resp.Header.Get("Content-Type"), "application/json") {
		if err := json.Unmarshal(raw, &out); err != nil {
			t.Fatalf("%s %s: bad json %q", method, path, raw)
		}
	} else if len(raw) > 0 {
		out = string(raw)
	}
	return resp.StatusCode, out
}

func field(v any, path ...string) any {
	for _, p := range path {
		m, ok := v.(map[string]any)
		if !ok {
			return nil
		}
		v = m[p]
	}
	return v
}

func newSession(t *testing.T, app *fiber.App) string {
	t.Helper()
	status, body := call(t, app, http.MethodPost, "/sessions", "")
	if status != http.StatusCreated {
		t.Fatalf("create session: %d", status)
	}
	return field(body, "id").(string)
}

func TestTreeEditing(t *testing.T) {
	app := newApp(t)
	sid := newSession(t, app)
	base := "/sessions/" + sid

	status, body := call(t, app, http.MethodPost, base+"/elements", `{"type":"container"}`)
	if status != http.StatusCreated || field(body, "id") != "container-1" {
		t.Fatalf("add container: %d %v", status, body)
	}
	status, body = call(t, app, http.MethodPost, base+"/elements", `{"type":"row","parentId":"container-1"}`)
	if status != http.StatusCreated || field(body, "id") != "row-2" {
		t.Fatalf("add row: %d %v", status, body)
	}

	status, body = call(t, app, http.MethodPatch, base+"/elements/row-2/props", `{"key":"justifyContent","value":"center"}`)
	if status != http.StatusOK || field(body, "element", "props", "justifyContent") != "center" {
		t.Errorf("update prop: %d %v", status, body)
	}
	status, body = call(t, app, http.MethodPatch, base+"/elements/row-2/spacing", `{"prop":"margin","side":"top","value":"8"}`)
	if status != http.StatusOK || field(body, "element", "props", "margin", "top") != "8" {
		t.Errorf("update spacing: %d %v", status, body)
	}
	status, body = call(t, app, http.MethodPatch, base+"/elements/ghost/props", `{"key":"isFluid","value":true}`)
	if status != http.StatusOK || field(body, "element") != nil {
		t.Errorf("unknown element update: %d %v", status, body)
	}

	status, _ = call(t, app, http.MethodPost, base+"/elements/container-1/move", `{"parentId":"row-2"}`)
	if status != http.StatusConflict {
		t.Errorf("cyclic move status = %d", status)
	}

	status, body = call(t, app, http.MethodGet, base+"/styles", "")
	if status != http.StatusOK {
		t.Fatalf("styles: %d", status)
	}
	tokens, _ := field(body, "row-2", "classTokens").([]any)
	if len(tokens) == 0 || tokens[0] != "flex" {
		t.Errorf("row tokens = %v", tokens)
	}

	status, body = call(t, app, http.MethodDelete, base+"/elements/container-1", "")
	if removed, _ := field(body, "removed").([]any); status != http.StatusOK || len(removed) != 2 {
		t.Errorf("delete: %d %v", status, body)
	}
}

func TestBadRequests(t *testing.T) {
	app := newApp(t)
	sid := newSession(t, app)
	base := "/sessions/" + sid

	tests := []struct {
		method, path, body string
		want               int
	}{
		{http.MethodPost, base + "/elements", "", http.StatusBadRequest},
		{http.MethodPost, base + "/elements", "{", http.StatusBadRequest},
		{http.MethodPost, base + "/elements", `{"type":"grid"}`, http.StatusBadRequest},
		{http.MethodPost, base + "/controls", `{"controlType":"slider"}`, http.StatusBadRequest},
		{http.MethodPost, base + "/components", `{"key":"nope"}`, http.StatusBadRequest},
		{http.MethodPatch, base + "/elements/x/spacing", `{"prop":"border","side":"top","value":"1"}`, http.StatusBadRequest},
		{http.MethodPost, base + "/elements", `{"type":"row","parentId":"ghost"}`, http.StatusConflict},
		{http.MethodGet, "/sessions/nope/tree", "", http.StatusNotFound},
		{http.MethodDelete, "/sessions/nope", "", http.StatusNotFound},
		{http.MethodPost, base + "/presets", `{"name":"  "}`, http.StatusBadRequest},
		{http.MethodGet, "/presets/missing", "", http.StatusNotFound},
		{http.MethodPost, base + "/layout/restore", "", http.StatusNotFound},
		{http.MethodPatch, base + "/canvas/elements/ghost", `{"key":"opacity","value":1}`, http.StatusNotFound},
	}
	for _, tt := range tests {
		if status, body := call(t, app, tt.method, tt.path, tt.body); status != tt.want {
			t.Errorf("%s %s %q: status %d, want %d (%v)", tt.method, tt.path, tt.body, status, tt.want, body)
		}
	}
}

func TestSelectionAcrossEditors(t *testing.T) {
	app := newApp(t)
	sid := newSession(t, app)
	base := "/sessions/" + sid

	call(t, app, http.MethodPost, base+"/controls", `{"controlType":"button"}`)
	_, body := call(t, app, http.MethodPost, base+"/canvas/select", `{"id":"layer2"}`)
	if field(body, "tree", "selected") != "control-1" || field(body, "tree", "panel") != "control" {
		t.Errorf("tree selection = %v", field(body, "tree"))
	}
	if field(body, "canvas", "active") != "layer2" || field(body, "canvas", "panel") != "layer2" {
		t.Errorf("canvas selection = %v", field(body, "canvas"))
	}

	_, body = call(t, app, http.MethodPost, base+"/select", `{"id":""}`)
	if field(body, "tree", "panel") != "none" {
		t.Errorf("cleared selection = %v", body)
	}
}

func TestCanvasPresetFlow(t *testing.T) {
	app := newApp(t)
	sid := newSession(t, app)
	base := "/sessions/" + sid

	status, body := call(t, app, http.MethodPatch, base+"/canvas/elements/deco-top",
		`{"values":{"width":40,"animationName":"spin","bogus":1}}`)
	if status != http.StatusOK || field(body, "element", "width") != 40.0 {
		t.Fatalf("configure: %d %v", status, body)
	}
	if rejected, _ := field(body, "rejected").([]any); len(rejected) != 1 || rejected[0] != "bogus" {
		t.Errorf("rejected = %v", field(body, "rejected"))
	}

	status, _ = call(t, app, http.MethodPut, base+"/canvas/content/deco-top", `{"html":"<em>x</em>"}`)
	if status != http.StatusNoContent {
		t.Errorf("set content status = %d", status)
	}

	status, body = call(t, app, http.MethodPost, base+"/presets", `{"name":"Spin"}`)
	if status != http.StatusCreated {
		t.Fatalf("save preset: %d %v", status, body)
	}
	pid := field(body, "id").(string)

	call(t, app, http.MethodPost, base+"/canvas/elements/deco-top/reset", "")
	_, body = call(t, app, http.MethodGet, base+"/canvas", "")
	if field(body, "elements", "deco-top", "width") != 20.0 {
		t.Errorf("reset width = %v", field(body, "elements", "deco-top", "width"))
	}

	status, body = call(t, app, http.MethodPost, base+"/presets/"+pid+"/load", "")
	if status != http.StatusOK {
		t.Fatalf("load: %d %v", status, body)
	}
	if field(body, "canvas", "elements", "deco-top", "width") != 40.0 {
		t.Error("preset load did not restore width")
	}
	attached, _ := field(body, "attached").([]any)
	if len(attached) != 9 || field(attached[0], "id") != "layer2" {
		t.Errorf("attached = %v", attached)
	}

	status, doc := call(t, app, http.MethodGet, "/presets/"+pid+"/export?title=Out", "")
	html, _ := doc.(string)
	if status != http.StatusOK || !strings.Contains(html, "<title>Out</title>") || !strings.Contains(html, "@keyframes spin") {
		t.Errorf("export: %d", status)
	}

	status, _ = call(t, app, http.MethodDelete, "/presets/"+pid, "")
	if status != http.StatusNoContent {
		t.Errorf("delete preset status = %d", status)
	}
	_, body = call(t, app, http.MethodGet, "/presets", "")
	if list, _ := field(body, "presets").([]any); len(list) != 0 {
		t.Errorf("presets after delete = %v", list)
	}
}

func TestPanelsAndLayouts(t *testing.T) {
	app := newApp(t)

	_, body := call(t, app, http.MethodGet, "/panels", "")
	if field(body, "left") != 260.0 || field(body, "right") != 320.0 {
		t.Errorf("default panels = %v", body)
	}
	_, body = call(t, app, http.MethodPut, "/panels", `{"left":10}`)
	if field(body, "left") != 180.0 {
		t.Errorf("clamped panels = %v", body)
	}

	sid := newSession(t, app)
	base := "/sessions/" + sid
	call(t, app, http.MethodPost, base+"/components", `{"key":"card"}`)

	status, body := call(t, app, http.MethodPost, base+"/layout/save", `{"name":"draft"}`)
	if status != http.StatusOK || field(body, "name") != "draft" {
		t.Fatalf("save layout: %d %v", status, body)
	}

	other := newSession(t, app)
	status, body = call(t, app, http.MethodPost, "/sessions/"+other+"/layout/restore", `{"name":"draft"}`)
	if status != http.StatusOK {
		t.Fatalf("restore layout: %d %v", status, body)
	}
	if roots, _ := field(body, "roots").([]any); len(roots) != 1 {
		t.Errorf("restored roots = %v", roots)
	}

	_, body = call(t, app, http.MethodGet, "/layouts", "")
	if names, _ := field(body, "layouts").([]any); len(names) != 1 || names[0] != "draft" {
		t.Errorf("layouts = %v", body)
	}
}

func TestCatalog(t *testing.T) {
	app := newApp(t)
	_, body := call(t, app, http.MethodGet, "/catalog", "")
	comps, _ := field(body, "components").([]any)
	controls, _ := field(body, "controls").([]any)
	if len(comps) != 5 || len(controls) != 14 {
		t.Errorf("catalog has %d components and %d controls", len(comps), len(controls))
	}
}
