// SPDX-License-Identifier: MIT
package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/thatcatcamp/huekit/internal/config"
	"github.com/thatcatcamp/huekit/internal/db"
	"github.com/thatcatcamp/huekit/internal/harmony"
	"github.com/thatcatcamp/huekit/internal/themes"
)

func setupRouter(t *testing.T, opts RouterOptions) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	conn, err := db.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	api := New(conn, config.ThemeDefaults{
		Harmony:   harmony.Default,
		Radius:    themes.DefaultRadius,
		CacheSize: 16,
	})
	r, stop := NewRouter(api, opts)
	t.Cleanup(stop)
	return r
}

func do(r *gin.Engine, method, path, body string, headers ...string) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != "" {
		reader = bytes.NewReader([]byte(body))
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("Response is not JSON: %v\n%s", err, w.Body.String())
	}
	return out
}

func TestHealth(t *testing.T) {
	r := setupRouter(t, RouterOptions{})

	w := do(r, "GET", "/health", "")
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}
	body := decode(t, w)
	if body["status"] != "ok" || body["cached_themes"] != float64(0) {
		t.Errorf("Unexpected body: %s", w.Body.String())
	}

	do(r, "POST", "/api/themes", `{"primary":"#3b82f6"}`)
	if got := decode(t, do(r, "GET", "/health", ""))["cached_themes"]; got != float64(1) {
		t.Errorf("Expected 1 cached theme, got %v", got)
	}
}

func TestListHarmonies(t *testing.T) {
	r := setupRouter(t, RouterOptions{})

	w := do(r, "GET", "/api/harmonies", "")
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}
	list := decode(t, w)["harmonies"].([]any)
	if len(list) != len(harmony.All()) {
		t.Errorf("Expected %d harmonies, got %d", len(harmony.All()), len(list))
	}
}

func TestGenerateTheme(t *testing.T) {
	r := setupRouter(t, RouterOptions{})

	w := do(r, "POST", "/api/themes", `{"primary":"#3b82f6","harmony":"complementary"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if w.Header().Get("ETag") == "" {
		t.Error("Expected ETag header")
	}

	body := decode(t, w)
	tokens := body["tokens"].(map[string]any)
	light := tokens["light"].(map[string]any)
	if len(light) != 32 {
		t.Errorf("Expected 32 light tokens, got %d", len(light))
	}
	if bg, _ := light["background"].(string); !strings.HasPrefix(bg, "oklch(") {
		t.Errorf("Expected oklch background, got %v", light["background"])
	}
	if warnings := body["contrastWarnings"].([]any); len(warnings) != 22 {
		t.Errorf("Expected 22 contrast entries, got %d", len(warnings))
	}
}

func TestGenerateThemeErrors(t *testing.T) {
	r := setupRouter(t, RouterOptions{})

	tests := []struct {
		name string
		body string
		want int
	}{
		{"unparseable primary", `{"primary":"not-a-color"}`, http.StatusUnprocessableEntity},
		{"missing primary", `{}`, http.StatusUnprocessableEntity},
		{"unknown harmony", `{"primary":"#fff","harmony":"pentadic"}`, http.StatusBadRequest},
		{"unknown strategy", `{"primary":"#fff","background_strategy":"gradient"}`, http.StatusBadRequest},
		{"unknown gamut", `{"primary":"#fff","gamut":"cmyk"}`, http.StatusBadRequest},
		{"radius out of range", `{"primary":"#fff","radius":4}`, http.StatusBadRequest},
		{"malformed json", `{"primary":`, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(r, "POST", "/api/themes", tt.body)
			if w.Code != tt.want {
				t.Errorf("Expected %d, got %d: %s", tt.want, w.Code, w.Body.String())
			}
			if _, ok := decode(t, w)["error"]; !ok {
				t.Error("Expected error field")
			}
		})
	}
}

func TestGenerateThemeIgnoresBadSecondary(t *testing.T) {
	r := setupRouter(t, RouterOptions{})

	w := do(r, "POST", "/api/themes", `{"primary":"#3b82f6","secondary":"nope"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}
}

func TestThemeCSSFormats(t *testing.T) {
	r := setupRouter(t, RouterOptions{})
	body := `{"primary":"#059669","radius":0.5}`

	tests := []struct {
		format      string
		contentType string
		contains    string
	}{
		{"", "text/css", "--radius: 0.5rem;"},
		{"css", "text/css", ".dark {"},
		{"preview", "text/css", "[data-theme-preview] {"},
		{"tokens", "application/json", `"colorSpace": "oklch"`},
		{"yaml", "application/yaml", "light:"},
		{"svg", "image/svg+xml", "<svg"},
	}
	for _, tt := range tests {
		t.Run("format="+tt.format, func(t *testing.T) {
			path := "/api/themes/css"
			if tt.format != "" {
				path += "?format=" + tt.format
			}
			w := do(r, "POST", path, body)
			if w.Code != http.StatusOK {
				t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
			}
			if !strings.HasPrefix(w.Header().Get("Content-Type"), tt.contentType) {
				t.Errorf("Expected %s, got %s", tt.contentType, w.Header().Get("Content-Type"))
			}
			if !strings.Contains(w.Body.String(), tt.contains) {
				t.Errorf("Expected body to contain %q", tt.contains)
			}
		})
	}

	w := do(r, "POST", "/api/themes/css?format=pdf", body)
	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for unknown format, got %d", w.Code)
	}

	w = do(r, "POST", "/api/themes/css?base=true", body)
	if !strings.Contains(w.Body.String(), "var(--ring)") {
		t.Error("Expected base styles appended")
	}
}

func TestCompareHarmonies(t *testing.T) {
	r := setupRouter(t, RouterOptions{})

	w := do(r, "GET", "/api/themes/compare?primary=%233b82f6", "")
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if got := len(decode(t, w)["comparisons"].([]any)); got != len(harmony.All()) {
		t.Errorf("Expected %d comparisons, got %d", len(harmony.All()), got)
	}

	w = do(r, "GET", "/api/themes/compare?primary=%233b82f6&harmonies=triadic,complementary", "")
	grid := decode(t, w)["comparisons"].([]any)
	if len(grid) != 2 {
		t.Fatalf("Expected 2 comparisons, got %d", len(grid))
	}
	first := grid[0].(map[string]any)["harmony"].(map[string]any)
	if first["type"] != "triadic" {
		t.Errorf("Expected triadic first, got %v", first["type"])
	}

	if w := do(r, "GET", "/api/themes/compare?primary=nope", ""); w.Code != http.StatusUnprocessableEntity {
		t.Errorf("Expected 422, got %d", w.Code)
	}
	if w := do(r, "GET", "/api/themes/compare?primary=%23fff&harmonies=pentadic", ""); w.Code != http.StatusBadRequest {
		t.Errorf("Expected 400, got %d", w.Code)
	}
}

func TestCheckContrast(t *testing.T) {
	r := setupRouter(t, RouterOptions{})

	w := do(r, "GET", "/api/contrast?fg=%23000000&bg=%23ffffff", "")
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}
	body := decode(t, w)
	result := body["result"].(map[string]any)
	if result["aa"] != true || result["aaa"] != true {
		t.Errorf("Black on white should pass AA and AAA: %v", result)
	}
	if body["model"] != "oklch" {
		t.Errorf("Expected oklch model, got %v", body["model"])
	}

	w = do(r, "GET", "/api/contrast?fg=%23000000&bg=%23ffffff&model=wcag", "")
	if decode(t, w)["model"] != "wcag" {
		t.Error("Expected wcag model")
	}

	if w := do(r, "GET", "/api/contrast?fg=bogus&bg=%23fff", ""); w.Code != http.StatusUnprocessableEntity {
		t.Errorf("Expected 422, got %d", w.Code)
	}
	if w := do(r, "GET", "/api/contrast?fg=%23000&bg=%23fff&model=nope", ""); w.Code != http.StatusBadRequest {
		t.Errorf("Expected 400, got %d", w.Code)
	}
}

func TestPresets(t *testing.T) {
	r := setupRouter(t, RouterOptions{})

	w := do(r, "GET", "/api/presets", "")
	if got := len(decode(t, w)["presets"].([]any)); got != len(themes.ListPresets()) {
		t.Errorf("Expected %d presets, got %d", len(themes.ListPresets()), got)
	}

	w = do(r, "GET", "/api/presets/slate", "")
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}
	body := decode(t, w)
	if body["preset"].(map[string]any)["name"] != "slate" || body["theme"] == nil {
		t.Errorf("Unexpected preset body: %s", w.Body.String())
	}

	if w := do(r, "GET", "/api/presets/plaid", ""); w.Code != http.StatusNotFound {
		t.Errorf("Expected 404, got %d", w.Code)
	}
}

func TestRateLimitedRouter(t *testing.T) {
	r := setupRouter(t, RouterOptions{RateLimit: 2})

	for i := 0; i < 2; i++ {
		if w := do(r, "GET", "/api/harmonies", ""); w.Code != http.StatusOK {
			t.Fatalf("Request %d: expected 200, got %d", i+1, w.Code)
		}
	}
	if w := do(r, "GET", "/api/harmonies", ""); w.Code != http.StatusTooManyRequests {
		t.Errorf("Expected 429, got %d", w.Code)
	}
	if w := do(r, "GET", "/health", ""); w.Code != http.StatusOK {
		t.Errorf("Health should not be limited, got %d", w.Code)
	}
}
