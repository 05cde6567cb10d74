package places

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func TestPhotoRoute(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/photo" || r.URL.Query().Get("photo_reference") != "ref-1" || r.URL.Query().Get("key") != "test-key" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write([]byte("png-bytes"))
	}))
	defer srv.Close()

	app := fiber.New()
	RegisterRoutes(app.Group("/api/places"), newTestClient(srv, nil))

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/places/photo/ref-1?maxwidth=200", nil))
	if err != nil || resp.StatusCode != http.StatusOK {
		t.Fatalf("photo status: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	if string(body) != "png-bytes" || resp.Header.Get("Content-Type") != "image/png" {
		t.Fatalf("unexpected photo response %q", body)
	}

	resp, _ = app.Test(httptest.NewRequest(http.MethodGet, "/api/places/photo/other", nil))
	if resp.StatusCode != http.StatusBadGateway {
		t.Fatalf("expected bad gateway, got %d", resp.StatusCode)
	}
}

func TestPhotoRouteNotConfigured(t *testing.T) {
	app := fiber.New()
	RegisterRoutes(app.Group("/api/places"), NewClient(Options{}))

	resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/api/places/photo/ref-1", nil))
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected not found, got %d", resp.StatusCode)
	}
}
