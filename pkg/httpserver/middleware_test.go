package httpserver

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap/zaptest"
)

func TestRequestLogger(t *testing.T) {
	logger := zaptest.NewLogger(t)

	app := fiber.New()
	app.Use(RequestLogger(logger))
	app.Get("/ok", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	app.Get("/fail", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusBadRequest, "bad input")
	})

	// Test successful request
	t.Run("successful request", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/ok", nil))
		if err != nil {
			t.Fatalf("test request failed: %v", err)
		}
		if resp.StatusCode != http.StatusOK {
			t.Errorf("Expected 200, got %d", resp.StatusCode)
		}
	})

	// Test error request
	t.Run("error request", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/fail", nil))
		if err != nil {
			t.Fatalf("test request failed: %v", err)
		}
		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("Expected 400, got %d", resp.StatusCode)
		}
	})
}

func TestRecoverMiddleware(t *testing.T) {
	logger := zaptest.NewLogger(t)

	app := fiber.New(fiber.Config{ErrorHandler: newErrorHandler(logger)})
	app.Use(Recover(logger))
	app.Get("/panic", func(c *fiber.Ctx) error {
		panic("kaboom")
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/panic", nil))
	if err != nil {
		t.Fatalf("test request failed: %v", err)
	}
	if resp.StatusCode != http.StatusInternalServerError {
		t.Errorf("Expected 500, got %d", resp.StatusCode)
	}

	body, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(body), `"error"`) {
		t.Errorf("Expected error envelope, got %s", body)
	}
}

func TestErrorEnvelope(t *testing.T) {
	logger := zaptest.NewLogger(t)

	app := fiber.New(fiber.Config{ErrorHandler: newErrorHandler(logger)})
	app.Get("/fail", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusUnprocessableEntity, "cannot handle that")
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/fail", nil))
	if err != nil {
		t.Fatalf("test request failed: %v", err)
	}
	if resp.StatusCode != http.StatusUnprocessableEntity {
		t.Errorf("Expected 422, got %d", resp.StatusCode)
	}

	body, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(body), `"code":422`) {
		t.Errorf("Expected code in envelope, got %s", body)
	}
	if !strings.Contains(string(body), `"message":"cannot handle that"`) {
		t.Errorf("Expected message in envelope, got %s", body)
	}
}

func TestServerBuilder(t *testing.T) {
	logger := zaptest.NewLogger(t)

	t.Run("builds, serves and shuts down", func(t *testing.T) {
		server, err := New(
			WithAddr("127.0.0.1:0"),
			WithLogger(logger),
			WithLogging(true),
		)
		if err != nil {
			t.Fatalf("Failed to create server: %v", err)
		}
		defer func() {
			if err := server.Shutdown(context.Background()); err != nil {
				t.Logf("Server shutdown error: %v", err)
			}
		}()

		if server.Addr() == nil {
			t.Error("Expected a bound address")
		}

		server.RegisterRoutes(func(app *fiber.App) {
			app.Get("/ping", func(c *fiber.Ctx) error {
				return c.SendString("pong")
			})
		})

		resp, err := server.App().Test(httptest.NewRequest(http.MethodGet, "/ping", nil))
		if err != nil {
			t.Fatalf("test request failed: %v", err)
		}
		if resp.StatusCode != http.StatusOK {
			t.Errorf("Expected 200, got %d", resp.StatusCode)
		}
	})

	t.Run("empty address is rejected", func(t *testing.T) {
		if _, err := New(WithAddr("")); err == nil {
			t.Error("Expected an error for empty address")
		}
	})
}
