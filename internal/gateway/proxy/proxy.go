package proxy

import (
	"bytes"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"
)

// ============================================================
// Proxy Handler
// ============================================================

var client = &http.Client{Timeout: 30 * time.Second}

// forwardHeaders копируются из входящего запроса в апстрим.
var forwardHeaders = []string{"Content-Type", "Accept", "Authorization", "X-Session-ID"}

// Prefix проксирует запрос в upstream, отрезая strip от начала пути
// и сохраняя query string.
func Prefix(upstream, strip string) fiber.Handler {
	upstream = strings.TrimSuffix(upstream, "/")
	return func(c fiber.Ctx) error {
		rest := strings.TrimPrefix(c.Path(), strip)
		if rest != "" && !strings.HasPrefix(rest, "/") {
			rest = "/" + rest
		}
		target := upstream + rest
		if q := string(c.Request().URI().QueryString()); q != "" {
			target += "?" + q
		}
		return Forward(c, target)
	}
}

// Forward проксирует запрос по переданному URL (для динамических путей).
func Forward(c fiber.Ctx, targetURL string) error {
	log.Printf("[GATEWAY] %s %s -> %s (%d bytes)", c.Method(), c.Path(), targetURL, len(c.Body()))

	req, err := http.NewRequest(c.Method(), targetURL, bytes.NewReader(c.Body()))
	if err != nil {
		log.Printf("[GATEWAY] build request error: %v", err)
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "proxy failed"})
	}
	for _, h := range forwardHeaders {
		if v := c.Get(h); v != "" {
			req.Header.Set(h, v)
		}
	}

	resp, err := client.Do(req)
	if err != nil {
		log.Printf("[GATEWAY] Error: %v", err)
		return c.Status(http.StatusBadGateway).JSON(fiber.Map{"error": "failed to reach upstream service"})
	}
	defer resp.Body.Close()

	return copyResponse(c, resp)
}

func copyResponse(c fiber.Ctx, resp *http.Response) error {
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Printf("[GATEWAY] Read response error: %v", err)
		return c.Status(http.StatusBadGateway).JSON(fiber.Map{"error": "invalid upstream response"})
	}

	for key, values := range resp.Header {
		if len(values) > 0 && !strings.EqualFold(key, "Content-Length") {
			c.Set(key, values[0])
		}
	}

	c.Status(resp.StatusCode)
	return c.Send(data)
}
