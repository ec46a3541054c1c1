package middleware

import (
	"io"
	"os"
	"strings"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/logger"
)

// ============================================================
// Logger Middleware
// ============================================================

// SessionHeader - заголовок, которым клиент указывает сессию редактора.
const SessionHeader = "X-Session-ID"

// quietPrefixes не логируются: пробы оркестратора дёргают их каждые несколько секунд.
var quietPrefixes = []string{"/health/", "/docs/"}

// Logger логирует запросы сервиса service в stdout.
func Logger(service string) fiber.Handler {
	return LoggerTo(service, os.Stdout)
}

// LoggerTo логирует запросы сервиса service в out.
// Строка содержит тег сервиса и сессию из X-Session-ID ("-" если её нет).
func LoggerTo(service string, out io.Writer) fiber.Handler {
	tag := strings.ToUpper(service)
	return logger.New(logger.Config{
		Stream:     out,
		Format:     "[${time}] [" + tag + "] ${status} - ${latency} ${method} ${path} session=${session}\n",
		TimeFormat: "15:04:05",
		TimeZone:   "Local",
		Skip:       quiet,
		CustomTags: map[string]logger.LogFunc{
			"session": func(output logger.Buffer, c fiber.Ctx, _ *logger.Data, _ string) (int, error) {
				id := c.Get(SessionHeader)
				if id == "" {
					id = "-"
				}
				return output.WriteString(id)
			},
		},
	})
}

func quiet(c fiber.Ctx) bool {
	for _, p := range quietPrefixes {
		if strings.HasPrefix(c.Path(), p) {
			return true
		}
	}
	return false
}
