package assets

import (
	"errors"
	"log"
	"net/http"

	"github.com/gofiber/fiber/v3"
)

// ============================================================
// Assets Handler
// ============================================================

type Handler struct {
	lib *Library
}

func NewHandler(lib *Library) *Handler {
	return &Handler{lib: lib}
}

// Register монтирует API ассетов на r.
func (h *Handler) Register(r fiber.Router) {
	r.Get("/api/fonts", h.ListFonts)
	r.Get("/api/ascii", h.ListASCII)
	r.Get("/api/ascii/:filename", h.GetASCII)
}

// ListFonts возвращает список .ttf шрифтов.
func (h *Handler) ListFonts(c fiber.Ctx) error {
	fonts, err := h.lib.Fonts()
	if err != nil {
		log.Printf("[ASSETS] fonts error: %v", err)
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "failed to scan fonts"})
	}
	return c.JSON(fonts)
}

// ListASCII возвращает список ascii-файлов, отсортированный по имени.
func (h *Handler) ListASCII(c fiber.Ctx) error {
	files, err := h.lib.ASCII()
	if err != nil {
		log.Printf("[ASSETS] ascii error: %v", err)
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "failed to scan ascii"})
	}
	return c.JSON(files)
}

// GetASCII отдаёт содержимое ascii-файла в подобранной кодировке.
func (h *Handler) GetASCII(c fiber.Ctx) error {
	name := c.Params("filename")
	content, err := h.lib.ReadASCII(name)
	switch {
	case errors.Is(err, ErrInvalidName):
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "invalid filename"})
	case errors.Is(err, ErrNotFound):
		return c.Status(http.StatusNotFound).JSON(fiber.Map{"error": "file not found"})
	case err != nil:
		log.Printf("[ASSETS] read %s error: %v", name, err)
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "failed to read file"})
	}
	log.Printf("[ASSETS] %s decoded as %s", name, content.Encoding)
	return c.JSON(content)
}
