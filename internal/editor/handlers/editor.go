package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"layout-studio/internal/editor/service"
	"layout-studio/internal/layout/anchored"
	"layout-studio/internal/layout/preset"
	"layout-studio/internal/layout/tree"

	"github.com/gofiber/fiber/v3"
)

// ============================================================
// Editor Handler
// ============================================================

type EditorHandler struct {
	sessions *service.SessionManager
	presets  *preset.Codec
	panels   *service.Panels
	layouts  *service.Layouts
}

func NewEditorHandler(sessions *service.SessionManager, presets *preset.Codec, panels *service.Panels, layouts *service.Layouts) *EditorHandler {
	return &EditorHandler{
		sessions: sessions,
		presets:  presets,
		panels:   panels,
		layouts:  layouts,
	}
}

// Register монтирует все маршруты редактора на r.
func (h *EditorHandler) Register(r fiber.Router) {
	r.Get("/catalog", h.Catalog)
	r.Get("/panels", h.GetPanels)
	r.Put("/panels", h.SetPanels)

	r.Post("/sessions", h.CreateSession)
	r.Get("/sessions", h.ListSessions)
	r.Delete("/sessions/:id", h.DeleteSession)

	// Редактор дерева
	r.Get("/sessions/:id/tree", h.GetTree)
	r.Post("/sessions/:id/elements", h.AddElement)
	r.Post("/sessions/:id/controls", h.AddControl)
	r.Post("/sessions/:id/components", h.AddComponent)
	r.Patch("/sessions/:id/elements/:eid/props", h.UpdateProp)
	r.Patch("/sessions/:id/elements/:eid/spacing", h.UpdateSpacing)
	r.Patch("/sessions/:id/elements/:eid/gutters", h.UpdateGutter)
	r.Patch("/sessions/:id/elements/:eid/name", h.Rename)
	r.Post("/sessions/:id/elements/:eid/move", h.MoveElement)
	r.Delete("/sessions/:id/elements/:eid", h.DeleteElement)
	r.Post("/sessions/:id/select", h.Select)
	r.Get("/sessions/:id/selection", h.Selection)
	r.Get("/sessions/:id/styles", h.TreeStyles)

	// Сохраненные макеты
	r.Get("/layouts", h.ListLayouts)
	r.Delete("/layouts/:name", h.DeleteLayout)
	r.Post("/sessions/:id/layout/save", h.SaveLayout)
	r.Post("/sessions/:id/layout/restore", h.RestoreLayout)

	// Свободный холст
	r.Get("/sessions/:id/canvas", h.GetCanvas)
	r.Get("/sessions/:id/canvas/styles", h.CanvasStyles)
	r.Patch("/sessions/:id/canvas/layer2", h.ConfigureLayer2)
	r.Patch("/sessions/:id/canvas/elements/:eid", h.ConfigureElement)
	r.Post("/sessions/:id/canvas/elements/:eid/reset", h.ResetElement)
	r.Put("/sessions/:id/canvas/content/:eid", h.SetContent)
	r.Post("/sessions/:id/canvas/select", h.SelectCanvas)

	// Пресеты
	r.Get("/presets", h.ListPresets)
	r.Get("/presets/:pid", h.GetPreset)
	r.Delete("/presets/:pid", h.DeletePreset)
	r.Get("/presets/:pid/export", h.ExportPreset)
	r.Post("/sessions/:id/presets", h.SavePreset)
	r.Post("/sessions/:id/presets/:pid/load", h.LoadPreset)
}

// ============================================================
// Sessions
// ============================================================

func (h *EditorHandler) CreateSession(c fiber.Ctx) error {
	s := h.sessions.Create()
	log.Printf("[EDITOR] Session created: %s", s.ID)
	return c.Status(http.StatusCreated).JSON(fiber.Map{"id": s.ID})
}

func (h *EditorHandler) ListSessions(c fiber.Ctx) error {
	return c.JSON(fiber.Map{"sessions": h.sessions.List()})
}

func (h *EditorHandler) DeleteSession(c fiber.Ctx) error {
	if !h.sessions.Delete(c.Params("id")) {
		return c.Status(http.StatusNotFound).JSON(fiber.Map{"error": "session not found"})
	}
	return c.SendStatus(http.StatusNoContent)
}

// withSession выполняет fn под блокировкой сессии, 404 для неизвестных id.
func (h *EditorHandler) withSession(c fiber.Ctx, fn func(t *tree.Engine, cv *anchored.Store) error) error {
	s, ok := h.sessions.Get(c.Params("id"))
	if !ok {
		return c.Status(http.StatusNotFound).JSON(fiber.Map{"error": "session not found"})
	}
	return s.Do(fn)
}

// ============================================================
// Panels
// ============================================================

func (h *EditorHandler) GetPanels(c fiber.Ctx) error {
	w, err := h.panels.Widths(c.Context())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(w)
}

func (h *EditorHandler) SetPanels(c fiber.Ctx) error {
	var req service.PanelWidths
	if ok, err := decode(c, &req); !ok {
		return err
	}
	w, err := h.panels.Set(c.Context(), req)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(w)
}

// ============================================================
// helpers
// ============================================================

// decode разбирает JSON тело. Если вернулось false, ответ 400 уже
// записан, а err - результат его записи.
func decode(c fiber.Ctx, dst any) (ok bool, err error) {
	if len(c.Body()) == 0 {
		return false, badRequest(c, "empty body")
	}
	if err := json.Unmarshal(c.Body(), dst); err != nil {
		return false, badRequest(c, "invalid json")
	}
	return true, nil
}

func badRequest(c fiber.Ctx, msg string) error {
	return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": msg})
}

// fail переводит доменную ошибку в HTTP статус.
func fail(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, tree.ErrInvalidOperation), errors.Is(err, tree.ErrInconsistent):
		return c.Status(http.StatusConflict).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, preset.ErrNotFound), errors.Is(err, service.ErrNoLayout):
		return c.Status(http.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, preset.ErrEmptyName):
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	log.Printf("[EDITOR] Internal error: %v", err)
	return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "internal error"})
}
