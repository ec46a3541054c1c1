package handlers

import (
	"fmt"
	"log"
	"net/http"
	"strconv"

	"layout-studio/internal/layout/anchored"
	"layout-studio/internal/layout/preset"
	"layout-studio/internal/layout/tree"

	"github.com/gofiber/fiber/v3"
)

// ============================================================
// Free-form Canvas
// ============================================================

// configRequest - одна пара key/value или пакет пар.
type configRequest struct {
	Key    string         `json:"key"`
	Value  any            `json:"value"`
	Values map[string]any `json:"values"`
}

func (r configRequest) pairs() map[string]any {
	out := make(map[string]any, len(r.Values)+1)
	for k, v := range r.Values {
		out[k] = v
	}
	if r.Key != "" {
		out[r.Key] = r.Value
	}
	return out
}

type contentRequest struct {
	HTML string `json:"html"`
}

type canvasView struct {
	Layer2     any               `json:"layer2"`
	Order      []string          `json:"order"`
	Elements   map[string]any    `json:"elements"`
	Content    map[string]string `json:"content"`
	Layer2HTML string            `json:"layer2HTML"`
	Active     string            `json:"active"`
}

func viewOf(cv *anchored.Store) canvasView {
	snap := cv.Snapshot()
	elements := make(map[string]any, len(snap.ElementsConfig))
	for id, d := range snap.ElementsConfig {
		elements[id] = d
	}
	return canvasView{
		Layer2:     snap.Layer2Config,
		Order:      cv.IDs(),
		Elements:   elements,
		Content:    snap.DecorativeElementsHTML,
		Layer2HTML: snap.Layer2HTML,
		Active:     cv.Active(),
	}
}

func (h *EditorHandler) GetCanvas(c fiber.Ctx) error {
	return h.withSession(c, func(_ *tree.Engine, cv *anchored.Store) error {
		return c.JSON(viewOf(cv))
	})
}

func (h *EditorHandler) CanvasStyles(c fiber.Ctx) error {
	return h.withSession(c, func(_ *tree.Engine, cv *anchored.Store) error {
		return c.JSON(cv.Styles())
	})
}

// ConfigureElement сливает ключи в одну декорацию и сообщает, какие
// из них отклонены.
func (h *EditorHandler) ConfigureElement(c fiber.Ctx) error {
	var req configRequest
	if ok, err := decode(c, &req); !ok {
		return err
	}
	return h.withSession(c, func(_ *tree.Engine, cv *anchored.Store) error {
		id := c.Params("eid")
		if _, ok := cv.Decoration(id); !ok {
			return c.Status(http.StatusNotFound).JSON(fiber.Map{"error": fmt.Sprintf("unknown decoration %q", id)})
		}
		rejected := []string{}
		for key, value := range req.pairs() {
			if !cv.Configure(id, key, value) {
				rejected = append(rejected, key)
			}
		}
		d, _ := cv.Decoration(id)
		return c.JSON(fiber.Map{"element": d, "rejected": rejected})
	})
}

func (h *EditorHandler) ConfigureLayer2(c fiber.Ctx) error {
	var req configRequest
	if ok, err := decode(c, &req); !ok {
		return err
	}
	return h.withSession(c, func(_ *tree.Engine, cv *anchored.Store) error {
		rejected := []string{}
		for key, value := range req.pairs() {
			if !cv.ConfigureLayer2(key, value) {
				rejected = append(rejected, key)
			}
		}
		return c.JSON(fiber.Map{"layer2": cv.Layer2(), "rejected": rejected})
	})
}

func (h *EditorHandler) ResetElement(c fiber.Ctx) error {
	return h.withSession(c, func(_ *tree.Engine, cv *anchored.Store) error {
		id := c.Params("eid")
		if !cv.Reset(id) {
			return c.Status(http.StatusNotFound).JSON(fiber.Map{"error": fmt.Sprintf("unknown decoration %q", id)})
		}
		d, _ := cv.Decoration(id)
		return c.JSON(fiber.Map{"element": d})
	})
}

func (h *EditorHandler) SetContent(c fiber.Ctx) error {
	var req contentRequest
	if ok, err := decode(c, &req); !ok {
		return err
	}
	return h.withSession(c, func(_ *tree.Engine, cv *anchored.Store) error {
		id := c.Params("eid")
		if !cv.SetContent(id, req.HTML) {
			return c.Status(http.StatusNotFound).JSON(fiber.Map{"error": fmt.Sprintf("unknown decoration %q", id)})
		}
		return c.SendStatus(http.StatusNoContent)
	})
}

func (h *EditorHandler) SelectCanvas(c fiber.Ctx) error {
	var req idRequest
	if ok, err := decode(c, &req); !ok {
		return err
	}
	return h.withSession(c, func(t *tree.Engine, cv *anchored.Store) error {
		cv.Select(req.ID)
		return c.JSON(selection(t, cv))
	})
}

// ============================================================
// Presets
// ============================================================

type presetRequest struct {
	Name string `json:"name"`
}

func (h *EditorHandler) ListPresets(c fiber.Ctx) error {
	list, err := h.presets.Summaries(c.Context())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"presets": list})
}

func (h *EditorHandler) GetPreset(c fiber.Ctx) error {
	p, err := h.presets.Get(c.Context(), c.Params("pid"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(p)
}

func (h *EditorHandler) DeletePreset(c fiber.Ctx) error {
	if err := h.presets.Delete(c.Context(), c.Params("pid")); err != nil {
		return fail(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}

func (h *EditorHandler) SavePreset(c fiber.Ctx) error {
	var req presetRequest
	if ok, err := decode(c, &req); !ok {
		return err
	}
	return h.withSession(c, func(_ *tree.Engine, cv *anchored.Store) error {
		p, err := h.presets.Save(c.Context(), req.Name, cv)
		if err != nil {
			return fail(c, err)
		}
		return c.Status(http.StatusCreated).JSON(p.Summary())
	})
}

// LoadPreset заменяет холст сессии и отвечает содержимым, переданным
// в хук привязки, в порядке привязки.
func (h *EditorHandler) LoadPreset(c fiber.Ctx) error {
	return h.withSession(c, func(_ *tree.Engine, cv *anchored.Store) error {
		type attached struct {
			ID   string `json:"id"`
			HTML string `json:"html"`
		}
		var out []attached
		hook := anchored.AttacherFunc(func(id, html string) {
			out = append(out, attached{ID: id, HTML: html})
		})
		p, err := h.presets.Load(c.Context(), c.Params("pid"), cv, hook)
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(fiber.Map{"preset": p.Summary(), "attached": out, "canvas": viewOf(cv)})
	})
}

// ExportPreset отдает статический HTML сохраненного пресета.
// ?sanitize=true чистит внутренний HTML, ?download=true задает имя вложения.
func (h *EditorHandler) ExportPreset(c fiber.Ctx) error {
	p, err := h.presets.Get(c.Context(), c.Params("pid"))
	if err != nil {
		return fail(c, err)
	}
	sanitize, _ := strconv.ParseBool(c.Query("sanitize"))
	doc := preset.Export(p, preset.ExportOptions{
		Title:    c.Query("title"),
		Sanitize: sanitize,
	})
	if download, _ := strconv.ParseBool(c.Query("download")); download {
		c.Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s.html"`, p.ID))
	}
	log.Printf("[PRESET] Exported %s (%d bytes)", p.ID, len(doc))
	c.Set("Content-Type", "text/html; charset=utf-8")
	return c.SendString(doc)
}
