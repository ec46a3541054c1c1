package handlers

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"layout-studio/internal/editor/service"
	"layout-studio/internal/layout/anchored"
	"layout-studio/internal/layout/components"
	"layout-studio/internal/layout/models"
	"layout-studio/internal/layout/style"
	"layout-studio/internal/layout/tree"
	"layout-studio/internal/layout/vocab"

	"github.com/gofiber/fiber/v3"
)

// ============================================================
// Tree Editor
// ============================================================

type addRequest struct {
	Type        string `json:"type"`
	ControlType string `json:"controlType"`
	Key         string `json:"key"`
	ParentID    string `json:"parentId"`
}

type propRequest struct {
	Key   string `json:"key"`
	Value any    `json:"value"`
}

type spacingRequest struct {
	Prop  string `json:"prop"`
	Side  string `json:"side"`
	Value string `json:"value"`
}

type gutterRequest struct {
	Axis  string `json:"axis"`
	Value string `json:"value"`
}

type idRequest struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	ParentID string `json:"parentId"`
}

type catalogEntry struct {
	Key      string `json:"key"`
	Name     string `json:"name"`
	Template bool   `json:"template"`
}

// Catalog - готовые компоненты и заготовки контролов.
func (h *EditorHandler) Catalog(c fiber.Ctx) error {
	entries := []catalogEntry{}
	for _, key := range components.Keys() {
		def, _ := components.Lookup(key)
		entries = append(entries, catalogEntry{Key: key, Name: def.Name, Template: def.IsTemplate()})
	}
	return c.JSON(fiber.Map{
		"components": entries,
		"controls":   components.Controls(),
	})
}

func (h *EditorHandler) GetTree(c fiber.Ctx) error {
	return h.withSession(c, func(t *tree.Engine, _ *anchored.Store) error {
		return c.JSON(t.Snapshot())
	})
}

func (h *EditorHandler) AddElement(c fiber.Ctx) error {
	var req addRequest
	if ok, err := decode(c, &req); !ok {
		return err
	}
	typ, valid := models.ParseElementType(req.Type)
	if !valid {
		return badRequest(c, fmt.Sprintf("unknown element type %q", req.Type))
	}
	return h.withSession(c, func(t *tree.Engine, _ *anchored.Store) error {
		id, err := t.AddElement(typ, req.ParentID)
		if err != nil {
			return fail(c, err)
		}
		log.Printf("[EDITOR] Added %s under %q", id, req.ParentID)
		return c.Status(http.StatusCreated).JSON(fiber.Map{"id": id})
	})
}

func (h *EditorHandler) AddControl(c fiber.Ctx) error {
	var req addRequest
	if ok, err := decode(c, &req); !ok {
		return err
	}
	ct, valid := models.ParseControlType(req.ControlType)
	if !valid {
		return badRequest(c, fmt.Sprintf("unknown control type %q", req.ControlType))
	}
	tpl, _ := components.Control(ct)
	return h.withSession(c, func(t *tree.Engine, _ *anchored.Store) error {
		id, err := t.AddControl(tpl, req.ParentID)
		if err != nil {
			return fail(c, err)
		}
		return c.Status(http.StatusCreated).JSON(fiber.Map{"id": id})
	})
}

func (h *EditorHandler) AddComponent(c fiber.Ctx) error {
	var req addRequest
	if ok, err := decode(c, &req); !ok {
		return err
	}
	if _, known := components.Lookup(req.Key); !known {
		return badRequest(c, fmt.Sprintf("unknown component %q", req.Key))
	}
	return h.withSession(c, func(t *tree.Engine, _ *anchored.Store) error {
		id, err := t.AddPredefinedComponent(req.Key, req.ParentID)
		if err != nil {
			return fail(c, err)
		}
		log.Printf("[EDITOR] Inserted component %s as %s", req.Key, id)
		return c.Status(http.StatusCreated).JSON(fiber.Map{"id": id})
	})
}

func (h *EditorHandler) UpdateProp(c fiber.Ctx) error {
	var req propRequest
	if ok, err := decode(c, &req); !ok {
		return err
	}
	if req.Key == "" {
		return badRequest(c, "key required")
	}
	return h.elementUpdate(c, func(t *tree.Engine, id string) error {
		return t.UpdateProp(id, req.Key, req.Value)
	})
}

func (h *EditorHandler) UpdateSpacing(c fiber.Ctx) error {
	var req spacingRequest
	if ok, err := decode(c, &req); !ok {
		return err
	}
	prop, okProp := vocab.ParseSpacingProp(req.Prop)
	side, okSide := vocab.ParseSide(req.Side)
	if !okProp || !okSide {
		return badRequest(c, "prop must be padding|margin and side top|right|bottom|left")
	}
	return h.elementUpdate(c, func(t *tree.Engine, id string) error {
		return t.UpdateSpacingProp(id, prop, side, req.Value)
	})
}

func (h *EditorHandler) UpdateGutter(c fiber.Ctx) error {
	var req gutterRequest
	if ok, err := decode(c, &req); !ok {
		return err
	}
	if req.Axis != "x" && req.Axis != "y" {
		return badRequest(c, "axis must be x or y")
	}
	return h.elementUpdate(c, func(t *tree.Engine, id string) error {
		return t.UpdateGutterProp(id, req.Axis, req.Value)
	})
}

func (h *EditorHandler) Rename(c fiber.Ctx) error {
	var req idRequest
	if ok, err := decode(c, &req); !ok {
		return err
	}
	return h.elementUpdate(c, func(t *tree.Engine, id string) error {
		return t.Rename(id, req.Name)
	})
}

func (h *EditorHandler) MoveElement(c fiber.Ctx) error {
	var req idRequest
	if ok, err := decode(c, &req); !ok {
		return err
	}
	return h.elementUpdate(c, func(t *tree.Engine, id string) error {
		return t.MoveElement(id, req.ParentID)
	})
}

func (h *EditorHandler) DeleteElement(c fiber.Ctx) error {
	return h.withSession(c, func(t *tree.Engine, _ *anchored.Store) error {
		removed := t.DeleteElement(c.Params("eid"))
		if removed == nil {
			removed = []string{}
		}
		return c.JSON(fiber.Map{"removed": removed})
	})
}

// elementUpdate применяет fn к элементу :eid и отвечает его новым
// состоянием или null, если id неизвестен.
func (h *EditorHandler) elementUpdate(c fiber.Ctx, fn func(t *tree.Engine, id string) error) error {
	return h.withSession(c, func(t *tree.Engine, _ *anchored.Store) error {
		id := c.Params("eid")
		if err := fn(t, id); err != nil {
			return fail(c, err)
		}
		el, _ := t.Element(id)
		return c.JSON(fiber.Map{"element": el})
	})
}

// ============================================================
// Selection & Styles
// ============================================================

func (h *EditorHandler) Select(c fiber.Ctx) error {
	var req idRequest
	if ok, err := decode(c, &req); !ok {
		return err
	}
	return h.withSession(c, func(t *tree.Engine, cv *anchored.Store) error {
		t.Select(req.ID)
		return c.JSON(selection(t, cv))
	})
}

func (h *EditorHandler) Selection(c fiber.Ctx) error {
	return h.withSession(c, func(t *tree.Engine, cv *anchored.Store) error {
		return c.JSON(selection(t, cv))
	})
}

func selection(t *tree.Engine, cv *anchored.Store) fiber.Map {
	return fiber.Map{
		"tree":   fiber.Map{"selected": t.Selected(), "panel": service.Panel(t, cv, t.Selected())},
		"canvas": fiber.Map{"active": cv.Active(), "panel": service.Panel(t, cv, cv.Active())},
	}
}

func (h *EditorHandler) TreeStyles(c fiber.Ctx) error {
	return h.withSession(c, func(t *tree.Engine, _ *anchored.Store) error {
		return c.JSON(style.CompileTree(t.Elements(), t.Selected()))
	})
}

// ============================================================
// Saved Layouts
// ============================================================

func (h *EditorHandler) ListLayouts(c fiber.Ctx) error {
	names, err := h.layouts.Names(c.Context())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"layouts": names})
}

func (h *EditorHandler) DeleteLayout(c fiber.Ctx) error {
	if err := h.layouts.Delete(c.Context(), c.Params("name")); err != nil {
		return fail(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}

// layoutName по умолчанию - id сессии, если имя в теле не задано.
func layoutName(c fiber.Ctx) string {
	var req idRequest
	if err := json.Unmarshal(c.Body(), &req); err == nil && req.Name != "" {
		return req.Name
	}
	return c.Params("id")
}

func (h *EditorHandler) SaveLayout(c fiber.Ctx) error {
	name := layoutName(c)
	return h.withSession(c, func(t *tree.Engine, _ *anchored.Store) error {
		if err := h.layouts.Save(c.Context(), name, t); err != nil {
			return fail(c, err)
		}
		return c.JSON(fiber.Map{"name": name, "nodes": t.Len()})
	})
}

func (h *EditorHandler) RestoreLayout(c fiber.Ctx) error {
	name := layoutName(c)
	return h.withSession(c, func(t *tree.Engine, _ *anchored.Store) error {
		if err := h.layouts.Restore(c.Context(), name, t); err != nil {
			return fail(c, err)
		}
		return c.JSON(t.Snapshot())
	})
}
