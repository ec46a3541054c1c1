package components

import (
	"layout-studio/internal/layout/models"
)

// MultiObjectGrid - ключ шаблона из пятнадцати объектов.
const MultiObjectGrid = "multi-object-grid"

// gridObjects - таблица объектов MultiObjectGrid.
var gridObjects = []models.ObjectSpec{
	{ID: "obj1", Size: 18, Orientation: "horizontal", AspectRatio: 1, Color: "#f87171", Position: "top-left", Inset: 8},
	{ID: "obj2", Size: 14, Orientation: "horizontal", AspectRatio: 2, Color: "#fb923c", Position: "top", Inset: 8},
	{ID: "obj3", Size: 18, Orientation: "horizontal", AspectRatio: 1, Color: "#fbbf24", Position: "top-right", Inset: 8},
	{ID: "obj4", Size: 14, Orientation: "vertical", AspectRatio: 2, Color: "#a3e635", Position: "left", Inset: 8},
	{ID: "obj5", Size: 24, Orientation: "horizontal", AspectRatio: 1, Color: "#34d399", Position: "center", Inset: 0},
	{ID: "obj6", Size: 14, Orientation: "vertical", AspectRatio: 2, Color: "#22d3ee", Position: "right", Inset: 8},
	{ID: "obj7", Size: 18, Orientation: "horizontal", AspectRatio: 1, Color: "#60a5fa", Position: "bottom-left", Inset: 8},
	{ID: "obj8", Size: 14, Orientation: "horizontal", AspectRatio: 2, Color: "#818cf8", Position: "bottom", Inset: 8},
	{ID: "obj9", Size: 18, Orientation: "horizontal", AspectRatio: 1, Color: "#a78bfa", Position: "bottom-right", Inset: 8},
	{ID: "obj10", Size: 10, Orientation: "horizontal", AspectRatio: 1, Color: "#e879f9", Position: "top-left", Inset: 28},
	{ID: "obj11", Size: 10, Orientation: "horizontal", AspectRatio: 1, Color: "#f472b6", Position: "top-right", Inset: 28},
	{ID: "obj12", Size: 10, Orientation: "horizontal", AspectRatio: 1, Color: "#fb7185", Position: "bottom-left", Inset: 28},
	{ID: "obj13", Size: 10, Orientation: "horizontal", AspectRatio: 1, Color: "#94a3b8", Position: "bottom-right", Inset: 28},
	{ID: "obj14", Size: 8, Orientation: "vertical", AspectRatio: 3, Color: "#cbd5e1", Position: "left", Inset: 28},
	{ID: "obj15", Size: 8, Orientation: "vertical", AspectRatio: 3, Color: "#e2e8f0", Position: "right", Inset: 28},
}

func defaultGridColors() map[string]any {
	colors := make(map[string]any, len(gridObjects))
	for _, o := range gridObjects {
		colors[o.ID] = o.Color
	}
	return colors
}

// TemplateObjects возвращает таблицу объектов шаблона с цветами из
// templateProps["colors"]. Для ключей без таблицы - nil.
func TemplateObjects(key string, templateProps map[string]any) []models.ObjectSpec {
	if key != MultiObjectGrid {
		return nil
	}
	colors, _ := templateProps["colors"].(map[string]any)
	out := make([]models.ObjectSpec, len(gridObjects))
	for i, o := range gridObjects {
		if c, ok := colors[o.ID].(string); ok && c != "" {
			o.Color = c
		}
		out[i] = o
	}
	return out
}
