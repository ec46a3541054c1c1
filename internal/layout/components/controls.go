package components

import (
	"layout-studio/internal/layout/models"
)

// ============================================================
// Control Templates
// ============================================================

// ControlTemplate - заготовка контрола. Defaults накладываются поверх
// дефолтов типа при создании.
type ControlTemplate struct {
	Type     models.ControlType `json:"controlType"`
	Label    string             `json:"label"`
	Defaults map[string]any     `json:"defaults"`
}

var controlTemplates = []ControlTemplate{
	{Type: models.ControlButton, Label: "Button", Defaults: map[string]any{
		"text": "Button", "variant": "primary",
		"padding": map[string]any{"top": "2", "right": "4", "bottom": "2", "left": "4"},
	}},
	{Type: models.ControlInput, Label: "Input", Defaults: map[string]any{
		"placeholder": "Enter text", "padding": map[string]any{"top": "2", "right": "3", "bottom": "2", "left": "3"},
	}},
	{Type: models.ControlTextarea, Label: "Textarea", Defaults: map[string]any{
		"placeholder": "Enter text", "rows": 3.0,
	}},
	{Type: models.ControlLabel, Label: "Label", Defaults: map[string]any{"text": "Label"}},
	{Type: models.ControlHeading, Label: "Heading", Defaults: map[string]any{"text": "Heading", "level": 2.0}},
	{Type: models.ControlParagraph, Label: "Paragraph", Defaults: map[string]any{
		"text": "Lorem ipsum dolor sit amet, consectetur adipiscing elit.",
	}},
	{Type: models.ControlLink, Label: "Link", Defaults: map[string]any{"text": "Link", "href": "#"}},
	{Type: models.ControlImage, Label: "Image", Defaults: map[string]any{
		"src": "https://placehold.co/600x400", "alt": "Placeholder", "width": "100%",
	}},
	{Type: models.ControlCheckbox, Label: "Checkbox", Defaults: map[string]any{"text": "Checkbox"}},
	{Type: models.ControlRadio, Label: "Radio", Defaults: map[string]any{"text": "Radio"}},
	{Type: models.ControlSelect, Label: "Select", Defaults: map[string]any{
		"options": []any{"Option 1", "Option 2", "Option 3"},
	}},
	{Type: models.ControlDivider, Label: "Divider", Defaults: map[string]any{
		"margin": map[string]any{"top": "4", "bottom": "4"},
	}},
	{Type: models.ControlSpacer, Label: "Spacer", Defaults: map[string]any{"height": "32px"}},
	{Type: models.ControlBadge, Label: "Badge", Defaults: map[string]any{
		"text": "Badge", "variant": "primary",
		"padding": map[string]any{"top": "0.5", "right": "2", "bottom": "0.5", "left": "2"},
	}},
}

// Controls возвращает палитру контролов по порядку.
func Controls() []ControlTemplate {
	return append([]ControlTemplate{}, controlTemplates...)
}

// Control возвращает заготовку для типа контрола.
func Control(ct models.ControlType) (ControlTemplate, bool) {
	for _, tpl := range controlTemplates {
		if tpl.Type == ct {
			return tpl, true
		}
	}
	return ControlTemplate{}, false
}

// NewControl строит контрол из tpl. n - занятое значение счетчика.
func NewControl(tpl ControlTemplate, n int, parentID string) *models.Element {
	el := models.NewElement(models.TypeControl, n, parentID)
	el.Props.ControlType = tpl.Type
	if tpl.Label != "" {
		el.Name = tpl.Label + " " + itoa(n)
	}
	for k, v := range tpl.Defaults {
		el.Props.Set(k, v)
	}
	return el
}
