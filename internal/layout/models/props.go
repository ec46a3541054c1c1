package models

import (
	"strconv"

	"layout-studio/internal/layout/vocab"
)

// ============================================================
// Property Bag
// ============================================================

// Spacing - значение шкалы отступов для каждой стороны.
type Spacing struct {
	Top    string `json:"top"`
	Right  string `json:"right"`
	Bottom string `json:"bottom"`
	Left   string `json:"left"`
}

// Get возвращает значение стороны.
func (s Spacing) Get(side vocab.Side) string {
	switch side {
	case vocab.Top:
		return s.Top
	case vocab.Right:
		return s.Right
	case vocab.Bottom:
		return s.Bottom
	case vocab.Left:
		return s.Left
	}
	return ""
}

// With возвращает копию s с одной замененной стороной.
func (s Spacing) With(side vocab.Side, value string) Spacing {
	switch side {
	case vocab.Top:
		s.Top = value
	case vocab.Right:
		s.Right = value
	case vocab.Bottom:
		s.Bottom = value
	case vocab.Left:
		s.Left = value
	}
	return s
}

// Gutters - горизонтальный и вертикальный зазоры строки.
type Gutters struct {
	X string `json:"x"`
	Y string `json:"y"`
}

// Props - свойства элемента. Значимы только поля его типа;
// обновления сливаются по ключам.
type Props struct {
	// общие
	Padding         Spacing `json:"padding"`
	Margin          Spacing `json:"margin"`
	BackgroundColor string  `json:"backgroundColor"`
	CustomClasses   string  `json:"customClasses"`
	MinHeight       string  `json:"minHeight"`

	// container
	IsFluid      bool `json:"isFluid,omitempty"`
	IsFullscreen bool `json:"isFullscreen,omitempty"`

	// row
	Gutters        Gutters `json:"gutters"`
	JustifyContent string  `json:"justifyContent,omitempty"`
	AlignItems     string  `json:"alignItems,omitempty"`

	// col
	Span      string `json:"span,omitempty"`
	Offset    string `json:"offset,omitempty"`
	Order     string `json:"order,omitempty"`
	AlignSelf string `json:"alignSelf,omitempty"`

	// control
	ControlType ControlType `json:"controlType,omitempty"`
	Text        string      `json:"text,omitempty"`
	Width       string      `json:"width,omitempty"`
	Height      string      `json:"height,omitempty"`
	Level       int         `json:"level,omitempty"`
	Rows        int         `json:"rows,omitempty"`
	Href        string      `json:"href,omitempty"`
	Src         string      `json:"src,omitempty"`
	Alt         string      `json:"alt,omitempty"`
	Placeholder string      `json:"placeholder,omitempty"`
	Options     []string    `json:"options,omitempty"`
	Checked     bool        `json:"checked,omitempty"`
	Variant     string      `json:"variant,omitempty"`

	// template
	TemplateKey   string         `json:"templateKey,omitempty"`
	TemplateProps map[string]any `json:"templateProps,omitempty"`

	// Extra хранит ключи, для которых нет поля.
	Extra map[string]any `json:"extra,omitempty"`
}

// Clone возвращает глубокую копию p.
func (p Props) Clone() Props {
	c := p
	if p.Options != nil {
		c.Options = append([]string{}, p.Options...)
	}
	c.TemplateProps = cloneMap(p.TemplateProps)
	c.Extra = cloneMap(p.Extra)
	return c
}

// Set применяет один ключ. Значения неверной формы или вне словаря
// игнорируются с результатом false, остальное не трогается.
func (p *Props) Set(key string, value any) bool {
	switch key {
	case "padding":
		return p.mergeSpacing(&p.Padding, value)
	case "margin":
		return p.mergeSpacing(&p.Margin, value)
	case "backgroundColor":
		return setString(&p.BackgroundColor, value)
	case "customClasses":
		return setString(&p.CustomClasses, value)
	case "minHeight":
		return setString(&p.MinHeight, value)

	case "isFluid":
		return setBool(&p.IsFluid, value)
	case "isFullscreen":
		return setBool(&p.IsFullscreen, value)

	case "gutters":
		m, ok := value.(map[string]any)
		if !ok {
			return false
		}
		applied := false
		for axis, v := range m {
			applied = p.SetGutter(axis, AsString(v, "")) || applied
		}
		return applied
	case "justifyContent":
		return setChecked(&p.JustifyContent, value, vocab.IsJustify)
	case "alignItems":
		return setChecked(&p.AlignItems, value, vocab.IsAlign)

	case "span":
		return setChecked(&p.Span, value, isSpan)
	case "offset":
		return setChecked(&p.Offset, value, isOffset)
	case "order":
		return setChecked(&p.Order, value, vocab.IsOrder)
	case "alignSelf":
		return setChecked(&p.AlignSelf, value, vocab.IsAlignSelf)

	case "controlType":
		ct, ok := ParseControlType(AsString(value, ""))
		if !ok {
			return false
		}
		p.ControlType = ct
		return true
	case "text":
		return setString(&p.Text, value)
	case "width":
		return setString(&p.Width, value)
	case "height":
		return setString(&p.Height, value)
	case "level":
		n, ok := AsInt(value)
		if !ok {
			return false
		}
		p.Level = clampInt(n, 1, 6)
		return true
	case "rows":
		n, ok := AsInt(value)
		if !ok {
			return false
		}
		p.Rows = clampInt(n, 1, 50)
		return true
	case "href":
		return setString(&p.Href, value)
	case "src":
		return setString(&p.Src, value)
	case "alt":
		return setString(&p.Alt, value)
	case "placeholder":
		return setString(&p.Placeholder, value)
	case "options":
		opts, ok := AsStrings(value)
		if !ok {
			return false
		}
		p.Options = opts
		return true
	case "checked":
		return setBool(&p.Checked, value)
	case "variant":
		return setString(&p.Variant, value)

	case "templateKey":
		return setString(&p.TemplateKey, value)
	case "templateProps":
		m, ok := value.(map[string]any)
		if !ok {
			return false
		}
		if p.TemplateProps == nil {
			p.TemplateProps = make(map[string]any, len(m))
		}
		for k, v := range m {
			p.TemplateProps[k] = cloneValue(v)
		}
		return true
	}

	if key == "" {
		return false
	}
	if p.Extra == nil {
		p.Extra = make(map[string]any)
	}
	p.Extra[key] = cloneValue(value)
	return true
}

// SetSpacing меняет одну сторону padding или margin.
func (p *Props) SetSpacing(prop vocab.SpacingProp, side vocab.Side, value string) bool {
	if !vocab.IsSpacing(value) {
		return false
	}
	switch prop {
	case vocab.Padding:
		p.Padding = p.Padding.With(side, value)
	case vocab.Margin:
		p.Margin = p.Margin.With(side, value)
	default:
		return false
	}
	return true
}

// SetGutter меняет один зазор ("x" или "y").
func (p *Props) SetGutter(axis, value string) bool {
	if !vocab.IsSpacing(value) {
		return false
	}
	switch axis {
	case "x":
		p.Gutters.X = value
	case "y":
		p.Gutters.Y = value
	default:
		return false
	}
	return true
}

func (p *Props) mergeSpacing(target *Spacing, value any) bool {
	m, ok := value.(map[string]any)
	if !ok {
		return false
	}
	applied := false
	for k, v := range m {
		side, ok := vocab.ParseSide(k)
		if !ok {
			continue
		}
		s := AsString(v, "")
		if !vocab.IsSpacing(s) {
			continue
		}
		*target = target.With(side, s)
		applied = true
	}
	return applied
}

func isSpan(v string) bool {
	if v == "" || v == "auto" {
		return true
	}
	n, err := strconv.Atoi(v)
	return err == nil && n >= 1 && n <= 12
}

func isOffset(v string) bool {
	n, err := strconv.Atoi(v)
	return err == nil && n >= 0 && n <= 11
}

func setString(dst *string, value any) bool {
	s, ok := value.(string)
	if !ok {
		return false
	}
	*dst = s
	return true
}

func setBool(dst *bool, value any) bool {
	b, ok := AsBool(value)
	if !ok {
		return false
	}
	*dst = b
	return true
}

func setChecked(dst *string, value any, valid func(string) bool) bool {
	s := AsString(value, "")
	if !valid(s) {
		return false
	}
	*dst = s
	return true
}
