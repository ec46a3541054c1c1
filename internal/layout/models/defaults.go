package models

import (
	"fmt"

	"layout-studio/internal/layout/vocab"
)

// ============================================================
// Element construction
// ============================================================

// ElementID - id n-го созданного элемента.
func ElementID(t ElementType, n int) string {
	return fmt.Sprintf("%s-%d", t, n)
}

// NewElement создает элемент с дефолтами типа. n - уже занятое
// значение счетчика.
func NewElement(t ElementType, n int, parentID string) *Element {
	return &Element{
		ID:       ElementID(t, n),
		Type:     t,
		Name:     fmt.Sprintf("%s %d", t.Label(), n),
		ParentID: ParentRef(parentID),
		Children: []string{},
		Props:    DefaultProps(t),
	}
}

// DefaultProps возвращает исходные свойства для t.
func DefaultProps(t ElementType) Props {
	p := Props{
		Padding: uniform("0"),
		Margin:  uniform("0"),
	}
	switch t {
	case TypeContainer:
		p.Padding = uniform("4")
	case TypeRow:
		p.Gutters = Gutters{X: "4", Y: "4"}
		p.JustifyContent = vocab.DefaultJustify
		p.AlignItems = vocab.DefaultAlign
	case TypeCol:
		p.Padding = uniform("2")
		p.Offset = "0"
		p.Order = vocab.DefaultOrder
		p.AlignSelf = vocab.DefaultAlignSelf
	}
	return p
}

func uniform(v string) Spacing {
	return Spacing{Top: v, Right: v, Bottom: v, Left: v}
}

// ============================================================
// Template objects
// ============================================================

// ObjectSpec - строка таблицы объектов шаблона.
// Size - длинная сторона в SizeUnit; Inset сдвигает объект внутрь (проценты).
type ObjectSpec struct {
	ID          string  `json:"id"`
	Size        float64 `json:"size"`
	Orientation string  `json:"orientation"` // horizontal | vertical
	AspectRatio float64 `json:"aspectRatio"`
	Color       string  `json:"color"`
	Position    string  `json:"position"`
	Inset       float64 `json:"inset"`
}

// Dimensions возвращает ширину и высоту в SizeUnit.
func (o ObjectSpec) Dimensions() (float64, float64) {
	ratio := o.AspectRatio
	if ratio <= 0 {
		ratio = 1
	}
	if o.Orientation == "vertical" {
		return o.Size / ratio, o.Size
	}
	return o.Size, o.Size / ratio
}

// Anchors переводит Position ("top-left", "center", "bottom", ...) в пару якорей.
// Неизвестная позиция - центр.
func (o ObjectSpec) Anchors() (vocab.AnchorX, vocab.AnchorY) {
	ax, ay := vocab.AnchorCenterX, vocab.AnchorCenterY
	switch o.Position {
	case "top-left", "left", "bottom-left":
		ax = vocab.AnchorLeft
	case "top-right", "right", "bottom-right":
		ax = vocab.AnchorRight
	}
	switch o.Position {
	case "top-left", "top", "top-right":
		ay = vocab.AnchorTop
	case "bottom-left", "bottom", "bottom-right":
		ay = vocab.AnchorBottom
	}
	return ax, ay
}
