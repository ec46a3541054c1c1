package models

import (
	"encoding/json"
)

// ============================================================
// Layout Modes
// ============================================================

// LayoutMode отличает узлы flex-дерева от декораций с якорной позицией.
type LayoutMode string

const (
	LayoutTree     LayoutMode = "tree"
	LayoutAnchored LayoutMode = "anchored"
)

// Node реализуют все узлы модели, получающие стиль.
type Node interface {
	NodeID() string
	LayoutMode() LayoutMode
}

// ============================================================
// Element Types
// ============================================================

type ElementType string

const (
	TypeContainer ElementType = "container"
	TypeRow       ElementType = "row"
	TypeCol       ElementType = "col"
	TypeControl   ElementType = "control"
	TypeTemplate  ElementType = "template"
)

// ParseElementType возвращает тип элемента по имени.
func ParseElementType(s string) (ElementType, bool) {
	switch ElementType(s) {
	case TypeContainer, TypeRow, TypeCol, TypeControl, TypeTemplate:
		return ElementType(s), true
	}
	return "", false
}

// Label - префикс для сгенерированных имен.
func (t ElementType) Label() string {
	switch t {
	case TypeContainer:
		return "Container"
	case TypeRow:
		return "Row"
	case TypeCol:
		return "Column"
	case TypeControl:
		return "Control"
	case TypeTemplate:
		return "Template"
	}
	return "Element"
}

type ControlType string

const (
	ControlButton    ControlType = "button"
	ControlInput     ControlType = "input"
	ControlTextarea  ControlType = "textarea"
	ControlLabel     ControlType = "label"
	ControlHeading   ControlType = "heading"
	ControlParagraph ControlType = "paragraph"
	ControlLink      ControlType = "link"
	ControlImage     ControlType = "image"
	ControlCheckbox  ControlType = "checkbox"
	ControlRadio     ControlType = "radio"
	ControlSelect    ControlType = "select"
	ControlDivider   ControlType = "divider"
	ControlSpacer    ControlType = "spacer"
	ControlBadge     ControlType = "badge"
)

// ControlTypes - все типы контролов в порядке палитры.
var ControlTypes = []ControlType{
	ControlButton, ControlInput, ControlTextarea, ControlLabel, ControlHeading, ControlParagraph,
	ControlLink, ControlImage, ControlCheckbox, ControlRadio, ControlSelect, ControlDivider,
	ControlSpacer, ControlBadge,
}

func ParseControlType(s string) (ControlType, bool) {
	for _, ct := range ControlTypes {
		if string(ct) == s {
			return ct, true
		}
	}
	return "", false
}

// ============================================================
// Element
// ============================================================

// Element - узел дерева макета.
type Element struct {
	ID       string      `json:"id"`
	Type     ElementType `json:"type"`
	Name     string      `json:"name"`
	ParentID ParentRef   `json:"parentId"`
	Children []string    `json:"children"`
	Props    Props       `json:"props"`
	// Generated помечает корень сгенерированного компонента; его имя можно менять.
	Generated bool `json:"generated,omitempty"`
}

func (e *Element) NodeID() string         { return e.ID }
func (e *Element) LayoutMode() LayoutMode { return LayoutTree }

// IsRoot - элемент лежит прямо на холсте.
func (e *Element) IsRoot() bool { return e.ParentID == "" }

// Clone возвращает глубокую копию e.
func (e *Element) Clone() *Element {
	c := *e
	c.Children = append([]string{}, e.Children...)
	c.Props = e.Props.Clone()
	return &c
}

// IndexOfChild возвращает позицию id в Children или -1.
func (e *Element) IndexOfChild(id string) int {
	for i, c := range e.Children {
		if c == id {
			return i
		}
	}
	return -1
}

// ParentRef - id родителя, "" означает корень; в JSON это null.
type ParentRef string

func (p ParentRef) MarshalJSON() ([]byte, error) {
	if p == "" {
		return []byte("null"), nil
	}
	return json.Marshal(string(p))
}

func (p *ParentRef) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*p = ""
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*p = ParentRef(s)
	return nil
}

// Subtree - узлы, созданные вместе и связанные под Root.
type Subtree struct {
	Root    string              `json:"root"`
	Nodes   map[string]*Element `json:"nodes"`
	Counter int                 `json:"counter"`
}
