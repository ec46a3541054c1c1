package tree

import (
	"errors"
	"fmt"
	"slices"

	"layout-studio/internal/layout/components"
	"layout-studio/internal/layout/models"
	"layout-studio/internal/layout/vocab"
)

// ErrInvalidOperation - отклоненная мутация. Если она возвращена,
// состояние движка не изменилось.
var ErrInvalidOperation = errors.New("invalid operation")

// ============================================================
// Engine
// ============================================================

// Engine владеет картой id -> Element одного дерева. Неизвестные id в
// update, move, delete и select игнорируются.
type Engine struct {
	nodes    map[string]*models.Element
	roots    []string
	counter  int
	selected string
}

func New() *Engine {
	return &Engine{
		nodes: make(map[string]*models.Element),
		roots: []string{},
	}
}

// ============================================================
// Reads
// ============================================================

// Element возвращает копию узла с данным id.
func (e *Engine) Element(id string) (*models.Element, bool) {
	el, ok := e.nodes[id]
	if !ok {
		return nil, false
	}
	return el.Clone(), true
}

// Elements возвращает глубокую копию карты узлов.
func (e *Engine) Elements() map[string]*models.Element {
	out := make(map[string]*models.Element, len(e.nodes))
	for id, el := range e.nodes {
		out[id] = el.Clone()
	}
	return out
}

// Roots возвращает корневые id в порядке холста.
func (e *Engine) Roots() []string { return append([]string{}, e.roots...) }

// Selected возвращает выбранный id или "".
func (e *Engine) Selected() string { return e.selected }

// Counter возвращает последний выданный номер.
func (e *Engine) Counter() int { return e.counter }

// Len возвращает число узлов.
func (e *Engine) Len() int { return len(e.nodes) }

// ============================================================
// Creation
// ============================================================

// AddElement создает элемент типа t под parentID ("" - корень) и
// выделяет его.
func (e *Engine) AddElement(t models.ElementType, parentID string) (string, error) {
	if _, ok := models.ParseElementType(string(t)); !ok {
		return "", fmt.Errorf("%w: unknown element type %q", ErrInvalidOperation, t)
	}
	if err := e.checkTarget(parentID); err != nil {
		return "", err
	}

	e.counter++
	el := models.NewElement(t, e.counter, parentID)
	e.insert(el)
	return el.ID, nil
}

// AddControl создает контрол из tpl под parentID и выделяет его.
func (e *Engine) AddControl(tpl components.ControlTemplate, parentID string) (string, error) {
	if _, ok := models.ParseControlType(string(tpl.Type)); !ok {
		return "", fmt.Errorf("%w: unknown control type %q", ErrInvalidOperation, tpl.Type)
	}
	if err := e.checkTarget(parentID); err != nil {
		return "", err
	}

	e.counter++
	el := components.NewControl(tpl, e.counter, parentID)
	e.insert(el)
	return el.ID, nil
}

// AddPredefinedComponent вставляет компонент key: один узел-шаблон
// или сгенерированное поддерево, корень которого возвращается и выделяется.
func (e *Engine) AddPredefinedComponent(key, parentID string) (string, error) {
	def, ok := components.Lookup(key)
	if !ok {
		return "", fmt.Errorf("%w: unknown component %q", ErrInvalidOperation, key)
	}
	if err := e.checkTarget(parentID); err != nil {
		return "", err
	}

	if def.IsTemplate() {
		e.counter++
		el := models.NewElement(models.TypeTemplate, e.counter, parentID)
		el.Name = def.Name
		el.Props.TemplateKey = def.TemplateKey
		el.Props.Set("templateProps", def.TemplateProps)
		e.insert(el)
		return el.ID, nil
	}

	sub := def.Generate(e.counter, parentID)
	root, ok := sub.Nodes[sub.Root]
	if !ok {
		return "", fmt.Errorf("%w: component %q produced no root", ErrInvalidOperation, key)
	}
	if sub.Counter < e.counter+len(sub.Nodes) {
		return "", fmt.Errorf("%w: component %q did not advance the counter", ErrInvalidOperation, key)
	}
	for id := range sub.Nodes {
		if _, exists := e.nodes[id]; exists {
			return "", fmt.Errorf("%w: component %q reuses id %s", ErrInvalidOperation, key, id)
		}
	}

	root.ParentID = models.ParentRef(parentID)
	for id, n := range sub.Nodes {
		e.nodes[id] = n
	}
	e.counter = sub.Counter
	e.attach(root.ID, parentID)
	e.selected = root.ID
	return root.ID, nil
}

func (e *Engine) insert(el *models.Element) {
	e.nodes[el.ID] = el
	e.attach(el.ID, string(el.ParentID))
	e.selected = el.ID
}

// checkTarget проверяет родителя для нового содержимого.
func (e *Engine) checkTarget(parentID string) error {
	if parentID == "" {
		if fs := e.fullscreenRoot(); fs != "" {
			return fmt.Errorf("%w: fullscreen container %s must stay the only root", ErrInvalidOperation, fs)
		}
		return nil
	}
	if _, ok := e.nodes[parentID]; !ok {
		return fmt.Errorf("%w: unknown parent %s", ErrInvalidOperation, parentID)
	}
	return nil
}

// ============================================================
// Property updates
// ============================================================

// UpdateProp сливает один ключ в свойства элемента. Включить isFullscreen
// можно только корневому контейнеру без соседей в корне.
func (e *Engine) UpdateProp(id, key string, value any) error {
	el, ok := e.nodes[id]
	if !ok {
		return nil
	}

	if key == "isFullscreen" {
		on, valid := models.AsBool(value)
		if valid && on {
			if err := e.checkFullscreen(el); err != nil {
				return err
			}
		}
	}

	el.Props.Set(key, value)
	return nil
}

// UpdateSpacingProp меняет одну сторону padding или margin.
func (e *Engine) UpdateSpacingProp(id string, prop vocab.SpacingProp, side vocab.Side, value string) error {
	el, ok := e.nodes[id]
	if !ok {
		return nil
	}
	el.Props.SetSpacing(prop, side, value)
	return nil
}

// UpdateGutterProp меняет один зазор ("x" или "y").
func (e *Engine) UpdateGutterProp(id, axis, value string) error {
	el, ok := e.nodes[id]
	if !ok {
		return nil
	}
	el.Props.SetGutter(axis, value)
	return nil
}

// Rename меняет имя шаблонов и корней сгенерированных компонентов.
func (e *Engine) Rename(id, name string) error {
	el, ok := e.nodes[id]
	if !ok {
		return nil
	}
	if el.Type != models.TypeTemplate && !el.Generated {
		return fmt.Errorf("%w: %s has a derived name", ErrInvalidOperation, id)
	}
	el.Name = name
	return nil
}

func (e *Engine) checkFullscreen(el *models.Element) error {
	if el.Type != models.TypeContainer {
		return fmt.Errorf("%w: only containers can be fullscreen", ErrInvalidOperation)
	}
	if !el.IsRoot() {
		return fmt.Errorf("%w: fullscreen container must be at root level", ErrInvalidOperation)
	}
	if len(e.roots) > 1 {
		return fmt.Errorf("%w: fullscreen container cannot have root siblings", ErrInvalidOperation)
	}
	return nil
}

func (e *Engine) fullscreenRoot() string {
	for _, id := range e.roots {
		if el := e.nodes[id]; el != nil && el.Props.IsFullscreen {
			return id
		}
	}
	return ""
}

// ============================================================
// Selection
// ============================================================

// Select задает выделение; "" снимает его, неизвестные id игнорируются.
func (e *Engine) Select(id string) {
	if id == "" {
		e.selected = ""
		return
	}
	if _, ok := e.nodes[id]; ok {
		e.selected = id
	}
}

// Panel - имя панели свойств для id: тип элемента или "none".
func (e *Engine) Panel(id string) string {
	el, ok := e.nodes[id]
	if !ok {
		return PanelNone
	}
	return string(el.Type)
}

// PanelNone показывается, когда нечего редактировать.
const PanelNone = "none"

// ============================================================
// Tree links
// ============================================================

// attach добавляет id в дети родителя (или в список корней), если
// его там еще нет.
func (e *Engine) attach(id, parentID string) {
	if parentID == "" {
		if !slices.Contains(e.roots, id) {
			e.roots = append(e.roots, id)
		}
		return
	}
	parent := e.nodes[parentID]
	if parent.IndexOfChild(id) < 0 {
		parent.Children = append(parent.Children, id)
	}
}

func (e *Engine) detach(id, parentID string) {
	if parentID == "" {
		if i := slices.Index(e.roots, id); i >= 0 {
			e.roots = slices.Delete(e.roots, i, i+1)
		}
		return
	}
	parent, ok := e.nodes[parentID]
	if !ok {
		return
	}
	if i := parent.IndexOfChild(id); i >= 0 {
		parent.Children = slices.Delete(parent.Children, i, i+1)
	}
}
