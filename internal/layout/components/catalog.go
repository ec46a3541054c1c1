package components

import (
	"sort"
	"strconv"

	"layout-studio/internal/layout/models"
)

// ============================================================
// Predefined Components
// ============================================================

// Generator строит поддерево. Получает текущий счетчик id и будущего
// родителя, возвращает новые узлы и продвинутый счетчик.
type Generator func(counter int, parentID string) models.Subtree

// Definition - либо один узел-шаблон (задан TemplateKey), либо
// сгенерированное поддерево (задан Generate).
type Definition struct {
	Key           string
	Name          string
	TemplateKey   string
	TemplateProps map[string]any
	Generate      Generator
}

// IsTemplate - определение вставляет один узел-шаблон.
func (d Definition) IsTemplate() bool { return d.Generate == nil }

var catalog = map[string]Definition{
	MultiObjectGrid: {
		Key:           MultiObjectGrid,
		Name:          "Multi-Object Grid",
		TemplateKey:   MultiObjectGrid,
		TemplateProps: map[string]any{"colors": defaultGridColors()},
	},
	"hero":       {Key: "hero", Name: "Hero Section", Generate: generateHero},
	"two-column": {Key: "two-column", Name: "Two Columns", Generate: generateTwoColumn},
	"card":       {Key: "card", Name: "Card", Generate: generateCard},
	"navbar":     {Key: "navbar", Name: "Navigation Bar", Generate: generateNavbar},
}

// Lookup возвращает определение по ключу.
func Lookup(key string) (Definition, bool) {
	d, ok := catalog[key]
	return d, ok
}

// Keys - ключи компонентов по алфавиту.
func Keys() []string {
	keys := make([]string, 0, len(catalog))
	for k := range catalog {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// ============================================================
// Generators
// ============================================================

type subtreeBuilder struct {
	counter int
	nodes   map[string]*models.Element
}

func newBuilder(counter int) *subtreeBuilder {
	return &subtreeBuilder{counter: counter, nodes: make(map[string]*models.Element)}
}

func (b *subtreeBuilder) add(t models.ElementType, parent *models.Element, parentID string) *models.Element {
	b.counter++
	if parent != nil {
		parentID = parent.ID
	}
	el := models.NewElement(t, b.counter, parentID)
	b.link(el, parent)
	return el
}

func (b *subtreeBuilder) control(ct models.ControlType, parent *models.Element, overrides map[string]any) *models.Element {
	b.counter++
	tpl, _ := Control(ct)
	el := NewControl(tpl, b.counter, parent.ID)
	for k, v := range overrides {
		el.Props.Set(k, v)
	}
	b.link(el, parent)
	return el
}

func (b *subtreeBuilder) link(el, parent *models.Element) {
	b.nodes[el.ID] = el
	if parent != nil {
		parent.Children = append(parent.Children, el.ID)
	}
}

func (b *subtreeBuilder) finish(root *models.Element, name string) models.Subtree {
	root.Name = name
	root.Generated = true
	return models.Subtree{Root: root.ID, Nodes: b.nodes, Counter: b.counter}
}

func generateHero(counter int, parentID string) models.Subtree {
	b := newBuilder(counter)
	container := b.add(models.TypeContainer, nil, parentID)
	container.Props.Set("padding", map[string]any{"top": "16", "bottom": "16"})
	row := b.add(models.TypeRow, container, "")
	row.Props.Set("justifyContent", "center")
	col := b.add(models.TypeCol, row, "")
	col.Props.Set("span", "8")
	b.control(models.ControlHeading, col, map[string]any{"text": "Build something great", "level": 1.0})
	b.control(models.ControlParagraph, col, nil)
	b.control(models.ControlButton, col, map[string]any{"text": "Get started"})
	return b.finish(container, "Hero Section")
}

func generateTwoColumn(counter int, parentID string) models.Subtree {
	b := newBuilder(counter)
	row := b.add(models.TypeRow, nil, parentID)
	for i := 0; i < 2; i++ {
		col := b.add(models.TypeCol, row, "")
		col.Props.Set("span", "6")
	}
	return b.finish(row, "Two Columns")
}

func generateCard(counter int, parentID string) models.Subtree {
	b := newBuilder(counter)
	col := b.add(models.TypeCol, nil, parentID)
	col.Props.Set("padding", map[string]any{"top": "6", "right": "6", "bottom": "6", "left": "6"})
	col.Props.Set("backgroundColor", "white")
	col.Props.Set("customClasses", "rounded-lg shadow")
	b.control(models.ControlHeading, col, map[string]any{"text": "Card title", "level": 3.0})
	b.control(models.ControlParagraph, col, nil)
	b.control(models.ControlLink, col, map[string]any{"text": "Read more"})
	return b.finish(col, "Card")
}

func generateNavbar(counter int, parentID string) models.Subtree {
	b := newBuilder(counter)
	row := b.add(models.TypeRow, nil, parentID)
	row.Props.Set("justifyContent", "between")
	row.Props.Set("alignItems", "center")
	row.Props.Set("padding", map[string]any{"top": "4", "right": "6", "bottom": "4", "left": "6"})
	brand := b.add(models.TypeCol, row, "")
	brand.Props.Set("span", "auto")
	b.control(models.ControlHeading, brand, map[string]any{"text": "Brand", "level": 4.0})
	links := b.add(models.TypeCol, row, "")
	links.Props.Set("span", "auto")
	for _, label := range []string{"Home", "About", "Contact"} {
		b.control(models.ControlLink, links, map[string]any{
			"text":   label,
			"margin": map[string]any{"left": "4"},
		})
	}
	return b.finish(row, "Navigation Bar")
}

func itoa(n int) string { return strconv.Itoa(n) }
