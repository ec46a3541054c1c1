package style

import (
	"layout-studio/internal/layout/models"
)

// ============================================================
// Compiler entry point
// ============================================================

// Context - то, что компилятор читает помимо самого узла.
type Context struct {
	// Selected - id выделенного узла дерева.
	Selected string
	// Reference - контейнер, относительно которого ставятся декорации.
	Reference Reference
}

// Compile строит дескриптор стиля любого узла. Функция чистая:
// одинаковый вход дает одинаковый дескриптор.
func Compile(node models.Node, ctx Context) Descriptor {
	switch n := node.(type) {
	case *models.Element:
		return CompileElement(n, ctx.Selected)
	case *models.Decoration:
		return CompileDecoration(n, ctx.Reference)
	}
	return Descriptor{}
}

// CompileTree компилирует каждый узел дерева.
func CompileTree(elements map[string]*models.Element, selected string) map[string]Descriptor {
	out := make(map[string]Descriptor, len(elements))
	ctx := Context{Selected: selected}
	for id, el := range elements {
		out[id] = Compile(el, ctx)
	}
	return out
}
