package tree

import (
	"fmt"

	"layout-studio/internal/layout/models"
)

// ============================================================
// Move & Delete
// ============================================================

// WouldCycle - станет ли id своим предком, если сделать newParentID его
// родителем. Обход ограничен размером карты, поэтому битая цепочка
// родителей тоже считается циклом.
func (e *Engine) WouldCycle(id, newParentID string) bool {
	cur := newParentID
	for steps := 0; cur != ""; steps++ {
		if cur == id {
			return true
		}
		if steps > len(e.nodes) {
			return true
		}
		n, ok := e.nodes[cur]
		if !ok {
			return false
		}
		cur = string(n.ParentID)
	}
	return false
}

// MoveElement отцепляет id от родителя и добавляет в конец детей
// newParentID ("" делает его корнем).
func (e *Engine) MoveElement(id, newParentID string) error {
	el, ok := e.nodes[id]
	if !ok {
		return nil
	}
	if newParentID != "" {
		if _, ok := e.nodes[newParentID]; !ok {
			return fmt.Errorf("%w: unknown parent %s", ErrInvalidOperation, newParentID)
		}
	}
	if e.WouldCycle(id, newParentID) {
		return fmt.Errorf("%w: moving %s under %s would create a cycle", ErrInvalidOperation, id, newParentID)
	}
	if el.Props.IsFullscreen && newParentID != "" {
		return fmt.Errorf("%w: fullscreen container must be at root level", ErrInvalidOperation)
	}
	if newParentID == "" && !el.IsRoot() {
		if fs := e.fullscreenRoot(); fs != "" {
			return fmt.Errorf("%w: fullscreen container %s must stay the only root", ErrInvalidOperation, fs)
		}
	}

	e.detach(id, string(el.ParentID))
	el.ParentID = models.ParentRef(newParentID)
	e.attach(id, newParentID)
	return nil
}

// DeleteElement удаляет id со всеми потомками, сначала детей.
// Возвращает удаленные id в порядке удаления.
func (e *Engine) DeleteElement(id string) []string {
	el, ok := e.nodes[id]
	if !ok {
		return nil
	}

	var removed []string
	visited := make(map[string]bool)
	e.removeSubtree(id, visited, &removed)
	e.detach(id, string(el.ParentID))

	for _, r := range removed {
		if r == e.selected {
			e.selected = ""
			break
		}
	}
	return removed
}

func (e *Engine) removeSubtree(id string, visited map[string]bool, removed *[]string) {
	if visited[id] {
		return
	}
	visited[id] = true

	el, ok := e.nodes[id]
	if !ok {
		return
	}
	for _, child := range append([]string{}, el.Children...) {
		e.removeSubtree(child, visited, removed)
	}
	delete(e.nodes, id)
	*removed = append(*removed, id)
}

// Descendants возвращает все id под id в порядке обхода в глубину.
func (e *Engine) Descendants(id string) []string {
	var out []string
	visited := map[string]bool{id: true}
	var walk func(string)
	walk = func(cur string) {
		el, ok := e.nodes[cur]
		if !ok {
			return
		}
		for _, c := range el.Children {
			if visited[c] {
				continue
			}
			visited[c] = true
			out = append(out, c)
			walk(c)
		}
	}
	walk(id)
	return out
}
