package tree

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"layout-studio/internal/layout/models"
)

// ErrInconsistent - карта узлов нарушает структуру дерева.
var ErrInconsistent = errors.New("inconsistent tree")

// ============================================================
// Snapshot & Restore
// ============================================================

// State - сериализуемое состояние Engine.
type State struct {
	Nodes    map[string]*models.Element `json:"nodes"`
	Roots    []string                   `json:"roots"`
	Counter  int                        `json:"counter"`
	Selected string                     `json:"selected,omitempty"`
}

// Snapshot возвращает глубокую копию состояния.
func (e *Engine) Snapshot() State {
	return State{
		Nodes:    e.Elements(),
		Roots:    e.Roots(),
		Counter:  e.counter,
		Selected: e.selected,
	}
}

// Restore заменяет состояние на s после проверки. При ошибке
// движок не меняется.
func (e *Engine) Restore(s State) error {
	candidate := &Engine{
		nodes:   make(map[string]*models.Element, len(s.Nodes)),
		roots:   append([]string{}, s.Roots...),
		counter: s.Counter,
	}
	for id, el := range s.Nodes {
		if el == nil || el.ID != id {
			return fmt.Errorf("%w: node key %s does not match its id", ErrInconsistent, id)
		}
		c := el.Clone()
		if c.Children == nil {
			c.Children = []string{}
		}
		candidate.nodes[id] = c
	}
	if err := candidate.Validate(); err != nil {
		return err
	}

	for id := range candidate.nodes {
		if n := sequenceOf(id); n > candidate.counter {
			candidate.counter = n
		}
	}
	if _, ok := candidate.nodes[s.Selected]; ok {
		candidate.selected = s.Selected
	}

	*e = *candidate
	return nil
}

// Validate проверяет связи родитель/ребенок в обе стороны, отсутствие
// циклов, список корней и единственность fullscreen.
func (e *Engine) Validate() error {
	seen := make(map[string]string)
	for _, id := range e.roots {
		el, ok := e.nodes[id]
		if !ok {
			return fmt.Errorf("%w: root %s missing from map", ErrInconsistent, id)
		}
		if !el.IsRoot() {
			return fmt.Errorf("%w: root %s has parent %s", ErrInconsistent, id, el.ParentID)
		}
		if _, dup := seen[id]; dup {
			return fmt.Errorf("%w: root %s listed twice", ErrInconsistent, id)
		}
		seen[id] = ""
	}

	for id, el := range e.nodes {
		if _, ok := models.ParseElementType(string(el.Type)); !ok {
			return fmt.Errorf("%w: %s has unknown type %q", ErrInconsistent, id, el.Type)
		}
		if el.IsRoot() {
			if _, ok := seen[id]; !ok {
				return fmt.Errorf("%w: root %s missing from root list", ErrInconsistent, id)
			}
		} else {
			parent, ok := e.nodes[string(el.ParentID)]
			if !ok {
				return fmt.Errorf("%w: %s points to missing parent %s", ErrInconsistent, id, el.ParentID)
			}
			if parent.IndexOfChild(id) < 0 {
				return fmt.Errorf("%w: %s not listed by parent %s", ErrInconsistent, id, el.ParentID)
			}
		}
		for _, c := range el.Children {
			child, ok := e.nodes[c]
			if !ok {
				return fmt.Errorf("%w: %s lists missing child %s", ErrInconsistent, id, c)
			}
			if string(child.ParentID) != id {
				return fmt.Errorf("%w: child %s of %s points to %s", ErrInconsistent, c, id, child.ParentID)
			}
			if prev, dup := seen[c]; dup && prev != "" {
				return fmt.Errorf("%w: %s listed by %s and %s", ErrInconsistent, c, prev, id)
			}
			seen[c] = id
		}
		if e.WouldCycle(id, string(el.ParentID)) {
			return fmt.Errorf("%w: %s is its own ancestor", ErrInconsistent, id)
		}
	}

	fullscreen := 0
	for _, id := range e.roots {
		if e.nodes[id].Props.IsFullscreen {
			fullscreen++
		}
	}
	for id, el := range e.nodes {
		if el.Props.IsFullscreen && !el.IsRoot() {
			return fmt.Errorf("%w: fullscreen container %s is nested", ErrInconsistent, id)
		}
	}
	if fullscreen > 0 && len(e.roots) > 1 {
		return fmt.Errorf("%w: fullscreen container has root siblings", ErrInconsistent)
	}
	return nil
}

func sequenceOf(id string) int {
	i := strings.LastIndex(id, "-")
	if i < 0 {
		return 0
	}
	n, err := strconv.Atoi(id[i+1:])
	if err != nil {
		return 0
	}
	return n
}
