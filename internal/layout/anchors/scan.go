package anchors

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"strings"

	"layout-studio/internal/layout/vocab"

	"golang.org/x/net/html"
)

//go:embed default.html
var defaultMarkup []byte

// ============================================================
// Anchor discovery
// ============================================================

// Anchor - декоративный слот, найденный в разметке редактора.
type Anchor struct {
	ID      string        `json:"id"`
	AnchorX vocab.AnchorX `json:"anchorX"`
	AnchorY vocab.AnchorY `json:"anchorY"`
}

// Default сканирует встроенную разметку сцены.
func Default() []Anchor {
	anchors, err := Scan(bytes.NewReader(defaultMarkup))
	if err != nil {
		panic(fmt.Sprintf("anchors: built-in markup: %v", err))
	}
	return anchors
}

// Scan возвращает декоративные якоря HTML-документа в порядке документа.
// Элемент считается якорем, если у него есть id и либо атрибут data-anchor
// ("left top"), либо префикс id "deco-"; иначе позиция берется из слов id.
// Для повторных id остается первое вхождение.
func Scan(r io.Reader) ([]Anchor, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse markup: %w", err)
	}

	var out []Anchor
	seen := make(map[string]bool)
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			if a, ok := classify(n); ok && !seen[a.ID] {
				seen[a.ID] = true
				out = append(out, a)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return out, nil
}

func classify(n *html.Node) (Anchor, bool) {
	id := attr(n, "id")
	if id == "" {
		return Anchor{}, false
	}
	spec, hasSpec := attrOK(n, "data-anchor")
	if !hasSpec && !strings.HasPrefix(id, "deco-") {
		return Anchor{}, false
	}
	if !hasSpec {
		spec = strings.ReplaceAll(strings.TrimPrefix(id, "deco-"), "-", " ")
	}

	a := Anchor{ID: id, AnchorX: vocab.AnchorCenterX, AnchorY: vocab.AnchorCenterY}
	for _, word := range strings.Fields(spec) {
		if ax, ok := vocab.ParseAnchorX(word); ok && ax != vocab.AnchorCenterX {
			a.AnchorX = ax
		}
		if ay, ok := vocab.ParseAnchorY(word); ok && ay != vocab.AnchorCenterY {
			a.AnchorY = ay
		}
	}
	return a, true
}

func attr(n *html.Node, key string) string {
	v, _ := attrOK(n, key)
	return v
}

func attrOK(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == key {
			return strings.TrimSpace(a.Val), true
		}
	}
	return "", false
}
