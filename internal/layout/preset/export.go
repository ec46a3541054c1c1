package preset

import (
	"fmt"
	"slices"
	"sort"
	"strings"

	"layout-studio/internal/layout/anchored"
	"layout-studio/internal/layout/models"
	"layout-studio/internal/layout/style"
	"layout-studio/internal/layout/vocab"

	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/net/html"
)

// ============================================================
// Static HTML export
// ============================================================

type ExportOptions struct {
	// Title заменяет заголовок документа; по умолчанию имя пресета.
	Title string
	// Sanitize пропускает внутренний HTML через UGC-политику.
	Sanitize bool
	// Background - цвет страницы за сценой.
	Background string
}

// Export выводит p самодостаточным HTML-документом. Стили компилируются
// из замороженной конфигурации пресета, одинаковые пресеты дают одинаковый вывод.
func Export(p models.Preset, opts ExportOptions) string {
	title := opts.Title
	if title == "" {
		title = p.Name
	}
	page := opts.Background
	if page == "" {
		page = "#0f172a"
	}

	content := func(s string) string { return s }
	if opts.Sanitize {
		policy := bluemonday.UGCPolicy()
		policy.AllowStyling()
		content = policy.Sanitize
	}

	ids := make([]string, 0, len(p.ElementsConfig))
	for id, d := range p.ElementsConfig {
		if d != nil {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)

	ref := style.ReferenceFromLayer2(p.Layer2Config)
	layer2 := style.CompileLayer2(p.Layer2Config)
	decos := make(map[string]style.Descriptor, len(ids))
	for _, id := range ids {
		decos[id] = style.CompileDecoration(p.ElementsConfig[id], ref)
	}

	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html lang=\"en\">\n<head>\n<meta charset=\"utf-8\">\n")
	b.WriteString("<meta name=\"viewport\" content=\"width=device-width, initial-scale=1\">\n")
	fmt.Fprintf(&b, "<title>%s</title>\n<style>\n", html.EscapeString(title))
	fmt.Fprintf(&b, "html, body {\n  margin: 0;\n  height: 100%%;\n  overflow: hidden;\n  background: %s;\n}\n", page)
	b.WriteString("#stage {\n  position: relative;\n  width: 100vw;\n  height: 100vh;\n}\n")

	writeRule(&b, "#"+anchored.Layer2ID, layer2)
	for _, id := range ids {
		writeRule(&b, "#"+id, decos[id])
		d := p.ElementsConfig[id]
		if d.HoverTrigger && d.Animation.Name != "none" {
			fmt.Fprintf(&b, "#%s:hover {\n  animation-play-state: running;\n}\n", id)
		}
	}

	for _, token := range usedTokens(layer2, decos) {
		if css, ok := vocab.TokenCSS(token); ok {
			fmt.Fprintf(&b, ".%s {\n  %s;\n}\n", token, css)
		}
	}
	for _, name := range usedAnimations(p.ElementsConfig, ids) {
		body, _ := vocab.Keyframes(name)
		fmt.Fprintf(&b, "@keyframes %s { %s }\n", name, body)
	}
	b.WriteString("</style>\n</head>\n<body>\n<div id=\"stage\">\n")

	writeElement(&b, anchored.Layer2ID, layer2.ClassName(), content(p.Layer2HTML))
	for _, id := range ids {
		writeElement(&b, id, decos[id].ClassName(), content(p.DecorativeElementsHTML[id]))
	}
	b.WriteString("</div>\n</body>\n</html>\n")
	return b.String()
}

func writeRule(b *strings.Builder, selector string, d style.Descriptor) {
	b.WriteString(selector)
	b.WriteString(" {\n")
	b.WriteString(d.CSSText("  "))
	b.WriteString("}\n")
}

func writeElement(b *strings.Builder, id, class, inner string) {
	fmt.Fprintf(b, "<div id=\"%s\"", html.EscapeString(id))
	if class != "" {
		fmt.Fprintf(b, " class=\"%s\"", html.EscapeString(class))
	}
	fmt.Fprintf(b, ">%s</div>\n", inner)
}

func usedTokens(layer2 style.Descriptor, decos map[string]style.Descriptor) []string {
	var out []string
	add := func(tokens []string) {
		for _, t := range tokens {
			if !slices.Contains(out, t) {
				out = append(out, t)
			}
		}
	}
	add(layer2.ClassTokens)
	for _, d := range decos {
		add(d.ClassTokens)
	}
	sort.Strings(out)
	return out
}

func usedAnimations(decos map[string]*models.Decoration, ids []string) []string {
	var out []string
	for _, id := range ids {
		name := decos[id].Animation.Name
		if _, ok := vocab.Keyframes(name); ok && !slices.Contains(out, name) {
			out = append(out, name)
		}
	}
	sort.Strings(out)
	return out
}
