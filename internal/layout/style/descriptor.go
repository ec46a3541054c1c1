package style

import (
	"encoding/json"
	"strconv"
	"strings"
)

// ============================================================
// Style Descriptor
// ============================================================

// Declaration - одно inline-свойство CSS.
type Declaration struct {
	Property string
	Value    string
}

// Descriptor - скомпилированный стиль узла: токены классов и inline
// переопределения, оба в порядке вывода.
type Descriptor struct {
	ClassTokens []string
	Inline      []Declaration
	// Objects - размещенные объекты мульти-объектных шаблонов.
	Objects []ObjectStyle
}

// ObjectStyle - стиль одного объекта шаблона.
type ObjectStyle struct {
	ID         string     `json:"id"`
	Descriptor Descriptor `json:"style"`
}

func (d *Descriptor) addClass(tokens ...string) {
	for _, t := range tokens {
		if t != "" {
			d.ClassTokens = append(d.ClassTokens, t)
		}
	}
}

func (d *Descriptor) set(property, value string) {
	for i := range d.Inline {
		if d.Inline[i].Property == property {
			d.Inline[i].Value = value
			return
		}
	}
	d.Inline = append(d.Inline, Declaration{Property: property, Value: value})
}

// Get возвращает inline-значение свойства.
func (d Descriptor) Get(property string) (string, bool) {
	for _, decl := range d.Inline {
		if decl.Property == property {
			return decl.Value, true
		}
	}
	return "", false
}

// InlineMap возвращает inline-переопределения картой.
func (d Descriptor) InlineMap() map[string]string {
	m := make(map[string]string, len(d.Inline))
	for _, decl := range d.Inline {
		m[decl.Property] = decl.Value
	}
	return m
}

// ClassName склеивает токены через пробел.
func (d Descriptor) ClassName() string {
	return strings.Join(d.ClassTokens, " ")
}

// CSSText выводит переопределения строками "prop: value;" с отступом indent.
func (d Descriptor) CSSText(indent string) string {
	var b strings.Builder
	for _, decl := range d.Inline {
		b.WriteString(indent)
		b.WriteString(decl.Property)
		b.WriteString(": ")
		b.WriteString(decl.Value)
		b.WriteString(";\n")
	}
	return b.String()
}

func (d Descriptor) MarshalJSON() ([]byte, error) {
	tokens := d.ClassTokens
	if tokens == nil {
		tokens = []string{}
	}
	return json.Marshal(struct {
		ClassTokens     []string          `json:"classTokens"`
		InlineOverrides map[string]string `json:"inlineOverrides"`
		Objects         []ObjectStyle     `json:"objects,omitempty"`
	}{tokens, d.InlineMap(), d.Objects})
}

// ============================================================
// Formatting helpers
// ============================================================

func formatFloat(val float64) string {
	return strconv.FormatFloat(val, 'f', -1, 64)
}

func px(val float64) string { return formatFloat(val) + "px" }
