package style

import (
	"fmt"
	"strconv"
	"strings"

	"layout-studio/internal/layout/components"
	"layout-studio/internal/layout/models"
	"layout-studio/internal/layout/vocab"
)

const (
	ringSelected = "ring-2 ring-blue-500"
	ringHover    = "hover:ring-1 hover:ring-blue-300"
)

// ============================================================
// Tree elements
// ============================================================

// CompileElement строит дескриптор узла дерева. Порядок токенов
// фиксирован: токены типа, padding, margin, фон, min-height,
// пользовательские классы, рамка выделения.
func CompileElement(el *models.Element, selected string) Descriptor {
	var d Descriptor
	p := el.Props

	fullscreen := el.Type == models.TypeContainer && p.IsFullscreen

	switch el.Type {
	case models.TypeContainer:
		compileContainer(&d, p)
	case models.TypeRow:
		compileRow(&d, p)
	case models.TypeCol:
		compileCol(&d, p)
	case models.TypeControl:
		compileControl(&d, p)
	case models.TypeTemplate:
		compileTemplate(&d, p)
	}

	if fullscreen {
		for _, side := range vocab.Sides {
			d.set("padding-"+string(side), px(vocab.SpacingPx(p.Padding.Get(side))))
		}
		d.set("margin", "0px")
	} else {
		spacingTokens(&d, vocab.Padding, p.Padding)
		spacingTokens(&d, vocab.Margin, p.Margin)
	}

	if p.BackgroundColor != "" {
		d.addClass(vocab.ColorToken("bg", p.BackgroundColor))
	}
	if p.MinHeight != "" {
		d.addClass(minHeightToken(p.MinHeight))
	}
	d.addClass(strings.Fields(p.CustomClasses)...)

	if el.ID == selected {
		d.addClass(strings.Fields(ringSelected)...)
	} else {
		d.addClass(strings.Fields(ringHover)...)
	}
	return d
}

// spacingTokens выдает по токену на сторону: top, right, bottom, left.
// Пустая сторона превращается в "0".
func spacingTokens(d *Descriptor, prop vocab.SpacingProp, s models.Spacing) {
	for _, side := range vocab.Sides {
		v := s.Get(side)
		if !vocab.IsSpacing(v) {
			v = "0"
		}
		d.addClass(vocab.SpacingToken(prop, side, v))
	}
}

func minHeightToken(v string) string {
	switch {
	case v == "screen" || v == "full" || vocab.IsSpacing(v):
		return "min-h-" + v
	}
	return "min-h-[" + v + "]"
}

func compileContainer(d *Descriptor, p models.Props) {
	if p.IsFullscreen {
		d.addClass("fixed", "inset-0", "z-50", "w-screen", "h-screen", "overflow-auto")
		return
	}
	if p.IsFluid {
		d.addClass("w-full")
		return
	}
	d.addClass("container", "mx-auto")
}

func compileRow(d *Descriptor, p models.Props) {
	d.addClass("flex", "flex-wrap")
	if vocab.IsSpacing(p.Gutters.X) {
		d.addClass(vocab.GapToken("x", p.Gutters.X))
	}
	if vocab.IsSpacing(p.Gutters.Y) {
		d.addClass(vocab.GapToken("y", p.Gutters.Y))
	}
	if p.JustifyContent != "" && p.JustifyContent != vocab.DefaultJustify {
		d.addClass("justify-" + p.JustifyContent)
	}
	if p.AlignItems != "" && p.AlignItems != vocab.DefaultAlign {
		d.addClass("items-" + p.AlignItems)
	}
}

func compileCol(d *Descriptor, p models.Props) {
	switch {
	case p.Span == "auto":
		d.addClass("w-auto", "flex-none")
	case isNumericSpan(p.Span):
		d.addClass("w-"+p.Span+"/12", "flex-none")
	default:
		d.addClass("flex-1")
	}

	if off, err := strconv.Atoi(p.Offset); err == nil && off > 0 {
		d.set("margin-left", OffsetPercent(off))
	}
	if p.Order != "" && p.Order != vocab.DefaultOrder {
		d.addClass("order-" + p.Order)
	}
	if p.AlignSelf != "" && p.AlignSelf != vocab.DefaultAlignSelf {
		d.addClass("self-" + p.AlignSelf)
	}
}

// OffsetPercent переводит смещение колонки в процент левого отступа
// с тремя знаками, например 3 -> "25.000%".
func OffsetPercent(offset int) string {
	return fmt.Sprintf("%.3f%%", float64(offset)/12*100)
}

func isNumericSpan(v string) bool {
	n, err := strconv.Atoi(v)
	return err == nil && n >= 1 && n <= 12
}

var controlTokens = map[models.ControlType][]string{
	models.ControlButton:    {"inline-flex", "items-center", "justify-center", "rounded", "font-medium"},
	models.ControlInput:     {"block", "w-full", "rounded", "border", "border-gray-300"},
	models.ControlTextarea:  {"block", "w-full", "rounded", "border", "border-gray-300", "resize-y"},
	models.ControlSelect:    {"block", "w-full", "rounded", "border", "border-gray-300"},
	models.ControlLabel:     {"block", "text-sm", "font-medium"},
	models.ControlHeading:   {"font-bold"},
	models.ControlParagraph: {"text-base", "leading-relaxed"},
	models.ControlLink:      {"text-blue-600", "underline"},
	models.ControlImage:     {"block", "max-w-full", "h-auto"},
	models.ControlCheckbox:  {"inline-flex", "items-center", "gap-2"},
	models.ControlRadio:     {"inline-flex", "items-center", "gap-2"},
	models.ControlDivider:   {"w-full", "border-t", "border-gray-300"},
	models.ControlSpacer:    {"block", "w-full"},
	models.ControlBadge:     {"inline-block", "rounded-full", "text-xs", "font-semibold"},
}

var variantTokens = map[string][]string{
	"primary":   {"bg-blue-600", "text-white"},
	"secondary": {"bg-gray-200", "text-gray-900"},
	"outline":   {"border", "border-blue-600", "text-blue-600"},
	"danger":    {"bg-red-600", "text-white"},
}

var headingSizes = []string{"text-4xl", "text-3xl", "text-2xl", "text-xl", "text-lg", "text-base"}

func compileControl(d *Descriptor, p models.Props) {
	d.addClass(controlTokens[p.ControlType]...)

	switch p.ControlType {
	case models.ControlHeading:
		level := p.Level
		if level < 1 || level > 6 {
			level = 2
		}
		d.addClass(headingSizes[level-1])
	case models.ControlButton, models.ControlBadge:
		if p.BackgroundColor == "" {
			d.addClass(variantTokens[p.Variant]...)
		}
	}

	if p.Width != "" {
		d.set("width", p.Width)
	}
	if p.Height != "" {
		d.set("height", p.Height)
	}
}

func compileTemplate(d *Descriptor, p models.Props) {
	d.addClass("relative", "w-full", "overflow-hidden")
	if objects := components.TemplateObjects(p.TemplateKey, p.TemplateProps); objects != nil {
		d.Objects = CompileObjects(objects)
	}
}
