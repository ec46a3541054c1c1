package style

import (
	"fmt"
	"math"
	"strconv"

	"layout-studio/internal/layout/models"
	"layout-studio/internal/layout/vocab"
)

// ============================================================
// Anchor positioning
// ============================================================

// Reference - контейнер, к которому привязаны декорации: размер в
// процентах вьюпорта и ширина рамки в пикселях.
type Reference struct {
	WidthPercent  float64 `json:"widthPercent"`
	HeightPercent float64 `json:"heightPercent"`
	BorderWidthPx float64 `json:"borderWidthPx"`
}

// ReferenceFromLayer2 строит Reference из конфигурации центральной панели.
// Невидимая рамка смещения не дает.
func ReferenceFromLayer2(cfg models.Layer2Config) Reference {
	ref := Reference{WidthPercent: cfg.Width, HeightPercent: cfg.Height}
	if cfg.Border.Visible() {
		ref.BorderWidthPx = cfg.Border.Width
	}
	return ref
}

// Placement хранит три слагаемых координаты. Единицы у них разные,
// в одно число они не сворачиваются.
type Placement struct {
	TargetPercent  float64 `json:"targetPercent"`
	BorderOffsetPx float64 `json:"borderOffsetPx"`
	HalfSize       float64 `json:"halfSize"`
	Unit           string  `json:"unit"`
}

// CSS выводит позицию как calc(T% + Bpx - Hunit).
func (p Placement) CSS() string {
	sign := "+"
	if p.BorderOffsetPx < 0 {
		sign = "-"
	}
	offset := math.Abs(p.BorderOffsetPx)
	return fmt.Sprintf("calc(%s%% %s %spx - %s%s)",
		formatFloat(p.TargetPercent), sign, formatFloat(offset), formatFloat(p.HalfSize), p.Unit)
}

// anchorSign: -1 для начального края (left/top), +1 для конечного, 0 для центра.
func anchorSign(start, end bool) float64 {
	switch {
	case start:
		return -1
	case end:
		return 1
	}
	return 0
}

// place считает одну ось. extentPercent - размер Reference по оси,
// size - размер элемента, border - ширина его видимой рамки.
func place(sign, extentPercent, borderPx, size, border float64) Placement {
	return Placement{
		TargetPercent:  50 + sign*extentPercent/2,
		BorderOffsetPx: -sign * borderPx / 2,
		HalfSize:       (size + 2*border) / 2,
		Unit:           models.SizeUnit,
	}
}

// PositionX размещает элемент по горизонтали относительно ref.
func PositionX(ax vocab.AnchorX, width, border float64, ref Reference) Placement {
	sign := anchorSign(ax == vocab.AnchorLeft, ax == vocab.AnchorRight)
	return place(sign, ref.WidthPercent, ref.BorderWidthPx, width, border)
}

// PositionY размещает элемент по вертикали относительно ref.
func PositionY(ay vocab.AnchorY, height, border float64, ref Reference) Placement {
	sign := anchorSign(ay == vocab.AnchorTop, ay == vocab.AnchorBottom)
	return place(sign, ref.HeightPercent, ref.BorderWidthPx, height, border)
}

// ============================================================
// Decorations
// ============================================================

// CompileDecoration строит inline-стиль декорации.
func CompileDecoration(dec *models.Decoration, ref Reference) Descriptor {
	var d Descriptor

	if dec.Shadow != "none" {
		d.addClass(vocab.ShadowToken(dec.Shadow))
	}

	border := 0.0
	if dec.Border.Visible() {
		border = dec.Border.Width
	}
	x := PositionX(dec.AnchorX, dec.Width, border, ref)
	y := PositionY(dec.AnchorY, dec.Height, border, ref)

	d.set("position", "absolute")
	d.set("display", dec.Display)
	if dec.Visible {
		d.set("visibility", "visible")
	} else {
		d.set("visibility", "hidden")
	}
	d.set("z-index", strconv.Itoa(dec.ZIndex))
	d.set("overflow-x", dec.OverflowX)
	d.set("overflow-y", dec.OverflowY)
	d.set("box-sizing", "content-box")
	d.set("width", unit(dec.Width))
	d.set("height", unit(dec.Height))
	d.set("margin-top", unit(dec.Margin.Top))
	d.set("margin-right", unit(dec.Margin.Right))
	d.set("margin-bottom", unit(dec.Margin.Bottom))
	d.set("margin-left", unit(dec.Margin.Left))
	d.set("left", x.CSS())
	d.set("top", y.CSS())

	backgroundDecls(&d, dec.Background)
	d.set("box-shadow", ShadowValue(dec.BoxShadow, 0))
	d.set("text-shadow", ShadowValue(dec.TextShadow, -1))
	d.set("opacity", formatFloat(dec.Opacity))
	d.set("filter", FilterChain(dec.Filters))
	d.set("border", BorderValue(dec.Border))
	d.set("border-radius", px(dec.Border.Radius))
	d.set("transform", TransformChain(dec.Transform))
	d.set("animation", AnimationValue(dec.Animation))
	if dec.HoverTrigger && dec.Animation.Name != "none" {
		d.set("animation-play-state", "paused")
	}
	return d
}

func unit(v float64) string {
	if v == 0 {
		return "0"
	}
	return formatFloat(round(v)) + models.SizeUnit
}

// round обрезает шум float до 4 знаков.
func round(v float64) float64 {
	return math.Round(v*10000) / 10000
}
