package style

import (
	"fmt"
	"strings"

	"layout-studio/internal/layout/models"
)

// ============================================================
// Filters & Transforms
// ============================================================

// FilterChain выводит восемь фильтров в фиксированном порядке или "none",
// если все нейтральные.
func FilterChain(f models.Filters) string {
	if f == models.NeutralFilters() {
		return "none"
	}
	parts := []string{
		"blur(" + px(f.Blur) + ")",
		"brightness(" + formatFloat(f.Brightness) + ")",
		"contrast(" + formatFloat(f.Contrast) + ")",
		"grayscale(" + formatFloat(f.Grayscale) + ")",
		"saturate(" + formatFloat(f.Saturate) + ")",
		"sepia(" + formatFloat(f.Sepia) + ")",
		"hue-rotate(" + formatFloat(f.HueRotate) + "deg)",
		"invert(" + formatFloat(f.Invert) + ")",
	}
	return strings.Join(parts, " ")
}

// TransformChain выводит шесть трансформаций в фиксированном порядке или
// "none", если все нейтральные.
func TransformChain(t models.Transform) string {
	if t == models.NeutralTransform() {
		return "none"
	}
	parts := []string{
		"translateX(" + formatFloat(t.TranslateX) + models.SizeUnit + ")",
		"translateY(" + formatFloat(t.TranslateY) + models.SizeUnit + ")",
		"rotate(" + formatFloat(t.Rotate) + "deg)",
		"scale(" + formatFloat(t.Scale) + ")",
		"skewX(" + formatFloat(t.SkewX) + "deg)",
		"skewY(" + formatFloat(t.SkewY) + "deg)",
	}
	return strings.Join(parts, " ")
}

// ============================================================
// Border, Shadow, Background, Animation
// ============================================================

// BorderValue - сокращенная запись border или "none", если стиль none
// или ширина не положительная.
func BorderValue(b models.Border) string {
	if !b.Visible() {
		return "none"
	}
	color := b.Color
	if color == "" {
		color = "currentColor"
	}
	return fmt.Sprintf("%s %s %s", px(b.Width), b.Style, color)
}

// ShadowValue выводит тень, если x, y или blur не нулевые.
// spread < 0 опускает spread (синтаксис text-shadow).
func ShadowValue(s models.Shadow, spread float64) string {
	if !s.Active() {
		return "none"
	}
	color := s.Color
	if color == "" {
		color = "rgba(0, 0, 0, 0.5)"
	}
	if spread < 0 {
		return fmt.Sprintf("%s %s %s %s", px(s.X), px(s.Y), px(s.Blur), color)
	}
	return fmt.Sprintf("%s %s %s %s %s", px(s.X), px(s.Y), px(s.Blur), px(spread), color)
}

// AnimationValue - сокращенная запись animation или "none".
func AnimationValue(a models.Animation) string {
	if a.Name == "" || a.Name == "none" {
		return "none"
	}
	iteration := a.Iteration
	if iteration == "" {
		iteration = "infinite"
	}
	return fmt.Sprintf("%s %ss ease-in-out %ss %s", a.Name, formatFloat(a.Speed), formatFloat(a.Delay), iteration)
}

func backgroundDecls(d *Descriptor, bg models.Background) {
	color := bg.Color
	if color == "" {
		color = "transparent"
	}
	d.set("background-color", color)
	if bg.Image == "" {
		d.set("background-image", "none")
		return
	}
	d.set("background-image", fmt.Sprintf("url(%q)", bg.Image))
	d.set("background-size", orDefault(bg.Size, "cover"))
	d.set("background-position", orDefault(bg.Position, "center"))
	d.set("background-repeat", orDefault(bg.Repeat, "no-repeat"))
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
