package vocab

import (
	"strconv"
	"strings"
)

// ============================================================
// Spacing Scale
// ============================================================

// BaseUnitPx - размер одного шага шкалы в пикселях.
const BaseUnitPx = 4

var spacingScale = []string{
	"0", "0.5", "1", "1.5", "2", "2.5", "3", "3.5", "4", "5", "6", "7", "8", "9", "10", "11", "12",
	"14", "16", "20", "24", "28", "32", "36", "40", "44", "48", "52", "56", "60", "64", "72", "80", "96",
}

var spacingSet = func() map[string]float64 {
	m := make(map[string]float64, len(spacingScale))
	for _, v := range spacingScale {
		f, _ := strconv.ParseFloat(v, 64)
		m[v] = f
	}
	return m
}()

// SpacingScale возвращает допустимые значения по возрастанию.
func SpacingScale() []string {
	out := make([]string, len(spacingScale))
	copy(out, spacingScale)
	return out
}

// IsSpacing - v есть на шкале.
func IsSpacing(v string) bool {
	_, ok := spacingSet[v]
	return ok
}

// SpacingMagnitude возвращает числовую величину значения шкалы.
// Для значений вне шкалы 0, false.
func SpacingMagnitude(v string) (float64, bool) {
	f, ok := spacingSet[v]
	return f, ok
}

// SpacingPx переводит значение шкалы в пиксели (magnitude * BaseUnitPx).
// Вне шкалы - 0.
func SpacingPx(v string) float64 {
	f, _ := SpacingMagnitude(v)
	return f * BaseUnitPx
}

// ============================================================
// Sides & Spacing Properties
// ============================================================

type Side string

const (
	Top    Side = "top"
	Right  Side = "right"
	Bottom Side = "bottom"
	Left   Side = "left"
)

// Sides - фиксированный порядок вывода токенов по сторонам.
var Sides = []Side{Top, Right, Bottom, Left}

// ParseSide возвращает сторону по имени.
func ParseSide(s string) (Side, bool) {
	switch Side(s) {
	case Top, Right, Bottom, Left:
		return Side(s), true
	}
	return "", false
}

type SpacingProp string

const (
	Padding SpacingProp = "padding"
	Margin  SpacingProp = "margin"
)

func ParseSpacingProp(s string) (SpacingProp, bool) {
	switch SpacingProp(s) {
	case Padding, Margin:
		return SpacingProp(s), true
	}
	return "", false
}

// SpacingToken строит токен стороны, например (padding, top, "4") -> "pt-4".
func SpacingToken(prop SpacingProp, side Side, value string) string {
	prefix := "p"
	if prop == Margin {
		prefix = "m"
	}
	return prefix + string(side[0]) + "-" + value
}

// GapToken строит токен зазора для оси "x" или "y".
func GapToken(axis, value string) string {
	return "gap-" + axis + "-" + value
}

// ============================================================
// Alignment
// ============================================================

const (
	DefaultJustify   = "start"
	DefaultAlign     = "stretch"
	DefaultAlignSelf = "auto"
	DefaultOrder     = "none"
)

var justifyTokens = set("start", "end", "center", "between", "around", "evenly")
var alignTokens = set("start", "end", "center", "baseline", "stretch")
var alignSelfTokens = set("auto", "start", "end", "center", "baseline", "stretch")

func IsJustify(v string) bool   { return justifyTokens[v] }
func IsAlign(v string) bool     { return alignTokens[v] }
func IsAlignSelf(v string) bool { return alignSelfTokens[v] }

// IsOrder принимает none, first, last и 1..12.
func IsOrder(v string) bool {
	switch v {
	case "none", "first", "last":
		return true
	}
	n, err := strconv.Atoi(v)
	return err == nil && n >= 1 && n <= 12
}

// ============================================================
// Colors
// ============================================================

var namedColors = set("white", "black", "transparent", "current", "inherit")

var colorFamilies = set(
	"slate", "gray", "red", "orange", "amber", "yellow", "green", "emerald", "teal",
	"cyan", "sky", "blue", "indigo", "violet", "purple", "pink", "rose",
)

var colorShades = set("50", "100", "200", "300", "400", "500", "600", "700", "800", "900")

// IsColorToken - v это цвет палитры, например "blue-500" или "white".
func IsColorToken(v string) bool {
	if namedColors[v] {
		return true
	}
	family, shade, ok := strings.Cut(v, "-")
	return ok && colorFamilies[family] && colorShades[shade]
}

// ColorToken строит токен цвета с префиксом ("bg", "text", "border").
// Имена палитры идут как есть, остальное - произвольное значение.
func ColorToken(prefix, value string) string {
	if IsColorToken(value) {
		return prefix + "-" + value
	}
	return prefix + "-[" + strings.ReplaceAll(value, " ", "_") + "]"
}

// ============================================================
// Borders, Shadows, Blur
// ============================================================

var borderStyles = set("none", "solid", "dashed", "dotted", "double", "groove", "ridge", "inset", "outset")

func IsBorderStyle(v string) bool { return borderStyles[v] }

var shadowTokens = map[string]string{
	"none":  "shadow-none",
	"sm":    "shadow-sm",
	"md":    "shadow-md",
	"lg":    "shadow-lg",
	"xl":    "shadow-xl",
	"2xl":   "shadow-2xl",
	"inner": "shadow-inner",
}

// ShadowToken - токен класса для тени. Для неизвестных имен "".
func ShadowToken(v string) string { return shadowTokens[v] }

var blurTokens = map[string]string{
	"none": "backdrop-blur-none",
	"sm":   "backdrop-blur-sm",
	"md":   "backdrop-blur-md",
	"lg":   "backdrop-blur-lg",
	"xl":   "backdrop-blur-xl",
	"2xl":  "backdrop-blur-2xl",
	"3xl":  "backdrop-blur-3xl",
}

// BlurToken - токен backdrop blur. Для неизвестных имен "".
func BlurToken(v string) string { return blurTokens[v] }

// tokenCSS - CSS-декларация за каждым токеном тени и blur, для
// документов без utility-стилей.
var tokenCSS = map[string]string{
	"shadow-none":        "box-shadow: 0 0 #0000",
	"shadow-sm":          "box-shadow: 0 1px 2px 0 rgb(0 0 0 / 0.05)",
	"shadow-md":          "box-shadow: 0 4px 6px -1px rgb(0 0 0 / 0.1), 0 2px 4px -2px rgb(0 0 0 / 0.1)",
	"shadow-lg":          "box-shadow: 0 10px 15px -3px rgb(0 0 0 / 0.1), 0 4px 6px -4px rgb(0 0 0 / 0.1)",
	"shadow-xl":          "box-shadow: 0 20px 25px -5px rgb(0 0 0 / 0.1), 0 8px 10px -6px rgb(0 0 0 / 0.1)",
	"shadow-2xl":         "box-shadow: 0 25px 50px -12px rgb(0 0 0 / 0.25)",
	"shadow-inner":       "box-shadow: inset 0 2px 4px 0 rgb(0 0 0 / 0.05)",
	"backdrop-blur-none": "backdrop-filter: none",
	"backdrop-blur-sm":   "backdrop-filter: blur(4px)",
	"backdrop-blur-md":   "backdrop-filter: blur(12px)",
	"backdrop-blur-lg":   "backdrop-filter: blur(16px)",
	"backdrop-blur-xl":   "backdrop-filter: blur(24px)",
	"backdrop-blur-2xl":  "backdrop-filter: blur(40px)",
	"backdrop-blur-3xl":  "backdrop-filter: blur(64px)",
}

// TokenCSS возвращает декларацию токена тени или blur.
func TokenCSS(token string) (string, bool) {
	css, ok := tokenCSS[token]
	return css, ok
}

// ============================================================
// Free-form Display & Anchors
// ============================================================

var displayModes = set("block", "flex", "grid", "inline-block", "none")
var overflowModes = set("visible", "hidden", "scroll", "auto")

func IsDisplay(v string) bool  { return displayModes[v] }
func IsOverflow(v string) bool { return overflowModes[v] }

type AnchorX string

const (
	AnchorLeft    AnchorX = "left"
	AnchorCenterX AnchorX = "center"
	AnchorRight   AnchorX = "right"
)

type AnchorY string

const (
	AnchorTop     AnchorY = "top"
	AnchorCenterY AnchorY = "center"
	AnchorBottom  AnchorY = "bottom"
)

func ParseAnchorX(s string) (AnchorX, bool) {
	switch AnchorX(s) {
	case AnchorLeft, AnchorCenterX, AnchorRight:
		return AnchorX(s), true
	}
	return "", false
}

func ParseAnchorY(s string) (AnchorY, bool) {
	switch AnchorY(s) {
	case AnchorTop, AnchorCenterY, AnchorBottom:
		return AnchorY(s), true
	}
	return "", false
}

func set(values ...string) map[string]bool {
	m := make(map[string]bool, len(values))
	for _, v := range values {
		m[v] = true
	}
	return m
}
