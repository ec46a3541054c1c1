package models

import (
	"strconv"

	"layout-studio/internal/layout/vocab"
)

// SizeUnit - единица размеров и отступов декораций (от вьюпорта).
const SizeUnit = "vmin"

// ============================================================
// Shared style blocks
// ============================================================

// Filters - восемь параметров CSS filter.
type Filters struct {
	Blur       float64 `json:"blur"`
	Brightness float64 `json:"brightness"`
	Contrast   float64 `json:"contrast"`
	Grayscale  float64 `json:"grayscale"`
	Saturate   float64 `json:"saturate"`
	Sepia      float64 `json:"sepia"`
	HueRotate  float64 `json:"hueRotate"`
	Invert     float64 `json:"invert"`
}

// NeutralFilters - нейтральная цепочка фильтров.
func NeutralFilters() Filters {
	return Filters{Brightness: 1, Contrast: 1, Saturate: 1}
}

func (f *Filters) set(key string, value any) (handled, applied bool) {
	var dst *float64
	var min, max float64
	switch key {
	case "blur":
		dst, min, max = &f.Blur, 0, 100
	case "brightness":
		dst, min, max = &f.Brightness, 0, 5
	case "contrast":
		dst, min, max = &f.Contrast, 0, 5
	case "grayscale":
		dst, min, max = &f.Grayscale, 0, 1
	case "saturate":
		dst, min, max = &f.Saturate, 0, 5
	case "sepia":
		dst, min, max = &f.Sepia, 0, 1
	case "hueRotate":
		dst, min, max = &f.HueRotate, -360, 360
	case "invert":
		dst, min, max = &f.Invert, 0, 1
	default:
		return false, false
	}
	return true, setFloat(dst, value, min, max)
}

// Transform - шесть параметров трансформации.
type Transform struct {
	TranslateX float64 `json:"translateX"`
	TranslateY float64 `json:"translateY"`
	Rotate     float64 `json:"rotate"`
	Scale      float64 `json:"scale"`
	SkewX      float64 `json:"skewX"`
	SkewY      float64 `json:"skewY"`
}

// NeutralTransform - тождественная трансформация.
func NeutralTransform() Transform {
	return Transform{Scale: 1}
}

func (t *Transform) set(key string, value any) (handled, applied bool) {
	var dst *float64
	var min, max float64
	switch key {
	case "translateX":
		dst, min, max = &t.TranslateX, -500, 500
	case "translateY":
		dst, min, max = &t.TranslateY, -500, 500
	case "rotate":
		dst, min, max = &t.Rotate, -360, 360
	case "scale":
		dst, min, max = &t.Scale, 0, 10
	case "skewX":
		dst, min, max = &t.SkewX, -89, 89
	case "skewY":
		dst, min, max = &t.SkewY, -89, 89
	default:
		return false, false
	}
	return true, setFloat(dst, value, min, max)
}

// Border описывает рамку; Width и Radius в пикселях.
type Border struct {
	Width  float64 `json:"width"`
	Style  string  `json:"style"`
	Color  string  `json:"color"`
	Radius float64 `json:"radius"`
}

// Visible сообщает, рисуется ли рамка вообще.
func (b Border) Visible() bool {
	return b.Style != "none" && b.Style != "" && b.Width > 0
}

func (b *Border) set(key string, value any) (handled, applied bool) {
	switch key {
	case "borderWidth":
		return true, setFloat(&b.Width, value, 0, 200)
	case "borderStyle":
		s := AsString(value, "")
		if !vocab.IsBorderStyle(s) {
			return true, false
		}
		b.Style = s
		return true, true
	case "borderColor":
		return true, setString(&b.Color, value)
	case "borderRadius":
		return true, setFloat(&b.Radius, value, 0, 1000)
	}
	return false, false
}

// Background - цвет или картинка с размером, позицией и повтором.
type Background struct {
	Color    string `json:"color"`
	Image    string `json:"image"`
	Size     string `json:"size"`
	Position string `json:"position"`
	Repeat   string `json:"repeat"`
}

func (b *Background) set(key string, value any) (handled, applied bool) {
	switch key {
	case "backgroundColor":
		return true, setString(&b.Color, value)
	case "backgroundImage":
		return true, setString(&b.Image, value)
	case "backgroundSize":
		return true, setString(&b.Size, value)
	case "backgroundPosition":
		return true, setString(&b.Position, value)
	case "backgroundRepeat":
		return true, setString(&b.Repeat, value)
	}
	return false, false
}

// Shadow - тень блока или текста, смещения в пикселях.
type Shadow struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Blur  float64 `json:"blur"`
	Color string  `json:"color"`
}

// Active - true, если x, y или blur не нулевые.
func (s Shadow) Active() bool {
	return s.X != 0 || s.Y != 0 || s.Blur != 0
}

func (s *Shadow) set(suffix string, value any) bool {
	switch suffix {
	case "X":
		return setFloat(&s.X, value, -500, 500)
	case "Y":
		return setFloat(&s.Y, value, -500, 500)
	case "Blur":
		return setFloat(&s.Blur, value, 0, 500)
	case "Color":
		return setString(&s.Color, value)
	}
	return false
}

// Animation ссылается на именованную анимацию; Delay и Speed в секундах.
type Animation struct {
	Name      string  `json:"name"`
	Iteration string  `json:"iteration"`
	Delay     float64 `json:"delay"`
	Speed     float64 `json:"speed"`
}

// Box - длины по сторонам в SizeUnit.
type Box struct {
	Top    float64 `json:"top"`
	Right  float64 `json:"right"`
	Bottom float64 `json:"bottom"`
	Left   float64 `json:"left"`
}

// ============================================================
// Decoration
// ============================================================

// Decoration - декоративная панель свободного редактора, привязанная к якорю.
type Decoration struct {
	ID           string        `json:"id"`
	Visible      bool          `json:"visible"`
	Display      string        `json:"display"`
	ZIndex       int           `json:"zIndex"`
	OverflowX    string        `json:"overflowX"`
	OverflowY    string        `json:"overflowY"`
	Width        float64       `json:"width"`
	Height       float64       `json:"height"`
	Margin       Box           `json:"margin"`
	AnchorX      vocab.AnchorX `json:"anchorX"`
	AnchorY      vocab.AnchorY `json:"anchorY"`
	Background   Background    `json:"background"`
	Shadow       string        `json:"shadow"`
	BoxShadow    Shadow        `json:"boxShadow"`
	TextShadow   Shadow        `json:"textShadow"`
	Opacity      float64       `json:"opacity"`
	Filters      Filters       `json:"filters"`
	Border       Border        `json:"border"`
	Transform    Transform     `json:"transform"`
	Animation    Animation     `json:"animation"`
	HoverTrigger bool          `json:"hoverTrigger"`
}

func (d *Decoration) NodeID() string         { return d.ID }
func (d *Decoration) LayoutMode() LayoutMode { return LayoutAnchored }

// NewDecoration создает декорацию с нейтральными значениями у заданного якоря.
func NewDecoration(id string, ax vocab.AnchorX, ay vocab.AnchorY) *Decoration {
	return &Decoration{
		ID:         id,
		Visible:    true,
		Display:    "block",
		ZIndex:     10,
		OverflowX:  "visible",
		OverflowY:  "visible",
		Width:      20,
		Height:     20,
		AnchorX:    ax,
		AnchorY:    ay,
		Background: Background{Color: "transparent", Size: "cover", Position: "center", Repeat: "no-repeat"},
		Shadow:     "none",
		Opacity:    1,
		Filters:    NeutralFilters(),
		Border:     Border{Style: "none", Color: "#000000"},
		Transform:  NeutralTransform(),
		Animation:  Animation{Name: "none", Iteration: "infinite", Speed: 3},
	}
}

// Clone возвращает копию d (ссылочных полей нет).
func (d *Decoration) Clone() *Decoration {
	c := *d
	return &c
}

// Set применяет один ключ конфигурации, числа ограничиваются.
// Неизвестные ключи и неверные значения игнорируются, возвращается false.
func (d *Decoration) Set(key string, value any) bool {
	if handled, ok := d.Filters.set(key, value); handled {
		return ok
	}
	if handled, ok := d.Transform.set(key, value); handled {
		return ok
	}
	if handled, ok := d.Border.set(key, value); handled {
		return ok
	}
	if handled, ok := d.Background.set(key, value); handled {
		return ok
	}
	if ok, handled := setShadowKey(key, value, &d.BoxShadow, &d.TextShadow); handled {
		return ok
	}

	switch key {
	case "visible":
		return setBool(&d.Visible, value)
	case "display":
		return setValid(&d.Display, value, vocab.IsDisplay)
	case "zIndex":
		n, ok := AsInt(value)
		if !ok {
			return false
		}
		d.ZIndex = clampInt(n, -1000, 1000)
		return true
	case "overflowX":
		return setValid(&d.OverflowX, value, vocab.IsOverflow)
	case "overflowY":
		return setValid(&d.OverflowY, value, vocab.IsOverflow)
	case "width":
		return setFloat(&d.Width, value, 0, 300)
	case "height":
		return setFloat(&d.Height, value, 0, 300)
	case "marginTop":
		return setFloat(&d.Margin.Top, value, -300, 300)
	case "marginRight":
		return setFloat(&d.Margin.Right, value, -300, 300)
	case "marginBottom":
		return setFloat(&d.Margin.Bottom, value, -300, 300)
	case "marginLeft":
		return setFloat(&d.Margin.Left, value, -300, 300)
	case "anchorX":
		ax, ok := vocab.ParseAnchorX(AsString(value, ""))
		if !ok {
			return false
		}
		d.AnchorX = ax
		return true
	case "anchorY":
		ay, ok := vocab.ParseAnchorY(AsString(value, ""))
		if !ok {
			return false
		}
		d.AnchorY = ay
		return true
	case "shadow":
		return setValid(&d.Shadow, value, func(s string) bool { return vocab.ShadowToken(s) != "" })
	case "opacity":
		return setFloat(&d.Opacity, value, 0, 1)
	case "animationName":
		return setValid(&d.Animation.Name, value, vocab.IsAnimation)
	case "animationIteration":
		return setValid(&d.Animation.Iteration, value, isIteration)
	case "animationDelay":
		return setFloat(&d.Animation.Delay, value, 0, 60)
	case "animationSpeed":
		return setFloat(&d.Animation.Speed, value, 0.1, 60)
	case "hoverTrigger":
		return setBool(&d.HoverTrigger, value)
	}
	return false
}

// ============================================================
// Layer 2 (reference container)
// ============================================================

// Layer2Config - стиль центральной панели, к которой привязаны декорации.
// Width и Height в процентах вьюпорта.
type Layer2Config struct {
	Width      float64    `json:"width"`
	Height     float64    `json:"height"`
	Border     Border     `json:"border"`
	Background Background `json:"background"`
	Opacity    float64    `json:"opacity"`
	Shadow     string     `json:"shadow"`
	Blur       string     `json:"blur"`
	Filters    Filters    `json:"filters"`
	Transform  Transform  `json:"transform"`
}

// DefaultLayer2 возвращает исходную центральную панель.
func DefaultLayer2() Layer2Config {
	return Layer2Config{
		Width:      80,
		Height:     80,
		Border:     Border{Width: 0, Style: "none", Color: "#ffffff", Radius: 12},
		Background: Background{Color: "rgba(15, 23, 42, 0.6)", Size: "cover", Position: "center", Repeat: "no-repeat"},
		Opacity:    1,
		Shadow:     "2xl",
		Blur:       "md",
		Filters:    NeutralFilters(),
		Transform:  NeutralTransform(),
	}
}

// Set применяет один ключ к конфигурации слоя 2.
// "blur" со строкой - токен backdrop blur, с числом - фильтр blur.
func (l *Layer2Config) Set(key string, value any) bool {
	if key == "blur" {
		if s, isString := value.(string); isString && vocab.BlurToken(s) != "" {
			l.Blur = s
			return true
		}
	}
	if handled, ok := l.Filters.set(key, value); handled {
		return ok
	}
	if handled, ok := l.Transform.set(key, value); handled {
		return ok
	}
	if handled, ok := l.Border.set(key, value); handled {
		return ok
	}
	if handled, ok := l.Background.set(key, value); handled {
		return ok
	}

	switch key {
	case "width":
		return setFloat(&l.Width, value, 0, 100)
	case "height":
		return setFloat(&l.Height, value, 0, 100)
	case "opacity":
		return setFloat(&l.Opacity, value, 0, 1)
	case "shadow":
		return setValid(&l.Shadow, value, func(s string) bool { return vocab.ShadowToken(s) != "" })
	}
	return false
}

// ============================================================
// helpers
// ============================================================

func setShadowKey(key string, value any, box, text *Shadow) (applied, handled bool) {
	const boxPrefix, textPrefix = "boxShadow", "textShadow"
	switch {
	case len(key) > len(boxPrefix) && key[:len(boxPrefix)] == boxPrefix:
		return box.set(key[len(boxPrefix):], value), true
	case len(key) > len(textPrefix) && key[:len(textPrefix)] == textPrefix:
		return text.set(key[len(textPrefix):], value), true
	}
	return false, false
}

func setFloat(dst *float64, value any, min, max float64) bool {
	f, ok := AsFloat(value)
	if !ok {
		return false
	}
	*dst = ClampFloat(f, min, max)
	return true
}

func setValid(dst *string, value any, valid func(string) bool) bool {
	s := AsString(value, "")
	if !valid(s) {
		return false
	}
	*dst = s
	return true
}

func isIteration(v string) bool {
	if v == "infinite" {
		return true
	}
	n, err := strconv.Atoi(v)
	return err == nil && n > 0
}
