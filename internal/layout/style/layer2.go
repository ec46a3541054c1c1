package style

import (
	"layout-studio/internal/layout/models"
	"layout-studio/internal/layout/vocab"
)

// CompileLayer2 строит стиль центральной панели. Она центрирована во
// вьюпорте; собственная цепочка трансформаций идет после translate.
func CompileLayer2(cfg models.Layer2Config) Descriptor {
	var d Descriptor
	if cfg.Shadow != "none" {
		d.addClass(vocab.ShadowToken(cfg.Shadow))
	}
	if cfg.Blur != "none" {
		d.addClass(vocab.BlurToken(cfg.Blur))
	}

	transform := "translate(-50%, -50%)"
	if chain := TransformChain(cfg.Transform); chain != "none" {
		transform += " " + chain
	}

	d.set("position", "absolute")
	d.set("left", "50%")
	d.set("top", "50%")
	d.set("box-sizing", "border-box")
	d.set("width", formatFloat(cfg.Width)+"%")
	d.set("height", formatFloat(cfg.Height)+"%")
	d.set("overflow", "hidden")
	backgroundDecls(&d, cfg.Background)
	d.set("opacity", formatFloat(cfg.Opacity))
	d.set("filter", FilterChain(cfg.Filters))
	d.set("border", BorderValue(cfg.Border))
	d.set("border-radius", px(cfg.Border.Radius))
	d.set("transform", transform)
	return d
}
