package style

import (
	"layout-studio/internal/layout/models"
)

// CompileObjects размещает все объекты таблицы шаблона. Каждый объект
// привязан к якорю внутри блока шаблона, уменьшенного на его inset.
func CompileObjects(objects []models.ObjectSpec) []ObjectStyle {
	out := make([]ObjectStyle, 0, len(objects))
	for _, o := range objects {
		w, h := o.Dimensions()
		ax, ay := o.Anchors()
		extent := 100 - 2*o.Inset
		if extent < 0 {
			extent = 0
		}
		ref := Reference{WidthPercent: extent, HeightPercent: extent}

		var d Descriptor
		d.set("position", "absolute")
		d.set("width", unit(w))
		d.set("height", unit(h))
		d.set("left", PositionX(ax, w, 0, ref).CSS())
		d.set("top", PositionY(ay, h, 0, ref).CSS())
		d.set("background-color", o.Color)
		out = append(out, ObjectStyle{ID: o.ID, Descriptor: d})
	}
	return out
}
