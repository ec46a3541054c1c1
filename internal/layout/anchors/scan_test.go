package anchors

import (
	"reflect"
	"strings"
	"testing"

	"layout-studio/internal/layout/vocab"
)

func TestDefaultStage(t *testing.T) {
	list := Default()
	if len(list) != 8 {
		t.Fatalf("got %d anchors, want 8", len(list))
	}
	first, last := list[0], list[len(list)-1]
	if first != (Anchor{ID: "deco-top-left", AnchorX: vocab.AnchorLeft, AnchorY: vocab.AnchorTop}) {
		t.Errorf("first = %+v", first)
	}
	if last != (Anchor{ID: "deco-bottom-right", AnchorX: vocab.AnchorRight, AnchorY: vocab.AnchorBottom}) {
		t.Errorf("last = %+v", last)
	}
	for _, a := range list {
		if a.ID == "layer2" || a.ID == "stage" {
			t.Errorf("%s should not be an anchor", a.ID)
		}
	}
}

func TestScan(t *testing.T) {
	markup := `<div id="stage">
	  <span id="badge" data-anchor="bottom right"></span>
	  <div id="deco-left"></div>
	  <div id="deco-glow"></div>
	  <div id="plain"></div>
	  <div data-anchor="left"></div>
	  <div id="badge" data-anchor="top"></div>
	</div>`

	got, err := Scan(strings.NewReader(markup))
	if err != nil {
		t.Fatal(err)
	}
	want := []Anchor{
		{ID: "badge", AnchorX: vocab.AnchorRight, AnchorY: vocab.AnchorBottom},
		{ID: "deco-left", AnchorX: vocab.AnchorLeft, AnchorY: vocab.AnchorCenterY},
		{ID: "deco-glow", AnchorX: vocab.AnchorCenterX, AnchorY: vocab.AnchorCenterY},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Scan = %+v\nwant   %+v", got, want)
	}
}
