package anchored

import (
	"reflect"
	"testing"

	"layout-studio/internal/layout/anchors"
	"layout-studio/internal/layout/models"
	"layout-studio/internal/layout/vocab"
)

func newStore() *Store {
	return New([]anchors.Anchor{
		{ID: "deco-top-left", AnchorX: vocab.AnchorLeft, AnchorY: vocab.AnchorTop},
		{ID: Layer2ID},
		{ID: "deco-bottom", AnchorX: vocab.AnchorCenterX, AnchorY: vocab.AnchorBottom},
		{ID: "deco-top-left", AnchorX: vocab.AnchorRight, AnchorY: vocab.AnchorBottom},
	})
}

func TestNewSkipsLayer2AndDuplicates(t *testing.T) {
	s := newStore()
	if !reflect.DeepEqual(s.IDs(), []string{"deco-top-left", "deco-bottom"}) {
		t.Fatalf("ids = %v", s.IDs())
	}
	d, _ := s.Decoration("deco-top-left")
	if d.AnchorX != vocab.AnchorLeft {
		t.Errorf("duplicate anchor overrode the first one: %+v", d)
	}
}

func TestConfigureAndReset(t *testing.T) {
	s := newStore()
	if !s.Configure("deco-bottom", "opacity", 0.4) {
		t.Fatal("opacity rejected")
	}
	if s.Configure("deco-bottom", "bogus", 1.0) {
		t.Error("unknown key accepted")
	}
	if s.Configure("ghost", "opacity", 0.4) {
		t.Error("unknown decoration accepted")
	}
	s.SetContent("deco-bottom", "<b>hi</b>")

	d, _ := s.Decoration("deco-bottom")
	if d.Opacity != 0.4 {
		t.Errorf("opacity = %v", d.Opacity)
	}
	d.Opacity = 0
	if again, _ := s.Decoration("deco-bottom"); again.Opacity != 0.4 {
		t.Error("Decoration should return a copy")
	}

	if !s.Reset("deco-bottom") {
		t.Fatal("reset failed")
	}
	d, _ = s.Decoration("deco-bottom")
	if d.Opacity != 1 {
		t.Errorf("opacity after reset = %v", d.Opacity)
	}
	if s.Content("deco-bottom") != "<b>hi</b>" {
		t.Error("reset should keep content")
	}
	if s.Reset("ghost") {
		t.Error("reset of unknown id reported success")
	}
}

func TestSelectAndPanel(t *testing.T) {
	s := newStore()
	tests := []struct {
		id     string
		active string
		panel  string
	}{
		{"deco-bottom", "deco-bottom", PanelDecoration},
		{"ghost", "deco-bottom", PanelNone},
		{Layer2ID, Layer2ID, PanelLayer2},
		{"", "", PanelNone},
	}
	for _, tt := range tests {
		s.Select(tt.id)
		if s.Active() != tt.active {
			t.Errorf("Select(%q): active = %q, want %q", tt.id, s.Active(), tt.active)
		}
		if got := s.Panel(tt.id); got != tt.panel {
			t.Errorf("Panel(%q) = %q, want %q", tt.id, got, tt.panel)
		}
	}
}

func TestStylesFollowLayer2(t *testing.T) {
	s := newStore()
	s.ConfigureLayer2("borderStyle", "solid")
	s.ConfigureLayer2("borderWidth", 20.0)

	styles := s.Styles()
	if len(styles.Elements) != 2 {
		t.Fatalf("elements = %d", len(styles.Elements))
	}
	left, _ := styles.Elements["deco-top-left"].Get("left")
	if left != "calc(10% + 10px - 10vmin)" {
		t.Errorf("left = %q", left)
	}
}

func TestSnapshotRestore(t *testing.T) {
	s := newStore()
	s.Configure("deco-top-left", "width", 40.0)
	s.Configure("deco-bottom", "rotate", 15.0)
	s.ConfigureLayer2("width", 60.0)
	s.SetContent("deco-top-left", "<i>a</i>")
	s.SetLayer2HTML("<p>center</p>")

	snap := s.Snapshot()
	snap.ElementsConfig["deco-top-left"].Width = 1
	if d, _ := s.Decoration("deco-top-left"); d.Width != 40 {
		t.Fatal("snapshot shares decoration pointers with the store")
	}
	snap = s.Snapshot()

	other := newStore()
	other.Configure("deco-bottom", "opacity", 0.1)
	other.SetContent("deco-bottom", "stale")

	delete(snap.ElementsConfig, "deco-bottom")
	snap.ElementsConfig["deco-unknown"] = models.NewDecoration("deco-unknown", vocab.AnchorLeft, vocab.AnchorTop)

	var calls [][2]string
	other.Restore(snap, AttacherFunc(func(id, html string) {
		calls = append(calls, [2]string{id, html})
	}))

	wantCalls := [][2]string{
		{Layer2ID, "<p>center</p>"},
		{"deco-top-left", "<i>a</i>"},
		{"deco-bottom", ""},
	}
	if !reflect.DeepEqual(calls, wantCalls) {
		t.Errorf("attach calls = %v", calls)
	}

	if d, _ := other.Decoration("deco-top-left"); d.Width != 40 {
		t.Errorf("width = %v", d.Width)
	}
	if d, _ := other.Decoration("deco-bottom"); d.Opacity != 1 || d.Transform.Rotate != 0 {
		t.Errorf("missing decoration should be reset, got %+v", d)
	}
	if _, ok := other.Decoration("deco-unknown"); ok {
		t.Error("unknown decoration was added")
	}
	if other.Layer2().Width != 60 || other.Content(Layer2ID) != "<p>center</p>" {
		t.Error("layer2 not restored")
	}
	if other.Content("deco-bottom") != "" {
		t.Error("content should be replaced, not merged")
	}
}
