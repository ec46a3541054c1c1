package tree

import (
	"encoding/json"
	"errors"
	"reflect"
	"testing"

	"layout-studio/internal/layout/components"
	"layout-studio/internal/layout/models"
	"layout-studio/internal/layout/vocab"
)

func mustAdd(t *testing.T, e *Engine, typ models.ElementType, parent string) string {
	t.Helper()
	id, err := e.AddElement(typ, parent)
	if err != nil {
		t.Fatalf("AddElement(%s, %q): %v", typ, parent, err)
	}
	return id
}

func mustValidate(t *testing.T, e *Engine) {
	t.Helper()
	if err := e.Validate(); err != nil {
		t.Fatalf("tree inconsistent: %v", err)
	}
}

func TestAddElementLinksAndSelects(t *testing.T) {
	e := New()
	c := mustAdd(t, e, models.TypeContainer, "")
	r := mustAdd(t, e, models.TypeRow, c)
	col := mustAdd(t, e, models.TypeCol, r)

	if c != "container-1" || r != "row-2" || col != "col-3" {
		t.Errorf("ids = %s %s %s", c, r, col)
	}
	if e.Selected() != col {
		t.Errorf("selected = %q, want %q", e.Selected(), col)
	}
	if !reflect.DeepEqual(e.Roots(), []string{c}) {
		t.Errorf("roots = %v", e.Roots())
	}
	row, _ := e.Element(r)
	if !reflect.DeepEqual(row.Children, []string{col}) {
		t.Errorf("row children = %v", row.Children)
	}
	mustValidate(t, e)
}

func TestAddRejectsUnknownParent(t *testing.T) {
	e := New()
	_, err := e.AddElement(models.TypeRow, "container-99")
	if !errors.Is(err, ErrInvalidOperation) {
		t.Fatalf("err = %v, want ErrInvalidOperation", err)
	}
	if e.Len() != 0 || e.Counter() != 0 {
		t.Error("rejected add changed state")
	}
}

func TestAddControlAndComponents(t *testing.T) {
	e := New()
	c := mustAdd(t, e, models.TypeContainer, "")

	tpl, _ := components.Control(models.ControlButton)
	btn, err := e.AddControl(tpl, c)
	if err != nil {
		t.Fatal(err)
	}
	el, _ := e.Element(btn)
	if el.Props.ControlType != models.ControlButton || el.Props.Text != "Button" {
		t.Errorf("control props = %+v", el.Props)
	}

	hero, err := e.AddPredefinedComponent("hero", c)
	if err != nil {
		t.Fatal(err)
	}
	if e.Selected() != hero {
		t.Errorf("selected = %q, want hero root %q", e.Selected(), hero)
	}
	if got := len(e.Descendants(hero)); got != 5 {
		t.Errorf("hero has %d descendants, want 5", got)
	}

	grid, err := e.AddPredefinedComponent(components.MultiObjectGrid, c)
	if err != nil {
		t.Fatal(err)
	}
	g, _ := e.Element(grid)
	if g.Type != models.TypeTemplate || g.Props.TemplateKey != components.MultiObjectGrid {
		t.Errorf("grid = %+v", g)
	}

	if _, err := e.AddPredefinedComponent("nope", c); !errors.Is(err, ErrInvalidOperation) {
		t.Errorf("unknown component err = %v", err)
	}

	container, _ := e.Element(c)
	if len(container.Children) != 3 {
		t.Errorf("container children = %v", container.Children)
	}
	mustValidate(t, e)
}

func TestMoveRejectsCycles(t *testing.T) {
	e := New()
	a := mustAdd(t, e, models.TypeContainer, "")
	b := mustAdd(t, e, models.TypeRow, a)
	c := mustAdd(t, e, models.TypeCol, b)

	tests := []struct {
		id, parent string
	}{
		{a, a},
		{a, b},
		{a, c},
		{b, c},
	}
	for _, tt := range tests {
		if !e.WouldCycle(tt.id, tt.parent) {
			t.Errorf("WouldCycle(%s, %s) = false", tt.id, tt.parent)
		}
		if err := e.MoveElement(tt.id, tt.parent); !errors.Is(err, ErrInvalidOperation) {
			t.Errorf("MoveElement(%s, %s) err = %v", tt.id, tt.parent, err)
		}
	}
	mustValidate(t, e)

	if err := e.MoveElement(c, ""); err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(e.Roots(), []string{a, c}) {
		t.Errorf("roots = %v", e.Roots())
	}
	row, _ := e.Element(b)
	if len(row.Children) != 0 {
		t.Errorf("old parent still lists child: %v", row.Children)
	}
	mustValidate(t, e)
}

func TestMovePreservesSiblingOrder(t *testing.T) {
	e := New()
	r := mustAdd(t, e, models.TypeRow, "")
	c1 := mustAdd(t, e, models.TypeCol, r)
	c2 := mustAdd(t, e, models.TypeCol, r)
	c3 := mustAdd(t, e, models.TypeCol, r)
	other := mustAdd(t, e, models.TypeRow, "")

	if err := e.MoveElement(c2, other); err != nil {
		t.Fatal(err)
	}
	row, _ := e.Element(r)
	if !reflect.DeepEqual(row.Children, []string{c1, c3}) {
		t.Errorf("children = %v", row.Children)
	}
	dst, _ := e.Element(other)
	if !reflect.DeepEqual(dst.Children, []string{c2}) {
		t.Errorf("dst children = %v", dst.Children)
	}
	mustValidate(t, e)
}

func TestDeleteDeepSubtree(t *testing.T) {
	e := New()
	ids := []string{mustAdd(t, e, models.TypeContainer, "")}
	for i := 0; i < 4; i++ {
		typ := models.TypeRow
		if i%2 == 1 {
			typ = models.TypeCol
		}
		ids = append(ids, mustAdd(t, e, typ, ids[len(ids)-1]))
	}
	keep := mustAdd(t, e, models.TypeContainer, "")
	e.Select(ids[4])

	removed := e.DeleteElement(ids[0])
	if len(removed) != 5 {
		t.Fatalf("removed %v, want 5 ids", removed)
	}
	if removed[0] != ids[4] || removed[4] != ids[0] {
		t.Errorf("removal order %v should be children first", removed)
	}
	for _, id := range ids {
		if _, ok := e.Element(id); ok {
			t.Errorf("%s still present", id)
		}
	}
	if e.Selected() != "" {
		t.Errorf("selection %q should be cleared", e.Selected())
	}
	if !reflect.DeepEqual(e.Roots(), []string{keep}) {
		t.Errorf("roots = %v", e.Roots())
	}
	mustValidate(t, e)
}

func TestUnknownIDsAreNoOps(t *testing.T) {
	e := New()
	c := mustAdd(t, e, models.TypeContainer, "")
	before := e.Snapshot()

	if err := e.UpdateProp("ghost", "isFluid", true); err != nil {
		t.Error(err)
	}
	if err := e.MoveElement("ghost", c); err != nil {
		t.Error(err)
	}
	if removed := e.DeleteElement("ghost"); removed != nil {
		t.Errorf("removed = %v", removed)
	}
	e.Select("ghost")

	if !reflect.DeepEqual(before, e.Snapshot()) {
		t.Error("operations on unknown ids changed state")
	}
}

func TestFullscreenRules(t *testing.T) {
	e := New()
	c := mustAdd(t, e, models.TypeContainer, "")
	r := mustAdd(t, e, models.TypeRow, c)

	if err := e.UpdateProp(r, "isFullscreen", true); !errors.Is(err, ErrInvalidOperation) {
		t.Errorf("row fullscreen err = %v", err)
	}
	if err := e.UpdateProp(c, "isFullscreen", true); err != nil {
		t.Fatalf("container fullscreen: %v", err)
	}
	if _, err := e.AddElement(models.TypeContainer, ""); !errors.Is(err, ErrInvalidOperation) {
		t.Errorf("second root next to fullscreen err = %v", err)
	}
	if err := e.MoveElement(r, ""); !errors.Is(err, ErrInvalidOperation) {
		t.Errorf("move to root next to fullscreen err = %v", err)
	}
	mustValidate(t, e)

	if err := e.UpdateProp(c, "isFullscreen", false); err != nil {
		t.Fatal(err)
	}
	other := mustAdd(t, e, models.TypeContainer, "")
	if err := e.UpdateProp(other, "isFullscreen", true); !errors.Is(err, ErrInvalidOperation) {
		t.Errorf("fullscreen with root siblings err = %v", err)
	}
	if err := e.MoveElement(other, c); err != nil {
		t.Fatal(err)
	}
	if err := e.UpdateProp(other, "isFullscreen", true); !errors.Is(err, ErrInvalidOperation) {
		t.Errorf("nested fullscreen err = %v", err)
	}
	mustValidate(t, e)
}

func TestUpdatesMergeIdempotently(t *testing.T) {
	e := New()
	r := mustAdd(t, e, models.TypeRow, "")

	apply := func() {
		_ = e.UpdateProp(r, "justifyContent", "center")
		_ = e.UpdateSpacingProp(r, vocab.Padding, vocab.Left, "6")
		_ = e.UpdateGutterProp(r, "x", "8")
	}
	apply()
	once := e.Snapshot()
	apply()
	if !reflect.DeepEqual(once, e.Snapshot()) {
		t.Error("second application changed state")
	}

	row, _ := e.Element(r)
	if row.Props.Padding.Left != "6" || row.Props.Padding.Top != "0" {
		t.Errorf("padding = %+v", row.Props.Padding)
	}
	if row.Props.Gutters.X != "8" || row.Props.Gutters.Y != "4" {
		t.Errorf("gutters = %+v", row.Props.Gutters)
	}
}

func TestRename(t *testing.T) {
	e := New()
	c := mustAdd(t, e, models.TypeContainer, "")
	if err := e.Rename(c, "Main"); !errors.Is(err, ErrInvalidOperation) {
		t.Errorf("renaming a plain container err = %v", err)
	}
	card, err := e.AddPredefinedComponent("card", c)
	if err != nil {
		t.Fatal(err)
	}
	if err := e.Rename(card, "Pricing"); err != nil {
		t.Fatal(err)
	}
	el, _ := e.Element(card)
	if el.Name != "Pricing" {
		t.Errorf("name = %q", el.Name)
	}
}

func TestSnapshotRestoreRoundTrip(t *testing.T) {
	e := New()
	c := mustAdd(t, e, models.TypeContainer, "")
	if _, err := e.AddPredefinedComponent("two-column", c); err != nil {
		t.Fatal(err)
	}

	data, err := json.Marshal(e.Snapshot())
	if err != nil {
		t.Fatal(err)
	}
	var state State
	if err := json.Unmarshal(data, &state); err != nil {
		t.Fatal(err)
	}

	restored := New()
	if err := restored.Restore(state); err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(e.Snapshot(), restored.Snapshot()) {
		t.Error("restored tree differs")
	}

	next := mustAdd(t, restored, models.TypeRow, c)
	if _, dup := e.Element(next); dup {
		t.Errorf("new id %s collides with a restored id", next)
	}
}

func TestRestoreRejectsInconsistentState(t *testing.T) {
	e := New()
	c := mustAdd(t, e, models.TypeContainer, "")
	r := mustAdd(t, e, models.TypeRow, c)
	good := e.Snapshot()

	broken := e.Snapshot()
	broken.Nodes[c].Children = nil

	cyclic := e.Snapshot()
	cyclic.Nodes[c].ParentID = models.ParentRef(r)
	cyclic.Nodes[r].Children = []string{c}
	cyclic.Roots = nil

	for name, s := range map[string]State{"orphan": broken, "cycle": cyclic} {
		if err := e.Restore(s); !errors.Is(err, ErrInconsistent) {
			t.Errorf("%s: err = %v, want ErrInconsistent", name, err)
		}
	}
	if !reflect.DeepEqual(good, e.Snapshot()) {
		t.Error("failed restore modified the engine")
	}
}

func TestPanel(t *testing.T) {
	e := New()
	c := mustAdd(t, e, models.TypeContainer, "")
	if got := e.Panel(c); got != "container" {
		t.Errorf("Panel = %q", got)
	}
	if got := e.Panel("ghost"); got != PanelNone {
		t.Errorf("Panel(ghost) = %q", got)
	}
}
