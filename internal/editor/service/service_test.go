package service

import (
	"context"
	"errors"
	"reflect"
	"sort"
	"strings"
	"sync"
	"testing"

	"layout-studio/internal/common/config"
	"layout-studio/internal/layout/anchored"
	"layout-studio/internal/layout/anchors"
	"layout-studio/internal/layout/models"
	"layout-studio/internal/layout/tree"
)

type memKV struct {
	mu   sync.Mutex
	data map[string]string
}

func newMemKV() *memKV { return &memKV{data: map[string]string{}} }

func (m *memKV) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *memKV) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

func (m *memKV) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

func (m *memKV) Keys(_ context.Context, prefix string) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	keys := []string{}
	for k := range m.data {
		if strings.HasPrefix(k, prefix) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys, nil
}

var limits = config.Panels{
	LeftMin: 180, LeftMax: 480, LeftDefault: 260,
	RightMin: 220, RightMax: 560, RightDefault: 320,
}

func TestPanelsDefaultsAndClamp(t *testing.T) {
	ctx := context.Background()
	kv := newMemKV()
	panels := NewPanels(kv, limits)

	w, err := panels.Widths(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if w != (PanelWidths{Left: 260, Right: 320}) {
		t.Errorf("defaults = %+v", w)
	}

	w, err = panels.Set(ctx, PanelWidths{Left: 50, Right: 1000})
	if err != nil {
		t.Fatal(err)
	}
	if w != (PanelWidths{Left: 180, Right: 560}) {
		t.Errorf("clamped = %+v", w)
	}

	w, _ = panels.Set(ctx, PanelWidths{Left: 300})
	if w != (PanelWidths{Left: 300, Right: 560}) {
		t.Errorf("partial update = %+v", w)
	}

	kv.data[RightPanelKey] = "wide"
	kv.data[LeftPanelKey] = "9999"
	w, _ = panels.Widths(ctx)
	if w != (PanelWidths{Left: 480, Right: 320}) {
		t.Errorf("tampered values = %+v", w)
	}
}

func TestLayoutsSaveRestore(t *testing.T) {
	ctx := context.Background()
	kv := newMemKV()
	layouts := NewLayouts(kv)

	src := tree.New()
	c, _ := src.AddElement(models.TypeContainer, "")
	if _, err := src.AddPredefinedComponent("navbar", c); err != nil {
		t.Fatal(err)
	}
	if err := layouts.Save(ctx, "home", src); err != nil {
		t.Fatal(err)
	}

	dst := tree.New()
	if err := layouts.Restore(ctx, "home", dst); err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(src.Snapshot(), dst.Snapshot()) {
		t.Error("restored layout differs")
	}

	if err := layouts.Restore(ctx, "missing", dst); !errors.Is(err, ErrNoLayout) {
		t.Errorf("missing layout err = %v", err)
	}

	kv.data[layoutKeyPrefix+"broken"] = "{oops"
	if err := layouts.Restore(ctx, "broken", dst); !errors.Is(err, tree.ErrInconsistent) {
		t.Errorf("corrupt layout err = %v", err)
	}
	if dst.Len() != src.Len() {
		t.Error("failed restore modified the tree")
	}

	names, _ := layouts.Names(ctx)
	if !reflect.DeepEqual(names, []string{"broken", "home"}) {
		t.Errorf("names = %v", names)
	}
	if err := layouts.Delete(ctx, "broken"); err != nil {
		t.Fatal(err)
	}
	names, _ = layouts.Names(ctx)
	if !reflect.DeepEqual(names, []string{"home"}) {
		t.Errorf("names after delete = %v", names)
	}
}

func TestSessionManager(t *testing.T) {
	m := NewSessionManager(anchors.Default())
	a := m.Create()
	b := m.Create()

	if got, ok := m.Get(a.ID); !ok || got != a {
		t.Fatal("Get did not return the created session")
	}
	ids := m.List()
	sort.Strings(ids)
	want := []string{a.ID, b.ID}
	sort.Strings(want)
	if !reflect.DeepEqual(ids, want) {
		t.Errorf("List = %v", ids)
	}

	if !m.Delete(a.ID) || m.Delete(a.ID) {
		t.Error("Delete should succeed once")
	}
	if _, ok := m.Get(a.ID); ok {
		t.Error("deleted session still reachable")
	}
}

func TestSessionPanel(t *testing.T) {
	s := NewSessionManager(anchors.Default()).Create()
	err := s.Do(func(tr *tree.Engine, c *anchored.Store) error {
		row, err := tr.AddElement(models.TypeRow, "")
		if err != nil {
			return err
		}
		tests := map[string]string{
			row:               "row",
			"deco-top":        anchored.PanelDecoration,
			anchored.Layer2ID: anchored.PanelLayer2,
			"ghost":           anchored.PanelNone,
		}
		for id, want := range tests {
			if got := Panel(tr, c, id); got != want {
				t.Errorf("Panel(%s) = %q, want %q", id, got, want)
			}
		}
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
}

func TestSessionDoSerialises(t *testing.T) {
	s := NewSessionManager(nil).Create()
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = s.Do(func(tr *tree.Engine, _ *anchored.Store) error {
				_, err := tr.AddElement(models.TypeContainer, "")
				return err
			})
		}()
	}
	wg.Wait()

	_ = s.Do(func(tr *tree.Engine, _ *anchored.Store) error {
		if tr.Len() != 20 || tr.Counter() != 20 {
			t.Errorf("len = %d, counter = %d", tr.Len(), tr.Counter())
		}
		if err := tr.Validate(); err != nil {
			t.Error(err)
		}
		return nil
	})
}
