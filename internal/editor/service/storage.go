package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strconv"

	"layout-studio/internal/common/config"
	"layout-studio/internal/layout/tree"
)

// KV - постоянное key-value хранилище панелей и макетов.
type KV interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	Keys(ctx context.Context, prefix string) ([]string, error)
}

// ErrNoLayout - у сессии нет сохраненного макета.
var ErrNoLayout = errors.New("no saved layout")

// ============================================================
// Panel Widths
// ============================================================

const (
	LeftPanelKey  = "layoutEditor.leftPanelWidth"
	RightPanelKey = "layoutEditor.rightPanelWidth"
)

type PanelWidths struct {
	Left  int `json:"left"`
	Right int `json:"right"`
}

// Panels хранит ширины боковых панелей, ограниченные настроенным диапазоном.
type Panels struct {
	kv     KV
	limits config.Panels
}

func NewPanels(kv KV, limits config.Panels) *Panels {
	return &Panels{kv: kv, limits: limits}
}

// Widths загружает обе ширины. Отсутствующие или битые значения
// заменяются дефолтами, сохраненные ограничиваются.
func (p *Panels) Widths(ctx context.Context) (PanelWidths, error) {
	left, err := p.load(ctx, LeftPanelKey, p.limits.LeftDefault, p.limits.LeftMin, p.limits.LeftMax)
	if err != nil {
		return PanelWidths{}, err
	}
	right, err := p.load(ctx, RightPanelKey, p.limits.RightDefault, p.limits.RightMin, p.limits.RightMax)
	if err != nil {
		return PanelWidths{}, err
	}
	return PanelWidths{Left: left, Right: right}, nil
}

// Set ограничивает и сохраняет ширины; нулевая ширина не меняется.
func (p *Panels) Set(ctx context.Context, w PanelWidths) (PanelWidths, error) {
	if w.Left != 0 {
		v := clamp(w.Left, p.limits.LeftMin, p.limits.LeftMax)
		if err := p.kv.Set(ctx, LeftPanelKey, strconv.Itoa(v)); err != nil {
			return PanelWidths{}, fmt.Errorf("store left panel: %w", err)
		}
	}
	if w.Right != 0 {
		v := clamp(w.Right, p.limits.RightMin, p.limits.RightMax)
		if err := p.kv.Set(ctx, RightPanelKey, strconv.Itoa(v)); err != nil {
			return PanelWidths{}, fmt.Errorf("store right panel: %w", err)
		}
	}
	return p.Widths(ctx)
}

func (p *Panels) load(ctx context.Context, key string, def, min, max int) (int, error) {
	raw, ok, err := p.kv.Get(ctx, key)
	if err != nil {
		return 0, fmt.Errorf("load %s: %w", key, err)
	}
	if !ok {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return def, nil
	}
	return clamp(v, min, max), nil
}

func clamp(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// ============================================================
// Saved Layouts
// ============================================================

const layoutKeyPrefix = "layoutEditor.tree."

// Layouts хранит деревья макетов по имени.
type Layouts struct {
	kv KV
}

func NewLayouts(kv KV) *Layouts {
	return &Layouts{kv: kv}
}

func layoutKey(name string) string { return layoutKeyPrefix + name }

// Save сохраняет снимок t под именем name.
func (l *Layouts) Save(ctx context.Context, name string, t *tree.Engine) error {
	data, err := json.Marshal(t.Snapshot())
	if err != nil {
		return fmt.Errorf("encode layout: %w", err)
	}
	if err := l.kv.Set(ctx, layoutKey(name), string(data)); err != nil {
		return err
	}
	log.Printf("[EDITOR] Saved layout %q (%d nodes)", name, t.Len())
	return nil
}

// Restore заменяет t макетом name. Если сохраненный макет не прошел
// проверку, возвращается ошибка и t не меняется.
func (l *Layouts) Restore(ctx context.Context, name string, t *tree.Engine) error {
	raw, ok, err := l.kv.Get(ctx, layoutKey(name))
	if err != nil {
		return err
	}
	if !ok {
		return ErrNoLayout
	}
	var state tree.State
	if err := json.Unmarshal([]byte(raw), &state); err != nil {
		log.Printf("[EDITOR] Corrupt layout %q: %v", name, err)
		return fmt.Errorf("%w: %v", tree.ErrInconsistent, err)
	}
	return t.Restore(state)
}

func (l *Layouts) Delete(ctx context.Context, name string) error {
	return l.kv.Delete(ctx, layoutKey(name))
}

// Names - список сохраненных макетов.
func (l *Layouts) Names(ctx context.Context) ([]string, error) {
	keys, err := l.kv.Keys(ctx, layoutKeyPrefix)
	if err != nil {
		return nil, err
	}
	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = k[len(layoutKeyPrefix):]
	}
	return names, nil
}
