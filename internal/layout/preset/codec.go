package preset

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"slices"
	"strings"
	"sync"
	"time"

	"layout-studio/internal/layout/anchored"
	"layout-studio/internal/layout/models"

	"github.com/google/uuid"
)

// StorageKey - ключ, под которым лежит список пресетов.
const StorageKey = "layoutEditorPresets"

var (
	ErrNotFound  = errors.New("preset not found")
	ErrEmptyName = errors.New("preset name is empty")
)

// KV - key-value хранилище пресетов.
type KV interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
}

// ============================================================
// Codec
// ============================================================

type Codec struct {
	// mu сериализует чтение-изменение-запись общего списка пресетов.
	mu    sync.Mutex
	kv    KV
	now   func() time.Time
	newID func() string
}

func New(kv KV) *Codec {
	return &Codec{kv: kv, now: time.Now, newID: uuid.NewString}
}

// List возвращает все пресеты в порядке сохранения. Битый список
// логируется и считается пустым.
func (c *Codec) List(ctx context.Context) ([]models.Preset, error) {
	raw, ok, err := c.kv.Get(ctx, StorageKey)
	if err != nil {
		return nil, fmt.Errorf("read presets: %w", err)
	}
	if !ok || strings.TrimSpace(raw) == "" {
		return []models.Preset{}, nil
	}

	var list []models.Preset
	if err := json.Unmarshal([]byte(raw), &list); err != nil {
		log.Printf("[PRESET] Corrupt preset list, treating as empty: %v", err)
		return []models.Preset{}, nil
	}
	if list == nil {
		list = []models.Preset{}
	}
	return list, nil
}

// Summaries - список пресетов без содержимого.
func (c *Codec) Summaries(ctx context.Context) ([]models.PresetSummary, error) {
	list, err := c.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]models.PresetSummary, 0, len(list))
	for _, p := range list {
		out = append(out, p.Summary())
	}
	return out, nil
}

// Save сохраняет снимок store новым пресетом в конец списка.
func (c *Codec) Save(ctx context.Context, name string, store *anchored.Store) (models.Preset, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Preset{}, ErrEmptyName
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	list, err := c.List(ctx)
	if err != nil {
		return models.Preset{}, err
	}

	snap := store.Snapshot()
	p := models.Preset{
		ID:                     c.newID(),
		Name:                   name,
		Timestamp:              c.now().UnixMilli(),
		Layer2Config:           snap.Layer2Config,
		ElementsConfig:         snap.ElementsConfig,
		Layer2HTML:             snap.Layer2HTML,
		DecorativeElementsHTML: snap.DecorativeElementsHTML,
	}
	list = append(list, p)
	if err := c.write(ctx, list); err != nil {
		return models.Preset{}, err
	}
	log.Printf("[PRESET] Saved %q (%s)", p.Name, p.ID)
	return p, nil
}

// Get возвращает один пресет.
func (c *Codec) Get(ctx context.Context, id string) (models.Preset, error) {
	list, err := c.List(ctx)
	if err != nil {
		return models.Preset{}, err
	}
	i := slices.IndexFunc(list, func(p models.Preset) bool { return p.ID == id })
	if i < 0 {
		return models.Preset{}, ErrNotFound
	}
	return list[i], nil
}

// Load заменяет состояние store сохраненным пресетом и заново
// привязывает содержимое через attach.
func (c *Codec) Load(ctx context.Context, id string, store *anchored.Store, attach anchored.Attacher) (models.Preset, error) {
	p, err := c.Get(ctx, id)
	if err != nil {
		return models.Preset{}, err
	}
	store.Restore(SnapshotOf(p), attach)
	log.Printf("[PRESET] Loaded %q (%s)", p.Name, p.ID)
	return p, nil
}

// Delete удаляет один пресет.
func (c *Codec) Delete(ctx context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	list, err := c.List(ctx)
	if err != nil {
		return err
	}
	i := slices.IndexFunc(list, func(p models.Preset) bool { return p.ID == id })
	if i < 0 {
		return ErrNotFound
	}
	list = slices.Delete(list, i, i+1)
	if err := c.write(ctx, list); err != nil {
		return err
	}
	log.Printf("[PRESET] Deleted %s", id)
	return nil
}

func (c *Codec) write(ctx context.Context, list []models.Preset) error {
	data, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("encode presets: %w", err)
	}
	if err := c.kv.Set(ctx, StorageKey, string(data)); err != nil {
		return fmt.Errorf("write presets: %w", err)
	}
	return nil
}

// SnapshotOf превращает пресет обратно в состояние хранилища.
func SnapshotOf(p models.Preset) anchored.Snapshot {
	return anchored.Snapshot{
		Layer2Config:           p.Layer2Config,
		ElementsConfig:         p.ElementsConfig,
		Layer2HTML:             p.Layer2HTML,
		DecorativeElementsHTML: p.DecorativeElementsHTML,
	}
}
