package anchored

import (
	"log"

	"layout-studio/internal/layout/anchors"
	"layout-studio/internal/layout/models"
	"layout-studio/internal/layout/style"
)

// Layer2ID - id центральной панели. Ее можно выделить, и у нее, как
// у декораций, есть внутренний HTML.
const Layer2ID = "layer2"

// Имена панелей, которые возвращает Store.Panel.
const (
	PanelDecoration = "decoration"
	PanelLayer2     = "layer2"
	PanelNone       = "none"
)

// ============================================================
// Store
// ============================================================

// Store - состояние свободного редактора: фиксированный набор декораций,
// центральная панель и внутренний HTML каждой из них.
type Store struct {
	order      []string
	elements   map[string]*models.Decoration
	defaults   map[string]*models.Decoration
	layer2     models.Layer2Config
	content    map[string]string
	layer2HTML string
	active     string
}

// New создает хранилище с дефолтной декорацией на каждый якорь.
func New(list []anchors.Anchor) *Store {
	s := &Store{
		elements: make(map[string]*models.Decoration, len(list)),
		defaults: make(map[string]*models.Decoration, len(list)),
		content:  make(map[string]string, len(list)),
		layer2:   models.DefaultLayer2(),
	}
	for _, a := range list {
		if a.ID == Layer2ID {
			continue
		}
		if _, dup := s.elements[a.ID]; dup {
			continue
		}
		dec := models.NewDecoration(a.ID, a.AnchorX, a.AnchorY)
		s.order = append(s.order, a.ID)
		s.defaults[a.ID] = dec
		s.elements[a.ID] = dec.Clone()
	}
	return s
}

// IDs возвращает id декораций в порядке разметки.
func (s *Store) IDs() []string { return append([]string{}, s.order...) }

// Decoration возвращает копию декорации.
func (s *Store) Decoration(id string) (*models.Decoration, bool) {
	d, ok := s.elements[id]
	if !ok {
		return nil, false
	}
	return d.Clone(), true
}

// Layer2 возвращает конфигурацию центральной панели.
func (s *Store) Layer2() models.Layer2Config { return s.layer2 }

// ============================================================
// Configuration
// ============================================================

// Configure сливает один ключ в декорацию. false для неизвестных id,
// неизвестных ключей и отклоненных значений.
func (s *Store) Configure(id, key string, value any) bool {
	d, ok := s.elements[id]
	if !ok {
		return false
	}
	return d.Set(key, value)
}

// ConfigureLayer2 сливает один ключ в центральную панель.
func (s *Store) ConfigureLayer2(key string, value any) bool {
	return s.layer2.Set(key, value)
}

// Reset возвращает декорации дефолты. Содержимое сохраняется.
func (s *Store) Reset(id string) bool {
	def, ok := s.defaults[id]
	if !ok {
		return false
	}
	s.elements[id] = def.Clone()
	return true
}

// SetContent заменяет внутренний HTML декорации или Layer2ID.
func (s *Store) SetContent(id, html string) bool {
	if id == Layer2ID {
		s.layer2HTML = html
		return true
	}
	if _, ok := s.elements[id]; !ok {
		return false
	}
	s.content[id] = html
	return true
}

// SetLayer2HTML заменяет внутренний HTML центральной панели.
func (s *Store) SetLayer2HTML(html string) { s.layer2HTML = html }

func (s *Store) Content(id string) string {
	if id == Layer2ID {
		return s.layer2HTML
	}
	return s.content[id]
}

// ============================================================
// Selection
// ============================================================

// Select выделяет декорацию или центральную панель; "" снимает
// выделение, неизвестные id игнорируются.
func (s *Store) Select(id string) {
	if id == "" || id == Layer2ID {
		s.active = id
		return
	}
	if _, ok := s.elements[id]; ok {
		s.active = id
	}
}

// Active возвращает выделенный id или "".
func (s *Store) Active() string { return s.active }

// Panel - имя панели свойств для id.
func (s *Store) Panel(id string) string {
	if id == Layer2ID {
		return PanelLayer2
	}
	if _, ok := s.elements[id]; ok {
		return PanelDecoration
	}
	return PanelNone
}

// ============================================================
// Styles
// ============================================================

// Reference - блок, к которому сейчас привязаны декорации.
func (s *Store) Reference() style.Reference {
	return style.ReferenceFromLayer2(s.layer2)
}

// Styles - скомпилированный свободный холст.
type Styles struct {
	Layer2   style.Descriptor            `json:"layer2"`
	Elements map[string]style.Descriptor `json:"elements"`
}

// Styles компилирует центральную панель и все декорации.
func (s *Store) Styles() Styles {
	ctx := style.Context{Reference: s.Reference()}
	out := Styles{
		Layer2:   style.CompileLayer2(s.layer2),
		Elements: make(map[string]style.Descriptor, len(s.elements)),
	}
	for id, d := range s.elements {
		out.Elements[id] = style.Compile(d, ctx)
	}
	return out
}

// ============================================================
// Snapshot / Restore
// ============================================================

// Snapshot - сериализуемое состояние хранилища.
type Snapshot struct {
	Layer2Config           models.Layer2Config
	ElementsConfig         map[string]*models.Decoration
	Layer2HTML             string
	DecorativeElementsHTML map[string]string
}

// Attacher заново привязывает содержимое после восстановления.
type Attacher interface {
	Attach(id, html string)
}

// AttacherFunc превращает функцию в Attacher.
type AttacherFunc func(id, html string)

func (f AttacherFunc) Attach(id, html string) { f(id, html) }

// Snapshot глубоко копирует текущее состояние.
func (s *Store) Snapshot() Snapshot {
	snap := Snapshot{
		Layer2Config:           s.layer2,
		ElementsConfig:         make(map[string]*models.Decoration, len(s.elements)),
		Layer2HTML:             s.layer2HTML,
		DecorativeElementsHTML: make(map[string]string, len(s.content)),
	}
	for id, d := range s.elements {
		snap.ElementsConfig[id] = d.Clone()
	}
	for id, html := range s.content {
		snap.DecorativeElementsHTML[id] = html
	}
	return snap
}

// Restore целиком заменяет состояние на snap. Декорации, которых нет в
// snap, получают дефолты; неизвестные id пропускаются.
// attach, если не nil, вызывается для центральной панели, затем для
// каждой декорации в порядке разметки.
func (s *Store) Restore(snap Snapshot, attach Attacher) {
	s.layer2 = snap.Layer2Config
	s.layer2HTML = snap.Layer2HTML

	for id := range snap.ElementsConfig {
		if _, ok := s.defaults[id]; !ok {
			log.Printf("[STORE] Skipping unknown decoration %q", id)
		}
	}

	s.content = make(map[string]string, len(s.order))
	for _, id := range s.order {
		if d, ok := snap.ElementsConfig[id]; ok && d != nil {
			c := d.Clone()
			c.ID = id
			s.elements[id] = c
		} else {
			s.elements[id] = s.defaults[id].Clone()
		}
		if html, ok := snap.DecorativeElementsHTML[id]; ok {
			s.content[id] = html
		}
	}
	if attach == nil {
		return
	}
	attach.Attach(Layer2ID, s.layer2HTML)
	for _, id := range s.order {
		attach.Attach(id, s.content[id])
	}
}
