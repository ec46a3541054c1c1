package models

// ============================================================
// Preset
// ============================================================

// Preset - именованный снимок свободного редактора.
type Preset struct {
	ID                     string                 `json:"id"`
	Name                   string                 `json:"name"`
	Timestamp              int64                  `json:"timestamp"`
	Layer2Config           Layer2Config           `json:"layer2Config"`
	ElementsConfig         map[string]*Decoration `json:"elementsConfig"`
	Layer2HTML             string                 `json:"layer2HTML"`
	DecorativeElementsHTML map[string]string      `json:"decorativeElementsHTML"`
}

// PresetSummary - пресет для списка, без содержимого.
type PresetSummary struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Timestamp int64  `json:"timestamp"`
}

func (p Preset) Summary() PresetSummary {
	return PresetSummary{ID: p.ID, Name: p.Name, Timestamp: p.Timestamp}
}
