package skill

// Breakdown is the additive ledger behind one calculated value.
// Each field holds the signed contribution of one pipeline step.
type Breakdown struct {
	Base                float64 `json:"base"`
	LevelScaling        float64 `json:"level_scaling"`
	PrimaryAttribute    float64 `json:"primary_attribute"`
	SecondaryAttribute  float64 `json:"secondary_attribute"`
	Mastery             float64 `json:"mastery"`
	Enhancement         float64 `json:"enhancement"`
	ComboBonus          float64 `json:"combo_bonus"`
	ZodiacSynergy       float64 `json:"zodiac_synergy"`
	ZodiacConflict      float64 `json:"zodiac_conflict"`
	SeasonalBonus       float64 `json:"seasonal_bonus"`
	EquipmentBonus      float64 `json:"equipment_bonus"`
	StatusBonus         float64 `json:"status_bonus"`
	TemporaryBonus      float64 `json:"temporary_bonus"`
	TargetResistance    float64 `json:"target_resistance"`
	Vulnerability       float64 `json:"vulnerability"`
	ArmorReduction      float64 `json:"armor_reduction"`
	RandomVariation     float64 `json:"random_variation"`
	EnvironmentalFactor float64 `json:"environmental_factor"`
	CriticalMultiplier  float64 `json:"critical_multiplier"`
	FinalMultiplier     float64 `json:"final_multiplier"`
	CappingReduction    float64 `json:"capping_reduction"`
}

// Subtotal sums the additive fields, before multipliers and capping
func (b *Breakdown) Subtotal() float64 {
	return b.Base + b.LevelScaling + b.PrimaryAttribute + b.SecondaryAttribute +
		b.Mastery + b.Enhancement + b.ComboBonus + b.ZodiacSynergy + b.ZodiacConflict +
		b.SeasonalBonus + b.EquipmentBonus + b.StatusBonus + b.TemporaryBonus +
		b.TargetResistance + b.Vulnerability + b.ArmorReduction + b.RandomVariation +
		b.EnvironmentalFactor
}
