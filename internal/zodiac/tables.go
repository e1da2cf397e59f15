package zodiac

import (
	_ "embed"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	zerr "github.com/KirkDiggler/zodiac-skill-engine/internal/errors"
)

//go:embed tables.yaml
var defaultTables []byte

// Trait is everything the engine knows about one sign
type Trait struct {
	Element         Element                `yaml:"element"`
	FavorableSeason Season                 `yaml:"favorable_season"`
	Opposite        Sign                   `yaml:"opposite"`
	Compatible      []Sign                 `yaml:"compatible"`
	Conflicting     []Sign                 `yaml:"conflicting"`
	Resistances     map[DamageKind]float64 `yaml:"resistances"`
	CritChanceBonus float64                `yaml:"crit_chance_bonus"`
	CritDamageBonus float64                `yaml:"crit_damage_bonus"`
	Seasonal        map[Season]float64     `yaml:"seasonal"`
}

// Interactions tunes caster/target pair modifiers
type Interactions struct {
	Compatible    float64 `yaml:"compatible"`
	Conflicting   float64 `yaml:"conflicting"`
	HarmonyChance float64 `yaml:"harmony_chance"`
}

// Tables is the immutable configuration shared by every resolution.
// Fields are exported for decoding only; read through the methods.
type Tables struct {
	ElementMatrix  map[Element]map[Element]float64 `yaml:"element_matrix"`
	Signs          map[Sign]Trait                  `yaml:"signs"`
	SeasonElements map[Season]Element              `yaml:"season_elements"`
	TimeOfDay      map[TimeOfDay]float64           `yaml:"time_of_day"`
	Weather        map[Weather]float64             `yaml:"weather"`
	DamageCaps     map[DamageKind]float64          `yaml:"damage_caps"`
	Interactions   Interactions                    `yaml:"interactions"`
}

// Default parses the embedded tables
func Default() (*Tables, error) {
	return Parse(defaultTables)
}

// MustDefault is Default for program start-up and tests
func MustDefault() *Tables {
	t, err := Default()
	if err != nil {
		panic(err)
	}
	return t
}

// Load reads tables from a YAML file. An empty path or a missing file
// yields the embedded defaults.
func Load(path string) (*Tables, error) {
	if path == "" {
		return Default()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default()
		}
		return nil, zerr.Wrapf(err, "reading zodiac tables %s", path)
	}

	return Parse(data)
}

// Parse decodes and validates YAML tables
func Parse(data []byte) (*Tables, error) {
	var t Tables
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, zerr.WrapWithCode(err, zerr.CodeValidation, "parsing zodiac tables")
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return &t, nil
}

// Validate checks that every sign, cycle element and damage cap is present
// and that opposite signs point at each other
func (t *Tables) Validate() error {
	for _, sign := range AllSigns {
		trait, ok := t.Signs[sign]
		if !ok {
			return zerr.Validationf("sign %q missing from tables", sign)
		}
		if !slices.Contains(CycleElements, trait.Element) {
			return zerr.Validationf("sign %q has unknown element %q", sign, trait.Element)
		}
		if opp, ok := t.Signs[trait.Opposite]; !ok || opp.Opposite != sign {
			return zerr.Validationf("sign %q opposite %q is not symmetric", sign, trait.Opposite)
		}
	}

	for _, el := range CycleElements {
		row, ok := t.ElementMatrix[el]
		if !ok {
			return zerr.Validationf("element matrix missing row %q", el)
		}
		for _, col := range CycleElements {
			if row[col] <= 0 {
				return zerr.Validationf("element matrix %s/%s must be positive", el, col)
			}
		}
	}

	for _, kind := range AllDamageKinds {
		if t.DamageCaps[kind] <= 0 {
			return zerr.Validationf("damage cap for %q must be positive", kind)
		}
	}

	return nil
}

// Trait returns the trait of sign
func (t *Tables) Trait(sign Sign) (Trait, bool) {
	trait, ok := t.Signs[sign]
	return trait, ok
}

// ElementOf returns the element of sign, or neutral for an unknown sign
func (t *Tables) ElementOf(sign Sign) Element {
	if trait, ok := t.Signs[sign]; ok {
		return trait.Element
	}
	return ElementNeutral
}

// SeasonElement returns the element ruling season
func (t *Tables) SeasonElement(season Season) Element {
	if el, ok := t.SeasonElements[season]; ok {
		return el
	}
	return ElementNeutral
}

// Multiplier returns the cross multiplier of caster element against target
// element. Anything involving neutral is 1.0.
func (t *Tables) Multiplier(caster, target Element) float64 {
	row, ok := t.ElementMatrix[caster]
	if !ok {
		return 1.0
	}
	if v, ok := row[target]; ok {
		return v
	}
	return 1.0
}

// IsOpposite reports whether b is the designated opposite of a
func (t *Tables) IsOpposite(a, b Sign) bool {
	trait, ok := t.Signs[a]
	return ok && b != SignNone && trait.Opposite == b
}

// Relation classifies the pair (a, b)
func (t *Tables) Relation(a, b Sign) Relation {
	trait, ok := t.Signs[a]
	if !ok || b == SignNone {
		return RelationNeutral
	}
	if slices.Contains(trait.Compatible, b) {
		return RelationCompatible
	}
	if slices.Contains(trait.Conflicting, b) {
		return RelationConflicting
	}
	return RelationNeutral
}

// InteractionMultiplier is the overlay multiplier for caster acting on target
func (t *Tables) InteractionMultiplier(caster, target Sign) float64 {
	switch t.Relation(caster, target) {
	case RelationCompatible:
		return t.Interactions.Compatible
	case RelationConflicting:
		return t.Interactions.Conflicting
	default:
		return 1.0
	}
}

// SeasonalMultiplier returns the overlay multiplier of sign in season
func (t *Tables) SeasonalMultiplier(sign Sign, season Season) float64 {
	trait, ok := t.Signs[sign]
	if !ok {
		return 1.0
	}
	if v, ok := trait.Seasonal[season]; ok {
		return v
	}
	return 1.0
}

// Resistance returns the innate resistance of sign against kind
func (t *Tables) Resistance(sign Sign, kind DamageKind) float64 {
	if trait, ok := t.Signs[sign]; ok {
		return trait.Resistances[kind]
	}
	return 0
}

// Cap returns the ceiling for values of kind
func (t *Tables) Cap(kind DamageKind) float64 {
	return t.DamageCaps[kind]
}

// TimeOfDayDelta returns the additive fraction for tod
func (t *Tables) TimeOfDayDelta(tod TimeOfDay) float64 {
	return t.TimeOfDay[tod]
}

// WeatherDelta returns the additive fraction for w
func (t *Tables) WeatherDelta(w Weather) float64 {
	return t.Weather[w]
}
