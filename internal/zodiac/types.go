// Package zodiac holds the static sign, element and season tables the
// resolution engine reads. Tables are built once at startup and are never
// mutated afterwards; every resolution shares the same *Tables.
package zodiac

// Sign is one of the twelve zodiac archetypes
type Sign string

const (
	SignNone    Sign = ""
	SignRat     Sign = "rat"
	SignOx      Sign = "ox"
	SignTiger   Sign = "tiger"
	SignRabbit  Sign = "rabbit"
	SignDragon  Sign = "dragon"
	SignSnake   Sign = "snake"
	SignHorse   Sign = "horse"
	SignGoat    Sign = "goat"
	SignMonkey  Sign = "monkey"
	SignRooster Sign = "rooster"
	SignDog     Sign = "dog"
	SignPig     Sign = "pig"
)

// AllSigns lists the signs in calendar order
var AllSigns = []Sign{
	SignRat, SignOx, SignTiger, SignRabbit, SignDragon, SignSnake,
	SignHorse, SignGoat, SignMonkey, SignRooster, SignDog, SignPig,
}

// Element participates in the production/restriction cycle
type Element string

const (
	ElementNeutral Element = "neutral"
	ElementWood    Element = "wood"
	ElementFire    Element = "fire"
	ElementEarth   Element = "earth"
	ElementMetal   Element = "metal"
	ElementWater   Element = "water"
)

// CycleElements are the five elements that take part in the matrix
var CycleElements = []Element{ElementWood, ElementFire, ElementEarth, ElementMetal, ElementWater}

// Season of the game calendar
type Season string

const (
	SeasonNone   Season = ""
	SeasonSpring Season = "spring"
	SeasonSummer Season = "summer"
	SeasonAutumn Season = "autumn"
	SeasonWinter Season = "winter"
)

// Opposite returns the season half a year away
func (s Season) Opposite() Season {
	switch s {
	case SeasonSpring:
		return SeasonAutumn
	case SeasonSummer:
		return SeasonWinter
	case SeasonAutumn:
		return SeasonSpring
	case SeasonWinter:
		return SeasonSummer
	}
	return SeasonNone
}

// TimeOfDay of the current turn
type TimeOfDay string

const (
	TimeNone    TimeOfDay = ""
	TimeMorning TimeOfDay = "morning"
	TimeNoon    TimeOfDay = "noon"
	TimeEvening TimeOfDay = "evening"
	TimeNight   TimeOfDay = "night"
)

// Weather of the current turn
type Weather string

const (
	WeatherNone   Weather = ""
	WeatherSunny  Weather = "sunny"
	WeatherRainy  Weather = "rainy"
	WeatherStormy Weather = "stormy"
	WeatherSnowy  Weather = "snowy"
)

// DamageKind selects the cap and the resistances that apply to a value
type DamageKind string

const (
	DamageFinancial DamageKind = "financial"
	DamagePhysical  DamageKind = "physical"
	DamageMagical   DamageKind = "magical"
	DamageSocial    DamageKind = "social"
	DamageTemporal  DamageKind = "temporal"
	DamageZodiac    DamageKind = "zodiac"
)

// AllDamageKinds lists every damage kind that must carry a cap
var AllDamageKinds = []DamageKind{
	DamageFinancial, DamagePhysical, DamageMagical, DamageSocial, DamageTemporal, DamageZodiac,
}

// Relation between two signs
type Relation int

const (
	RelationNeutral Relation = iota
	RelationCompatible
	RelationConflicting
)

func (r Relation) String() string {
	switch r {
	case RelationCompatible:
		return "compatible"
	case RelationConflicting:
		return "conflicting"
	default:
		return "neutral"
	}
}
