package dice

//go:generate mockgen -destination=mock/mock_roller.go -package=mockdice -source=roller.go

// Roller is the single source of randomness for the engine.
// Critical rolls, variance, probability gates and board dice all draw from it,
// so tests inject a scripted or seeded implementation to force outcomes.
type Roller interface {
	// Roll rolls count dice with the given sides and adds a bonus
	Roll(count, sides, bonus int) (*RollResult, error)

	// Float64 returns a uniform draw in [0, 1)
	Float64() float64

	// Intn returns a uniform integer in [0, n); n must be positive
	Intn(n int) int
}
