package questiongen

// Config controls the behavior of the Builder.
type Config struct {
	// Validators is the ordered list of checks run on every candidate
	// question. A candidate is dropped on its first failure.
	Validators []Validator

	// MaxTokens is the token budget for one generation response. A full
	// batch is a single response, so this is sized for the whole set.
	MaxTokens int

	// Temperature controls LLM output randomness (0.0-1.0).
	Temperature float64
}

// DefaultConfig returns a Config with the standard validator chain and
// recommended defaults.
func DefaultConfig() Config {
	return Config{
		Validators:  []Validator{&StructuralValidator{}},
		MaxTokens:   8192,
		Temperature: 0.7,
	}
}
