package render

// DefaultSize is the QR edge length used when none is given.
const DefaultSize = 300

// Config holds rendering defaults loaded from the environment.
type Config struct {
	Size  int   `env:"PAYBYSQUARE_SIZE" envDefault:"300"`
	Style Style `env:"PAYBYSQUARE_STYLE" envDefault:"default"`
}

// DefaultConfig returns a 300 px default-style configuration.
func DefaultConfig() Config {
	return Config{
		Size:  DefaultSize,
		Style: StyleDefault,
	}
}
