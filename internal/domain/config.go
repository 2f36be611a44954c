package domain

// Config represents the ventmap configuration loaded from ventmap.yaml.
type Config struct {
	Defaults DefaultsConfig
	Paths    PathsConfig
	Solve    SolveConfig
	Diagram  DiagramConfig
}

type DefaultsConfig struct {
	Variant   Variant
	Threshold int
	Input     string
}

type PathsConfig struct {
	InputDir string
}

type SolveConfig struct {
	// Workers > 1 enables the parallel accumulation.
	Workers int
}

type DiagramConfig struct {
	Color   bool
	MaxSize int
}

// DefaultThreshold is the coverage a point needs to count as an overlap.
const DefaultThreshold = 2

// DefaultConfig provides sane defaults if ventmap.yaml is partially missing.
func DefaultConfig() Config {
	return Config{
		Defaults: DefaultsConfig{
			Variant:   VariantAll,
			Threshold: DefaultThreshold,
			Input:     "input/example.txt",
		},
		Paths: PathsConfig{
			InputDir: "input",
		},
		Solve: SolveConfig{
			Workers: 1,
		},
		Diagram: DiagramConfig{
			Color:   true,
			MaxSize: 200,
		},
	}
}
