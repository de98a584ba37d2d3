package shooter

// Package-level knobs set by the CLI before the registry creates an instance.
var (
	configPath       string
	difficultyPreset string
)

// SetConfigPath sets a custom config file path for subsequently created games.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset for subsequently created games.
func SetDifficultyPreset(preset string) {
	difficultyPreset = preset
}
