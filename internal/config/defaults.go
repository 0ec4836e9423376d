package config

const (
	defaultTitle    = "Podium"
	defaultWidth    = 1280
	defaultHeight   = 720
	defaultLogLevel = "info"
)

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Window: Window{
			Title:  defaultTitle,
			Width:  defaultWidth,
			Height: defaultHeight,
		},
		Playback: Playback{
			ShowControls: true,
		},
		Logging: Logging{
			Level:  defaultLogLevel,
			Format: "console",
		},
	}
}
