package config

// LogConfig controls where the engine's log files are written.
type LogConfig struct {
	LogPath string
}

func init() {
	Settings.Log = LogConfig{
		LogPath: "./logs",
	}
}
