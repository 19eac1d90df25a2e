package config

// Build metadata, set at build time via -ldflags.
var (
	Version   string
	Commit    string
	Branch    string
	BuildDate string
)
