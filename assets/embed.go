package assets

import "embed"

// ConfigFS contains the example config shipped with morning-greetings
// (under assets/config).
//
//go:embed config/config.example.yaml
var ConfigFS embed.FS
