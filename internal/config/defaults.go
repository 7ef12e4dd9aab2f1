package config

import (
	_ "embed"
)

//go:embed defaults/termdemo.yaml
var defaultYAML []byte
