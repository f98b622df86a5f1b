// Package gamedata provides the embedded generation presets, narrative
// messages and display palette.
package gamedata

import "embed"

// dataFS embeds all JSON files from this directory at build time.
//
//go:embed *.json
var dataFS embed.FS
