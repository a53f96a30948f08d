// Package assets embeds the data files shipped with the binary.
package assets

import "embed"

// ProfilesFS embeds the built-in categorization profiles.
//
//go:embed profiles/*.yaml
var ProfilesFS embed.FS
