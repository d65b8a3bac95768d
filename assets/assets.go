// Package assets embeds the images drawn for each body in the scene.
package assets

import "embed"

// Planets holds one PNG per body, named planets/<lowercase body name>.png.
//
//go:embed planets/*.png
var Planets embed.FS
