// Package assets embeds the hull maps and message catalogs.
package assets

import "embed"

// Hulls holds the hull map layouts.
//
//go:embed hulls/*.json
var Hulls embed.FS

// Locale holds gettext catalogs, one <lang>.po per language.
//
//go:embed locale/*.po
var Locale embed.FS
