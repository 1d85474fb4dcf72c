// Package web holds the embedded single-page UI served by the API.
package web

import "embed"

// Files contains index.html and the static/ assets.
//
//go:embed index.html static
var Files embed.FS
