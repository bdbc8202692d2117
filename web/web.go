// Package web embeds the storefront served at /.
package web

import "embed"

//go:embed static
var Site embed.FS
