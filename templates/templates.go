// Package templates embeds the HTML templates so the binary is
// self-contained and tests don't depend on the working directory.
package templates

import "embed"

//go:embed *.tmpl
var FS embed.FS
