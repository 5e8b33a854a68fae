package guide

import _ "embed"

//go:embed guide.md
var Markdown string
