package main

import "embed"

// configFS embeds the default configuration files at build time.
//
//go:embed configs/*.yaml
var configFS embed.FS
