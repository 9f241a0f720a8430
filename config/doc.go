// Package config loads render profiles from TOML or YAML files.
//
// A profile names the render geometry, the terminal capabilities to encode
// for, the default overflow policy and a set of named styles:
//
//	width = 60
//	height = 16
//	ambiguity = "wide"
//
//	[terminal]
//	color = "ansi256"
//	hyperlinks = true
//
//	[overflow]
//	mode = "ellipsis"
//	position = "center"
//	marker = "dim"
//
//	[styles.dim]
//	faint = true
//
//	[styles.title]
//	fg = "#ff8700"
//	bold = true
//	underline = "curly"
//
// Fields left out keep the values of Default.
package config
