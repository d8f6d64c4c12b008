// Package mcptool exposes scoring and Before/After sessions as MCP tools
// over the stdio transport. Results are JSON documents returned as text
// content; domain failures become tool error results so the host model
// can read them.
package mcptool
