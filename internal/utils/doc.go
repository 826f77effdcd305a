// Package utils holds small shared helpers: a generic JSON-over-HTTP GET
// helper with span instrumentation, monetary formatting, and string
// truncation for log output.
package utils
