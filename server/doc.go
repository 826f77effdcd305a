// Package server is the HTTP surface of the advisor: tool listing and
// invocation, resource reads, and prompt templates. Responses wrap each
// tool's Markdown summary in a text content block alongside the structured
// output, so thin clients can show the text and richer ones can consume the
// fields.
package server
