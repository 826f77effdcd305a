// Package parse converts caller-supplied strings into typed values, with a
// jsonrepair fallback for the malformed JSON that tool-calling agents
// routinely produce.
package parse
