// Package fxconvert converts amounts between currencies using free FX rate
// APIs. Three strategies are tried in order: the exchangerate.host convert
// endpoint, its latest rate table, and the frankfurter.app rate table. A
// failing strategy is logged and skipped; when none answers, the tool returns
// a fixed apology summary instead of an error so callers always get a
// renderable result.
package fxconvert
