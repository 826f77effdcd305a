// Package stockquote fetches live quotes from Finnhub. The credential is
// injected at construction; without one the tool stays registered and
// returns a fixed notice, so catalogs look the same with or without live
// market data.
package stockquote
