// Package retirement projects portfolio growth to a target age. The model
// is deliberately simple: constant nominal return compounded monthly,
// month-end contributions as an ordinary annuity, and a single inflation
// deflator to express the result in today's money.
package retirement
