// Package budget plans a single month: a savings target derived from a goal
// percentage, a feasibility check against income, and either the unallocated
// buffer or the shortfall with concrete suggestions.
package budget
