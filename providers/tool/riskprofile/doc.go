// Package riskprofile scores a risk-tolerance questionnaire. The mean of
// the answers selects one of three profiles, each paired with an
// illustrative bonds/equities/cash mix.
package riskprofile
