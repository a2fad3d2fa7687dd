//go:build cardchecks

package poker

// cardChecks enables the precondition assertions on API contracts.
// Violations are programmer errors: the checked build panics with a
// diagnostic, the release build leaves behavior undefined.
const cardChecks = true
