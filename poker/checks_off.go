//go:build !cardchecks

package poker

const cardChecks = false
