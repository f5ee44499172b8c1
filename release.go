//go:build kumiai_release

package kumiai

const debugChecks = false
