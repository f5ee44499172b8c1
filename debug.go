//go:build !kumiai_release

package kumiai

// debugChecks enables type-set assertions. Build with -tags kumiai_release
// to compile them out.
const debugChecks = true
