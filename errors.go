package cellmesh

import "fmt"

// Strict toggles debug-build contract-violation behavior: when true,
// a violation (out-of-range slot access, duplicate registry
// registration, RemoveAt past end) panics with a diagnostic; when
// false (the default, matching a release build) it is a silent
// no-op or zero-value return, except that a duplicate registry
// registration returns an error. Never memory-unsafe either way.
var Strict = false

// violation reports a contract violation per the Strict policy.
func violation(format string, args ...any) {
	if Strict {
		panic(fmt.Sprintf("cellmesh: contract violation: "+format, args...))
	}
}
