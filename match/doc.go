// Package match decides whether a component name is selected by an
// include or exclude filter.
//
// A Pattern is one of three forms: an explicit list of names, a
// comma-delimited string of names, or a regular expression. The zero Pattern
// is unset and matches nothing.
//
//	p := match.Delimited("Home,Settings")
//	match.Matches(p, "Settings") // true
//	match.Matches(p, "Profile")  // false
package match
