// Package rewrite turns known social-media URLs embedded in arbitrary text into
// their preview-friendly mirror forms.
//
// A Table is an ordered list of compiled rules. Engine.Transform applies every
// rule once, in table order, each rule replacing all non-overlapping matches in
// the output of the previous one. Text that matches nothing comes back
// unchanged.
//
// The built-in table is compiled when the package is initialised; a bad
// pattern there is a programming error and panics at startup rather than
// failing a later Transform call. Matching uses Go's RE2 engine, so run time
// stays linear in the input length whatever the clipboard contains.
package rewrite
