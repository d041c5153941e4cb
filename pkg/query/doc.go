// Package query evaluates XPath expressions against etree elements.
//
// Paths use etree's XPath 1.0 subset. Because parsing keeps namespace
// prefixes as part of the raw tag name, paths match tags literally:
// "/beans/bean" and "/x:beans/x:bean" are different paths against different
// trees.
//
// Every lookup reports its outcome explicitly. There is no nil-on-miss
// contract: All returns an empty slice, First returns a found flag, and the
// value accessors return ErrNoMatch rather than an empty placeholder.
package query
