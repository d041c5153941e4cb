// Package document loads XML files into etree documents suitable for
// querying, composition and re-serialization.
//
// The loader applies an optional ordered set of literal text replacements to
// the raw file content before parsing, decodes non-UTF-8 input by IANA
// charset name, and parses with a permissive profile: no validation, no DTD
// handling, comments dropped, CDATA sections coalesced into plain text, and
// namespace prefixes left untouched so elements match by raw tag name.
//
// After parsing, formatting whitespace is normalized away: a text child
// consisting only of whitespace is removed whenever its parent also has
// element, CDATA or comment children. Elements whose entire content is text
// are never touched, so meaningful whitespace survives.
//
// # Basic Usage
//
//	loader := document.NewLoader()
//	doc, err := loader.ParseFile("config.xml", &document.ParseOptions{
//	    Replacements: document.Replacements{
//	        {Search: "@PROJECT@", Replace: "demo"},
//	    },
//	})
//
// Replacements are literal (no pattern matching) and applied in slice order,
// one pass per pair. The result is order-dependent: a later pair can match
// text produced by an earlier one. Callers own the ordering.
//
// # Errors
//
// Failures are classified as ErrRead (unreadable or undecodable input) or
// ErrParse (malformed markup), both checkable with errors.Is.
package document
