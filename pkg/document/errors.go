package document

import "errors"

// Sentinel errors returned by the loader. Wrapped errors carry detail;
// match with errors.Is.
var (
	// ErrRead indicates the source could not be read or decoded.
	ErrRead = errors.New("xml source unreadable")

	// ErrParse indicates the source is not well-formed XML.
	ErrParse = errors.New("malformed xml")
)
