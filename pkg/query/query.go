package query

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/beevik/etree"
)

// Sentinel errors; match with errors.Is.
var (
	// ErrPath indicates the XPath expression itself is malformed.
	ErrPath = errors.New("invalid xpath expression")

	// ErrNoMatch indicates a value was requested for a path that matched
	// nothing (or matched an element with no text to give).
	ErrNoMatch = errors.New("no node matched")

	// ErrNotInt indicates the matched value is not a base-10 integer.
	ErrNotInt = errors.New("value is not an integer")
)

// All returns every element under ancestor matching path, in document
// order. A path that matches nothing yields an empty slice and no error.
func All(ancestor *etree.Element, path string) ([]*etree.Element, error) {
	p, err := compile(path)
	if err != nil {
		return nil, err
	}
	return ancestor.FindElementsPath(p), nil
}

// First returns the first element under ancestor matching path. The second
// result reports whether anything matched; a miss is not an error.
func First(ancestor *etree.Element, path string) (*etree.Element, bool, error) {
	p, err := compile(path)
	if err != nil {
		return nil, false, err
	}
	el := ancestor.FindElementPath(p)
	if el == nil {
		return nil, false, nil
	}
	return el, true, nil
}

// Text returns the leading text content of the first element matching path.
// It fails with ErrNoMatch when the path matches nothing, and also when the
// matched element has no leading text child to read.
func Text(ancestor *etree.Element, path string) (string, error) {
	el, ok, err := First(ancestor, path)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrNoMatch, path)
	}
	cd := leadingText(el)
	if cd == nil {
		return "", fmt.Errorf("%w: %q: element <%s> has no text content", ErrNoMatch, path, el.Tag)
	}
	return cd.Data, nil
}

// Int returns the text content of the first element matching path parsed as
// a base-10 integer. Surrounding whitespace is tolerated; anything else
// non-numeric fails with ErrNotInt.
func Int(ancestor *etree.Element, path string) (int, error) {
	s, err := Text(ancestor, path)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %q at %q", ErrNotInt, s, path)
	}
	return n, nil
}

// compile validates the expression before any evaluation so syntax errors
// are reported as ErrPath, never as a silent empty result.
func compile(path string) (etree.Path, error) {
	p, err := etree.CompilePath(path)
	if err != nil {
		return etree.Path{}, fmt.Errorf("%w: %q: %v", ErrPath, path, err)
	}
	return p, nil
}

// leadingText returns the element's first child if it is plain text or
// CDATA, nil otherwise.
func leadingText(el *etree.Element) *etree.CharData {
	if len(el.Child) == 0 {
		return nil
	}
	cd, ok := el.Child[0].(*etree.CharData)
	if !ok {
		return nil
	}
	return cd
}
