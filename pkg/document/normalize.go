package document

import (
	"strings"

	"github.com/beevik/etree"
)

// Normalize removes formatting whitespace from the subtree rooted at parent.
//
// A text child consisting only of whitespace is removed when its parent also
// has at least one element, CDATA or comment child. A parent whose children
// are all text is left alone: its whitespace is content, not formatting.
// Sibling order of the surviving children is preserved.
//
// Normalize is idempotent and walks the tree with an explicit stack, so
// pathologically deep documents cannot exhaust the call stack.
func Normalize(parent *etree.Element) {
	if parent == nil {
		return
	}
	stack := []*etree.Element{parent}
	for len(stack) > 0 {
		el := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		structural := false
		for _, child := range el.Child {
			switch c := child.(type) {
			case *etree.Element:
				structural = true
				stack = append(stack, c)
			case *etree.Comment:
				structural = true
			case *etree.CharData:
				if c.IsCData() {
					structural = true
				}
			}
		}
		if !structural {
			continue
		}

		// Walk backwards so removal does not shift unvisited indexes.
		for i := len(el.Child) - 1; i >= 0; i-- {
			if cd, ok := el.Child[i].(*etree.CharData); ok && !cd.IsCData() && strings.TrimSpace(cd.Data) == "" {
				el.RemoveChildAt(i)
			}
		}
	}
}

// NormalizeDocument normalizes every element of doc, including whitespace
// between top-level tokens.
func NormalizeDocument(doc *etree.Document) {
	if doc == nil {
		return
	}
	Normalize(&doc.Element)
}
