package compose

import (
	"errors"
	"fmt"

	"github.com/beevik/etree"

	"github.com/xmlsmith/xmlsmith/pkg/document"
)

// Append deep-copies child and appends the copy as the last child of
// parent. A *etree.Document child stands for its root element: the
// document wrapper itself is never attached. The source of the copy is not
// modified.
func Append(parent *etree.Element, child any) error {
	if parent == nil {
		return errors.New("append: nil parent")
	}

	var imported etree.Token
	switch c := child.(type) {
	case *etree.Document:
		root := c.Root()
		if root == nil {
			return errors.New("append: document has no root element")
		}
		imported = root.Copy()
	case *etree.Element:
		imported = c.Copy()
	case *etree.CharData:
		if c.IsCData() {
			imported = etree.NewCData(c.Data)
		} else {
			imported = etree.NewText(c.Data)
		}
	case *etree.Comment:
		imported = etree.NewComment(c.Data)
	case nil:
		return errors.New("append: nil child")
	default:
		return fmt.Errorf("append: unsupported node type %T", child)
	}

	parent.AddChild(imported)
	return nil
}

// AppendFile parses the XML file at path and appends its root element as
// the last child of parent. Load failures propagate unchanged, so callers
// can distinguish unreadable files (document.ErrRead) from malformed ones
// (document.ErrParse).
//
// A fresh loader is built per call; there is no shared parser state.
func AppendFile(parent *etree.Element, path string, opts *document.ParseOptions) error {
	doc, err := document.NewLoader().ParseFile(path, opts)
	if err != nil {
		return err
	}
	return Append(parent, doc)
}
