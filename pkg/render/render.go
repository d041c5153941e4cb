package render

import (
	"errors"
	"fmt"
	"strings"

	"github.com/beevik/etree"

	"github.com/xmlsmith/xmlsmith/pkg/document"
)

// DefaultIndent is the number of spaces per indentation level.
const DefaultIndent = 4

// ErrRender indicates serialization failed. Match with errors.Is.
var ErrRender = errors.New("xml render failed")

// Options controls serialization. The zero value means no CDATA wrapping,
// UTF-8 in the declaration, 4-space indentation.
type Options struct {
	// CDATAElements lists tag names whose text content is emitted inside
	// CDATA sections.
	CDATAElements []string

	// Encoding is the name written into the declaration line. The body is
	// produced as UTF-8 regardless; callers that transcode afterwards are
	// responsible for keeping the label truthful.
	Encoding string

	// Indent is the number of spaces per level. Values <= 0 mean
	// DefaultIndent.
	Indent int
}

// Document renders doc as indented XML text prefixed with a declaration
// line. The document is re-normalized first (a cheap no-op when already
// clean); formatting whitespace the caller may have introduced since
// parsing would otherwise fight the indenter. All other output-side
// reshaping happens on a copy, so doc itself keeps its structure.
func Document(doc *etree.Document, opts *Options) (string, error) {
	if doc == nil {
		return "", fmt.Errorf("%w: nil document", ErrRender)
	}
	if opts == nil {
		opts = &Options{}
	}
	encoding := opts.Encoding
	if encoding == "" {
		encoding = document.DefaultEncoding
	}
	indent := opts.Indent
	if indent <= 0 {
		indent = DefaultIndent
	}

	document.NormalizeDocument(doc)

	out := doc.Copy()
	stripProlog(out)
	if len(opts.CDATAElements) > 0 {
		wrapCDATA(&out.Element, opts.CDATAElements)
	}
	// PreserveLeafWhitespace keeps the indenter away from text-only
	// elements: normalization already decided their whitespace is content,
	// and the default indenter would strip it anyway.
	settings := etree.NewIndentSettings()
	settings.Spaces = indent
	settings.PreserveLeafWhitespace = true
	out.IndentWithSettings(settings)

	body, err := out.WriteToString()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrRender, err)
	}

	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="`)
	b.WriteString(encoding)
	b.WriteString("\"?>\n")
	b.WriteString(strings.TrimLeft(body, "\n"))
	return b.String(), nil
}

// stripProlog removes declaration and doctype tokens so the manually
// written declaration line is the only one in the output.
func stripProlog(doc *etree.Document) {
	for i := len(doc.Child) - 1; i >= 0; i-- {
		switch doc.Child[i].(type) {
		case *etree.ProcInst, *etree.Directive:
			doc.RemoveChildAt(i)
		}
	}
}

// wrapCDATA converts the plain-text children of every element whose tag is
// in tags into CDATA sections. Whitespace-only runs are left alone; they
// are formatting, not content.
func wrapCDATA(root *etree.Element, tags []string) {
	set := make(map[string]struct{}, len(tags))
	for _, tag := range tags {
		set[tag] = struct{}{}
	}

	stack := []*etree.Element{root}
	for len(stack) > 0 {
		el := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		_, marked := set[el.Tag]
		for i := 0; i < len(el.Child); i++ {
			switch c := el.Child[i].(type) {
			case *etree.Element:
				stack = append(stack, c)
			case *etree.CharData:
				if marked && !c.IsCData() && strings.TrimSpace(c.Data) != "" {
					el.RemoveChildAt(i)
					el.InsertChildAt(i, etree.NewCData(c.Data))
				}
			}
		}
	}
}
