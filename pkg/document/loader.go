package document

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/beevik/etree"
	"golang.org/x/text/encoding/ianaindex"

	"github.com/xmlsmith/xmlsmith/pkg/logging"
)

// DefaultEncoding is used when ParseOptions does not name one.
const DefaultEncoding = "UTF-8"

// ParseOptions controls a single parse. The zero value (or nil) means no
// replacements and UTF-8 input.
type ParseOptions struct {
	// Replacements are applied to the decoded text before parsing.
	Replacements Replacements

	// Encoding is the IANA name of the input charset. Defaults to UTF-8.
	Encoding string
}

// Loader parses XML sources into normalized etree documents.
//
// A Loader holds no per-document state and is cheap to construct; call
// sites that run concurrently should build one per call rather than share
// an instance across goroutines.
type Loader struct {
	log *slog.Logger
}

// NewLoader creates a Loader with logging disabled.
func NewLoader() *Loader {
	return &Loader{log: logging.Nop()}
}

// SetLogger sets the logger used for parse diagnostics. A nil logger
// disables logging.
func (l *Loader) SetLogger(log *slog.Logger) {
	if log == nil {
		log = logging.Nop()
	}
	l.log = log
}

// ParseFile reads, decodes and parses the XML file at path. The path is
// handed to the operating system as given; relative segments resolve
// against the working directory. Read and decode failures wrap ErrRead;
// malformed markup wraps ErrParse.
func (l *Loader) ParseFile(path string, opts *ParseOptions) (*etree.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRead, err)
	}
	doc, err := l.Parse(data, opts)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	l.log.Debug("parsed file", "path", path, "bytes", len(data))
	return doc, nil
}

// Parse decodes and parses in-memory XML data.
//
// The profile is deliberately permissive: no validation, no DTD loading,
// comments dropped, CDATA sections coalesced into plain text, and namespace
// prefixes kept as part of the raw tag name. Processing instructions inside
// the body are content and survive; only prolog tokens (declaration,
// doctype) are discarded. The returned document always has exactly one root
// element and has been normalized (see Normalize).
func (l *Loader) Parse(data []byte, opts *ParseOptions) (*etree.Document, error) {
	if opts == nil {
		opts = &ParseOptions{}
	}

	text, err := decode(data, opts.Encoding)
	if err != nil {
		return nil, err
	}
	if len(opts.Replacements) > 0 {
		text = opts.Replacements.Apply(text)
	}

	doc := etree.NewDocument()
	// PreserveCData off: CDATA sections arrive as plain text nodes.
	doc.ReadSettings.PreserveCData = false
	// The text has already been transcoded to UTF-8; whatever the XML
	// declaration claims, read the bytes as-is.
	doc.ReadSettings.CharsetReader = func(charset string, input io.Reader) (io.Reader, error) {
		return input, nil
	}
	if err := doc.ReadFromString(text); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	if doc.Root() == nil {
		return nil, fmt.Errorf("%w: document has no root element", ErrParse)
	}

	stripNonContent(doc)
	NormalizeDocument(doc)
	return doc, nil
}

// decode converts data to a UTF-8 string according to the named IANA
// charset. Unknown names and undecodable input wrap ErrRead.
func decode(data []byte, name string) (string, error) {
	if name == "" {
		name = DefaultEncoding
	}
	// Strict fast path for UTF-8: the x/text decoder substitutes U+FFFD
	// for ill-formed sequences, but garbage input must be an error here.
	if strings.EqualFold(name, "UTF-8") || strings.EqualFold(name, "UTF8") {
		if !utf8.Valid(data) {
			return "", fmt.Errorf("%w: input is not valid UTF-8", ErrRead)
		}
		return string(data), nil
	}
	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil || enc == nil {
		return "", fmt.Errorf("%w: unsupported encoding %q", ErrRead, name)
	}
	out, err := enc.NewDecoder().Bytes(data)
	if err != nil {
		return "", fmt.Errorf("%w: decoding %s input: %v", ErrRead, name, err)
	}
	if !utf8.Valid(out) {
		return "", fmt.Errorf("%w: input is not valid %s", ErrRead, name)
	}
	return string(out), nil
}

// stripNonContent drops comment tokens from the whole tree and prolog
// tokens (declaration, doctype) from the document level. Processing
// instructions below the root stay put.
func stripNonContent(doc *etree.Document) {
	for i := len(doc.Child) - 1; i >= 0; i-- {
		switch doc.Child[i].(type) {
		case *etree.ProcInst, *etree.Directive:
			doc.RemoveChildAt(i)
		}
	}
	stack := []*etree.Element{&doc.Element}
	for len(stack) > 0 {
		el := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for i := len(el.Child) - 1; i >= 0; i-- {
			switch c := el.Child[i].(type) {
			case *etree.Comment:
				el.RemoveChildAt(i)
			case *etree.Element:
				stack = append(stack, c)
			}
		}
	}
}
