package document

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/beevik/etree"
)

func TestParseBasic(t *testing.T) {
	doc, err := NewLoader().Parse([]byte("<beans><bean id=\"a\"/></beans>"), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.Root() == nil || doc.Root().Tag != "beans" {
		t.Fatalf("expected root <beans>, got %+v", doc.Root())
	}
}

func TestParseMalformed(t *testing.T) {
	_, err := NewLoader().Parse([]byte("<a><b></a>"), nil)
	if err == nil {
		t.Fatal("expected error for mismatched tags")
	}
	if !errors.Is(err, ErrParse) {
		t.Errorf("expected ErrParse, got %v", err)
	}
}

func TestParseEmpty(t *testing.T) {
	_, err := NewLoader().Parse(nil, nil)
	if err == nil {
		t.Fatal("expected error for empty input")
	}
	if !errors.Is(err, ErrParse) {
		t.Errorf("expected ErrParse, got %v", err)
	}
}

func TestParseAppliesReplacements(t *testing.T) {
	opts := &ParseOptions{
		Replacements: Replacements{
			{Search: "@TAG@", Replace: "server"},
			{Search: "@PORT@", Replace: "8080"},
		},
	}
	doc, err := NewLoader().Parse([]byte("<@TAG@>@PORT@</@TAG@>"), opts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	root := doc.Root()
	if root.Tag != "server" {
		t.Errorf("expected root <server>, got <%s>", root.Tag)
	}
	if root.Text() != "8080" {
		t.Errorf("expected text 8080, got %q", root.Text())
	}
}

func TestParseCoalescesCData(t *testing.T) {
	doc, err := NewLoader().Parse([]byte("<a><![CDATA[x < y]]></a>"), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	root := doc.Root()
	if len(root.Child) != 1 {
		t.Fatalf("expected 1 child, got %d", len(root.Child))
	}
	cd, ok := root.Child[0].(*etree.CharData)
	if !ok {
		t.Fatalf("expected text child, got %T", root.Child[0])
	}
	if cd.IsCData() {
		t.Error("CDATA section should have been coalesced into plain text")
	}
	if cd.Data != "x < y" {
		t.Errorf("expected text %q, got %q", "x < y", cd.Data)
	}
}

func TestParseDropsComments(t *testing.T) {
	doc, err := NewLoader().Parse([]byte("<a><!-- note --><b><!-- inner --></b></a>"), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var comments int
	stack := []*etree.Element{&doc.Element}
	for len(stack) > 0 {
		el := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, child := range el.Child {
			switch c := child.(type) {
			case *etree.Comment:
				comments++
			case *etree.Element:
				stack = append(stack, c)
			}
		}
	}
	if comments != 0 {
		t.Errorf("expected comments to be dropped, found %d", comments)
	}
}

func TestParseKeepsBodyProcessingInstructions(t *testing.T) {
	doc, err := NewLoader().Parse([]byte("<a><?target data?><b/></a>"), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var pi *etree.ProcInst
	for _, child := range doc.Root().Child {
		if p, ok := child.(*etree.ProcInst); ok {
			pi = p
		}
	}
	if pi == nil {
		t.Fatal("expected the processing instruction inside the body to survive")
	}
	if pi.Target != "target" {
		t.Errorf("expected target %q, got %q", "target", pi.Target)
	}
}

func TestParseDropsDeclaration(t *testing.T) {
	doc, err := NewLoader().Parse([]byte("<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n<a/>"), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(doc.Child) != 1 {
		t.Fatalf("expected the root element to be the only document child, got %d", len(doc.Child))
	}
	if _, ok := doc.Child[0].(*etree.Element); !ok {
		t.Errorf("expected element, got %T", doc.Child[0])
	}
}

func TestParseLatin1(t *testing.T) {
	// 0xE9 is é in ISO-8859-1 and invalid on its own in UTF-8.
	data := []byte("<v>caf\xe9</v>")
	doc, err := NewLoader().Parse(data, &ParseOptions{Encoding: "ISO-8859-1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := doc.Root().Text(); got != "café" {
		t.Errorf("expected café, got %q", got)
	}
}

func TestParseInvalidUTF8(t *testing.T) {
	_, err := NewLoader().Parse([]byte("<v>caf\xe9</v>"), nil)
	if err == nil {
		t.Fatal("expected error for invalid UTF-8 input")
	}
	if !errors.Is(err, ErrRead) {
		t.Errorf("expected ErrRead, got %v", err)
	}
}

func TestParseUnknownEncoding(t *testing.T) {
	_, err := NewLoader().Parse([]byte("<a/>"), &ParseOptions{Encoding: "NO-SUCH-CHARSET"})
	if err == nil {
		t.Fatal("expected error for unknown encoding")
	}
	if !errors.Is(err, ErrRead) {
		t.Errorf("expected ErrRead, got %v", err)
	}
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.xml")
	if err := os.WriteFile(path, []byte("<a>\n  <b>v</b>\n</a>"), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	doc, err := NewLoader().ParseFile(path, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	root := doc.Root()
	if root.Tag != "a" {
		t.Fatalf("expected root <a>, got <%s>", root.Tag)
	}
	// The file's indentation whitespace must be gone.
	if len(root.Child) != 1 {
		t.Errorf("expected 1 child after normalization, got %d", len(root.Child))
	}
}

func TestParseFileMissing(t *testing.T) {
	_, err := NewLoader().ParseFile(filepath.Join(t.TempDir(), "absent.xml"), nil)
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !errors.Is(err, ErrRead) {
		t.Errorf("expected ErrRead, got %v", err)
	}
}

func TestParseFileUpwardRelativePath(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "sub"), 0o755); err != nil {
		t.Fatalf("creating subdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "test.xml"), []byte("<a>v</a>"), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	// A path with .. segments names a readable file and must load like
	// any other path.
	sep := string(filepath.Separator)
	path := filepath.Join(dir, "sub") + sep + ".." + sep + "test.xml"
	doc, err := NewLoader().ParseFile(path, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := doc.Root().Text(); got != "v" {
		t.Errorf("expected text v, got %q", got)
	}
}

func TestParseFileBackslashInName(t *testing.T) {
	if filepath.Separator == '\\' {
		t.Skip("backslash is the path separator on this platform")
	}
	path := filepath.Join(t.TempDir(), `odd\name.xml`)
	if err := os.WriteFile(path, []byte("<a/>"), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	doc, err := NewLoader().ParseFile(path, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.Root().Tag != "a" {
		t.Errorf("expected root <a>, got <%s>", doc.Root().Tag)
	}
}
