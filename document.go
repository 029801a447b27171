package xml

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/jacoelho/xsd"

	"github.com/signadot/xml-format/go-xml/dom"
	"github.com/signadot/xml-format/go-xml/encode"
	"github.com/signadot/xml-format/go-xml/parse"
)

// Document owns an XML tree for its lifetime.  A Document has zero or
// one root element; once a root is set, by parsing or AddRoot, it
// cannot be replaced.
//
// Documents and the Nodes derived from them share one mutable tree
// with no internal locking.  Concurrent use requires external
// synchronization.
type Document struct {
	root *dom.Node
}

// New returns an empty Document with no root element.
func New() *Document {
	return &Document{}
}

// Parse parses d into a Document.  With validate set, the input is
// additionally validated against the XSD schema the document
// references via xsi:noNamespaceSchemaLocation or xsi:schemaLocation;
// a document referencing no schema passes as long as it is
// well-formed.  An explicit schema can be supplied instead with
// parse.ParseSchema.
func Parse(d []byte, validate bool, opts ...parse.ParseOption) (*Document, error) {
	return parseDoc(d, validate, ".", opts)
}

// Read reads r to the end and parses its contents as Parse does.
// Relative schema references resolve against the working directory.
func Read(r io.Reader, validate bool, opts ...parse.ParseOption) (*Document, error) {
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	return parseDoc(d, validate, ".", opts)
}

// Load reads and parses the named file.  Relative schema references
// resolve against the file's directory.
func Load(path string, validate bool, opts ...parse.ParseOption) (*Document, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	return parseDoc(d, validate, filepath.Dir(path), opts)
}

func parseDoc(d []byte, validate bool, dir string, opts []parse.ParseOption) (*Document, error) {
	root, err := parse.Parse(d, opts...)
	if err != nil {
		return nil, err
	}
	if validate {
		if err := validateReferenced(d, root, dir); err != nil {
			return nil, err
		}
	}
	return &Document{root: root}, nil
}

// validateReferenced validates d against the schema named by the
// root's schema-location hint, if any.
func validateReferenced(d []byte, root *dom.Node, dir string) error {
	loc := schemaLocation(root)
	if loc == "" {
		return nil
	}
	if !filepath.IsAbs(loc) {
		loc = filepath.Join(dir, loc)
	}
	s, err := xsd.LoadFile(loc)
	if err != nil {
		return fmt.Errorf("%w: load schema %s: %v", ErrParse, loc, err)
	}
	if err := s.Validate(bytes.NewReader(d)); err != nil {
		return fmt.Errorf("%w: schema validation: %v", ErrParse, err)
	}
	return nil
}

func schemaLocation(root *dom.Node) string {
	if v, ok := root.Attr("noNamespaceSchemaLocation"); ok {
		return v
	}
	// xsi:schemaLocation pairs namespace names with locations; the
	// location is the trailing field.
	if v, ok := root.Attr("schemaLocation"); ok {
		fields := strings.Fields(v)
		if len(fields) > 0 {
			return fields[len(fields)-1]
		}
	}
	return ""
}

// Root returns the document's root Node, or nil if no root has been
// set.
func (doc *Document) Root() *Node {
	if doc.root == nil {
		return nil
	}
	return &Node{doc: doc, el: doc.root}
}

// AddRoot creates an empty element named name and installs it as the
// document root.  It fails with ErrStructure if the document already
// has a root.
func (doc *Document) AddRoot(name string) (*Node, error) {
	if doc.root != nil {
		return nil, fmt.Errorf("%w: document already has a root element", ErrStructure)
	}
	if name == "" {
		return nil, fmt.Errorf("%w: empty root element name", ErrStructure)
	}
	doc.root = dom.NewElement(name)
	return &Node{doc: doc, el: doc.root}, nil
}

// Write serializes the document to w, with the XML declaration.
// format selects 2-space indented layout over compact output.
func (doc *Document) Write(w io.Writer, format bool) error {
	if doc.root == nil {
		return fmt.Errorf("%w: document has no root element", ErrStructure)
	}
	return encode.Encode(doc.root, w,
		encode.EncodeDecl(true),
		encode.EncodeIndent(format))
}

// WriteFile creates or truncates the named file and writes the
// document's XML representation into it.
func (doc *Document) WriteFile(path string, format bool) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrIO, err)
	}
	err = doc.Write(f, format)
	if cerr := f.Close(); err == nil && cerr != nil {
		err = fmt.Errorf("%w: %v", ErrIO, cerr)
	}
	return err
}

// Dump returns the serialized document as a string.
func (doc *Document) Dump(format bool) (string, error) {
	buf := bytes.NewBuffer(nil)
	if err := doc.Write(buf, format); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Validate serializes the current tree and validates it against s.
func (doc *Document) Validate(s *xsd.Schema) error {
	if doc.root == nil {
		return fmt.Errorf("%w: document has no root element", ErrStructure)
	}
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(doc.root, buf); err != nil {
		return err
	}
	if err := s.Validate(bytes.NewReader(buf.Bytes())); err != nil {
		return fmt.Errorf("%w: schema validation: %v", ErrParse, err)
	}
	return nil
}
