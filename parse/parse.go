// Package parse provides XML parsing support.
package parse

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/signadot/xml-format/go-xml/debug"
	"github.com/signadot/xml-format/go-xml/dom"
)

// Parse parses d into a dom tree and returns its root element.  The
// underlying tokenizer is encoding/xml in strict mode; anything it
// rejects surfaces wrapped in ErrParse.
//
// Namespace declarations (xmlns, xmlns:*) stay in the tree as
// ordinary attributes, so re-encoding reproduces them.  The tokenizer
// resolves prefixed names to namespace URIs and discards the prefix;
// a prefixed element or attribute name cannot be reconstructed from
// the token stream, so such input fails with ErrParse rather than
// being rewritten.
func Parse(d []byte, opts ...ParseOption) (*dom.Node, error) {
	pOpts := &parseOpts{}
	for _, f := range opts {
		f(pOpts)
	}
	if pOpts.schema != nil {
		if err := pOpts.schema.Validate(bytes.NewReader(d)); err != nil {
			return nil, fmt.Errorf("%w: schema validation: %v", ErrParse, err)
		}
	}
	root, err := tokenize(xml.NewDecoder(bytes.NewReader(d)), pOpts)
	if err != nil {
		return nil, err
	}
	if debug.Parse() {
		debug.Logf("parse: %d bytes, root <%s>\n", len(d), root.Name)
	}
	return root, nil
}

// ParseReader reads r to the end and parses its contents.  Schema
// validation via ParseSchema needs the raw bytes, so the input is
// buffered rather than streamed.
func ParseReader(r io.Reader, opts ...ParseOption) (*dom.Node, error) {
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	return Parse(d, opts...)
}

func tokenize(dec *xml.Decoder, opts *parseOpts) (*dom.Node, error) {
	var (
		root  *dom.Node
		stack []*dom.Node
		// in-scope default namespace per open element
		defaults []string
	)
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrParse, err)
		}
		switch tok := tok.(type) {
		case xml.StartElement:
			if len(stack) == 0 && root != nil {
				return nil, fmt.Errorf("%w: content after document element", ErrParse)
			}
			ns := ""
			if n := len(defaults); n > 0 {
				ns = defaults[n-1]
			}
			for _, a := range tok.Attr {
				if a.Name.Space == "" && a.Name.Local == "xmlns" {
					ns = a.Value
				}
			}
			// an unprefixed name resolves to exactly the in-scope
			// default namespace; anything else carried a prefix
			if tok.Name.Space != ns {
				return nil, fmt.Errorf("%w: namespace-prefixed element <%s>", ErrParse, tok.Name.Local)
			}
			el := dom.NewElement(tok.Name.Local)
			for _, a := range tok.Attr {
				name, err := attrName(a.Name)
				if err != nil {
					return nil, err
				}
				el.SetAttr(name, a.Value)
			}
			if len(stack) == 0 {
				root = el
			} else {
				stack[len(stack)-1].AppendChild(el)
			}
			stack = append(stack, el)
			defaults = append(defaults, ns)
		case xml.EndElement:
			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			defaults = defaults[:len(defaults)-1]
			if !opts.keepSpace {
				stripSpace(top)
			}
		case xml.CharData:
			if len(stack) == 0 {
				if strings.TrimSpace(string(tok)) != "" {
					return nil, fmt.Errorf("%w: text outside document element", ErrParse)
				}
				continue
			}
			appendText(stack[len(stack)-1], string(tok))
		case xml.Comment:
			if opts.keepComments && len(stack) > 0 {
				stack[len(stack)-1].AppendChild(dom.NewComment(string(tok)))
			}
		case xml.ProcInst:
			// the XML declaration is never content; other targets are
			// retained on request
			if opts.keepProcInst && len(stack) > 0 && tok.Target != "xml" {
				stack[len(stack)-1].AppendChild(dom.NewProcInst(tok.Target, string(tok.Inst)))
			}
		case xml.Directive:
			// DOCTYPE is not part of the tree
		}
	}
	if root == nil {
		return nil, fmt.Errorf("%w: no document element", ErrParse)
	}
	return root, nil
}

// attrName maps a decoded attribute name back to its source form.
// Namespace declarations come through with "xmlns" in either half of
// the xml.Name, and the reserved xml prefix is always bound to the
// same namespace; other prefixed attributes are unrepresentable.
func attrName(n xml.Name) (string, error) {
	switch n.Space {
	case "":
		return n.Local, nil
	case "xmlns":
		return "xmlns:" + n.Local, nil
	case "xml", "http://www.w3.org/XML/1998/namespace":
		return "xml:" + n.Local, nil
	}
	return "", fmt.Errorf("%w: namespace-prefixed attribute %q", ErrParse, n.Local)
}

// appendText coalesces adjacent character data into a single text
// child, as CDATA sections and entity references arrive as separate
// tokens.  Empty tokens (an empty CDATA section) are dropped: they
// have no representation that would survive a round trip.
func appendText(el *dom.Node, v string) {
	if v == "" {
		return
	}
	if n := len(el.Children); n > 0 && el.Children[n-1].Kind == dom.TextKind {
		el.Children[n-1].Text += v
		return
	}
	el.AppendChild(dom.NewText(v))
}

// stripSpace drops whitespace-only text children from elements that
// have element children.  Indentation between child elements is
// markup layout, not content; an element whose only children are text
// keeps its text verbatim.
func stripSpace(el *dom.Node) {
	hasElement := false
	for _, c := range el.Children {
		if c.Kind == dom.ElementKind {
			hasElement = true
			break
		}
	}
	if !hasElement {
		return
	}
	kept := el.Children[:0]
	for _, c := range el.Children {
		if c.Kind == dom.TextKind && strings.TrimSpace(c.Text) == "" {
			c.Parent = nil
			continue
		}
		c.ParentIndex = len(kept)
		kept = append(kept, c)
	}
	el.Children = kept
}
