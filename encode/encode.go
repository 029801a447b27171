package encode

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/signadot/xml-format/go-xml/debug"
	"github.com/signadot/xml-format/go-xml/dom"
)

type EncState struct {
	depth, indent int

	format bool
	decl   bool

	Color func(dom.Kind, ColorAttr, string) string
}

// Encode serializes the subtree rooted at node to w.  By default the
// output is compact; EncodeIndent(true) selects 2-space indented
// layout, EncodeDecl(true) prepends the XML declaration.
func Encode(node *dom.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		indent: 2,
	}
	for _, opt := range opts {
		opt(es)
	}
	if debug.Encode() {
		debug.Logf("encode: %s <%s> format=%v\n", node.Kind, node.Name, es.format)
	}
	if err := encodeTree(node, w, es); err != nil {
		return fmt.Errorf("%w: %v", ErrEncode, err)
	}
	return nil
}

func encodeTree(node *dom.Node, w io.Writer, es *EncState) error {
	if es.decl {
		if err := writeString(w, xml.Header[:len(xml.Header)-1]); err != nil {
			return err
		}
		if es.format {
			if err := writeString(w, "\n"); err != nil {
				return err
			}
		}
	}
	if err := encode(node, w, es); err != nil {
		return err
	}
	if es.format {
		return writeString(w, "\n")
	}
	return nil
}

func encode(n *dom.Node, w io.Writer, es *EncState) error {
	switch n.Kind {
	case dom.TextKind:
		return writeColored(w, es, dom.TextKind, ValueColor, escape(n.Text))
	case dom.CommentKind:
		return writeColored(w, es, dom.CommentKind, ValueColor, "<!--"+n.Text+"-->")
	case dom.ProcInstKind:
		return writeColored(w, es, dom.ProcInstKind, ValueColor, "<?"+n.Name+" "+n.Text+"?>")
	case dom.ElementKind:
		return encodeElement(n, w, es)
	}
	return fmt.Errorf("cannot encode %s node", n.Kind)
}

func encodeElement(n *dom.Node, w io.Writer, es *EncState) error {
	if err := writeColored(w, es, dom.ElementKind, SepColor, "<"); err != nil {
		return err
	}
	if err := writeColored(w, es, dom.ElementKind, TagColor, n.Name); err != nil {
		return err
	}
	for i := range n.Attrs {
		if err := encodeAttr(&n.Attrs[i], w, es); err != nil {
			return err
		}
	}
	if len(n.Children) == 0 {
		return writeColored(w, es, dom.ElementKind, SepColor, "/>")
	}
	if err := writeColored(w, es, dom.ElementKind, SepColor, ">"); err != nil {
		return err
	}
	if es.format && blockLayout(n) {
		es.depth++
		for _, c := range n.Children {
			if err := writeNL(w, es); err != nil {
				return err
			}
			if err := encode(c, w, es); err != nil {
				return err
			}
		}
		es.depth--
		if err := writeNL(w, es); err != nil {
			return err
		}
	} else {
		for _, c := range n.Children {
			if err := encode(c, w, es); err != nil {
				return err
			}
		}
	}
	if err := writeColored(w, es, dom.ElementKind, SepColor, "</"); err != nil {
		return err
	}
	if err := writeColored(w, es, dom.ElementKind, TagColor, n.Name); err != nil {
		return err
	}
	return writeColored(w, es, dom.ElementKind, SepColor, ">")
}

func encodeAttr(a *dom.Attr, w io.Writer, es *EncState) error {
	if err := writeString(w, " "); err != nil {
		return err
	}
	if err := writeColored(w, es, dom.ElementKind, AttrNameColor, a.Name); err != nil {
		return err
	}
	if err := writeColored(w, es, dom.ElementKind, SepColor, `="`); err != nil {
		return err
	}
	if err := writeColored(w, es, dom.ElementKind, AttrValueColor, escape(a.Value)); err != nil {
		return err
	}
	return writeColored(w, es, dom.ElementKind, SepColor, `"`)
}

// blockLayout reports whether n's children go one per line.  An
// element holding text keeps everything inline so the character data
// round-trips byte for byte.
func blockLayout(n *dom.Node) bool {
	for _, c := range n.Children {
		if c.Kind == dom.TextKind {
			return false
		}
	}
	return true
}

func writeNL(w io.Writer, es *EncState) error {
	return writeString(w, "\n"+strings.Repeat(" ", es.indent*es.depth))
}

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}

func writeColored(w io.Writer, es *EncState, k dom.Kind, attr ColorAttr, s string) error {
	if es.Color != nil {
		s = es.Color(k, attr, s)
	}
	return writeString(w, s)
}

func escape(s string) string {
	buf := bytes.NewBuffer(nil)
	_ = xml.EscapeText(buf, []byte(s))
	return buf.String()
}
