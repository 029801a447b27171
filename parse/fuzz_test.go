package parse

import (
	"testing"

	"github.com/signadot/xml-format/go-xml/dom"
	"github.com/signadot/xml-format/go-xml/encode"
)

func FuzzParse(f *testing.F) {
	seeds := []string{
		`<a/>`,
		`<a b="c"/>`,
		`<a>text</a>`,
		`<a><b/><c/></a>`,
		`<a>mixed <b/> content</a>`,
		`<a b="&amp;">x &lt; y</a>`,
		`<a>one<![CDATA[ & two]]></a>`,
		"<cfg>\n  <server port=\"80\"/>\n</cfg>",
		`<?xml version="1.0"?><a/>`,
		`<a xmlns="urn:x"><b/></a>`,
		`<p:a xmlns:p="urn:x"/>`,
		`<!-- c --><a><!-- d --></a>`,
		`<a`,
		`</a>`,
		`not xml`,
	}
	for _, seed := range seeds {
		f.Add([]byte(seed))
	}
	f.Fuzz(func(t *testing.T, data []byte) {
		root, err := Parse(data)
		if err != nil {
			return
		}
		// anything that parses must re-encode and re-parse to an
		// equal tree
		out := encode.MustString(root)
		root2, err := Parse([]byte(out))
		if err != nil {
			t.Fatalf("re-parse of %q: %v", out, err)
		}
		if !dom.Equal(root, root2) {
			t.Fatalf("round trip changed tree: %q", out)
		}
	})
}
