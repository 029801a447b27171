package xml

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func mustRoot(t *testing.T, name string) *Node {
	t.Helper()
	root, err := New().AddRoot(name)
	if err != nil {
		t.Fatal(err)
	}
	return root
}

func TestTextContent(t *testing.T) {
	n := mustRoot(t, "a")
	if n.HasText() || n.Text() != "" {
		t.Fatal("fresh element has text")
	}
	for _, s := range []string{"hello", "", "  spaced  ", "a<b&c"} {
		if err := n.SetText(s); err != nil {
			t.Fatalf("SetText(%q): %v", s, err)
		}
		if !n.HasText() {
			t.Fatalf("HasText after SetText(%q) = false", s)
		}
		if got := n.Text(); got != s {
			t.Fatalf("Text = %q, want %q", got, s)
		}
	}
	n.RemoveText()
	if n.HasText() {
		t.Fatal("text survives RemoveText")
	}
	n.RemoveText() // idempotent
}

func TestContentChildrenExclusivity(t *testing.T) {
	n := mustRoot(t, "a")
	if err := n.SetText("content"); err != nil {
		t.Fatal(err)
	}
	if _, err := n.AddChild("b"); !errors.Is(err, ErrStructure) {
		t.Fatalf("AddChild on text node: %v", err)
	}

	m := mustRoot(t, "a")
	if _, err := m.AddChild("b"); err != nil {
		t.Fatal(err)
	}
	if err := m.SetText("content"); !errors.Is(err, ErrStructure) {
		t.Fatalf("SetText with child elements: %v", err)
	}

	// removing the text unblocks structural children again
	n.RemoveText()
	if _, err := n.AddChild("b"); err != nil {
		t.Fatal(err)
	}
}

func TestAttributes(t *testing.T) {
	n := mustRoot(t, "a")
	n.SetAttribute("s", "hello")
	n.SetAttribute("b", true)
	n.SetAttribute("nb", false)
	n.SetAttribute("i", -42)
	n.SetAttribute("l", int64(1)<<40)
	n.SetAttribute("f", float32(1.5))
	n.SetAttribute("d", 2.25)
	n.SetAttribute("hex", "ff")

	if v, err := n.StringAttribute("s"); err != nil || v != "hello" {
		t.Errorf("StringAttribute = %q, %v", v, err)
	}
	if v, err := n.BoolAttribute("b"); err != nil || v != true {
		t.Errorf("BoolAttribute(b) = %v, %v", v, err)
	}
	if v, err := n.BoolAttribute("nb"); err != nil || v != false {
		t.Errorf("BoolAttribute(nb) = %v, %v", v, err)
	}
	if v, err := n.IntAttribute("i"); err != nil || v != -42 {
		t.Errorf("IntAttribute = %d, %v", v, err)
	}
	if v, err := n.Int64Attribute("l"); err != nil || v != 1<<40 {
		t.Errorf("Int64Attribute = %d, %v", v, err)
	}
	if v, err := n.Float32Attribute("f"); err != nil || v != 1.5 {
		t.Errorf("Float32Attribute = %v, %v", v, err)
	}
	if v, err := n.Float64Attribute("d"); err != nil || v != 2.25 {
		t.Errorf("Float64Attribute = %v, %v", v, err)
	}
	if v, err := n.IntAttributeBase("hex", 16); err != nil || v != 255 {
		t.Errorf("IntAttributeBase(hex, 16) = %d, %v", v, err)
	}

	// booleans serialize as literals, not numerically
	if v, _ := n.StringAttribute("b"); v != "true" {
		t.Errorf("bool attr stored as %q", v)
	}
	if v, _ := n.StringAttribute("nb"); v != "false" {
		t.Errorf("bool attr stored as %q", v)
	}
}

func TestAttributeBoolForms(t *testing.T) {
	n := mustRoot(t, "a")
	tests := []struct {
		raw string
		v   bool
		e   error
	}{
		{raw: "true", v: true},
		{raw: "false", v: false},
		{raw: " True\t", v: true},
		{raw: "FALSE", v: false},
		{raw: "1", e: ErrConversion},
		{raw: "0", e: ErrConversion},
		{raw: "yes", e: ErrConversion},
	}
	for _, tt := range tests {
		n.SetAttribute("v", tt.raw)
		v, err := n.BoolAttribute("v")
		if tt.e != nil {
			if !errors.Is(err, tt.e) {
				t.Errorf("BoolAttribute(%q): %v", tt.raw, err)
			}
			continue
		}
		if err != nil || v != tt.v {
			t.Errorf("BoolAttribute(%q) = %v, %v", tt.raw, v, err)
		}
	}
}

func TestAttributeErrors(t *testing.T) {
	n := mustRoot(t, "a")
	n.SetAttribute("num", "12x")
	n.SetAttribute("empty", "")

	if _, err := n.StringAttribute("absent"); !errors.Is(err, ErrAttribute) {
		t.Errorf("absent: %v", err)
	}
	if _, err := n.StringAttribute("empty"); !errors.Is(err, ErrAttribute) {
		t.Errorf("empty: %v", err)
	}
	if _, err := n.IntAttribute("absent"); !errors.Is(err, ErrAttribute) {
		t.Errorf("typed absent: %v", err)
	}
	if _, err := n.IntAttribute("num"); !errors.Is(err, ErrConversion) {
		t.Errorf("malformed int: %v", err)
	}
	if _, err := n.Float64Attribute("num"); !errors.Is(err, ErrConversion) {
		t.Errorf("malformed float: %v", err)
	}

	if !n.HasAttribute("empty") || n.HasAttribute("absent") {
		t.Error("HasAttribute wrong")
	}
	n.RemoveAttribute("num")
	if n.HasAttribute("num") {
		t.Error("attribute survives RemoveAttribute")
	}
	n.RemoveAttribute("num") // no-op
}

func TestChildren(t *testing.T) {
	doc, err := Parse([]byte(`<r>hello<e2/><e3/></r>`), false)
	if err != nil {
		t.Fatal(err)
	}
	root := doc.Root()

	var names []string
	for c := range root.Children() {
		names = append(names, c.Name())
	}
	if diff := cmp.Diff([]string{"e2", "e3"}, names); diff != "" {
		t.Errorf("children (-want +got):\n%s", diff)
	}
	if got := root.ChildCount(); got != 2 {
		t.Errorf("ChildCount = %d", got)
	}

	// sequences are independent and restartable
	seq := root.Children()
	first := 0
	for range seq {
		first++
		break
	}
	second := 0
	for range seq {
		second++
	}
	if first != 1 || second != 2 {
		t.Errorf("restart: first=%d second=%d", first, second)
	}
}

func TestRemoveChild(t *testing.T) {
	root := mustRoot(t, "r")
	a, _ := root.AddChild("a")
	b, _ := root.AddChild("b")

	stranger := mustRoot(t, "x")
	if err := root.RemoveChild(stranger); !errors.Is(err, ErrStructure) {
		t.Fatalf("removing non-child: %v", err)
	}
	grandchild, _ := a.AddChild("g")
	if err := root.RemoveChild(grandchild); !errors.Is(err, ErrStructure) {
		t.Fatalf("removing grandchild: %v", err)
	}

	if err := root.RemoveChild(a); err != nil {
		t.Fatal(err)
	}
	for c := range root.Children() {
		if c.Name() == "a" {
			t.Fatal("removed child still present")
		}
	}
	if root.ChildCount() != 1 {
		t.Fatalf("ChildCount = %d", root.ChildCount())
	}
	_ = b
}

func TestParent(t *testing.T) {
	root := mustRoot(t, "r")
	if root.Parent() != nil {
		t.Fatal("root has a parent")
	}
	c, _ := root.AddChild("c")
	p := c.Parent()
	if p == nil || p.Name() != "r" {
		t.Fatal("Parent wrong")
	}
	// fresh handles, same element
	if p == root || !p.Equals(root) {
		t.Fatal("parent handle not a fresh equal view")
	}
}

func TestAdoptChildCopy(t *testing.T) {
	root := mustRoot(t, "r")
	src, _ := root.AddChild("src")
	item, _ := src.AddChild("item")
	item.SetAttribute("k", "v")

	dst, _ := root.AddChild("dst")
	dup, err := dst.AdoptChild(item, true)
	if err != nil {
		t.Fatal(err)
	}
	if src.ChildCount() != 1 {
		t.Fatal("copy detached the original")
	}
	if !dup.Equals(item) {
		t.Fatal("copy not structurally equal")
	}
	// the duplicate is independently mutable
	dup.SetAttribute("k", "changed")
	if dup.Equals(item) {
		t.Fatal("duplicate shares storage with original")
	}
	if v, _ := item.StringAttribute("k"); v != "v" {
		t.Fatal("mutating duplicate changed original")
	}
}

func TestAdoptChildMove(t *testing.T) {
	root := mustRoot(t, "r")
	src, _ := root.AddChild("src")
	item, _ := src.AddChild("item")
	dst, _ := root.AddChild("dst")

	moved, err := dst.AdoptChild(item, false)
	if err != nil {
		t.Fatal(err)
	}
	if src.ChildCount() != 0 {
		t.Fatal("move left the original in place")
	}
	if dst.ChildCount() != 1 || !moved.Equals(item) {
		t.Fatal("move did not attach the subtree")
	}
	if p := moved.Parent(); p == nil || p.Name() != "dst" {
		t.Fatal("moved node has wrong parent")
	}
}

func TestAdoptChildCycle(t *testing.T) {
	root := mustRoot(t, "r")
	a, _ := root.AddChild("a")
	b, _ := a.AddChild("b")

	if _, err := b.AdoptChild(a, false); !errors.Is(err, ErrStructure) {
		t.Fatalf("move ancestor under descendant: %v", err)
	}
	if _, err := a.AdoptChild(a, false); !errors.Is(err, ErrStructure) {
		t.Fatalf("move node under itself: %v", err)
	}
	// copying an ancestor is allowed, the copy is a distinct subtree
	if _, err := b.AdoptChild(a, true); err != nil {
		t.Fatalf("copy ancestor: %v", err)
	}
}

func TestAdoptChildAcrossDocuments(t *testing.T) {
	docA := New()
	ra, _ := docA.AddRoot("ra")
	ra.SetAttribute("from", "a")
	docB := New()
	rb, _ := docB.AddRoot("rb")

	// each document owns its tree; a move may not share storage
	if _, err := rb.AdoptChild(ra, false); !errors.Is(err, ErrStructure) {
		t.Fatalf("cross-document move: %v", err)
	}
	out, err := docA.Dump(false)
	if err != nil {
		t.Fatal(err)
	}
	if want := `<?xml version="1.0" encoding="UTF-8"?><ra from="a"/>`; out != want {
		t.Fatalf("source document changed: %q", out)
	}
	if rb.ChildCount() != 0 {
		t.Fatal("rejected move still attached the subtree")
	}

	// copying across documents duplicates storage
	dup, err := rb.AdoptChild(ra, true)
	if err != nil {
		t.Fatal(err)
	}
	dup.SetAttribute("from", "b")
	if v, _ := ra.StringAttribute("from"); v != "a" {
		t.Fatal("copy shares storage across documents")
	}
}

func TestAdoptChildTextContent(t *testing.T) {
	root := mustRoot(t, "r")
	a, _ := root.AddChild("a")
	if err := a.SetText("text"); err != nil {
		t.Fatal(err)
	}
	b, _ := root.AddChild("b")
	if _, err := a.AdoptChild(b, false); !errors.Is(err, ErrStructure) {
		t.Fatalf("adopt into text node: %v", err)
	}
}

func TestNodeDump(t *testing.T) {
	root := mustRoot(t, "r")
	c, _ := root.AddChild("c")
	c.SetAttribute("k", "v")

	out, err := c.Dump(false)
	if err != nil {
		t.Fatal(err)
	}
	if want := `<c k="v"/>`; out != want {
		t.Errorf("got %q, want %q", out, want)
	}
}

func TestEquals(t *testing.T) {
	build := func() *Document {
		doc := New()
		root, _ := doc.AddRoot("cfg")
		s, _ := root.AddChild("server")
		s.SetAttribute("port", 80)
		n, _ := s.AddChild("name")
		n.SetText("web")
		return doc
	}
	a, b := build(), build()
	if !a.Root().Equals(b.Root()) {
		t.Fatal("identically built documents differ")
	}
	b.Root().SetAttribute("extra", true)
	if a.Root().Equals(b.Root()) {
		t.Fatal("diverged documents equal")
	}
	if a.Root().Equals(nil) {
		t.Fatal("Equals(nil) = true")
	}
}

func TestRoundTrip(t *testing.T) {
	doc := New()
	root, err := doc.AddRoot("library")
	if err != nil {
		t.Fatal(err)
	}
	for _, title := range []string{"first", "second"} {
		book, err := root.AddChild("book")
		if err != nil {
			t.Fatal(err)
		}
		book.SetAttribute("title", title)
		book.SetAttribute("pages", 123)
		book.SetAttribute("inPrint", true)
		blurb, err := book.AddChild("blurb")
		if err != nil {
			t.Fatal(err)
		}
		if err := blurb.SetText("a & b < c"); err != nil {
			t.Fatal(err)
		}
	}

	out, err := doc.Dump(false)
	if err != nil {
		t.Fatal(err)
	}
	back, err := Parse([]byte(out), false)
	if err != nil {
		t.Fatalf("re-parse of %q: %v", out, err)
	}
	if !doc.Root().Equals(back.Root()) {
		t.Fatalf("round trip changed document: %s", out)
	}

	// formatted output parses back to the same tree too
	out, err = doc.Dump(true)
	if err != nil {
		t.Fatal(err)
	}
	back, err = Parse([]byte(out), false)
	if err != nil {
		t.Fatal(err)
	}
	if !doc.Root().Equals(back.Root()) {
		t.Fatalf("formatted round trip changed document:\n%s", out)
	}
}
