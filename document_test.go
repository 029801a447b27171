package xml

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"
)

func TestAddRoot(t *testing.T) {
	doc := New()
	if doc.Root() != nil {
		t.Fatal("empty document has a root")
	}
	root, err := doc.AddRoot("config")
	if err != nil {
		t.Fatal(err)
	}
	if root.Name() != "config" {
		t.Fatalf("root name = %q", root.Name())
	}
	if doc.Root() == nil || doc.Root().Name() != "config" {
		t.Fatal("Root() does not see the added root")
	}
	if _, err := doc.AddRoot("other"); !errors.Is(err, ErrStructure) {
		t.Fatalf("second AddRoot: %v", err)
	}
	if _, err := New().AddRoot(""); !errors.Is(err, ErrStructure) {
		t.Fatalf("empty name AddRoot: %v", err)
	}
}

func TestDump(t *testing.T) {
	doc := New()
	root, _ := doc.AddRoot("a")
	c, _ := root.AddChild("b")
	c.SetAttribute("k", "v")

	out, err := doc.Dump(false)
	if err != nil {
		t.Fatal(err)
	}
	if want := `<?xml version="1.0" encoding="UTF-8"?><a><b k="v"/></a>`; out != want {
		t.Errorf("got %q, want %q", out, want)
	}

	out, err = doc.Dump(true)
	if err != nil {
		t.Fatal(err)
	}
	if want := "<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n<a>\n  <b k=\"v\"/>\n</a>\n"; out != want {
		t.Errorf("got %q, want %q", out, want)
	}
}

func TestDumpNoRoot(t *testing.T) {
	if _, err := New().Dump(false); !errors.Is(err, ErrStructure) {
		t.Fatalf("got %v", err)
	}
}

func TestRead(t *testing.T) {
	doc, err := Read(strings.NewReader(`<a><b/></a>`), false)
	if err != nil {
		t.Fatal(err)
	}
	if doc.Root().ChildCount() != 1 {
		t.Fatal("parsed tree wrong")
	}
}

func TestParseMalformed(t *testing.T) {
	for _, in := range []string{``, `<a>`, `<a></b>`, `plain text`} {
		if _, err := Parse([]byte(in), false); !errors.Is(err, ErrParse) {
			t.Errorf("Parse(%q): %v", in, err)
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.xml")
	if _, err := Load(path, false); !errors.Is(err, ErrParse) {
		t.Fatalf("got %v", err)
	}
}

func TestWriteFileLoad(t *testing.T) {
	doc := New()
	root, _ := doc.AddRoot("cfg")
	srv, _ := root.AddChild("server")
	srv.SetAttribute("port", 8080)
	srv.SetAttribute("tls", true)
	name, _ := srv.AddChild("name")
	if err := name.SetText("web"); err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(t.TempDir(), "cfg.xml")
	if err := doc.WriteFile(path, true); err != nil {
		t.Fatal(err)
	}
	back, err := Load(path, false)
	if err != nil {
		t.Fatal(err)
	}
	if !doc.Root().Equals(back.Root()) {
		out, _ := back.Dump(false)
		t.Fatalf("reloaded document differs: %s", out)
	}
}

func TestWriteFileBadPath(t *testing.T) {
	doc := New()
	doc.AddRoot("a")
	path := filepath.Join(t.TempDir(), "missing", "dir", "cfg.xml")
	if err := doc.WriteFile(path, false); !errors.Is(err, ErrIO) {
		t.Fatalf("got %v", err)
	}
}
