package encode

import (
	"fmt"

	"github.com/signadot/xml-format/go-xml/dom"

	"github.com/fatih/color"
)

type Colorable struct {
	Kind dom.Kind
	Attr ColorAttr
}

type ColorAttr int

const (
	TagColor ColorAttr = iota
	AttrNameColor
	AttrValueColor
	ValueColor
	SepColor
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[Colorable]func(string, ...any) string
}

func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map:     map[Colorable]func(string, ...any) string{},
	}
	able := Colorable{Kind: dom.ElementKind}

	able.Attr = TagColor
	colors.Map[able] = color.RGB(74, 92, 138).SprintfFunc()
	able.Attr = AttrNameColor
	colors.Map[able] = color.RGB(196, 96, 16).SprintfFunc()
	able.Attr = AttrValueColor
	colors.Map[able] = color.RGB(128, 216, 236).SprintfFunc()
	able.Attr = SepColor
	colors.Map[able] = color.RGB(255, 0, 196).SprintfFunc()

	colors.Map[Colorable{Kind: dom.TextKind, Attr: ValueColor}] = color.CyanString
	colors.Map[Colorable{Kind: dom.CommentKind, Attr: ValueColor}] = color.BlueString
	colors.Map[Colorable{Kind: dom.ProcInstKind, Attr: ValueColor}] = color.RGB(168, 0, 196).SprintfFunc()
	return colors
}

func (c *Colors) Color(k dom.Kind, attr ColorAttr, s string) string {
	f, ok := c.Map[Colorable{Kind: k, Attr: attr}]
	if !ok {
		f = c.Default
	}
	return f("%s", s)
}

func colorDefault(format string, args ...any) string {
	return fmt.Sprintf(format, args...)
}
