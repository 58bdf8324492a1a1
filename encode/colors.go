package encode

import (
	"fmt"

	"github.com/fatih/color"

	"github.com/flexon-format/go-flexon/data"
)

// Colorable keys a color choice by the kind being rendered and the role of
// the text within it.
type Colorable struct {
	Kind data.Kind
	Attr ColorAttr
}

type ColorAttr int

const (
	FieldColor ColorAttr = iota
	ValueColor
	SepColor
)

// ColorSet maps renderable elements to sprint functions.
type ColorSet struct {
	Default func(string, ...any) string
	Map     map[Colorable]func(string, ...any) string
}

// NewColors returns the default terminal palette.
func NewColors() *ColorSet {
	colors := &ColorSet{
		Default: fmt.Sprintf,
		Map:     map[Colorable]func(string, ...any) string{},
	}
	for _, k := range data.Kinds() {
		colors.Map[Colorable{Kind: k, Attr: SepColor}] = color.RGB(196, 128, 128).SprintfFunc()
	}
	able := Colorable{Attr: ValueColor}

	able.Kind = data.NumberKind
	colors.Map[able] = color.RGB(128, 216, 236).SprintfFunc()

	able.Kind = data.NullKind
	colors.Map[able] = color.RGB(168, 0, 196).SprintfFunc()

	able.Kind = data.BoolKind
	colors.Map[able] = color.CyanString

	able.Kind = data.StringKind
	colors.Map[able] = color.RGB(8, 196, 16).SprintfFunc()

	able = Colorable{Kind: data.MapKind, Attr: FieldColor}
	colors.Map[able] = color.RGB(128, 168, 196).SprintfFunc()

	return colors
}

// Color renders s in the palette's color for the given element.
func (c *ColorSet) Color(k data.Kind, a ColorAttr, s string) string {
	f, ok := c.Map[Colorable{Kind: k, Attr: a}]
	if !ok {
		f = c.Default
	}
	if f == nil {
		return s
	}
	return f("%s", s)
}
