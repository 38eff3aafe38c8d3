// README: Quote document model: sections of measurable blocks, independent of the PDF backend.
package quote

import (
	"time"

	"sairaj/internal/config"
	"sairaj/internal/modules/trip"
)

// TextStyle is the font setting a block is measured and drawn with.
type TextStyle struct {
	Size   float64
	Bold   bool
	Italic bool
}

var (
	styleBody     = TextStyle{Size: 10}
	styleBodyBold = TextStyle{Size: 10, Bold: true}
	styleAmount   = TextStyle{Size: 11}
	styleHeading  = TextStyle{Size: 12, Bold: true}
	styleNote     = TextStyle{Size: 10, Italic: true}
	styleTerms    = TextStyle{Size: 9}
)

// Measurer is the layout contract a rendering backend fulfils.
type Measurer interface {
	LineHeight(style TextStyle) float64
	WrapLines(text string, width float64, style TextStyle) []string
}

// Block is one indivisible piece of a section. Sections only split between
// blocks.
type Block interface {
	Height(m Measurer, width float64) float64
}

type RowStyle int

const (
	RowField RowStyle = iota
	RowAmount
	RowSubtotal
	RowHeading
)

// fieldLabelWidth is the label column of RowField rows, in mm.
const fieldLabelWidth = 55

type RowBlock struct {
	Label string
	Value string
	Style RowStyle
}

func (b RowBlock) Height(m Measurer, width float64) float64 {
	switch b.Style {
	case RowHeading, RowSubtotal:
		return m.LineHeight(styleHeading) + 2
	case RowAmount:
		return m.LineHeight(styleAmount) + 1
	default:
		lines := m.WrapLines(b.Value, width-fieldLabelWidth, styleBody)
		return float64(max(len(lines), 1)) * m.LineHeight(styleBody)
	}
}

type TextBlock struct {
	Text   string
	Style  TextStyle
	Bullet bool
}

// bulletIndent is the space reserved for the bullet glyph.
const bulletIndent = 5

func (b TextBlock) Height(m Measurer, width float64) float64 {
	if b.Bullet {
		width -= bulletIndent
	}
	lines := m.WrapLines(b.Text, width, b.Style)
	h := float64(max(len(lines), 1)) * m.LineHeight(b.Style)
	if b.Bullet {
		h += 1
	}
	return h
}

// RuleBlock is a horizontal divider above a subtotal.
type RuleBlock struct{}

func (RuleBlock) Height(Measurer, float64) float64 { return 4 }

// ImageBlock carries raw image bytes. DrawHeight is filled in once the
// backend has decoded the image.
type ImageBlock struct {
	Name       string
	Data       []byte
	Type       string
	DrawHeight float64
}

func (b ImageBlock) Height(Measurer, float64) float64 { return b.DrawHeight + 4 }

type TotalBlock struct {
	Label string
	Value string
}

func (TotalBlock) Height(Measurer, float64) float64 { return 20 }

// BrandBlock is the page-one letterhead.
type BrandBlock struct {
	Company   config.CompanyConfig
	Reference string
}

func (BrandBlock) Height(Measurer, float64) float64 { return 50 }

type Theme int

const (
	ThemePlain Theme = iota
	ThemeBrand
	ThemeBlue
	ThemeGray
	ThemeDark
	ThemeAmber
	ThemeRed
	ThemeTotal
)

// Section is a titled group of blocks. KeepTogether sections are never
// split across pages.
type Section struct {
	ID           string
	Title        string
	Theme        Theme
	Blocks       []Block
	KeepTogether bool
	Continued    bool
}

// Document is a built quote ready for layout.
type Document struct {
	Sections    []Section
	Company     config.CompanyConfig
	GeneratedAt time.Time
	Reference   string
	FileName    string
}

// Input is everything a quote is built from. MapImage may be nil.
type Input struct {
	State       trip.State
	Estimate    trip.Estimate
	Company     config.CompanyConfig
	GeneratedAt time.Time
	ValidFor    time.Duration
	MapImage    []byte
}
