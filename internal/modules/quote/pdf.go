// README: fpdf backend for quote documents: measuring, page chrome, and drawing.
package quote

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/go-pdf/fpdf"
	"go.uber.org/zap"
)

type rgb struct{ r, g, b int }

var (
	primaryBlue = rgb{25, 118, 210}
	darkBlue    = rgb{13, 71, 161}
	lightBlue   = rgb{227, 242, 253}
	darkGray    = rgb{33, 33, 33}
	lightGray   = rgb{250, 250, 250}
	white       = rgb{255, 255, 255}
	amberBar    = rgb{217, 119, 6}
	amberFill   = rgb{253, 230, 138}
	redBar      = rgb{185, 28, 28}
	redFill     = rgb{254, 242, 242}
)

type palette struct {
	bar, fill rgb
}

var themes = map[Theme]palette{
	ThemeBlue:  {bar: primaryBlue, fill: lightBlue},
	ThemeGray:  {bar: darkBlue, fill: lightGray},
	ThemeDark:  {bar: darkGray, fill: lightGray},
	ThemeAmber: {bar: amberBar, fill: amberFill},
	ThemeRed:   {bar: redBar, fill: redFill},
}

const maxMapHeight = 120

// fpdfMeasurer measures text with the same core fonts the renderer draws
// with.
type fpdfMeasurer struct {
	pdf *fpdf.Fpdf
	tr  func(string) string
}

func (m fpdfMeasurer) LineHeight(style TextStyle) float64 {
	return style.Size * 0.5
}

func (m fpdfMeasurer) WrapLines(text string, width float64, style TextStyle) []string {
	setStyle(m.pdf, style)
	if text == "" || width <= 0 {
		return []string{text}
	}
	return m.pdf.SplitText(m.tr(text), width)
}

func setStyle(pdf *fpdf.Fpdf, style TextStyle) {
	var s string
	if style.Bold {
		s += "B"
	}
	if style.Italic {
		s += "I"
	}
	pdf.SetFont("Helvetica", s, style.Size)
}

func setText(pdf *fpdf.Fpdf, c rgb) { pdf.SetTextColor(c.r, c.g, c.b) }
func setFill(pdf *fpdf.Fpdf, c rgb) { pdf.SetFillColor(c.r, c.g, c.b) }
func setDraw(pdf *fpdf.Fpdf, c rgb) { pdf.SetDrawColor(c.r, c.g, c.b) }

type renderer struct {
	pdf    *fpdf.Fpdf
	tr     func(string) string
	m      fpdfMeasurer
	g      Geometry
	doc    Document
	logger *zap.Logger
}

// RenderPDF lays doc out on A4 pages and writes the PDF to w. A map image
// that cannot be decoded is logged and left out; it never fails the quote.
func RenderPDF(w io.Writer, doc Document, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.AliasNbPages("")
	pdf.SetTitle(doc.Reference, false)
	pdf.SetAuthor(doc.Company.Name, false)

	tr := pdf.UnicodeTranslatorFromDescriptor("")
	r := &renderer{
		pdf:    pdf,
		tr:     tr,
		m:      fpdfMeasurer{pdf: pdf, tr: tr},
		g:      A4,
		doc:    doc,
		logger: logger,
	}

	sections := r.prepareImages(doc.Sections)
	pages := Layout(sections, r.m, r.g)

	pdf.SetFooterFunc(r.footer)
	for _, page := range pages {
		pdf.AddPage()
		for _, p := range page.Placements {
			r.drawSection(p)
		}
	}
	if err := pdf.Error(); err != nil {
		return fmt.Errorf("rendering quote: %w", err)
	}
	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("writing quote: %w", err)
	}
	return nil
}

// prepareImages registers every image with the document and sizes it to
// the section width. Sections whose image fails are dropped.
func (r *renderer) prepareImages(sections []Section) []Section {
	out := make([]Section, 0, len(sections))
	for _, sec := range sections {
		ok := true
		blocks := make([]Block, len(sec.Blocks))
		for i, b := range sec.Blocks {
			img, isImage := b.(ImageBlock)
			if !isImage {
				blocks[i] = b
				continue
			}
			sized, err := r.registerImage(img, r.g.InnerWidth(sec))
			if err != nil {
				r.logger.Warn("quote.map_image_skipped", zap.String("reference", r.doc.Reference), zap.Error(err))
				ok = false
				break
			}
			blocks[i] = sized
		}
		if ok {
			sec.Blocks = blocks
			out = append(out, sec)
		}
	}
	return out
}

func (r *renderer) registerImage(img ImageBlock, width float64) (ImageBlock, error) {
	if len(img.Data) == 0 {
		return img, ErrEmptyImage
	}
	if img.Type == "" {
		kind, err := imageType(img.Data)
		if err != nil {
			return img, err
		}
		img.Type = kind
	}
	opts := fpdf.ImageOptions{ImageType: img.Type, ReadDpi: false}
	info := r.pdf.RegisterImageOptionsReader(img.Name, opts, bytes.NewReader(img.Data))
	if !r.pdf.Ok() {
		err := r.pdf.Error()
		r.pdf.ClearError()
		return img, err
	}
	if info == nil || info.Width() <= 0 {
		return img, fmt.Errorf("image %s has no size", img.Name)
	}
	img.DrawHeight = min(info.Height()*width/info.Width(), maxMapHeight)
	return img, nil
}

func (r *renderer) footer() {
	pdf := r.pdf
	y := r.g.PageHeight - 30
	x := r.g.MarginX
	w := r.g.PageWidth

	setDraw(pdf, primaryBlue)
	pdf.SetLineWidth(0.5)
	pdf.Line(x, y-5, w-x, y-5)

	setText(pdf, darkGray)
	setStyle(pdf, TextStyle{Size: 8})
	pdf.Text(x, y, r.tr("Generated on: "+stamp(r.doc.GeneratedAt)))
	pdf.Text(x, y+5, r.tr("Contact: "+r.doc.Company.Phone))
	pdf.Text(x, y+10, r.tr("Email: "+r.doc.Company.Email))

	setStyle(pdf, TextStyle{Size: 8, Bold: true})
	setText(pdf, primaryBlue)
	pdf.Text(w-50, y, r.tr(r.doc.Company.Name))
	setStyle(pdf, TextStyle{Size: 8})
	setText(pdf, darkGray)
	pdf.Text(w-50, y+5, fmt.Sprintf("Page %d of {nb}", pdf.PageNo()))
}

func (r *renderer) drawSection(p Placement) {
	sec := p.Section
	x := r.g.MarginX
	w := r.g.ContentWidth()
	y := p.Y

	if pal, ok := themes[sec.Theme]; ok && sec.Title != "" {
		setFill(r.pdf, pal.fill)
		r.pdf.Rect(x, y, w, p.Height, "F")
		setFill(r.pdf, pal.bar)
		r.pdf.Rect(x, y, w, titleBarHeight, "F")
		setText(r.pdf, white)
		setStyle(r.pdf, styleHeading)
		r.pdf.Text(x+sectionPadding, y+7, r.tr(sec.Title))
		y += titleBarHeight + sectionPadding
		x += sectionPadding
		w -= 2 * sectionPadding
	}

	for _, b := range sec.Blocks {
		h := b.Height(r.m, w)
		r.drawBlock(b, x, y, w)
		y += h
	}
}

func (r *renderer) baseline(top float64, style TextStyle) float64 {
	return top + r.m.LineHeight(style)*0.75
}

func (r *renderer) drawBlock(b Block, x, y, w float64) {
	pdf := r.pdf
	switch b := b.(type) {
	case BrandBlock:
		r.drawBrand(b)
	case TotalBlock:
		setFill(pdf, primaryBlue)
		pdf.Rect(x, y, w, 18, "F")
		setText(pdf, white)
		setStyle(pdf, TextStyle{Size: 16, Bold: true})
		pdf.Text(x+10, y+12, r.tr(b.Label))
		value := r.tr(b.Value)
		pdf.Text(x+w-10-pdf.GetStringWidth(value), y+12, value)
	case RowBlock:
		r.drawRow(b, x, y, w)
	case TextBlock:
		setText(pdf, darkGray)
		tx, tw := x, w
		if b.Bullet {
			setStyle(pdf, b.Style)
			pdf.Text(x, r.baseline(y, b.Style), r.tr("•"))
			tx, tw = x+bulletIndent, w-bulletIndent
		}
		lh := r.m.LineHeight(b.Style)
		for i, line := range r.m.WrapLines(b.Text, tw, b.Style) {
			pdf.Text(tx, r.baseline(y+float64(i)*lh, b.Style), line)
		}
	case RuleBlock:
		setDraw(pdf, primaryBlue)
		pdf.SetLineWidth(0.3)
		pdf.Line(x, y+2, x+w, y+2)
	case ImageBlock:
		width := w
		if b.DrawHeight >= maxMapHeight {
			width = 0
		}
		pdf.ImageOptions(b.Name, x, y+2, width, b.DrawHeight, false, fpdf.ImageOptions{ImageType: b.Type}, 0, "")
	}
}

func (r *renderer) drawRow(b RowBlock, x, y, w float64) {
	pdf := r.pdf
	switch b.Style {
	case RowHeading, RowSubtotal:
		setText(pdf, darkBlue)
		setStyle(pdf, styleHeading)
		base := r.baseline(y+1, styleHeading)
		pdf.Text(x, base, r.tr(b.Label))
		if b.Value != "" {
			value := r.tr(b.Value)
			pdf.Text(x+w-pdf.GetStringWidth(value), base, value)
		}
	case RowAmount:
		setText(pdf, darkGray)
		setStyle(pdf, styleAmount)
		base := r.baseline(y, styleAmount)
		pdf.Text(x+5, base, r.tr(b.Label))
		value := r.tr(b.Value)
		pdf.Text(x+w-pdf.GetStringWidth(value), base, value)
	default:
		setText(pdf, darkGray)
		setStyle(pdf, styleBodyBold)
		pdf.Text(x, r.baseline(y, styleBodyBold), r.tr(b.Label))
		lh := r.m.LineHeight(styleBody)
		lines := r.m.WrapLines(b.Value, w-fieldLabelWidth, styleBody)
		setStyle(pdf, styleBody)
		for i, line := range lines {
			pdf.Text(x+fieldLabelWidth, r.baseline(y+float64(i)*lh, styleBody), line)
		}
	}
}

func (r *renderer) drawBrand(b BrandBlock) {
	pdf := r.pdf
	pw := r.g.PageWidth

	setFill(pdf, primaryBlue)
	pdf.Rect(0, 0, pw, 50, "F")

	setText(pdf, white)
	setStyle(pdf, TextStyle{Size: 28, Bold: true})
	pdf.Text(25, 22, r.tr(b.Company.Name))
	setStyle(pdf, TextStyle{Size: 12})
	pdf.Text(25, 32, r.tr(b.Company.Tagline))
	setStyle(pdf, TextStyle{Size: 10})
	pdf.Text(25, 42, r.tr(fmt.Sprintf("Phone: %s | Email: %s", b.Company.Phone, b.Company.Email)))

	setFill(pdf, white)
	pdf.Rect(pw-65, 12, 50, 26, "F")
	setText(pdf, darkBlue)
	setStyle(pdf, TextStyle{Size: 16, Bold: true})
	label := "QUOTE"
	pdf.Text(pw-40-pdf.GetStringWidth(label)/2, 24, label)
	setStyle(pdf, TextStyle{Size: 9})
	ref := strings.TrimSpace(b.Reference)
	pdf.Text(pw-40-pdf.GetStringWidth(ref)/2, 32, ref)
}
