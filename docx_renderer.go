package md2docx

import (
	"bytes"
	"context"
	"fmt"
	"math"
	"strconv"

	"github.com/fumiama/go-docx"
)

// OOXML attribute values used by the renderer.
const (
	alignLeft     = "left"
	shadeClear    = "clear"
	shadeAuto     = "auto"
	spacePreserve = "preserve"
)

// documentRenderer turns classified blocks into a serialized document.
type documentRenderer interface {
	Render(ctx context.Context, blocks []Block) ([]byte, error)
}

// goDocxRenderer renders blocks with github.com/fumiama/go-docx.
type goDocxRenderer struct {
	theme Theme
}

func newGoDocxRenderer(theme Theme) *goDocxRenderer {
	return &goDocxRenderer{theme: theme}
}

// Render builds the document in memory and serializes it once at the end.
func (r *goDocxRenderer) Render(ctx context.Context, blocks []Block) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	doc := r.build(blocks)

	var buf bytes.Buffer
	if _, err := doc.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDocumentRender, err)
	}
	return buf.Bytes(), nil
}

// build appends one paragraph per block, in order.
func (r *goDocxRenderer) build(blocks []Block) *docx.Docx {
	doc := docx.New().WithDefaultTheme()

	for _, b := range blocks {
		switch b.Kind {
		case BlockHeading:
			r.addHeading(doc, b)
		case BlockCode:
			r.addCode(doc, b)
		case BlockBlank:
			doc.AddParagraph()
		default:
			preserveSpace(doc.AddParagraph().AddText(b.Text))
		}
	}

	return doc
}

func (r *goDocxRenderer) addHeading(doc *docx.Docx, b Block) {
	para := doc.AddParagraph().Justification(alignLeft)
	run := para.AddText(b.Text).
		Bold().
		Color(normalizeColor(r.theme.TitleColor)).
		Size(halfPoints(HeadingFontSize(b.Level)))
	preserveSpace(run)
}

// addCode emits the whole block as a single shaded paragraph. Lines are
// separated by breaks inside one run, so the shading stays continuous.
func (r *goDocxRenderer) addCode(doc *docx.Docx, b Block) {
	para := doc.AddParagraph()
	para.Properties = &docx.ParagraphProperties{
		Shade: &docx.Shade{
			Val:   shadeClear,
			Color: shadeAuto,
			Fill:  normalizeColor(r.theme.CodeBackground),
		},
	}

	font := r.theme.CodeFont
	run := para.AddText(b.Text).
		Font(font, font, font, "").
		Color(normalizeColor(r.theme.CodeColor)).
		Size(halfPoints(r.theme.CodeFontSize))
	preserveSpace(run)
}

// preserveSpace keeps leading and trailing spaces of every text node.
func preserveSpace(run *docx.Run) {
	for _, child := range run.Children {
		if t, ok := child.(*docx.Text); ok {
			t.XMLSpace = spacePreserve
		}
	}
}

// halfPoints converts a point size to the half-point string OOXML expects.
func halfPoints(size float64) string {
	return strconv.Itoa(int(math.Round(size * 2)))
}
