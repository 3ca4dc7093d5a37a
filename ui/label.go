package ui

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/unicode/bidi"

	"github.com/Mattiemus/Kynto2-sub008/cache"
)

// Label is a single-line text leaf. Its desired size comes from
// HarfBuzz shaping of the text at the configured font size, so auto
// grid tracks holding labels get genuine content to size against.
//
// Parsed fonts are read-only and cached; font.Face instances are not
// concurrent-safe and are created per shaping call. HarfbuzzShaper
// instances are pooled for the same reason. Shaped measurements are
// memoized per text and size.
type Label struct {
	text string
	size float64
	font *font.Font

	desired Size
	bounds  Rect
}

type textMetrics struct {
	advance    float64
	lineHeight float64
}

var (
	shaperPool = sync.Pool{
		New: func() any { return &shaping.HarfbuzzShaper{} },
	}

	metricsCache = cache.NewSharded[string, textMetrics](1024, cache.StringHasher)

	defaultFontOnce sync.Once
	defaultFont     *font.Font
)

func loadDefaultFont() *font.Font {
	defaultFontOnce.Do(func() {
		face, err := font.ParseTTF(bytes.NewReader(goregular.TTF))
		if err == nil {
			defaultFont = face.Font
		}
	})
	return defaultFont
}

// NewLabel returns a label rendered with the bundled regular face at
// the given font size.
func NewLabel(text string, size float64) *Label {
	return &Label{text: text, size: size, font: loadDefaultFont()}
}

// NewLabelWithFont returns a label using the given TTF font data.
func NewLabelWithFont(text string, size float64, ttf []byte) (*Label, error) {
	face, err := font.ParseTTF(bytes.NewReader(ttf))
	if err != nil {
		return nil, fmt.Errorf("ui: parse label font: %w", err)
	}
	return &Label{text: text, size: size, font: face.Font}, nil
}

// Text returns the label's current text.
func (l *Label) Text() string { return l.text }

// SetText replaces the label's text.
func (l *Label) SetText(text string) { l.text = text }

// Measure shapes the text and returns its advance width and line
// height, capped at the available constraint.
func (l *Label) Measure(available Size) Size {
	m := l.metrics()
	d := Size{Width: m.advance, Height: m.lineHeight}
	if d.Width > available.Width {
		d.Width = available.Width
	}
	if d.Height > available.Height {
		d.Height = available.Height
	}
	l.desired = d
	return d
}

// Arrange records the final bounds.
func (l *Label) Arrange(bounds Rect) Size {
	l.bounds = bounds
	return bounds.Size()
}

// Desired returns the size computed by the last Measure.
func (l *Label) Desired() Size { return l.desired }

// Bounds returns the rectangle assigned by the last Arrange.
func (l *Label) Bounds() Rect { return l.bounds }

func (l *Label) metrics() textMetrics {
	if l.text == "" || l.font == nil || l.size <= 0 {
		return textMetrics{}
	}
	key := fmt.Sprintf("%p\x00%g\x00%s", l.font, l.size, l.text)
	return metricsCache.GetOrCreate(key, l.shape)
}

func (l *Label) shape() textMetrics {
	runes := []rune(l.text)

	dir := di.DirectionLTR
	if baseDirectionRTL(l.text) {
		dir = di.DirectionRTL
	}

	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: dir,
		Face:      font.NewFace(l.font),
		Size:      fixed.Int26_6(l.size * 64),
		Script:    detectScript(runes),
		Language:  language.NewLanguage("en"),
	}

	shaper := shaperPool.Get().(*shaping.HarfbuzzShaper)
	output := shaper.Shape(input)
	shaperPool.Put(shaper)

	// LineBounds.Descent is negative, below the baseline.
	lineHeight := output.LineBounds.Ascent - output.LineBounds.Descent + output.LineBounds.Gap
	return textMetrics{
		advance:    fixedToFloat(output.Advance),
		lineHeight: fixedToFloat(lineHeight),
	}
}

// baseDirectionRTL resolves the paragraph's principal direction per the
// Unicode bidi algorithm, so Hebrew or Arabic text shapes right to
// left.
func baseDirectionRTL(text string) bool {
	p := bidi.Paragraph{}
	if _, err := p.SetString(text, bidi.DefaultDirection(bidi.Neutral)); err != nil {
		return false
	}
	// Order runs the algorithm; Direction is undefined until it has.
	if _, err := p.Order(); err != nil {
		return false
	}
	return !p.IsLeftToRight()
}

// detectScript returns the script of the first non-space rune. Mixed
// scripts would need run splitting; a single-line label takes the
// dominant script.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		switch r {
		case ' ', '\t', '\n', '\r':
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
