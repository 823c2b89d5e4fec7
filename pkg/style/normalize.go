package style

import (
	"strings"

	"github.com/goliatone/go-compareui/pkg/widget"
)

// Normalize returns a provider-ready copy of o. Set lengths are rendered to
// CSS strings, verbatim values pass through, tokens are trimmed, and unset
// padding, font size, height and radius are filled from the size tier.
// Colours are never defaulted. The input is not modified and the result is a
// fixed point: Normalize(Normalize(o, s), s) equals Normalize(o, s).
func Normalize(o Override, size widget.Size) Override {
	m := MetricsFor(size)
	out := o.Clone()

	out.BorderRadius = lengthOr(o.BorderRadius, m.Radius)
	out.BorderWidth = canonicalLength(o.BorderWidth)
	out.Height = lengthOr(o.Height, m.TrackHeight)
	out.FontSize = lengthOr(o.FontSize, m.FontSize)
	out.Padding = spacingOr(o.Padding, m.PaddingX, m.PaddingY)

	for _, field := range []**Token{
		&out.BorderStyle, &out.BorderColor, &out.BackgroundColor, &out.FontColor,
		&out.TitleColor, &out.AnswerColor, &out.TextColor, &out.OverlayColor,
		&out.FocusColor, &out.Color, &out.IndicatorColor, &out.TrackColor,
		&out.ActiveColor, &out.InactiveColor, &out.Shadow,
	} {
		if *field != nil {
			*field = Tok(strings.TrimSpace(string(**field)))
		}
	}
	return out
}

func canonicalLength(l *Length) *Length {
	if l == nil {
		return nil
	}
	return Raw(l.String())
}

func lengthOr(l *Length, def string) *Length {
	if l == nil {
		return Raw(def)
	}
	return canonicalLength(l)
}

func spacingOr(s *Spacing, defX, defY string) *Spacing {
	if s == nil {
		return &Spacing{X: Raw(defX), Y: Raw(defY)}
	}
	if s.Raw != "" {
		return &Spacing{Raw: s.Raw}
	}
	return &Spacing{X: lengthOr(s.X, defX), Y: lengthOr(s.Y, defY)}
}
