// Package style holds the provider-agnostic style override record and the
// normaliser turning it into provider-ready values.
package style

// Override is a sparse set of style attributes. A nil field means "unset,
// inherit the provider or size default"; a set zero value is a real override.
type Override struct {
	BorderRadius    *Length  `json:"borderRadius,omitempty" yaml:"borderRadius,omitempty"`
	BorderWidth     *Length  `json:"borderWidth,omitempty" yaml:"borderWidth,omitempty"`
	BorderStyle     *Token   `json:"borderStyle,omitempty" yaml:"borderStyle,omitempty"`
	BorderColor     *Token   `json:"borderColor,omitempty" yaml:"borderColor,omitempty"`
	BackgroundColor *Token   `json:"backgroundColor,omitempty" yaml:"backgroundColor,omitempty"`
	FontColor       *Token   `json:"fontColor,omitempty" yaml:"fontColor,omitempty"`
	TitleColor      *Token   `json:"titleColor,omitempty" yaml:"titleColor,omitempty"`
	AnswerColor     *Token   `json:"answerColor,omitempty" yaml:"answerColor,omitempty"`
	TextColor       *Token   `json:"textColor,omitempty" yaml:"textColor,omitempty"`
	OverlayColor    *Token   `json:"overlayColor,omitempty" yaml:"overlayColor,omitempty"`
	FocusColor      *Token   `json:"focusColor,omitempty" yaml:"focusColor,omitempty"`
	Color           *Token   `json:"color,omitempty" yaml:"color,omitempty"`
	IndicatorColor  *Token   `json:"indicatorColor,omitempty" yaml:"indicatorColor,omitempty"`
	TrackColor      *Token   `json:"trackColor,omitempty" yaml:"trackColor,omitempty"`
	ActiveColor     *Token   `json:"activeColor,omitempty" yaml:"activeColor,omitempty"`
	InactiveColor   *Token   `json:"inactiveColor,omitempty" yaml:"inactiveColor,omitempty"`
	Shadow          *Token   `json:"shadow,omitempty" yaml:"shadow,omitempty"`
	Height          *Length  `json:"height,omitempty" yaml:"height,omitempty"`
	FontSize        *Length  `json:"fontSize,omitempty" yaml:"fontSize,omitempty"`
	Padding         *Spacing `json:"padding,omitempty" yaml:"padding,omitempty"`
}

// Clone returns a deep copy; the result shares no pointers with o.
func (o Override) Clone() Override {
	return Override{
		BorderRadius:    cloneLength(o.BorderRadius),
		BorderWidth:     cloneLength(o.BorderWidth),
		BorderStyle:     cloneToken(o.BorderStyle),
		BorderColor:     cloneToken(o.BorderColor),
		BackgroundColor: cloneToken(o.BackgroundColor),
		FontColor:       cloneToken(o.FontColor),
		TitleColor:      cloneToken(o.TitleColor),
		AnswerColor:     cloneToken(o.AnswerColor),
		TextColor:       cloneToken(o.TextColor),
		OverlayColor:    cloneToken(o.OverlayColor),
		FocusColor:      cloneToken(o.FocusColor),
		Color:           cloneToken(o.Color),
		IndicatorColor:  cloneToken(o.IndicatorColor),
		TrackColor:      cloneToken(o.TrackColor),
		ActiveColor:     cloneToken(o.ActiveColor),
		InactiveColor:   cloneToken(o.InactiveColor),
		Shadow:          cloneToken(o.Shadow),
		Height:          cloneLength(o.Height),
		FontSize:        cloneLength(o.FontSize),
		Padding:         o.Padding.clone(),
	}
}

// IsZero reports whether no attribute is set.
func (o Override) IsZero() bool {
	return o.BorderRadius == nil && o.BorderWidth == nil && o.BorderStyle == nil &&
		o.BorderColor == nil && o.BackgroundColor == nil && o.FontColor == nil &&
		o.TitleColor == nil && o.AnswerColor == nil && o.TextColor == nil &&
		o.OverlayColor == nil && o.FocusColor == nil && o.Color == nil &&
		o.IndicatorColor == nil && o.TrackColor == nil && o.ActiveColor == nil &&
		o.InactiveColor == nil && o.Shadow == nil && o.Height == nil &&
		o.FontSize == nil && o.Padding == nil
}

// CSS renders an optional length, returning "" when unset.
func CSS(l *Length) string {
	if l == nil {
		return ""
	}
	return l.String()
}

// Value renders an optional token, returning "" when unset.
func Value(t *Token) string {
	if t == nil {
		return ""
	}
	return string(*t)
}

// First returns the first set token, or nil.
func First(tokens ...*Token) *Token {
	for _, t := range tokens {
		if t != nil {
			return t
		}
	}
	return nil
}

// Or renders t, falling back to def when t is unset.
func Or(t *Token, def string) string {
	if t == nil {
		return def
	}
	return string(*t)
}

// Padding renders an optional spacing as CSS shorthand, "" when unset.
func Padding(s *Spacing) string {
	if s == nil {
		return ""
	}
	return s.String()
}
