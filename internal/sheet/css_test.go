package sheet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yacobolo/scaledstyle"
)

const cardCSS = `/* card */
.card {
	width: 20;
	padding: [5, 20];
	gap_V: 8;
	align-self: center;
	font-family: "Helvetica Neue";
	min-width: ['100%', 250];
	border: 1px solid red;
	color: rgba(0, 0, 0, 0.5);
	margin: -4
}

.title, .subtitle { line-height: 12; }

.card:hover { opacity: 0.5; }

@media (orientation: landscape) {
	.card { width: 40; }
}

@font-face { font-family: x; }
`

func assertValue(t *testing.T, want, got scaledstyle.Value) {
	t.Helper()
	assert.True(t, want.Equal(got), "want %s %v, got %s %v", want.Kind(), want, got.Kind(), got)
}

func TestParseCSS(t *testing.T) {
	s, err := ParseCSS(cardCSS, "card.css")
	require.NoError(t, err)

	require.ElementsMatch(t, []string{"card", "title", "subtitle"}, s.Base.Names())
	card := s.Base["card"]

	assertValue(t, scaledstyle.Number(20), card["width"])
	assertValue(t, scaledstyle.Pair(scaledstyle.Number(5), scaledstyle.Number(20)), card["padding"])
	assertValue(t, scaledstyle.Number(8), card["gap_V"])
	assertValue(t, scaledstyle.String("center"), card["alignSelf"])
	assertValue(t, scaledstyle.String("Helvetica Neue"), card["fontFamily"])
	assertValue(t, scaledstyle.Pair(scaledstyle.String("100%"), scaledstyle.Number(250)), card["minWidth"])
	assertValue(t, scaledstyle.String("1px solid red"), card["border"])
	assertValue(t, scaledstyle.String("rgba(0, 0, 0, 0.5)"), card["color"])
	assertValue(t, scaledstyle.Number(-4), card["margin"])
	assertValue(t, scaledstyle.Number(0.5), card["opacity"])

	assertValue(t, scaledstyle.Number(12), s.Base["title"]["lineHeight"])
	assertValue(t, scaledstyle.Number(12), s.Base["subtitle"]["lineHeight"])

	require.Equal(t, []string{"card"}, s.Landscape.Names())
	assertValue(t, scaledstyle.Number(40), s.Landscape["card"]["width"])
}

func TestParseCSSBareNames(t *testing.T) {
	s, err := ParseCSS(`container { flex: 1 } header{height:[40]}`, "bare.css")
	require.NoError(t, err)
	assertValue(t, scaledstyle.Number(1), s.Base["container"]["flex"])
	assertValue(t, scaledstyle.Pair(scaledstyle.Number(40)), s.Base["header"]["height"])
}

func TestParseCSSSkipsOtherMedia(t *testing.T) {
	tests := []struct {
		name string
		css  string
	}{
		{name: "min-width", css: `.card{width:10} @media (min-width:900px){.card{width:99}}`},
		{name: "print", css: `.card{width:10} @media print{.other{width:1}}`},
		{name: "portrait", css: `.card{width:10} @media (orientation: portrait){.card{width:5} .other{width:1}}`},
		{name: "nested braces", css: `@media screen{@supports (display:grid){.other{width:1}}} .card{width:10}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := ParseCSS(tt.css, "media.css")
			require.NoError(t, err)
			require.Equal(t, []string{"card"}, s.Base.Names())
			assertValue(t, scaledstyle.Number(10), s.Base["card"]["width"])
			assert.Empty(t, s.Landscape)
		})
	}
}

func TestParseCSSErrors(t *testing.T) {
	tests := []struct {
		name    string
		css     string
		wantErr string
	}{
		{name: "missing colon", css: `.card { width 20; }`, wantErr: `expected ':' after "width"`},
		{name: "unterminated block", css: `.card { width: 20;`, wantErr: `unexpected end of input in block "card"`},
		{name: "unterminated media", css: `@media (orientation: landscape) { .card { width: 20; }`, wantErr: "@media"},
		{name: "missing class name", css: `. { width: 20; }`, wantErr: "expected class name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseCSS(tt.css, "bad.css")
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
			assert.Contains(t, err.Error(), "bad.css")
		})
	}
}

func TestPropertyKey(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"width", "width"},
		{"align-self", "alignSelf"},
		{"border-top-width", "borderTopWidth"},
		{"padding_V", "padding_V"},
		{"margin-top_H", "marginTop_H"},
		{"-webkit-box", "-webkit-box"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, propertyKey(tt.in))
		})
	}
}
