package wordcloud

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadFont_RejectsTooShortData(t *testing.T) {
	_, err := LoadFont("tiny", []byte{0x00, 0x01})
	assert.ErrorIs(t, err, ErrFontLoadFailed)
}

func TestLoadFont_RejectsUnrecognizedMagic(t *testing.T) {
	_, err := LoadFont("mystery", []byte("NOPE0000"))
	assert.ErrorIs(t, err, ErrFontLoadFailed)
}

func TestLoadFont_RecognizesWOFFContainerButCannotShape(t *testing.T) {
	data := append([]byte("wOFF"), make([]byte, 16)...)
	font, err := LoadFont("web.woff", data)

	assert.NoError(t, err)
	assert.Equal(t, FontTypeWOFF, font.FontType())

	_, shapeErr := font.Shape([]rune("x"), 12)
	assert.ErrorIs(t, shapeErr, ErrUnsupportedContainer)
}

func TestFontType_EmbedTag(t *testing.T) {
	assert.Equal(t, "application/font-otf", FontTypeOTF.EmbedTag())
	assert.Equal(t, "application/font-ttf", FontTypeTTF.EmbedTag())
	assert.Equal(t, "application/font-woff", FontTypeWOFF.EmbedTag())
	assert.Equal(t, "application/font-woff2", FontTypeWOFF2.EmbedTag())
}

func TestFontSet_PickFallsBackWhenScriptUnknown(t *testing.T) {
	font := newFixtureFont("Body")
	fs, err := NewFontSetBuilder().Push(font).Build()
	assert.NoError(t, err)

	picked, ok := fs.Pick("Han")
	assert.True(t, ok, "every font declares Common coverage as a fallback")
	assert.Equal(t, font, picked)
}

func TestFontSetBuilder_PushSkipsDuplicateNames(t *testing.T) {
	a := newFixtureFont("Body")
	b := newFixtureFont("Body")

	fs, err := NewFontSetBuilder().Push(a).Push(b).Build()
	assert.NoError(t, err)
	assert.Len(t, fs.Fonts(), 1)
}

func TestFontSetBuilder_BuildFailsWhenEmpty(t *testing.T) {
	_, err := NewFontSetBuilder().Build()
	assert.Error(t, err)
}

func TestGuessScript_EmptyStringIsCommon(t *testing.T) {
	assert.Equal(t, "Common", GuessScript(""))
}

func TestGuessScript_LatinWord(t *testing.T) {
	assert.Equal(t, "Latin", GuessScript("hello"))
}
