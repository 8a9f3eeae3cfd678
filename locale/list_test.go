package locale

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestParseList(t *testing.T) {
	a, err := ParseList("english_us")
	assert.NoError(t, err)
	assert.Equal(t, []Locale{EnglishUS}, a)

	a, err = ParseList("english_us german,cherokee")
	assert.NoError(t, err)
	assert.Equal(t, []Locale{EnglishUS, German, Cherokee}, a)

	a, err = ParseList(", german, , german,esperanto ")
	assert.NoError(t, err)
	assert.Equal(t, []Locale{German, Esperanto}, a)

	a, err = ParseList("")
	assert.NoError(t, err)
	assert.Nil(t, a)

	_, err = ParseList("german klingon")
	assert.ErrorIs(t, err, ErrUnknownLocale)
}
