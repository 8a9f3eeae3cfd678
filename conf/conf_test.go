package conf

import (
	"github.com/1f349/kbflags/locale"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
	"os"
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/kbflags.yml", []byte(`
listen: "127.0.0.1:9090"
displayLanguage: de
locales:
  - english_us
  - kurdish_sorani_pc
cacheTtl: 5m
compare:
  print: true
  minConfidence: exact
`), 0600))

	c, err := Load(fs, "/kbflags.yml")
	require.NoError(t, err)
	assert.Equal(t, Conf{
		Listen:          "127.0.0.1:9090",
		DisplayLanguage: "de",
		Locales:         []locale.Locale{locale.EnglishUS, locale.KurdishSoraniPC},
		CacheTtl:        5 * time.Minute,
		Compare:         Compare{Print: true, MinConfidence: "exact"},
	}, c)

	tag, ok := c.DisplayTag()
	assert.True(t, ok)
	assert.Equal(t, "de", tag.String())
	assert.Equal(t, language.Exact, c.MinConfidence())
	assert.Equal(t, []locale.Locale{locale.EnglishUS, locale.KurdishSoraniPC}, c.LocaleSet())
}

func TestLoadDefaults(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/empty.yml", []byte("{}\n"), 0600))

	c, err := Load(fs, "/empty.yml")
	require.NoError(t, err)
	assert.Equal(t, Default(), c)
	assert.Nil(t, c.LocaleSet())
	_, ok := c.DisplayTag()
	assert.False(t, ok)
	assert.Equal(t, language.Low, c.MinConfidence())
}

func TestLoadErrors(t *testing.T) {
	fs := afero.NewMemMapFs()

	_, err := Load(fs, "/missing.yml")
	assert.ErrorIs(t, err, os.ErrNotExist)

	require.NoError(t, afero.WriteFile(fs, "/bad-locale.yml", []byte("locales: [klingon]\n"), 0600))
	_, err = Load(fs, "/bad-locale.yml")
	assert.ErrorIs(t, err, ErrInvalidConf)
	assert.ErrorIs(t, err, locale.ErrUnknownLocale)

	require.NoError(t, afero.WriteFile(fs, "/bad-lang.yml", []byte("displayLanguage: \"a b c\"\n"), 0600))
	_, err = Load(fs, "/bad-lang.yml")
	assert.ErrorIs(t, err, ErrInvalidConf)

	require.NoError(t, afero.WriteFile(fs, "/bad-conf.yml", []byte("compare:\n  minConfidence: sometimes\n"), 0600))
	_, err = Load(fs, "/bad-conf.yml")
	assert.ErrorIs(t, err, ErrInvalidConf)
}
