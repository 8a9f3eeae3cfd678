package server

import (
	"encoding/json"
	"github.com/1f349/kbflags/compare"
	"github.com/1f349/kbflags/conf"
	"github.com/1f349/kbflags/flags"
	"github.com/1f349/kbflags/lists"
	"github.com/1f349/kbflags/locale"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestServer(t *testing.T, c conf.Conf, src flags.Source) *HttpServer {
	h, err := NewHttpServer(c, src)
	require.NoError(t, err)
	return h
}

func doGet(h *HttpServer, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	h.Server.Handler.ServeHTTP(rec, req)
	return rec
}

func TestNewHttpServer(t *testing.T) {
	c := conf.Default()
	c.Compare.MinConfidence = "sometimes"
	_, err := NewHttpServer(c, nil)
	assert.ErrorIs(t, err, conf.ErrInvalidConf)

	h := newTestServer(t, conf.Default(), nil)
	assert.Equal(t, conf.DefaultListen, h.Server.Addr)
	rec := doGet(h, "/")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Keyboard locale flags\n", rec.Body.String())
}

func TestGetFlag(t *testing.T) {
	h := newTestServer(t, conf.Default(), nil)

	rec := doGet(h, "/locales/german_switzerland/flag")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "🇨🇭", rec.Body.String())

	rec = doGet(h, "/locales/esperanto/flag")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "⭐️", rec.Body.String())

	rec = doGet(h, "/locales/klingon/flag")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Unknown locale\n", rec.Body.String())
}

func TestGetLocale(t *testing.T) {
	h := newTestServer(t, conf.Default(), nil)

	rec := doGet(h, "/locales/cherokee?lang=en")
	assert.Equal(t, http.StatusOK, rec.Code)
	var info map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &info))
	assert.Equal(t, "cherokee", info["value"])
	assert.Equal(t, "chr", info["tag"])
	assert.Equal(t, "placeholder", info["kind"])
	assert.Equal(t, string(locale.FlagPlaceholder), info["flag"])
	assert.NotEmpty(t, info["label"])

	rec = doGet(h, "/locales/cherokee?lang=a+b")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doGet(h, "/locales/nope")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListLocales(t *testing.T) {
	c := conf.Default()
	c.Locales = []locale.Locale{locale.German, locale.GermanAustria}
	c.DisplayLanguage = "en"
	h := newTestServer(t, c, nil)

	rec := doGet(h, "/locales")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	var out []lists.Entry
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Equal(t, lists.ListKeyboardLocaleIn(language.English, c.Locales), out)

	// served from the cache
	rec = doGet(h, "/locales")
	out = nil
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Len(t, out, 2)

	// a new config is not answered from the old cache entry
	c.Locales = []locale.Locale{locale.Esperanto}
	require.NoError(t, h.UpdateConfig(c))
	rec = doGet(h, "/locales")
	out = nil
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Equal(t, []lists.Entry{{Value: "esperanto", Label: "Esperanto", Flag: locale.FlagConstructed}}, out)

	rec = doGet(h, "/locales?ids=english_gb,english_gb+cherokee&lang=en")
	assert.Equal(t, http.StatusOK, rec.Code)
	out = nil
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Equal(t, lists.ListKeyboardLocaleIn(language.English, []locale.Locale{locale.EnglishGB, locale.Cherokee}), out)

	rec = doGet(h, "/locales?ids=klingon")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Unknown locale\n", rec.Body.String())

	rec = doGet(h, "/locales?lang=a+b")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid language\n", rec.Body.String())
}

func TestListLocalesAll(t *testing.T) {
	h := newTestServer(t, conf.Default(), nil)
	rec := doGet(h, "/locales")
	assert.Equal(t, http.StatusOK, rec.Code)
	var out []lists.Entry
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Equal(t, lists.ListKeyboardLocale(), out)
}

func TestCompareFlags(t *testing.T) {
	c := conf.Default()
	c.Locales = []locale.Locale{locale.Catalan, locale.EnglishGB}
	src := flags.SourceFunc(func(tag language.Tag) (string, bool) {
		if tag.String() == "ca" {
			return "🇪🇸", true
		}
		return "🇬🇧", true
	})
	h := newTestServer(t, c, src)

	rec := doGet(h, "/compare")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{"locale":"catalan","flag":"🇦🇩","derived":"🇪🇸","hasDerived":true}]`, rec.Body.String())

	var out []compare.Mismatch
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Equal(t, []compare.Mismatch{{Locale: locale.Catalan, Flag: "🇦🇩", Derived: "🇪🇸", HasDerived: true}}, out)

	c.Locales = []locale.Locale{locale.EnglishGB}
	require.NoError(t, h.UpdateConfig(c))
	rec = doGet(h, "/compare")
	assert.Equal(t, "[]\n", rec.Body.String())
}
