package server

import (
	"fmt"
	"github.com/1f349/kbflags/lists"
	"github.com/1f349/kbflags/locale"
	"github.com/julienschmidt/httprouter"
	"golang.org/x/text/language"
	"net/http"
	"time"
)

type localeInfo struct {
	lists.Entry
	Tag  string `json:"tag"`
	Kind string `json:"kind"`
}

// displayTag picks the label language from the lang query parameter or the
// config, language.Und means self-named labels.
func (h *HttpServer) displayTag(req *http.Request) (language.Tag, error) {
	if q := req.URL.Query().Get("lang"); q != "" {
		return language.Parse(q)
	}
	if t, ok := h.conf.Load().DisplayTag(); ok {
		return t, nil
	}
	return language.Und, nil
}

func (h *HttpServer) listLocales(rw http.ResponseWriter, req *http.Request, _ httprouter.Params) {
	tag, err := h.displayTag(req)
	if err != nil {
		http.Error(rw, "Invalid language", http.StatusBadRequest)
		return
	}

	c := h.conf.Load()
	set := c.LocaleSet()
	ids := req.URL.Query().Get("ids")
	if ids != "" {
		set, err = locale.ParseList(ids)
		if err != nil {
			http.Error(rw, "Unknown locale", http.StatusBadRequest)
			return
		}
	}

	key := fmt.Sprintf("%d:%s:%s", h.gen.Load(), tag, ids)
	if v, ok := h.listings.Get(key); ok {
		writeJson(rw, v)
		return
	}

	v := lists.ListKeyboardLocaleIn(tag, set)
	h.listings.Set(key, v, time.Now().Add(c.CacheTtl))
	writeJson(rw, v)
}

func (h *HttpServer) getLocale(rw http.ResponseWriter, req *http.Request, params httprouter.Params) {
	l, err := locale.Parse(params.ByName("id"))
	if err != nil {
		http.Error(rw, "Unknown locale", http.StatusNotFound)
		return
	}
	tag, err := h.displayTag(req)
	if err != nil {
		http.Error(rw, "Invalid language", http.StatusBadRequest)
		return
	}
	entry := lists.ListKeyboardLocaleIn(tag, []locale.Locale{l})[0]
	writeJson(rw, localeInfo{
		Entry: entry,
		Tag:   l.Tag().String(),
		Kind:  l.Flag().Kind().String(),
	})
}

func (h *HttpServer) getFlag(rw http.ResponseWriter, _ *http.Request, params httprouter.Params) {
	l, err := locale.Parse(params.ByName("id"))
	if err != nil {
		http.Error(rw, "Unknown locale", http.StatusNotFound)
		return
	}
	rw.Header().Set("Content-Type", "text/plain; charset=utf-8")
	rw.WriteHeader(http.StatusOK)
	_, _ = rw.Write([]byte(l.Flag()))
}
