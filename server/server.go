package server

import (
	"encoding/json"
	"fmt"
	"github.com/1f349/cache"
	"github.com/1f349/kbflags/conf"
	"github.com/1f349/kbflags/flags"
	"github.com/1f349/kbflags/lists"
	"github.com/1f349/kbflags/logger"
	"github.com/julienschmidt/httprouter"
	"net/http"
	"sync/atomic"
	"time"
)

type HttpServer struct {
	Server   *http.Server
	r        *httprouter.Router
	conf     atomic.Pointer[conf.Conf]
	gen      atomic.Uint64
	source   flags.Source
	listings *cache.Cache[string, []lists.Entry]
}

// NewHttpServer creates the API server. A nil source compares against flags
// derived from the region of each locale.
func NewHttpServer(c conf.Conf, source flags.Source) (*HttpServer, error) {
	r := httprouter.New()

	hs := &HttpServer{
		Server: &http.Server{
			Addr:              c.Listen,
			Handler:           r,
			ReadTimeout:       time.Minute,
			ReadHeaderTimeout: time.Minute,
			WriteTimeout:      time.Minute,
			IdleTimeout:       time.Minute,
			MaxHeaderBytes:    2500,
		},
		r:        r,
		source:   source,
		listings: cache.New[string, []lists.Entry](),
	}
	if err := hs.UpdateConfig(c); err != nil {
		return nil, fmt.Errorf("failed to load initial config: %w", err)
	}

	r.GET("/", func(rw http.ResponseWriter, req *http.Request, _ httprouter.Params) {
		rw.WriteHeader(http.StatusOK)
		_, _ = fmt.Fprintln(rw, "Keyboard locale flags")
	})
	r.GET("/locales", hs.listLocales)
	r.GET("/locales/:id", hs.getLocale)
	r.GET("/locales/:id/flag", hs.getFlag)
	r.GET("/compare", hs.compareFlags)
	return hs, nil
}

func (h *HttpServer) UpdateConfig(c conf.Conf) error {
	if err := c.Validate(); err != nil {
		return err
	}
	h.conf.Store(&c)
	// cached listings from an older config are never looked up again
	h.gen.Add(1)
	return nil
}

func (h *HttpServer) flagSource() flags.Source {
	if h.source != nil {
		return h.source
	}
	return flags.RegionSource{MinConfidence: h.conf.Load().MinConfidence()}
}

func writeJson(rw http.ResponseWriter, v any) {
	rw.Header().Set("Content-Type", "application/json")
	rw.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(rw).Encode(v); err != nil {
		logger.Logger.Warn("Failed to write response", "err", err)
	}
}
