package server

import (
	"github.com/1f349/kbflags/compare"
	"github.com/1f349/kbflags/logger"
	"github.com/julienschmidt/httprouter"
	"net/http"
)

func (h *HttpServer) compareFlags(rw http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
	c := h.conf.Load()
	ms := compare.Run(h.flagSource(), c.LocaleSet())
	if c.Compare.Print {
		compare.Log(logger.Logger, ms)
	}
	if ms == nil {
		ms = []compare.Mismatch{}
	}
	writeJson(rw, ms)
}
