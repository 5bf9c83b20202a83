package api

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/openfw/pfsec/pkg/schema"
)

var (
	Ver  = "v0.3.1"
	Date = "2026-08-28"
)

type Version struct {
}

func (h Version) Router(router *mux.Router) {
	router.HandleFunc("/api/version", h.Get).Methods("GET")
}

func (h Version) Get(w http.ResponseWriter, r *http.Request) {
	ResponseJson(w, schema.Version{
		Version: Ver,
		Date:    Date,
	})
}
