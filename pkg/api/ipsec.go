package api

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/openfw/pfsec/pkg/ipsec"
	"github.com/openfw/pfsec/pkg/libfw"
	"github.com/openfw/pfsec/pkg/schema"
)

type IPSec struct {
}

func (h IPSec) Router(router *mux.Router) {
	router.HandleFunc("/api/ipsec/phase1", h.Get).Methods("GET")
	router.HandleFunc("/api/ipsec/phase1", h.Post).Methods("POST")
	router.HandleFunc("/api/ipsec/phase1", h.Delete).Methods("DELETE")
	router.HandleFunc("/api/ipsec/apply", h.Apply).Methods("PUT")
}

func (h IPSec) Get(w http.ResponseWriter, r *http.Request) {
	libfw.Debug("IPSec.Get")
	if Call.secer == nil {
		http.Error(w, "ipsec is nil", http.StatusBadRequest)
		return
	}
	entries := make([]schema.Phase1, 0, 32)
	Call.secer.ListPhase1(func(obj schema.Phase1) {
		entries = append(entries, obj)
	})
	ResponseJson(w, entries)
}

func (h IPSec) run(w http.ResponseWriter, r *http.Request, data *schema.Phase1) {
	if Call.secer == nil {
		http.Error(w, "ipsec is nil", http.StatusBadRequest)
		return
	}
	check := GetQueryOne(r, "check") == "true"
	result, err := Call.secer.RunPhase1(data, check)
	if err != nil {
		var bad *ipsec.InvalidError
		if errors.As(err, &bad) {
			http.Error(w, err.Error(), http.StatusBadRequest)
		} else {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}
	ResponseJson(w, result)
}

func (h IPSec) Post(w http.ResponseWriter, r *http.Request) {
	data := &schema.Phase1{}
	if err := GetData(r, data); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	h.run(w, r, data)
}

func (h IPSec) Delete(w http.ResponseWriter, r *http.Request) {
	data := &schema.Phase1{}
	if err := GetData(r, data); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	data.State = "absent"
	h.run(w, r, data)
}

func (h IPSec) Apply(w http.ResponseWriter, r *http.Request) {
	if Call.secer == nil {
		http.Error(w, "ipsec is nil", http.StatusBadRequest)
		return
	}
	if err := Call.secer.ApplyPhase1(); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	ResponseMsg(w, 0, "")
}
