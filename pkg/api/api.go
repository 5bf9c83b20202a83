package api

import (
	"github.com/gorilla/mux"
	"github.com/openfw/pfsec/pkg/schema"
)

// Secer is what the HTTP layer needs from the IPsec worker.
type Secer interface {
	RunPhase1(data *schema.Phase1, check bool) (*schema.Phase1Result, error)
	ApplyPhase1() error
	ListPhase1(call func(obj schema.Phase1))
}

type APICall struct {
	secer Secer
}

func (i *APICall) SetSecer(value Secer) {
	i.secer = value
}

func (i *APICall) GetSecer() Secer {
	return i.secer
}

var Call = &APICall{}

func Add(router *mux.Router) {
	IPSec{}.Router(router)
	Version{}.Router(router)
}
