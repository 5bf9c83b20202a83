package vpn

import (
	"errors"
	"strings"
	"sync"

	co "github.com/openfw/pfsec/pkg/config"
	"github.com/openfw/pfsec/pkg/ipsec"
	"github.com/openfw/pfsec/pkg/libfw"
	"github.com/openfw/pfsec/pkg/schema"
)

const IPSecBin = "/usr/sbin/ipsec"

// Worker owns the phase1 entry list and implements ipsec.Engine over it:
// changes are staged in memory and only made durable by Commit, which
// persists the list and reloads the swan daemon.
type Worker struct {
	mutex       sync.Mutex
	conf        *co.Daemon
	spec        *co.IPsec
	undo        *co.IPsec
	undoRemoved []string
	undoDirty   bool
	removed     []string
	dirty       bool
	out         *libfw.SubLogger
}

func NewWorker(c *co.Daemon) *Worker {
	return &Worker{
		conf: c,
		spec: &c.IPsec,
		out:  libfw.NewSubLogger("vpn"),
	}
}

func (w *Worker) Initialize() {
	w.out.Info("Worker.Initialize %d entries", len(w.spec.Phase1))
}

func (w *Worker) Start() {
	w.out.Info("Worker.Start")
	phase1Metric.Set(float64(len(w.spec.Phase1)))
	if err := w.applyConns(); err != nil {
		w.out.Warn("Worker.Start %s", err)
	}
}

func (w *Worker) Stop() {
	w.out.Info("Worker.Stop")
	for _, obj := range w.spec.Phase1 {
		w.removeConn(connName(obj.Descr))
	}
}

func (w *Worker) Begin() {
	w.undo = w.spec.Clone()
	w.undoRemoved = append([]string(nil), w.removed...)
	w.undoDirty = w.dirty
}

func (w *Worker) ConfigurePhase1(cfg *co.Phase1) ([]string, error) {
	if !cfg.GwDuplicates && !cfg.Disabled {
		for _, obj := range w.spec.Phase1 {
			if obj.Descr == cfg.Descr || obj.Disabled {
				continue
			}
			if obj.RemoteGateway == cfg.RemoteGateway {
				return nil, libfw.NewErr("remote_gateway %s already used by '%s'",
					cfg.RemoteGateway, obj.Descr)
			}
		}
	}
	obj, _ := w.spec.FindPhase1(cfg.Descr)
	if obj == nil {
		w.spec.AddPhase1(cfg)
		w.dirty = true
		return []string{ipsec.CreateCommand(cfg)}, nil
	}
	sets := ipsec.DiffPhase1(obj, cfg)
	if len(sets) == 0 {
		return nil, nil
	}
	*obj = *cfg
	w.dirty = true
	return []string{ipsec.UpdateCommand(cfg, sets)}, nil
}

func (w *Worker) RemovePhase1(descr string) ([]string, error) {
	obj, removed := w.spec.DelPhase1(descr)
	if !removed {
		return nil, nil
	}
	w.removed = append(w.removed, obj.Descr)
	w.dirty = true
	return []string{ipsec.DeleteCommand(obj.Descr)}, nil
}

func (w *Worker) Commit() error {
	if !w.dirty {
		return nil
	}
	if err := w.conf.SaveIPsec(); err != nil {
		return err
	}
	for _, descr := range w.removed {
		w.removeConn(connName(descr))
	}
	if err := w.applyConns(); err != nil {
		w.out.Warn("Worker.Commit %s", err)
	}
	w.removed = nil
	w.undo = nil
	w.dirty = false
	commitMetric.Inc()
	phase1Metric.Set(float64(len(w.spec.Phase1)))
	return nil
}

func (w *Worker) Rollback() {
	if w.undo == nil {
		return
	}
	*w.spec = *w.undo
	w.removed = w.undoRemoved
	w.dirty = w.undoDirty
	w.undo = nil
}

func (w *Worker) RunPhase1(data *schema.Phase1, check bool) (*schema.Phase1Result, error) {
	w.mutex.Lock()
	defer w.mutex.Unlock()
	m := ipsec.NewModule(w)
	m.CheckMode = check
	result, err := m.Run(data)
	if err != nil {
		var bad *ipsec.InvalidError
		if errors.As(err, &bad) {
			invalidMetric.Inc()
		}
	}
	return result, err
}

func (w *Worker) ApplyPhase1() error {
	w.mutex.Lock()
	defer w.mutex.Unlock()
	return w.Commit()
}

func (w *Worker) ListPhase1(call func(obj schema.Phase1)) {
	w.mutex.Lock()
	defer w.mutex.Unlock()
	status := w.Status()
	for _, obj := range w.spec.Phase1 {
		data := NewPhase1Schema(obj)
		if state, ok := status[connName(obj.Descr)]; ok {
			data.Status = state
		}
		call(data)
	}
}

// Status asks the swan daemon for its connection list. Missing binary or
// a stopped daemon is not an error, entries just come back stateless.
func (w *Worker) Status() map[string]string {
	status := make(map[string]string)
	out, err := libfw.Exec(IPSecBin, "status")
	if err != nil {
		w.out.Debug("Worker.Status: %s", err)
		return status
	}
	lines := strings.Split(out, "\n")
	start := false
	for _, line := range lines {
		values := strings.SplitN(line, " ", 8)
		if len(values) < 3 {
			continue
		}
		if values[1] == "Total" && values[2] == "IPsec" {
			break
		}
		if values[1] == "Connection" && values[2] == "list:" {
			start = true
			continue
		}
		if !start || len(values) < 4 {
			continue
		}
		title := strings.Trim(values[1], ":")
		name := strings.Trim(title, "\"")
		state := strings.Trim(values[3], ";")
		if _, ok := status[name]; !ok {
			status[name] = state
		}
	}
	return status
}

func intPtr(v int) *int {
	return &v
}

func boolPtr(v bool) *bool {
	return &v
}

func NewPhase1Schema(obj *co.Phase1) schema.Phase1 {
	data := schema.Phase1{
		Descr:                obj.Descr,
		IkeType:              obj.IkeType,
		Protocol:             obj.Protocol,
		Interface:            obj.Interface,
		RemoteGateway:        obj.RemoteGateway,
		AuthenticationMethod: obj.AuthMethod,
		Mode:                 obj.Mode,
		MyIdType:             obj.MyIdType,
		MyIdData:             obj.MyIdData,
		PeerIdType:           obj.PeerIdType,
		PeerIdData:           obj.PeerIdData,
		Certificate:          obj.Certificate,
		CertificateAuthority: obj.CaRef,
		PresharedKey:         obj.PresharedKey,
		StartAction:          obj.StartAction,
		CloseAction:          obj.CloseAction,
		Mobike:               obj.Mobike,
		NatTraversal:         obj.NatTraversal,
		Lifetime:             intPtr(obj.Lifetime),
		EnableDpd:            boolPtr(obj.EnableDpd),
	}
	if obj.NattPort != 0 {
		data.NattPort = intPtr(obj.NattPort)
	}
	if obj.Disabled {
		data.Disabled = boolPtr(true)
	}
	if obj.RekeyTime != 0 {
		data.RekeyTime = intPtr(obj.RekeyTime)
	}
	if obj.ReauthTime != 0 {
		data.ReauthTime = intPtr(obj.ReauthTime)
	}
	if obj.RandTime != 0 {
		data.RandTime = intPtr(obj.RandTime)
	}
	if obj.DisableRekey {
		data.DisableRekey = boolPtr(true)
	}
	if obj.MarginTime != 0 {
		data.MarginTime = intPtr(obj.MarginTime)
	}
	if obj.ResponderOnly {
		data.ResponderOnly = boolPtr(true)
	}
	if obj.DisableReauth {
		data.DisableReauth = boolPtr(true)
	}
	if obj.GwDuplicates {
		data.GwDuplicates = boolPtr(true)
	}
	if obj.SplitConn {
		data.SplitConn = boolPtr(true)
	}
	if obj.EnableDpd {
		data.DpdDelay = intPtr(obj.DpdDelay)
		data.DpdMaxFail = intPtr(obj.DpdMaxFail)
	}
	return data
}
