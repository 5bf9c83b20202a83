package vpn

import (
	"time"

	"github.com/openfw/pfsec/pkg/api"
	co "github.com/openfw/pfsec/pkg/config"
	"github.com/openfw/pfsec/pkg/libfw"
)

type Vpn struct {
	conf    *co.Daemon
	worker  *Worker
	http    *Http
	uuid    string
	newTime int64
	out     *libfw.SubLogger
}

func NewVpn(c *co.Daemon) *Vpn {
	v := &Vpn{
		conf:    c,
		worker:  NewWorker(c),
		newTime: time.Now().Unix(),
		out:     libfw.NewSubLogger("vpn"),
	}
	v.http = NewHttp(c)
	return v
}

func (v *Vpn) Initialize() {
	v.uuid = libfw.GenString(13)
	v.worker.Initialize()
	api.Call.SetSecer(v.worker)
}

func (v *Vpn) Start() {
	v.out.Info("Vpn.Start")
	v.worker.Start()
	v.http.Start()
}

func (v *Vpn) Stop() {
	v.out.Info("Vpn.Stop")
	v.http.Shutdown()
	v.worker.Stop()
}

func (v *Vpn) UUID() string {
	return v.uuid
}

func (v *Vpn) UpTime() int64 {
	return time.Now().Unix() - v.newTime
}
