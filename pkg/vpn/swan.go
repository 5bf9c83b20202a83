package vpn

import (
	"fmt"
	"os"
	"strings"
	"text/template"

	co "github.com/openfw/pfsec/pkg/config"
	"github.com/openfw/pfsec/pkg/libfw"
)

const connTmpl = `
conn {{ .Name }}
    ikev2={{ .Ikev2 }}
{{- if .Aggressive }}
    aggressive=yes
{{- end }}
    left={{ .Left }}
{{- if .LeftId }}
    leftid={{ .LeftId }}
{{- end }}
    right={{ .Right }}
{{- if .RightId }}
    rightid={{ .RightId }}
{{- end }}
{{- if .NattPort }}
    rightikeport={{ .NattPort }}
{{- end }}
    ikelifetime={{ .Lifetime }}s
{{- if .MarginTime }}
    margintime={{ .MarginTime }}s
{{- end }}
{{- if .DisableRekey }}
    rekey=no
{{- end }}
{{- if .DisableReauth }}
    reauth=no
{{- end }}
{{- if .Mobike }}
    mobike=yes
{{- end }}
{{- if .ForceEncaps }}
    encapsulation=yes
{{- end }}
{{- if .DpdDelay }}
    dpddelay={{ .DpdDelay }}s
    dpdtimeout={{ .DpdTimeout }}s
    dpdaction=restart
{{- end }}
{{- if .Cert }}
    authby=rsasig
    leftcert={{ .Cert }}
{{- else }}
    authby=secret
{{- end }}
    auto={{ .Auto }}`

const secretTmpl = `
%any {{ .Right }} : PSK "{{ .Secret }}"`

type connData struct {
	Name          string
	Ikev2         string
	Aggressive    bool
	Left          string
	LeftId        string
	Right         string
	RightId       string
	NattPort      int
	Lifetime      int
	MarginTime    int
	DisableRekey  bool
	DisableReauth bool
	Mobike        bool
	ForceEncaps   bool
	DpdDelay      int
	DpdTimeout    int
	Cert          string
	Secret        string
	Auto          string
}

func connName(descr string) string {
	return "con_" + strings.ReplaceAll(descr, " ", "_")
}

func connId(idType, idData string) string {
	switch idType {
	case "myaddress", "peeraddress", "any", "auto":
		return ""
	case "fqdn", "dyn_dns":
		return "@" + idData
	case "keyid tag":
		return "@#" + idData
	default:
		return idData
	}
}

func newConnData(obj *co.Phase1, left string) *connData {
	data := &connData{
		Name:          connName(obj.Descr),
		Left:          left,
		LeftId:        connId(obj.MyIdType, obj.MyIdData),
		Right:         obj.RemoteGateway,
		RightId:       connId(obj.PeerIdType, obj.PeerIdData),
		NattPort:      obj.NattPort,
		Lifetime:      obj.Lifetime,
		MarginTime:    obj.MarginTime,
		DisableRekey:  obj.DisableRekey,
		DisableReauth: obj.DisableReauth,
		Mobike:        obj.Mobike == "on",
		ForceEncaps:   obj.NatTraversal == "force",
		Cert:          obj.Certificate,
		Secret:        obj.PresharedKey,
	}
	switch obj.IkeType {
	case "ikev1":
		data.Ikev2 = "never"
		data.Aggressive = obj.Mode == "aggressive"
	case "ikev2":
		data.Ikev2 = "insist"
	default:
		data.Ikev2 = "propose"
		data.Aggressive = obj.Mode == "aggressive"
	}
	if obj.EnableDpd {
		data.DpdDelay = obj.DpdDelay
		data.DpdTimeout = obj.DpdDelay * obj.DpdMaxFail
	}
	switch obj.StartAction {
	case "start":
		data.Auto = "start"
	case "trap":
		data.Auto = "route"
	default:
		data.Auto = "add"
	}
	return data
}

func (w *Worker) saveSec(name, tmpl string, data interface{}) error {
	file := fmt.Sprintf("%s/%s", w.conf.IPsecDir, name)
	out, err := libfw.CreateFile(file)
	if err != nil || out == nil {
		return err
	}
	defer out.Close()
	obj, err := template.New("main").Parse(tmpl)
	if err != nil {
		return err
	}
	return obj.Execute(out, data)
}

// applyConns renders every enabled entry and loads it into the swan
// daemon. The reload is best effort, the rendered files are the durable
// part.
func (w *Worker) applyConns() error {
	for _, obj := range w.spec.Phase1 {
		if obj.Disabled {
			w.removeConn(connName(obj.Descr))
			continue
		}
		if err := w.addConn(obj); err != nil {
			return err
		}
	}
	return nil
}

func (w *Worker) addConn(obj *co.Phase1) error {
	left := "%defaultroute"
	if addr, err := LocalAddress(obj.Interface); err == nil {
		left = addr
	}
	data := newConnData(obj, left)
	if obj.AuthMethod == "pre_shared_key" {
		if err := w.saveSec(data.Name+".secrets", secretTmpl, data); err != nil {
			w.out.Error("Worker.addConn %s", err)
			return err
		}
		libfw.Exec(IPSecBin, "auto", "--rereadsecrets")
	}
	if err := w.saveSec(data.Name+".conf", connTmpl, data); err != nil {
		w.out.Error("Worker.addConn %s", err)
		return err
	}
	w.startConn(data.Name, data.Auto)
	return nil
}

func (w *Worker) startConn(name, auto string) {
	action := "--add"
	switch auto {
	case "start":
		action = "--start"
	case "route":
		action = "--route"
	}
	promise := libfw.NewPromise()
	promise.Go(func() error {
		if out, err := libfw.Exec(IPSecBin, "auto", action, "--asynchronous", name); err != nil {
			w.out.Warn("Worker.startConn: %v %s", out, err)
			return err
		}
		w.out.Info("Worker.startConn: %s success", name)
		return nil
	})
}

func (w *Worker) removeConn(name string) {
	libfw.Exec(IPSecBin, "auto", "--delete", "--asynchronous", name)
	cfile := fmt.Sprintf("%s/%s.conf", w.conf.IPsecDir, name)
	sfile := fmt.Sprintf("%s/%s.secrets", w.conf.IPsecDir, name)
	if err := libfw.FileExist(cfile); err == nil {
		if err := os.Remove(cfile); err != nil {
			w.out.Warn("Worker.removeConn %s", err)
		}
	}
	if err := libfw.FileExist(sfile); err == nil {
		if err := os.Remove(sfile); err != nil {
			w.out.Warn("Worker.removeConn %s", err)
		}
	}
}
