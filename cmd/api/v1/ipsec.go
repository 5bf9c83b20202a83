package v1

import (
	"github.com/openfw/pfsec/cmd/api"
	"github.com/openfw/pfsec/pkg/schema"
	"github.com/urfave/cli/v2"
)

type IPSec struct {
	Cmd
}

func (o IPSec) Url(prefix string, action string) string {
	url := prefix + "/api/ipsec/phase1"
	if action != "" {
		url = prefix + "/api/ipsec/" + action
	}
	return url
}

func phase1Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "descr", Required: true, Usage: "the name of the tunnel"},
		&cli.StringFlag{Name: "iketype", Usage: "ikev1|ikev2|auto"},
		&cli.StringFlag{Name: "protocol", Usage: "inet|inet6|both"},
		&cli.StringFlag{Name: "interface", Usage: "local endpoint interface"},
		&cli.StringFlag{Name: "remote-gateway", Usage: "remote gateway address or name"},
		&cli.IntFlag{Name: "nattport", Usage: "NAT-T UDP port on the remote gateway"},
		&cli.BoolFlag{Name: "disabled", Usage: "keep the entry without loading it"},
		&cli.StringFlag{Name: "authentication-method", Usage: "pre_shared_key|rsasig"},
		&cli.StringFlag{Name: "mode", Usage: "main|aggressive"},
		&cli.StringFlag{Name: "myid-type", Usage: "local identifier type"},
		&cli.StringFlag{Name: "myid-data", Usage: "local identifier value"},
		&cli.StringFlag{Name: "peerid-type", Usage: "remote identifier type"},
		&cli.StringFlag{Name: "peerid-data", Usage: "remote identifier value"},
		&cli.StringFlag{Name: "certificate", Usage: "a certificate previously configured"},
		&cli.StringFlag{Name: "certificate-authority", Usage: "a CA previously configured"},
		&cli.StringFlag{Name: "preshared-key", Usage: "must match on both peers"},
		&cli.IntFlag{Name: "lifetime", Usage: "rekey interval in seconds"},
		&cli.IntFlag{Name: "rekey-time", Usage: "seconds before new keys"},
		&cli.IntFlag{Name: "reauth-time", Usage: "seconds before full reauthentication"},
		&cli.IntFlag{Name: "rand-time", Usage: "random spread subtracted from the timers"},
		&cli.BoolFlag{Name: "disable-rekey", Usage: "do not renegotiate on expiry"},
		&cli.IntFlag{Name: "margintime", Usage: "seconds before expiry to renegotiate"},
		&cli.StringFlag{Name: "startaction", Usage: "none|start|trap"},
		&cli.StringFlag{Name: "closeaction", Usage: "none|start|trap"},
		&cli.BoolFlag{Name: "responderonly", Usage: "never initiate this connection"},
		&cli.BoolFlag{Name: "disable-reauth", Usage: "(ikev2) rekey without reauthentication"},
		&cli.StringFlag{Name: "mobike", Usage: "(ikev2) on|off"},
		&cli.BoolFlag{Name: "gw-duplicates", Usage: "allow duplicate remote gateways"},
		&cli.BoolFlag{Name: "splitconn", Usage: "(ikev2) split phase2 entries"},
		&cli.StringFlag{Name: "nat-traversal", Usage: "on|force"},
		&cli.BoolFlag{Name: "enable-dpd", Usage: "enable dead peer detection"},
		&cli.IntFlag{Name: "dpd-delay", Usage: "delay between liveness requests"},
		&cli.IntFlag{Name: "dpd-maxfail", Usage: "failures allowed before disconnect"},
		&cli.BoolFlag{Name: "no-apply", Usage: "stage the change without committing"},
		&cli.BoolFlag{Name: "check", Usage: "compute changes without any mutation"},
	}
}

func intOpt(c *cli.Context, name string) *int {
	if !c.IsSet(name) {
		return nil
	}
	value := c.Int(name)
	return &value
}

func boolOpt(c *cli.Context, name string) *bool {
	if !c.IsSet(name) {
		return nil
	}
	value := c.Bool(name)
	return &value
}

func phase1FromFlags(c *cli.Context) *schema.Phase1 {
	data := &schema.Phase1{
		Descr:                c.String("descr"),
		IkeType:              c.String("iketype"),
		Protocol:             c.String("protocol"),
		Interface:            c.String("interface"),
		RemoteGateway:        c.String("remote-gateway"),
		AuthenticationMethod: c.String("authentication-method"),
		Mode:                 c.String("mode"),
		MyIdType:             c.String("myid-type"),
		MyIdData:             c.String("myid-data"),
		PeerIdType:           c.String("peerid-type"),
		PeerIdData:           c.String("peerid-data"),
		Certificate:          c.String("certificate"),
		CertificateAuthority: c.String("certificate-authority"),
		PresharedKey:         c.String("preshared-key"),
		StartAction:          c.String("startaction"),
		CloseAction:          c.String("closeaction"),
		Mobike:               c.String("mobike"),
		NatTraversal:         c.String("nat-traversal"),
		NattPort:             intOpt(c, "nattport"),
		Disabled:             boolOpt(c, "disabled"),
		Lifetime:             intOpt(c, "lifetime"),
		RekeyTime:            intOpt(c, "rekey-time"),
		ReauthTime:           intOpt(c, "reauth-time"),
		RandTime:             intOpt(c, "rand-time"),
		DisableRekey:         boolOpt(c, "disable-rekey"),
		MarginTime:           intOpt(c, "margintime"),
		ResponderOnly:        boolOpt(c, "responderonly"),
		DisableReauth:        boolOpt(c, "disable-reauth"),
		GwDuplicates:         boolOpt(c, "gw-duplicates"),
		SplitConn:            boolOpt(c, "splitconn"),
		EnableDpd:            boolOpt(c, "enable-dpd"),
		DpdDelay:             intOpt(c, "dpd-delay"),
		DpdMaxFail:           intOpt(c, "dpd-maxfail"),
	}
	if c.Bool("no-apply") {
		apply := false
		data.Apply = &apply
	}
	return data
}

func (o IPSec) runUrl(c *cli.Context) string {
	url := o.Url(c.String("url"), "")
	if c.Bool("check") {
		url += "?check=true"
	}
	return url
}

func (o IPSec) ResultTmpl() string {
	return `# changed: {{ .Changed }}
{{- range .Commands }}
{{ . }}
{{- end }}
`
}

func (o IPSec) Add(c *cli.Context) error {
	data := phase1FromFlags(c)
	clt := o.NewHttp(c.String("token"))
	var result schema.Phase1Result
	if err := clt.PostJSON(o.runUrl(c), data, &result); err != nil {
		return err
	}
	return o.Out(result, c.String("format"), o.ResultTmpl())
}

func (o IPSec) Remove(c *cli.Context) error {
	data := &schema.Phase1{
		Descr: c.String("descr"),
	}
	clt := o.NewHttp(c.String("token"))
	var result schema.Phase1Result
	if err := clt.DeleteJSON(o.runUrl(c), data, &result); err != nil {
		return err
	}
	return o.Out(result, c.String("format"), o.ResultTmpl())
}

func (o IPSec) Apply(c *cli.Context) error {
	url := o.Url(c.String("url"), "apply")
	clt := o.NewHttp(c.String("token"))
	return clt.PutJSON(url, nil, nil)
}

func (o IPSec) Tmpl() string {
	return `# total {{ len . }}
{{ps -20 "Descr"}} {{ps -8 "IkeType"}} {{ps -12 "Interface"}} {{ps -20 "Remote"}} {{ps -22 "Authentication"}} {{ps -10 "Status"}}
{{- range . }}
{{ps -20 .Descr}} {{ps -8 .IkeType}} {{ps -12 .Interface}} {{ps -20 .RemoteGateway}} {{ps -22 .AuthenticationMethod}} {{ps -10 .Status}}
{{- end }}
`
}

func (o IPSec) List(c *cli.Context) error {
	url := o.Url(c.String("url"), "")
	clt := o.NewHttp(c.String("token"))
	var items []schema.Phase1
	if err := clt.GetJSON(url, &items); err != nil {
		return err
	}
	return o.Out(items, c.String("format"), o.Tmpl())
}

func (o IPSec) Commands(app *api.App) {
	app.Command(&cli.Command{
		Name:    "phase1",
		Aliases: []string{"p1"},
		Usage:   "IPsec phase1 configuration",
		Action:  o.List,
		Subcommands: []*cli.Command{
			{
				Name:   "add",
				Usage:  "Add or update a phase1 entry",
				Flags:  phase1Flags(),
				Action: o.Add,
			},
			{
				Name:    "remove",
				Usage:   "Remove a phase1 entry",
				Aliases: []string{"rm"},
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "descr", Required: true},
					&cli.BoolFlag{Name: "check"},
				},
				Action: o.Remove,
			},
			{
				Name:   "apply",
				Usage:  "Commit staged changes",
				Action: o.Apply,
			},
			{
				Name:    "list",
				Usage:   "Display all phase1 entries",
				Aliases: []string{"ls"},
				Action:  o.List,
			},
		},
	})
}
