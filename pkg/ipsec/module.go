package ipsec

import (
	co "github.com/openfw/pfsec/pkg/config"
	"github.com/openfw/pfsec/pkg/libfw"
	"github.com/openfw/pfsec/pkg/schema"
)

// Load validates a phase1 request and maps it to the resolved entry,
// defaults applied. Nothing is mutated on a validation failure.
func Load(data *schema.Phase1) (*co.Phase1, error) {
	if err := Validate(data); err != nil {
		return nil, err
	}
	cfg := &co.Phase1{
		Descr:         data.Descr,
		IkeType:       data.IkeType,
		Protocol:      data.Protocol,
		Interface:     data.Interface,
		RemoteGateway: data.RemoteGateway,
		AuthMethod:    data.AuthenticationMethod,
		Mode:          data.Mode,
		MyIdType:      data.MyIdType,
		MyIdData:      data.MyIdData,
		PeerIdType:    data.PeerIdType,
		PeerIdData:    data.PeerIdData,
		Certificate:   data.Certificate,
		CaRef:         data.CertificateAuthority,
		PresharedKey:  data.PresharedKey,
		StartAction:   data.StartAction,
		CloseAction:   data.CloseAction,
		Mobike:        data.Mobike,
		NatTraversal:  data.NatTraversal,
		EnableDpd:     true,
	}
	if data.NattPort != nil {
		cfg.NattPort = *data.NattPort
	}
	if data.Disabled != nil {
		cfg.Disabled = *data.Disabled
	}
	if data.Lifetime != nil {
		cfg.Lifetime = *data.Lifetime
	}
	if data.RekeyTime != nil {
		cfg.RekeyTime = *data.RekeyTime
	}
	if data.ReauthTime != nil {
		cfg.ReauthTime = *data.ReauthTime
	}
	if data.RandTime != nil {
		cfg.RandTime = *data.RandTime
	}
	if data.DisableRekey != nil {
		cfg.DisableRekey = *data.DisableRekey
	}
	if data.MarginTime != nil {
		cfg.MarginTime = *data.MarginTime
	}
	if data.ResponderOnly != nil {
		cfg.ResponderOnly = *data.ResponderOnly
	}
	if data.DisableReauth != nil {
		cfg.DisableReauth = *data.DisableReauth
	}
	if data.GwDuplicates != nil {
		cfg.GwDuplicates = *data.GwDuplicates
	}
	if data.SplitConn != nil {
		cfg.SplitConn = *data.SplitConn
	}
	if data.EnableDpd != nil {
		cfg.EnableDpd = *data.EnableDpd
	}
	if data.DpdDelay != nil {
		cfg.DpdDelay = *data.DpdDelay
	}
	if data.DpdMaxFail != nil {
		cfg.DpdMaxFail = *data.DpdMaxFail
	}
	cfg.Correct()
	return cfg, nil
}

// Module runs one phase1 request against an engine: validate, delegate,
// commit. With CheckMode the change set is computed and rolled back.
type Module struct {
	engine    Engine
	CheckMode bool
	out       *libfw.SubLogger
}

func NewModule(engine Engine) *Module {
	return &Module{
		engine: engine,
		out:    libfw.NewSubLogger("ipsec"),
	}
}

func (m *Module) Run(data *schema.Phase1) (*schema.Phase1Result, error) {
	var commands []string

	m.engine.Begin()
	switch data.State {
	case "absent":
		if err := Validate(data); err != nil {
			return nil, err
		}
		removed, err := m.engine.RemovePhase1(data.Descr)
		if err != nil {
			m.engine.Rollback()
			return nil, err
		}
		commands = removed
	default:
		cfg, err := Load(data)
		if err != nil {
			return nil, err
		}
		changed, err := m.engine.ConfigurePhase1(cfg)
		if err != nil {
			m.engine.Rollback()
			return nil, err
		}
		commands = changed
	}
	for _, c := range commands {
		m.out.Cmd("Module.Run %s", c)
	}

	apply := data.Apply == nil || *data.Apply
	if m.CheckMode {
		m.engine.Rollback()
	} else if apply {
		if err := m.engine.Commit(); err != nil {
			return nil, err
		}
	}
	return &schema.Phase1Result{
		Changed:  len(commands) > 0,
		Commands: commands,
	}, nil
}
