package ipsec

import (
	"errors"
	"testing"

	"github.com/openfw/pfsec/pkg/schema"
	"github.com/stretchr/testify/assert"
)

func pInt(v int) *int {
	return &v
}

func pBool(v bool) *bool {
	return &v
}

func phase1(set func(data *schema.Phase1)) *schema.Phase1 {
	data := &schema.Phase1{
		Descr:                "test_tunnel",
		IkeType:              "ikev2",
		Interface:            "wan",
		RemoteGateway:        "1.2.3.4",
		AuthenticationMethod: "pre_shared_key",
		PresharedKey:         "azerty123",
	}
	if set != nil {
		set(data)
	}
	return data
}

func TestValidateOk(t *testing.T) {
	assert.NoError(t, Validate(phase1(nil)), "minimal ikev2")
	assert.NoError(t, Validate(phase1(func(d *schema.Phase1) {
		d.IkeType = "ikev1"
		d.Mode = "main"
	})), "minimal ikev1")
	assert.NoError(t, Validate(phase1(func(d *schema.Phase1) {
		d.PeerIdType = "any"
	})), "peerid any needs no data")
	assert.NoError(t, Validate(phase1(func(d *schema.Phase1) {
		d.MarginTime = pInt(3600)
	})), "margintime below lifetime")
	assert.NoError(t, Validate(&schema.Phase1{
		Descr: "test_tunnel",
		State: "absent",
	}), "absent needs only descr")
}

func TestValidateInvalid(t *testing.T) {
	tests := []struct {
		option string
		set    func(d *schema.Phase1)
	}{
		{"descr", func(d *schema.Phase1) { d.Descr = "" }},
		{"state", func(d *schema.Phase1) { d.State = "gone" }},
		{"iketype", func(d *schema.Phase1) { d.IkeType = "ikev3" }},
		{"iketype", func(d *schema.Phase1) { d.IkeType = "" }},
		{"interface", func(d *schema.Phase1) { d.Interface = "" }},
		{"remote_gateway", func(d *schema.Phase1) { d.RemoteGateway = "" }},
		{"authentication_method", func(d *schema.Phase1) { d.AuthenticationMethod = "" }},
		{"mode", func(d *schema.Phase1) { d.Mode = "aggressive" }},
		{"mode", func(d *schema.Phase1) {
			d.IkeType = "ikev1"
		}},
		{"mobike", func(d *schema.Phase1) {
			d.IkeType = "ikev1"
			d.Mode = "main"
			d.Mobike = "on"
		}},
		{"disable_reauth", func(d *schema.Phase1) {
			d.IkeType = "ikev1"
			d.Mode = "main"
			d.DisableReauth = pBool(true)
		}},
		{"splitconn", func(d *schema.Phase1) {
			d.IkeType = "ikev1"
			d.Mode = "main"
			d.SplitConn = pBool(true)
		}},
		{"preshared_key", func(d *schema.Phase1) { d.PresharedKey = "" }},
		{"certificate", func(d *schema.Phase1) {
			d.AuthenticationMethod = "rsasig"
		}},
		{"certificate_authority", func(d *schema.Phase1) {
			d.AuthenticationMethod = "rsasig"
			d.Certificate = "cert1"
		}},
		{"myid_data", func(d *schema.Phase1) { d.MyIdType = "fqdn" }},
		{"peerid_data", func(d *schema.Phase1) { d.PeerIdType = "fqdn" }},
		{"nattport", func(d *schema.Phase1) { d.NattPort = pInt(0) }},
		{"nattport", func(d *schema.Phase1) { d.NattPort = pInt(70000) }},
		{"lifetime", func(d *schema.Phase1) { d.Lifetime = pInt(-1) }},
		{"margintime", func(d *schema.Phase1) {
			d.MarginTime = pInt(3600)
			d.RekeyTime = pInt(1800)
		}},
		{"margintime", func(d *schema.Phase1) {
			d.MarginTime = pInt(3600)
			d.ReauthTime = pInt(1800)
		}},
		{"margintime", func(d *schema.Phase1) {
			d.Lifetime = pInt(3600)
			d.MarginTime = pInt(3600)
		}},
		{"rekey_time", func(d *schema.Phase1) {
			d.DisableRekey = pBool(true)
			d.RekeyTime = pInt(1800)
		}},
		{"margintime", func(d *schema.Phase1) {
			d.DisableRekey = pBool(true)
			d.MarginTime = pInt(1800)
		}},
		{"dpd_delay", func(d *schema.Phase1) {
			d.EnableDpd = pBool(false)
			d.DpdDelay = pInt(30)
		}},
		{"dpd_maxfail", func(d *schema.Phase1) {
			d.EnableDpd = pBool(false)
			d.DpdMaxFail = pInt(3)
		}},
	}
	for _, tt := range tests {
		err := Validate(phase1(tt.set))
		assert.Error(t, err, "option %s", tt.option)
		var bad *InvalidError
		assert.True(t, errors.As(err, &bad), "option %s", tt.option)
		assert.Equal(t, tt.option, bad.Option, "option %s", tt.option)
	}
}
