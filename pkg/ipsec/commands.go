package ipsec

import (
	"fmt"
	"strconv"
	"strings"

	co "github.com/openfw/pfsec/pkg/config"
)

// The change descriptors mirror what an operator would type if the
// firewall had a CLI: create/update/delete with option=value pairs in the
// documented option order.

type field struct {
	name  string
	value func(c *co.Phase1) string
}

func fromBool(v bool) string {
	if v {
		return "True"
	}
	return "False"
}

func fromInt(v int) string {
	if v == 0 {
		return ""
	}
	return strconv.Itoa(v)
}

var phase1Fields = []field{
	{"iketype", func(c *co.Phase1) string { return c.IkeType }},
	{"protocol", func(c *co.Phase1) string { return c.Protocol }},
	{"interface", func(c *co.Phase1) string { return c.Interface }},
	{"remote_gateway", func(c *co.Phase1) string { return c.RemoteGateway }},
	{"nattport", func(c *co.Phase1) string { return fromInt(c.NattPort) }},
	{"disabled", func(c *co.Phase1) string { return fromBool(c.Disabled) }},
	{"authentication_method", func(c *co.Phase1) string { return c.AuthMethod }},
	{"mode", func(c *co.Phase1) string { return c.Mode }},
	{"myid_type", func(c *co.Phase1) string { return c.MyIdType }},
	{"myid_data", func(c *co.Phase1) string { return c.MyIdData }},
	{"peerid_type", func(c *co.Phase1) string { return c.PeerIdType }},
	{"peerid_data", func(c *co.Phase1) string { return c.PeerIdData }},
	{"certificate", func(c *co.Phase1) string { return c.Certificate }},
	{"certificate_authority", func(c *co.Phase1) string { return c.CaRef }},
	{"preshared_key", func(c *co.Phase1) string { return c.PresharedKey }},
	{"lifetime", func(c *co.Phase1) string { return strconv.Itoa(c.Lifetime) }},
	{"rekey_time", func(c *co.Phase1) string { return fromInt(c.RekeyTime) }},
	{"reauth_time", func(c *co.Phase1) string { return fromInt(c.ReauthTime) }},
	{"rand_time", func(c *co.Phase1) string { return fromInt(c.RandTime) }},
	{"disable_rekey", func(c *co.Phase1) string { return fromBool(c.DisableRekey) }},
	{"margintime", func(c *co.Phase1) string { return fromInt(c.MarginTime) }},
	{"startaction", func(c *co.Phase1) string { return c.StartAction }},
	{"closeaction", func(c *co.Phase1) string { return c.CloseAction }},
	{"responderonly", func(c *co.Phase1) string { return fromBool(c.ResponderOnly) }},
	{"disable_reauth", func(c *co.Phase1) string { return fromBool(c.DisableReauth) }},
	{"mobike", func(c *co.Phase1) string { return c.Mobike }},
	{"gw_duplicates", func(c *co.Phase1) string { return fromBool(c.GwDuplicates) }},
	{"splitconn", func(c *co.Phase1) string { return fromBool(c.SplitConn) }},
	{"nat_traversal", func(c *co.Phase1) string { return c.NatTraversal }},
	{"enable_dpd", func(c *co.Phase1) string { return fromBool(c.EnableDpd) }},
	{"dpd_delay", func(c *co.Phase1) string { return fromInt(c.DpdDelay) }},
	{"dpd_maxfail", func(c *co.Phase1) string { return fromInt(c.DpdMaxFail) }},
}

func CreateCommand(cfg *co.Phase1) string {
	var values []string
	for _, f := range phase1Fields {
		v := f.value(cfg)
		if v == "" || v == "False" {
			continue
		}
		values = append(values, fmt.Sprintf("%s='%s'", f.name, v))
	}
	return fmt.Sprintf("create ipsec '%s', %s", cfg.Descr, strings.Join(values, ", "))
}

// DiffPhase1 lists the option=value pairs where cfg differs from obj.
func DiffPhase1(obj, cfg *co.Phase1) []string {
	var sets []string
	for _, f := range phase1Fields {
		was, value := f.value(obj), f.value(cfg)
		if was == value {
			continue
		}
		sets = append(sets, fmt.Sprintf("%s='%s'", f.name, value))
	}
	return sets
}

func UpdateCommand(cfg *co.Phase1, sets []string) string {
	return fmt.Sprintf("update ipsec '%s' set %s", cfg.Descr, strings.Join(sets, ", "))
}

func DeleteCommand(descr string) string {
	return fmt.Sprintf("delete ipsec '%s'", descr)
}
