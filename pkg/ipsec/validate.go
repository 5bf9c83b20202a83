package ipsec

import (
	"fmt"

	"github.com/openfw/pfsec/pkg/schema"
)

// InvalidError reports a single option violating the schema. It is always
// raised before the engine is touched, so an invalid request never mutates
// the target configuration.
type InvalidError struct {
	Option string
	Value  string
	Reason string
}

func (e *InvalidError) Error() string {
	if e.Value != "" {
		return fmt.Sprintf("%s: '%s' %s", e.Option, e.Value, e.Reason)
	}
	return fmt.Sprintf("%s: %s", e.Option, e.Reason)
}

func invalid(option, value, reason string) error {
	return &InvalidError{Option: option, Value: value, Reason: reason}
}

func checkChoice(option, value string, choices []string) error {
	if value == "" || hasChoice(choices, value) {
		return nil
	}
	return invalid(option, value, fmt.Sprintf("is not a valid choice of %v", choices))
}

func required(option, with string) error {
	return invalid(option, "", "option is required "+with)
}

func checkChoices(data *schema.Phase1) error {
	if err := checkChoice("state", data.State, States); err != nil {
		return err
	}
	if err := checkChoice("iketype", data.IkeType, IkeTypes); err != nil {
		return err
	}
	if err := checkChoice("protocol", data.Protocol, Protocols); err != nil {
		return err
	}
	if err := checkChoice("authentication_method", data.AuthenticationMethod, AuthMethods); err != nil {
		return err
	}
	if err := checkChoice("mode", data.Mode, Modes); err != nil {
		return err
	}
	if err := checkChoice("myid_type", data.MyIdType, MyIdTypes); err != nil {
		return err
	}
	if err := checkChoice("peerid_type", data.PeerIdType, PeerIdTypes); err != nil {
		return err
	}
	if err := checkChoice("startaction", data.StartAction, Actions); err != nil {
		return err
	}
	if err := checkChoice("closeaction", data.CloseAction, Actions); err != nil {
		return err
	}
	if err := checkChoice("mobike", data.Mobike, MobikeModes); err != nil {
		return err
	}
	return checkChoice("nat_traversal", data.NatTraversal, NatTModes)
}

func checkTimers(data *schema.Phase1) error {
	for _, t := range []struct {
		option string
		value  *int
	}{
		{"lifetime", data.Lifetime},
		{"rekey_time", data.RekeyTime},
		{"reauth_time", data.ReauthTime},
		{"rand_time", data.RandTime},
		{"margintime", data.MarginTime},
		{"dpd_delay", data.DpdDelay},
		{"dpd_maxfail", data.DpdMaxFail},
	} {
		if t.value != nil && *t.value < 0 {
			return invalid(t.option, fmt.Sprintf("%d", *t.value), "must not be negative")
		}
	}
	lifetime := DefaultLifetime
	if data.Lifetime != nil {
		lifetime = *data.Lifetime
	}
	if data.MarginTime != nil {
		if data.RekeyTime != nil {
			return invalid("margintime", "", "mutually exclusive with rekey_time")
		}
		if data.ReauthTime != nil {
			return invalid("margintime", "", "mutually exclusive with reauth_time")
		}
		if *data.MarginTime >= lifetime {
			return invalid("margintime", fmt.Sprintf("%d", *data.MarginTime),
				"must be smaller than the lifetime")
		}
	}
	if data.DisableRekey != nil && *data.DisableRekey {
		if data.RekeyTime != nil {
			return invalid("rekey_time", "", "mutually exclusive with disable_rekey")
		}
		if data.MarginTime != nil {
			return invalid("margintime", "", "mutually exclusive with disable_rekey")
		}
	}
	return nil
}

// Validate checks a phase1 request against the documented schema: choice
// sets, options required by the selected state, authentication or
// identifier type, and option pairs that exclude each other.
func Validate(data *schema.Phase1) error {
	if data.Descr == "" {
		return required("descr", "")
	}
	if err := checkChoices(data); err != nil {
		return err
	}
	if data.State == "absent" {
		return nil
	}

	for _, r := range []struct {
		option string
		value  string
	}{
		{"iketype", data.IkeType},
		{"interface", data.Interface},
		{"remote_gateway", data.RemoteGateway},
		{"authentication_method", data.AuthenticationMethod},
	} {
		if r.value == "" {
			return required(r.option, "when state is present")
		}
	}

	// Negotiation mode exists for IKEv1 only. Auto may fall back to
	// IKEv1 as responder, so it needs one too.
	if data.IkeType == "ikev2" {
		if data.Mode != "" {
			return invalid("mode", data.Mode, "is only valid for ikev1 or auto")
		}
	} else {
		if data.Mode == "" {
			return required("mode", "with "+data.IkeType)
		}
	}
	if data.IkeType == "ikev1" {
		if data.DisableReauth != nil && *data.DisableReauth {
			return invalid("disable_reauth", "", "is only valid for ikev2")
		}
		if data.Mobike == "on" {
			return invalid("mobike", "on", "is only valid for ikev2")
		}
		if data.SplitConn != nil && *data.SplitConn {
			return invalid("splitconn", "", "is only valid for ikev2")
		}
	}

	switch data.AuthenticationMethod {
	case "pre_shared_key":
		if data.PresharedKey == "" {
			return required("preshared_key", "with pre_shared_key")
		}
	case "rsasig":
		if data.Certificate == "" {
			return required("certificate", "with rsasig")
		}
		if data.CertificateAuthority == "" {
			return required("certificate_authority", "with rsasig")
		}
	}

	myType := data.MyIdType
	if myType == "" {
		myType = "myaddress"
	}
	if myType != "myaddress" && data.MyIdData == "" {
		return required("myid_data", "with myid_type "+myType)
	}
	peerType := data.PeerIdType
	if peerType == "" {
		peerType = "peeraddress"
	}
	if peerType != "any" && peerType != "peeraddress" && data.PeerIdData == "" {
		return required("peerid_data", "with peerid_type "+peerType)
	}

	if data.NattPort != nil && (*data.NattPort < 1 || *data.NattPort > 65535) {
		return invalid("nattport", fmt.Sprintf("%d", *data.NattPort), "is not a valid port")
	}
	if data.EnableDpd != nil && !*data.EnableDpd {
		if data.DpdDelay != nil {
			return invalid("dpd_delay", "", "dead peer detection is disabled")
		}
		if data.DpdMaxFail != nil {
			return invalid("dpd_maxfail", "", "dead peer detection is disabled")
		}
	}
	return checkTimers(data)
}
