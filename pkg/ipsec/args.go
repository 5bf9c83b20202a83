package ipsec

// Legal value sets for phase1 options, matching the firewall UI. An empty
// startaction/closeaction means "default" and is kept as such.
var (
	States      = []string{"present", "absent"}
	IkeTypes    = []string{"ikev1", "ikev2", "auto"}
	Protocols   = []string{"inet", "inet6", "both"}
	AuthMethods = []string{"pre_shared_key", "rsasig"}
	Modes       = []string{"main", "aggressive"}
	MyIdTypes   = []string{
		"myaddress", "address", "fqdn", "user_fqdn",
		"asn1dn", "keyid tag", "dyn_dns", "auto",
	}
	PeerIdTypes = []string{
		"any", "peeraddress", "address", "fqdn",
		"user_fqdn", "asn1dn", "keyid tag", "auto",
	}
	Actions     = []string{"", "none", "start", "trap"}
	MobikeModes = []string{"on", "off"}
	NatTModes   = []string{"on", "force"}
)

const (
	DefaultLifetime   = 28800
	DefaultDpdDelay   = 10
	DefaultDpdMaxFail = 5
)

func hasChoice(choices []string, value string) bool {
	for _, c := range choices {
		if c == value {
			return true
		}
	}
	return false
}
