package config

// Phase1 is a resolved phase1 entry: all defaults applied, every value
// plain. Entries are keyed by Descr.
type Phase1 struct {
	Descr         string `json:"descr"`
	IkeType       string `json:"iketype"`
	Protocol      string `json:"protocol"`
	Interface     string `json:"interface"`
	RemoteGateway string `json:"remote_gateway"`
	NattPort      int    `json:"nattport,omitempty"`
	Disabled      bool   `json:"disabled,omitempty"`
	AuthMethod    string `json:"authentication_method"`
	Mode          string `json:"mode,omitempty"`
	MyIdType      string `json:"myid_type"`
	MyIdData      string `json:"myid_data,omitempty"`
	PeerIdType    string `json:"peerid_type"`
	PeerIdData    string `json:"peerid_data,omitempty"`
	Certificate   string `json:"certificate,omitempty"`
	CaRef         string `json:"certificate_authority,omitempty"`
	PresharedKey  string `json:"preshared_key,omitempty"`
	Lifetime      int    `json:"lifetime"`
	RekeyTime     int    `json:"rekey_time,omitempty"`
	ReauthTime    int    `json:"reauth_time,omitempty"`
	RandTime      int    `json:"rand_time,omitempty"`
	DisableRekey  bool   `json:"disable_rekey,omitempty"`
	MarginTime    int    `json:"margintime,omitempty"`
	StartAction   string `json:"startaction,omitempty"`
	CloseAction   string `json:"closeaction,omitempty"`
	ResponderOnly bool   `json:"responderonly,omitempty"`
	DisableReauth bool   `json:"disable_reauth,omitempty"`
	Mobike        string `json:"mobike"`
	GwDuplicates  bool   `json:"gw_duplicates,omitempty"`
	SplitConn     bool   `json:"splitconn,omitempty"`
	NatTraversal  string `json:"nat_traversal"`
	EnableDpd     bool   `json:"enable_dpd"`
	DpdDelay      int    `json:"dpd_delay,omitempty"`
	DpdMaxFail    int    `json:"dpd_maxfail,omitempty"`
}

func (p *Phase1) Correct() {
	if p.Protocol == "" {
		p.Protocol = "inet"
	}
	if p.MyIdType == "" {
		p.MyIdType = "myaddress"
	}
	if p.PeerIdType == "" {
		p.PeerIdType = "peeraddress"
	}
	if p.Lifetime == 0 {
		p.Lifetime = 28800
	}
	if p.Mobike == "" {
		p.Mobike = "off"
	}
	if p.NatTraversal == "" {
		p.NatTraversal = "on"
	}
	if p.EnableDpd {
		if p.DpdDelay == 0 {
			p.DpdDelay = 10
		}
		if p.DpdMaxFail == 0 {
			p.DpdMaxFail = 5
		}
	} else {
		p.DpdDelay = 0
		p.DpdMaxFail = 0
	}
}

func (p *Phase1) Id() string {
	return p.Descr
}
