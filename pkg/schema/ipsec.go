package schema

// Phase1 is the wire form of an IPsec phase1 entry. Optional options are
// pointers so an explicitly set false/zero survives the trip and can be
// told apart from an omitted option.
type Phase1 struct {
	Descr                string `json:"descr"`
	State                string `json:"state,omitempty"`
	IkeType              string `json:"iketype,omitempty"`
	Protocol             string `json:"protocol,omitempty"`
	Interface            string `json:"interface,omitempty"`
	RemoteGateway        string `json:"remote_gateway,omitempty"`
	NattPort             *int   `json:"nattport,omitempty"`
	Disabled             *bool  `json:"disabled,omitempty"`
	AuthenticationMethod string `json:"authentication_method,omitempty"`
	Mode                 string `json:"mode,omitempty"`
	MyIdType             string `json:"myid_type,omitempty"`
	MyIdData             string `json:"myid_data,omitempty"`
	PeerIdType           string `json:"peerid_type,omitempty"`
	PeerIdData           string `json:"peerid_data,omitempty"`
	Certificate          string `json:"certificate,omitempty"`
	CertificateAuthority string `json:"certificate_authority,omitempty"`
	PresharedKey         string `json:"preshared_key,omitempty"`
	Lifetime             *int   `json:"lifetime,omitempty"`
	RekeyTime            *int   `json:"rekey_time,omitempty"`
	ReauthTime           *int   `json:"reauth_time,omitempty"`
	RandTime             *int   `json:"rand_time,omitempty"`
	DisableRekey         *bool  `json:"disable_rekey,omitempty"`
	MarginTime           *int   `json:"margintime,omitempty"`
	StartAction          string `json:"startaction,omitempty"`
	CloseAction          string `json:"closeaction,omitempty"`
	ResponderOnly        *bool  `json:"responderonly,omitempty"`
	DisableReauth        *bool  `json:"disable_reauth,omitempty"`
	Mobike               string `json:"mobike,omitempty"`
	GwDuplicates         *bool  `json:"gw_duplicates,omitempty"`
	SplitConn            *bool  `json:"splitconn,omitempty"`
	NatTraversal         string `json:"nat_traversal,omitempty"`
	EnableDpd            *bool  `json:"enable_dpd,omitempty"`
	DpdDelay             *int   `json:"dpd_delay,omitempty"`
	DpdMaxFail           *int   `json:"dpd_maxfail,omitempty"`
	Apply                *bool  `json:"apply,omitempty"`
	Status               string `json:"status,omitempty"`
}

// Phase1Result lists the change commands that would be or were pushed to
// the target system.
type Phase1Result struct {
	Changed  bool     `json:"changed"`
	Commands []string `json:"commands"`
}
