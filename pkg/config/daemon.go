package config

import (
	"flag"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/openfw/pfsec/pkg/libfw"
)

type Daemon struct {
	File      string `json:"file" env:"-"`
	Alias     string `json:"alias,omitempty" env:"PFSEC_ALIAS"`
	Listen    string `json:"listen,omitempty" env:"PFSEC_LISTEN"`
	Log       Log    `json:"log"`
	TokenFile string `json:"-" env:"PFSEC_TOKEN_FILE"`
	ConfDir   string `json:"-" env:"-"`
	IPsecDir  string `json:"ipsecdir,omitempty" env:"PFSEC_IPSEC_DIR"`
	IPsec     IPsec  `json:"ipsec" env:"-"`
}

func NewDaemon() *Daemon {
	d := &Daemon{}
	d.Parse()
	d.Initialize()
	return d
}

func (d *Daemon) Parse() {
	flag.StringVar(&d.Log.File, "log:file", "", "Configure log file")
	flag.StringVar(&d.ConfDir, "conf:dir", "", "Configure daemon's directory")
	flag.IntVar(&d.Log.Verbose, "log:level", libfw.INFO, "Configure log level")
	flag.Parse()
}

// Initialize loads the config file, overlays environment variables and
// applies defaults. The phase1 entry list lives in its own file so a
// commit does not rewrite the daemon settings.
func (d *Daemon) Initialize() {
	if d.ConfDir == "" {
		d.ConfDir = "/etc/pfsec"
	}
	d.File = filepath.Join(d.ConfDir, "pfsecd.json")
	if err := libfw.UnmarshalLoad(d, d.File); err != nil {
		libfw.Error("Daemon.Initialize: %s", err)
	}
	if err := env.Parse(d); err != nil {
		libfw.Warn("Daemon.Initialize: %s", err)
	}
	d.Correct()
	d.LoadIPsec()
}

func (d *Daemon) Correct() {
	if d.Alias == "" {
		d.Alias = GetAlias()
	}
	SetListen(&d.Listen, 10080)
	d.Log.Correct()
	if d.TokenFile == "" {
		d.TokenFile = filepath.Join(d.ConfDir, "token")
	}
	if d.IPsecDir == "" {
		d.IPsecDir = "/etc/ipsec.d"
	}
}

func (d *Daemon) IPsecFile() string {
	return filepath.Join(d.ConfDir, "ipsec.json")
}

func (d *Daemon) LoadIPsec() {
	if err := libfw.UnmarshalLoad(&d.IPsec, d.IPsecFile()); err != nil {
		libfw.Error("Daemon.LoadIPsec: %s", err)
	}
	d.IPsec.Correct()
}

func (d *Daemon) SaveIPsec() error {
	return libfw.MarshalSave(&d.IPsec, d.IPsecFile(), true)
}
