package libfw

import "github.com/coreos/go-systemd/v22/daemon"

func PreNotify() {
	if _, err := daemon.SdNotify(false, "STATUS=starting"); err != nil {
		Debug("PreNotify: %s", err)
	}
}

func SdNotify() {
	if _, err := daemon.SdNotify(false, daemon.SdNotifyReady); err != nil {
		Debug("SdNotify: %s", err)
	}
}
