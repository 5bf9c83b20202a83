//go:build !linux

package vpn

import "github.com/openfw/pfsec/pkg/libfw"

func LocalAddress(name string) (string, error) {
	return "", libfw.NewErr("LocalAddress notSupport")
}
