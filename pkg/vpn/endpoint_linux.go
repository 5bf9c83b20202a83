package vpn

import (
	"github.com/openfw/pfsec/pkg/libfw"
	"github.com/vishvananda/netlink"
)

// LocalAddress resolves an interface name to its first IPv4 address for
// the left side of a conn.
func LocalAddress(name string) (string, error) {
	link, err := netlink.LinkByName(name)
	if err != nil {
		return "", err
	}
	addrs, err := netlink.AddrList(link, netlink.FAMILY_V4)
	if err != nil {
		return "", err
	}
	if len(addrs) == 0 {
		return "", libfw.NewErr("LocalAddress %s has no address", name)
	}
	return addrs[0].IP.String(), nil
}
