package main

import (
	"log"

	"github.com/openfw/pfsec/pkg/config"
	"github.com/openfw/pfsec/pkg/libfw"
	"github.com/openfw/pfsec/pkg/vpn"
)

func main() {
	log.SetFlags(0)
	c := config.NewDaemon()
	libfw.SetLogger(c.Log.File, c.Log.Verbose)
	v := vpn.NewVpn(c)
	libfw.PreNotify()
	v.Initialize()
	v.Start()
	libfw.SdNotify()
	libfw.Wait()
	v.Stop()
}
