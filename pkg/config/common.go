package config

import (
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/openfw/pfsec/pkg/libfw"
)

func VarDir(name ...string) string {
	return "/var/pfsec/" + strings.Join(name, "/")
}

type Log struct {
	File    string `json:"file,omitempty" env:"PFSEC_LOG_FILE"`
	Verbose int    `json:"level,omitempty" env:"PFSEC_LOG_LEVEL"`
}

func (l *Log) Correct() {
	if l.Verbose == 0 {
		l.Verbose = libfw.INFO
	}
}

func LogFile(file string) string {
	if runtime.GOOS == "linux" {
		return "/var/log/" + file
	}
	return file
}

func SetListen(listen *string, port int) {
	if *listen == "" {
		*listen = fmt.Sprintf("0.0.0.0:%d", port)
		return
	}
	values := strings.SplitN(*listen, ":", 2)
	if len(values) == 1 {
		*listen = fmt.Sprintf("%s:%d", values[0], port)
	}
}

func GetAlias() string {
	if hostname, err := os.Hostname(); err == nil {
		return strings.ToLower(hostname)
	}
	return libfw.GenString(13)
}
