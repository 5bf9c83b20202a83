package v1

import (
	"github.com/openfw/pfsec/cmd/api"
	"github.com/openfw/pfsec/pkg/schema"
	"github.com/urfave/cli/v2"
)

type Version struct {
	Cmd
}

func (o Version) Url(prefix string) string {
	return prefix + "/api/version"
}

func (o Version) Tmpl() string {
	return `# version: {{ .Version }} ({{ .Date }})
`
}

func (o Version) List(c *cli.Context) error {
	url := o.Url(c.String("url"))
	clt := o.NewHttp(c.String("token"))
	var data schema.Version
	if err := clt.GetJSON(url, &data); err != nil {
		return err
	}
	return o.Out(data, c.String("format"), o.Tmpl())
}

func (o Version) Commands(app *api.App) {
	app.Command(&cli.Command{
		Name:    "version",
		Aliases: []string{"ver"},
		Usage:   "Display daemon version",
		Action:  o.List,
	})
}
