package v1

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/openfw/pfsec/cmd/api"
	"github.com/openfw/pfsec/pkg/libfw"
)

type Client struct {
	Auth libfw.Auth
	Host string
}

func (cl Client) NewRequest(url string) *libfw.HttpClient {
	client := &libfw.HttpClient{
		Auth: libfw.Auth{
			Type:     "basic",
			Username: cl.Auth.Username,
			Password: cl.Auth.Password,
		},
		Url: url,
	}
	return client
}

func (cl Client) JSON(client *libfw.HttpClient, i, o interface{}) error {
	out := cl.Log()
	if i != nil {
		data, err := json.Marshal(i)
		if err != nil {
			return err
		}
		out.Debug("Client.JSON -> %s %s", client.Method, client.Url)
		out.Debug("Client.JSON -> %s", string(data))
		client.Payload = bytes.NewReader(data)
	}
	r, err := client.Do()
	if err != nil {
		return err
	}
	defer r.Body.Close()
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return err
	}
	out.Debug("Client.JSON <- %s", string(body))
	if r.StatusCode != http.StatusOK {
		return libfw.NewErr("%s %s", r.Status, body)
	}
	if o != nil {
		if err := json.Unmarshal(body, o); err != nil {
			return err
		}
	}
	return nil
}

func (cl Client) GetJSON(url string, v interface{}) error {
	client := cl.NewRequest(url)
	client.Method = "GET"
	return cl.JSON(client, nil, v)
}

func (cl Client) PostJSON(url string, i, o interface{}) error {
	client := cl.NewRequest(url)
	client.Method = "POST"
	return cl.JSON(client, i, o)
}

func (cl Client) PutJSON(url string, i, o interface{}) error {
	client := cl.NewRequest(url)
	client.Method = "PUT"
	return cl.JSON(client, i, o)
}

func (cl Client) DeleteJSON(url string, i, o interface{}) error {
	client := cl.NewRequest(url)
	client.Method = "DELETE"
	return cl.JSON(client, i, o)
}

func (cl Client) Log() *libfw.SubLogger {
	return libfw.NewSubLogger("cli")
}

type Cmd struct {
}

func (c Cmd) NewHttp(token string) Client {
	values := strings.SplitN(token, ":", 2)
	username := values[0]
	password := values[0]
	if len(values) == 2 {
		password = values[1]
	}
	client := Client{
		Auth: libfw.Auth{
			Username: username,
			Password: password,
		},
	}
	return client
}

func (c Cmd) Out(data interface{}, format string, tmpl string) error {
	if tmpl == "" {
		format = "yaml"
	}
	return api.Out(data, format, tmpl)
}

func (c Cmd) Log() *libfw.SubLogger {
	return libfw.NewSubLogger("cli")
}
