package vpn

import (
	"context"
	"fmt"
	"net/http"
	"net/http/pprof"
	"os"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"github.com/openfw/pfsec/pkg/api"
	co "github.com/openfw/pfsec/pkg/config"
	"github.com/openfw/pfsec/pkg/libfw"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func NotFound(w http.ResponseWriter, r *http.Request) {
	http.Error(w, "Oops!", http.StatusNotFound)
}

func NotAllowed(w http.ResponseWriter, r *http.Request) {
	http.Error(w, "Oops!", http.StatusMethodNotAllowed)
}

type Http struct {
	listen     string
	adminToken string
	adminFile  string
	server     *http.Server
	router     *mux.Router
}

func NewHttp(c *co.Daemon) *Http {
	return &Http{
		listen:    c.Listen,
		adminFile: c.TokenFile,
	}
}

func (h *Http) Initialize() {
	r := h.Router()
	if h.server == nil {
		h.server = &http.Server{
			Addr:         h.listen,
			Handler:      r,
			ReadTimeout:  5 * time.Minute,
			WriteTimeout: 10 * time.Minute,
		}
	}
	h.LoadToken()
	h.SaveToken()
	h.LoadRouter()
}

func (h *Http) PProf(r *mux.Router) {
	r.HandleFunc("/debug/pprof/", pprof.Index)
	r.HandleFunc("/debug/pprof/cmdline", pprof.Cmdline)
	r.HandleFunc("/debug/pprof/profile", pprof.Profile)
	r.HandleFunc("/debug/pprof/symbol", pprof.Symbol)
	r.HandleFunc("/debug/pprof/trace", pprof.Trace)
}

func (h *Http) Prome(r *mux.Router) {
	handler := promhttp.HandlerFor(metrics, promhttp.HandlerOpts{})
	r.Handle("/metrics", handler)
}

func (h *Http) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		libfw.Info("Http.Middleware %s %s", r.Method, r.URL.Path)
		if h.IsAuth(w, r) {
			next.ServeHTTP(w, r)
		} else {
			w.Header().Set("WWW-Authenticate", "Basic")
			http.Error(w, "Authorization Required", http.StatusUnauthorized)
		}
	})
}

func (h *Http) Router() *mux.Router {
	if h.router == nil {
		h.router = mux.NewRouter()
		h.router.NotFoundHandler = http.HandlerFunc(NotFound)
		h.router.MethodNotAllowedHandler = http.HandlerFunc(NotAllowed)
		h.router.Use(h.Middleware)
	}
	return h.router
}

func (h *Http) SaveToken() {
	f, err := os.OpenFile(h.adminFile, os.O_RDWR|os.O_TRUNC|os.O_CREATE, 0600)
	if err != nil {
		libfw.Error("Http.SaveToken: %s", err)
		return
	}
	defer f.Close()
	if _, err := f.Write([]byte(h.adminToken)); err != nil {
		libfw.Error("Http.SaveToken: %s", err)
	}
}

func (h *Http) LoadRouter() {
	router := h.Router()
	h.PProf(router)
	h.Prome(router)
	router.HandleFunc("/api/urls", h.GetApi).Methods("GET")
	api.Add(router)
}

func (h *Http) LoadToken() {
	token := ""
	if _, err := os.Stat(h.adminFile); os.IsNotExist(err) {
		libfw.Info("Http.LoadToken: file:%s does not exist", h.adminFile)
	} else {
		contents, err := os.ReadFile(h.adminFile)
		if err != nil {
			libfw.Error("Http.LoadToken: file:%s %s", h.adminFile, err)
		} else {
			token = strings.TrimSpace(string(contents))
		}
	}
	if token == "" {
		token = libfw.GenString(32)
	}
	h.SetToken(token)
}

func (h *Http) SetToken(value string) {
	h.adminToken = value
}

func (h *Http) Start() {
	h.Initialize()

	libfw.Info("Http.Start %s", h.listen)
	promise := &libfw.Promise{
		First:  time.Second * 2,
		MaxInt: time.Minute,
		MinInt: time.Second * 10,
	}
	promise.Go(func() error {
		if err := h.server.ListenAndServe(); err != nil {
			libfw.Error("Http.Start on %s: %s", h.listen, err)
			return err
		}
		return nil
	})
}

func (h *Http) Shutdown() {
	libfw.Info("Http.Shutdown %s", h.listen)
	if err := h.server.Shutdown(context.Background()); err != nil {
		libfw.Error("Http.Shutdown: %v", err)
	}
}

func (h *Http) IsAuth(w http.ResponseWriter, r *http.Request) bool {
	// prometheus scrapes without credentials.
	if r.URL.Path == "/metrics" {
		return true
	}
	user, pass, ok := r.BasicAuth()
	libfw.Debug("Http.IsAuth token: %s, pass: %s", user, pass)
	if !ok {
		return false
	}
	return user == h.adminToken
}

func (h *Http) GetApi(w http.ResponseWriter, r *http.Request) {
	var urls []string
	h.router.Walk(func(route *mux.Route, router *mux.Router, ancestors []*mux.Route) error {
		path, err := route.GetPathTemplate()
		if err != nil || !strings.HasPrefix(path, "/api") {
			return nil
		}
		methods, err := route.GetMethods()
		if err != nil {
			return nil
		}
		for _, m := range methods {
			urls = append(urls, fmt.Sprintf("%-6s %s", m, path))
		}
		return nil
	})
	api.ResponseYaml(w, urls)
}
