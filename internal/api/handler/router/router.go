package router

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/vfg2006/weekly-rank-digest/pkg/apiErrors"
)

type Middleware = func(http.Handler) http.Handler

type Route struct {
	Path        string
	Method      string
	Handler     http.Handler
	Middlewares []Middleware // Aplicados só nesta rota, depois dos do grupo
}

// Group agrupa rotas de um recurso (/v1/reports, /v1/cron) sob um prefixo comum
type Group struct {
	Prefix      string
	Middlewares []Middleware
	Routes      []Route
}

type Router struct {
	router *httprouter.Router
}

type ConfigRouter func(router *Router)

func WithGroup(group Group) ConfigRouter {
	return func(router *Router) {
		router.AddGroup(group)
	}
}

func WithRoutes(routes ...Route) ConfigRouter {
	return WithGroup(Group{Routes: routes})
}

// New cria o router. Rota ou método desconhecidos respondem no mesmo formato JSON dos demais erros.
func New(configs ...ConfigRouter) Router {
	rt := httprouter.New()
	rt.NotFound = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiErrors.WriteError(w, apiErrors.ErrRouteNotFound, "Rota não encontrada: "+r.URL.Path, nil)
	})
	rt.MethodNotAllowed = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiErrors.WriteError(w, apiErrors.ErrMethodNotAllowed, "Método não suportado: "+r.Method, nil)
	})

	router := &Router{router: rt}
	for _, config := range configs {
		config(router)
	}

	return *router
}

func (r Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.router.ServeHTTP(w, req)
}

// AddGroup registra as rotas do grupo: middlewares do grupo por fora, os da rota por dentro
func (r Router) AddGroup(group Group) {
	for _, route := range group.Routes {
		middlewares := append(append([]Middleware{}, group.Middlewares...), route.Middlewares...)

		handler := route.Handler
		for i := len(middlewares) - 1; i >= 0; i-- {
			handler = middlewares[i](handler)
		}

		r.router.Handler(route.Method, group.Prefix+route.Path, handler)
	}
}
