package router

import (
	"resto/internal/handlers/table"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Table table.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	r.DomainHandlers.Table.Router(router)
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
