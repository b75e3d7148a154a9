package http

import (
	"github.com/EduardoZakkNet/Eduardo-Amorim-Test/internal/usecase"
	"github.com/EduardoZakkNet/Eduardo-Amorim-Test/pkg/logger"
	"github.com/go-chi/chi/v5"
)

type Router struct {
	router *chi.Mux
	logger logger.Logger
}

func NewRouter(router *chi.Mux, logger logger.Logger) *Router {
	return &Router{router: router, logger: logger}
}

func (r *Router) Init(saleUC usecase.SaleUC) {
	r.router.Route("/api/v1", func(v1 chi.Router) {
		saleHandler := NewSaleHandler(saleUC, r.logger)
		registerSaleRoutes(v1, saleHandler)
	})
}

func registerSaleRoutes(router chi.Router, saleHandler *SaleHandler) {
	router.Route("/sales", func(s chi.Router) {
		s.Post("/", saleHandler.createSale)
		s.Get("/{id}", saleHandler.getSale)
	})
}
