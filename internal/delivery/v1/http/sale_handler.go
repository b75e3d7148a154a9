package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/EduardoZakkNet/Eduardo-Amorim-Test/internal/usecase"
	"github.com/EduardoZakkNet/Eduardo-Amorim-Test/pkg/e"
	"github.com/EduardoZakkNet/Eduardo-Amorim-Test/pkg/logger"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type SaleHandler struct {
	saleUsecase usecase.SaleUC
	logger      logger.Logger
}

func NewSaleHandler(saleUsecase usecase.SaleUC, logger logger.Logger) *SaleHandler {
	return &SaleHandler{saleUsecase: saleUsecase, logger: logger}
}

// createSale принимает запрос на создание продажи и возвращает сохранённую
// продажу с пересчитанными скидками и итогом.
func (s *SaleHandler) createSale(w http.ResponseWriter, r *http.Request) {
	const maxRequestSize = 1 << 20

	r.Body = http.MaxBytesReader(w, r.Body, maxRequestSize)

	var req CreateSaleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if errors.Is(err, io.EOF) {
			s.logger.Warnf("%d %s", http.StatusBadRequest, e.ErrEmptyRequestBody.Error())
			WriteError(w, e.ErrEmptyRequestBody)
			return
		}
		s.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
		WriteError(w, e.ErrStatusBadRequest)
		return
	}

	sale, err := s.saleUsecase.CreateSale(r.Context(), toCreateSaleReq(&req))
	if err != nil {
		s.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, toSaleResponse(sale))
}

// getSale возвращает продажу по идентификатору.
func (s *SaleHandler) getSale(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		s.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrInvalidSaleID.Error(), err.Error())
		WriteError(w, e.ErrInvalidSaleID)
		return
	}

	sale, err := s.saleUsecase.GetSale(r.Context(), id)
	if err != nil {
		s.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toSaleResponse(sale))
}
