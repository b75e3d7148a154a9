package http

import (
	"net/http"
	"testing"

	"github.com/EduardoZakkNet/Eduardo-Amorim-Test/pkg/e"
	"github.com/stretchr/testify/require"
)

func TestToHTTPResponse(t *testing.T) {
	t.Run("validation error returns 400 with field list", func(t *testing.T) {
		err := e.Wrap("SaleUseCase.CreateSale", e.NewValidationError([]e.FieldError{
			{Field: "SaleDate", Message: "The date is required."},
			{Field: "Customer", Message: "The Customer is required."},
		}))

		code, resp := ToHTTPResponse(err)

		require.Equal(t, http.StatusBadRequest, code)
		require.Len(t, resp.Errors, 2)
		require.Equal(t, "SaleDate", resp.Errors[0].Field)
	})

	t.Run("product limit error returns 422 naming products", func(t *testing.T) {
		err := e.Wrap("SaleUseCase.CreateSale", e.NewProductLimitError([]string{"Keyboard", "Monitor"}))

		code, resp := ToHTTPResponse(err)

		require.Equal(t, http.StatusUnprocessableEntity, code)
		require.Contains(t, resp.Message, "Keyboard, Monitor")
	})

	t.Run("sale not found returns 404", func(t *testing.T) {
		code, resp := ToHTTPResponse(e.Wrap("SaleUseCase.GetSale", e.ErrSaleNotFound))

		require.Equal(t, http.StatusNotFound, code)
		require.Equal(t, e.ErrSaleNotFound.Error(), resp.Message)
	})

	t.Run("invalid sale id returns 400", func(t *testing.T) {
		code, _ := ToHTTPResponse(e.ErrInvalidSaleID)

		require.Equal(t, http.StatusBadRequest, code)
	})

	t.Run("unknown error returns 500 without details", func(t *testing.T) {
		code, resp := ToHTTPResponse(e.Wrap("somewhere", e.ErrTransactionNotFound))

		require.Equal(t, http.StatusInternalServerError, code)
		require.Equal(t, e.ErrInternalServerError.Error(), resp.Message)
	})
}
