package usecase

import (
	"strings"
	"testing"
	"time"

	"github.com/EduardoZakkNet/Eduardo-Amorim-Test/pkg/clock"
	"github.com/EduardoZakkNet/Eduardo-Amorim-Test/pkg/e"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

func validReq() *CreateSaleReq {
	return NewCreateSaleReq(
		testNow.Add(-24*time.Hour),
		NewCustomerRef(uuid.New(), "John Smith"),
		NewBranchRef(uuid.New(), "Downtown"),
		[]ProductLineReq{
			NewProductLineReq(uuid.New(), "Keyboard", 5, decimal.NewFromInt(100)),
		},
		decimal.NewFromInt(450),
	)
}

func fieldNames(verr *e.ValidationError) []string {
	names := make([]string, 0, len(verr.Fields))
	for _, f := range verr.Fields {
		names = append(names, f.Field)
	}
	return names
}

func TestSaleValidatorValidRequest(t *testing.T) {
	v := NewSaleValidator(clock.NewMockClock(testNow))

	require.Nil(t, v.Validate(validReq()))
}

func TestSaleValidatorDate(t *testing.T) {
	v := NewSaleValidator(clock.NewMockClock(testNow))

	t.Run("zero date is required", func(t *testing.T) {
		req := validReq()
		req.SaleDate = time.Time{}

		verr := v.Validate(req)

		require.NotNil(t, verr)
		require.Contains(t, fieldNames(verr), "SaleDate")
		require.Contains(t, verr.Error(), "The date is required.")
	})

	t.Run("date before 1990 is rejected", func(t *testing.T) {
		req := validReq()
		req.SaleDate = time.Date(1985, 3, 10, 0, 0, 0, 0, time.UTC)

		verr := v.Validate(req)

		require.NotNil(t, verr)
		require.Contains(t, verr.Error(), "The date must be after 01/01/1990.")
	})

	t.Run("exact 1990-01-01 boundary is rejected", func(t *testing.T) {
		req := validReq()
		req.SaleDate = time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC)

		require.NotNil(t, v.Validate(req))
	})

	t.Run("future date is rejected", func(t *testing.T) {
		req := validReq()
		req.SaleDate = testNow.Add(time.Hour)

		verr := v.Validate(req)

		require.NotNil(t, verr)
		require.Contains(t, verr.Error(), "The date cannot be in the future.")
	})

	t.Run("current instant is allowed", func(t *testing.T) {
		req := validReq()
		req.SaleDate = testNow

		require.Nil(t, v.Validate(req))
	})
}

func TestSaleValidatorParties(t *testing.T) {
	v := NewSaleValidator(clock.NewMockClock(testNow))

	t.Run("missing customer", func(t *testing.T) {
		req := validReq()
		req.Customer = nil

		verr := v.Validate(req)

		require.NotNil(t, verr)
		require.Contains(t, verr.Error(), "The Customer is required.")
	})

	t.Run("missing branch", func(t *testing.T) {
		req := validReq()
		req.Branch = nil

		verr := v.Validate(req)

		require.NotNil(t, verr)
		require.Contains(t, verr.Error(), "The Branch is required.")
	})

	t.Run("blank customer name", func(t *testing.T) {
		req := validReq()
		req.Customer.Name = "   "

		verr := v.Validate(req)

		require.NotNil(t, verr)
		require.Contains(t, fieldNames(verr), "Customer.Name")
	})

	t.Run("too short branch name", func(t *testing.T) {
		req := validReq()
		req.Branch.Name = "AB"

		verr := v.Validate(req)

		require.NotNil(t, verr)
		require.Contains(t, verr.Error(), "Name must be at least 3 characters long.")
	})

	t.Run("too long customer name", func(t *testing.T) {
		req := validReq()
		req.Customer.Name = strings.Repeat("a", 201)

		require.NotNil(t, v.Validate(req))
	})

	t.Run("length is counted in characters, not bytes", func(t *testing.T) {
		req := validReq()
		req.Customer.Name = strings.Repeat("я", 150)

		require.Nil(t, v.Validate(req))
	})

	t.Run("two multibyte characters are too short", func(t *testing.T) {
		req := validReq()
		req.Branch.Name = "яя"

		verr := v.Validate(req)

		require.NotNil(t, verr)
		require.Contains(t, verr.Error(), "Name must be at least 3 characters long.")
	})

	t.Run("multibyte name boundaries at 200 characters", func(t *testing.T) {
		req := validReq()
		req.Customer.Name = strings.Repeat("ф", 200)
		require.Nil(t, v.Validate(req))

		req.Customer.Name = strings.Repeat("ф", 201)
		verr := v.Validate(req)
		require.NotNil(t, verr)
		require.Contains(t, verr.Error(), "Name cannot be longer than 200 characters.")
	})
}

func TestSaleValidatorTotal(t *testing.T) {
	v := NewSaleValidator(clock.NewMockClock(testNow))

	t.Run("zero total reports required and positive", func(t *testing.T) {
		req := validReq()
		req.TotalSaleAmount = decimal.Zero

		verr := v.Validate(req)

		require.NotNil(t, verr)
		require.Contains(t, verr.Error(), "The Total Sales Amount is required.")
		require.Contains(t, verr.Error(), "The Total Sales Amount must be positive.")
	})

	t.Run("negative total must be positive", func(t *testing.T) {
		req := validReq()
		req.TotalSaleAmount = decimal.NewFromInt(-1)

		verr := v.Validate(req)

		require.NotNil(t, verr)
		require.Contains(t, verr.Error(), "The Total Sales Amount must be positive.")
	})
}

func TestSaleValidatorProducts(t *testing.T) {
	v := NewSaleValidator(clock.NewMockClock(testNow))

	t.Run("empty product list", func(t *testing.T) {
		req := validReq()
		req.Products = nil

		verr := v.Validate(req)

		require.NotNil(t, verr)
		require.Contains(t, verr.Error(), "The product list cannot be empty.")
	})

	t.Run("invalid line fields are named by index", func(t *testing.T) {
		req := validReq()
		req.Products = append(req.Products,
			NewProductLineReq(uuid.New(), "", 0, decimal.Zero),
		)

		verr := v.Validate(req)

		require.NotNil(t, verr)
		names := fieldNames(verr)
		require.Contains(t, names, "Products[1].Name")
		require.Contains(t, names, "Products[1].Quantities")
		require.Contains(t, names, "Products[1].UnitPrice")
	})
}

func TestSaleValidatorCollectsAllViolations(t *testing.T) {
	v := NewSaleValidator(clock.NewMockClock(testNow))

	req := &CreateSaleReq{
		SaleDate:        time.Time{},
		Customer:        nil,
		Branch:          nil,
		Products:        nil,
		TotalSaleAmount: decimal.Zero,
	}

	verr := v.Validate(req)

	require.NotNil(t, verr)
	require.Len(t, verr.Fields, 6)
}
