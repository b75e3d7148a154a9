package usecase

import (
	"context"
	"fmt"
	"testing"

	"github.com/EduardoZakkNet/Eduardo-Amorim-Test/internal/domain"
	"github.com/EduardoZakkNet/Eduardo-Amorim-Test/pkg/e"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// MOCKS

type mockCustomerRepo struct {
	stored      map[uuid.UUID]*domain.Customer
	createCalls int
	getErr      error
}

func newMockCustomerRepo() *mockCustomerRepo {
	return &mockCustomerRepo{stored: make(map[uuid.UUID]*domain.Customer)}
}

func (m *mockCustomerRepo) Create(ctx context.Context, customer *domain.Customer) (*domain.Customer, error) {
	m.createCalls++
	created := *customer
	if created.ID == uuid.Nil {
		created.ID = uuid.New()
	}
	m.stored[created.ID] = &created
	return &created, nil
}

func (m *mockCustomerRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Customer, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	if c, ok := m.stored[id]; ok {
		return c, nil
	}
	return nil, e.ErrCustomerNotFound
}

func (m *mockCustomerRepo) GetByName(ctx context.Context, name string) (*domain.Customer, error) {
	for _, c := range m.stored {
		if c.Name == name {
			return c, nil
		}
	}
	return nil, e.ErrCustomerNotFound
}

func (m *mockCustomerRepo) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	if _, ok := m.stored[id]; !ok {
		return false, nil
	}
	delete(m.stored, id)
	return true, nil
}

type mockBranchRepo struct {
	stored      map[uuid.UUID]*domain.Branch
	createCalls int
}

func newMockBranchRepo() *mockBranchRepo {
	return &mockBranchRepo{stored: make(map[uuid.UUID]*domain.Branch)}
}

func (m *mockBranchRepo) Create(ctx context.Context, branch *domain.Branch) (*domain.Branch, error) {
	m.createCalls++
	created := *branch
	if created.ID == uuid.Nil {
		created.ID = uuid.New()
	}
	m.stored[created.ID] = &created
	return &created, nil
}

func (m *mockBranchRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Branch, error) {
	if b, ok := m.stored[id]; ok {
		return b, nil
	}
	return nil, e.ErrBranchNotFound
}

func (m *mockBranchRepo) GetByName(ctx context.Context, name string) (*domain.Branch, error) {
	for _, b := range m.stored {
		if b.Name == name {
			return b, nil
		}
	}
	return nil, e.ErrBranchNotFound
}

func (m *mockBranchRepo) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	if _, ok := m.stored[id]; !ok {
		return false, nil
	}
	delete(m.stored, id)
	return true, nil
}

type mockProductRepo struct {
	stored      map[uuid.UUID]*domain.Product
	createCalls int
}

func newMockProductRepo() *mockProductRepo {
	return &mockProductRepo{stored: make(map[uuid.UUID]*domain.Product)}
}

func (m *mockProductRepo) Create(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	m.createCalls++
	created := *product
	if created.ID == uuid.Nil {
		created.ID = uuid.New()
	}
	m.stored[created.ID] = &created
	return &created, nil
}

func (m *mockProductRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	if p, ok := m.stored[id]; ok {
		return p, nil
	}
	return nil, e.ErrProductNotFound
}

func (m *mockProductRepo) GetByName(ctx context.Context, name string) (*domain.Product, error) {
	for _, p := range m.stored {
		if p.Name == name {
			return p, nil
		}
	}
	return nil, e.ErrProductNotFound
}

func (m *mockProductRepo) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	if _, ok := m.stored[id]; !ok {
		return false, nil
	}
	delete(m.stored, id)
	return true, nil
}

// TESTS

func TestResolveCustomer(t *testing.T) {
	t.Run("nil reference creates a new customer", func(t *testing.T) {
		repo := newMockCustomerRepo()
		resolver := NewEntityResolver(repo, newMockBranchRepo(), newMockProductRepo())

		customer, created, err := resolver.ResolveCustomer(context.Background(), nil)

		require.NoError(t, err)
		require.True(t, created)
		require.NotEqual(t, uuid.Nil, customer.ID)
		require.Equal(t, 1, repo.createCalls)
	})

	t.Run("existing customer is returned as stored", func(t *testing.T) {
		repo := newMockCustomerRepo()
		stored, _, err := NewEntityResolver(repo, newMockBranchRepo(), newMockProductRepo()).
			ResolveCustomer(context.Background(), NewCustomerRef(uuid.Nil, "John Smith"))
		require.NoError(t, err)

		resolver := NewEntityResolver(repo, newMockBranchRepo(), newMockProductRepo())
		customer, created, err := resolver.ResolveCustomer(
			context.Background(), NewCustomerRef(stored.ID, "Different Name"),
		)

		require.NoError(t, err)
		require.False(t, created)
		require.Equal(t, "John Smith", customer.Name)
	})

	t.Run("dangling id creates preserving the supplied id", func(t *testing.T) {
		repo := newMockCustomerRepo()
		resolver := NewEntityResolver(repo, newMockBranchRepo(), newMockProductRepo())
		danglingID := uuid.New()

		customer, created, err := resolver.ResolveCustomer(
			context.Background(), NewCustomerRef(danglingID, "John Smith"),
		)

		require.NoError(t, err)
		require.True(t, created)
		require.Equal(t, danglingID, customer.ID)
		require.Equal(t, 1, repo.createCalls)
	})

	t.Run("repository error propagates without a create", func(t *testing.T) {
		repo := newMockCustomerRepo()
		repo.getErr = fmt.Errorf("connection reset")
		resolver := NewEntityResolver(repo, newMockBranchRepo(), newMockProductRepo())

		_, _, err := resolver.ResolveCustomer(
			context.Background(), NewCustomerRef(uuid.New(), "John Smith"),
		)

		require.Error(t, err)
		require.Zero(t, repo.createCalls)
	})

	t.Run("second resolve of the same id does not create again", func(t *testing.T) {
		repo := newMockCustomerRepo()
		resolver := NewEntityResolver(repo, newMockBranchRepo(), newMockProductRepo())
		ref := NewCustomerRef(uuid.New(), "John Smith")

		_, created, err := resolver.ResolveCustomer(context.Background(), ref)
		require.NoError(t, err)
		require.True(t, created)

		_, created, err = resolver.ResolveCustomer(context.Background(), ref)
		require.NoError(t, err)
		require.False(t, created)
		require.Equal(t, 1, repo.createCalls)
	})
}

func TestResolveBranch(t *testing.T) {
	t.Run("dangling id creates preserving the supplied id", func(t *testing.T) {
		repo := newMockBranchRepo()
		resolver := NewEntityResolver(newMockCustomerRepo(), repo, newMockProductRepo())
		danglingID := uuid.New()

		branch, created, err := resolver.ResolveBranch(
			context.Background(), NewBranchRef(danglingID, "Downtown"),
		)

		require.NoError(t, err)
		require.True(t, created)
		require.Equal(t, danglingID, branch.ID)
	})
}

func TestResolveProduct(t *testing.T) {
	t.Run("stored price wins over the requested one", func(t *testing.T) {
		repo := newMockProductRepo()
		stored, err := repo.Create(context.Background(),
			domain.NewProduct(uuid.Nil, "Keyboard", decimal.NewFromInt(100)))
		require.NoError(t, err)

		resolver := NewEntityResolver(newMockCustomerRepo(), newMockBranchRepo(), repo)
		line := NewProductLineReq(stored.ID, "Keyboard", 5, decimal.NewFromInt(1))

		product, created, err := resolver.ResolveProduct(context.Background(), &line)

		require.NoError(t, err)
		require.False(t, created)
		require.True(t, decimal.NewFromInt(100).Equal(product.UnitPrice))
	})

	t.Run("unknown id creates from the request line", func(t *testing.T) {
		repo := newMockProductRepo()
		resolver := NewEntityResolver(newMockCustomerRepo(), newMockBranchRepo(), repo)
		id := uuid.New()
		line := NewProductLineReq(id, "Keyboard", 5, decimal.NewFromInt(100))

		product, created, err := resolver.ResolveProduct(context.Background(), &line)

		require.NoError(t, err)
		require.True(t, created)
		require.Equal(t, id, product.ID)
		require.True(t, decimal.NewFromInt(100).Equal(product.UnitPrice))
	})
}
