package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dulcerialilis/lilis-api/internal/application/dto"
	"github.com/dulcerialilis/lilis-api/internal/application/usecase"
	"github.com/dulcerialilis/lilis-api/internal/domain"
	"github.com/dulcerialilis/lilis-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeProductRepo struct {
	bySKU map[string]*entity.Product
	byID  map[string]*entity.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{bySKU: map[string]*entity.Product{}, byID: map[string]*entity.Product{}}
}

func (r *fakeProductRepo) Create(p *entity.Product) error {
	r.bySKU[p.SKU] = p
	r.byID[p.ID] = p
	return nil
}
func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error)   { return r.byID[id], nil }
func (r *fakeProductRepo) GetBySKU(sku string) (*entity.Product, error) { return r.bySKU[sku], nil }
func (r *fakeProductRepo) Update(p *entity.Product) error               { r.byID[p.ID] = p; return nil }
func (r *fakeProductRepo) List(int, int) ([]*entity.Product, error)     { return nil, nil }
func (r *fakeProductRepo) Delete(id string) error                       { delete(r.byID, id); return nil }

type fakeCategoryRepo struct {
	byID map[string]*entity.Category
}

func (r *fakeCategoryRepo) Create(c *entity.Category) error             { r.byID[c.ID] = c; return nil }
func (r *fakeCategoryRepo) GetByID(id string) (*entity.Category, error) { return r.byID[id], nil }
func (r *fakeCategoryRepo) GetByName(string) (*entity.Category, error)  { return nil, nil }
func (r *fakeCategoryRepo) Update(*entity.Category) error               { return nil }
func (r *fakeCategoryRepo) List(int, int) ([]*entity.Category, error)   { return nil, nil }
func (r *fakeCategoryRepo) Delete(string) error                         { return nil }

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

const testCategoryID = "cat-dulces"

func newProductUC() *usecase.ProductUseCase {
	categoryRepo := &fakeCategoryRepo{byID: map[string]*entity.Category{
		testCategoryID: {ID: testCategoryID, Name: "Dulces"},
	}}
	return usecase.NewProductUseCase(newFakeProductRepo(), categoryRepo)
}

func validProduct() dto.CreateProductRequest {
	return dto.CreateProductRequest{
		SKU:          "CHOC-001",
		Name:         "Chocolate artesanal",
		Description:  "Barra de chocolate 70% cacao, 100 g",
		CategoryID:   testCategoryID,
		PurchaseUnit: "CAJA",
		SaleUnit:     "UN",
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

func TestProductCreate_Valido(t *testing.T) {
	uc := newProductUC()

	out, err := uc.Create(validProduct())
	require.NoError(t, err)
	assert.NotEmpty(t, out.ID)
	assert.Equal(t, "CHOC-001", out.SKU)
}

func TestProductCreate_SKUDuplicado(t *testing.T) {
	uc := newProductUC()

	_, err := uc.Create(validProduct())
	require.NoError(t, err)

	_, err = uc.Create(validProduct())
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestProductCreate_CategoriaInexistente(t *testing.T) {
	uc := newProductUC()

	in := validProduct()
	in.CategoryID = "cat-fantasma"
	_, err := uc.Create(in)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// EAN válido: 8, 12 o 13 dígitos. Vacío también es válido (es opcional).
func TestProductCreate_FormatoEAN(t *testing.T) {
	casos := []struct {
		ean   string
		valid bool
	}{
		{"", true},
		{"12345678", true},      // EAN-8
		{"123456789012", true},  // UPC-12
		{"1234567890123", true}, // EAN-13
		{"1234567", false},      // 7 dígitos
		{"123456789", false},    // 9 dígitos
		{"12345678901234", false},
		{"12345678901A", false},
	}
	for _, c := range casos {
		uc := newProductUC()
		in := validProduct()
		in.EAN = c.ean
		_, err := uc.Create(in)
		if c.valid {
			assert.NoError(t, err, "EAN %q debía aceptarse", c.ean)
		} else {
			assert.ErrorIs(t, err, domain.ErrInvalidInput, "EAN %q debía rechazarse", c.ean)
		}
	}
}

func TestProductCreate_UnidadDesconocida(t *testing.T) {
	uc := newProductUC()

	in := validProduct()
	in.SaleUnit = "DOCENA"
	_, err := uc.Create(in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Cotas de stock: máximo ≥ mínimo y punto de reorden ≤ máximo.
func TestProductCreate_CotasDeStock(t *testing.T) {
	uc := newProductUC()

	in := validProduct()
	in.MinStock = 10
	max := 5
	in.MaxStock = &max
	_, err := uc.Create(in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "máximo menor al mínimo debe rechazarse")

	in = validProduct()
	in.SKU = "CHOC-002"
	max = 100
	reorder := 150
	in.MaxStock = &max
	in.ReorderPoint = &reorder
	_, err = uc.Create(in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "reorden mayor al máximo debe rechazarse")

	in = validProduct()
	in.SKU = "CHOC-003"
	in.MinStock = 10
	max = 100
	reorder = 20
	in.MaxStock = &max
	in.ReorderPoint = &reorder
	_, err = uc.Create(in)
	assert.NoError(t, err, "cotas coherentes deben aceptarse")
}

// ──────────────────────────────────────────────────────────────────────────────
// Update
// ──────────────────────────────────────────────────────────────────────────────

// Las reglas cruzadas se reverifican sobre el estado resultante de la edición.
func TestProductUpdate_ReverificaReglas(t *testing.T) {
	uc := newProductUC()

	created, err := uc.Create(validProduct())
	require.NoError(t, err)

	badEAN := "999"
	_, err = uc.Update(created.ID, dto.UpdateProductRequest{EAN: &badEAN})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProductUpdate_Inexistente(t *testing.T) {
	uc := newProductUC()
	name := "Otro nombre"
	_, err := uc.Update("prod-fantasma", dto.UpdateProductRequest{Name: &name})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProductDelete_Inexistente(t *testing.T) {
	uc := newProductUC()
	assert.ErrorIs(t, uc.Delete("prod-fantasma"), domain.ErrNotFound)
}
