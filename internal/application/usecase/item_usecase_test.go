package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/mercado-api/internal/application/dto"
	"github.com/jhoicas/mercado-api/internal/application/usecase"
	"github.com/jhoicas/mercado-api/internal/domain"
	"github.com/jhoicas/mercado-api/internal/domain/entity"
	"github.com/jhoicas/mercado-api/internal/infrastructure/memory"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
//
// Los casos de uso se ejercitan contra el backend en memoria, que implementa
// los mismos puertos (y la misma reversión transaccional) que PostgreSQL.
// ──────────────────────────────────────────────────────────────────────────────

type fixture struct {
	store  *memory.Store
	items  *usecase.ItemUseCase
	cats   *usecase.CategoryUseCase
	catsRP *memory.CategoryRepo
}

func newFixture() *fixture {
	store := memory.NewStore()
	return &fixture{
		store:  store,
		items:  usecase.NewItemUseCase(memory.NewTxRunner(store), memory.NewItemRepository(store)),
		cats:   usecase.NewCategoryUseCase(memory.NewCategoryRepository(store)),
		catsRP: memory.NewCategoryRepository(store),
	}
}

// seedCategory inserta una categoría directamente en el almacén.
func (f *fixture) seedCategory(t *testing.T, name string) *entity.Category {
	t.Helper()
	now := time.Now()
	cat := &entity.Category{ID: uuid.New().String(), Name: name, CreatedAt: now, UpdatedAt: now}
	require.NoError(t, f.catsRP.Create(cat))
	return cat
}

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }
func boolPtr(b bool) *bool    { return &b }

// ──────────────────────────────────────────────────────────────────────────────
// Create: resolución de categoría
// ──────────────────────────────────────────────────────────────────────────────

// Con categoryName de una categoría existente, el ítem debe quedar asociado a
// esa categoría sin crear otra.
func TestItemCreate_CategoryNameExistenteReutiliza(t *testing.T) {
	f := newFixture()
	frutas := f.seedCategory(t, "Frutas")

	out, err := f.items.Create(context.Background(), dto.CreateItemRequest{
		Name:         "Manzanas",
		Quantity:     intPtr(3),
		CategoryName: strPtr("Frutas"),
	})
	require.NoError(t, err)

	require.NotNil(t, out.CategoryID)
	assert.Equal(t, frutas.ID, *out.CategoryID, "debe reutilizar la categoría existente")
	require.NotNil(t, out.Category)
	assert.Equal(t, "Frutas", out.Category.Name)
	assert.False(t, out.Purchased, "un ítem nuevo nunca nace comprado")

	cats, err := f.cats.List(false)
	require.NoError(t, err)
	assert.Len(t, cats, 1, "no debe crearse una categoría duplicada")
}

// Con categoryName desconocido, la categoría se crea en la misma transacción
// y el ítem queda asociado a ella.
func TestItemCreate_CategoryNameNuevoCreaCategoria(t *testing.T) {
	f := newFixture()

	out, err := f.items.Create(context.Background(), dto.CreateItemRequest{
		Name:         "Telescopio",
		Quantity:     intPtr(1),
		CategoryName: strPtr("Espacio"),
	})
	require.NoError(t, err)

	require.NotNil(t, out.Category)
	assert.Equal(t, "Espacio", out.Category.Name)

	creada, err := f.catsRP.GetByName("Espacio")
	require.NoError(t, err)
	require.NotNil(t, creada, "la categoría auto-creada debe quedar persistida")
	assert.Equal(t, *out.CategoryID, creada.ID)
}

// Dos creaciones seguidas con el mismo categoryName nuevo comparten una sola
// categoría.
func TestItemCreate_MismoNombreNuevoCompartenCategoria(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	a, err := f.items.Create(ctx, dto.CreateItemRequest{
		Name: "Pan", Quantity: intPtr(2), CategoryName: strPtr("Panadería"),
	})
	require.NoError(t, err)
	b, err := f.items.Create(ctx, dto.CreateItemRequest{
		Name: "Croissant", Quantity: intPtr(4), CategoryName: strPtr("Panadería"),
	})
	require.NoError(t, err)

	assert.Equal(t, *a.CategoryID, *b.CategoryID)
	cats, err := f.cats.List(false)
	require.NoError(t, err)
	assert.Len(t, cats, 1)
}

// Con categoryId de una categoría existente el ítem queda asociado a ella.
func TestItemCreate_PorCategoryID(t *testing.T) {
	f := newFixture()
	lacteos := f.seedCategory(t, "Lácteos")

	out, err := f.items.Create(context.Background(), dto.CreateItemRequest{
		Name: "Leche", Quantity: intPtr(6), CategoryID: strPtr(lacteos.ID),
	})
	require.NoError(t, err)
	require.NotNil(t, out.Category)
	assert.Equal(t, "Lácteos", out.Category.Name)
}

// Con categoryId inexistente la escritura falla como entrada inválida (la FK
// en PostgreSQL, su emulación en memoria).
func TestItemCreate_CategoryIDInexistenteFalla(t *testing.T) {
	f := newFixture()
	_, err := f.items.Create(context.Background(), dto.CreateItemRequest{
		Name: "Huevos", Quantity: intPtr(12), CategoryID: strPtr(uuid.New().String()),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Si la escritura del ítem falla, el rollback también deshace la categoría
// que el resolver acababa de crear: no deben quedar categorías huérfanas.
func TestItemCreate_RollbackDeshaceCategoriaAutoCreada(t *testing.T) {
	f := newFixture()

	// Cantidad negativa: pasa el DTO pero la rechaza la capa de persistencia.
	_, err := f.items.Create(context.Background(), dto.CreateItemRequest{
		Name: "Fantasma", Quantity: intPtr(-1), CategoryName: strPtr("Efímera"),
	})
	require.Error(t, err)

	huerfana, err := f.catsRP.GetByName("Efímera")
	require.NoError(t, err)
	assert.Nil(t, huerfana, "la categoría auto-creada debe desaparecer con el rollback")
}

// ──────────────────────────────────────────────────────────────────────────────
// Update parcial
// ──────────────────────────────────────────────────────────────────────────────

func TestItemUpdate_ParcialNoTocaOtrosCampos(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	creado, err := f.items.Create(ctx, dto.CreateItemRequest{
		Name: "Arroz", Quantity: intPtr(2), CategoryName: strPtr("Granos"),
	})
	require.NoError(t, err)

	out, err := f.items.Update(ctx, creado.ID, dto.UpdateItemRequest{Purchased: boolPtr(true)})
	require.NoError(t, err)

	assert.True(t, out.Purchased)
	assert.Equal(t, "Arroz", out.Name, "name no venía y debe quedar intacto")
	assert.Equal(t, 2, out.Quantity, "quantity no venía y debe quedar intacta")
	require.NotNil(t, out.CategoryID, "la categoría no venía y debe quedar intacta")
	assert.Equal(t, *creado.CategoryID, *out.CategoryID)
}

// categoryId en null explícito descategoriza el ítem; un categoryId ausente no
// lo toca. La diferencia la captura el tri-estado del DTO.
func TestItemUpdate_CategoryIDNullDescategoriza(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	creado, err := f.items.Create(ctx, dto.CreateItemRequest{
		Name: "Queso", Quantity: intPtr(1), CategoryName: strPtr("Lácteos"),
	})
	require.NoError(t, err)

	out, err := f.items.Update(ctx, creado.ID, dto.UpdateItemRequest{
		CategoryID: dto.NullableString{Set: true, Value: nil},
	})
	require.NoError(t, err)
	assert.Nil(t, out.CategoryID)
	assert.Nil(t, out.Category)

	// La categoría en sí no se borra, solo la asociación.
	cat, err := f.catsRP.GetByName("Lácteos")
	require.NoError(t, err)
	assert.NotNil(t, cat)
}

// categoryName en el update se re-resuelve (creando la categoría si hace
// falta) y tiene prioridad sobre categoryId.
func TestItemUpdate_CategoryNamePrevaleceSobreCategoryID(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	otra := f.seedCategory(t, "Otra")
	creado, err := f.items.Create(ctx, dto.CreateItemRequest{
		Name: "Café", Quantity: intPtr(1), CategoryName: strPtr("Bebidas"),
	})
	require.NoError(t, err)

	out, err := f.items.Update(ctx, creado.ID, dto.UpdateItemRequest{
		CategoryID:   dto.NullableString{Set: true, Value: strPtr(otra.ID)},
		CategoryName: strPtr("Desayuno"),
	})
	require.NoError(t, err)

	require.NotNil(t, out.Category)
	assert.Equal(t, "Desayuno", out.Category.Name, "categoryName manda sobre categoryId")

	creada, err := f.catsRP.GetByName("Desayuno")
	require.NoError(t, err)
	assert.NotNil(t, creada, "la categoría del update debe auto-crearse")
}

// Sin ningún campo que cambiar, el update es un no-op que devuelve la fila
// actual sin mover updatedAt.
func TestItemUpdate_SinCambiosEsNoOp(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	creado, err := f.items.Create(ctx, dto.CreateItemRequest{
		Name: "Sal", Quantity: intPtr(1), CategoryName: strPtr("Despensa"),
	})
	require.NoError(t, err)

	out, err := f.items.Update(ctx, creado.ID, dto.UpdateItemRequest{})
	require.NoError(t, err)
	assert.Equal(t, creado.UpdatedAt, out.UpdatedAt, "updatedAt no debe moverse en un no-op")
	assert.Equal(t, creado.Name, out.Name)
}

func TestItemUpdate_NoExistenteDevuelveNotFound(t *testing.T) {
	f := newFixture()
	_, err := f.items.Update(context.Background(), uuid.New().String(), dto.UpdateItemRequest{
		Name: strPtr("Nada"),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// List, GetByID y Delete
// ──────────────────────────────────────────────────────────────────────────────

func TestItemList_FiltrosYPaginacion(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	frutas := f.seedCategory(t, "Frutas")
	for _, name := range []string{"Manzana", "Pera", "Mango"} {
		_, err := f.items.Create(ctx, dto.CreateItemRequest{
			Name: name, Quantity: intPtr(1), CategoryID: strPtr(frutas.ID),
		})
		require.NoError(t, err)
	}
	comprado, err := f.items.Create(ctx, dto.CreateItemRequest{
		Name: "Detergente", Quantity: intPtr(1), CategoryName: strPtr("Aseo"),
	})
	require.NoError(t, err)
	_, err = f.items.Update(ctx, comprado.ID, dto.UpdateItemRequest{Purchased: boolPtr(true)})
	require.NoError(t, err)

	// Filtro por categoría
	porCategoria, total, err := f.items.List(dto.ItemQuery{Page: 1, Limit: 10, CategoryID: strPtr(frutas.ID)})
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	assert.Len(t, porCategoria, 3)

	// Filtro por comprado
	comprados, total, err := f.items.List(dto.ItemQuery{Page: 1, Limit: 10, Purchased: boolPtr(true)})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, comprados, 1)
	assert.Equal(t, "Detergente", comprados[0].Name)

	// Búsqueda por nombre, insensible a mayúsculas
	buscados, total, err := f.items.List(dto.ItemQuery{Page: 1, Limit: 10, Search: "man"})
	require.NoError(t, err)
	assert.Equal(t, 2, total, "Manzana y Mango coinciden con 'man'")
	assert.Len(t, buscados, 2)

	// Paginación: total completo pero página recortada
	pagina, total, err := f.items.List(dto.ItemQuery{Page: 1, Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, 4, total)
	assert.Len(t, pagina, 2)

	pagina2, _, err := f.items.List(dto.ItemQuery{Page: 3, Limit: 2})
	require.NoError(t, err)
	assert.Empty(t, pagina2, "más allá de la última página la lista viene vacía")
}

func TestItemGetByID_NoExistenteDevuelveNotFound(t *testing.T) {
	f := newFixture()
	_, err := f.items.GetByID(uuid.New().String())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestItemDelete(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	creado, err := f.items.Create(ctx, dto.CreateItemRequest{
		Name: "Temporal", Quantity: intPtr(1), CategoryName: strPtr("Varios"),
	})
	require.NoError(t, err)

	require.NoError(t, f.items.Delete(creado.ID))
	_, err = f.items.GetByID(creado.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	assert.ErrorIs(t, f.items.Delete(creado.ID), domain.ErrNotFound, "borrar dos veces debe dar not found")
}
