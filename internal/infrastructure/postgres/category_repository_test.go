package postgres

import (
	"testing"
	"time"

	pgx "github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/jhoicas/mercado-api/internal/domain"
	"github.com/jhoicas/mercado-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// CategoryRepo contra un pool pgxmock: verifica el SQL emitido y el mapeo de
// los errores de la base (unique, trigger de borrado) a errores de dominio.
// ──────────────────────────────────────────────────────────────────────────────

type CategoryRepoTestSuite struct {
	suite.Suite
	mock pgxmock.PgxPoolIface
	repo *CategoryRepo
}

func (s *CategoryRepoTestSuite) SetupTest() {
	mock, err := pgxmock.NewPool()
	require.NoError(s.T(), err)
	s.mock = mock
	s.repo = NewCategoryRepository(mock)
}

func (s *CategoryRepoTestSuite) TearDownTest() {
	assert.NoError(s.T(), s.mock.ExpectationsWereMet())
	s.mock.Close()
}

func TestCategoryRepoTestSuite(t *testing.T) {
	suite.Run(t, new(CategoryRepoTestSuite))
}

func testCategory() *entity.Category {
	now := time.Now()
	return &entity.Category{
		ID:        "11111111-1111-1111-1111-111111111111",
		Name:      "Frutas",
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (s *CategoryRepoTestSuite) TestCreate_OK() {
	cat := testCategory()
	s.mock.ExpectExec(`INSERT INTO shopping_categories`).
		WithArgs(cat.ID, cat.Name, cat.Description, cat.Icon, cat.CreatedAt, cat.UpdatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	assert.NoError(s.T(), s.repo.Create(cat))
}

// La constraint única sobre name (23505) se traduce a ErrDuplicate; es el
// respaldo del chequeo en aplicación ante dos peticiones concurrentes.
func (s *CategoryRepoTestSuite) TestCreate_UniqueViolationEsDuplicate() {
	cat := testCategory()
	s.mock.ExpectExec(`INSERT INTO shopping_categories`).
		WithArgs(cat.ID, cat.Name, cat.Description, cat.Icon, cat.CreatedAt, cat.UpdatedAt).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "shopping_categories_name_key"})

	assert.ErrorIs(s.T(), s.repo.Create(cat), domain.ErrDuplicate)
}

// Sin fila, GetByName devuelve (nil, nil): el resolver distingue "no existe"
// de un error real.
func (s *CategoryRepoTestSuite) TestGetByName_SinFilaDevuelveNil() {
	s.mock.ExpectQuery(`SELECT (.+) FROM shopping_categories WHERE name`).
		WithArgs("Espacio").
		WillReturnError(pgx.ErrNoRows)

	cat, err := s.repo.GetByName("Espacio")
	assert.NoError(s.T(), err)
	assert.Nil(s.T(), cat)
}

func (s *CategoryRepoTestSuite) TestGetByID_OK() {
	want := testCategory()
	rows := pgxmock.NewRows([]string{"id", "name", "description", "icon", "created_at", "updated_at"}).
		AddRow(want.ID, want.Name, want.Description, want.Icon, want.CreatedAt, want.UpdatedAt)
	s.mock.ExpectQuery(`SELECT (.+) FROM shopping_categories WHERE id`).
		WithArgs(want.ID).
		WillReturnRows(rows)

	got, err := s.repo.GetByID(want.ID)
	require.NoError(s.T(), err)
	require.NotNil(s.T(), got)
	assert.Equal(s.T(), want.Name, got.Name)
}

func (s *CategoryRepoTestSuite) TestUpdate_FilaInexistenteDevuelveFalse() {
	cat := testCategory()
	s.mock.ExpectExec(`UPDATE shopping_categories`).
		WithArgs(cat.ID, cat.Name, cat.Description, cat.Icon, cat.UpdatedAt).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	found, err := s.repo.Update(cat)
	assert.NoError(s.T(), err)
	assert.False(s.T(), found)
}

func (s *CategoryRepoTestSuite) TestDelete_OK() {
	s.mock.ExpectExec(`DELETE FROM shopping_categories WHERE id`).
		WithArgs("id-1").
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	removed, err := s.repo.Delete("id-1")
	assert.NoError(s.T(), err)
	assert.True(s.T(), removed)
}

// El trigger que protege una categoría referenciada levanta P0001; el repo lo
// mapea a ErrInUse aunque el caso de uso ya haya pasado por IsInUse.
func (s *CategoryRepoTestSuite) TestDelete_TriggerEnUsoEsInUse() {
	s.mock.ExpectExec(`DELETE FROM shopping_categories WHERE id`).
		WithArgs("id-1").
		WillReturnError(&pgconn.PgError{Code: "P0001", Message: "Cannot delete category that is in use"})

	_, err := s.repo.Delete("id-1")
	assert.ErrorIs(s.T(), err, domain.ErrInUse)
}

// La FK directa (23503) también cuenta como guarda de borrado.
func (s *CategoryRepoTestSuite) TestDelete_FKViolationEsInUse() {
	s.mock.ExpectExec(`DELETE FROM shopping_categories WHERE id`).
		WithArgs("id-1").
		WillReturnError(&pgconn.PgError{Code: "23503"})

	_, err := s.repo.Delete("id-1")
	assert.ErrorIs(s.T(), err, domain.ErrInUse)
}

func (s *CategoryRepoTestSuite) TestIsInUse() {
	s.mock.ExpectQuery(`SELECT EXISTS\(SELECT 1 FROM shopping_items WHERE category_id`).
		WithArgs("id-1").
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))

	inUse, err := s.repo.IsInUse("id-1")
	assert.NoError(s.T(), err)
	assert.True(s.T(), inUse)
}

func (s *CategoryRepoTestSuite) TestUsageCount() {
	s.mock.ExpectQuery(`SELECT COUNT\(\*\) FROM shopping_items WHERE category_id`).
		WithArgs("id-1").
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(7))

	n, err := s.repo.UsageCount("id-1")
	assert.NoError(s.T(), err)
	assert.Equal(s.T(), 7, n)
}
