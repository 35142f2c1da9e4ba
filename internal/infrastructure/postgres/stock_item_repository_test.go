package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/rbgumti/nh-stock-billing-software-sub003/internal/domain"
	"github.com/rbgumti/nh-stock-billing-software-sub003/internal/domain/entity"
)

// errQuerier fails every statement with a fixed error.
type errQuerier struct {
	err error
}

func (q errQuerier) Exec(context.Context, string, ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, q.err
}

func (q errQuerier) Query(context.Context, string, ...any) (pgx.Rows, error) {
	return nil, q.err
}

func (q errQuerier) QueryRow(context.Context, string, ...any) pgx.Row { return nil }

func TestStockItemCreate_UniqueViolationIsDuplicate(t *testing.T) {
	repo := NewStockItemRepository(errQuerier{err: &pgconn.PgError{Code: "23505"}})

	err := repo.Create(&entity.StockItem{ID: 18, Name: "Pregabalin 75mg", CreatedAt: time.Now()})

	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestStockItemCreate_OtherErrorsPassThrough(t *testing.T) {
	repo := NewStockItemRepository(errQuerier{err: &pgconn.PgError{Code: "57P01"}})

	err := repo.Create(&entity.StockItem{ID: 18, Name: "Pregabalin 75mg", CreatedAt: time.Now()})

	assert.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrDuplicate)
}
