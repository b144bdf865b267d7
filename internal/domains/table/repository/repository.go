package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"resto/infras/otel"
	"resto/infras/postgres"
	"resto/internal/domains/table/model"
	"resto/shared"
	gDto "resto/shared/dto"
	gRepo "resto/shared/repository"
	"time"

	"github.com/jmoiron/sqlx"
)

type Table interface {
	CatalogExistTx(ctx context.Context, tx *sqlx.Tx, tableName string) (bool, error)
	CountByStatus(ctx context.Context, status model.Status, start, end time.Time) (int, error)
	CountByStatusTx(ctx context.Context, tx *sqlx.Tx, status model.Status, start, end time.Time) (int, error)
	ListByStatus(ctx context.Context, status model.Status, start, end time.Time) ([]model.TableListing, error)
	ListByStatusTx(ctx context.Context, tx *sqlx.Tx, status model.Status, start, end time.Time) ([]model.TableListing, error)
	UpsertStateTx(ctx context.Context, tx *sqlx.Tx, state model.TableState) error
	InsertHistoryTx(ctx context.Context, tx *sqlx.Tx, history model.TableStateHistory) error
}

type repositoryImpl struct {
	catalog gRepo.Repository[model.RestoTable]
	state   gRepo.Repository[model.TableState]
	history gRepo.Repository[model.TableStateHistory]
	listing gRepo.Repository[model.TableListing]
}

func New(db *postgres.Connection, otel otel.Otel) Table {
	return &repositoryImpl{
		catalog: gRepo.NewRepository[model.RestoTable](model.EntityCatalog, model.TableCatalog, model.FieldTableName, db, otel),
		state:   gRepo.NewRepository[model.TableState](model.EntityState, model.TableStates, model.FieldTableName, db, otel),
		history: gRepo.NewRepository[model.TableStateHistory](model.EntityHistory, model.TableHistory, model.FieldID, db, otel),
		listing: gRepo.NewRepository[model.TableListing](model.EntityListing, model.TableStates, model.FieldTableName, db, otel),
	}
}

// FilterByStatusOnDay matches state rows with status whose timestamp lies in [start, end).
func FilterByStatusOnDay(status model.Status, start, end time.Time) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldTableStatus,
				Value:    status,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableStates,
			},
			shared.FilterByDay(model.FieldTimestamp, model.TableStates, start, end),
		},
	}
}

func listingOrder() gDto.QueryParams {
	return gDto.OrderBy(model.TableStates+"."+model.FieldTableName, gDto.SortDirAsc)
}

func (r *repositoryImpl) CatalogExistTx(ctx context.Context, tx *sqlx.Tx, tableName string) (bool, error) {
	return r.catalog.ExistTx(ctx, tx, shared.FilterByID(tableName, model.FieldTableName, model.TableCatalog)) //nolint:wrapcheck
}

func (r *repositoryImpl) CountByStatus(ctx context.Context, status model.Status, start, end time.Time) (int, error) {
	return r.state.Count(ctx, FilterByStatusOnDay(status, start, end)) //nolint:wrapcheck
}

func (r *repositoryImpl) CountByStatusTx(ctx context.Context, tx *sqlx.Tx, status model.Status, start, end time.Time) (int, error) {
	return r.state.CountTx(ctx, tx, FilterByStatusOnDay(status, start, end)) //nolint:wrapcheck
}

func (r *repositoryImpl) ListByStatus(ctx context.Context, status model.Status, start, end time.Time) ([]model.TableListing, error) {
	return r.listing.GetAll(ctx, listingOrder(), FilterByStatusOnDay(status, start, end)) //nolint:wrapcheck
}

func (r *repositoryImpl) ListByStatusTx(ctx context.Context, tx *sqlx.Tx, status model.Status, start, end time.Time) ([]model.TableListing, error) {
	return r.listing.GetAllTx(ctx, tx, listingOrder(), FilterByStatusOnDay(status, start, end)) //nolint:wrapcheck
}

func (r *repositoryImpl) UpsertStateTx(ctx context.Context, tx *sqlx.Tx, state model.TableState) error {
	return r.state.UpsertTx(ctx, tx, state) //nolint:wrapcheck
}

func (r *repositoryImpl) InsertHistoryTx(ctx context.Context, tx *sqlx.Tx, history model.TableStateHistory) error {
	return r.history.InsertTx(ctx, tx, history) //nolint:wrapcheck
}
