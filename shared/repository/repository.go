package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"resto/infras/otel"
	"resto/infras/postgres"
	"resto/shared/constant"
	"resto/shared/dto"
	"resto/shared/logger"
	"reflect"
	"slices"
	"strings"

	"github.com/jmoiron/sqlx"
)

var (
	errRequiredFilter = errors.New("required filter")
)

type column struct {
	name  string
	table string
	alias string
}

type execer interface {
	NamedExecContext(ctx context.Context, query string, arg any) (sql.Result, error)
}

type queryer interface {
	PrepareNamedContext(ctx context.Context, query string) (*sqlx.NamedStmt, error)
}

// Repository is a generic sqlx repository for a single table, optionally joined
// with others through the model's GetJoinQuery method.
type Repository[T any] struct {
	db            *postgres.Connection
	otel          otel.Otel
	table         string
	entitas       string
	primaryColumn string
	columns       []column
	join          string
	InsertColumns []string
}

func NewRepository[T any](entitasName, tableName, primaryColumn string, dbConnection *postgres.Connection, otl otel.Otel) Repository[T] {
	var zero T

	reflectType := reflect.TypeOf(zero)
	columns, insertColumns := getColumns(tableName, reflectType)

	valueOf := reflect.ValueOf(zero)
	method := valueOf.MethodByName("GetJoinQuery")
	joinQueryStr := ""

	if method.IsValid() {
		joinQuery := method.Call([]reflect.Value{})

		if len(joinQuery) > 0 {
			joinQueryStr = joinQuery[0].String()
		}
	}

	return Repository[T]{
		db:            dbConnection,
		otel:          otl,
		table:         tableName,
		entitas:       entitasName,
		primaryColumn: primaryColumn,
		columns:       columns,
		join:          joinQueryStr,
		InsertColumns: insertColumns,
	}
}

func (repo *Repository[T]) spanName(method string) string {
	return fmt.Sprintf("%s.%s.%s", constant.OtelRepositoryScopeName, repo.entitas, method)
}

func (repo *Repository[T]) insertQuery() string {
	placeholders := make([]string, 0, len(repo.InsertColumns))

	for _, col := range repo.InsertColumns {
		placeholders = append(placeholders, ":"+col)
	}

	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", repo.table, strings.Join(repo.InsertColumns, ", "), strings.Join(placeholders, ", "))
}

// upsertQuery overwrites every non-primary column when a row with the same primary key exists.
func (repo *Repository[T]) upsertQuery() string {
	updates := []string{}

	for _, col := range repo.InsertColumns {
		if col == repo.primaryColumn {
			continue
		}

		updates = append(updates, fmt.Sprintf("%s = EXCLUDED.%s", col, col))
	}

	if len(updates) == 0 {
		return fmt.Sprintf("%s ON CONFLICT (%s) DO NOTHING", repo.insertQuery(), repo.primaryColumn)
	}

	return fmt.Sprintf("%s ON CONFLICT (%s) DO UPDATE SET %s", repo.insertQuery(), repo.primaryColumn, strings.Join(updates, ", "))
}

func (repo *Repository[T]) exec(ctx context.Context, exec execer, method, query string, arg any) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, repo.spanName(method))
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	_, err := exec.NamedExecContext(ctx, query, arg)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to %s data (%s): %w", method, repo.entitas, err)
	}

	return nil
}

func (repo *Repository[T]) InsertTx(ctx context.Context, sqltx *sqlx.Tx, model T) error {
	return repo.exec(ctx, sqltx, "insert", repo.insertQuery(), model)
}

func (repo *Repository[T]) UpsertTx(ctx context.Context, sqltx *sqlx.Tx, model T) error {
	return repo.exec(ctx, sqltx, "upsert", repo.upsertQuery(), model)
}

func (repo *Repository[T]) exist(ctx context.Context, query queryer, filter dto.FilterGroup) (bool, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, repo.spanName("exist"))
	defer scope.End()

	where, args := repo.BuildWhereClause(filter)
	if where == "" {
		return false, errRequiredFilter
	}

	sqlQuery := fmt.Sprintf("SELECT EXISTS(SELECT 1 FROM %s %s)", repo.table, where)
	scope.SetAttribute(constant.OtelQueryAttributeKey, sqlQuery)

	exist := false

	prepare, err := query.PrepareNamedContext(ctx, sqlQuery)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return false, fmt.Errorf("failed to check exist data (%s): %w", repo.entitas, err)
	}
	defer prepare.Close()

	err = prepare.GetContext(ctx, &exist, args)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return false, fmt.Errorf("failed to check exist data (%s): %w", repo.entitas, err)
	}

	return exist, nil
}

func (repo *Repository[T]) ExistTx(ctx context.Context, sqltx *sqlx.Tx, filter dto.FilterGroup) (bool, error) {
	return repo.exist(ctx, sqltx, filter)
}

func (repo *Repository[T]) getAll(ctx context.Context, query queryer, params dto.QueryParams, filter dto.FilterGroup, columns ...string) ([]T, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, repo.spanName("getAll"))
	defer scope.End()

	where, args := repo.BuildWhereClause(filter)
	selectQuery := repo.getSelectQuery(columns...)

	pagination := params.Paginate(args)

	sqlQuery := fmt.Sprintf("SELECT %s FROM %s %s %s %s %s", selectQuery, repo.table, repo.join, where, params.OrderClause(), pagination)
	scope.SetAttribute(constant.OtelQueryAttributeKey, sqlQuery)

	models := []T{}

	prepare, err := query.PrepareNamedContext(ctx, sqlQuery)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return models, fmt.Errorf("failed to prepare statement (%s): %w", repo.entitas, err)
	}
	defer prepare.Close()

	err = prepare.SelectContext(ctx, &models, args)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return models, fmt.Errorf("failed to get all data (%s): %w", repo.entitas, err)
	}

	return models, nil
}

func (repo *Repository[T]) GetAll(ctx context.Context, params dto.QueryParams, filter dto.FilterGroup, columns ...string) ([]T, error) {
	return repo.getAll(ctx, repo.db.Read, params, filter, columns...)
}

func (repo *Repository[T]) GetAllTx(ctx context.Context, sqltx *sqlx.Tx, params dto.QueryParams, filter dto.FilterGroup, columns ...string) ([]T, error) {
	return repo.getAll(ctx, sqltx, params, filter, columns...)
}

func (repo *Repository[T]) count(ctx context.Context, query queryer, filter dto.FilterGroup) (int, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, repo.spanName("count"))
	defer scope.End()

	where, args := repo.BuildWhereClause(filter)

	sqlQuery := fmt.Sprintf("SELECT COUNT(%s.%s) FROM %s %s %s", repo.table, repo.primaryColumn, repo.table, repo.join, where)
	scope.SetAttribute(constant.OtelQueryAttributeKey, sqlQuery)

	var count int

	prepare, err := query.PrepareNamedContext(ctx, sqlQuery)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to prepare statement (%s): %w", repo.entitas, err)
	}
	defer prepare.Close()

	err = prepare.GetContext(ctx, &count, args)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to count data (%s): %w", repo.entitas, err)
	}

	return count, nil
}

func (repo *Repository[T]) Count(ctx context.Context, filter dto.FilterGroup) (int, error) {
	return repo.count(ctx, repo.db.Read, filter)
}

func (repo *Repository[T]) CountTx(ctx context.Context, sqltx *sqlx.Tx, filter dto.FilterGroup) (int, error) {
	return repo.count(ctx, sqltx, filter)
}

func (repo *Repository[T]) getSelectQuery(columnsParam ...string) string {
	columns := []string{}

	for _, col := range repo.columns {
		tableField := col.table
		name := col.name
		alias := col.alias

		if len(columnsParam) > 0 && !slices.Contains(columnsParam, name) {
			continue
		}

		var column string

		switch {
		case tableField == "":
			column = name
		case alias != "":
			column = fmt.Sprintf("%s.%s AS %s", tableField, name, alias)
		default:
			column = fmt.Sprintf("%s.%s", tableField, name)
		}

		columns = append(columns, column)
	}

	return strings.Join(columns, ", ")
}

func (repo *Repository[T]) BuildWhereClause(filter dto.FilterGroup) (string, map[string]any) {
	where, args := filter.GetWhereClause()

	if where == "" {
		return where, map[string]any{}
	}

	return fmt.Sprintf(" WHERE %s ", where), args
}

func getColumns(table string, reflectType reflect.Type) (columns []column, insertColumns []string) {
	for i := range reflectType.NumField() {
		field := reflectType.Field(i)
		dbTag := field.Tag.Get("db")
		tableField := field.Tag.Get("table")
		colTag := field.Tag.Get("column")

		if tableField == "" {
			tableField = table
		}

		if field.Anonymous && field.Type.Kind() == reflect.Struct {
			col, insertCol := getColumns(table, field.Type)
			columns = append(columns, col...)
			insertColumns = append(insertColumns, insertCol...)
		}

		if dbTag == "" || dbTag == "-" {
			continue
		}

		if tableField == table {
			insertColumns = append(insertColumns, dbTag)
		}

		if colTag == "" {
			columns = append(columns, column{name: dbTag, table: tableField})
		} else {
			columns = append(columns, column{name: colTag, table: tableField, alias: dbTag})
		}
	}

	return columns, insertColumns
}
