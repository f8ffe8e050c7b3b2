// Package repository implements the generic single-table data access every
// entity manager embeds. Queries are built from db struct tags; predicates
// come in as a FilterGroup and ordering as ListParams.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"maps"
	"reflect"
	"strings"

	"flightdesk/infras/otel"
	"flightdesk/infras/sqlite"
	"flightdesk/shared/constant"
	"flightdesk/shared/dto"
	"flightdesk/shared/logger"
)

var (
	errRequiredFilter = errors.New("required filter")
)

type column struct {
	name string
}

type Repository[T any] struct {
	conn          *sqlite.Connection
	otel          otel.Otel
	table         string
	entitas       string
	columns       []column
	InsertColumns []string
}

func NewRepository[T any](entitasName, tableName string, conn *sqlite.Connection, otl otel.Otel) Repository[T] {
	var zero T

	columns, insertColumns := getColumns(reflect.TypeOf(zero))

	return Repository[T]{
		conn:          conn,
		otel:          otl,
		table:         tableName,
		entitas:       entitasName,
		columns:       columns,
		InsertColumns: insertColumns,
	}
}

// EnsureSchema runs the table's CREATE TABLE IF NOT EXISTS statement. It never
// drops or alters existing structure and is safe to call repeatedly.
func (repo *Repository[T]) EnsureSchema(ctx context.Context, ddl string) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.EnsureSchema", constant.OtelRepositoryScopeName, repo.entitas))
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, ddl)

	if _, err := repo.conn.DB.ExecContext(ctx, ddl); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to ensure schema (%s): %w", repo.entitas, err)
	}

	return nil
}

func (repo *Repository[T]) Insert(ctx context.Context, model T) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.Insert", constant.OtelRepositoryScopeName, repo.entitas))
	defer scope.End()

	placeholders := []string{}

	for _, col := range repo.InsertColumns {
		placeholders = append(placeholders, ":"+col)
	}

	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", repo.table, strings.Join(repo.InsertColumns, ", "), strings.Join(placeholders, ", "))
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	_, err := repo.conn.DB.NamedExecContext(ctx, query, model)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to insert data (%s): %w", repo.entitas, err)
	}

	return nil
}

func (repo *Repository[T]) Exist(ctx context.Context, filter dto.FilterGroup) (bool, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.Exist", constant.OtelRepositoryScopeName, repo.entitas))
	defer scope.End()

	where, args := repo.buildWhereClause(filter)
	if where == "" {
		return false, errRequiredFilter
	}

	query := fmt.Sprintf("SELECT EXISTS(SELECT 1 FROM %s %s)", repo.table, where)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	exist := false

	prepare, err := repo.conn.DB.PrepareNamedContext(ctx, query)
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

// Get fetches a single row. A missing row is not an error: the zero model is
// returned and the caller decides whether that means not-found.
func (repo *Repository[T]) Get(ctx context.Context, filter dto.FilterGroup) (T, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.Get", constant.OtelRepositoryScopeName, repo.entitas))
	defer scope.End()

	where, args := repo.buildWhereClause(filter)

	query := fmt.Sprintf("SELECT %s FROM %s %s", repo.selectColumns(), repo.table, where)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var model T

	prepare, err := repo.conn.DB.PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return model, fmt.Errorf("failed to prepare statement (%s): %w", repo.entitas, err)
	}
	defer prepare.Close()

	err = prepare.GetContext(ctx, &model, args)
	if errors.Is(err, sql.ErrNoRows) {
		return model, nil
	}

	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return model, fmt.Errorf("failed to get data (%s): %w", repo.entitas, err)
	}

	return model, nil
}

// GetAll returns matching rows, in insertion order unless params carry an
// ORDER BY column. The returned slice is never nil.
func (repo *Repository[T]) GetAll(ctx context.Context, params dto.ListParams, filter dto.FilterGroup) ([]T, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.GetAll", constant.OtelRepositoryScopeName, repo.entitas))
	defer scope.End()

	where, args := repo.buildWhereClause(filter)

	var ordering string

	params.Normalize()

	if params.SortBy != "" && params.SortDir != "" {
		ordering = fmt.Sprintf("ORDER BY %s %s", params.SortBy, params.SortDir)
	}

	query := fmt.Sprintf("SELECT %s FROM %s %s %s", repo.selectColumns(), repo.table, where, ordering)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	models := []T{}

	prepare, err := repo.conn.DB.PrepareNamedContext(ctx, query)
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

func (repo *Repository[T]) Count(ctx context.Context, filter dto.FilterGroup) (int, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.Count", constant.OtelRepositoryScopeName, repo.entitas))
	defer scope.End()

	where, args := repo.buildWhereClause(filter)

	query := fmt.Sprintf("SELECT COUNT(*) FROM %s %s", repo.table, where)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var count int

	prepare, err := repo.conn.DB.PrepareNamedContext(ctx, query)
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

func (repo *Repository[T]) Update(ctx context.Context, mod map[string]any, filter dto.FilterGroup) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.Update", constant.OtelRepositoryScopeName, repo.entitas))
	defer scope.End()

	updateField := []string{}

	for col := range maps.Keys(mod) {
		updateField = append(updateField, fmt.Sprintf("%s = :%s", col, col))
	}

	where, args := repo.buildWhereClause(filter)
	query := fmt.Sprintf("UPDATE %s SET %s %s", repo.table, strings.Join(updateField, ", "), where)

	scope.SetAttribute(constant.OtelQueryAttributeKey, query)
	maps.Copy(args, mod)

	_, err := repo.conn.DB.NamedExecContext(ctx, query, args)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to update data (%s): %w", repo.entitas, err)
	}

	return nil
}

// Delete removes the rows matching filter. Deleting rows that do not exist is
// a silent no-op. An empty filter is rejected; full wipes go through DeleteAll.
func (repo *Repository[T]) Delete(ctx context.Context, filter dto.FilterGroup) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.Delete", constant.OtelRepositoryScopeName, repo.entitas))
	defer scope.End()

	where, args := repo.buildWhereClause(filter)
	if where == "" {
		return errRequiredFilter
	}

	query := fmt.Sprintf("DELETE FROM %s %s", repo.table, where)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	_, err := repo.conn.DB.NamedExecContext(ctx, query, args)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to delete data (%s): %w", repo.entitas, err)
	}

	return nil
}

// DeleteAll wipes the whole table.
func (repo *Repository[T]) DeleteAll(ctx context.Context) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.DeleteAll", constant.OtelRepositoryScopeName, repo.entitas))
	defer scope.End()

	query := fmt.Sprintf("DELETE FROM %s", repo.table)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	_, err := repo.conn.DB.ExecContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to wipe data (%s): %w", repo.entitas, err)
	}

	return nil
}

// Distinct returns the distinct values of one text column, in whatever order
// the store yields them.
func (repo *Repository[T]) Distinct(ctx context.Context, columnName string) ([]string, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.Distinct", constant.OtelRepositoryScopeName, repo.entitas))
	defer scope.End()

	query := fmt.Sprintf("SELECT DISTINCT %s FROM %s", columnName, repo.table)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	values := []string{}

	err := repo.conn.DB.SelectContext(ctx, &values, query)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return values, fmt.Errorf("failed to get distinct values (%s): %w", repo.entitas, err)
	}

	return values, nil
}

func (repo *Repository[T]) selectColumns() string {
	names := []string{}
	for _, col := range repo.columns {
		names = append(names, col.name)
	}

	return strings.Join(names, ", ")
}

func (repo *Repository[T]) buildWhereClause(filter dto.FilterGroup) (string, map[string]any) {
	where, args := filter.GetWhereClause()

	if where == "" {
		return where, map[string]any{}
	}

	return fmt.Sprintf(" WHERE %s ", where), args
}

func getColumns(reflectType reflect.Type) (columns []column, insertColumns []string) {
	for i := range reflectType.NumField() {
		field := reflectType.Field(i)
		dbTag := field.Tag.Get("db")

		if field.Anonymous && field.Type.Kind() == reflect.Struct {
			col, insertCol := getColumns(field.Type)
			columns = append(columns, col...)
			insertColumns = append(insertColumns, insertCol...)
		}

		if dbTag == "" || dbTag == "-" {
			continue
		}

		columns = append(columns, column{name: dbTag})

		// Autoincrement and synthetic columns never appear in INSERT lists.
		if field.Tag.Get("insert") == "false" {
			continue
		}

		insertColumns = append(insertColumns, dbTag)
	}

	return columns, insertColumns
}
