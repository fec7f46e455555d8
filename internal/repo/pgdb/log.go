package pgdb

import (
	"context"
	"strings"

	"github.com/Egor213/LogBoard/internal/domain"
	"github.com/Egor213/LogBoard/internal/repo/repoerrs"
	"github.com/Egor213/LogBoard/internal/repo/repotypes"
	errorsUtils "github.com/Egor213/LogBoard/pkg/errors"
	"github.com/Egor213/LogBoard/pkg/postgres"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
)

type LogRepo struct {
	*postgres.Postgres
}

func NewLogRepo(pg *postgres.Postgres) *LogRepo {
	return &LogRepo{pg}
}

func (r *LogRepo) CountLogs(ctx context.Context, filter repotypes.LogFilter) (int, error) {
	query := applyFilters(r.Builder.Select("COUNT(*)").From(logsTable), filter)

	sql, args, err := query.ToSql()
	if err != nil {
		return 0, errorsUtils.WrapPathErr(err)
	}

	var count int
	err = r.CtxGetter.DefaultTrOrDB(ctx, r.Pool).QueryRow(ctx, sql, args...).Scan(&count)
	if err != nil {
		return 0, errorsUtils.WrapPathErr(err)
	}

	return count, nil
}

func (r *LogRepo) FindLogs(ctx context.Context, filter repotypes.LogFilter, page repotypes.Pagination) ([]domain.LogEntry, error) {
	query := applyFilters(r.Builder.Select(logColumns...).From(logsTable), filter).
		OrderBy(BuildOrderBy(page)).
		Limit(uint64(page.Limit)).
		Offset(uint64(page.Offset))

	sql, args, err := query.ToSql()
	if err != nil {
		return []domain.LogEntry{}, errorsUtils.WrapPathErr(err)
	}

	rows, err := r.CtxGetter.DefaultTrOrDB(ctx, r.Pool).Query(ctx, sql, args...)
	if err != nil {
		return []domain.LogEntry{}, errorsUtils.WrapPathErr(err)
	}

	// CollectRows closes rows on every path
	logs, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.LogEntry])
	if err != nil {
		return []domain.LogEntry{}, errorsUtils.WrapPathErr(err)
	}

	return logs, nil
}

func (r *LogRepo) GroupCountLogs(ctx context.Context, filter repotypes.LogFilter, field repotypes.GroupField) ([]repotypes.GroupCount, error) {
	if !field.Valid() {
		return nil, errorsUtils.WrapPathErr(repoerrs.ErrUnsupportedGroupField)
	}
	column := string(field)

	query := applyFilters(r.Builder.Select(column, "COUNT(*) AS count_logs").From(logsTable), filter).
		GroupBy(column)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}

	rows, err := r.CtxGetter.DefaultTrOrDB(ctx, r.Pool).Query(ctx, sql, args...)
	if err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}
	defer rows.Close()

	groups := []repotypes.GroupCount{}
	for rows.Next() {
		var (
			key   *string
			count int64
		)
		if err := rows.Scan(&key, &count); err != nil {
			return nil, errorsUtils.WrapPathErr(err)
		}
		groups = append(groups, repotypes.GroupCount{Key: key, Count: count})
	}

	if err := rows.Err(); err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}

	return groups, nil
}

func (r *LogRepo) GetLogByID(ctx context.Context, id string) (domain.LogEntry, error) {
	sql, args, err := r.Builder.
		Select(logColumns...).
		From(logsTable).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return domain.LogEntry{}, errorsUtils.WrapPathErr(err)
	}

	return r.queryOne(ctx, sql, args)
}

func (r *LogRepo) CreateLog(ctx context.Context, logObj *domain.LogEntry) (domain.LogEntry, error) {
	sql, args, err := r.Builder.
		Insert(logsTable).
		Columns(logColumns...).
		Values(logObj.Id, logObj.Severity, logObj.Message, logObj.Source, logObj.Timestamp, metadataArg(logObj.Metadata)).
		Suffix("RETURNING " + strings.Join(logColumns, ", ")).
		ToSql()
	if err != nil {
		return domain.LogEntry{}, errorsUtils.WrapPathErr(err)
	}

	created, err := r.queryOne(ctx, sql, args)
	if err != nil {
		if errorsUtils.IsUniqueViolation(err) {
			return domain.LogEntry{}, errorsUtils.WrapPathErr(repoerrs.ErrAlreadyExists)
		}
		if errorsUtils.IsCheckViolation(err) {
			return domain.LogEntry{}, errorsUtils.WrapPathErr(repoerrs.ErrInvalidValue)
		}
		return domain.LogEntry{}, err
	}
	return created, nil
}

// CreateLogs inserts the batch with one multi-row statement.
func (r *LogRepo) CreateLogs(ctx context.Context, logs []domain.LogEntry) (int, error) {
	if len(logs) == 0 {
		return 0, nil
	}

	query := r.Builder.Insert(logsTable).Columns(logColumns...)
	for _, l := range logs {
		query = query.Values(l.Id, l.Severity, l.Message, l.Source, l.Timestamp, metadataArg(l.Metadata))
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return 0, errorsUtils.WrapPathErr(err)
	}

	tag, err := r.CtxGetter.DefaultTrOrDB(ctx, r.Pool).Exec(ctx, sql, args...)
	if err != nil {
		if errorsUtils.IsUniqueViolation(err) {
			return 0, errorsUtils.WrapPathErr(repoerrs.ErrAlreadyExists)
		}
		if errorsUtils.IsCheckViolation(err) {
			return 0, errorsUtils.WrapPathErr(repoerrs.ErrInvalidValue)
		}
		return 0, errorsUtils.WrapPathErr(err)
	}

	return int(tag.RowsAffected()), nil
}

func (r *LogRepo) UpdateLog(ctx context.Context, logObj *domain.LogEntry) (domain.LogEntry, error) {
	sql, args, err := r.Builder.
		Update(logsTable).
		Set("severity", logObj.Severity).
		Set("message", logObj.Message).
		Set("source", logObj.Source).
		Set("metadata", metadataArg(logObj.Metadata)).
		Where(sq.Eq{"id": logObj.Id}).
		Suffix("RETURNING " + strings.Join(logColumns, ", ")).
		ToSql()
	if err != nil {
		return domain.LogEntry{}, errorsUtils.WrapPathErr(err)
	}

	updated, err := r.queryOne(ctx, sql, args)
	if err != nil {
		if errorsUtils.IsCheckViolation(err) {
			return domain.LogEntry{}, errorsUtils.WrapPathErr(repoerrs.ErrInvalidValue)
		}
		return domain.LogEntry{}, err
	}
	return updated, nil
}

func (r *LogRepo) DeleteLog(ctx context.Context, id string) error {
	sql, args, err := r.Builder.
		Delete(logsTable).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return errorsUtils.WrapPathErr(err)
	}

	tag, err := r.CtxGetter.DefaultTrOrDB(ctx, r.Pool).Exec(ctx, sql, args...)
	if err != nil {
		return errorsUtils.WrapPathErr(err)
	}
	if tag.RowsAffected() == 0 {
		return errorsUtils.WrapPathErr(repoerrs.ErrNotFound)
	}

	return nil
}

func (r *LogRepo) queryOne(ctx context.Context, sql string, args []any) (domain.LogEntry, error) {
	rows, err := r.CtxGetter.DefaultTrOrDB(ctx, r.Pool).Query(ctx, sql, args...)
	if err != nil {
		return domain.LogEntry{}, errorsUtils.WrapPathErr(err)
	}

	logObj, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[domain.LogEntry])
	if err != nil {
		if errorsUtils.IsNoRows(err) {
			return domain.LogEntry{}, errorsUtils.WrapPathErr(repoerrs.ErrNotFound)
		}
		return domain.LogEntry{}, errorsUtils.WrapPathErr(err)
	}

	return logObj, nil
}
