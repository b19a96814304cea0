// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 pg-config-view contributors

package store

import (
	"context"
	"database/sql"
	"errors"

	sq "github.com/Masterminds/squirrel"

	"github.com/pgtools/pg-config-view/internal/logger"
	"github.com/pgtools/pg-config-view/internal/report"
	"github.com/pgtools/pg-config-view/models"
)

// configTableStore materializes report rows into the pg_config sqlite
// table and answers lookups against it.
type configTableStore struct {
	db     *DB
	logger *logger.Logger
}

// NewConfigTable returns a ConfigTable backed by db. The schema must
// already be migrated.
func NewConfigTable(db *DB, log *logger.Logger) ConfigTable {
	return &configTableStore{db: db, logger: log}
}

// Load streams a fresh report into the table inside one transaction. The
// previous contents are dropped first, so readers either see the old
// complete table or the new one, never a mix.
func (s *configTableStore) Load(ctx context.Context, rep *report.Reporter) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Err(err).Str("func", "Load").Msg("error beginning transaction")
		return errors.Join(ErrBeginningTransaction, err)
	}

	if _, err = tx.ExecContext(ctx, "DELETE FROM pg_config"); err != nil {
		_ = tx.Rollback()
		return errors.Join(ErrExecutingQuery, err)
	}

	sink := &txSink{ctx: ctx, tx: tx}
	if err = rep.ReportTo(sink); err != nil {
		_ = tx.Rollback()
		return err
	}

	if err = tx.Commit(); err != nil {
		return errors.Join(ErrCommittingTransaction, err)
	}

	return nil
}

func (s *configTableStore) SelectAll(ctx context.Context) ([]models.ConfigEntry, error) {
	query, args, err := sq.Select("name", "setting").
		From("pg_config").
		OrderBy("ord").
		ToSql()
	if err != nil {
		return nil, errors.Join(ErrBuildingSQLQuery, err)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		s.logger.Err(err).Str("func", "SelectAll").Msg("error querying config entries")
		return nil, errors.Join(ErrExecutingQuery, err)
	}
	defer rows.Close()

	var entries []models.ConfigEntry
	for rows.Next() {
		var e models.ConfigEntry
		if err := rows.Scan(&e.Name, &e.Setting); err != nil {
			return nil, errors.Join(ErrScanningRows, err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Join(ErrScanningRows, err)
	}

	return entries, nil
}

func (s *configTableStore) SelectByName(ctx context.Context, name string) (models.ConfigEntry, error) {
	query, args, err := sq.Select("name", "setting").
		From("pg_config").
		Where(sq.Eq{"name": name}).
		ToSql()
	if err != nil {
		return models.ConfigEntry{}, errors.Join(ErrBuildingSQLQuery, err)
	}

	var e models.ConfigEntry
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&e.Name, &e.Setting)
	if errors.Is(err, sql.ErrNoRows) {
		return models.ConfigEntry{}, ErrEntryNotFound
	}
	if err != nil {
		s.logger.Err(err).Str("func", "SelectByName").Str("name", name).Msg("error querying config entry")
		return models.ConfigEntry{}, errors.Join(ErrScanningRow, err)
	}

	return e, nil
}

// txSink loads report rows into pg_config within an open transaction,
// preserving declared order through the ord column. It accepts
// materialized row sets.
type txSink struct {
	ctx context.Context
	tx  *sql.Tx
	ord int
}

func (s *txSink) Capabilities() report.Capability {
	return report.CapMaterialize
}

func (s *txSink) PutRow(name, setting string) error {
	query, args, err := sq.Insert("pg_config").
		Columns("name", "setting", "ord").
		Values(name, setting, s.ord).
		ToSql()
	if err != nil {
		return errors.Join(ErrBuildingSQLQuery, err)
	}

	if _, err := s.tx.ExecContext(s.ctx, query, args...); err != nil {
		return errors.Join(ErrExecutingQuery, err)
	}

	s.ord++
	return nil
}
