// SPDX-License-Identifier: Apache-2.0

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-mirror-sync/internal/logger"
	"github.com/MKhiriev/go-mirror-sync/models"
)

// Persisted key suffixes, namespaced per collection as
// "downloader.<collection>.<suffix>".
const (
	keySuffixNextOffset    = "nextOffset"
	keySuffixBaseTimestamp = "baseTimestamp"
	keySuffixLastModified  = "lastModified"
)

var prefsBuilder = sq.StatementBuilder.PlaceholderFormat(sq.Question)

// sqlCursorStore persists cursor state in the prefs table of the local SQLite
// database. Every write is committed before the method returns, which gives
// the downloader its crash-safety guarantee.
type sqlCursorStore struct {
	db         *DB
	collection string
	logger     *logger.Logger
}

// NewSQLCursorStore returns a [CursorStore] for one collection backed by the
// prefs table of db. The table is created by the embedded migrations; callers
// are expected to have run db.Migrate() first.
func NewSQLCursorStore(db *DB, collection string, log *logger.Logger) CursorStore {
	return &sqlCursorStore{
		db:         db,
		collection: collection,
		logger:     log.WithCollection(collection),
	}
}

func (s *sqlCursorStore) key(suffix string) string {
	return fmt.Sprintf("downloader.%s.%s", s.collection, suffix)
}

func (s *sqlCursorStore) getValue(ctx context.Context, suffix string) (string, bool, error) {
	query, args, err := prefsBuilder.
		Select("value").
		From("prefs").
		Where(sq.Eq{"name": s.key(suffix)}).
		ToSql()
	if err != nil {
		return "", false, fmt.Errorf("build prefs select: %w", err)
	}

	var value string
	row := s.db.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		s.logger.Err(err).Str("pref", s.key(suffix)).Msg("failed to read pref")
		return "", false, fmt.Errorf("read pref %s: %w", s.key(suffix), err)
	}

	return value, true, nil
}

func (s *sqlCursorStore) setValue(ctx context.Context, suffix, value string) error {
	query, args, err := prefsBuilder.
		Insert("prefs").
		Columns("name", "value").
		Values(s.key(suffix), value).
		Suffix("ON CONFLICT(name) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP").
		ToSql()
	if err != nil {
		return fmt.Errorf("build prefs upsert: %w", err)
	}

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		s.logger.Err(err).Str("pref", s.key(suffix)).Msg("failed to write pref")
		return fmt.Errorf("write pref %s: %w", s.key(suffix), err)
	}

	return nil
}

func (s *sqlCursorStore) deleteValues(ctx context.Context, suffixes ...string) error {
	keys := make([]string, 0, len(suffixes))
	for _, suffix := range suffixes {
		keys = append(keys, s.key(suffix))
	}

	query, args, err := prefsBuilder.
		Delete("prefs").
		Where(sq.Eq{"name": keys}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build prefs delete: %w", err)
	}

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		s.logger.Err(err).Strs("prefs", keys).Msg("failed to delete prefs")
		return fmt.Errorf("delete prefs: %w", err)
	}

	return nil
}

func (s *sqlCursorStore) getTimestamp(ctx context.Context, suffix string) (models.Timestamp, error) {
	value, ok, err := s.getValue(ctx, suffix)
	if err != nil || !ok {
		return 0, err
	}

	ts, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("corrupt pref %s=%q: %w", s.key(suffix), value, err)
	}

	return models.Timestamp(ts), nil
}

func (s *sqlCursorStore) NextOffset(ctx context.Context) (string, error) {
	value, _, err := s.getValue(ctx, keySuffixNextOffset)
	return value, err
}

func (s *sqlCursorStore) SetNextOffset(ctx context.Context, offset string) error {
	return s.setValue(ctx, keySuffixNextOffset, offset)
}

func (s *sqlCursorStore) ClearNextOffset(ctx context.Context) error {
	return s.deleteValues(ctx, keySuffixNextOffset)
}

func (s *sqlCursorStore) BaseTimestamp(ctx context.Context) (models.Timestamp, error) {
	return s.getTimestamp(ctx, keySuffixBaseTimestamp)
}

func (s *sqlCursorStore) SetBaseTimestamp(ctx context.Context, ts models.Timestamp) error {
	return s.setValue(ctx, keySuffixBaseTimestamp, strconv.FormatUint(uint64(ts), 10))
}

func (s *sqlCursorStore) LastModified(ctx context.Context) (models.Timestamp, error) {
	return s.getTimestamp(ctx, keySuffixLastModified)
}

func (s *sqlCursorStore) SetLastModified(ctx context.Context, ts models.Timestamp) error {
	return s.setValue(ctx, keySuffixLastModified, strconv.FormatUint(uint64(ts), 10))
}

func (s *sqlCursorStore) Reset(ctx context.Context) error {
	s.logger.Info().Msg("resetting cursor state")
	return s.deleteValues(ctx, keySuffixNextOffset, keySuffixBaseTimestamp, keySuffixLastModified)
}
