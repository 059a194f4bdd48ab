package postgres

import (
	"database/sql"
	"strings"

	"gorm.io/gorm"
)

// maxInClauseParams keeps IN lists under the bind-parameter limits of every supported driver.
const maxInClauseParams = 1000

func isSQLite(db *gorm.DB) bool {
	return db != nil && strings.EqualFold(db.Dialector.Name(), "sqlite")
}

// snapshotTxOptions asks Postgres for a read-only REPEATABLE READ transaction.
// SQLite transactions are already serializable, so its driver defaults are kept.
func snapshotTxOptions(db *gorm.DB) []*sql.TxOptions {
	if isSQLite(db) {
		return nil
	}

	return []*sql.TxOptions{{Isolation: sql.LevelRepeatableRead, ReadOnly: true}}
}

// monthBucketExpr renders date_of_sale truncated to the first of its month as YYYY-MM-DD text.
// SQLite backs the test suite, so both dialects are supported.
func monthBucketExpr(db *gorm.DB) string {
	if isSQLite(db) {
		return "strftime('%Y-%m-01', orders.date_of_sale)"
	}

	return "to_char(date_trunc('month', orders.date_of_sale), 'YYYY-MM-DD')"
}
