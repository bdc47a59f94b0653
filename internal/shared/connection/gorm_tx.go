package connection

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

// GormConn returns a gorm handle bound to tx when a service opened one, so
// repository writes join the same transaction as the outbox insert.
func GormConn(ctx context.Context, db *gorm.DB, tx *sql.Tx) *gorm.DB {
	if tx == nil {
		return db.WithContext(ctx)
	}
	s := db.Session(&gorm.Session{Context: ctx})
	s.Statement.ConnPool = tx
	return s
}
