package postgresql

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/kalea-hr/payroll-backend-go/internal/pkg/database"
)

type txKey struct{}

// GetQuerier returns either the ambient transaction or the pool. Payslip
// generation runs read-only queries, but snapshot fetches issued inside a
// host transaction should still see its view.
func GetQuerier(ctx context.Context, db *database.DB) database.Querier {
	if tx, ok := ctx.Value(txKey{}).(pgx.Tx); ok {
		return tx
	}
	return db.Pool
}
