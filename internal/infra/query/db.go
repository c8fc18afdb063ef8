package query

import "fitbook/internal/infra/db"

// Queries holds every SQL statement the service runs. Each method takes the
// connection explicitly so the same Queries works inside and outside a transaction.
type Queries struct{}

func New() *Queries {
	return &Queries{}
}

type DBTX = db.DBTX
