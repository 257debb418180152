// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorClassification is the result type returned by [ErrorClassificator.Classify].
// It tells repositories whether a failed statement was rejected because of
// the data it carried or because of an unexpected condition.
type ErrorClassification int

const (
	// Unexpected is the default classification for unrecognised errors,
	// connection failures, and syntax errors.
	Unexpected ErrorClassification = iota

	// UniqueViolation means a unique index rejected the row (23505).
	UniqueViolation

	// IntegrityViolation means any other class 23 constraint rejected
	// the row: not-null, check, foreign key, or restrict.
	IntegrityViolation

	// DataException means a value did not fit its column (class 22),
	// e.g. a string longer than a VARCHAR limit.
	DataException
)

// String implements fmt.Stringer.
func (c ErrorClassification) String() string {
	switch c {
	case UniqueViolation:
		return "unique_violation"
	case IntegrityViolation:
		return "integrity_violation"
	case DataException:
		return "data_exception"
	default:
		return "unexpected"
	}
}

// PostgresErrorClassifier implements [ErrorClassificator] for PostgreSQL.
// It inspects the pgconn error code returned by the pgx driver.
type PostgresErrorClassifier struct{}

// NewPostgresErrorClassifier constructs a [PostgresErrorClassifier] ready for use.
func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify implements [ErrorClassificator]. It attempts to unwrap err as a
// *pgconn.PgError and delegates to [ClassifyPgError]. If err is nil or is not
// a PostgreSQL driver error, [Unexpected] is returned.
func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	if err == nil {
		return Unexpected
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return ClassifyPgError(pgErr)
	}

	return Unexpected
}

// ClassifyPgError maps a *pgconn.PgError to an [ErrorClassification] based on
// the PostgreSQL error code.
// See https://www.postgresql.org/docs/current/errcodes-appendix.html for the
// full list of PostgreSQL error codes.
func ClassifyPgError(pgErr *pgconn.PgError) ErrorClassification {
	switch {
	case pgErr.Code == pgerrcode.UniqueViolation:
		return UniqueViolation
	case pgerrcode.IsIntegrityConstraintViolation(pgErr.Code):
		return IntegrityViolation
	case pgerrcode.IsDataException(pgErr.Code):
		return DataException
	default:
		return Unexpected
	}
}

// isConstraintViolation reports whether c means the data was rejected.
func isConstraintViolation(c ErrorClassification) bool {
	return c == UniqueViolation || c == IntegrityViolation || c == DataException
}
