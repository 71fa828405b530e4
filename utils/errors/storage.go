package errors

import (
	stderrors "errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/muhammadheryan/rare-treasures/constant"
)

// integrityConstraintClass is the SQLSTATE class for not-null, foreign key,
// unique and check violations.
const integrityConstraintClass = "23"

// FromStorage classifies an error returned while executing a statement.
// Constraint violations keep the database message verbatim; everything else
// collapses to a generic internal error.
func FromStorage(err error) CustomError {
	var pgErr *pgconn.PgError
	if stderrors.As(err, &pgErr) && len(pgErr.Code) >= 2 && pgErr.Code[:2] == integrityConstraintClass {
		return SetCustomError(constant.ErrStorageConstraint).WithMessage(pgErr.Message)
	}
	return SetCustomError(constant.ErrInternal)
}
