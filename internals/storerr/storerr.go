// internals/storerr/storerr.go
package storerr

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Enum error storage di boundary repository. Semua repo mengembalikan salah satu
// dari sentinel ini (atau wrap-nya), bukan error mentah GORM/pgx, supaya service
// cukup satu kali memetakan ke taxonomy domain.
var (
	ErrNotFound    = errors.New("store: record not found")
	ErrDuplicate   = errors.New("store: unique violation")
	ErrFKViolation = errors.New("store: foreign key violation")
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// Classify menerjemahkan error GORM/pgx ke sentinel di atas.
// Error lain diteruskan dengan wrap agar penyebab asli tetap terbaca di log.
func Classify(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return fmt.Errorf("%w: %s", ErrDuplicate, pgErr.ConstraintName)
		case pgForeignKeyViolation:
			return fmt.Errorf("%w: %s", ErrFKViolation, pgErr.ConstraintName)
		}
	}
	return fmt.Errorf("store: %w", err)
}
