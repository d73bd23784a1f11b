package user

import (
	"errors"
	"strings"

	usererrors "github.com/Zamy17/absensi-karyawan/internal/user/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return usererrors.ErrGuardNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return usererrors.ErrEmailAlreadyRegistered
	}
	if strings.Contains(err.Error(), "duplicate key value") {
		return usererrors.ErrEmailAlreadyRegistered
	}

	return err
}
