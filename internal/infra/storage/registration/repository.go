package registration

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-ParkingPortal/internal/domain"
	"github.com/m04kA/SMC-ParkingPortal/pkg/psqlbuilder"
)

const tableName = "registered_reservations"

// Repository журнал регистраций в PostgreSQL
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Exists проверяет, зарегистрировано ли бронирование
func (r *Repository) Exists(ctx context.Context, reservationID string) (bool, error) {
	query, args, err := existsQuery(reservationID)
	if err != nil {
		return false, fmt.Errorf("%w: Exists - build select query: %v", ErrBuildQuery, err)
	}

	var one int
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: Exists - execute select: %v", ErrExecQuery, err)
	}

	return true, nil
}

// Create добавляет запись в журнал
// Повторная запись того же бронирования -> ErrAlreadyRegistered
func (r *Repository) Create(ctx context.Context, reg *domain.Registration) error {
	query, args, err := insertQuery(reg)
	if err != nil {
		return fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Create - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrAlreadyRegistered
	}

	return nil
}

// List возвращает все записи журнала, новые первыми
func (r *Repository) List(ctx context.Context) ([]domain.Registration, error) {
	query, args, err := listQuery()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	registrations := make([]domain.Registration, 0)
	for rows.Next() {
		var reg domain.Registration
		if err := rows.Scan(&reg.ReservationID, &reg.ClientID, &reg.RegisteredAt); err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		registrations = append(registrations, reg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - iterate rows: %v", ErrScanRow, err)
	}

	return registrations, nil
}

func existsQuery(reservationID string) (string, []interface{}, error) {
	return psqlbuilder.Select("1").
		From(tableName).
		Where(squirrel.Eq{"reservation_id": reservationID}).
		Limit(1).
		ToSql()
}

func insertQuery(reg *domain.Registration) (string, []interface{}, error) {
	return psqlbuilder.Insert(tableName).
		Columns("reservation_id", "client_id", "registered_at").
		Values(reg.ReservationID, reg.ClientID, reg.RegisteredAt).
		Suffix("ON CONFLICT (reservation_id) DO NOTHING").
		ToSql()
}

func listQuery() (string, []interface{}, error) {
	return psqlbuilder.Select("reservation_id", "client_id", "registered_at").
		From(tableName).
		OrderBy("registered_at DESC").
		ToSql()
}
