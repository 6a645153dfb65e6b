package reminder

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/MYB-BookingService/internal/domain"
	"github.com/m04kA/MYB-BookingService/pkg/dbmetrics"
	"github.com/m04kA/MYB-BookingService/pkg/psqlbuilder"
)

// Repository репозиторий записей о напоминаниях
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория напоминаний
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create фиксирует отправленное напоминание
func (r *Repository) Create(ctx context.Context, rem *domain.Reminder) (*domain.Reminder, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("reminders").
		Columns("booking_id", "user_id", "type", "message", "status", "sent_at").
		Values(rem.BookingID, rem.UserID, rem.Type, rem.Message, rem.Status, squirrel.Expr("NOW()")).
		Suffix("RETURNING id, sent_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var sentAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&rem.ID, &sentAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	rem.SentAt = sentAt.Time

	return rem, nil
}

// ListByBooking получает напоминания по бронированию (сначала новые)
func (r *Repository) ListByBooking(ctx context.Context, bookingID int64) ([]*domain.Reminder, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"booking_id",
		"user_id",
		"type",
		"message",
		"status",
		"sent_at",
	).
		From("reminders").
		Where(squirrel.Eq{"booking_id": bookingID}).
		OrderBy("sent_at DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByBooking - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByBooking - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	reminders := make([]*domain.Reminder, 0)
	for rows.Next() {
		var rem domain.Reminder
		var sentAt sql.NullTime

		err := rows.Scan(
			&rem.ID,
			&rem.BookingID,
			&rem.UserID,
			&rem.Type,
			&rem.Message,
			&rem.Status,
			&sentAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListByBooking - scan row: %v", ErrScanRow, err)
		}

		rem.SentAt = sentAt.Time
		reminders = append(reminders, &rem)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByBooking - rows error: %v", ErrScanRow, err)
	}

	return reminders, nil
}
