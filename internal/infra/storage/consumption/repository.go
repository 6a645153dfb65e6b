package consumption

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/MYB-BookingService/internal/domain"
	"github.com/m04kA/MYB-BookingService/pkg/dbmetrics"
	"github.com/m04kA/MYB-BookingService/pkg/psqlbuilder"
)

var recordColumns = []string{
	"id",
	"user_id",
	"service_id",
	"service_name",
	"price",
	"payment_type",
	"card_times_before",
	"card_times_after",
	"booking_id",
	"consumed_at",
	"created_at",
}

// Repository репозиторий записей о потреблении (журнал завершенных визитов)
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория записей
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create добавляет запись о потреблении
func (r *Repository) Create(ctx context.Context, record *domain.ConsumptionRecord) (*domain.ConsumptionRecord, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("consumption_records").
		Columns(
			"user_id",
			"service_id",
			"service_name",
			"price",
			"payment_type",
			"card_times_before",
			"card_times_after",
			"booking_id",
			"consumed_at",
		).
		Values(
			record.UserID,
			record.ServiceID,
			record.ServiceName,
			record.Price,
			record.PaymentType,
			record.CardTimesBefore,
			record.CardTimesAfter,
			record.BookingID,
			squirrel.Expr("NOW()"),
		).
		Suffix("RETURNING id, consumed_at, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var consumedAt, createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&record.ID, &consumedAt, &createdAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	record.ConsumedAt = consumedAt.Time
	record.CreatedAt = createdAt.Time

	return record, nil
}

// ExistsByBookingID проверяет наличие записи для бронирования.
// Используется как idempotency check при завершении бронирования:
// повторное завершение не должно создавать вторую запись.
func (r *Repository) ExistsByBookingID(ctx context.Context, bookingID int64) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("1").
		From("consumption_records").
		Where(squirrel.Eq{"booking_id": bookingID}).
		Limit(1).
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: ExistsByBookingID - build select query: %v", ErrBuildQuery, err)
	}

	var one int
	err = executor.QueryRowContext(ctx, query, args...).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: ExistsByBookingID - scan: %v", ErrScanRow, err)
	}

	return true, nil
}

// ListByUser получает записи пользователя (сначала новые)
func (r *Repository) ListByUser(ctx context.Context, userID int64, limit, offset uint64) ([]*domain.ConsumptionRecord, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(recordColumns...).
		From("consumption_records").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("consumed_at DESC").
		Offset(offset)

	if limit > 0 {
		selectBuilder = selectBuilder.Limit(limit)
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByUser - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByUser - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	records := make([]*domain.ConsumptionRecord, 0)
	for rows.Next() {
		var record domain.ConsumptionRecord
		var consumedAt, createdAt sql.NullTime

		err := rows.Scan(
			&record.ID,
			&record.UserID,
			&record.ServiceID,
			&record.ServiceName,
			&record.Price,
			&record.PaymentType,
			&record.CardTimesBefore,
			&record.CardTimesAfter,
			&record.BookingID,
			&consumedAt,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListByUser - scan row: %v", ErrScanRow, err)
		}

		record.ConsumedAt = consumedAt.Time
		record.CreatedAt = createdAt.Time

		records = append(records, &record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByUser - rows error: %v", ErrScanRow, err)
	}

	return records, nil
}
