// Package dispatchtx describes the storage operations that must run inside one database
// transaction, so services can be written against either the Postgres or the in-memory store.
package dispatchtx

import (
	"context"
	"time"

	"github.com/BearBump/DispatchBox/internal/models"
)

// Repository: операции внутри транзакции. Методы *ForUpdate блокируют строку до конца
// транзакции.
type Repository interface {
	GetOrderForUpdate(ctx context.Context, orderID int64) (*models.Order, error)
	// SaveOrderDispatch пишет только courier/OTP/status поля заказа.
	SaveOrderDispatch(ctx context.Context, o *models.Order) error

	GetDeliveryPersonForUpdate(ctx context.Context, personID int64) (*models.DeliveryPerson, error)
	// AdjustDeliveryPersonLoad applies the deltas; current_orders never goes below zero.
	AdjustDeliveryPersonLoad(ctx context.Context, personID int64, currentDelta, totalDelta int) error
	CountOrdersForDeliveryPerson(ctx context.Context, personID int64) (int, error)
	DeleteDeliveryPerson(ctx context.Context, personID int64) error

	AppendTrackingEvent(ctx context.Context, e *models.TrackingEvent) error

	UpsertShipmentCheck(ctx context.Context, c *models.ShipmentCheck) error
	RecordShipmentCheckFailure(ctx context.Context, orderID int64, checkedAt time.Time, errMsg string, nextCheckAt time.Time) error
	FinishShipmentCheck(ctx context.Context, orderID int64) error
}

// Runner commits fn's writes atomically; any error from fn rolls everything back.
type Runner interface {
	WithTx(ctx context.Context, fn func(ctx context.Context, tx Repository) error) error
}
