// Package inhouse runs deliveries by the shop's own staff: assignment, status updates and
// OTP confirmation at the door.
package inhouse

import (
	"context"
	"time"

	"github.com/BearBump/DispatchBox/internal/broker/messages"
	"github.com/BearBump/DispatchBox/internal/models"
	"github.com/BearBump/DispatchBox/internal/services/ledger"
	"github.com/BearBump/DispatchBox/internal/storage/dispatchtx"
)

type Repository interface {
	dispatchtx.Runner
	GetOrder(ctx context.Context, orderID int64) (*models.Order, error)
	GetCustomer(ctx context.Context, customerID int64) (*models.Customer, error)
	GetDeliveryPerson(ctx context.Context, personID int64) (*models.DeliveryPerson, error)
}

type Directory interface {
	Internal(ctx context.Context) (*models.Courier, error)
}

type Ledger interface {
	Append(ctx context.Context, w ledger.Writer, e *models.TrackingEvent) error
}

type ChangeListener interface {
	ShipmentChanged(ctx context.Context, ev messages.ShipmentStatusChanged)
}

func changed(o *models.Order, at time.Time) messages.ShipmentStatusChanged {
	ev := messages.ShipmentStatusChanged{
		OrderID:     o.ID,
		Channel:     string(models.ChannelInternal),
		Status:      string(o.CourierStatus),
		OrderStatus: string(o.Status),
		ChangedAt:   at,
	}
	if o.CourierID != nil {
		ev.CourierID = *o.CourierID
	}
	if o.CourierTrackingID != nil {
		ev.TrackingID = *o.CourierTrackingID
	}
	return ev
}
