package ledger

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/BearBump/DispatchBox/internal/errs"
	"github.com/BearBump/DispatchBox/internal/models"
	"github.com/BearBump/DispatchBox/internal/storage/dispatchtx"
	"github.com/BearBump/DispatchBox/internal/storage/memdispatch"
)

func TestLedger_AppendAndHistory(t *testing.T) {
	store := memdispatch.New()
	o := store.PutOrder(models.Order{})
	t0 := time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC)

	clock := t0
	l := New(store).WithClock(func() time.Time { return clock })
	ctx := context.Background()

	err := store.WithTx(ctx, func(ctx context.Context, tx dispatchtx.Repository) error {
		if err := l.Append(ctx, tx, &models.TrackingEvent{OrderID: o.ID, CourierID: 1, Status: models.CourierStatusAssigned}); err != nil {
			return err
		}
		clock = t0.Add(time.Hour)
		return l.Append(ctx, tx, &models.TrackingEvent{OrderID: o.ID, CourierID: 1, Status: models.CourierStatusDelivered, Location: models.LocationCustomer})
	})
	require.NoError(t, err)

	evs, err := l.History(ctx, o.ID)
	require.NoError(t, err)
	require.Len(t, evs, 2)
	require.Equal(t, models.CourierStatusAssigned, evs[0].Status)
	require.Equal(t, t0, evs[0].Timestamp)
	require.Equal(t, models.CourierStatusDelivered, evs[1].Status)
	require.Equal(t, models.LocationCustomer, evs[1].Location)
}

func TestLedger_AppendValidates(t *testing.T) {
	store := memdispatch.New()
	l := New(store)
	ctx := context.Background()

	err := store.WithTx(ctx, func(ctx context.Context, tx dispatchtx.Repository) error {
		return l.Append(ctx, tx, &models.TrackingEvent{OrderID: 1, CourierID: 1, Status: "lost"})
	})
	require.ErrorIs(t, err, errs.Validation)

	err = store.WithTx(ctx, func(ctx context.Context, tx dispatchtx.Repository) error {
		return l.Append(ctx, tx, &models.TrackingEvent{CourierID: 1, Status: models.CourierStatusPending})
	})
	require.ErrorIs(t, err, errs.Validation)

	_, err = l.History(ctx, 0)
	require.ErrorIs(t, err, errs.Validation)
}
