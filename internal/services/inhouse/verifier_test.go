package inhouse

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"

	"github.com/BearBump/DispatchBox/internal/cache/rediscache"
	"github.com/BearBump/DispatchBox/internal/models"
	"github.com/BearBump/DispatchBox/internal/services/ledger"
	"github.com/BearBump/DispatchBox/internal/storage/memdispatch"
)

type verifyFixture struct {
	store  *memdispatch.Store
	v      *Verifier
	person models.DeliveryPerson
}

// newVerifyFixture seeds order 10 assigned to one delivery person with OTP 123456.
func newVerifyFixture(t *testing.T, status models.CourierStatus) *verifyFixture {
	t.Helper()
	store := memdispatch.New()
	courier, err := store.GetOrCreateCourier(context.Background(), models.InternalCourierName, models.ChannelInternal)
	require.NoError(t, err)

	p := store.PutDeliveryPerson(models.DeliveryPerson{Name: "Jamal", CurrentOrders: 1, TotalOrders: 1})
	cust := store.PutCustomer(models.Customer{Name: "Karim"})
	store.PutOrder(models.Order{
		ID:                10,
		CustomerID:        cust.ID,
		Status:            status.OrderStatus(),
		CourierID:         &courier.ID,
		CourierTrackingID: models.Ptr("INT-10-1"),
		CourierStatus:     status,
		DeliveryPersonID:  &p.ID,
		DeliveryOTP:       models.Ptr("123456"),
	})
	return &verifyFixture{
		store:  store,
		v:      NewVerifier(VerifierConfig{}, store, ledger.New(store)),
		person: p,
	}
}

func (f *verifyFixture) load(t *testing.T) int {
	t.Helper()
	p, err := f.store.GetDeliveryPerson(context.Background(), f.person.ID)
	require.NoError(t, err)
	return p.CurrentOrders
}

func TestVerify_WrongOTP(t *testing.T) {
	f := newVerifyFixture(t, models.CourierStatusAssigned)

	res, err := f.v.Verify(context.Background(), 10, "000000")
	require.NoError(t, err)
	require.False(t, res.Success)
	require.Equal(t, MsgInvalidOTP, res.Message)

	o, err := f.store.GetOrder(context.Background(), 10)
	require.NoError(t, err)
	require.False(t, o.DeliveryOTPVerified)
	require.Equal(t, models.CourierStatusAssigned, o.CourierStatus)
	require.Equal(t, 1, f.load(t))
	require.Zero(t, f.store.EventCount(10))
}

func TestVerify_TwiceWithCorrectOTP(t *testing.T) {
	f := newVerifyFixture(t, models.CourierStatusInTransit)
	ctx := context.Background()

	res, err := f.v.Verify(ctx, 10, "123456")
	require.NoError(t, err)
	require.True(t, res.Success)

	o, err := f.store.GetOrder(ctx, 10)
	require.NoError(t, err)
	require.True(t, o.DeliveryOTPVerified)
	require.Equal(t, models.CourierStatusDelivered, o.CourierStatus)
	require.Equal(t, models.OrderStatusDelivered, o.Status)
	require.Zero(t, f.load(t))

	evs, err := f.store.ListTrackingEvents(ctx, 10)
	require.NoError(t, err)
	require.Len(t, evs, 1)
	require.Equal(t, models.CourierStatusDelivered, evs[0].Status)
	require.Equal(t, models.LocationCustomer, evs[0].Location)
	require.Equal(t, "INT-10-1", evs[0].TrackingID)

	res, err = f.v.Verify(ctx, 10, "123456")
	require.NoError(t, err)
	require.Equal(t, VerifyResult{Success: false, Message: MsgAlreadyVerified}, res)
	require.Zero(t, f.load(t))
	require.Equal(t, 1, f.store.EventCount(10))
}

func TestVerify_ExpectedFailures(t *testing.T) {
	ctx := context.Background()
	f := newVerifyFixture(t, models.CourierStatusAssigned)

	res, err := f.v.Verify(ctx, 999, "123456")
	require.NoError(t, err)
	require.Equal(t, MsgOrderNotFound, res.Message)

	cust := f.store.PutCustomer(models.Customer{Name: "X"})
	f.store.PutOrder(models.Order{ID: 11, CustomerID: cust.ID})
	res, err = f.v.Verify(ctx, 11, "123456")
	require.NoError(t, err)
	require.Equal(t, MsgNoDeliveryPerson, res.Message)
}

func TestVerify_AfterStatusUpdateDelivered(t *testing.T) {
	f := newVerifyFixture(t, models.CourierStatusDelivered)
	// UpdateStatus уже освободил курьера
	f.store.PutDeliveryPerson(models.DeliveryPerson{ID: f.person.ID, Name: "Jamal", CurrentOrders: 0, TotalOrders: 1})

	res, err := f.v.Verify(context.Background(), 10, "123456")
	require.NoError(t, err)
	require.True(t, res.Success)
	require.Zero(t, f.load(t))
	require.Zero(t, f.store.EventCount(10))
}

func TestVerify_CancelledDelivery(t *testing.T) {
	f := newVerifyFixture(t, models.CourierStatusCancelled)

	res, err := f.v.Verify(context.Background(), 10, "123456")
	require.NoError(t, err)
	require.Equal(t, MsgDeliveryClosed, res.Message)

	o, err := f.store.GetOrder(context.Background(), 10)
	require.NoError(t, err)
	require.False(t, o.DeliveryOTPVerified)
}

func TestVerify_StorageErrorIsReturned(t *testing.T) {
	f := newVerifyFixture(t, models.CourierStatusAssigned)
	f.store.FailOn("GetOrder", errors.New("connection reset"))

	_, err := f.v.Verify(context.Background(), 10, "123456")
	require.Error(t, err)

	f.store.FailOn("AppendTrackingEvent", errors.New("disk full"))
	_, err = f.v.Verify(context.Background(), 10, "123456")
	require.Error(t, err)

	o, err := f.store.GetOrder(context.Background(), 10)
	require.NoError(t, err)
	require.False(t, o.DeliveryOTPVerified)
	require.Equal(t, 1, f.load(t))
}

func TestVerify_AttemptLimit(t *testing.T) {
	mr := miniredis.RunT(t)
	f := newVerifyFixture(t, models.CourierStatusAssigned)
	f.v = NewVerifier(VerifierConfig{MaxAttempts: 3, Window: time.Minute}, f.store, ledger.New(f.store)).
		WithLimiter(rediscache.NewRateLimiter(mr.Addr()))
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		res, err := f.v.Verify(ctx, 10, "111111")
		require.NoError(t, err)
		require.Equal(t, MsgInvalidOTP, res.Message)
	}

	res, err := f.v.Verify(ctx, 10, "123456")
	require.NoError(t, err)
	require.Equal(t, MsgTooManyAttempts, res.Message)

	mr.FastForward(2 * time.Minute)
	res, err = f.v.Verify(ctx, 10, "123456")
	require.NoError(t, err)
	require.True(t, res.Success)
	require.False(t, mr.Exists("otp:attempts:10"))
}

func TestVerify_LimiterDownFailsOpen(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	f := newVerifyFixture(t, models.CourierStatusAssigned)
	f.v = NewVerifier(VerifierConfig{MaxAttempts: 1}, f.store, ledger.New(f.store)).
		WithLimiter(rediscache.NewRateLimiter(mr.Addr()))
	mr.Close()

	res, err := f.v.Verify(context.Background(), 10, "123456")
	require.NoError(t, err)
	require.True(t, res.Success)
}
