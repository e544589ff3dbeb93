package dispatch

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/BearBump/DispatchBox/internal/broker/messages"
	"github.com/BearBump/DispatchBox/internal/errs"
	"github.com/BearBump/DispatchBox/internal/geo"
	"github.com/BearBump/DispatchBox/internal/integrations/courier"
	"github.com/BearBump/DispatchBox/internal/integrations/courier/fake"
	"github.com/BearBump/DispatchBox/internal/integrations/courier/pathao"
	"github.com/BearBump/DispatchBox/internal/models"
	"github.com/BearBump/DispatchBox/internal/notify"
	"github.com/BearBump/DispatchBox/internal/phone"
	"github.com/BearBump/DispatchBox/internal/services/directory"
	"github.com/BearBump/DispatchBox/internal/services/inhouse"
	"github.com/BearBump/DispatchBox/internal/services/ledger"
	"github.com/BearBump/DispatchBox/internal/storage/memdispatch"
)

// recordingAdapter keeps the fake vendor's locations and tracking but records requests and
// can fail on demand.
type recordingAdapter struct {
	*fake.Client

	mu   sync.Mutex
	reqs []courier.ShipmentRequest
	err  error
}

func (a *recordingAdapter) CreateShipment(ctx context.Context, req courier.ShipmentRequest) (courier.ShipmentResult, error) {
	a.mu.Lock()
	a.reqs = append(a.reqs, req)
	err := a.err
	a.mu.Unlock()
	if err != nil {
		return courier.ShipmentResult{}, err
	}
	return a.Client.CreateShipment(ctx, req)
}

type listenerSpy struct {
	got []messages.ShipmentStatusChanged
}

func (l *listenerSpy) ShipmentChanged(_ context.Context, ev messages.ShipmentStatusChanged) {
	l.got = append(l.got, ev)
}

type OrchestratorSuite struct {
	suite.Suite

	store    *memdispatch.Store
	adapter  *recordingAdapter
	listener *listenerSpy
	orch     *Orchestrator
	now      time.Time
}

func (s *OrchestratorSuite) SetupTest() {
	s.store = memdispatch.New()
	s.adapter = &recordingAdapter{Client: fake.NewWithCode("pathao")}
	s.listener = &listenerSpy{}
	s.now = time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	reg := courier.NewRegistry()
	reg.Register(s.adapter)

	s.orch = s.newOrchestrator(true, reg)
}

func (s *OrchestratorSuite) newOrchestrator(enabled bool, reg *courier.Registry) *Orchestrator {
	o := New(
		Config{Enabled: enabled, DefaultVendor: "pathao", MerchantRefPrefix: "ORD-"},
		s.store,
		directory.New(s.store),
		reg,
		geo.NewResolver(geo.Config{DefaultCityID: 1}, nil),
		phone.New(phone.PolicyStrict, ""),
		ledger.New(s.store),
	).WithListener(s.listener)
	o.now = func() time.Time { return s.now }
	return o
}

// seedOrder42: COD, total 1500.00, one item qty 2 of 0.5 kg.
func (s *OrchestratorSuite) seedOrder42() models.Order {
	cust := s.store.PutCustomer(models.Customer{Name: "Rahim", Email: "rahim@example.com", Phone: "01712345678"})
	return s.store.PutOrder(models.Order{
		ID:            42,
		CustomerID:    cust.ID,
		PaymentMethod: "cod",
		Total:         models.MoneyFromTaka(1500),
		Shipping: models.ShippingAddress{
			Address: "House 12, Road 5", Area: "Gulshan", City: "Dhaka", Phone: "+880 1712-345678",
		},
	}, models.OrderItem{ProductID: 1, Name: "Mug", Quantity: 2, UnitWeightKg: 0.5})
}

func (s *OrchestratorSuite) assertUntouched(orderID int64) {
	o, err := s.store.GetOrder(context.Background(), orderID)
	s.Require().NoError(err)
	s.Require().Nil(o.CourierID)
	s.Require().Nil(o.CourierTrackingID)
	s.Require().Equal(models.OrderStatusPending, o.Status)
	s.Require().Zero(s.store.EventCount(orderID))
	_, ok, err := s.store.GetShipmentCheck(context.Background(), orderID)
	s.Require().NoError(err)
	s.Require().False(ok)
}

func (s *OrchestratorSuite) TestDispatch_Success() {
	order := s.seedOrder42()

	res := s.orch.Dispatch(context.Background(), order.ID, "", Options{})
	s.Require().Equal(OutcomeDispatched, res.Outcome, "err: %v", res.Err)
	s.Require().NoError(res.Err)
	s.Require().True(res.OK())
	s.Require().Equal("pathao", res.Vendor)
	s.Require().NotEmpty(res.Shipment.ConsignmentID)

	got, err := s.store.GetOrder(context.Background(), order.ID)
	s.Require().NoError(err)
	s.Require().NotNil(got.CourierID)
	s.Require().NotNil(got.CourierTrackingID)
	s.Require().Equal(res.Shipment.TrackingCode, *got.CourierTrackingID)
	s.Require().Equal("ORD-42", *got.CourierOrderID)
	s.Require().Equal(models.CourierStatusPending, got.CourierStatus)
	s.Require().Equal(models.OrderStatusProcessing, got.Status)

	evs, err := s.store.ListTrackingEvents(context.Background(), order.ID)
	s.Require().NoError(err)
	s.Require().Len(evs, 1)
	s.Require().Equal(models.CourierStatusPending, evs[0].Status)
	s.Require().Equal(models.LocationMerchant, evs[0].Location)
	s.Require().Equal(*got.CourierID, evs[0].CourierID)
	s.Require().Equal(s.now, evs[0].Timestamp)

	chk, ok, err := s.store.GetShipmentCheck(context.Background(), order.ID)
	s.Require().NoError(err)
	s.Require().True(ok)
	s.Require().Equal(res.Shipment.ConsignmentID, chk.ConsignmentID)
	s.Require().Equal(s.now.Add(5*time.Minute), chk.NextCheckAt)

	s.Require().Len(s.listener.got, 1)
	s.Require().Equal("pending", s.listener.got[0].Status)
	s.Require().Equal("processing", s.listener.got[0].OrderStatus)
}

func (s *OrchestratorSuite) TestDispatch_Order42Request() {
	order := s.seedOrder42()

	res := s.orch.Dispatch(context.Background(), order.ID, "pathao", Options{})
	s.Require().True(res.OK(), "err: %v", res.Err)

	s.Require().Len(s.adapter.reqs, 1)
	req := s.adapter.reqs[0]
	s.Require().Equal(models.MoneyFromTaka(1500), req.AmountToCollect)
	s.Require().Equal(int64(1500), req.AmountToCollect.WholeTaka())
	s.Require().Equal(1.0, req.ItemWeightKg)
	s.Require().Equal(2, req.ItemQuantity)
	s.Require().Equal("01712345678", req.RecipientPhone)
	s.Require().Equal("Rahim", req.RecipientName)
	s.Require().Equal("ORD-42", req.MerchantOrderID)
	s.Require().Equal(courier.Location{CityID: 1, ZoneID: 101, AreaID: 10101}, req.Location)
}

func (s *OrchestratorSuite) TestDispatch_Order42ThroughPathaoAPI() {
	order := s.seedOrder42()

	var body map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/aladdin/api/v1/issue-token":
			_, _ = w.Write([]byte(`{"access_token":"t","expires_in":3600}`))
		case "/aladdin/api/v1/cities/1/zone-list":
			_, _ = w.Write([]byte(`{"code":200,"data":{"data":[{"zone_id":52,"zone_name":"Gulshan"}]}}`))
		case "/aladdin/api/v1/zones/52/area-list":
			_, _ = w.Write([]byte(`{"code":200,"data":{"data":[{"area_id":7,"area_name":"Road 5"}]}}`))
		case "/aladdin/api/v1/orders":
			_ = json.NewDecoder(r.Body).Decode(&body)
			_, _ = w.Write([]byte(`{"code":200,"data":{"consignment_id":"DL42","order_status":"Pending"}}`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	reg := courier.NewRegistry()
	reg.Register(pathao.New(pathao.Config{BaseURL: srv.URL, StoreID: 1}))

	res := s.newOrchestrator(true, reg).Dispatch(context.Background(), order.ID, "pathao", Options{})
	s.Require().True(res.OK(), "err: %v", res.Err)
	s.Require().Equal("DL42", res.Shipment.TrackingCode)

	s.Require().EqualValues(1500, body["amount_to_collect"])
	s.Require().EqualValues(1.0, body["item_weight"])
	s.Require().EqualValues(52, body["recipient_zone"])
	s.Require().EqualValues(7, body["recipient_area"])
}

func (s *OrchestratorSuite) TestDispatch_DisabledIsSkipped() {
	order := s.seedOrder42()
	reg := courier.NewRegistry()
	reg.Register(s.adapter)
	orch := s.newOrchestrator(false, reg)

	res := orch.Dispatch(context.Background(), order.ID, "pathao", Options{})
	s.Require().Equal(OutcomeSkipped, res.Outcome)
	s.Require().NoError(res.Err)
	s.Require().Empty(s.adapter.reqs)
	s.assertUntouched(order.ID)

	res = orch.Dispatch(context.Background(), order.ID, "pathao", Options{Force: true})
	s.Require().Equal(OutcomeDispatched, res.Outcome)
}

func (s *OrchestratorSuite) TestDispatch_VendorFailureLeavesOrderUnchanged() {
	order := s.seedOrder42()
	s.adapter.err = errs.Externalf("pathao create order", false, "http 422: invalid zone")

	res := s.orch.Dispatch(context.Background(), order.ID, "pathao", Options{})
	s.Require().Equal(OutcomeFailed, res.Outcome)
	s.Require().Equal(errs.KindExternalService, res.Kind())
	s.Require().Nil(res.Shipment)
	s.assertUntouched(order.ID)
	s.Require().Empty(s.listener.got)
}

func (s *OrchestratorSuite) TestDispatch_StorageFailureRollsBack() {
	order := s.seedOrder42()
	s.store.FailOn("AppendTrackingEvent", errors.New("disk full"))

	res := s.orch.Dispatch(context.Background(), order.ID, "pathao", Options{})
	s.Require().Equal(OutcomeFailed, res.Outcome)
	s.Require().Equal(errs.KindInternal, res.Kind())
	s.assertUntouched(order.ID)
}

func (s *OrchestratorSuite) TestDispatch_MissingRecords() {
	res := s.orch.Dispatch(context.Background(), 999, "pathao", Options{})
	s.Require().Equal(OutcomeFailed, res.Outcome)
	s.Require().Equal(errs.KindNotFound, res.Kind())

	noCustomer := s.store.PutOrder(models.Order{CustomerID: 555}, models.OrderItem{Quantity: 1})
	res = s.orch.Dispatch(context.Background(), noCustomer.ID, "pathao", Options{})
	s.Require().Equal(errs.KindNotFound, res.Kind())

	cust := s.store.PutCustomer(models.Customer{Name: "A", Phone: "01712345678"})
	noItems := s.store.PutOrder(models.Order{CustomerID: cust.ID})
	res = s.orch.Dispatch(context.Background(), noItems.ID, "pathao", Options{})
	s.Require().Equal(errs.KindNotFound, res.Kind())
	s.assertUntouched(noItems.ID)

	s.Require().Empty(s.adapter.reqs)
}

func (s *OrchestratorSuite) TestDispatch_UnknownVendor() {
	order := s.seedOrder42()
	res := s.orch.Dispatch(context.Background(), order.ID, "dhl", Options{})
	s.Require().Equal(errs.KindValidation, res.Kind())
	s.assertUntouched(order.ID)
}

func (s *OrchestratorSuite) TestDispatch_BadPhoneFailsBeforeVendor() {
	cust := s.store.PutCustomer(models.Customer{Name: "A"})
	order := s.store.PutOrder(models.Order{CustomerID: cust.ID, Shipping: models.ShippingAddress{Phone: "12345"}},
		models.OrderItem{Quantity: 1, UnitWeightKg: 1})

	res := s.orch.Dispatch(context.Background(), order.ID, "pathao", Options{})
	s.Require().Equal(errs.KindValidation, res.Kind())
	s.Require().Empty(s.adapter.reqs)
	s.assertUntouched(order.ID)
}

func (s *OrchestratorSuite) TestDispatch_AlreadyDispatchedIsSkipped() {
	order := s.seedOrder42()
	s.Require().True(s.orch.Dispatch(context.Background(), order.ID, "pathao", Options{}).OK())

	res := s.orch.Dispatch(context.Background(), order.ID, "pathao", Options{})
	s.Require().Equal(OutcomeSkipped, res.Outcome)
	s.Require().Equal(1, s.store.EventCount(order.ID))
}

func (s *OrchestratorSuite) TestDispatch_TerminalOrderIsStateError() {
	cust := s.store.PutCustomer(models.Customer{Name: "A", Phone: "01712345678"})
	order := s.store.PutOrder(models.Order{CustomerID: cust.ID, Status: models.OrderStatusCancelled},
		models.OrderItem{Quantity: 1})

	res := s.orch.Dispatch(context.Background(), order.ID, "pathao", Options{Force: true})
	s.Require().Equal(errs.KindState, res.Kind())
	s.Require().Empty(s.adapter.reqs)
}

func (s *OrchestratorSuite) TestDispatch_ForceReplacesInHouseAssignment() {
	ctx := context.Background()
	order := s.seedOrder42()
	person := s.store.PutDeliveryPerson(models.DeliveryPerson{Name: "Jamal"})

	dir := directory.New(s.store)
	led := ledger.New(s.store)
	assigned, err := inhouse.NewDispatcher(s.store, dir, led, notify.LogNotifier{}).Assign(ctx, order.ID, person.ID)
	s.Require().NoError(err)
	s.Require().NotNil(assigned.DeliveryOTP)
	otp := *assigned.DeliveryOTP

	res := s.orch.Dispatch(ctx, order.ID, "pathao", Options{Force: true})
	s.Require().True(res.OK(), "%v", res.Err)

	o, err := s.store.GetOrder(ctx, order.ID)
	s.Require().NoError(err)
	s.Require().Nil(o.DeliveryPersonID)
	s.Require().Nil(o.DeliveryOTP)
	s.Require().Nil(o.DeliveryOTPSentAt)
	s.Require().False(o.DeliveryOTPVerified)
	s.Require().Equal(res.Shipment.TrackingCode, *o.CourierTrackingID)

	p, err := s.store.GetDeliveryPerson(ctx, person.ID)
	s.Require().NoError(err)
	s.Require().Zero(p.CurrentOrders)
	s.Require().Equal(1, p.TotalOrders)

	// старый код больше не закрывает доставку
	vr, err := inhouse.NewVerifier(inhouse.VerifierConfig{}, s.store, led).Verify(ctx, order.ID, otp)
	s.Require().NoError(err)
	s.Require().False(vr.Success)
	s.Require().Equal(inhouse.MsgNoDeliveryPerson, vr.Message)

	o, err = s.store.GetOrder(ctx, order.ID)
	s.Require().NoError(err)
	s.Require().Equal(models.CourierStatusPending, o.CourierStatus)
	s.Require().Equal(models.OrderStatusProcessing, o.Status)
}

func TestOrchestratorSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorSuite))
}
