// Package dispatchapi is the admin API over dispatch, in-house delivery and tracking. It is
// served over gRPC and exposed as JSON through grpc-gateway.
package dispatchapi

import (
	"context"
	"log/slog"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/BearBump/DispatchBox/internal/errs"
	"github.com/BearBump/DispatchBox/internal/models"
	"github.com/BearBump/DispatchBox/internal/pb/dispatch_api"
	pb_models "github.com/BearBump/DispatchBox/internal/pb/models"
	"github.com/BearBump/DispatchBox/internal/services/dispatch"
	"github.com/BearBump/DispatchBox/internal/services/inhouse"
	"github.com/BearBump/DispatchBox/internal/services/shipments"
)

type Dispatcher interface {
	Dispatch(ctx context.Context, orderID int64, vendor string, opts dispatch.Options) dispatch.Result
}

type Assigner interface {
	Assign(ctx context.Context, orderID, personID int64) (*models.Order, error)
	UpdateStatus(ctx context.Context, orderID int64, status, details string) (*models.Order, error)
	DeletePerson(ctx context.Context, personID int64) error
}

type Verifier interface {
	Verify(ctx context.Context, orderID int64, otp string) (inhouse.VerifyResult, error)
}

type Tracker interface {
	GetTracking(ctx context.Context, orderID int64) (*shipments.Tracking, error)
}

type DispatchAPI struct {
	dispatch_api.UnimplementedDispatchServiceServer

	dispatcher Dispatcher
	assigner   Assigner
	verifier   Verifier
	tracker    Tracker
}

func New(d Dispatcher, a Assigner, v Verifier, t Tracker) *DispatchAPI {
	return &DispatchAPI{dispatcher: d, assigner: a, verifier: v, tracker: t}
}

func (a *DispatchAPI) DispatchOrder(ctx context.Context, req *dispatch_api.DispatchOrderRequest) (*dispatch_api.DispatchOrderResponse, error) {
	if err := checkID("dispatch", "order_id", req.GetOrderId()); err != nil {
		return nil, err
	}
	res := a.dispatcher.Dispatch(ctx, req.GetOrderId(), req.GetVendor(), dispatch.Options{Force: req.GetForce()})
	if res.Err != nil {
		return nil, toStatus(res.Err)
	}
	out := &dispatch_api.DispatchOrderResponse{
		Outcome: string(res.Outcome),
		OrderId: res.OrderID,
		Vendor:  res.Vendor,
		Reason:  res.Reason,
	}
	if res.Shipment != nil {
		out.ConsignmentId = res.Shipment.ConsignmentID
		out.TrackingCode = res.Shipment.TrackingCode
	}
	return out, nil
}

func (a *DispatchAPI) AssignDeliveryPerson(ctx context.Context, req *dispatch_api.AssignDeliveryPersonRequest) (*pb_models.Order, error) {
	if err := checkID("assign", "order_id", req.GetOrderId()); err != nil {
		return nil, err
	}
	if err := checkID("assign", "delivery_person_id", req.GetDeliveryPersonId()); err != nil {
		return nil, err
	}
	o, err := a.assigner.Assign(ctx, req.GetOrderId(), req.GetDeliveryPersonId())
	if err != nil {
		return nil, toStatus(err)
	}
	return toPBOrder(o), nil
}

func (a *DispatchAPI) UpdateDeliveryStatus(ctx context.Context, req *dispatch_api.UpdateDeliveryStatusRequest) (*pb_models.Order, error) {
	if err := checkID("update status", "order_id", req.GetOrderId()); err != nil {
		return nil, err
	}
	o, err := a.assigner.UpdateStatus(ctx, req.GetOrderId(), req.GetStatus(), req.GetDetails())
	if err != nil {
		return nil, toStatus(err)
	}
	return toPBOrder(o), nil
}

func (a *DispatchAPI) VerifyDeliveryOtp(ctx context.Context, req *dispatch_api.VerifyDeliveryOtpRequest) (*dispatch_api.VerifyDeliveryOtpResponse, error) {
	if err := checkID("verify otp", "order_id", req.GetOrderId()); err != nil {
		return nil, err
	}
	res, err := a.verifier.Verify(ctx, req.GetOrderId(), req.GetOtp())
	if err != nil {
		return nil, toStatus(err)
	}
	// неудачная проверка OTP не ошибка сервера
	return &dispatch_api.VerifyDeliveryOtpResponse{Success: res.Success, Message: res.Message}, nil
}

func (a *DispatchAPI) GetTracking(ctx context.Context, req *dispatch_api.GetTrackingRequest) (*pb_models.Tracking, error) {
	if err := checkID("tracking", "order_id", req.GetOrderId()); err != nil {
		return nil, err
	}
	t, err := a.tracker.GetTracking(ctx, req.GetOrderId())
	if err != nil {
		return nil, toStatus(err)
	}
	return toPBTracking(t), nil
}

func (a *DispatchAPI) DeleteDeliveryPerson(ctx context.Context, req *dispatch_api.DeleteDeliveryPersonRequest) (*emptypb.Empty, error) {
	if err := checkID("delete delivery person", "delivery_person_id", req.GetDeliveryPersonId()); err != nil {
		return nil, err
	}
	if err := a.assigner.DeletePerson(ctx, req.GetDeliveryPersonId()); err != nil {
		return nil, toStatus(err)
	}
	return &emptypb.Empty{}, nil
}

func checkID(op, field string, id int64) error {
	if id <= 0 {
		return toStatus(errs.Validationf(op, "%s must be a positive integer", field))
	}
	return nil
}

// toStatus maps error kinds onto gRPC codes. Internal errors are logged and reach the caller
// without details.
func toStatus(err error) error {
	switch errs.KindOf(err) {
	case errs.KindNotFound:
		return status.Error(codes.NotFound, err.Error())
	case errs.KindValidation:
		return status.Error(codes.InvalidArgument, err.Error())
	case errs.KindState:
		return status.Error(codes.FailedPrecondition, err.Error())
	case errs.KindExternalService:
		return status.Error(codes.Unavailable, err.Error())
	}
	if _, ok := status.FromError(err); ok {
		return err
	}
	slog.Error("request failed", "error", err.Error())
	return status.Error(codes.Internal, "internal error")
}

// toPBOrder leaves the OTP out: it goes to the customer, not to the admin UI.
func toPBOrder(o *models.Order) *pb_models.Order {
	var sentAt *timestamppb.Timestamp
	if o.DeliveryOTPSentAt != nil {
		sentAt = timestamppb.New(*o.DeliveryOTPSentAt)
	}
	return &pb_models.Order{
		Id:                  o.ID,
		Status:              string(o.Status),
		CourierStatus:       string(o.CourierStatus),
		CourierId:           derefInt(o.CourierID),
		CourierOrderId:      derefString(o.CourierOrderID),
		CourierTrackingId:   derefString(o.CourierTrackingID),
		DeliveryPersonId:    derefInt(o.DeliveryPersonID),
		DeliveryOtpVerified: o.DeliveryOTPVerified,
		DeliveryOtpSentAt:   sentAt,
		UpdatedAt:           timestamppb.New(o.UpdatedAt),
	}
}

func toPBTracking(t *shipments.Tracking) *pb_models.Tracking {
	events := make([]*pb_models.TrackingEvent, 0, len(t.Events))
	for _, e := range t.Events {
		events = append(events, &pb_models.TrackingEvent{
			Id:         int64(e.ID),
			OrderId:    e.OrderID,
			CourierId:  e.CourierID,
			TrackingId: e.TrackingID,
			Status:     string(e.Status),
			Details:    e.Details,
			Location:   e.Location,
			Timestamp:  timestamppb.New(e.Timestamp),
		})
	}
	return &pb_models.Tracking{
		OrderId:          t.OrderID,
		Status:           string(t.Status),
		CourierStatus:    string(t.CourierStatus),
		CourierId:        derefInt(t.CourierID),
		CourierName:      t.CourierName,
		Channel:          string(t.Channel),
		CourierOrderId:   t.CourierOrderID,
		TrackingId:       t.TrackingID,
		DeliveryPersonId: derefInt(t.DeliveryPersonID),
		OtpVerified:      t.OTPVerified,
		UpdatedAt:        timestamppb.New(t.UpdatedAt),
		Events:           events,
	}
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func derefInt(v *int64) int64 {
	if v == nil {
		return 0
	}
	return *v
}
