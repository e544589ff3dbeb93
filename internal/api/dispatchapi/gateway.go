package dispatchapi

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/encoding/protojson"
)

// NewGatewayMux returns a gateway mux that writes proto field names and zero values, so the
// admin UI sees order_id and courier_status the way they are stored.
func NewGatewayMux() *runtime.ServeMux {
	return runtime.NewServeMux(
		runtime.WithMarshalerOption(runtime.MIMEWildcard, &runtime.JSONPb{
			MarshalOptions:   protojson.MarshalOptions{UseProtoNames: true, EmitUnpopulated: true},
			UnmarshalOptions: protojson.UnmarshalOptions{DiscardUnknown: true},
		}),
		runtime.WithErrorHandler(errorHandler),
	)
}

// errorHandler answers 409 for state conflicts and 502 for courier failures. The rest keeps
// the gateway's default code mapping.
func errorHandler(ctx context.Context, mux *runtime.ServeMux, m runtime.Marshaler, w http.ResponseWriter, r *http.Request, err error) {
	switch status.Code(err) {
	case codes.FailedPrecondition:
		err = &runtime.HTTPStatusError{HTTPStatus: http.StatusConflict, Err: err}
	case codes.Unavailable:
		err = &runtime.HTTPStatusError{HTTPStatus: http.StatusBadGateway, Err: err}
	}
	runtime.DefaultHTTPErrorHandler(ctx, mux, m, w, r, err)
}

// Routes mounts gw under the paths declared in dispatch_api.proto. Listing them in chi keeps
// the route pattern available to Instrument.
func Routes(r chi.Router, gw http.Handler) {
	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/orders/{order_id}", func(r chi.Router) {
			r.Method(http.MethodPost, "/dispatch", gw)
			r.Method(http.MethodPost, "/assign", gw)
			r.Method(http.MethodPost, "/status", gw)
			r.Method(http.MethodPost, "/verify-otp", gw)
			r.Method(http.MethodGet, "/tracking", gw)
		})
		r.Method(http.MethodDelete, "/delivery-persons/{delivery_person_id}", gw)
	})
}
