package steadfast

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/BearBump/DispatchBox/internal/integrations/courier"
	"github.com/BearBump/DispatchBox/internal/models"
)

const (
	Code = "steadfast"

	maxAddress = 250
	maxNote    = 255
)

type Client struct {
	baseURL   string
	apiKey    string
	secretKey string
	httpc     *http.Client
	now       func() time.Time
}

func New(baseURL, apiKey, secretKey string) *Client {
	if baseURL == "" {
		baseURL = "https://portal.packzy.com"
	}
	return &Client{
		baseURL:   strings.TrimRight(baseURL, "/"),
		apiKey:    apiKey,
		secretKey: secretKey,
		httpc: &http.Client{
			Timeout: 10 * time.Second,
		},
		now: time.Now,
	}
}

func (c *Client) Code() string { return Code }

func (c *Client) do(ctx context.Context, op, method, path string, in, out any) error {
	var rdr io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return errors.Wrap(err, "marshal request")
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, rdr)
	if err != nil {
		return errors.Wrap(err, "new request")
	}
	req.Header.Set("Api-Key", c.apiKey)
	req.Header.Set("Secret-Key", c.secretKey)
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return courier.TransportError(op, errors.Wrap(err, "do request"))
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return courier.TransportError(op, errors.Wrap(err, "read body"))
	}
	if resp.StatusCode/100 != 2 {
		return courier.HTTPStatusError(op, resp.StatusCode, string(raw))
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return courier.MalformedResponse(op, "decode: %v", err)
	}
	return nil
}

type createOrderReq struct {
	Invoice          string  `json:"invoice"`
	RecipientName    string  `json:"recipient_name"`
	RecipientPhone   string  `json:"recipient_phone"`
	RecipientAddress string  `json:"recipient_address"`
	CODAmount        float64 `json:"cod_amount"`
	Note             string  `json:"note,omitempty"`
}

type createOrderResp struct {
	Status      int    `json:"status"`
	Message     string `json:"message"`
	Consignment struct {
		ConsignmentID int64  `json:"consignment_id"`
		Invoice       string `json:"invoice"`
		TrackingCode  string `json:"tracking_code"`
		Status        string `json:"status"`
	} `json:"consignment"`
}

// Steadfast не использует справочник локаций: адрес передаётся текстом.
func (c *Client) CreateShipment(ctx context.Context, req courier.ShipmentRequest) (courier.ShipmentResult, error) {
	note := req.SpecialInstruction
	if note == "" {
		note = req.ItemDescription
	}
	body := createOrderReq{
		Invoice:          req.MerchantOrderID,
		RecipientName:    req.RecipientName,
		RecipientPhone:   req.RecipientPhone,
		RecipientAddress: courier.Truncate(req.RecipientAddress, maxAddress),
		CODAmount:        math.Round(req.AmountToCollect.Taka()*100) / 100,
		Note:             courier.Truncate(note, maxNote),
	}

	var r createOrderResp
	if err := c.do(ctx, "steadfast create order", http.MethodPost, "/api/v1/create_order", body, &r); err != nil {
		return courier.ShipmentResult{}, err
	}
	if r.Status != http.StatusOK || r.Consignment.ConsignmentID == 0 || r.Consignment.TrackingCode == "" {
		return courier.ShipmentResult{}, courier.MalformedResponse("steadfast create order",
			"status=%d message=%q consignment_id=%d", r.Status, r.Message, r.Consignment.ConsignmentID)
	}

	return courier.ShipmentResult{
		ConsignmentID: strconv.FormatInt(r.Consignment.ConsignmentID, 10),
		TrackingCode:  r.Consignment.TrackingCode,
		StatusRaw:     r.Consignment.Status,
	}, nil
}

type statusResp struct {
	Status         int    `json:"status"`
	DeliveryStatus string `json:"delivery_status"`
}

func (c *Client) TrackShipment(ctx context.Context, consignmentID string) (courier.TrackingResult, error) {
	var r statusResp
	if err := c.do(ctx, "steadfast status", http.MethodGet, "/api/v1/status_by_cid/"+consignmentID, nil, &r); err != nil {
		return courier.TrackingResult{}, err
	}
	if r.DeliveryStatus == "" {
		return courier.TrackingResult{}, courier.MalformedResponse("steadfast status", "missing delivery_status")
	}
	now := c.now().UTC()
	return courier.TrackingResult{
		Status:    mapStatus(r.DeliveryStatus),
		StatusRaw: r.DeliveryStatus,
		StatusAt:  &now,
	}, nil
}

func mapStatus(raw string) models.CourierStatus {
	s := strings.ToLower(strings.TrimSpace(raw))
	switch {
	case s == "delivered", s == "partial_delivered", strings.HasPrefix(s, "delivered_approval"), strings.HasPrefix(s, "partial_delivered"):
		return models.CourierStatusDelivered
	case strings.HasPrefix(s, "cancelled"):
		return models.CourierStatusCancelled
	case s == "pending", s == "hold", s == "unknown_approval_pending":
		return models.CourierStatusInTransit
	default:
		// in_review и всё незнакомое: заказ ещё не принят курьером
		return models.CourierStatusPending
	}
}
