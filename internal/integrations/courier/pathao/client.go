package pathao

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/pkg/errors"

	"github.com/BearBump/DispatchBox/internal/errs"
	"github.com/BearBump/DispatchBox/internal/integrations/courier"
	"github.com/BearBump/DispatchBox/internal/models"
)

const (
	Code = "pathao"

	maxDescription = 255

	deliveryTypeNormal = 48
	itemTypeParcel     = 2
)

type Config struct {
	BaseURL      string
	ClientID     string
	ClientSecret string
	Username     string
	Password     string
	StoreID      int64
}

type Client struct {
	cfg   Config
	httpc *http.Client
	now   func() time.Time

	mu          sync.Mutex
	token       string
	tokenExpiry time.Time
}

func New(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api-hermes.pathao.com"
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	return &Client{
		cfg: cfg,
		httpc: &http.Client{
			Timeout: 10 * time.Second,
		},
		now: time.Now,
	}
}

func (c *Client) Code() string { return Code }

type envelope[T any] struct {
	Code    int    `json:"code"`
	Type    string `json:"type"`
	Message string `json:"message"`
	Data    T      `json:"data"`
}

type list[T any] struct {
	Data []T `json:"data"`
}

type tokenResp struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

// accessToken returns a cached token while it is valid for at least another minute.
func (c *Client) accessToken(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.token != "" && c.now().Add(time.Minute).Before(c.tokenExpiry) {
		return c.token, nil
	}

	body := map[string]string{
		"client_id":     c.cfg.ClientID,
		"client_secret": c.cfg.ClientSecret,
		"username":      c.cfg.Username,
		"password":      c.cfg.Password,
		"grant_type":    "password",
	}
	var tr tokenResp
	if err := c.do(ctx, "pathao issue token", http.MethodPost, "/aladdin/api/v1/issue-token", "", body, &tr); err != nil {
		return "", err
	}
	if tr.AccessToken == "" {
		return "", courier.MalformedResponse("pathao issue token", "empty access_token")
	}
	c.token = tr.AccessToken
	c.tokenExpiry = c.now().Add(time.Duration(tr.ExpiresIn) * time.Second)
	return c.token, nil
}

func (c *Client) invalidateToken() {
	c.mu.Lock()
	c.token = ""
	c.mu.Unlock()
}

func (c *Client) authed(ctx context.Context, op, method, path string, in, out any) error {
	tok, err := c.accessToken(ctx)
	if err != nil {
		return err
	}
	return c.do(ctx, op, method, path, tok, in, out)
}

func (c *Client) do(ctx context.Context, op, method, path, token string, in, out any) error {
	var rdr io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return errors.Wrap(err, "marshal request")
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.cfg.BaseURL+path, rdr)
	if err != nil {
		return errors.Wrap(err, "new request")
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
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
	if resp.StatusCode == http.StatusUnauthorized && token != "" {
		// токен отозван раньше срока, следующая попытка возьмёт новый
		c.invalidateToken()
		return errs.Externalf(op, true, "http 401: access token rejected")
	}
	if resp.StatusCode/100 != 2 {
		return courier.HTTPStatusError(op, resp.StatusCode, string(raw))
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return courier.MalformedResponse(op, "decode: %v", err)
	}
	return nil
}

type cityDTO struct {
	CityID   int64  `json:"city_id"`
	CityName string `json:"city_name"`
}

type zoneDTO struct {
	ZoneID   int64  `json:"zone_id"`
	ZoneName string `json:"zone_name"`
}

type areaDTO struct {
	AreaID   int64  `json:"area_id"`
	AreaName string `json:"area_name"`
}

func (c *Client) Cities(ctx context.Context) ([]courier.Place, error) {
	var r envelope[list[cityDTO]]
	if err := c.authed(ctx, "pathao cities", http.MethodGet, "/aladdin/api/v1/city-list", nil, &r); err != nil {
		return nil, err
	}
	out := make([]courier.Place, 0, len(r.Data.Data))
	for _, x := range r.Data.Data {
		out = append(out, courier.Place{ID: x.CityID, Name: x.CityName})
	}
	return out, nil
}

func (c *Client) Zones(ctx context.Context, cityID int64) ([]courier.Place, error) {
	var r envelope[list[zoneDTO]]
	path := fmt.Sprintf("/aladdin/api/v1/cities/%d/zone-list", cityID)
	if err := c.authed(ctx, "pathao zones", http.MethodGet, path, nil, &r); err != nil {
		return nil, err
	}
	out := make([]courier.Place, 0, len(r.Data.Data))
	for _, x := range r.Data.Data {
		out = append(out, courier.Place{ID: x.ZoneID, Name: x.ZoneName})
	}
	return out, nil
}

func (c *Client) Areas(ctx context.Context, zoneID int64) ([]courier.Place, error) {
	var r envelope[list[areaDTO]]
	path := fmt.Sprintf("/aladdin/api/v1/zones/%d/area-list", zoneID)
	if err := c.authed(ctx, "pathao areas", http.MethodGet, path, nil, &r); err != nil {
		return nil, err
	}
	out := make([]courier.Place, 0, len(r.Data.Data))
	for _, x := range r.Data.Data {
		out = append(out, courier.Place{ID: x.AreaID, Name: x.AreaName})
	}
	return out, nil
}

type createOrderReq struct {
	StoreID            int64   `json:"store_id"`
	MerchantOrderID    string  `json:"merchant_order_id"`
	RecipientName      string  `json:"recipient_name"`
	RecipientPhone     string  `json:"recipient_phone"`
	RecipientAddress   string  `json:"recipient_address"`
	RecipientCity      int64   `json:"recipient_city"`
	RecipientZone      int64   `json:"recipient_zone"`
	RecipientArea      int64   `json:"recipient_area,omitempty"`
	DeliveryType       int     `json:"delivery_type"`
	ItemType           int     `json:"item_type"`
	SpecialInstruction string  `json:"special_instruction,omitempty"`
	ItemQuantity       int     `json:"item_quantity"`
	ItemWeight         float64 `json:"item_weight"`
	AmountToCollect    int64   `json:"amount_to_collect"`
	ItemDescription    string  `json:"item_description,omitempty"`
}

type createOrderData struct {
	ConsignmentID   string  `json:"consignment_id"`
	MerchantOrderID string  `json:"merchant_order_id"`
	OrderStatus     string  `json:"order_status"`
	DeliveryFee     float64 `json:"delivery_fee"`
}

func (c *Client) CreateShipment(ctx context.Context, req courier.ShipmentRequest) (courier.ShipmentResult, error) {
	body := createOrderReq{
		StoreID:            c.cfg.StoreID,
		MerchantOrderID:    req.MerchantOrderID,
		RecipientName:      req.RecipientName,
		RecipientPhone:     req.RecipientPhone,
		RecipientAddress:   req.RecipientAddress,
		RecipientCity:      req.Location.CityID,
		RecipientZone:      req.Location.ZoneID,
		RecipientArea:      req.Location.AreaID,
		DeliveryType:       deliveryTypeNormal,
		ItemType:           itemTypeParcel,
		SpecialInstruction: req.SpecialInstruction,
		ItemQuantity:       req.ItemQuantity,
		ItemWeight:         req.ItemWeightKg,
		AmountToCollect:    req.AmountToCollect.WholeTaka(),
		ItemDescription:    courier.Truncate(req.ItemDescription, maxDescription),
	}

	var r envelope[createOrderData]
	if err := c.authed(ctx, "pathao create order", http.MethodPost, "/aladdin/api/v1/orders", body, &r); err != nil {
		return courier.ShipmentResult{}, err
	}
	if r.Data.ConsignmentID == "" {
		return courier.ShipmentResult{}, courier.MalformedResponse("pathao create order", "missing consignment_id (code=%d message=%q)", r.Code, r.Message)
	}

	return courier.ShipmentResult{
		ConsignmentID: r.Data.ConsignmentID,
		TrackingCode:  r.Data.ConsignmentID,
		StatusRaw:     r.Data.OrderStatus,
		DeliveryFee:   models.MoneyFromTaka(r.Data.DeliveryFee),
	}, nil
}

type orderInfoData struct {
	ConsignmentID string `json:"consignment_id"`
	OrderStatus   string `json:"order_status"`
	UpdatedAt     string `json:"updated_at"`
}

func (c *Client) TrackShipment(ctx context.Context, consignmentID string) (courier.TrackingResult, error) {
	var r envelope[orderInfoData]
	path := "/aladdin/api/v1/orders/" + consignmentID + "/info"
	if err := c.authed(ctx, "pathao order info", http.MethodGet, path, nil, &r); err != nil {
		return courier.TrackingResult{}, err
	}
	if r.Data.OrderStatus == "" {
		return courier.TrackingResult{}, courier.MalformedResponse("pathao order info", "missing order_status")
	}

	at := c.now().UTC()
	if r.Data.UpdatedAt != "" {
		if t, err := time.Parse(time.DateTime, r.Data.UpdatedAt); err == nil {
			at = t.UTC()
		}
	}
	return courier.TrackingResult{
		Status:    mapStatus(r.Data.OrderStatus),
		StatusRaw: r.Data.OrderStatus,
		StatusAt:  &at,
	}, nil
}

// mapStatus переводит order_status Pathao в наш courier status.
func mapStatus(raw string) models.CourierStatus {
	s := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(raw), " ", "_"))
	switch s {
	case "pickup_requested", "assigned_for_pickup":
		return models.CourierStatusAssigned
	case "picked":
		return models.CourierStatusPicked
	case "in_transit", "at_the_sorting_hub", "received_at_last_mile_hub", "assigned_for_delivery", "on_hold":
		return models.CourierStatusInTransit
	case "delivered", "partial_delivery":
		return models.CourierStatusDelivered
	case "return", "returned", "paid_return", "exchange":
		return models.CourierStatusReturned
	case "pickup_cancelled", "cancelled", "pickup_failed":
		return models.CourierStatusCancelled
	default:
		return models.CourierStatusPending
	}
}
