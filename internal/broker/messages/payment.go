package messages

// PaymentSucceeded приходит от платёжного сервиса после подтверждения оплаты.
// Пустой Vendor: используется курьер по умолчанию; Force игнорирует выключенный автодиспатч.
type PaymentSucceeded struct {
	OrderID       int64  `json:"order_id"`
	Vendor        string `json:"vendor,omitempty"`
	Force         bool   `json:"force,omitempty"`
	TransactionID string `json:"transaction_id,omitempty"`
}
