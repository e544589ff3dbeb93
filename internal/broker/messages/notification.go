package messages

import "time"

// DeliveryOTPIssued is consumed by the mailer, which emails the code to the customer.
type DeliveryOTPIssued struct {
	OrderID      int64     `json:"order_id"`
	Email        string    `json:"email"`
	CustomerName string    `json:"customer_name"`
	OTP          string    `json:"otp"`
	IssuedAt     time.Time `json:"issued_at"`
}
