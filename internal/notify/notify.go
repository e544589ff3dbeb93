// Package notify delivers delivery OTPs to customers. Delivery is best effort: callers log
// failures and carry on.
package notify

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"github.com/pkg/errors"

	"github.com/BearBump/DispatchBox/internal/broker/messages"
)

type OTPMessage struct {
	OrderID      int64
	OTP          string
	CustomerName string
}

type Notifier interface {
	SendOTP(ctx context.Context, email string, msg OTPMessage) error
}

type Publisher interface {
	PublishJSON(ctx context.Context, topic string, key []byte, v any) error
}

// KafkaNotifier hands the OTP to the mailer through a topic.
type KafkaNotifier struct {
	pub   Publisher
	topic string
	now   func() time.Time
}

func NewKafkaNotifier(pub Publisher, topic string) *KafkaNotifier {
	return &KafkaNotifier{pub: pub, topic: topic, now: time.Now}
}

func (n *KafkaNotifier) SendOTP(ctx context.Context, email string, msg OTPMessage) error {
	if email == "" {
		return errors.New("customer email is empty")
	}
	ev := messages.DeliveryOTPIssued{
		OrderID:      msg.OrderID,
		Email:        email,
		CustomerName: msg.CustomerName,
		OTP:          msg.OTP,
		IssuedAt:     n.now().UTC(),
	}
	return n.pub.PublishJSON(ctx, n.topic, []byte(strconv.FormatInt(msg.OrderID, 10)), ev)
}

// LogNotifier только пишет в лог; для локального запуска без Kafka.
type LogNotifier struct{}

func (LogNotifier) SendOTP(_ context.Context, email string, msg OTPMessage) error {
	slog.Info("delivery otp issued", "order_id", msg.OrderID, "email", email, "otp", msg.OTP)
	return nil
}
