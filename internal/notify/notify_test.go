package notify

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/BearBump/DispatchBox/internal/broker/messages"
)

type publisherMock struct {
	mock.Mock
}

func (m *publisherMock) PublishJSON(ctx context.Context, topic string, key []byte, v any) error {
	return m.Called(ctx, topic, key, v).Error(0)
}

func TestKafkaNotifier_SendOTP(t *testing.T) {
	pm := &publisherMock{}
	n := NewKafkaNotifier(pm, "notifications.delivery_otp")
	fixed := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	n.now = func() time.Time { return fixed }

	pm.On("PublishJSON", mock.Anything, "notifications.delivery_otp", []byte("10"), messages.DeliveryOTPIssued{
		OrderID: 10, Email: "a@b.c", CustomerName: "Rahim", OTP: "123456", IssuedAt: fixed,
	}).Return(nil).Once()

	require.NoError(t, n.SendOTP(context.Background(), "a@b.c", OTPMessage{OrderID: 10, OTP: "123456", CustomerName: "Rahim"}))
	pm.AssertExpectations(t)
}

func TestKafkaNotifier_EmptyEmail(t *testing.T) {
	pm := &publisherMock{}
	n := NewKafkaNotifier(pm, "t")
	require.Error(t, n.SendOTP(context.Background(), "", OTPMessage{OrderID: 1}))
	pm.AssertNotCalled(t, "PublishJSON", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestLogNotifier(t *testing.T) {
	require.NoError(t, LogNotifier{}.SendOTP(context.Background(), "a@b.c", OTPMessage{OrderID: 1, OTP: "000000"}))
}
