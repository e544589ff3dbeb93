package statussync

import (
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/BearBump/DispatchBox/internal/models"
)

type randMock struct {
	mock.Mock
}

func (m *randMock) Intn(n int) int {
	return m.Called(n).Int(0)
}

type PlannerSuite struct {
	suite.Suite
}

func (s *PlannerSuite) TestBackoffDelay() {
	p := NewPlanner(PlannerConfig{}, &randMock{})
	s.Equal(5*time.Minute, p.BackoffDelay(0))
	s.Equal(5*time.Minute, p.BackoffDelay(1))
	s.Equal(15*time.Minute, p.BackoffDelay(2))
	s.Equal(30*time.Minute, p.BackoffDelay(3))
	s.Equal(60*time.Minute, p.BackoffDelay(4))
	s.Equal(60*time.Minute, p.BackoffDelay(100))
}

func (s *PlannerSuite) TestNextCheckDelay_Final() {
	p := NewPlanner(PlannerConfig{}, &randMock{})
	s.Equal(365*24*time.Hour, p.NextCheckDelay(models.CourierStatusDelivered))
	s.Equal(365*24*time.Hour, p.NextCheckDelay(models.CourierStatusReturned))
}

func (s *PlannerSuite) TestNextCheckDelay_MovingUsesJitter() {
	m := &randMock{}
	// 30..120 минут = 1800..7200 секунд
	m.On("Intn", 5401).Return(600).Twice()
	p := NewPlanner(PlannerConfig{}, m)

	s.Equal(40*time.Minute, p.NextCheckDelay(models.CourierStatusInTransit))
	s.Equal(40*time.Minute, p.NextCheckDelay(models.CourierStatusPicked))
	m.AssertExpectations(s.T())
}

func (s *PlannerSuite) TestNextCheckDelay_FixedWindowSkipsRand() {
	m := &randMock{}
	p := NewPlanner(PlannerConfig{MovingMinDelay: time.Minute, MovingMaxDelay: 10 * time.Second}, m)
	s.Equal(time.Minute, p.NextCheckDelay(models.CourierStatusInTransit))
	m.AssertNotCalled(s.T(), "Intn", mock.Anything)
}

func (s *PlannerSuite) TestNextCheckDelay_Waiting() {
	p := NewPlanner(PlannerConfig{WaitingDelay: 7 * time.Minute}, &randMock{})
	s.Equal(7*time.Minute, p.NextCheckDelay(models.CourierStatusPending))
}

func TestPlannerSuite(t *testing.T) {
	suite.Run(t, new(PlannerSuite))
}
