package statussync

import (
	"math/rand"
	"time"

	"github.com/BearBump/DispatchBox/internal/models"
)

type Rand interface {
	Intn(n int) int
}

type PlannerConfig struct {
	FinalDelay time.Duration // default: 365 days

	MovingMinDelay time.Duration // default: 30 minutes
	MovingMaxDelay time.Duration // default: 120 minutes

	WaitingDelay time.Duration // default: 60 minutes

	Backoff1 time.Duration // default: 5 minutes
	Backoff2 time.Duration // default: 15 minutes
	Backoff3 time.Duration // default: 30 minutes
	Backoff4 time.Duration // default: 60 minutes
}

func DefaultPlannerConfig() PlannerConfig {
	return PlannerConfig{
		FinalDelay: 365 * 24 * time.Hour,

		MovingMinDelay: 30 * time.Minute,
		MovingMaxDelay: 120 * time.Minute,

		WaitingDelay: 60 * time.Minute,

		Backoff1: 5 * time.Minute,
		Backoff2: 15 * time.Minute,
		Backoff3: 30 * time.Minute,
		Backoff4: 60 * time.Minute,
	}
}

// Planner decides when a shipment is polled next.
type Planner struct {
	cfg PlannerConfig
	r   Rand
}

func NewPlanner(cfg PlannerConfig, r Rand) *Planner {
	def := DefaultPlannerConfig()
	if cfg.FinalDelay <= 0 {
		cfg.FinalDelay = def.FinalDelay
	}
	if cfg.MovingMinDelay <= 0 {
		cfg.MovingMinDelay = def.MovingMinDelay
	}
	if cfg.MovingMaxDelay <= 0 {
		cfg.MovingMaxDelay = def.MovingMaxDelay
	}
	if cfg.MovingMaxDelay < cfg.MovingMinDelay {
		cfg.MovingMaxDelay = cfg.MovingMinDelay
	}
	if cfg.WaitingDelay <= 0 {
		cfg.WaitingDelay = def.WaitingDelay
	}
	if cfg.Backoff1 <= 0 {
		cfg.Backoff1 = def.Backoff1
	}
	if cfg.Backoff2 <= 0 {
		cfg.Backoff2 = def.Backoff2
	}
	if cfg.Backoff3 <= 0 {
		cfg.Backoff3 = def.Backoff3
	}
	if cfg.Backoff4 <= 0 {
		cfg.Backoff4 = def.Backoff4
	}
	if r == nil {
		r = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Planner{cfg: cfg, r: r}
}

// NextCheckDelay: moving parcels are polled with jitter so one dispatch batch does not hit
// the vendor in lockstep.
func (p *Planner) NextCheckDelay(status models.CourierStatus) time.Duration {
	switch {
	case status.Terminal():
		return p.cfg.FinalDelay
	case status == models.CourierStatusPicked || status == models.CourierStatusInTransit:
		lo, hi := p.cfg.MovingMinDelay, p.cfg.MovingMaxDelay
		if lo == hi {
			return lo
		}
		secLo, secHi := int(lo.Seconds()), int(hi.Seconds())
		return time.Duration(secLo+p.r.Intn(secHi-secLo+1)) * time.Second
	default:
		return p.cfg.WaitingDelay
	}
}

func (p *Planner) BackoffDelay(nextFailCount int32) time.Duration {
	switch {
	case nextFailCount <= 1:
		return p.cfg.Backoff1
	case nextFailCount == 2:
		return p.cfg.Backoff2
	case nextFailCount == 3:
		return p.cfg.Backoff3
	default:
		return p.cfg.Backoff4
	}
}
