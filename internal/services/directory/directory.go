package directory

import (
	"context"
	"strings"
	"sync"

	"github.com/BearBump/DispatchBox/internal/errs"
	"github.com/BearBump/DispatchBox/internal/models"
)

type Repository interface {
	GetOrCreateCourier(ctx context.Context, name string, channel models.ChannelType) (*models.Courier, error)
}

// Directory resolves courier rows, creating them on first use.
// Найденные записи кэшируются в памяти процесса: этот сервис их не меняет.
type Directory struct {
	repo Repository

	mu     sync.RWMutex
	byName map[string]models.Courier
}

func New(repo Repository) *Directory {
	return &Directory{repo: repo, byName: make(map[string]models.Courier)}
}

// Get returns the courier row for name, creating it (active, with the given channel) if absent.
func (d *Directory) Get(ctx context.Context, name string, channel models.ChannelType) (*models.Courier, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return nil, errs.Validationf("courier directory", "courier name is required")
	}

	d.mu.RLock()
	c, ok := d.byName[name]
	d.mu.RUnlock()
	if ok {
		return &c, nil
	}

	got, err := d.repo.GetOrCreateCourier(ctx, name, channel)
	if err != nil {
		return nil, err
	}

	d.mu.Lock()
	d.byName[name] = *got
	d.mu.Unlock()

	cp := *got
	return &cp, nil
}

// Internal returns the in-house delivery team's courier row.
func (d *Directory) Internal(ctx context.Context) (*models.Courier, error) {
	return d.Get(ctx, models.InternalCourierName, models.ChannelInternal)
}
