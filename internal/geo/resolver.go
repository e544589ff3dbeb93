// Package geo maps a shipping address onto a vendor's city → zone → area identifiers.
package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/BearBump/DispatchBox/internal/cache"
	"github.com/BearBump/DispatchBox/internal/errs"
	"github.com/BearBump/DispatchBox/internal/integrations/courier"
	"github.com/BearBump/DispatchBox/internal/models"
)

type Policy string

const (
	// PolicyFirst берёт зону магазина по умолчанию (если задана) либо первую в списке,
	// и первый район зоны. Адрес не используется.
	PolicyFirst Policy = "first"
	// PolicyNameMatch ищет название зоны/района в адресе доставки, иначе как PolicyFirst.
	PolicyNameMatch Policy = "name_match"
)

type Config struct {
	Policy        Policy
	DefaultCityID int64
	DefaultZoneID int64
	CacheTTL      time.Duration
}

type Resolver struct {
	cfg   Config
	cache cache.BytesCache
}

func NewResolver(cfg Config, c cache.BytesCache) *Resolver {
	if cfg.Policy != PolicyNameMatch {
		cfg.Policy = PolicyFirst
	}
	if cfg.DefaultCityID <= 0 {
		cfg.DefaultCityID = 1
	}
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = 24 * time.Hour
	}
	return &Resolver{cfg: cfg, cache: c}
}

func (r *Resolver) Policy() Policy { return r.cfg.Policy }

// Resolve returns the location ids for addr. vendor only scopes the cache keys.
func (r *Resolver) Resolve(ctx context.Context, vendor string, src courier.LocationSource, addr models.ShippingAddress) (courier.Location, error) {
	const op = "geo resolve"
	loc := courier.Location{CityID: r.cfg.DefaultCityID}
	hay := haystack(addr)

	zoneID := r.cfg.DefaultZoneID
	if zoneID <= 0 || r.cfg.Policy == PolicyNameMatch {
		zones, err := r.places(ctx, vendor, "zones", loc.CityID, src.Zones)
		if err != nil {
			return courier.Location{}, err
		}
		if len(zones) == 0 {
			return courier.Location{}, errs.Validationf(op, "no zones for city %d", loc.CityID)
		}
		zoneID = r.pick(zones, hay, r.cfg.DefaultZoneID)
	}
	loc.ZoneID = zoneID

	areas, err := r.places(ctx, vendor, "areas", zoneID, src.Areas)
	if err != nil {
		return courier.Location{}, err
	}
	if len(areas) == 0 {
		return courier.Location{}, errs.Validationf(op, "no areas for zone %d", zoneID)
	}
	loc.AreaID = r.pick(areas, hay, 0)

	slog.Debug("location resolved", "vendor", vendor, "policy", string(r.cfg.Policy),
		"city_id", loc.CityID, "zone_id", loc.ZoneID, "area_id", loc.AreaID)
	return loc, nil
}

func (r *Resolver) pick(list []courier.Place, hay string, fallback int64) int64 {
	if r.cfg.Policy == PolicyNameMatch {
		best, bestLen := int64(0), 0
		for _, p := range list {
			name := strings.ToLower(strings.TrimSpace(p.Name))
			// самое длинное совпадение: "Dhanmondi 27" важнее "Dhanmondi"
			if name != "" && strings.Contains(hay, name) && len(name) > bestLen {
				best, bestLen = p.ID, len(name)
			}
		}
		if best != 0 {
			return best
		}
	}
	if fallback > 0 {
		for _, p := range list {
			if p.ID == fallback {
				return fallback
			}
		}
	}
	return list[0].ID
}

func (r *Resolver) places(ctx context.Context, vendor, kind string, parentID int64,
	fetch func(context.Context, int64) ([]courier.Place, error)) ([]courier.Place, error) {
	key := fmt.Sprintf("geo:%s:%s:%d", vendor, kind, parentID)

	if r.cache != nil {
		b, ok, err := r.cache.Get(ctx, key)
		if err != nil {
			slog.Warn("location cache get failed", "key", key, "error", err.Error())
		} else if ok {
			var cached []courier.Place
			if json.Unmarshal(b, &cached) == nil && len(cached) > 0 {
				return cached, nil
			}
		}
	}

	list, err := fetch(ctx, parentID)
	if err != nil {
		return nil, err
	}

	if r.cache != nil && len(list) > 0 {
		if b, err := json.Marshal(list); err == nil {
			if err := r.cache.Set(ctx, key, b, r.cfg.CacheTTL); err != nil {
				slog.Warn("location cache set failed", "key", key, "error", err.Error())
			}
		}
	}
	return list, nil
}

func haystack(a models.ShippingAddress) string {
	return strings.ToLower(strings.Join([]string{a.Area, a.City, a.Address, a.Landmark}, " "))
}
