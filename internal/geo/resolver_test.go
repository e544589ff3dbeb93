package geo

import (
	"context"
	"errors"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"

	"github.com/BearBump/DispatchBox/internal/cache/rediscache"
	"github.com/BearBump/DispatchBox/internal/errs"
	"github.com/BearBump/DispatchBox/internal/integrations/courier"
	"github.com/BearBump/DispatchBox/internal/models"
)

type stubSource struct {
	zones     map[int64][]courier.Place
	areas     map[int64][]courier.Place
	zoneCalls int
	areaCalls int
	err       error
}

func (s *stubSource) Cities(context.Context) ([]courier.Place, error) { return nil, nil }

func (s *stubSource) Zones(_ context.Context, cityID int64) ([]courier.Place, error) {
	s.zoneCalls++
	return s.zones[cityID], s.err
}

func (s *stubSource) Areas(_ context.Context, zoneID int64) ([]courier.Place, error) {
	s.areaCalls++
	return s.areas[zoneID], s.err
}

func newSource() *stubSource {
	return &stubSource{
		zones: map[int64][]courier.Place{
			1: {{ID: 10, Name: "Gulshan"}, {ID: 20, Name: "Dhanmondi"}, {ID: 30, Name: "Banani"}},
		},
		areas: map[int64][]courier.Place{
			10: {{ID: 101, Name: "Gulshan 1"}, {ID: 102, Name: "Gulshan 2"}},
			20: {{ID: 201, Name: "Road 27"}, {ID: 202, Name: "Jigatola"}},
			30: {{ID: 301, Name: "Block C"}},
		},
	}
}

var addr = models.ShippingAddress{Address: "House 5, Road 27", Area: "Dhanmondi", City: "Dhaka"}

func TestResolve_FirstPolicyIgnoresAddress(t *testing.T) {
	src := newSource()
	r := NewResolver(Config{DefaultCityID: 1}, nil)

	loc, err := r.Resolve(context.Background(), "pathao", src, addr)
	require.NoError(t, err)
	require.Equal(t, courier.Location{CityID: 1, ZoneID: 10, AreaID: 101}, loc)
	require.Equal(t, PolicyFirst, r.Policy())
}

func TestResolve_FirstPolicyUsesStoreDefaultZone(t *testing.T) {
	src := newSource()
	r := NewResolver(Config{Policy: PolicyFirst, DefaultCityID: 1, DefaultZoneID: 30}, nil)

	loc, err := r.Resolve(context.Background(), "pathao", src, addr)
	require.NoError(t, err)
	require.Equal(t, courier.Location{CityID: 1, ZoneID: 30, AreaID: 301}, loc)
	require.Equal(t, 0, src.zoneCalls)
}

func TestResolve_NameMatch(t *testing.T) {
	src := newSource()
	r := NewResolver(Config{Policy: PolicyNameMatch, DefaultCityID: 1}, nil)

	loc, err := r.Resolve(context.Background(), "pathao", src, addr)
	require.NoError(t, err)
	require.Equal(t, courier.Location{CityID: 1, ZoneID: 20, AreaID: 201}, loc)
}

func TestResolve_NameMatchFallsBack(t *testing.T) {
	src := newSource()
	r := NewResolver(Config{Policy: PolicyNameMatch, DefaultCityID: 1, DefaultZoneID: 30}, nil)

	loc, err := r.Resolve(context.Background(), "pathao", src, models.ShippingAddress{Address: "somewhere else"})
	require.NoError(t, err)
	require.Equal(t, int64(30), loc.ZoneID)
	require.Equal(t, int64(301), loc.AreaID)
}

func TestResolve_EmptyListsAreValidationErrors(t *testing.T) {
	src := &stubSource{}
	r := NewResolver(Config{DefaultCityID: 1}, nil)
	_, err := r.Resolve(context.Background(), "pathao", src, addr)
	require.ErrorIs(t, err, errs.Validation)

	src = &stubSource{zones: map[int64][]courier.Place{1: {{ID: 10, Name: "Gulshan"}}}}
	_, err = r.Resolve(context.Background(), "pathao", src, addr)
	require.ErrorIs(t, err, errs.Validation)
}

func TestResolve_VendorErrorPropagates(t *testing.T) {
	src := &stubSource{err: errs.External("zones", errors.New("down"), true)}
	r := NewResolver(Config{DefaultCityID: 1}, nil)
	_, err := r.Resolve(context.Background(), "pathao", src, addr)
	require.ErrorIs(t, err, errs.ExternalService)
}

func TestResolve_CachesLists(t *testing.T) {
	mr := miniredis.RunT(t)
	src := newSource()
	r := NewResolver(Config{DefaultCityID: 1, CacheTTL: time.Minute}, rediscache.New(mr.Addr()))

	for i := 0; i < 3; i++ {
		_, err := r.Resolve(context.Background(), "pathao", src, addr)
		require.NoError(t, err)
	}
	require.Equal(t, 1, src.zoneCalls)
	require.Equal(t, 1, src.areaCalls)
	require.True(t, mr.Exists("geo:pathao:zones:1"))

	mr.FastForward(2 * time.Minute)
	_, err := r.Resolve(context.Background(), "pathao", src, addr)
	require.NoError(t, err)
	require.Equal(t, 2, src.zoneCalls)
}
