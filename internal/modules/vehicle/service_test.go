package vehicle

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeSource struct {
	vehicle    *Vehicle
	vehicleErr error
	tiers      []PricingTier
	pricingErr error
	charges    []Charges
	types      []Type
	typesErr   error
	delay      time.Duration
	inFlight   atomic.Int32
	maxFlight  atomic.Int32
}

func (f *fakeSource) enter() func() {
	n := f.inFlight.Add(1)
	for {
		m := f.maxFlight.Load()
		if n <= m || f.maxFlight.CompareAndSwap(m, n) {
			break
		}
	}
	time.Sleep(f.delay)
	return func() { f.inFlight.Add(-1) }
}

func (f *fakeSource) Vehicle(context.Context, string) (*Vehicle, error) {
	defer f.enter()()
	return f.vehicle, f.vehicleErr
}

func (f *fakeSource) Pricing(context.Context, string) ([]PricingTier, error) {
	defer f.enter()()
	return f.tiers, f.pricingErr
}

func (f *fakeSource) Charges(context.Context, string) ([]Charges, error) {
	defer f.enter()()
	return f.charges, nil
}

func (f *fakeSource) Types(context.Context) ([]Type, error) {
	return f.types, f.typesErr
}

func TestLoad_FirstRecordOfEachList(t *testing.T) {
	src := &fakeSource{
		vehicle: &Vehicle{VehicleID: 3, Name: "Urbania", Capacity: 17},
		tiers:   []PricingTier{{PricingID: 10, RatePerKm: 32}, {PricingID: 11, RatePerKm: 40}},
		charges: []Charges{{ChargeID: 7, DriverAllowance: 600, NightCharge: 350}},
		delay:   20 * time.Millisecond,
	}
	svc := NewService(src, zap.NewNop())

	d, err := svc.Load(context.Background(), "3")

	require.NoError(t, err)
	assert.Equal(t, "Urbania", d.Vehicle.Name)
	require.NotNil(t, d.Pricing)
	assert.Equal(t, 10, d.Pricing.PricingID)
	require.NotNil(t, d.Charges)
	assert.Equal(t, 7, d.Charges.ChargeID)
	assert.Empty(t, d.Warning)
	assert.Equal(t, int32(3), src.maxFlight.Load(), "reads should overlap")
}

func TestLoad_Warnings(t *testing.T) {
	tests := []struct {
		name        string
		src         *fakeSource
		wantWarning string
		wantVehicle bool
	}{
		{
			name:        "no pricing tiers",
			src:         &fakeSource{vehicle: &Vehicle{VehicleID: 1}},
			wantWarning: WarnPricingMissing,
			wantVehicle: true,
		},
		{
			name:        "transport failure",
			src:         &fakeSource{vehicle: &Vehicle{VehicleID: 1}, pricingErr: errors.New("connection refused")},
			wantWarning: WarnLoadFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := NewService(tt.src, zap.NewNop()).Load(context.Background(), "1")
			require.NoError(t, err)
			assert.Equal(t, tt.wantWarning, d.Warning)
			assert.Nil(t, d.Pricing)
			assert.Equal(t, tt.wantVehicle, d.Vehicle != nil)
		})
	}
}

func TestLoad_UnknownVehicleFallsBack(t *testing.T) {
	svc := NewService(&fakeSource{vehicleErr: ErrNotFound}, zap.NewNop())
	d, err := svc.Load(context.Background(), "99")

	require.NoError(t, err)
	assert.Equal(t, WarnLoadFailed, d.Warning)
	assert.Nil(t, d.Vehicle)
	assert.Nil(t, d.Pricing)
}

func TestLoad_NoSelection(t *testing.T) {
	d, err := NewService(&fakeSource{}, zap.NewNop()).Load(context.Background(), "  ")
	require.NoError(t, err)
	assert.Equal(t, Details{}, d)
}

func TestTypes_FallsBackToDefaults(t *testing.T) {
	assert.Equal(t, DefaultTypes, NewService(&fakeSource{typesErr: errors.New("down")}, zap.NewNop()).Types(context.Background()))
	assert.Equal(t, DefaultTypes, NewService(&fakeSource{}, zap.NewNop()).Types(context.Background()))

	listed := []Type{{ID: "4", Name: "Tempo Traveller", Capacity: 12}}
	assert.Equal(t, listed, NewService(&fakeSource{types: listed}, zap.NewNop()).Types(context.Background()))
}
