// README: Vehicle store reading the backend's PostgreSQL tables directly.
package vehicle

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"sairaj/internal/types"
)

type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

func parseID(id string) (int, error) {
	n, err := strconv.Atoi(id)
	if err != nil {
		return 0, ErrNotFound
	}
	return n, nil
}

func (s *Store) Vehicle(ctx context.Context, id string) (*Vehicle, error) {
	vid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	row := s.db.QueryRow(ctx, `
		SELECT "VehicleId", "Name", COALESCE("Type", ''), COALESCE("Capacity", 0),
		       COALESCE("IsAC", false), COALESCE("Description", '')
		FROM "Vehicles"
		WHERE "VehicleId" = $1`, vid,
	)

	var v Vehicle
	err = row.Scan(&v.VehicleID, &v.Name, &v.Type, &v.Capacity, &v.IsAC, &v.Description)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scanning vehicle %d: %w", vid, err)
	}
	return &v, nil
}

func (s *Store) Pricing(ctx context.Context, id string) ([]PricingTier, error) {
	vid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	rows, err := s.db.Query(ctx, `
		SELECT "PricingId", "VehicleId", COALESCE("RateType", ''),
		       COALESCE("RatePerKm", 0)::float8, COALESCE("MinKmPerDay", 0)::float8,
		       COALESCE("PackageHours", 0)::float8, COALESCE("PackageKm", 0)::float8,
		       COALESCE("PackageRate", 0)::float8, COALESCE("ExtraKmRate", 0)::float8,
		       COALESCE("ExtraHourRate", 0)::float8
		FROM "VehiclePricing"
		WHERE "VehicleId" = $1
		ORDER BY "PricingId"`, vid,
	)
	if err != nil {
		return nil, fmt.Errorf("querying pricing for vehicle %d: %w", vid, err)
	}
	defer rows.Close()

	var tiers []PricingTier
	for rows.Next() {
		var t PricingTier
		var rate, minKm, pkgHours, pkgKm, pkgRate, extraKm, extraHour float64
		if err := rows.Scan(&t.PricingID, &t.VehicleID, &t.RateType,
			&rate, &minKm, &pkgHours, &pkgKm, &pkgRate, &extraKm, &extraHour); err != nil {
			return nil, fmt.Errorf("scanning pricing row: %w", err)
		}
		t.RatePerKm = types.Amount(rate)
		t.MinKmPerDay = types.Amount(minKm)
		t.PackageHours = types.Amount(pkgHours)
		t.PackageKm = types.Amount(pkgKm)
		t.PackageRate = types.Amount(pkgRate)
		t.ExtraKmRate = types.Amount(extraKm)
		t.ExtraHourRate = types.Amount(extraHour)
		tiers = append(tiers, t)
	}
	return tiers, rows.Err()
}

func (s *Store) Charges(ctx context.Context, id string) ([]Charges, error) {
	vid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	rows, err := s.db.Query(ctx, `
		SELECT "ChargeId", "VehicleId",
		       COALESCE("DriverAllowance", 0)::float8, COALESCE("NightCharge", 0)::float8,
		       COALESCE("FuelIncluded", false), COALESCE("TollIncluded", false),
		       COALESCE("ParkingIncluded", false)
		FROM "VehicleCharges"
		WHERE "VehicleId" = $1
		ORDER BY "ChargeId"`, vid,
	)
	if err != nil {
		return nil, fmt.Errorf("querying charges for vehicle %d: %w", vid, err)
	}
	defer rows.Close()

	var out []Charges
	for rows.Next() {
		var c Charges
		var driver, night float64
		if err := rows.Scan(&c.ChargeID, &c.VehicleID, &driver, &night,
			&c.FuelIncluded, &c.TollIncluded, &c.ParkingIncluded); err != nil {
			return nil, fmt.Errorf("scanning charges row: %w", err)
		}
		c.DriverAllowance = types.Amount(driver)
		c.NightCharge = types.Amount(night)
		out = append(out, c)
	}
	return out, rows.Err()
}

func (s *Store) Types(ctx context.Context) ([]Type, error) {
	rows, err := s.db.Query(ctx, `
		SELECT "VehicleId"::text, "Name", COALESCE("Capacity", 0), COALESCE("Type", ''), COALESCE("IsAC", false)
		FROM "Vehicles"
		ORDER BY "VehicleId"`)
	if err != nil {
		return nil, fmt.Errorf("querying vehicles: %w", err)
	}
	defer rows.Close()

	var out []Type
	for rows.Next() {
		var t Type
		if err := rows.Scan(&t.ID, &t.Name, &t.Capacity, &t.Type, &t.IsAC); err != nil {
			return nil, fmt.Errorf("scanning vehicle type: %w", err)
		}
		out = append(out, t)
	}
	return out, rows.Err()
}
