package trip

import (
	"sairaj/internal/modules/expense"
	"sairaj/internal/modules/pricing"
	"sairaj/internal/types"
)

func cloneEndpoint(e *types.Endpoint) *types.Endpoint {
	if e == nil {
		return nil
	}
	c := *e
	return &c
}

// WithStart replaces the origin wholesale.
func (s State) WithStart(e *types.Endpoint) State {
	s.Start = cloneEndpoint(e)
	return s
}

func (s State) WithEnd(e *types.Endpoint) State {
	s.End = cloneEndpoint(e)
	return s
}

func (s State) WithEndpoints(start, end *types.Endpoint) State {
	return s.WithStart(start).WithEnd(end)
}

// SelectVehicle records a new vehicle choice and returns the generation
// that responses for it must carry.
func (s State) SelectVehicle(id string) (State, uint64) {
	s.Details.VehicleID = id
	s.VehicleGeneration++
	return s, s.VehicleGeneration
}

// AcceptVehicleData reports whether data fetched for generation gen still
// belongs to the current selection.
func (s State) AcceptVehicleData(gen uint64) bool {
	return gen == s.VehicleGeneration
}

// WithDates sets the travel dates. Once both are present the night-stay
// toggle follows the night count.
func (s State) WithDates(departure, ret string) State {
	s.Details.DepartureDate = departure
	s.Details.ReturnDate = ret
	if nights, ok := pricing.Nights(departure, ret); ok {
		s.Toggles.IncludeNightStay = nights > 0
	}
	return s
}

func (s State) WithCustomer(c Customer) State {
	s.Details.CustomerName = c.Name
	s.Details.CustomerPhone = c.Phone
	s.Details.CustomerEmail = c.Email
	return s
}

func (s State) WithToggles(t Toggles) State {
	s.Toggles = t
	return s
}

func (s State) WithExpenses(sheet expense.Sheet) State {
	s.Expenses = sheet
	return s
}

// WithExpense applies one raw form value to the expense sheet.
func (s State) WithExpense(key, raw string) (State, error) {
	sheet, err := s.Expenses.Set(key, raw)
	if err != nil {
		return s, err
	}
	s.Expenses = sheet
	return s, nil
}

// Reset clears the form. The generation keeps counting so in-flight vehicle
// responses from before the reset are still rejected.
func (s State) Reset() State {
	return State{
		Details:           Details{Passengers: 1},
		VehicleGeneration: s.VehicleGeneration + 1,
	}
}

func (s State) Customer() Customer {
	return Customer{
		Name:  s.Details.CustomerName,
		Phone: s.Details.CustomerPhone,
		Email: s.Details.CustomerEmail,
	}
}

func (s State) HasEndpoints() bool {
	return s.Start != nil && s.End != nil
}
