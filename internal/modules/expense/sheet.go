package expense

import (
	"fmt"
	"strings"

	"sairaj/internal/types"
)

// Total sums the fixed fields, counting negatives as 0, and adds each custom
// amount only when it is positive.
func (s Sheet) Total() types.Amount {
	var total types.Amount
	for _, f := range fields {
		total += f.ptr(&s).NonNegative()
	}
	for _, c := range []Custom{s.Custom1, s.Custom2} {
		if c.Amount > 0 {
			total += c.Amount
		}
	}
	return total
}

// Items lists every fixed field in display order, followed by the custom
// lines that have both a name and a positive amount.
func (s Sheet) Items() []Item {
	items := make([]Item, 0, len(fields)+2)
	for _, f := range fields {
		items = append(items, Item{Key: f.key, Label: f.label, Amount: f.ptr(&s).NonNegative()})
	}
	for i, c := range []Custom{s.Custom1, s.Custom2} {
		name := strings.TrimSpace(c.Name)
		if name == "" || c.Amount <= 0 {
			continue
		}
		items = append(items, Item{Key: fmt.Sprintf("customExpense%d", i+1), Label: name, Amount: c.Amount})
	}
	return items
}

// NonZero is Items without the zero rows.
func (s Sheet) NonZero() []Item {
	var out []Item
	for _, it := range s.Items() {
		if it.Amount > 0 {
			out = append(out, it)
		}
	}
	return out
}

// Set applies a raw form value. Amount fields are coerced with
// types.ParseAmount; customExpenseNName fields keep the text.
func (s Sheet) Set(key, raw string) (Sheet, error) {
	switch key {
	case "customExpense1Name":
		s.Custom1.Name = raw
		return s, nil
	case "customExpense2Name":
		s.Custom2.Name = raw
		return s, nil
	case "customExpense1Amount":
		s.Custom1.Amount = types.ParseAmount(raw)
		return s, nil
	case "customExpense2Amount":
		s.Custom2.Amount = types.ParseAmount(raw)
		return s, nil
	}
	for _, f := range fields {
		if f.key == key {
			*f.ptr(&s) = types.ParseAmount(raw)
			return s, nil
		}
	}
	return s, fmt.Errorf("%w: %q", ErrUnknownField, key)
}
