package form

import (
	"fmt"
	"strconv"
	"time"
)

// Format controls how values are rendered into and parsed from text fields.
// It is passed explicitly to the binder; nothing here reads process locale.
type Format struct {
	DateLayout string
	Decimals   int
	Location   *time.Location
}

// DefaultFormat renders dates as dd/MM/yyyy and money with two decimals.
func DefaultFormat() Format {
	return Format{
		DateLayout: "02/01/2006",
		Decimals:   2,
		Location:   time.Local,
	}
}

func (f Format) location() *time.Location {
	if f.Location == nil {
		return time.Local
	}
	return f.Location
}

func (f Format) layout() string {
	if f.DateLayout == "" {
		return DefaultFormat().DateLayout
	}
	return f.DateLayout
}

// Display renders v for a field of the given kind. Nil renders as "".
func (f Format) Display(kind Kind, v any) string {
	if v == nil {
		return ""
	}
	switch kind {
	case KindInteger:
		if n, ok := v.(int); ok {
			return strconv.Itoa(n)
		}
	case KindDecimal:
		if x, ok := v.(float64); ok {
			// 'f' formatting always uses '.' as the separator.
			return strconv.FormatFloat(x, 'f', f.Decimals, 64)
		}
	case KindDate:
		if t, ok := v.(time.Time); ok {
			return t.In(f.location()).Format(f.layout())
		}
	case KindText:
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// Parse coerces raw text into the kind's Go type: int, float64, time.Time or
// string. ok is false when the text cannot be coerced.
func (f Format) Parse(kind Kind, raw string) (any, bool) {
	switch kind {
	case KindInteger:
		n, err := strconv.Atoi(raw)
		if err != nil {
			return nil, false
		}
		return n, true
	case KindDecimal:
		x, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, false
		}
		return x, true
	case KindDate:
		t, err := time.ParseInLocation(f.layout(), raw, f.location())
		if err != nil {
			return nil, false
		}
		return t, true
	case KindText:
		return raw, true
	}
	return nil, false
}

// DateInputLen is the longest date a date field accepts as typed input.
const DateInputLen = 10

// widestDate renders with two-digit day and month in every layout.
var widestDate = time.Date(2001, time.December, 23, 0, 0, 0, 0, time.UTC)

// CheckTypable fails when dates shown with this layout could not be typed
// back into a date field: only digits and '/' within DateInputLen runes.
func (f Format) CheckTypable() error {
	shown := widestDate.Format(f.layout())
	if !dateInput.MatchString(shown) || len(shown) > DateInputLen {
		return fmt.Errorf("date layout %q renders %q; date fields only accept up to %d digits and '/'", f.layout(), shown, DateInputLen)
	}
	return nil
}
