package timex

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the wire format the backend uses for calendar dates
// (e.g. a child's date of birth).
const DateLayout = "2006-01-02"

// Date is a calendar date without a time component. On the wire it is a JSON
// string in DateLayout format; a JSON null leaves the value untouched so it
// composes with pointer fields.
type Date struct {
	time.Time
}

// ParseDate parses a yyyy-mm-dd string into a Date.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("parsing date: %w", err)
	}
	return Date{Time: t}, nil
}

func (d Date) String() string {
	return d.Format(DateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(DateLayout) + `"`), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "null" || s == "" {
		return nil
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}
