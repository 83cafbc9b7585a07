package timex

import (
	"fmt"
	"strings"
	"time"
)

// dateTimeLayouts lists the timestamp formats the backend emits. FastAPI
// serializes naive UTC datetimes without a zone offset, which the stock
// time.Time JSON decoder rejects, so both forms are tried.
var dateTimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
}

// DateTime is a timestamp that tolerates both RFC 3339 and the backend's
// zone-less format on the wire.
type DateTime struct {
	time.Time
}

func (d DateTime) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(time.RFC3339Nano) + `"`), nil
}

func (d *DateTime) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "null" || s == "" {
		return nil
	}
	for _, layout := range dateTimeLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			d.Time = t
			return nil
		}
	}
	return fmt.Errorf("unsupported timestamp format: %q", s)
}
