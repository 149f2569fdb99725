package model

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// DateOnly is a calendar date without a time component. It maps to a DATE
// column and round-trips JSON as "YYYY-MM-DD".
type DateOnly struct {
	time.Time
}

func NewDateOnly(year int, month time.Month, day int) DateOnly {
	return DateOnly{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func ParseDateOnly(value string) (DateOnly, error) {
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return DateOnly{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", value)
	}
	return DateOnly{t}, nil
}

func (d DateOnly) String() string {
	return d.Format(dateLayout)
}

func (d DateOnly) Equal(other DateOnly) bool {
	return d.Format(dateLayout) == other.Format(dateLayout)
}

func (d DateOnly) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(dateLayout) + `"`), nil
}

func (d *DateOnly) UnmarshalJSON(data []byte) error {
	value := strings.Trim(string(data), `"`)
	if value == "" || value == "null" {
		return nil
	}
	parsed, err := ParseDateOnly(value)
	if err != nil {
		return err
	}
	d.Time = parsed.Time
	return nil
}

func (d DateOnly) Value() (driver.Value, error) {
	return d.Format(dateLayout), nil
}

func (d *DateOnly) Scan(value any) error {
	switch v := value.(type) {
	case nil:
		return nil
	case time.Time:
		// Drop any time component the driver attached
		d.Time = time.Date(v.Year(), v.Month(), v.Day(), 0, 0, 0, 0, time.UTC)
		return nil
	case []byte:
		return d.scanString(string(v))
	case string:
		return d.scanString(v)
	}
	return fmt.Errorf("cannot scan %T into DateOnly", value)
}

func (d *DateOnly) scanString(value string) error {
	if len(value) > len(dateLayout) {
		value = value[:len(dateLayout)]
	}
	parsed, err := ParseDateOnly(value)
	if err != nil {
		return err
	}
	d.Time = parsed.Time
	return nil
}

// GormDataType makes AutoMigrate create a DATE column.
func (DateOnly) GormDataType() string {
	return "date"
}
