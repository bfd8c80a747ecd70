// Copyright (c) 2026 Musicopedia. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package date provides a calendar-date type for API payloads.

Birth, death, formation, disband, join and leave dates are calendar days with
no time-of-day or zone. Domain entities keep them as [time.Time] at UTC
midnight; request and response DTOs use [Date], which reads and writes the
"2006-01-02" layout.
*/
package date

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// Layout is the wire format of a [Date].
const Layout = time.DateOnly

// Date is a calendar day encoded as "YYYY-MM-DD" in JSON.
type Date struct {
	time.Time
}

// Of truncates t to its calendar day at UTC midnight.
func Of(t time.Time) Date {
	year, month, day := t.Date()
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// New builds a [Date] from its components.
func New(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// Parse reads a "YYYY-MM-DD" string.
func Parse(s string) (Date, error) {
	parsed, err := time.Parse(Layout, s)
	if err != nil {
		return Date{}, fmt.Errorf("date: %q is not a YYYY-MM-DD date", s)
	}
	return Date{Time: parsed}, nil
}

// String implements [fmt.Stringer].
func (d Date) String() string {
	return d.Format(Layout)
}

// MarshalJSON implements [json.Marshaler].
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON implements [json.Unmarshaler]. JSON null leaves d unchanged.
func (d *Date) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		return nil
	}

	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("date: expected a string: %w", err)
	}

	parsed, err := Parse(raw)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// # Pointer Helpers

// FromTime converts an optional domain date into an optional [Date].
func FromTime(t *time.Time) *Date {
	if t == nil {
		return nil
	}
	d := Of(*t)
	return &d
}

// ToTime converts an optional [Date] into an optional domain date.
func ToTime(d *Date) *time.Time {
	if d == nil {
		return nil
	}
	t := Of(d.Time).Time
	return &t
}
