package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// Timeslot is one pickup window on a meal, times as "HH:MM".
type Timeslot struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// Validate checks the "HH:MM" format and that start strictly precedes end.
func (t Timeslot) Validate() error {
	start, err := time.Parse("15:04", t.Start)
	if err != nil {
		return fmt.Errorf("invalid time format in timeslot: %s", t.Start)
	}
	end, err := time.Parse("15:04", t.End)
	if err != nil {
		return fmt.Errorf("invalid time format in timeslot: %s", t.End)
	}
	if !start.Before(end) {
		return fmt.Errorf("start time must be before end time in timeslot: %s, %s", t.Start, t.End)
	}
	return nil
}

// Timeslots is stored as a JSON column.
type Timeslots []Timeslot

func (ts Timeslots) Value() (driver.Value, error) {
	if ts == nil {
		ts = Timeslots{}
	}
	return json.Marshal(ts)
}

func (ts *Timeslots) Scan(value any) error {
	if value == nil {
		*ts = Timeslots{}
		return nil
	}
	var raw []byte
	switch v := value.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return errors.New("unsupported type for timeslots column")
	}
	return json.Unmarshal(raw, ts)
}

func (ts Timeslots) Validate() error {
	for _, t := range ts {
		if err := t.Validate(); err != nil {
			return err
		}
	}
	return nil
}
