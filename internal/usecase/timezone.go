package usecase

import (
	"time"
)

// Naive timestamp layouts accepted from clients. Values without an offset are
// taken as wall-clock time in the reference zone, never reinterpreted.
var naiveLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
}

// Normalizer converts timestamps into the reference civil zone all
// business-hour rules are evaluated against. The zone is injected from config
// so tests can substitute alternates.
type Normalizer struct {
	loc *time.Location
}

func NewNormalizer(loc *time.Location) *Normalizer {
	return &Normalizer{loc: loc}
}

// Location returns the reference zone.
func (n *Normalizer) Location() *time.Location {
	return n.loc
}

// Normalize converts an instant to the reference zone. Total function, applied
// symmetrically to submitted times and to times read back from storage so
// comparisons are always apples-to-apples.
func (n *Normalizer) Normalize(t time.Time) time.Time {
	return t.In(n.loc)
}

// ParseTime parses a client timestamp. Offset-carrying RFC3339 values are
// converted to the reference zone; zone-naive values are attached to it.
func (n *Normalizer) ParseTime(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.In(n.loc), nil
	}

	var lastErr error
	for _, layout := range naiveLayouts {
		t, err := time.ParseInLocation(layout, s, n.loc)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

// StartOfDay returns local midnight of the day containing t, in the reference zone.
func (n *Normalizer) StartOfDay(t time.Time) time.Time {
	local := t.In(n.loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, n.loc)
}

// CombineDateTime builds an instant on date's calendar day at hh:mm in the
// reference zone.
func (n *Normalizer) CombineDateTime(date time.Time, hour, minute int) time.Time {
	local := date.In(n.loc)
	return time.Date(local.Year(), local.Month(), local.Day(), hour, minute, 0, 0, n.loc)
}
