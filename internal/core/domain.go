package core

import (
	"errors"
	"fmt"
	"time"
)

type (
	// Date is a calendar date with day precision. Any finer-grained
	// timestamp is truncated to its day before it enters the dataset.
	Date struct {
		time.Time
	}

	// Money is a signed amount in cents. Positive is income, negative is
	// expense; zero is valid and belongs to neither aggregate.
	Money struct {
		Cents int64
	}

	// Transaction is one row of financial activity. A row whose amount
	// could not be parsed is kept with AmountMissing set and is excluded
	// from every sum; a row whose date could not be parsed never makes it
	// into the dataset at all.
	Transaction struct {
		Date          Date
		Amount        Money
		AmountMissing bool
		Category      string
	}

	// Month identifies a calendar month.
	Month struct {
		Year  int
		Month time.Month
	}

	// CategoryAmount is an amount aggregated by category name.
	CategoryAmount struct {
		Name   string
		Amount Money
	}
)

var (
	ErrInvalidAmount = errors.New("invalid amount")
	ErrEmptyDataset  = errors.New("no valid transactions in dataset")
)

// NewDate creates a Date from year, month, day in UTC.
func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf truncates t to day precision.
func DateOf(t time.Time) Date {
	return NewDate(t.Year(), t.Month(), t.Day())
}

// MonthOf returns the calendar month d falls in.
func (d Date) MonthOf() Month {
	return Month{Year: d.Year(), Month: d.Time.Month()}
}

func (d Date) String() string {
	return d.Format("2006-01-02")
}

// Units returns the amount as a float64 for display purposes.
// Use cents for calculations to avoid floating-point precision issues.
func (m Money) Units() float64 {
	return float64(m.Cents) / 100.0
}

func (m Month) String() string {
	return fmt.Sprintf("%04d-%02d", m.Year, int(m.Month))
}

// Before reports whether m is chronologically before other.
func (m Month) Before(other Month) bool {
	if m.Year != other.Year {
		return m.Year < other.Year
	}
	return m.Month < other.Month
}
