// Package quote picks the quote of the day and remembers the pick for the
// rest of the local calendar day.
package quote

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/simukka/recital/common"
	"github.com/simukka/recital/content"
	"github.com/simukka/recital/storage"
)

// StorageKey is the single key the selection record lives under.
const StorageKey = "recital.dailyQuote"

// DateLayout formats a calendar day as YYYY-MM-DD.
const DateLayout = "2006-01-02"

// Record is the persisted selection for one day.
type Record struct {
	Date    string `json:"date"`
	QuoteID string `json:"quoteId"`
}

// Rendered is a quote resolved into one language.
type Rendered struct {
	ID     string
	Text   string
	Source string
}

// Pool is the quote set the selector draws from.
type Pool interface {
	Quotes() []content.Quote
}

// Selector resolves the quote of the day.
type Selector struct {
	pool  Pool
	store storage.Store
	rng   common.Source
	now   func() time.Time
	logf  func(format string, args ...interface{})
}

// Option configures a Selector.
type Option func(*Selector)

// WithClock replaces time.Now. The calendar day is taken in the location of
// the returned time.
func WithClock(now func() time.Time) Option {
	return func(s *Selector) { s.now = now }
}

// WithSource replaces the random source used for new draws.
func WithSource(src common.Source) Option {
	return func(s *Selector) { s.rng = src }
}

// WithLogf receives debug messages about swallowed storage failures.
func WithLogf(logf func(format string, args ...interface{})) Option {
	return func(s *Selector) { s.logf = logf }
}

// NewSelector creates a selector over pool, persisting to store.
func NewSelector(pool Pool, store storage.Store, opts ...Option) *Selector {
	s := &Selector{
		pool:  pool,
		store: store,
		now:   time.Now,
		logf:  func(string, ...interface{}) {},
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = common.NewClockRNG()
	}
	return s
}

// Day formats t as its calendar day in t's own location.
func Day(t time.Time) string {
	return t.Format(DateLayout)
}

// Today returns today's quote rendered in lang, with English fallback per
// field. The bool is false only when the quote set is empty, in which case
// text and source are empty.
func (s *Selector) Today(lang content.Lang) (Rendered, bool) {
	q, ok := s.Pick()
	if !ok {
		return Rendered{}, false
	}
	return Rendered{
		ID:     q.ID,
		Text:   q.Text.In(lang),
		Source: q.Source.In(lang),
	}, true
}

// Pick returns today's quote. It reuses the stored pick when the record is
// for today and otherwise draws a new quote and stores it. Storage failures
// never surface; they only cost the day's stability.
func (s *Selector) Pick() (content.Quote, bool) {
	quotes := s.pool.Quotes()
	if len(quotes) == 0 {
		return content.Quote{}, false
	}
	today := Day(s.now())

	id := ""
	if rec, ok := s.Record(); ok && rec.Date == today {
		id = rec.QuoteID
	} else {
		id = quotes[common.Intn(s.rng, len(quotes))].ID
		s.save(Record{Date: today, QuoteID: id})
	}

	for _, q := range quotes {
		if q.ID == id {
			return q, true
		}
	}
	// Stored id no longer exists in the content.
	return quotes[0], true
}

// Record returns the persisted record. Missing, unreadable and malformed
// records all report false.
func (s *Selector) Record() (Record, bool) {
	raw, err := s.store.Get(StorageKey)
	if err != nil {
		s.logf("quote: read %s: %v", StorageKey, err)
		return Record{}, false
	}
	var rec Record
	if err := json.Unmarshal([]byte(raw), &rec); err != nil {
		s.logf("quote: decode record: %v", err)
		return Record{}, false
	}
	if rec.Date == "" || rec.QuoteID == "" {
		s.logf("quote: incomplete record %q", raw)
		return Record{}, false
	}
	return rec, true
}

// Reset forgets the stored pick.
func (s *Selector) Reset() error {
	if err := s.store.Delete(StorageKey); err != nil {
		return fmt.Errorf("reset daily quote: %w", err)
	}
	return nil
}

func (s *Selector) save(rec Record) {
	data, err := json.Marshal(rec)
	if err != nil {
		s.logf("quote: encode record: %v", err)
		return
	}
	if err := s.store.Set(StorageKey, string(data)); err != nil {
		s.logf("quote: write %s: %v", StorageKey, err)
	}
}
