package addressbook

import (
	"slices"
	"strings"
	"time"

	"github.com/vk/contactbook/internal/contact"
)

// Book is an insertion-ordered mapping from contact name to record.
type Book struct {
	index map[string]*contact.Record
	order []string
	now   func() time.Time
}

// Option configures a Book.
type Option func(*Book)

// WithClock replaces time.Now as the source of "today" for UpcomingBirthdays.
func WithClock(now func() time.Time) Option {
	return func(b *Book) {
		if now != nil {
			b.now = now
		}
	}
}

// New creates an empty Book.
func New(opts ...Option) *Book {
	b := &Book{
		index: make(map[string]*contact.Record),
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// AddRecord stores record under its name, replacing any record already stored
// under that name. A replaced record keeps its original position.
func (b *Book) AddRecord(record *contact.Record) {
	name := record.Name()
	if _, exists := b.index[name]; !exists {
		b.order = append(b.order, name)
	}
	b.index[name] = record
}

// Find returns the record stored under name.
func (b *Book) Find(name string) (*contact.Record, bool) {
	record, ok := b.index[name]
	return record, ok
}

// Delete removes the record stored under name. Unknown names are ignored.
func (b *Book) Delete(name string) {
	if _, ok := b.index[name]; !ok {
		return
	}
	delete(b.index, name)
	b.order = slices.DeleteFunc(b.order, func(n string) bool { return n == name })
}

// AddBirthday sets the birthday of the contact stored under name.
func (b *Book) AddBirthday(name, value string) error {
	record, ok := b.Find(name)
	if !ok {
		return &contact.NotFoundError{Kind: "Contact", Key: name}
	}
	return record.AddBirthday(value)
}

// Len returns the number of records.
func (b *Book) Len() int {
	return len(b.order)
}

// Records returns the records in insertion order. The slice is a copy; the
// records are shared.
func (b *Book) Records() []*contact.Record {
	out := make([]*contact.Record, 0, len(b.order))
	for _, name := range b.order {
		out = append(out, b.index[name])
	}
	return out
}

// String renders every record on its own line.
func (b *Book) String() string {
	lines := make([]string, 0, len(b.order))
	for _, record := range b.Records() {
		lines = append(lines, record.String())
	}
	return strings.Join(lines, "\n")
}
