// Package addressbook provides Book, the in-memory collection of contact
// records keyed by name, and the upcoming-birthdays query built on it.
//
// A Book remembers insertion order. Listing and the birthday query both walk
// records in that order, so results are stable between calls. The Book is
// not safe for concurrent use; it is owned by the single loop that reads
// commands.
package addressbook
