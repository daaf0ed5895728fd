package command

import (
	"context"
	"fmt"
	"strings"

	"github.com/vk/contactbook/internal/contact"
)

const msgContactNotFound = "Contact not found."

// Default returns a registry holding every built-in command.
func Default() *Registry {
	r := NewRegistry()
	for _, cmd := range builtins() {
		r.Register(cmd)
	}
	r.Register(&Command{
		Keyword: "help",
		Usage:   "help",
		Summary: "list the available commands",
		Run:     helpHandler(r),
	})
	return r
}

func builtins() []*Command {
	return []*Command{
		{Keyword: "hello", Usage: "hello", Summary: "greet the assistant", Run: hello},
		{Keyword: "add", Usage: "add <name> <phone>", Summary: "add a contact or a phone to an existing contact", Run: addContact},
		{Keyword: "change", Usage: "change <name> <old phone> <new phone>", Summary: "replace a phone number", Run: changePhone},
		{Keyword: "remove-phone", Usage: "remove-phone <name> <phone>", Summary: "remove a phone number", Run: removePhone},
		{Keyword: "phone", Usage: "phone <name>", Summary: "show the phones of a contact", Run: showPhone},
		{Keyword: "all", Usage: "all", Summary: "show every contact", Run: showAll},
		{Keyword: "delete", Usage: "delete <name>", Summary: "delete a contact", Run: deleteContact},
		{Keyword: "add-birthday", Usage: "add-birthday <name> <DD.MM.YYYY>", Summary: "set the birthday of a contact", Run: addBirthday},
		{Keyword: "show-birthday", Usage: "show-birthday <name>", Summary: "show the birthday of a contact", Run: showBirthday},
		{Keyword: "birthdays", Usage: "birthdays", Summary: "list birthdays in the lookahead window", Run: upcomingBirthdays},
		{Keyword: "close", Usage: "close", Summary: "leave the assistant", Run: goodbye, Quit: true},
		{Keyword: "exit", Usage: "exit", Summary: "leave the assistant", Run: goodbye, Quit: true},
	}
}

// requireArgs fails with ErrIncompleteInput when fewer than n arguments are given.
func requireArgs(args []string, n int) error {
	if len(args) < n {
		return fmt.Errorf("%w: want %d argument(s), got %d", ErrIncompleteInput, n, len(args))
	}
	return nil
}

func hello(context.Context, *Session, []string) (string, error) {
	return "How can I help you?", nil
}

func goodbye(context.Context, *Session, []string) (string, error) {
	return "Good bye!", nil
}

// addContact creates the contact when it is new. A rejected phone leaves the
// book untouched.
func addContact(_ context.Context, s *Session, args []string) (string, error) {
	if err := requireArgs(args, 2); err != nil {
		return "", err
	}
	name, phone := args[0], args[1]

	record, exists := s.Book.Find(name)
	if !exists {
		var err error
		if record, err = contact.NewRecord(name); err != nil {
			return "", err
		}
	}
	if err := record.AddPhone(phone); err != nil {
		return "", err
	}
	if exists {
		return "Contact updated.", nil
	}
	s.Book.AddRecord(record)
	return "Contact added.", nil
}

func changePhone(_ context.Context, s *Session, args []string) (string, error) {
	if err := requireArgs(args, 3); err != nil {
		return "", err
	}
	record, ok := s.Book.Find(args[0])
	if !ok {
		return msgContactNotFound, nil
	}
	if err := record.EditPhone(args[1], args[2]); err != nil {
		return "", err
	}
	return "Contact updated.", nil
}

func removePhone(_ context.Context, s *Session, args []string) (string, error) {
	if err := requireArgs(args, 2); err != nil {
		return "", err
	}
	record, ok := s.Book.Find(args[0])
	if !ok {
		return msgContactNotFound, nil
	}
	if err := record.RemovePhone(args[1]); err != nil {
		return "", err
	}
	return "Phone removed.", nil
}

func showPhone(_ context.Context, s *Session, args []string) (string, error) {
	if err := requireArgs(args, 1); err != nil {
		return "", err
	}
	record, ok := s.Book.Find(args[0])
	if !ok {
		return msgContactNotFound, nil
	}
	phones := record.Phones()
	values := make([]string, len(phones))
	for i, p := range phones {
		values[i] = p.Value()
	}
	return fmt.Sprintf("%s's phone: %s", record.Name(), strings.Join(values, ", ")), nil
}

func showAll(_ context.Context, s *Session, _ []string) (string, error) {
	if s.Book.Len() == 0 {
		return "Contacts are empty.", nil
	}
	records := s.Book.Records()
	lines := make([]string, len(records))
	for i, r := range records {
		lines[i] = r.Name() + " => " + r.String()
	}
	return strings.Join(lines, "\n"), nil
}

func deleteContact(_ context.Context, s *Session, args []string) (string, error) {
	if err := requireArgs(args, 1); err != nil {
		return "", err
	}
	s.Book.Delete(args[0])
	return "Contact deleted.", nil
}

func addBirthday(_ context.Context, s *Session, args []string) (string, error) {
	if err := requireArgs(args, 2); err != nil {
		return "", err
	}
	name, value := args[0], args[1]
	if err := s.Book.AddBirthday(name, value); err != nil {
		return "", err
	}
	return fmt.Sprintf("Birthday for %s added: %s", name, value), nil
}

func showBirthday(_ context.Context, s *Session, args []string) (string, error) {
	if err := requireArgs(args, 1); err != nil {
		return "", err
	}
	record, ok := s.Book.Find(args[0])
	if !ok {
		return msgContactNotFound, nil
	}
	birthday, ok := record.Birthday()
	if !ok {
		return record.Name() + " has no birthday set.", nil
	}
	return fmt.Sprintf("%s's birthday: %s", record.Name(), birthday), nil
}

func upcomingBirthdays(_ context.Context, s *Session, _ []string) (string, error) {
	upcoming := s.Book.UpcomingBirthdays(s.WindowDays)
	if len(upcoming) == 0 {
		return fmt.Sprintf("No upcoming birthdays in the next %d days.", s.WindowDays), nil
	}
	lines := make([]string, len(upcoming))
	for i, u := range upcoming {
		lines[i] = u.Name + ": " + u.Birthday
	}
	return strings.Join(lines, "\n"), nil
}

func helpHandler(r *Registry) Handler {
	return func(context.Context, *Session, []string) (string, error) {
		var sb strings.Builder
		sb.WriteString("Available commands:")
		for _, cmd := range r.Commands() {
			fmt.Fprintf(&sb, "\n  %-36s %s", cmd.Usage, cmd.Summary)
		}
		return sb.String(), nil
	}
}
