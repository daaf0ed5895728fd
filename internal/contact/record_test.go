package contact

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func phoneValues(r *Record) []string {
	var out []string
	for _, p := range r.Phones() {
		out = append(out, p.Value())
	}
	return out
}

func newTestRecord(t *testing.T, name string, phones ...string) *Record {
	t.Helper()
	r, err := NewRecord(name)
	require.NoError(t, err)
	for _, p := range phones {
		require.NoError(t, r.AddPhone(p))
	}
	return r
}

func TestNewRecord(t *testing.T) {
	t.Parallel()

	r, err := NewRecord("John")
	require.NoError(t, err)
	assert.Equal(t, "John", r.Name())
	assert.Empty(t, r.Phones())
	_, ok := r.Birthday()
	assert.False(t, ok)

	for _, name := range []string{"", "   "} {
		_, err := NewRecord(name)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalid))
	}
}

func TestRecord_AddPhone(t *testing.T) {
	t.Parallel()

	r := newTestRecord(t, "John", "1234567890", "1234567890")
	assert.Equal(t, []string{"1234567890", "1234567890"}, phoneValues(r), "duplicates are kept")

	err := r.AddPhone("123")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalid))
	assert.Len(t, r.Phones(), 2)
}

func TestRecord_PhonesReturnsCopy(t *testing.T) {
	t.Parallel()

	r := newTestRecord(t, "John", "1234567890")
	phones := r.Phones()
	phones[0] = Phone{value: "0000000000"}

	assert.Equal(t, []string{"1234567890"}, phoneValues(r))
}

func TestRecord_RemovePhone(t *testing.T) {
	t.Parallel()

	r := newTestRecord(t, "John", "1111111111", "2222222222", "1111111111")

	require.NoError(t, r.RemovePhone("1111111111"))
	assert.Equal(t, []string{"2222222222", "1111111111"}, phoneValues(r), "only the first match is removed")

	err := r.RemovePhone("9999999999")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.Equal(t, "Phone 9999999999 not found.", err.Error())
	assert.Equal(t, []string{"2222222222", "1111111111"}, phoneValues(r))
}

func TestRecord_EditPhone(t *testing.T) {
	t.Parallel()

	t.Run("valid replacement", func(t *testing.T) {
		t.Parallel()
		r := newTestRecord(t, "John", "1111111111", "2222222222")

		require.NoError(t, r.EditPhone("1111111111", "3333333333"))

		assert.Equal(t, []string{"2222222222", "3333333333"}, phoneValues(r))
		_, found := r.FindPhone("1111111111")
		assert.False(t, found)
	})

	t.Run("invalid replacement keeps the old number", func(t *testing.T) {
		t.Parallel()
		r := newTestRecord(t, "John", "1111111111", "2222222222")

		err := r.EditPhone("1111111111", "bad")

		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalid))
		assert.Equal(t, []string{"1111111111", "2222222222"}, phoneValues(r))
	})

	t.Run("missing old number", func(t *testing.T) {
		t.Parallel()
		r := newTestRecord(t, "John", "1111111111")

		err := r.EditPhone("5555555555", "3333333333")

		require.Error(t, err)
		var nfErr *NotFoundError
		require.True(t, errors.As(err, &nfErr))
		assert.Equal(t, "Phone", nfErr.Kind)
		assert.Equal(t, "5555555555", nfErr.Key)
		assert.Equal(t, "Phone 5555555555 not found.", err.Error())
		assert.Equal(t, []string{"1111111111"}, phoneValues(r))
	})

	t.Run("same value", func(t *testing.T) {
		t.Parallel()
		r := newTestRecord(t, "John", "1111111111")

		require.NoError(t, r.EditPhone("1111111111", "1111111111"))

		assert.Equal(t, []string{"1111111111"}, phoneValues(r))
	})
}

func TestRecord_FindPhone(t *testing.T) {
	t.Parallel()

	r := newTestRecord(t, "John", "1111111111")

	phone, ok := r.FindPhone("1111111111")
	require.True(t, ok)
	assert.Equal(t, "1111111111", phone.Value())

	_, ok = r.FindPhone("2222222222")
	assert.False(t, ok)
}

func TestRecord_AddBirthday(t *testing.T) {
	t.Parallel()

	r := newTestRecord(t, "John")

	require.NoError(t, r.AddBirthday("01.01.1990"))
	require.NoError(t, r.AddBirthday("02.02.1992"))
	b, ok := r.Birthday()
	require.True(t, ok)
	assert.Equal(t, "02.02.1992", b.String(), "a second birthday replaces the first")

	err := r.AddBirthday("1992-02-02")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalid))
	b, _ = r.Birthday()
	assert.Equal(t, "02.02.1992", b.String(), "a rejected value leaves the birthday unchanged")
}

func TestRecord_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Contact name: John, phones: ", newTestRecord(t, "John").String())
	assert.Equal(t,
		"Contact name: John, phones: 1111111111; 2222222222",
		newTestRecord(t, "John", "1111111111", "2222222222").String(),
	)
}
