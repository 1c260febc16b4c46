package contact

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alem-hub/assistant-bot/internal/domain/shared"
)

func newTestRecord(t *testing.T, name string, phones ...string) *Record {
	t.Helper()
	r, err := NewRecord(name)
	require.NoError(t, err)
	for _, p := range phones {
		require.NoError(t, r.AddPhone(p))
	}
	return r
}

func TestRecord_AddPhone_KeepsDuplicates(t *testing.T) {
	r := newTestRecord(t, "John", "1234567890", "1234567890")

	assert.Equal(t, []Phone{"1234567890", "1234567890"}, r.Phones())
}

func TestRecord_AddPhone_Invalid(t *testing.T) {
	r := newTestRecord(t, "John")

	err := r.AddPhone("12345")

	assert.True(t, shared.IsValidation(err))
	assert.Empty(t, r.Phones())
}

func TestRecord_DeletePhone_RemovesAllMatches(t *testing.T) {
	r := newTestRecord(t, "John", "1111111111", "2222222222", "1111111111")

	r.DeletePhone("1111111111")
	assert.Equal(t, []Phone{"2222222222"}, r.Phones())

	r.DeletePhone("9999999999")
	assert.Equal(t, []Phone{"2222222222"}, r.Phones())
}

func TestRecord_EditPhone(t *testing.T) {
	r := newTestRecord(t, "John", "1111111111", "2222222222", "1111111111")

	require.NoError(t, r.EditPhone("1111111111", "3333333333"))

	assert.Equal(t, []Phone{"3333333333", "2222222222", "1111111111"}, r.Phones())
}

func TestRecord_EditPhone_MissingOldIsNoop(t *testing.T) {
	r := newTestRecord(t, "John", "1111111111")
	before := r.Phones()

	require.NoError(t, r.EditPhone("9999999999", "3333333333"))
	require.NoError(t, r.EditPhone("9999999999", "3333333333"))

	assert.Equal(t, before, r.Phones())
}

func TestRecord_EditPhone_InvalidReplacement(t *testing.T) {
	r := newTestRecord(t, "John", "1111111111")

	err := r.EditPhone("1111111111", "abc")

	assert.True(t, shared.IsValidation(err))
	assert.Equal(t, []Phone{"1111111111"}, r.Phones())
}

func TestRecord_FindPhone(t *testing.T) {
	r := newTestRecord(t, "John", "1111111111")

	p, ok := r.FindPhone("1111111111")
	assert.True(t, ok)
	assert.Equal(t, Phone("1111111111"), p)

	_, ok = r.FindPhone("2222222222")
	assert.False(t, ok)
}

func TestRecord_AddBirthday_Overwrites(t *testing.T) {
	r := newTestRecord(t, "John")

	_, ok := r.Birthday()
	assert.False(t, ok)

	require.NoError(t, r.AddBirthday("01.01.2000"))
	require.NoError(t, r.AddBirthday("02.02.2002"))

	b, ok := r.Birthday()
	require.True(t, ok)
	assert.Equal(t, "02.02.2002", b.String())

	assert.True(t, shared.IsValidation(r.AddBirthday("31.02.2020")))
	b, _ = r.Birthday()
	assert.Equal(t, "02.02.2002", b.String())
}

func TestRecord_String(t *testing.T) {
	r := newTestRecord(t, "John", "1111111111", "2222222222")

	assert.Equal(t, "Contact name: John, phones: 1111111111; 2222222222", r.String())
	assert.Equal(t, "Contact name: Jane, phones: ", newTestRecord(t, "Jane").String())
}

func TestRestoreRecord(t *testing.T) {
	r, err := RestoreRecord(RecordSnapshot{Name: "B", Birthday: "01.01.2000"})
	require.NoError(t, err)
	assert.Equal(t, RecordSnapshot{Name: "B", Phones: []string{}, Birthday: "01.01.2000"}, r.Snapshot())

	_, err = RestoreRecord(RecordSnapshot{Name: "A", Phones: []string{"123"}})
	assert.True(t, shared.IsValidation(err))
}
