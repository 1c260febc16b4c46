package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alem-hub/assistant-bot/internal/domain/contact"
	"github.com/alem-hub/assistant-bot/pkg/logger"
)

func newTestRepo(t *testing.T) *AddressBookRepository {
	t.Helper()
	repo, err := NewAddressBookRepository(Config{
		Path:     filepath.Join(t.TempDir(), "address_book.json"),
		FileMode: 0o600,
		Logger:   logger.Discard(),
	})
	require.NoError(t, err)
	return repo
}

func snapshots(book *contact.AddressBook) []contact.RecordSnapshot {
	out := make([]contact.RecordSnapshot, 0, book.Len())
	for _, r := range book.Records() {
		out = append(out, r.Snapshot())
	}
	return out
}

func TestAddressBookRepository_RoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	book := contact.NewAddressBook()
	a, err := contact.NewRecord("A")
	require.NoError(t, err)
	require.NoError(t, a.AddPhone("1111111111"))
	book.AddRecord(a)
	b, err := contact.NewRecord("B")
	require.NoError(t, err)
	require.NoError(t, b.AddBirthday("01.01.2000"))
	book.AddRecord(b)

	require.NoError(t, repo.Save(ctx, book))

	loaded := contact.NewAddressBook()
	require.NoError(t, repo.Load(ctx, loaded))

	want := []contact.RecordSnapshot{
		{Name: "A", Phones: []string{"1111111111"}},
		{Name: "B", Phones: []string{}, Birthday: "01.01.2000"},
	}
	if diff := cmp.Diff(want, snapshots(loaded)); diff != "" {
		t.Errorf("loaded book mismatch (-want +got):\n%s", diff)
	}

	info, err := os.Stat(repo.Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestAddressBookRepository_FileFormat(t *testing.T) {
	repo := newTestRepo(t)

	book := contact.NewAddressBook()
	r, err := contact.NewRecord("John")
	require.NoError(t, err)
	require.NoError(t, r.AddPhone("0987654321"))
	book.AddRecord(r)
	require.NoError(t, repo.Save(context.Background(), book))

	data, err := os.ReadFile(repo.Path())
	require.NoError(t, err)
	assert.JSONEq(t, `[{"name":"John","phones":["0987654321"]}]`, string(data))
}

func TestAddressBookRepository_MissingFile(t *testing.T) {
	repo := newTestRepo(t)
	book := contact.NewAddressBook()

	require.NoError(t, repo.Load(context.Background(), book))

	assert.Equal(t, 0, book.Len())
}

func TestAddressBookRepository_CorruptFile(t *testing.T) {
	tests := map[string]string{
		"not json":      `{"name": `,
		"wrong shape":   `{"name": "A"}`,
		"invalid phone": `[{"name": "A", "phones": ["123"]}]`,
		"invalid date":  `[{"name": "A", "phones": [], "birthday": "31.02.2020"}]`,
		"empty name":    `[{"name": "", "phones": []}]`,
	}
	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			repo := newTestRepo(t)
			require.NoError(t, os.WriteFile(repo.Path(), []byte(content), 0o600))

			err := repo.Load(context.Background(), contact.NewAddressBook())

			assert.ErrorIs(t, err, ErrCorruptFile)
		})
	}
}

func TestAddressBookRepository_EmptyFile(t *testing.T) {
	repo := newTestRepo(t)
	require.NoError(t, os.WriteFile(repo.Path(), []byte("  \n"), 0o600))

	book := contact.NewAddressBook()
	require.NoError(t, repo.Load(context.Background(), book))
	assert.Equal(t, 0, book.Len())
}

func TestAddressBookRepository_LoadMergesIntoBook(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)
	require.NoError(t, os.WriteFile(repo.Path(),
		[]byte(`[{"name": "A", "phones": ["2222222222"]}]`), 0o600))

	book := contact.NewAddressBook()
	for _, name := range []string{"A", "Z"} {
		r, err := contact.NewRecord(name)
		require.NoError(t, err)
		require.NoError(t, r.AddPhone("1111111111"))
		book.AddRecord(r)
	}

	require.NoError(t, repo.Load(ctx, book))

	want := []contact.RecordSnapshot{
		{Name: "A", Phones: []string{"2222222222"}},
		{Name: "Z", Phones: []string{"1111111111"}},
	}
	if diff := cmp.Diff(want, snapshots(book)); diff != "" {
		t.Errorf("merged book mismatch (-want +got):\n%s", diff)
	}
}

func TestAddressBookRepository_SaveOverwritesAndCleansUp(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	book := contact.NewAddressBook()
	r, err := contact.NewRecord("A")
	require.NoError(t, err)
	book.AddRecord(r)
	require.NoError(t, repo.Save(ctx, book))

	book.Delete("A")
	require.NoError(t, repo.Save(ctx, book))

	data, err := os.ReadFile(repo.Path())
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(data))

	entries, err := os.ReadDir(filepath.Dir(repo.Path()))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp files must not be left behind")
}

func TestAddressBookRepository_CancelledContext(t *testing.T) {
	repo := newTestRepo(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, repo.Save(ctx, contact.NewAddressBook()), context.Canceled)
	assert.ErrorIs(t, repo.Load(ctx, contact.NewAddressBook()), context.Canceled)
}

func TestNewAddressBookRepository_RequiresPath(t *testing.T) {
	_, err := NewAddressBookRepository(Config{})
	assert.Error(t, err)
}
