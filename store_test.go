package tracker

import (
	"os"
	"path/filepath"
	"testing"
)

func TestOpen_MissingFile(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "book.csv"))
	if err != nil {
		t.Fatalf("Open() on a missing file returned an unexpected error: %v", err)
	}
	if store.Book().Len() != 0 {
		t.Errorf("Open() on a missing file gave %d transactions, want an empty book", store.Book().Len())
	}
}

// TestStore_AppendPersists walks the basic session: record an expense and an
// income, check the derived totals, and check the exact file content.
func TestStore_AppendPersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "book.csv")
	store, err := Open(path)
	if err != nil {
		t.Fatalf("Open() returned an unexpected error: %v", err)
	}

	if err := store.Append(NewExpense(MustParse("2024-01-05"), "Food", "Lunch", A(12.5))); err != nil {
		t.Fatalf("Append() returned an unexpected error: %v", err)
	}
	if err := store.Append(NewIncome(MustParse("2024-01-06"), "Pay", "Salary", A(1000))); err != nil {
		t.Fatalf("Append() returned an unexpected error: %v", err)
	}

	if got, want := store.Book().TotalIncome(), A(1000); !got.Equal(want) {
		t.Errorf("TotalIncome() = %s, want %s", got, want)
	}
	if got, want := store.Book().TotalExpense(), A(12.5); !got.Equal(want) {
		t.Errorf("TotalExpense() = %s, want %s", got, want)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read back the book file: %v", err)
	}
	want := "2024-01-05,Food,Lunch,12.50,EXPENSE\n2024-01-06,Pay,Salary,1000.00,INCOME\n"
	if string(content) != want {
		t.Errorf("book file content incorrect.\nGot:\n%s\nWant:\n%s", content, want)
	}
}

func TestStore_ReopenKeepsRecords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "book.csv")
	store, err := Open(path)
	if err != nil {
		t.Fatalf("Open() returned an unexpected error: %v", err)
	}
	tx := NewExpense(MustParse("2024-01-05"), "Food", "Lunch", A(12.5))
	if err := store.Append(tx); err != nil {
		t.Fatalf("Append() returned an unexpected error: %v", err)
	}

	reopened, err := Open(path)
	if err != nil {
		t.Fatalf("Open() after save returned an unexpected error: %v", err)
	}
	if reopened.Book().Len() != 1 {
		t.Fatalf("reopened book has %d transactions, want 1", reopened.Book().Len())
	}
	for _, got := range reopened.Book().Transactions() {
		if !got.Equal(tx) {
			t.Errorf("reopened transaction = %+v, want %+v", got, tx)
		}
	}
}

func TestStore_RemoveAt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "book.csv")
	store, err := Open(path)
	if err != nil {
		t.Fatalf("Open() returned an unexpected error: %v", err)
	}
	if err := store.Append(
		NewExpense(MustParse("2024-01-05"), "Food", "Lunch", A(12.5)),
		NewIncome(MustParse("2024-01-06"), "Pay", "Salary", A(1000)),
	); err != nil {
		t.Fatalf("Append() returned an unexpected error: %v", err)
	}

	removed, err := store.RemoveAt(0)
	if err != nil {
		t.Fatalf("RemoveAt(0) returned an unexpected error: %v", err)
	}
	if !removed {
		t.Fatal("RemoveAt(0) removed nothing, want one removal")
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read back the book file: %v", err)
	}
	want := "2024-01-06,Pay,Salary,1000.00,INCOME\n"
	if string(content) != want {
		t.Errorf("book file after RemoveAt(0) incorrect.\nGot:\n%s\nWant:\n%s", content, want)
	}
}

// Out-of-range deletes are no-ops: no error, no write.
func TestStore_RemoveAt_Lenient(t *testing.T) {
	path := filepath.Join(t.TempDir(), "book.csv")
	store, err := Open(path)
	if err != nil {
		t.Fatalf("Open() returned an unexpected error: %v", err)
	}
	if err := store.Append(NewExpense(MustParse("2024-01-05"), "Food", "Lunch", A(12.5))); err != nil {
		t.Fatalf("Append() returned an unexpected error: %v", err)
	}
	before, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read the book file: %v", err)
	}

	for _, index := range []int{1, -1, 42} {
		removed, err := store.RemoveAt(index)
		if err != nil {
			t.Errorf("RemoveAt(%d) returned an unexpected error: %v", index, err)
		}
		if removed {
			t.Errorf("RemoveAt(%d) removed something, want a no-op", index)
		}
	}

	if store.Book().Len() != 1 {
		t.Errorf("book has %d transactions after lenient deletes, want 1", store.Book().Len())
	}
	after, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read the book file: %v", err)
	}
	if string(before) != string(after) {
		t.Errorf("book file changed by a lenient delete.\nBefore:\n%s\nAfter:\n%s", before, after)
	}
}

// A failed write reports the error and leaves the in-memory book untouched,
// it stays the source of truth for a later retry.
func TestStore_SaveFailure_KeepsMemory(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "blocker")
	if err := os.WriteFile(blocker, []byte("not a directory"), 0644); err != nil {
		t.Fatalf("failed to create blocker file: %v", err)
	}

	// The parent of this path is a regular file, so every save must fail.
	store := &Store{path: filepath.Join(blocker, "book.csv"), book: NewBook()}

	err := store.Append(NewExpense(MustParse("2024-01-05"), "Food", "Lunch", A(12.5)))
	if err == nil {
		t.Fatal("Append() with an unwritable destination returned no error")
	}
	if store.Book().Len() != 1 {
		t.Errorf("book has %d transactions after the failed save, want 1 (memory stays authoritative)", store.Book().Len())
	}
}

func TestSaveBook_CreatesParentDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "deep", "book.csv")
	book := NewBook()
	book.Append(NewExpense(MustParse("2024-01-05"), "Food", "Lunch", A(12.5)))

	if err := SaveBook(path, book); err != nil {
		t.Fatalf("SaveBook() returned an unexpected error: %v", err)
	}

	loaded, err := LoadBook(path)
	if err != nil {
		t.Fatalf("LoadBook() returned an unexpected error: %v", err)
	}
	if loaded.Len() != 1 {
		t.Errorf("loaded book has %d transactions, want 1", loaded.Len())
	}
}
