package tracker

// Store binds a book to the file it lives in. Mutations go through the store
// so that the file on disk tracks the in-memory book.
//
// The book stays authoritative: when a write fails the mutation is kept in
// memory and the error is reported, a later Save can retry.
type Store struct {
	path string
	book *Book
}

// Open loads the book stored at path. A missing file opens an empty store.
func Open(path string) (*Store, error) {
	book, err := LoadBook(path)
	if err != nil {
		return nil, err
	}
	return &Store{path: path, book: book}, nil
}

// Book returns the in-memory book.
func (s *Store) Book() *Book { return s.book }

// Path returns the file this store persists to.
func (s *Store) Path() string { return s.path }

// Append records transactions and persists the whole book.
func (s *Store) Append(txs ...Transaction) error {
	s.book.Append(txs...)
	return s.Save()
}

// RemoveAt deletes the i-th transaction and persists the book. It reports
// whether something was removed. An index outside the book is a no-op and
// nothing is written.
func (s *Store) RemoveAt(i int) (bool, error) {
	if !s.book.RemoveAt(i) {
		return false, nil
	}
	return true, s.Save()
}

// Save writes the book to its file.
func (s *Store) Save() error {
	return SaveBook(s.path, s.book)
}
