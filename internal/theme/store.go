package theme

import (
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"
)

var preferencesBucket = []byte("preferences")

const themeKey = "theme"

// Store persists user preferences. It is opened once at startup and
// handed to the shell; nothing else touches the file.
type Store struct {
	db *bolt.DB
}

func NewStore(dbPath string) (*Store, error) {
	db, err := bolt.Open(dbPath, 0o600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("opening preferences database: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, createErr := tx.CreateBucketIfNotExists(preferencesBucket)
		return createErr
	})
	if err != nil {
		return nil, fmt.Errorf("creating preferences bucket: %w", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Theme reads the persisted flag. Anything but the literal "dark"
// (including an unset key) means light mode.
func (s *Store) Theme() bool {
	var dark bool
	_ = s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(preferencesBucket)
		dark = string(b.Get([]byte(themeKey))) == "dark"
		return nil
	})
	return dark
}

// SetTheme writes the flag through immediately as "dark" or "light".
func (s *Store) SetTheme(dark bool) error {
	value := "light"
	if dark {
		value = "dark"
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(preferencesBucket)
		return b.Put([]byte(themeKey), []byte(value))
	})
}
