// Package storage abstracts the persistence medium behind the ledger store:
// raw bytes read and written by collection key. The store owns all encoding
// above this line; backends never interpret the payload.
package storage

import "errors"

// ErrNotExist is returned by Read when no value was ever written for a key.
var ErrNotExist = errors.New("storage: key does not exist")

// Backend reads and writes raw snapshots of one collection by key.
//
// Implementations are the sole point of contact with the medium. A Read for
// a key that was never written returns ErrNotExist, so the store can tell
// "empty" apart from "broken".
type Backend interface {
	Read(key string) ([]byte, error)
	Write(key string, data []byte) error
}
