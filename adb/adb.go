// Package adb is a minimal key-value abstraction over the embedded databases supported by the token node.
// Every token record (configuration, holder cooldown records, ledger balances) is stored through it.
package adb

import "errors"

var ErrIndexNotFound = errors.New("adb: index not found")

type DB interface {
	// Index opens (creating it if needed) a named keyspace.
	Index(name string) (Index, error)

	View(func(txn Txn) error) error
	Update(func(txn Txn) error) error
	Close() error
}

type Index any

// Txn is a database transaction. Slices returned by Get and passed to ForEach callbacks are only valid
// until the transaction ends.
type Txn interface {
	Get(Index, []byte) []byte
	Put(Index, []byte, []byte) error
	Del(Index, []byte) error
	ForEach(Index, func(k, v []byte) error) error
	ForEachInterrupt(Index, func(k, v []byte) (bool, error)) error
	Entries(Index) (uint64, error)
}
