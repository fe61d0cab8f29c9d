package lmdb

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/virel-project/virel-token/adb"
	"github.com/virel-project/virel-token/logger"

	lmdb "github.com/PowerDNS/lmdb-go/lmdb"
)

var _ adb.DB = &DB{}

type DB struct {
	env *lmdb.Env

	log *logger.Log

	resizeLock sync.Mutex
}

// token data is small: a config record, one record per holder and one balance per account
const initialMapSize = 4 * 1024 * 1024
const maxDBs = 8

func New(dbpath string, filemode os.FileMode, log *logger.Log) (*DB, error) {
	var err error

	d := &DB{
		log: log,
	}

	d.env, err = lmdb.NewEnv()
	if err != nil {
		return nil, err
	}

	d.env.SetMaxDBs(maxDBs)
	d.env.SetMapSize(initialMapSize)
	d.env.SetFlags(lmdb.WriteMap)

	dbpath, err = filepath.Abs(dbpath)
	if err != nil {
		return nil, err
	}

	err = os.Mkdir(dbpath, filemode)
	if err != nil && !errors.Is(err, os.ErrExist) {
		return nil, err
	}

	err = verifyDirPermissions(dbpath)
	if err != nil {
		return nil, err
	}

	// balances and cooldown records must survive a crash, so metadata is synced on every commit
	err = d.env.Open(dbpath, 0, filemode)
	if err != nil {
		d.env.Close()
		return nil, err
	}

	return d, nil
}

func verifyDirPermissions(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("directory access error: %w", err)
	}

	if !info.IsDir() {
		return fmt.Errorf("path is not a directory")
	}

	testFile := filepath.Join(path, "permission_test")
	if err := os.WriteFile(testFile, []byte("test"), 0644); err != nil {
		return fmt.Errorf("write permission denied: %w", err)
	}
	os.Remove(testFile)

	return nil
}

func (d *DB) Index(name string) (adb.Index, error) {
	var dbi lmdb.DBI
	err := d.env.Update(func(txn *lmdb.Txn) error {
		var err error
		dbi, err = txn.CreateDBI(name)
		return err
	})
	if err != nil {
		return nil, err
	}

	return dbi, nil
}

func (d *DB) View(f func(txn adb.Txn) error) error {
	return d.env.View(func(t *lmdb.Txn) error {
		return f(&Txn{txn: t})
	})
}

const GB = 1024 * 1024 * 1024

// grow doubles the map size (by at most 1 GiB) when less than 10% of it is free
func (d *DB) grow() error {
	d.resizeLock.Lock()
	defer d.resizeLock.Unlock()

	info, err := d.env.Info()
	if err != nil {
		return err
	}
	stat, err := d.env.Stat()
	if err != nil {
		return err
	}

	used := int64(stat.PSize) * info.LastPNO
	if free := 1 - float64(used)/float64(info.MapSize); free >= 0.1 {
		return nil
	}

	newSize := info.MapSize * 2
	if info.MapSize > GB {
		newSize = info.MapSize + GB
	}

	d.log.Infof("LMDB mapsize increase needed: %vMiB -> %vMiB", float64(info.MapSize)/1024/1024,
		float64(newSize)/1024/1024)

	return d.env.SetMapSize(newSize)
}

func (d *DB) Update(f func(txn adb.Txn) error) error {
	err := d.grow()
	if err != nil {
		return err
	}

	return d.env.Update(func(t *lmdb.Txn) error {
		return f(&Txn{txn: t})
	})
}

func (d *DB) Close() error {
	return d.env.Close()
}

type Txn struct {
	txn *lmdb.Txn
}

func (t *Txn) Get(d adb.Index, key []byte) []byte {
	r, err := t.txn.Get(d.(lmdb.DBI), key)
	if err != nil {
		return nil
	}
	return r
}

func (t *Txn) Put(d adb.Index, key []byte, value []byte) error {
	return t.txn.Put(d.(lmdb.DBI), key, value, 0)
}

func (t *Txn) Del(d adb.Index, key []byte) error {
	err := t.txn.Del(d.(lmdb.DBI), key, nil)
	if lmdb.IsNotFound(err) {
		return nil
	}
	return err
}

func (t *Txn) ForEach(d adb.Index, f func(k, v []byte) error) error {
	return t.ForEachInterrupt(d, func(k, v []byte) (bool, error) {
		return false, f(k, v)
	})
}

func (t *Txn) ForEachInterrupt(d adb.Index, f func(k, v []byte) (bool, error)) error {
	cursor, err := t.txn.OpenCursor(d.(lmdb.DBI))
	if err != nil {
		return err
	}
	defer cursor.Close()

	for {
		key, value, err := cursor.Get(nil, nil, lmdb.Next)
		if lmdb.IsNotFound(err) {
			break
		}
		if err != nil {
			return fmt.Errorf("cursor get: %w", err)
		}

		interrupt, err := f(key, value)
		if err != nil {
			return err
		}
		if interrupt {
			break
		}
	}

	return nil
}

func (t *Txn) Entries(d adb.Index) (uint64, error) {
	stat, err := t.txn.Stat(d.(lmdb.DBI))
	if err != nil {
		return 0, err
	}
	return stat.Entries, nil
}
