package badger

import (
	"testing"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenBackend_InMemory(t *testing.T) {
	backend, err := OpenBackend("", true)
	require.NoError(t, err)
	require.NotNil(t, backend)
	defer backend.Close()

	assert.False(t, backend.IsClosed())
}

func TestOpenBackend_FileSystem(t *testing.T) {
	tmpDir := t.TempDir()
	backend, err := OpenBackend(tmpDir, false)
	require.NoError(t, err)
	require.NotNil(t, backend)
	defer backend.Close()

	assert.False(t, backend.IsClosed())
}

func TestBackendClose(t *testing.T) {
	backend, err := OpenBackend("", true)
	require.NoError(t, err)
	require.NotNil(t, backend)

	assert.False(t, backend.IsClosed())

	err = backend.Close()
	require.NoError(t, err)

	assert.True(t, backend.IsClosed())
}

func TestGetSequence(t *testing.T) {
	backend, err := OpenBackend("", true)
	require.NoError(t, err)
	defer backend.Close()

	seq, err := backend.GetSequence("test_sequence")
	require.NoError(t, err)
	require.NotNil(t, seq)
	defer seq.Release()

	// Get sequential IDs
	id1, err := seq.Next()
	require.NoError(t, err)

	id2, err := seq.Next()
	require.NoError(t, err)

	// IDs should be sequential
	assert.Greater(t, id2, id1)
}

func TestDropPrefixes(t *testing.T) {
	backend, err := OpenBackend("", true)
	require.NoError(t, err)
	defer backend.Close()

	err = backend.WithTx(func(tx *badger.Txn) error {
		if err := tx.Set([]byte("drop:1"), []byte("a")); err != nil {
			return err
		}
		if err := tx.Set([]byte("drop:2"), []byte("b")); err != nil {
			return err
		}
		if err := tx.Set([]byte("keep:1"), []byte("c")); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
	require.NoError(t, err)

	require.NoError(t, backend.DropPrefixes([]byte("drop:")))

	err = backend.WithTx(func(tx *badger.Txn) error {
		_, err := tx.Get([]byte("drop:1"))
		assert.Equal(t, badger.ErrKeyNotFound, err)

		_, err = tx.Get([]byte("keep:1"))
		assert.NoError(t, err)
		return nil
	}, false)
	require.NoError(t, err)
}
