package wallet

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Hardhat's first well-known dev account.
const (
	testKey     = "ac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"
	testAccount = "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"
)

func testManager() *Manager {
	return NewManager(WithKeystore(NewInMemoryKeystore()))
}

func TestImportKeyDerivesAddress(t *testing.T) {
	mgr := testManager()
	require.NoError(t, mgr.ImportKey("artist", testKey))

	w, err := mgr.Get("artist")
	require.NoError(t, err)
	assert.Equal(t, testAccount, w.Address)
	assert.Equal(t, TypeSigning, w.Type)
	assert.NotEmpty(t, w.KeyRef)
}

func TestImportKeyWithHexPrefix(t *testing.T) {
	mgr := testManager()
	require.NoError(t, mgr.ImportKey("artist", "0x"+testKey))

	w, err := mgr.Get("artist")
	require.NoError(t, err)
	assert.Equal(t, testAccount, w.Address)
}

func TestImportKeyInvalid(t *testing.T) {
	mgr := testManager()
	assert.ErrorIs(t, mgr.ImportKey("artist", "not-a-key"), ErrInvalidKey)
}

func TestImportKeyDuplicateName(t *testing.T) {
	mgr := testManager()
	require.NoError(t, mgr.ImportKey("artist", testKey))
	assert.ErrorIs(t, mgr.ImportKey("artist", testKey), ErrWalletExists)
}

func TestAddWatchOnly(t *testing.T) {
	mgr := testManager()
	addr := "0x1111111111111111111111111111111111111111"
	require.NoError(t, mgr.AddWatchOnly("viewer", addr))

	w, err := mgr.Get("viewer")
	require.NoError(t, err)
	assert.Equal(t, TypeWatchOnly, w.Type)
	assert.Empty(t, w.KeyRef)
}

func TestGetUnknown(t *testing.T) {
	_, err := testManager().Get("nobody")
	assert.ErrorIs(t, err, ErrWalletNotFound)
}

func TestRemoveEvictsKey(t *testing.T) {
	ks := NewInMemoryKeystore()
	mgr := NewManager(WithKeystore(ks))
	require.NoError(t, mgr.ImportKey("artist", testKey))
	w, _ := mgr.Get("artist")

	require.NoError(t, mgr.Remove("artist"))
	_, err := mgr.Get("artist")
	assert.ErrorIs(t, err, ErrWalletNotFound)
	_, err = ks.Retrieve(w.KeyRef)
	assert.Error(t, err, "key must be gone from the keystore")
}

func TestSetDefault(t *testing.T) {
	mgr := testManager()
	require.NoError(t, mgr.ImportKey("artist", testKey))
	require.NoError(t, mgr.AddWatchOnly("viewer", "0x2222222222222222222222222222222222222222"))

	require.NoError(t, mgr.SetDefault("viewer"))
	def := mgr.Default()
	require.NotNil(t, def)
	assert.Equal(t, "viewer", def.Name)

	// Switching moves the flag, it does not accumulate.
	require.NoError(t, mgr.SetDefault("artist"))
	assert.Equal(t, "artist", mgr.Default().Name)
}

func TestDefaultFallsBackToSoleWallet(t *testing.T) {
	mgr := testManager()
	require.NoError(t, mgr.ImportKey("artist", testKey))

	def := mgr.Default()
	require.NotNil(t, def)
	assert.Equal(t, "artist", def.Name)
}

func TestDefaultNilWhenAmbiguous(t *testing.T) {
	mgr := testManager()
	require.NoError(t, mgr.ImportKey("artist", testKey))
	require.NoError(t, mgr.AddWatchOnly("viewer", "0x2222222222222222222222222222222222222222"))

	assert.Nil(t, mgr.Default())
}

// ---------------------------------------------------------------------------
// JSON store
// ---------------------------------------------------------------------------

func TestJSONStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wallets.json")

	mgr := NewManager(WithStore(NewJSONStore(path)), WithKeystore(NewInMemoryKeystore()))
	require.NoError(t, mgr.ImportKey("artist", testKey))
	require.NoError(t, mgr.SetDefault("artist"))

	reopened := NewManager(WithStore(NewJSONStore(path)), WithKeystore(NewInMemoryKeystore()))
	w, err := reopened.Get("artist")
	require.NoError(t, err)
	assert.Equal(t, testAccount, w.Address)
	assert.True(t, w.IsDefault)
}

func TestJSONStoreMissingFileIsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wallets.json")
	mgr := NewManager(WithStore(NewJSONStore(path)), WithKeystore(NewInMemoryKeystore()))
	assert.Empty(t, mgr.List())
}
