package e2e_test

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var binaryPath string

func TestMain(m *testing.M) {
	// Build the binary before all E2E tests.
	tmp, err := os.MkdirTemp("", "muralcli-e2e-test")
	if err != nil {
		panic(err)
	}
	defer os.RemoveAll(tmp)

	binaryPath = filepath.Join(tmp, "muralcli")
	// Build from the module root (two levels up from test/e2e/).
	moduleRoot, err := filepath.Abs(filepath.Join("..", ".."))
	if err != nil {
		panic(err)
	}
	cmd := exec.Command("go", "build", "-o", binaryPath, ".")
	cmd.Dir = moduleRoot
	if out, err := cmd.CombinedOutput(); err != nil {
		panic("build failed: " + string(out))
	}

	os.Exit(m.Run())
}

func runCLI(t *testing.T, configDir string, args ...string) (string, error) {
	t.Helper()
	cmd := exec.Command(binaryPath, args...)
	cmd.Env = append(os.Environ(), "MURAL_CONFIG_DIR="+configDir)
	out, err := cmd.CombinedOutput()
	return string(out), err
}

func TestVersionFlag(t *testing.T) {
	dir := t.TempDir()
	out, err := runCLI(t, dir, "--version")
	require.NoError(t, err)
	assert.Contains(t, out, "muralcli")
	assert.Contains(t, out, "1.0.0")
}

func TestHelpCommand(t *testing.T) {
	dir := t.TempDir()
	out, err := runCLI(t, dir, "--help")
	require.NoError(t, err)
	low := strings.ToLower(out)
	assert.Contains(t, low, "muralcli")
	assert.Contains(t, low, "contest")
	assert.Contains(t, low, "submit")
	assert.Contains(t, low, "vote")
	assert.Contains(t, low, "winners")
	assert.Contains(t, low, "wallet")
	assert.Contains(t, low, "generate")
}

func TestConfigShowDefaults(t *testing.T) {
	dir := t.TempDir()
	out, err := runCLI(t, dir, "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "0x7f460A9B660ce4bC7e87ECd130DdB544360CE90e")
	assert.Contains(t, out, "Ancient8 Testnet")
	assert.Contains(t, out, "0x1ABDAB8")
}

func TestConfigSetAndShow(t *testing.T) {
	dir := t.TempDir()
	_, err := runCLI(t, dir, "config", "set", "cloudinary-preset", "mural-demo")
	require.NoError(t, err)

	out, err := runCLI(t, dir, "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "mural-demo")
}

func TestConfigSetUnknownKey(t *testing.T) {
	dir := t.TempDir()
	_, err := runCLI(t, dir, "config", "set", "bogus", "x")
	assert.Error(t, err)
}

func TestWalletWatchAndList(t *testing.T) {
	dir := t.TempDir()

	_, err := runCLI(t, dir, "wallet", "watch", "viewer", "0x1234567890abcdef1234567890abcdef12345678")
	require.NoError(t, err)

	out, err := runCLI(t, dir, "wallet", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "viewer")
	assert.Contains(t, out, "0x1234")
	assert.Contains(t, out, "watch-only")
}

func TestWalletListEmpty(t *testing.T) {
	dir := t.TempDir()
	out, err := runCLI(t, dir, "wallet", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No wallets configured")
}

func TestWalletRemove(t *testing.T) {
	dir := t.TempDir()
	runCLI(t, dir, "wallet", "watch", "w1", "0x1234567890abcdef1234567890abcdef12345678") //nolint:errcheck

	// Use stdin to auto-confirm the prompt.
	cmd := exec.Command(binaryPath, "wallet", "remove", "w1")
	cmd.Env = append(os.Environ(), "MURAL_CONFIG_DIR="+dir)
	cmd.Stdin = strings.NewReader("y\n")
	require.NoError(t, cmd.Run())

	out, err := runCLI(t, dir, "wallet", "list")
	require.NoError(t, err)
	assert.NotContains(t, out, "w1")
}

func TestWalletUseUnknown(t *testing.T) {
	dir := t.TempDir()
	_, err := runCLI(t, dir, "wallet", "use", "nobody")
	assert.Error(t, err)
}

// The connect flow forces the network switch, and the card printed during
// the handshake says so before the final connected card appears.
func TestConnectShowsNetworkSwitch(t *testing.T) {
	dir := t.TempDir()
	_, err := runCLI(t, dir, "config", "set", "rpc", "http://127.0.0.1:1")
	require.NoError(t, err)
	_, err = runCLI(t, dir, "wallet", "watch", "artist", "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266")
	require.NoError(t, err)

	out, err := runCLI(t, dir, "connect", "artist")
	require.NoError(t, err)
	assert.Contains(t, out, "Switching to 0x1ABDAB8")
	assert.Contains(t, out, "Connected to Ancient8 Testnet")
}

func TestSubmitWithoutWallet(t *testing.T) {
	dir := t.TempDir()
	out, err := runCLI(t, dir, "submit", "https://example.com/a.wav")
	assert.Error(t, err)
	assert.Contains(t, out, "no wallet")
}

func TestVoteBadIndex(t *testing.T) {
	dir := t.TempDir()
	out, err := runCLI(t, dir, "vote", "zero")
	assert.Error(t, err)
	assert.Contains(t, out, "positive integer")
}
