package contest

import (
	"encoding/hex"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	"github.com/muralfm/muralcli/internal/chain"
	"github.com/muralfm/muralcli/internal/wallet"
)

// DefaultContractAddress is the deployed MusicContest contract.
const DefaultContractAddress = "0x7f460A9B660ce4bC7e87ECd130DdB544360CE90e"

// SignerFunc returns a signer for the next write call. The gateway calls it
// once per transaction instead of caching the result, so a changed account
// is always reflected on the next call.
type SignerFunc func() (*wallet.Signer, error)

// Gateway is the typed façade over the MusicContest contract. Reads decode
// positional tuples into named records at this boundary; all big integers
// leave as base-10 strings.
type Gateway struct {
	client         *chain.EVMClient
	address        common.Address
	chainID        *big.Int
	signer         SignerFunc
	confirmTimeout time.Duration
}

// GatewayOption configures a Gateway.
type GatewayOption func(*Gateway)

// WithConfirmTimeout overrides how long writes wait for on-chain
// confirmation.
func WithConfirmTimeout(d time.Duration) GatewayOption {
	return func(g *Gateway) { g.confirmTimeout = d }
}

// NewGateway creates a gateway to the contract at addr. signer may be nil
// for read-only use; write calls then fail with a clear error.
func NewGateway(client *chain.EVMClient, addr string, chainID *big.Int, signer SignerFunc, opts ...GatewayOption) *Gateway {
	g := &Gateway{
		client:         client,
		address:        common.HexToAddress(addr),
		chainID:        chainID,
		signer:         signer,
		confirmTimeout: 3 * time.Minute,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// SubmissionFee returns the fixed fee (wei, decimal string) required to
// submit a track.
func (g *Gateway) SubmissionFee() (string, error) {
	fee, err := g.submissionFeeWei()
	if err != nil {
		return "", err
	}
	return NormalizeBigInts(fee).(string), nil
}

// CurrentTheme returns the open contest's active theme string.
func (g *Gateway) CurrentTheme() (string, error) {
	out, err := g.read("currentTheme")
	if err != nil {
		return "", err
	}
	theme, ok := out[0].(string)
	if !ok {
		return "", fmt.Errorf("unexpected currentTheme result: %T", out[0])
	}
	return theme, nil
}

// TotalFunds returns the contract's pooled funds (wei, decimal string).
func (g *Gateway) TotalFunds() (string, error) {
	out, err := g.read("totalFunds")
	if err != nil {
		return "", err
	}
	funds, ok := NormalizeBigInts(out[0]).(string)
	if !ok {
		return "", fmt.Errorf("unexpected totalFunds result: %T", out[0])
	}
	return funds, nil
}

// submissionResult mirrors the contract's SubmissionOverview tuple.
type submissionResult struct {
	Submitter common.Address
	MusicUrl  string
	Theme     string
}

// ContestDetails reads the open contest wholesale and returns a normalized
// snapshot.
func (g *Gateway) ContestDetails() (*ContestSnapshot, error) {
	out, err := g.read("getSubmissions")
	if err != nil {
		return nil, err
	}
	if len(out) != 5 {
		return nil, fmt.Errorf("getSubmissions returned %d values, want 5", len(out))
	}

	raw := *abi.ConvertType(out[0], new([]submissionResult)).(*[]submissionResult)
	totalVotes, err := toBig(out[1], "total votes")
	if err != nil {
		return nil, err
	}
	totalFunds, err := toBig(out[2], "total funds")
	if err != nil {
		return nil, err
	}
	startTS, err := toBig(out[3], "start timestamp")
	if err != nil {
		return nil, err
	}
	voterAddrs := *abi.ConvertType(out[4], new([]common.Address)).(*[]common.Address)

	snap := &ContestSnapshot{
		Submissions:    make([]Submission, len(raw)),
		TotalVotes:     totalVotes.Int64(),
		TotalFunds:     totalFunds.String(),
		StartTimestamp: startTS.Int64(),
		Voters:         make([]string, len(voterAddrs)),
	}
	for i, s := range raw {
		snap.Submissions[i] = Submission{
			Submitter: s.Submitter.Hex(),
			MusicURL:  s.MusicUrl,
			Theme:     s.Theme,
		}
	}
	for i, a := range voterAddrs {
		snap.Voters[i] = a.Hex()
	}
	return snap, nil
}

// RoundInfo is the contract's round-keeping state: how long a round runs,
// when the current one started, and the organizer account that deployed it.
type RoundInfo struct {
	Interval      int64  // round length in seconds
	LastTimestamp int64  // unix time the current round opened
	Owner         string // organizer address, checksummed hex
}

// RoundInfo reads the round-keeping getters (interval, lastTimeStamp, owner).
func (g *Gateway) RoundInfo() (*RoundInfo, error) {
	out, err := g.read("interval")
	if err != nil {
		return nil, err
	}
	interval, err := toBig(out[0], "interval")
	if err != nil {
		return nil, err
	}

	out, err = g.read("lastTimeStamp")
	if err != nil {
		return nil, err
	}
	opened, err := toBig(out[0], "last round timestamp")
	if err != nil {
		return nil, err
	}

	out, err = g.read("owner")
	if err != nil {
		return nil, err
	}
	owner, ok := out[0].(common.Address)
	if !ok {
		return nil, fmt.Errorf("unexpected owner result: %T", out[0])
	}

	return &RoundInfo{
		Interval:      interval.Int64(),
		LastTimestamp: opened.Int64(),
		Owner:         owner.Hex(),
	}, nil
}

// winnerResult mirrors the contract's Winner tuple.
type winnerResult struct {
	Submitter  common.Address
	MusicUrl   string
	Theme      string
	Prompt     string
	Votes      *big.Int
	Payout     *big.Int
	Timestamp  *big.Int
	VoterShare *big.Int
}

// Winners returns every historical winner row across all past contests.
func (g *Gateway) Winners() ([]WinnerRecord, error) {
	out, err := g.read("getWinners")
	if err != nil {
		return nil, err
	}

	raw := *abi.ConvertType(out[0], new([]winnerResult)).(*[]winnerResult)
	records := make([]WinnerRecord, len(raw))
	for i, w := range raw {
		records[i] = WinnerRecord{
			Submitter:  w.Submitter.Hex(),
			MusicURL:   w.MusicUrl,
			Theme:      w.Theme,
			Prompt:     w.Prompt,
			Votes:      w.Votes.Int64(),
			Payout:     w.Payout.String(),
			Timestamp:  w.Timestamp.Int64(),
			VoterShare: w.VoterShare.String(),
		}
	}
	return records, nil
}

// SubmitMusic sends a submission, attaching the current SUBMISSION_FEE as
// payment, and waits for on-chain confirmation. Contract reverts and signer
// rejections surface as errors.
func (g *Gateway) SubmitMusic(musicURL, theme, prompt string) (*chain.TxReceipt, error) {
	fee, err := g.submissionFeeWei()
	if err != nil {
		return nil, fmt.Errorf("reading submission fee: %w", err)
	}
	return g.send("submitMusic", fee, musicURL, theme, prompt)
}

// Vote casts one vote for the submission at index. Duplicate-vote gating is
// a caller-side UX check; the contract is the authority.
func (g *Gateway) Vote(index uint64) (*chain.TxReceipt, error) {
	return g.send("vote", nil, new(big.Int).SetUint64(index))
}

// --- internals ---

func (g *Gateway) submissionFeeWei() (*big.Int, error) {
	out, err := g.read("SUBMISSION_FEE")
	if err != nil {
		return nil, err
	}
	return toBig(out[0], "submission fee")
}

// read calls a view function and returns the decoded output values.
func (g *Gateway) read(method string, args ...interface{}) ([]interface{}, error) {
	calldata, err := contestABI.Pack(method, args...)
	if err != nil {
		return nil, fmt.Errorf("encoding %s call: %w", method, err)
	}

	result, err := g.client.CallContract(g.address.Hex(), "0x"+hex.EncodeToString(calldata))
	if err != nil {
		return nil, fmt.Errorf("%s call failed: %w", method, err)
	}

	data, err := hex.DecodeString(strings.TrimPrefix(result, "0x"))
	if err != nil {
		return nil, fmt.Errorf("decoding %s result hex: %w", method, err)
	}

	out, err := contestABI.Unpack(method, data)
	if err != nil {
		return nil, fmt.Errorf("decoding %s result: %w", method, err)
	}
	return out, nil
}

// send builds, signs, broadcasts a write call and waits for its receipt.
// A fresh signer is obtained per call.
func (g *Gateway) send(method string, value *big.Int, args ...interface{}) (*chain.TxReceipt, error) {
	if g.signer == nil {
		return nil, fmt.Errorf("no signing wallet connected")
	}
	signer, err := g.signer()
	if err != nil {
		return nil, fmt.Errorf("obtaining signer: %w", err)
	}

	calldata, err := contestABI.Pack(method, args...)
	if err != nil {
		return nil, fmt.Errorf("encoding %s call: %w", method, err)
	}
	from := signer.Address()
	hexData := "0x" + hex.EncodeToString(calldata)

	gas, err := g.client.EstimateGas(from, g.address.Hex(), hexData, value)
	if err != nil {
		gas = 200_000 // fallback
	}
	gasPrice, err := g.client.GasPrice()
	if err != nil {
		return nil, fmt.Errorf("getting gas price: %w", err)
	}
	nonce, err := g.client.GetPendingNonce(from)
	if err != nil {
		return nil, fmt.Errorf("getting nonce: %w", err)
	}

	if value == nil {
		value = big.NewInt(0)
	}
	to := g.address
	tx := types.NewTx(&types.DynamicFeeTx{
		ChainID:   g.chainID,
		Nonce:     nonce,
		GasTipCap: gasPrice,
		GasFeeCap: new(big.Int).Mul(gasPrice, big.NewInt(2)),
		Gas:       gas,
		To:        &to,
		Value:     value,
		Data:      calldata,
	})

	raw, err := signer.SignTx(tx, g.chainID)
	if err != nil {
		return nil, fmt.Errorf("signing transaction: %w", err)
	}

	hash, err := g.client.SendRawTransaction("0x" + hex.EncodeToString(raw))
	if err != nil {
		return nil, fmt.Errorf("broadcasting transaction: %w", err)
	}

	receipt, err := g.client.WaitForReceipt(hash, g.confirmTimeout)
	if err != nil {
		return nil, fmt.Errorf("waiting for confirmation: %w", err)
	}
	return receipt, nil
}

func toBig(v interface{}, what string) (*big.Int, error) {
	n, ok := v.(*big.Int)
	if !ok || n == nil {
		return nil, fmt.Errorf("unexpected %s result: %T", what, v)
	}
	return n, nil
}
