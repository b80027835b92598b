package contest

import (
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

// contestABIJSON is the deployed MusicContest contract's ABI surface as
// consumed by this client. Events are listed for completeness; the client
// reads state via view calls rather than subscribing to logs.
const contestABIJSON = `[
  {"inputs":[],"name":"SUBMISSION_FEE","outputs":[{"internalType":"uint256","name":"","type":"uint256"}],"stateMutability":"view","type":"function"},
  {"inputs":[],"name":"currentTheme","outputs":[{"internalType":"string","name":"","type":"string"}],"stateMutability":"view","type":"function"},
  {"inputs":[],"name":"totalFunds","outputs":[{"internalType":"uint256","name":"","type":"uint256"}],"stateMutability":"view","type":"function"},
  {"inputs":[],"name":"interval","outputs":[{"internalType":"uint256","name":"","type":"uint256"}],"stateMutability":"view","type":"function"},
  {"inputs":[],"name":"lastTimeStamp","outputs":[{"internalType":"uint256","name":"","type":"uint256"}],"stateMutability":"view","type":"function"},
  {"inputs":[],"name":"owner","outputs":[{"internalType":"address","name":"","type":"address"}],"stateMutability":"view","type":"function"},
  {"inputs":[],"name":"getSubmissions","outputs":[
    {"components":[
      {"internalType":"address","name":"submitter","type":"address"},
      {"internalType":"string","name":"musicUrl","type":"string"},
      {"internalType":"string","name":"theme","type":"string"}],
     "internalType":"struct MusicContest.SubmissionOverview[]","name":"","type":"tuple[]"},
    {"internalType":"uint256","name":"","type":"uint256"},
    {"internalType":"uint256","name":"","type":"uint256"},
    {"internalType":"uint256","name":"","type":"uint256"},
    {"internalType":"address[]","name":"","type":"address[]"}],
   "stateMutability":"view","type":"function"},
  {"inputs":[],"name":"getWinners","outputs":[
    {"components":[
      {"internalType":"address","name":"submitter","type":"address"},
      {"internalType":"string","name":"musicUrl","type":"string"},
      {"internalType":"string","name":"theme","type":"string"},
      {"internalType":"string","name":"prompt","type":"string"},
      {"internalType":"uint256","name":"votes","type":"uint256"},
      {"internalType":"uint256","name":"payout","type":"uint256"},
      {"internalType":"uint256","name":"timestamp","type":"uint256"},
      {"internalType":"uint256","name":"voterShare","type":"uint256"}],
     "internalType":"struct MusicContest.Winner[]","name":"","type":"tuple[]"}],
   "stateMutability":"view","type":"function"},
  {"inputs":[
    {"internalType":"string","name":"_musicUrl","type":"string"},
    {"internalType":"string","name":"_theme","type":"string"},
    {"internalType":"string","name":"_prompt","type":"string"}],
   "name":"submitMusic","outputs":[],"stateMutability":"payable","type":"function"},
  {"inputs":[{"internalType":"uint256","name":"_submissionIndex","type":"uint256"}],
   "name":"vote","outputs":[],"stateMutability":"nonpayable","type":"function"},
  {"anonymous":false,"inputs":[
    {"indexed":true,"internalType":"address","name":"submitter","type":"address"},
    {"indexed":false,"internalType":"string","name":"musicUrl","type":"string"},
    {"indexed":false,"internalType":"string","name":"theme","type":"string"}],
   "name":"SubmissionAdded","type":"event"},
  {"anonymous":false,"inputs":[
    {"indexed":true,"internalType":"address","name":"voter","type":"address"},
    {"indexed":true,"internalType":"uint256","name":"submissionIndex","type":"uint256"}],
   "name":"Voted","type":"event"},
  {"anonymous":false,"inputs":[
    {"indexed":true,"internalType":"address","name":"winner","type":"address"},
    {"indexed":false,"internalType":"string","name":"musicUrl","type":"string"},
    {"indexed":false,"internalType":"string","name":"theme","type":"string"},
    {"indexed":false,"internalType":"uint256","name":"votes","type":"uint256"},
    {"indexed":false,"internalType":"uint256","name":"payout","type":"uint256"}],
   "name":"WinnerSelected","type":"event"},
  {"anonymous":false,"inputs":[
    {"indexed":true,"internalType":"address","name":"voter","type":"address"},
    {"indexed":false,"internalType":"uint256","name":"reward","type":"uint256"}],
   "name":"VoterRewarded","type":"event"},
  {"anonymous":false,"inputs":[
    {"indexed":true,"internalType":"address","name":"depositor","type":"address"},
    {"indexed":false,"internalType":"uint256","name":"amount","type":"uint256"}],
   "name":"FundsDeposited","type":"event"}
]`

// contestABI is the parsed ABI, shared by gateway instances.
var contestABI = mustParseABI(contestABIJSON)

func mustParseABI(jsonStr string) abi.ABI {
	parsed, err := abi.JSON(strings.NewReader(jsonStr))
	if err != nil {
		panic("contest: invalid embedded ABI: " + err.Error())
	}
	return parsed
}
