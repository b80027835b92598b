package contest

import (
	"strings"
	"time"
)

// Duration of one contest round, measured from the contract's reported
// start timestamp.
const Duration = 24 * time.Hour

// Submission is one entry in the currently open contest.
type Submission struct {
	Submitter string
	MusicURL  string
	Theme     string
}

// ContestSnapshot is a point-in-time read of the open contest. It is not
// cached: every poll produces a fresh snapshot. All monetary values are in
// the smallest currency unit, held as base-10 strings; conversion to
// display units happens only at render time.
type ContestSnapshot struct {
	Submissions    []Submission
	TotalVotes     int64
	TotalFunds     string // wei, decimal string
	StartTimestamp int64  // unix seconds
	Voters         []string
}

// HasVoted reports whether addr is in the snapshot's voted-address set.
// The comparison is case-insensitive because wallets report addresses in
// mixed checksum casing. This gate is a UX optimization only; the contract
// enforces one vote per address.
func (s *ContestSnapshot) HasVoted(addr string) bool {
	if addr == "" {
		return false
	}
	for _, v := range s.Voters {
		if strings.EqualFold(v, addr) {
			return true
		}
	}
	return false
}

// EndTime returns when the contest round closes.
func (s *ContestSnapshot) EndTime() time.Time {
	return time.Unix(s.StartTimestamp, 0).Add(Duration)
}

// WinnerRecord is one flat row from the contract's historical winner list.
type WinnerRecord struct {
	Submitter  string
	MusicURL   string
	Theme      string
	Prompt     string
	Votes      int64
	Payout     string // wei, decimal string
	Timestamp  int64  // unix seconds
	VoterShare string // wei, decimal string
}

// ContestResult groups the winners of a single past contest. Grouping is
// derived from the flat records, never persisted.
type ContestResult struct {
	Theme      string
	Timestamp  int64
	VoterShare string
	Winners    []WinnerRecord
}

type resultKey struct {
	theme      string
	timestamp  int64
	voterShare string
}

// GroupWinners folds flat winner records into per-contest groups keyed by
// (theme, timestamp, voterShare), preserving first-seen contest order and
// record order within each contest. Grouping is idempotent: regrouping the
// flattened output yields the same groups.
func GroupWinners(records []WinnerRecord) []ContestResult {
	var out []ContestResult
	index := make(map[resultKey]int)

	for _, r := range records {
		key := resultKey{theme: r.Theme, timestamp: r.Timestamp, voterShare: r.VoterShare}
		if i, ok := index[key]; ok {
			out[i].Winners = append(out[i].Winners, r)
			continue
		}
		index[key] = len(out)
		out = append(out, ContestResult{
			Theme:      r.Theme,
			Timestamp:  r.Timestamp,
			VoterShare: r.VoterShare,
			Winners:    []WinnerRecord{r},
		})
	}
	return out
}

// FlattenResults is the inverse of GroupWinners.
func FlattenResults(results []ContestResult) []WinnerRecord {
	var out []WinnerRecord
	for _, c := range results {
		out = append(out, c.Winners...)
	}
	return out
}
