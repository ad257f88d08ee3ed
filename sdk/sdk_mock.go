//go:build test
// +build test

package sdk

import (
	"errors"
	"strconv"
	"sync"
)

// RevertError is how Revert/Abort unwind in native test builds. The chain
// traps execution for us in wasm; here the panic value carries the symbol so
// harnesses can assert on it and roll the host back.
type RevertError struct {
	Msg    string
	Symbol string
}

func (e *RevertError) Error() string {
	return e.Symbol + ": " + e.Msg
}

// mockHost is a deterministic stand-in for the chain: kv state, per
// (account,asset) balances, captured logs and a settable env. One mutex
// serializes calls the same way the ledger serializes transactions.
type mockHost struct {
	mu           sync.Mutex
	state        map[string]string
	balances     map[string]int64
	logs         []string
	env          Env
	failTransfer bool
}

var host = &mockHost{
	state:    map[string]string{},
	balances: map[string]int64{},
	env:      defaultEnv(),
}

func defaultEnv() Env {
	return Env{
		ContractId:  "contract:donation_registry",
		TxId:        "tx-0",
		BlockId:     "block-0",
		BlockHeight: 0,
		Timestamp:   "2025-01-01T00:00:00",
		Sender:      Sender{Address: "hive:someone"},
		Caller:      Caller{Address: "hive:someone"},
	}
}

func balanceKey(addr Address, asset Asset) string {
	return addr.String() + "/" + asset.String()
}

// --- host surface (mirrors sdk.go) ---

func Log(s string) {
	host.mu.Lock()
	defer host.mu.Unlock()
	host.logs = append(host.logs, s)
}

func Abort(msg string) {
	panic(&RevertError{Msg: msg, Symbol: "abort"})
}

func Revert(msg string, symbol string) {
	panic(&RevertError{Msg: msg, Symbol: symbol})
}

func StateSetObject(key string, value string) {
	host.mu.Lock()
	defer host.mu.Unlock()
	host.state[key] = value
}

func StateGetObject(key string) *string {
	host.mu.Lock()
	defer host.mu.Unlock()
	val, ok := host.state[key]
	if !ok {
		return nil
	}
	return &val
}

func StateDeleteObject(key string) {
	host.mu.Lock()
	defer host.mu.Unlock()
	delete(host.state, key)
}

func GetEnv() Env {
	host.mu.Lock()
	defer host.mu.Unlock()
	return host.env
}

func GetEnvKey(key string) *string {
	host.mu.Lock()
	defer host.mu.Unlock()
	var val string
	switch key {
	case "tx.id":
		val = host.env.TxId
	case "block.timestamp":
		val = host.env.Timestamp
	case "block.height":
		val = strconv.FormatUint(host.env.BlockHeight, 10)
	case "contract.id":
		val = host.env.ContractId
	default:
		return nil
	}
	return &val
}

func GetBalance(address Address, asset Asset) int64 {
	host.mu.Lock()
	defer host.mu.Unlock()
	return host.balances[balanceKey(address, asset)]
}

func HiveDraw(amount int64, asset Asset) error {
	host.mu.Lock()
	defer host.mu.Unlock()
	from := host.env.Sender.Address
	if host.balances[balanceKey(from, asset)] < amount {
		return errors.New("insufficient balance for draw")
	}
	host.balances[balanceKey(from, asset)] -= amount
	host.balances[balanceKey(Address(host.env.ContractId), asset)] += amount
	return nil
}

func HiveTransfer(to Address, amount int64, asset Asset) error {
	host.mu.Lock()
	defer host.mu.Unlock()
	if host.failTransfer {
		return errors.New("transfer rejected by receiver")
	}
	contract := Address(host.env.ContractId)
	if host.balances[balanceKey(contract, asset)] < amount {
		return errors.New("insufficient contract balance")
	}
	host.balances[balanceKey(contract, asset)] -= amount
	host.balances[balanceKey(to, asset)] += amount
	return nil
}

// --- test controls ---

// MockReset wipes state, balances, logs and env back to a fresh chain.
func MockReset() {
	host.mu.Lock()
	defer host.mu.Unlock()
	host.state = map[string]string{}
	host.balances = map[string]int64{}
	host.logs = nil
	host.env = defaultEnv()
	host.failTransfer = false
}

// MockBeginTx starts a new transaction as the given sender, bumping tx.id so
// per-tx caches in the contract refresh.
func MockBeginTx(txID string, sender Address, intents []Intent) {
	host.mu.Lock()
	defer host.mu.Unlock()
	host.env.TxId = txID
	host.env.Sender = Sender{Address: sender, RequiredAuths: []Address{sender}}
	host.env.Caller = Caller{Address: sender}
	host.env.Intents = intents
}

// MockSetTimestamp overrides the block timestamp for expiry-style checks.
func MockSetTimestamp(ts string) {
	host.mu.Lock()
	defer host.mu.Unlock()
	host.env.Timestamp = ts
}

// MockDeposit credits an account so it can fund draws.
func MockDeposit(addr Address, amount int64, asset Asset) {
	host.mu.Lock()
	defer host.mu.Unlock()
	host.balances[balanceKey(addr, asset)] += amount
}

// MockFailTransfers makes every outgoing transfer fail, emulating a receiver
// that rejects incoming value.
func MockFailTransfers(fail bool) {
	host.mu.Lock()
	defer host.mu.Unlock()
	host.failTransfer = fail
}

// MockLogs returns a copy of everything the contract logged so far.
func MockLogs() []string {
	host.mu.Lock()
	defer host.mu.Unlock()
	out := make([]string, len(host.logs))
	copy(out, host.logs)
	return out
}

// MockSnapshot captures state and balances so a harness can restore them
// after a revert, reproducing the chain's all-or-nothing execution.
type MockSnapshot struct {
	state    map[string]string
	balances map[string]int64
	logCount int
}

func TakeSnapshot() MockSnapshot {
	host.mu.Lock()
	defer host.mu.Unlock()
	snap := MockSnapshot{
		state:    make(map[string]string, len(host.state)),
		balances: make(map[string]int64, len(host.balances)),
		logCount: len(host.logs),
	}
	for k, v := range host.state {
		snap.state[k] = v
	}
	for k, v := range host.balances {
		snap.balances[k] = v
	}
	return snap
}

func RestoreSnapshot(snap MockSnapshot) {
	host.mu.Lock()
	defer host.mu.Unlock()
	host.state = snap.state
	host.balances = snap.balances
	host.logs = host.logs[:snap.logCount]
}
