package main

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"donation_registry/sdk"
)

const (
	creatorAddr = sdk.Address("hive:creator")
	donorAddr   = sdk.Address("hive:donor")
	otherAddr   = sdk.Address("hive:someoneelse")
)

var txCounter int

// setupTest gives every test a fresh chain with funded accounts.
func setupTest() {
	sdk.MockReset()
	sdk.MockDeposit(creatorAddr, 200_000, sdk.AssetHive)
	sdk.MockDeposit(donorAddr, 200_000, sdk.AssetHive)
	sdk.MockDeposit(otherAddr, 200_000, sdk.AssetHive)
}

// callContract drives one entry point as one chain transaction: fresh tx id,
// snapshot the host, run, and on revert restore the snapshot the way the
// chain discards a failed transaction.
func callContract(fn func(*string) *string, payload string, sender sdk.Address, intents ...sdk.Intent) (ret *string, revert *sdk.RevertError) {
	txCounter++
	sdk.MockBeginTx(fmt.Sprintf("tx-%d", txCounter), sender, intents)
	snap := sdk.TakeSnapshot()
	defer func() {
		if r := recover(); r != nil {
			re, ok := r.(*sdk.RevertError)
			if !ok {
				panic(r)
			}
			sdk.RestoreSnapshot(snap)
			ret = nil
			revert = re
		}
	}()
	ret = fn(strptr(payload))
	return ret, revert
}

// createTestProject registers a project and hands back its parsed id.
func createTestProject(t *testing.T, sender sdk.Address, name, description string) ProjectID {
	t.Helper()
	ret, revert := callContract(CreateProject, name+"|"+description, sender)
	require.Nil(t, revert, "create was expected to succeed")
	require.NotNil(t, ret)
	id, ok := ProjectIDFromString(*ret)
	require.True(t, ok, "create must return a well-formed id, got %q", *ret)
	return id
}

// donateIntent builds the transfer.allow intent carrying the attached amount.
func donateIntent(limit string) sdk.Intent {
	return sdk.Intent{
		Type: "transfer.allow",
		Args: map[string]string{"limit": limit, "token": sdk.AssetHive.String()},
	}
}

// lastLog returns the newest emitted event line, or "" when nothing fired.
func lastLog() string {
	logs := sdk.MockLogs()
	if len(logs) == 0 {
		return ""
	}
	return logs[len(logs)-1]
}
