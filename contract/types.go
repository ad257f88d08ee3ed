package main

import (
	"encoding/hex"
	"math"

	"donation_registry/sdk"
)

// AmountScale defines the precision multiplier for converting floats to int64.
const AmountScale = 1000

type Amount int64

// FloatToAmount scales human floats by AmountScale and rounds to int64 so storage stays precise.
// Example payload: FloatToAmount(1.234)
func FloatToAmount(v float64) Amount {
	return Amount(math.Round(v * AmountScale))
}

// AmountToFloat converts back to float64 for reporting or events.
// Example payload: AmountToFloat(FloatToAmount(2.5))
func AmountToFloat(v Amount) float64 {
	return float64(v) / AmountScale
}

// AmountToInt64 exposes the raw scaled int64 for Hive transfer functions.
// Example payload: AmountToInt64(FloatToAmount(3.14))
func AmountToInt64(v Amount) int64 {
	return int64(v)
}

// ProjectID is the fixed-size opaque identifier of a project, a digest over
// (creator, name, creation time). Rendered as 64 hex chars everywhere.
type ProjectID [32]byte

var zeroProjectID = ProjectID{}

// String hex-encodes the id for keys, events and payloads.
// Example payload: id.String()
func (id ProjectID) String() string {
	return hex.EncodeToString(id[:])
}

// ProjectIDFromString parses 64 hex chars back into an id, reporting whether
// the input was well formed.
func ProjectIDFromString(s string) (ProjectID, bool) {
	raw, err := hex.DecodeString(s)
	if err != nil || len(raw) != len(ProjectID{}) {
		return zeroProjectID, false
	}
	var id ProjectID
	copy(id[:], raw)
	return id, true
}

// Project is a funding target. The description is deliberately absent: it only
// ever travels in events, so replaying the log yields the current text.
type Project struct {
	ID        ProjectID
	Creator   sdk.Address
	Name      string
	CreatedAt int64
}

// Exists reports whether the record denotes a live project. A zero/absent
// creator is the "never created" marker, which cease restores.
func (p *Project) Exists() bool {
	return p != nil && p.Creator != ""
}

type CreateProjectArgs struct {
	Name        string
	Description string
}

type DescribeProjectArgs struct {
	ID          ProjectID
	Description string
}

type DonateArgs struct {
	ID      ProjectID
	Message string
}

// AddressFromString converts a human string to the platform-specific address wrapper.
// Example payload: AddressFromString("hive:alice")
func AddressFromString(s string) sdk.Address { return sdk.Address(s) }

// AddressToString turns the wrapped type back into the underlying string.
// Example payload: AddressToString(AddressFromString("hive:bob"))
func AddressToString(a sdk.Address) string { return a.String() }
