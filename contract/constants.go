package main

import "donation_registry/sdk"

// -----------------------------------------------------------------------------
// Supported Assets
// -----------------------------------------------------------------------------

// donationAsset is the only accepted donation currency. The registry handles
// the platform's base unit and nothing else.
var donationAsset = sdk.AssetHive

// validAssets lists the intent tokens donate accepts.
var validAssets = []string{
	sdk.AssetHive.String(),
}

// -----------------------------------------------------------------------------
// Validation Limits
// -----------------------------------------------------------------------------

const (
	// NameMinLength is the shortest allowed project name in bytes.
	NameMinLength = 1
	// NameMaxLength is the longest allowed project name in bytes.
	NameMaxLength = 64
	// DescriptionMaxLength bounds project descriptions in bytes.
	DescriptionMaxLength = 1024
	// MessageMaxLength bounds donation messages in bytes.
	MessageMaxLength = 256
)

// -----------------------------------------------------------------------------
// Revert Symbols
// -----------------------------------------------------------------------------

const (
	// ErrIllegalCaller flags a caller who is (or is not) the project creator
	// when the operation demands the opposite.
	ErrIllegalCaller = "illegal_caller"
	// ErrIncorrectStringFormat flags a string outside its length bounds.
	ErrIncorrectStringFormat = "incorrect_string_format"
	// ErrProjectExisted flags a donation against an id with no stored creator.
	// The symbol keeps its historic name; it means the project does NOT exist.
	ErrProjectExisted = "project_existed"
	// ErrInsufficientFunds flags a non-positive attached amount.
	ErrInsufficientFunds = "insufficient_funds"
	// ErrTransactionFailed flags a value transfer the host or receiver refused.
	ErrTransactionFailed = "transaction_failed"
)

// -----------------------------------------------------------------------------
// Storage Key Prefixes
// -----------------------------------------------------------------------------

const (
	// kProjectMeta stores serialized Project blobs keyed by project id.
	kProjectMeta byte = 0x01
	// kDonationLedger stores cumulative per-(project,donor) amounts.
	kDonationLedger byte = 0x02
)
