package main

import (
	"strconv"

	"donation_registry/sdk"
)

// -----------------------------------------------------------------------------
// Donation Ledger State
// -----------------------------------------------------------------------------

// The ledger cell is a decimal string holding the cumulative scaled amount a
// donor has ever sent to a project id. Cells are created lazily on first
// donation and never deleted, even after the project ceases.

// getDonated retrieves the cumulative amount for a (donor, project) pair.
func getDonated(donor sdk.Address, id ProjectID) Amount {
	dataPtr := sdk.StateGetObject(donationKey(id, donor))
	if dataPtr == nil {
		return 0
	}
	total, err := strconv.ParseInt(*dataPtr, 10, 64)
	if err != nil {
		// a broken cell must never be read as 0: addDonated would overwrite
		// the donor's history on the next donation
		sdk.Abort("malformed ledger cell for " + donor.String() + "/" + id.String())
	}
	return Amount(total)
}

// addDonated increments the pair's cell and returns the new total.
func addDonated(donor sdk.Address, id ProjectID, amount Amount) Amount {
	total := getDonated(donor, id) + amount
	sdk.StateSetObject(donationKey(id, donor), strconv.FormatInt(int64(total), 10))
	return total
}
