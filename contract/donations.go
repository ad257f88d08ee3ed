package main

import "donation_registry/sdk"

// -----------------------------------------------------------------------------
// Donations
// -----------------------------------------------------------------------------

// donationAmount reads the attached value from the first transfer.allow
// intent. No intent means an attached amount of zero, which the positivity
// guard then rejects.
func donationAmount() Amount {
	ta := getFirstTransferAllow()
	if ta == nil {
		return 0
	}
	return FloatToAmount(ta.Limit)
}

// Donate forwards the full attached amount to the project's currently stored
// creator, then bumps the (donor, project) ledger cell and emits the audit
// line. The host transaction is atomic, so a refused transfer rolls back
// everything; the transfer still runs before the ledger write so no ghost
// credit ever becomes visible.
// Payload: `projectId|message` (message 0-256 bytes) plus a transfer.allow
// intent carrying the amount.
func Donate(payload *string) *string {
	args := decodeDonateArgs(payload)

	amount := donationAmount()
	checkAmountPositive(amount)
	checkStringBounds(args.Message, 0, MessageMaxLength)

	prj := loadProject(args.ID)
	requireProjectExists(prj, args.ID)

	donor := getSenderAddress()
	requireNotCreator(prj, donor)

	raw := AmountToInt64(amount)
	if err := sdk.HiveDraw(raw, donationAsset); err != nil {
		sdk.Revert("value draw failed: "+err.Error(), ErrTransactionFailed)
	}
	if err := sdk.HiveTransfer(prj.Creator, raw, donationAsset); err != nil {
		sdk.Revert("value transfer failed: "+err.Error(), ErrTransactionFailed)
	}

	addDonated(donor, args.ID, amount)
	emitDonationEvent(args.ID, donor.String(), prj.Creator.String(), prj.Name,
		AmountToFloat(amount), args.Message, nowUnix())

	return strptr("donated to " + args.ID.String())
}

// GetDonated is a pure read of the cumulative ledger cell; pairs that never
// donated yield zero.
// Payload: `donor|projectId`.
func GetDonated(payload *string) *string {
	donor, id := decodeDonationQueryArgs(payload)
	return strptr(encodeDonationTotal(donor, id, getDonated(donor, id)))
}
