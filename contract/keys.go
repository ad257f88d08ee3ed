package main

import "donation_registry/sdk"

// projectKey builds the storage key for a project blob: prefix + raw id bytes.
func projectKey(id ProjectID) string {
	buf := make([]byte, 0, 1+len(id))
	buf = append(buf, kProjectMeta)
	buf = append(buf, id[:]...)
	return string(buf)
}

// donationKey mixes project id plus donor bytes so the ledger needs no nested
// maps in host storage. Id first keeps one project's donors contiguous.
func donationKey(id ProjectID, donor sdk.Address) string {
	donorStr := AddressToString(donor)
	buf := make([]byte, 0, 1+len(id)+len(donorStr))
	buf = append(buf, kDonationLedger)
	buf = append(buf, id[:]...)
	buf = append(buf, donorStr...)
	return string(buf)
}
