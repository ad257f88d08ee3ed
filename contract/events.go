package main

import (
	"fmt"

	"donation_registry/sdk"
)

// Every mutation leaves one short-code log line carrying the full audit
// payload, so explorers can rebuild registry history without scanning
// storage diffs. Descriptions live ONLY here, never in state.

// emitProjectCreatedEvent announces a fresh project including its description.
func emitProjectCreatedEvent(id ProjectID, creator string, name string, description string, ts int64) {
	sdk.Log(fmt.Sprintf(
		"pc|id:%s|by:%s|n:%s|d:%s|t:%d",
		id.String(),
		creator,
		name,
		description,
		ts,
	))
}

// emitDescriptionUpdatedEvent carries the replacement text; replaying the
// latest pc/pu line per id yields the current description.
func emitDescriptionUpdatedEvent(id ProjectID, description string, ts int64) {
	sdk.Log(fmt.Sprintf(
		"pu|id:%s|d:%s|t:%d",
		id.String(),
		description,
		ts,
	))
}

// emitProjectCeasedEvent marks the permanent end of a project.
func emitProjectCeasedEvent(id ProjectID, ts int64) {
	sdk.Log(fmt.Sprintf(
		"pe|id:%s|t:%d",
		id.String(),
		ts,
	))
}

// emitDonationEvent records who sent how much to whom, with the project name
// inlined so indexers dont need a second lookup.
func emitDonationEvent(id ProjectID, donor string, receiver string, name string, amount float64, message string, ts int64) {
	sdk.Log(fmt.Sprintf(
		"dn|id:%s|by:%s|to:%s|n:%s|am:%f|m:%s|t:%d",
		id.String(),
		donor,
		receiver,
		name,
		amount,
		message,
		ts,
	))
}
