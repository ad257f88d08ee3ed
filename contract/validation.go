package main

import (
	"fmt"

	"donation_registry/sdk"
)

// Precondition guards. Each runs before any state mutation and reverts with a
// symbol plus the offending value, so a failed call leaves no trace beyond
// the host's own error record.

// checkStringBounds reverts when the byte length of str falls outside
// [min, max]. The message carries the string itself for diagnostics.
func checkStringBounds(str string, min, max int) {
	if len(str) < min || len(str) > max {
		sdk.Revert(
			fmt.Sprintf("string length %d outside [%d,%d]: %q", len(str), min, max, str),
			ErrIncorrectStringFormat,
		)
	}
}

// checkAmountPositive reverts when the attached amount is zero or negative.
func checkAmountPositive(amount Amount) {
	if amount <= 0 {
		sdk.Revert(
			fmt.Sprintf("amount must be positive, got %d", AmountToInt64(amount)),
			ErrInsufficientFunds,
		)
	}
}

// requireCreator reverts unless caller matches the stored creator. An absent
// or ceased project has the zero creator, so any caller fails here too.
func requireCreator(prj *Project, caller sdk.Address) {
	var stored sdk.Address
	if prj != nil {
		stored = prj.Creator
	}
	if stored != caller {
		sdk.Revert(
			fmt.Sprintf("caller %s is not the project creator", caller.String()),
			ErrIllegalCaller,
		)
	}
}

// requireNotCreator blocks self-donation: the creator may not send value to
// their own project.
func requireNotCreator(prj *Project, caller sdk.Address) {
	if prj != nil && prj.Creator == caller {
		sdk.Revert(
			fmt.Sprintf("creator %s may not donate to their own project", caller.String()),
			ErrIllegalCaller,
		)
	}
}

// requireProjectExists reverts when no live project is stored under id.
func requireProjectExists(prj *Project, id ProjectID) {
	if !prj.Exists() {
		sdk.Revert(
			fmt.Sprintf("no project under id %s", id.String()),
			ErrProjectExisted,
		)
	}
}
