package main

import "donation_registry/sdk"

// -----------------------------------------------------------------------------
// Project Registry State
// -----------------------------------------------------------------------------

// saveProject stores the serialized record under its id key.
func saveProject(prj *Project) {
	sdk.StateSetObject(projectKey(prj.ID), encodeProject(prj))
}

// loadProject returns nil when nothing live is stored under id. A blob whose
// creator is the zero address counts as absent too, keeping "ceased" and
// "never created" indistinguishable.
func loadProject(id ProjectID) *Project {
	ptr := sdk.StateGetObject(projectKey(id))
	if ptr == nil || *ptr == "" {
		return nil
	}
	prj := decodeProject(*ptr)
	if !prj.Exists() {
		return nil
	}
	return prj
}

// deleteProject clears the registry entry entirely. All fields reset to their
// zero values from the reader's point of view.
func deleteProject(id ProjectID) {
	sdk.StateDeleteObject(projectKey(id))
}
