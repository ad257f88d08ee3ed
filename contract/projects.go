package main

import (
	"crypto/sha256"
	"encoding/binary"

	"donation_registry/sdk"
)

// -----------------------------------------------------------------------------
// Project Lifecycle
// -----------------------------------------------------------------------------

// deriveProjectID digests (creator, name, creation time) into the fixed-size
// id. The derivation is deterministic on purpose: a second create with the
// same triple in the same second lands on the same id and overwrites the
// previous entry, which the registry accepts as last-write-wins.
func deriveProjectID(creator sdk.Address, name string, createdAt int64) ProjectID {
	h := sha256.New()
	h.Write([]byte(creator.String()))
	h.Write([]byte{0})
	h.Write([]byte(name))
	var ts [8]byte
	binary.BigEndian.PutUint64(ts[:], uint64(createdAt))
	h.Write(ts[:])
	var id ProjectID
	copy(id[:], h.Sum(nil))
	return id
}

// CreateProject registers a new funding target for the caller.
// Payload: `name|description` (name 1-64 bytes, description 0-1024 bytes).
// The description is emitted, never stored.
func CreateProject(payload *string) *string {
	args := decodeCreateProjectArgs(payload)
	checkStringBounds(args.Name, NameMinLength, NameMaxLength)
	checkStringBounds(args.Description, 0, DescriptionMaxLength)

	creator := getSenderAddress()
	now := nowUnix()
	id := deriveProjectID(creator, args.Name, now)

	prj := Project{
		ID:        id,
		Creator:   creator,
		Name:      args.Name,
		CreatedAt: now,
	}
	saveProject(&prj)

	emitProjectCreatedEvent(id, creator.String(), args.Name, args.Description, now)
	return strptr(id.String())
}

// DescribeProject re-describes a project via the event log only; primary
// state stays untouched.
// Payload: `projectId|description` (description 0-1024 bytes).
func DescribeProject(payload *string) *string {
	args := decodeDescribeProjectArgs(payload)

	prj := loadProject(args.ID)
	requireCreator(prj, getSenderAddress())
	checkStringBounds(args.Description, 0, DescriptionMaxLength)

	emitDescriptionUpdatedEvent(args.ID, args.Description, nowUnix())
	return strptr("description updated for " + args.ID.String())
}

// CeaseProject permanently terminates a project by clearing its registry
// entry. Subsequent reads see the zero record; subsequent donations fail the
// existence guard; a second cease fails the creator guard.
// Payload: `projectId`.
func CeaseProject(payload *string) *string {
	id := decodeCeaseArgs(payload)

	prj := loadProject(id)
	requireCreator(prj, getSenderAddress())

	deleteProject(id)
	emitProjectCeasedEvent(id, nowUnix())
	return strptr("project ceased: " + id.String())
}

// GetProject is a pure read: no guards, no events, no side effects. Absent or
// ceased ids yield the zero-valued record.
// Payload: `projectId`.
func GetProject(payload *string) *string {
	id := decodeProjectQueryArgs(payload)
	prj := loadProject(id)
	if prj == nil {
		prj = &Project{}
	}
	return strptr(encodeProject(prj))
}
