package main

import (
	"strconv"
	"strings"

	"donation_registry/sdk"
)

// Payloads are pipe-delimited strings. The free-text field always sits last
// and is split off with SplitN, so descriptions and messages may contain
// pipes themselves.

// decodeCreateProjectArgs unpacks `name|description` for project_create calls.
func decodeCreateProjectArgs(payload *string) *CreateProjectArgs {
	raw := unwrapPayload(payload, "create payload requires name|description")
	parts := strings.SplitN(raw, "|", 2)
	args := &CreateProjectArgs{
		Name: strings.TrimSpace(parts[0]),
	}
	if len(parts) > 1 {
		args.Description = parts[1]
	}
	return args
}

// decodeDescribeProjectArgs unpacks `projectId|description` for
// project_describe calls. An empty description is legal.
func decodeDescribeProjectArgs(payload *string) *DescribeProjectArgs {
	raw := unwrapPayload(payload, "describe payload requires projectId|description")
	parts := strings.SplitN(raw, "|", 2)
	if len(parts) < 2 {
		sdk.Abort("describe payload requires projectId|description")
	}
	return &DescribeProjectArgs{
		ID:          parseProjectIDField(parts[0]),
		Description: parts[1],
	}
}

// decodeCeaseArgs expects only the project id.
func decodeCeaseArgs(payload *string) ProjectID {
	raw := unwrapPayload(payload, "cease payload requires projectId")
	return parseProjectIDField(raw)
}

// decodeDonateArgs unpacks `projectId|message`; the attached amount travels
// separately as a transfer.allow intent.
func decodeDonateArgs(payload *string) *DonateArgs {
	raw := unwrapPayload(payload, "donate payload requires projectId|message")
	parts := strings.SplitN(raw, "|", 2)
	args := &DonateArgs{
		ID: parseProjectIDField(parts[0]),
	}
	if len(parts) > 1 {
		args.Message = parts[1]
	}
	return args
}

// decodeProjectQueryArgs expects only the project id.
func decodeProjectQueryArgs(payload *string) ProjectID {
	raw := unwrapPayload(payload, "query payload requires projectId")
	return parseProjectIDField(raw)
}

// decodeDonationQueryArgs unpacks `donor|projectId` for donation_get calls.
func decodeDonationQueryArgs(payload *string) (sdk.Address, ProjectID) {
	raw := unwrapPayload(payload, "query payload requires donor|projectId")
	parts := strings.SplitN(raw, "|", 2)
	if len(parts) < 2 {
		sdk.Abort("query payload requires donor|projectId")
	}
	return AddressFromString(strings.TrimSpace(parts[0])), parseProjectIDField(parts[1])
}

// parseProjectIDField decodes the hex id field, aborting on malformed input.
// A bad id is a call-convention error, not part of the error taxonomy.
func parseProjectIDField(field string) ProjectID {
	id, ok := ProjectIDFromString(strings.TrimSpace(field))
	if !ok {
		sdk.Abort("invalid project id: " + field)
	}
	return id
}

// unwrapPayload trims quotes and whitespace, aborting if the payload is empty.
func unwrapPayload(payload *string, errMsg string) string {
	if payload == nil {
		sdk.Abort(errMsg)
	}
	raw := strings.TrimSpace(*payload)
	if raw == "" {
		sdk.Abort(errMsg)
	}
	if len(raw) >= 2 {
		first := raw[0]
		last := raw[len(raw)-1]
		if (first == '"' && last == '"') || (first == '\'' && last == '\'') {
			if unquoted, err := strconv.Unquote(raw); err == nil {
				return unquoted
			}
			raw = strings.TrimSpace(raw[1 : len(raw)-1])
			if raw == "" {
				sdk.Abort(errMsg)
			}
		}
	}
	return raw
}
