package main

import (
	"github.com/CosmWasm/tinyjson/jlexer"
	"github.com/CosmWasm/tinyjson/jwriter"

	"donation_registry/sdk"
)

// JSON codec for stored blobs and query responses, written against the
// tinyjson writer/lexer so the wasm build stays reflection-free.

// MarshalTinyJSON writes the project record field by field.
func (p Project) MarshalTinyJSON(w *jwriter.Writer) {
	w.RawByte('{')
	w.RawString(`"id":`)
	w.String(p.ID.String())
	w.RawString(`,"creator":`)
	w.String(p.Creator.String())
	w.RawString(`,"name":`)
	w.String(p.Name)
	w.RawString(`,"created_at":`)
	w.Int64(p.CreatedAt)
	w.RawByte('}')
}

// UnmarshalTinyJSON reads a project record, skipping unknown keys so old
// blobs survive field additions.
func (p *Project) UnmarshalTinyJSON(in *jlexer.Lexer) {
	isTopLevel := in.IsStart()
	if in.IsNull() {
		if isTopLevel {
			in.Consumed()
		}
		in.Skip()
		return
	}
	in.Delim('{')
	for !in.IsDelim('}') {
		key := in.UnsafeFieldName(false)
		in.WantColon()
		if in.IsNull() {
			in.Skip()
			in.WantComma()
			continue
		}
		switch key {
		case "id":
			if id, ok := ProjectIDFromString(in.String()); ok {
				p.ID = id
			}
		case "creator":
			p.Creator = sdk.Address(in.String())
		case "name":
			p.Name = in.String()
		case "created_at":
			p.CreatedAt = in.Int64()
		default:
			in.SkipRecursive()
		}
		in.WantComma()
	}
	in.Delim('}')
	if isTopLevel {
		in.Consumed()
	}
}

// encodeProject renders the blob stored under projectKey.
func encodeProject(p *Project) string {
	w := jwriter.Writer{}
	p.MarshalTinyJSON(&w)
	b, _ := w.BuildBytes()
	return string(b)
}

// decodeProject parses a stored blob; a nil result means the blob was broken.
func decodeProject(data string) *Project {
	in := jlexer.Lexer{Data: []byte(data)}
	var p Project
	p.UnmarshalTinyJSON(&in)
	if in.Error() != nil {
		return nil
	}
	return &p
}

// encodeDonationTotal renders the donation_get response.
func encodeDonationTotal(donor sdk.Address, id ProjectID, amount Amount) string {
	w := jwriter.Writer{}
	w.RawByte('{')
	w.RawString(`"donor":`)
	w.String(donor.String())
	w.RawString(`,"project":`)
	w.String(id.String())
	w.RawString(`,"amount":`)
	w.Int64(AmountToInt64(amount))
	w.RawByte('}')
	b, _ := w.BuildBytes()
	return string(b)
}
