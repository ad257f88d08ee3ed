//go:build !test
// +build !test

package main

// Wasm entry points. The directives live here, apart from the handlers, so
// native test builds (-tags test) can call the handlers directly without
// targeting wasm.

//go:wasmexport project_create
func projectCreate(payload *string) *string { return CreateProject(payload) }

//go:wasmexport project_describe
func projectDescribe(payload *string) *string { return DescribeProject(payload) }

//go:wasmexport project_cease
func projectCease(payload *string) *string { return CeaseProject(payload) }

//go:wasmexport project_donate
func projectDonate(payload *string) *string { return Donate(payload) }

//go:wasmexport project_get
func projectGet(payload *string) *string { return GetProject(payload) }

//go:wasmexport donation_get
func donationGet(payload *string) *string { return GetDonated(payload) }
