// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks user input before it reaches storage or the
// network.
//
// A Validator validates a value as a whole or, when field names are given,
// only those fields. This lets commands check the part of an input they
// accept from the user without failing on fields they fill in later.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {
	// Validate validates the provided input and optionally restricts
	// validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
