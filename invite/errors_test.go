// Copyright 2025 The InviteMap Authors
// SPDX-License-Identifier: Apache-2.0

package invite

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorMessage(t *testing.T) {
	cause := errors.New("connection refused")

	err := NewError(ErrorTypeDataSourceUnavailable, "fetching invite list", cause)
	assert.Equal(t, "fetching invite list: connection refused", err.Error())
	assert.ErrorIs(t, err, cause)

	bare := NewError(ErrorTypeLocationNotFound, "unknown location", nil)
	assert.Equal(t, "unknown location", bare.Error())
}

func TestErrorClassification(t *testing.T) {
	tests := []struct {
		name                           string
		err                            error
		notFound, unavailable, corrupt bool
	}{
		{
			name:     "location not found",
			err:      NewError(ErrorTypeLocationNotFound, "x", nil),
			notFound: true,
		},
		{
			name:        "wrapped data source error",
			err:         fmt.Errorf("starting: %w", NewError(ErrorTypeDataSourceUnavailable, "x", nil)),
			unavailable: true,
		},
		{
			name:    "corrupt state",
			err:     NewError(ErrorTypePersistenceReadCorrupt, "x", errors.New("bad json")),
			corrupt: true,
		},
		{
			name: "plain error",
			err:  errors.New("location not found"),
		},
		{
			name: "unknown type",
			err:  NewError(ErrorTypeUnknown, "x", nil),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.notFound, IsLocationNotFound(tt.err))
			assert.Equal(t, tt.unavailable, IsDataSourceUnavailable(tt.err))
			assert.Equal(t, tt.corrupt, IsPersistenceReadCorrupt(tt.err))
		})
	}
}

func TestErrorTypeString(t *testing.T) {
	assert.Equal(t, "location not found", ErrorTypeLocationNotFound.String())
	assert.Equal(t, "data source unavailable", ErrorTypeDataSourceUnavailable.String())
	assert.Equal(t, "persistence read corrupt", ErrorTypePersistenceReadCorrupt.String())
	assert.Equal(t, "unknown", ErrorType(42).String())
}
