// Copyright (c) 2018, Randall C. O'Reilly. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package diagramerr

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorsIsSentinel(t *testing.T) {
	err := &Error{Kind: ParseAttribute, ElementID: "r1", Attribute: "bbox", Value: "x"}
	assert.True(t, errors.Is(err, Sentinel(ParseAttribute)))
	assert.False(t, errors.Is(err, Sentinel(UnknownElement)))
}

func TestListAccumulates(t *testing.T) {
	var l List
	assert.False(t, l.HasErrors())
	l.Add(&Error{Kind: UnknownElement, ElementID: "foo"})
	assert.True(t, l.HasErrors())
	assert.Len(t, l.Errors, 1)
}
