/*****************************************************************************************************************/

//	@author		Michael Roberts <michael@observerly.com>
//	@package	@observerly/sensorcore
//	@license	Copyright © 2021-2025 observerly

/*****************************************************************************************************************/

// Package frame mints the identifiers used to track an exposure through provenance storage: a
// ULID encoding when the exposure started, lexicographically sortable by capture order.
package frame

/*****************************************************************************************************************/

import (
	"io"
	"math/rand"
	"time"

	"github.com/oklog/ulid"
)

/*****************************************************************************************************************/

// ID is a frame's globally unique, time-sortable identifier.
type ID string

/*****************************************************************************************************************/

func (id ID) String() string {
	return string(id)
}

/*****************************************************************************************************************/

// NewEntropySource returns a monotonic ULID entropy source seeded from seed, so that frame IDs
// minted in a reproducible simulation run are themselves reproducible.
func NewEntropySource(seed uint64) io.Reader {
	return ulid.Monotonic(rand.New(rand.NewSource(int64(seed))), 0)
}

/*****************************************************************************************************************/

// New mints a frame ID for an exposure starting at t, drawing entropy from entropy.
func New(t time.Time, entropy io.Reader) (ID, error) {
	id, err := ulid.New(ulid.Timestamp(t), entropy)
	if err != nil {
		return "", err
	}

	return ID(id.String()), nil
}

/*****************************************************************************************************************/
