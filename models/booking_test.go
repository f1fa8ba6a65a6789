package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBookingReference(t *testing.T) {
	assert.Equal(t, "BOOKSM1", BookingReference(1))
	assert.Equal(t, "BOOKSM1042", BookingReference(1042))
}

func TestBookingStatusRank(t *testing.T) {
	assert.Equal(t, 0, BookingStatusRank(BookingStatusOpen))
	assert.Equal(t, 0, BookingStatusRank(""))
	assert.Equal(t, 0, BookingStatusRank("garbage"))
	assert.Equal(t, 1, BookingStatusRank(BookingStatusPartial))
	assert.Equal(t, 2, BookingStatusRank(BookingStatusClosed))

	// legacy rows spell closed as "close"
	assert.Equal(t, 2, BookingStatusRank("close"))
}

func TestBookingPatchIsEmpty(t *testing.T) {
	assert.True(t, BookingPatch{}.IsEmpty())

	wr := "WR-9"
	assert.False(t, BookingPatch{WrNo: &wr}.IsEmpty())
}
