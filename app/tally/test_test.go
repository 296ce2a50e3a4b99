package tally_test

import (
	"github.com/usnistgov/binparser/core/testenv"
)

var (
	makeAR       = testenv.MakeAR
	bytesFromHex = testenv.BytesFromHex
)
