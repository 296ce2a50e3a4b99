package report_test

import (
	"github.com/usnistgov/binparser/core/testenv"
)

var makeAR = testenv.MakeAR
