package commands

import (
	"testing"
)

func TestDf(t *testing.T) {
	cases := goldenTestSuite{
		"no-arg": {Args: []string{"df"}},
	}

	cases.Run(t, Df)
}
