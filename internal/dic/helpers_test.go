package dic

import (
	"strings"

	"github.com/banshee-data/strainmap/internal/testutil"
)

const twoByTwo = testutil.TwoByTwo

func mustReadText(s string) *SampleTable {
	t, err := ReadText(strings.NewReader(s))
	if err != nil {
		panic(err)
	}
	return t
}
