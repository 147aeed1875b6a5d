package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAwards(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want Awards
	}{
		{name: "empty", raw: "", want: Awards{}},
		{name: "blank", raw: "   ", want: Awards{}},
		{name: "two tokens", raw: "Oscar,Globe", want: Awards{"Oscar", "Globe"}},
		{name: "trims and drops empties", raw: " Oscar , ,BAFTA,", want: Awards{"Oscar", "BAFTA"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseAwards(tt.raw))
		})
	}
}

func TestAwardsValueAndScan(t *testing.T) {
	v, err := Awards{"Oscar", "Palme d'Or"}.Value()
	require.NoError(t, err)
	assert.Equal(t, "Oscar,Palme d'Or", v)

	var scanned Awards
	require.NoError(t, scanned.Scan([]byte("Oscar,Palme d'Or")))
	assert.Equal(t, Awards{"Oscar", "Palme d'Or"}, scanned)

	require.NoError(t, scanned.Scan(nil))
	assert.Empty(t, scanned)

	assert.Error(t, scanned.Scan(42))
}

func TestAwardsValueRejectsEmbeddedComma(t *testing.T) {
	_, err := Awards{"Best Picture, Drama"}.Value()
	assert.Error(t, err)
}
