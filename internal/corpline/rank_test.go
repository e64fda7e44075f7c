package corpline_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CorporateFormFiling/Florida-Renewals/internal/corpline"
)

func TestSearch_ExactDocMatchFirst(t *testing.T) {
	p := corpline.NewDefault()
	candidates := []corpline.Candidate{
		{DocumentNumber: "L100", CorpLine: "L100 ACME CORP IDOMP"},
		{DocumentNumber: "L200", CorpLine: "L200 ZENITH LLC IDOMP"},
	}

	results := p.Search(candidates, "L200", 10)
	require.Len(t, results, 2)
	assert.Equal(t, "L200", results[0].DocumentNumber)
	assert.Equal(t, "ZENITH LLC", results[0].EntityName)
	assert.Equal(t, "L100", results[1].DocumentNumber)
}

func TestSearch_NamePrefixBeforeAlphabetical(t *testing.T) {
	p := corpline.NewDefault()
	candidates := []corpline.Candidate{
		{DocumentNumber: "L1", CorpLine: "L1 ALPHA TRADING IDOMP"},
		{DocumentNumber: "L2", CorpLine: "L2 ZEN GARDENS IDOMP"},
		{DocumentNumber: "L3", CorpLine: "L3 ZEBRA HOLDINGS IDOMP"},
	}

	results := p.Search(candidates, "ZE", 10)
	require.Len(t, results, 3)
	assert.Equal(t, "ZEBRA HOLDINGS", results[0].EntityName)
	assert.Equal(t, "ZEN GARDENS", results[1].EntityName)
	assert.Equal(t, "ALPHA TRADING", results[2].EntityName)
}

func TestSearch_SummaryCarriesPrincipalCityState(t *testing.T) {
	p := corpline.NewDefault()
	candidates := []corpline.Candidate{
		{DocumentNumber: "L1", CorpLine: "L1 ACME CORP IDOMP 1 MAIN ST MIAMI FL 33139"},
	}

	results := p.Search(candidates, "ACME", 10)
	require.Len(t, results, 1)
	assert.Equal(t, "MIAMI", results[0].PrincipalCity)
	assert.Equal(t, "FL", results[0].PrincipalState)
}

func TestSearch_LimitClamped(t *testing.T) {
	p := corpline.NewDefault()
	var candidates []corpline.Candidate
	for _, doc := range []string{"L1", "L2", "L3"} {
		candidates = append(candidates, corpline.Candidate{
			DocumentNumber: doc,
			CorpLine:       doc + " SOME COMPANY IDOMP",
		})
	}

	t.Run("zero_limit_becomes_one", func(t *testing.T) {
		assert.Len(t, p.Search(candidates, "SOME", 0), 1)
	})

	t.Run("negative_limit_becomes_one", func(t *testing.T) {
		assert.Len(t, p.Search(candidates, "SOME", -5), 1)
	})

	t.Run("limit_truncates", func(t *testing.T) {
		assert.Len(t, p.Search(candidates, "SOME", 2), 2)
	})
}
