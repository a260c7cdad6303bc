package experience

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validExperience() *Experience {
	end := "2024-06"
	return &Experience{
		Company:   "Acme",
		Role:      "Engineer",
		StartDate: "2022-01",
		EndDate:   &end,
	}
}

func TestValidate_PastPositionNeedsEndDate(t *testing.T) {
	e := validExperience()
	e.EndDate = nil

	assert.ErrorIs(t, e.Validate(), ErrEndDateRequired)

	empty := ""
	e.EndDate = &empty
	assert.ErrorIs(t, e.Validate(), ErrEndDateRequired)
}

func TestValidate_CurrentPositionClearsEndDate(t *testing.T) {
	e := validExperience()
	e.Current = true

	require.NoError(t, e.Validate())
	assert.Nil(t, e.EndDate)
}

func TestValidate_RequiredFields(t *testing.T) {
	e := validExperience()
	e.Company = ""
	assert.Error(t, e.Validate())

	e = validExperience()
	e.Role = ""
	assert.Error(t, e.Validate())

	e = validExperience()
	e.StartDate = ""
	assert.Error(t, e.Validate())
}

func TestValidate_PastPositionWithEndDate(t *testing.T) {
	assert.NoError(t, validExperience().Validate())
}
