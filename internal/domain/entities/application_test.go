package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobboard-service/internal/domain"
)

func TestParseApplicationStatus(t *testing.T) {
	for _, s := range []string{"pending", "reviewed", "shortlisted", "rejected"} {
		st, err := ParseApplicationStatus(s)
		require.NoError(t, err)
		assert.Equal(t, s, string(st))
	}

	_, err := ParseApplicationStatus("hired")
	assert.True(t, domain.Is(err, domain.KindValidation))

	_, err = ParseApplicationStatus("Pending")
	assert.True(t, domain.Is(err, domain.KindValidation))
}

func TestNewApplicationDefaults(t *testing.T) {
	blank := "  "
	app := NewApplication(1, 2, nil, &blank)
	assert.Equal(t, StatusPending, app.Status)
	assert.Nil(t, app.CoverLetter)
	assert.Nil(t, app.ResumePath)
}

func TestStatusCountsTotal(t *testing.T) {
	counts := StatusCounts{StatusPending: 2, StatusShortlisted: 1}
	assert.Equal(t, int64(3), counts.Total())
}
