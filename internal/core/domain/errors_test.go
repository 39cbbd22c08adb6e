package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrors_Distinct(t *testing.T) {
	all := []error{
		ErrNotFound, ErrInvalidInput, ErrFetchFailed, ErrInvalidResponse,
		ErrRateLimited, ErrChallenged, ErrFetcherUnavailable,
	}
	for i := range all {
		for j := range all {
			if i != j {
				assert.False(t, errors.Is(all[i], all[j]), "%v should not match %v", all[i], all[j])
			}
		}
	}
}

func TestErrors_Wrapping(t *testing.T) {
	err := fmt.Errorf("fetch topics: %w", ErrChallenged)
	assert.ErrorIs(t, err, ErrChallenged)
	assert.Contains(t, err.Error(), "anti-bot")
}
