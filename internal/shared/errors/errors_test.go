package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommitErrorMessages(t *testing.T) {
	cause := fmt.Errorf("disk full")

	t.Run("write failure leaves nothing on disk", func(t *testing.T) {
		err := NewCommitError("DT-2025-000007", "", cause, nil)
		assert.Empty(t, err.OrphanPath)
		assert.Contains(t, err.Error(), "no document left on disk")
		assert.NotContains(t, err.Error(), "removed")
	})

	t.Run("commit failure with successful cleanup", func(t *testing.T) {
		err := NewCommitError("DT-2025-000007", "tickets_pdf/2025/DT-2025-000007.pdf", cause, nil)
		assert.Empty(t, err.OrphanPath)
		assert.Contains(t, err.Error(), "no document left on disk")
	})

	t.Run("failed cleanup reports the orphan path", func(t *testing.T) {
		cleanup := fmt.Errorf("permission denied")
		err := NewCommitError("DT-2025-000007", "tickets_pdf/2025/DT-2025-000007.pdf", cause, cleanup)
		assert.Equal(t, "tickets_pdf/2025/DT-2025-000007.pdf", err.OrphanPath)
		assert.Contains(t, err.Error(), "orphan cleanup failed")
		assert.Contains(t, err.Error(), err.OrphanPath)
	})

	t.Run("unwraps to the commit cause", func(t *testing.T) {
		err := NewCommitError("DT-2025-000007", "", cause, nil)
		require.True(t, errors.Is(err, cause))
	})
}
