package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sharederrors "scalehouse/internal/shared/errors"
	"scalehouse/internal/shared/logger"
)

func TestGetDocument(t *testing.T) {
	t.Run("prefers stored blob", func(t *testing.T) {
		repo := &mockTicketRepo{
			documentFunc: func(ctx context.Context, number string) ([]byte, string, error) {
				return []byte("blob bytes"), "tickets_pdf/2025/DT-2025-000001.pdf", nil
			},
		}
		store := newMockStore()
		store.written["tickets_pdf/2025/DT-2025-000001.pdf"] = []byte("file bytes")

		uc := NewGetDocumentUseCase(repo, store, logger.NewLogger())
		data, err := uc.Execute(context.Background(), "DT-2025-000001")
		require.NoError(t, err)
		assert.Equal(t, []byte("blob bytes"), data)
	})

	t.Run("falls back to file when blob missing", func(t *testing.T) {
		repo := &mockTicketRepo{
			documentFunc: func(ctx context.Context, number string) ([]byte, string, error) {
				return nil, "tickets_pdf/2025/DT-2025-000002.pdf", nil
			},
		}
		store := newMockStore()
		store.written["tickets_pdf/2025/DT-2025-000002.pdf"] = []byte("file bytes")

		uc := NewGetDocumentUseCase(repo, store, logger.NewLogger())
		data, err := uc.Execute(context.Background(), "DT-2025-000002")
		require.NoError(t, err)
		assert.Equal(t, []byte("file bytes"), data)
	})

	t.Run("missing blob and file is not found", func(t *testing.T) {
		repo := &mockTicketRepo{
			documentFunc: func(ctx context.Context, number string) ([]byte, string, error) {
				return nil, "tickets_pdf/2025/DT-2025-000003.pdf", nil
			},
		}
		uc := NewGetDocumentUseCase(repo, newMockStore(), logger.NewLogger())
		_, err := uc.Execute(context.Background(), "DT-2025-000003")
		assert.True(t, sharederrors.IsNotFoundError(err))
	})

	t.Run("rejects malformed number", func(t *testing.T) {
		uc := NewGetDocumentUseCase(&mockTicketRepo{}, newMockStore(), logger.NewLogger())
		_, err := uc.Execute(context.Background(), "not-a-number")
		assert.True(t, sharederrors.IsValidationError(err))
	})
}
