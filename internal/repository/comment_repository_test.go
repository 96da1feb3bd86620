package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommentRepository_Create(t *testing.T) {
	db := newTestDB()
	repo := NewRepository(db)
	ctx := context.Background()

	post, err := repo.Post.Create(ctx, "A", "x", 1)
	require.NoError(t, err)

	t.Run("Комментарий к существующему посту", func(t *testing.T) {
		comment, err := repo.Comment.Create(ctx, post.ID, "ivan", "привет")

		require.NoError(t, err)
		assert.Equal(t, 1, comment.ID)
		assert.Equal(t, post.ID, comment.PostID)
	})

	t.Run("Пост не найден", func(t *testing.T) {
		comment, err := repo.Comment.Create(ctx, 99, "ivan", "привет")

		assert.Nil(t, comment)
		assert.ErrorIs(t, err, ErrPostNotFound)
	})
}

func TestCommentRepository_Order(t *testing.T) {
	db := newTestDB()
	repo := NewRepository(db)
	ctx := context.Background()

	first, err := repo.Post.Create(ctx, "A", "x", 1)
	require.NoError(t, err)
	second, err := repo.Post.Create(ctx, "B", "y", 1)
	require.NoError(t, err)

	// interleave comments between the two posts
	_, err = repo.Comment.Create(ctx, first.ID, "a", "1")
	require.NoError(t, err)
	_, err = repo.Comment.Create(ctx, second.ID, "b", "2")
	require.NoError(t, err)
	_, err = repo.Comment.Create(ctx, first.ID, "c", "3")
	require.NoError(t, err)

	t.Run("Порядок вставки сохраняется", func(t *testing.T) {
		comments, err := repo.Comment.GetByPostID(ctx, first.ID)

		require.NoError(t, err)
		require.Len(t, comments, 2)
		assert.Equal(t, "a", comments[0].Author)
		assert.Equal(t, "c", comments[1].Author)
	})

	t.Run("Группировка по постам", func(t *testing.T) {
		grouped, err := repo.Comment.GroupByPost(ctx)

		require.NoError(t, err)
		assert.Len(t, grouped[first.ID], 2)
		assert.Len(t, grouped[second.ID], 1)
	})
}
