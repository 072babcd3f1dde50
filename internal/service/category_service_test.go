package service

import (
	"testing"

	"mechshare/internal/apperr"
	"mechshare/internal/dto"
	"mechshare/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCategoryService(t *testing.T) (*CategoryService, string) {
	t.Helper()
	db := newTestDB(t)
	user := createTestUser(t, db, "creator@example.com")
	return NewCategoryService(repository.NewCategoryRepository(db)), user.ID
}

func TestCategoryCreate_EmptyName(t *testing.T) {
	svc, callerID := newCategoryService(t)

	_, err := svc.Create(callerID, &dto.CreateCategoryRequest{Name: ""})
	assert.True(t, apperr.IsValidation(err))
}

func TestCategoryCreate_DuplicateName(t *testing.T) {
	svc, callerID := newCategoryService(t)

	first, err := svc.Create(callerID, &dto.CreateCategoryRequest{Name: "力学"})
	require.NoError(t, err)
	assert.False(t, first.IsSystem)
	require.NotNil(t, first.CreatedBy)
	assert.Equal(t, callerID, *first.CreatedBy)

	_, err = svc.Create(callerID, &dto.CreateCategoryRequest{Name: "力学"})
	assert.ErrorIs(t, err, apperr.ErrConflict)

	// 重复创建后列表中只出现一次
	list, err := svc.List()
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "力学", list[0].Name)
}

func TestCategoryList_OrderedByName(t *testing.T) {
	svc, callerID := newCategoryService(t)

	for _, name := range []string{"c-charlie", "a-alpha", "b-bravo"} {
		_, err := svc.Create(callerID, &dto.CreateCategoryRequest{Name: name})
		require.NoError(t, err)
	}

	list, err := svc.List()
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "a-alpha", list[0].Name)
	assert.Equal(t, "b-bravo", list[1].Name)
	assert.Equal(t, "c-charlie", list[2].Name)
}
