package service

import (
	"testing"
	"time"

	"mechshare/internal/dto"
	"mechshare/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mechWithCategories(id string, createdAt time.Time, categoryIDs ...string) models.Mechanism {
	var cats []models.Category
	for _, cid := range categoryIDs {
		cats = append(cats, models.Category{ID: cid, Name: cid})
	}
	return models.Mechanism{
		ID:          id,
		Title:       "メカニズム " + id,
		Description: "説明 " + id,
		CreatedAt:   createdAt,
		Categories:  cats,
	}
}

func feedFixture() []models.Mechanism {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	return []models.Mechanism{
		mechWithCategories("m1", base.Add(1*time.Hour), "mechanics"),
		mechWithCategories("m2", base.Add(2*time.Hour), "mechanics", "wave"),
		mechWithCategories("m3", base.Add(3*time.Hour), "thermo"),
		mechWithCategories("m4", base.Add(4*time.Hour)),
	}
}

func ids(ms []models.Mechanism) []string {
	var out []string
	for _, m := range ms {
		out = append(out, m.ID)
	}
	return out
}

func TestFilterByCategories_EmptySetKeepsAll(t *testing.T) {
	ms := feedFixture()
	assert.Len(t, FilterByCategories(ms, nil), 4)
	assert.Len(t, FilterByCategories(ms, []string{}), 4)
}

func TestFilterByCategories_Intersection(t *testing.T) {
	ms := feedFixture()

	got := FilterByCategories(ms, []string{"mechanics"})
	assert.Equal(t, []string{"m1", "m2"}, ids(got))

	got = FilterByCategories(ms, []string{"wave", "thermo"})
	assert.Equal(t, []string{"m2", "m3"}, ids(got))

	got = FilterByCategories(ms, []string{"quantum"})
	assert.Empty(t, got)
}

func TestFilter_OrderIndependent(t *testing.T) {
	ms := feedFixture()

	a := FilterBySearch(FilterByCategories(ms, []string{"mechanics"}), "m2")
	b := FilterByCategories(FilterBySearch(ms, "m2"), []string{"mechanics"})
	assert.Equal(t, ids(a), ids(b))
}

func TestFilterBySearch_CaseInsensitive(t *testing.T) {
	ms := []models.Mechanism{
		{ID: "a", Title: "Gear Train", Description: "basic"},
		{ID: "b", Title: "Linkage", Description: "Uses a GEAR internally"},
		{ID: "c", Title: "Cam", Description: "no match"},
	}

	got := FilterBySearch(ms, "gear")
	assert.Equal(t, []string{"a", "b"}, ids(got))
}

func TestFilterBySearch_Multibyte(t *testing.T) {
	ms := []models.Mechanism{
		{ID: "a", Title: "歯車機構A", Description: "desc"},
		{ID: "b", Title: "歯車機構B", Description: "desc"},
		{ID: "c", Title: "リンク機構", Description: "desc"},
	}

	got := FilterBySearch(ms, "歯車")
	assert.Equal(t, []string{"a", "b"}, ids(got))
}

func TestSortMechanisms_NewestOldestReversed(t *testing.T) {
	ms := feedFixture()

	newest := SortMechanisms(append([]models.Mechanism{}, ms...), SortNewest)
	oldest := SortMechanisms(append([]models.Mechanism{}, ms...), SortOldest)

	require.Equal(t, []string{"m4", "m3", "m2", "m1"}, ids(newest))

	// 无平局时oldest恰好是newest的逆序
	for i := range newest {
		assert.Equal(t, newest[i].ID, oldest[len(oldest)-1-i].ID)
	}
}

func TestSortMechanisms_EngagementCounters(t *testing.T) {
	ms := []models.Mechanism{
		{ID: "a", LikesCount: 1, ViewsCount: 30, CommentsCount: 2},
		{ID: "b", LikesCount: 5, ViewsCount: 10, CommentsCount: 9},
		{ID: "c", LikesCount: 3, ViewsCount: 20, CommentsCount: 4},
	}

	assert.Equal(t, []string{"b", "c", "a"},
		ids(SortMechanisms(append([]models.Mechanism{}, ms...), SortPopular)))
	assert.Equal(t, []string{"a", "c", "b"},
		ids(SortMechanisms(append([]models.Mechanism{}, ms...), SortViews)))
	assert.Equal(t, []string{"b", "c", "a"},
		ids(SortMechanisms(append([]models.Mechanism{}, ms...), SortComments)))
}

func TestSortMechanisms_StableOnTies(t *testing.T) {
	ms := []models.Mechanism{
		{ID: "a", LikesCount: 3},
		{ID: "b", LikesCount: 3},
		{ID: "c", LikesCount: 3},
	}

	// 相等元素保持输入顺序
	assert.Equal(t, []string{"a", "b", "c"}, ids(SortMechanisms(ms, SortPopular)))
}

func TestPaginate_PartitionAndPastEnd(t *testing.T) {
	ms := feedFixture() // 4件
	perPage := 3

	page1 := Paginate(ms, 1, perPage)
	page2 := Paginate(ms, 2, perPage)
	page3 := Paginate(ms, 3, perPage)

	assert.Len(t, page1, 3)
	assert.Len(t, page2, 1)
	assert.Empty(t, page3)

	// 各页拼接恰好还原完整序列
	var all []models.Mechanism
	all = append(all, page1...)
	all = append(all, page2...)
	assert.Equal(t, ids(ms), ids(all))
}

func TestPaginate_PageBelowOne(t *testing.T) {
	ms := feedFixture()
	assert.Equal(t, ids(Paginate(ms, 1, 2)), ids(Paginate(ms, 0, 2)))
}

func TestQueryFeed_DoesNotMutateInput(t *testing.T) {
	ms := feedFixture()
	original := ids(ms)

	QueryFeed(ms, dto.FeedParams{Sort: SortOldest})

	assert.Equal(t, original, ids(ms))
}

func TestQueryFeed_Composed(t *testing.T) {
	ms := feedFixture()

	got := QueryFeed(ms, dto.FeedParams{
		Categories: []string{"mechanics"},
		Sort:       SortNewest,
		Page:       1,
		PerPage:    1,
		Paginated:  true,
	})

	require.Len(t, got, 1)
	assert.Equal(t, "m2", got[0].ID)
}
