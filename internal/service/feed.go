package service

import (
	"sort"
	"strings"

	"mechshare/internal/dto"
	"mechshare/internal/models"
)

// 列表排序键
const (
	SortNewest   = "newest"
	SortOldest   = "oldest"
	SortPopular  = "popular"
	SortViews    = "views"
	SortComments = "comments"
)

// QueryFeed 对已取回的机构帖子集合执行过滤、排序和分页
// 纯函数,不修改输入切片;过滤先于排序,分页仅在请求时进行
func QueryFeed(ms []models.Mechanism, p dto.FeedParams) []models.Mechanism {
	result := make([]models.Mechanism, len(ms))
	copy(result, ms)

	result = FilterByCategories(result, p.Categories)
	result = FilterBySearch(result, p.Search)
	result = SortMechanisms(result, p.Sort)

	if p.Paginated {
		result = Paginate(result, p.Page, p.PerPage)
	}

	return result
}

// FilterByCategories 保留分类集合与过滤集合有交集的帖子
// 空过滤集合表示不过滤
func FilterByCategories(ms []models.Mechanism, categoryIDs []string) []models.Mechanism {
	if len(categoryIDs) == 0 {
		return ms
	}

	wanted := make(map[string]struct{}, len(categoryIDs))
	for _, id := range categoryIDs {
		wanted[id] = struct{}{}
	}

	var result []models.Mechanism
	for _, m := range ms {
		for _, c := range m.Categories {
			if _, ok := wanted[c.ID]; ok {
				result = append(result, m)
				break
			}
		}
	}
	return result
}

// FilterBySearch 按标题或描述做大小写不敏感的子串匹配
// 空查询串表示不过滤
func FilterBySearch(ms []models.Mechanism, query string) []models.Mechanism {
	if query == "" {
		return ms
	}

	q := strings.ToLower(query)
	var result []models.Mechanism
	for _, m := range ms {
		if strings.Contains(strings.ToLower(m.Title), q) ||
			strings.Contains(strings.ToLower(m.Description), q) {
			result = append(result, m)
		}
	}
	return result
}

// SortMechanisms 按排序键对帖子做稳定排序
// 未识别的排序键保持输入顺序;相等元素不做额外的平局处理
func SortMechanisms(ms []models.Mechanism, key string) []models.Mechanism {
	switch key {
	case SortNewest:
		sort.SliceStable(ms, func(i, j int) bool {
			return ms[i].CreatedAt.After(ms[j].CreatedAt)
		})
	case SortOldest:
		sort.SliceStable(ms, func(i, j int) bool {
			return ms[i].CreatedAt.Before(ms[j].CreatedAt)
		})
	case SortPopular:
		sort.SliceStable(ms, func(i, j int) bool {
			return ms[i].LikesCount > ms[j].LikesCount
		})
	case SortViews:
		sort.SliceStable(ms, func(i, j int) bool {
			return ms[i].ViewsCount > ms[j].ViewsCount
		})
	case SortComments:
		sort.SliceStable(ms, func(i, j int) bool {
			return ms[i].CommentsCount > ms[j].CommentsCount
		})
	}
	return ms
}

// Paginate 1起始的分页切片,超出末页返回空集合
func Paginate(ms []models.Mechanism, page, perPage int) []models.Mechanism {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		return []models.Mechanism{}
	}

	start := (page - 1) * perPage
	if start >= len(ms) {
		return []models.Mechanism{}
	}

	end := start + perPage
	if end > len(ms) {
		end = len(ms)
	}
	return ms[start:end]
}
