package feed_usecase

import (
	"sort"

	"unmute/domain"
)

// SortKey selects the ranking rule the merger sorts by.
type SortKey int

const (
	// SortByRecency orders by CreatedAt descending.
	SortByRecency SortKey = iota
	// SortByEngagement orders by engagement score descending with
	// CreatedAt descending as tiebreak. Items without a score rank as
	// zero.
	SortByEngagement
)

// Merge combines the given lists into one ranked list with no duplicate
// (kind, id) pairs. The first occurrence of a key wins; insertion order is
// the stable-sort tiebreak.
func Merge(lists [][]*domain.ContentItem, key SortKey) []*domain.ContentItem {
	seen := make(map[domain.ContentKey]struct{})
	var merged []*domain.ContentItem

	for _, list := range lists {
		for _, item := range list {
			if item == nil {
				continue
			}
			k := item.Key()
			if _, dup := seen[k]; dup {
				continue
			}
			seen[k] = struct{}{}
			merged = append(merged, item)
		}
	}

	sortItems(merged, key)
	return merged
}

func sortItems(items []*domain.ContentItem, key SortKey) {
	switch key {
	case SortByEngagement:
		sort.SliceStable(items, func(i, j int) bool {
			si, sj := items[i].RankingScore(), items[j].RankingScore()
			if si != sj {
				return si > sj
			}
			return items[i].CreatedAt.After(items[j].CreatedAt)
		})
	default:
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].CreatedAt.After(items[j].CreatedAt)
		})
	}
}

// truncate caps a merged list at the requested page size.
func truncate(items []*domain.ContentItem, limit int) []*domain.ContentItem {
	if limit > 0 && len(items) > limit {
		return items[:limit]
	}
	return items
}

// excludeKeys filters out items whose (kind, id) pair is already present in
// the given set, preserving order.
func excludeKeys(items []*domain.ContentItem, taken map[domain.ContentKey]struct{}) []*domain.ContentItem {
	var kept []*domain.ContentItem
	for _, item := range items {
		if _, dup := taken[item.Key()]; dup {
			continue
		}
		kept = append(kept, item)
	}
	return kept
}

// keySet builds the (kind, id) set of a list.
func keySet(items []*domain.ContentItem) map[domain.ContentKey]struct{} {
	set := make(map[domain.ContentKey]struct{}, len(items))
	for _, item := range items {
		set[item.Key()] = struct{}{}
	}
	return set
}
