package feed_usecase

// Pagination state transitions for a feed session. The cursor heuristic: a
// full page means more content is expected, an underfull page means the
// source is exhausted. The offset advances only for full pages, so it
// stays a multiple of the limit and never runs past what was fetched.
//
// Callers must hold the session mutex.

func advancePagination(s *FeedSession, newItemCount, limit int) {
	s.hasMore = newItemCount == limit
	if s.hasMore {
		s.offset += limit
	}
}

func resetPagination(s *FeedSession) {
	s.offset = 0
	s.items = nil
	s.hasMore = true
}
