// Package query is a client-side cache for API reads.
//
// Queries are addressed by a Key tuple such as Key{"teacher-request", 7}.
// A cached value is served while fresh (StaleTime, 5 minutes by default).
// After that, or after Invalidate, the next Fetch calls the fetcher again.
// Concurrent fetches of one key are collapsed into one call, and failed
// fetches are retried once by default. Entries nobody observes are dropped
// after GCTime (10 minutes by default) by a background sweeper.
//
//	qc := query.NewClient()
//	defer qc.Close()
//
//	list, err := query.Fetch(ctx, qc, query.Key{"tags"}, api.Tags,
//		query.StaleTime(5*time.Minute))
//
// Mutations invalidate or remove key prefixes once they succeed:
//
//	_, err = query.Mutate(ctx, qc, query.Mutation[int64, *api.StatusResponse]{
//		Fn:         api.ApproveTeacherRequest,
//		Invalidate: func(int64, *api.StatusResponse) []query.Key { return []query.Key{{"teacher-requests"}} },
//		Remove:     func(id int64, _ *api.StatusResponse) []query.Key { return []query.Key{{"teacher-request", id}} },
//	}, 7)
package query
