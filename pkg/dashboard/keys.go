package dashboard

import (
	"time"

	"github.com/hajar-aswad/Learnzone/pkg/api"
	"github.com/hajar-aswad/Learnzone/pkg/query"
)

var (
	KeyAuthUser         = query.Key{"auth", "user"}
	KeyTeacherRequests  = query.Key{"teacher-requests"}
	KeyApprovedTeachers = query.Key{"approved-teachers"}
	KeyStudents         = query.Key{"students"}
	KeyTags             = query.Key{"tags"}
	KeyTagsByType       = query.Key{"tags", "by-type"}
	KeyContentTypes     = query.Key{"content-types"}
	KeyContentRequests  = query.Key{"content-requests"}
	KeyStats            = query.Key{"dashboard", "stats"}
)

func KeyTeacherRequest(id int64) query.Key { return query.Key{"teacher-request", id} }

func KeyTag(id int64) query.Key { return query.Key{"tag", id} }

func KeyFile(name string) query.Key { return query.Key{"file", name} }

func KeyMonthlyStats(m api.Metric) query.Key {
	return query.Key{"dashboard", "stats", "monthly", string(m)}
}

// Window is how long a query stays fresh and how long it is kept once
// nothing observes it.
type Window struct {
	Stale time.Duration
	GC    time.Duration
}

var (
	// ReviewWindow covers queues that change as staff work through them.
	ReviewWindow = Window{Stale: 2 * time.Minute, GC: 5 * time.Minute}
	DetailWindow = Window{Stale: 5 * time.Minute, GC: 10 * time.Minute}
	FileWindow   = Window{Stale: 10 * time.Minute, GC: 30 * time.Minute}
	StatsWindow  = Window{Stale: 2 * time.Minute, GC: 5 * time.Minute}
)

func (w Window) options() []query.QueryOption {
	return []query.QueryOption{
		query.StaleTime(w.Stale),
		query.GCTime(w.GC),
		query.RetryIf(retryable),
	}
}
