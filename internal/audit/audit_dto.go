package audit

import (
	"strings"
	"time"

	auditerrors "go-integration/internal/audit/errors"
	"go-integration/internal/domain"
	"go-integration/internal/shared/apperror"
)

type TrailQuery struct {
	SourceModule string `form:"source_module"`
	TargetModule string `form:"target_module"`
	EntityType   string `form:"entity_type"`
	EntityID     string `form:"entity_id"`
	StartDate    string `form:"start_date"`
	EndDate      string `form:"end_date"`
}

// toFilter parses the query. A bare end date covers the whole day.
func (q TrailQuery) toFilter() (Filter, error) {
	f := Filter{
		EntityType: strings.TrimSpace(q.EntityType),
		EntityID:   strings.TrimSpace(q.EntityID),
	}

	if q.SourceModule != "" {
		m, ok := domain.ParseModule(q.SourceModule)
		if !ok {
			return Filter{}, apperror.ErrInvalidModule
		}
		f.SourceModule = m
	}
	if q.TargetModule != "" {
		m, ok := domain.ParseModule(q.TargetModule)
		if !ok {
			return Filter{}, apperror.ErrInvalidModule
		}
		f.TargetModule = m
	}

	if q.StartDate != "" {
		t, _, err := parseDate(q.StartDate)
		if err != nil {
			return Filter{}, err
		}
		f.StartDate = &t
	}
	if q.EndDate != "" {
		t, dateOnly, err := parseDate(q.EndDate)
		if err != nil {
			return Filter{}, err
		}
		if dateOnly {
			t = t.Add(24*time.Hour - time.Nanosecond)
		}
		f.EndDate = &t
	}

	if f.StartDate != nil && f.EndDate != nil && f.StartDate.After(*f.EndDate) {
		return Filter{}, auditerrors.ErrInvalidDateRange
	}

	return f, nil
}

func parseDate(v string) (time.Time, bool, error) {
	if t, err := time.Parse(time.RFC3339, v); err == nil {
		return t, false, nil
	}
	t, err := time.Parse(time.DateOnly, v)
	if err != nil {
		return time.Time{}, false, auditerrors.ErrInvalidDate
	}
	return t, true, nil
}
