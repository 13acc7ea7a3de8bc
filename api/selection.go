package api

import (
	"context"
	"fmt"
	"time"
)

// SelectionKind identifies which endpoint a Selection is served from
type SelectionKind int

const (
	SelectToday SelectionKind = iota
	SelectDate
	SelectUpcoming
	SelectSearch
)

func (k SelectionKind) String() string {
	switch k {
	case SelectToday:
		return "today"
	case SelectDate:
		return "date"
	case SelectUpcoming:
		return "upcoming"
	case SelectSearch:
		return "search"
	default:
		return fmt.Sprintf("SelectionKind(%d)", int(k))
	}
}

// Selection describes one set of menus to fetch
type Selection struct {
	Kind  SelectionKind
	Date  time.Time
	Query string
}

// Today selects the menus the service considers today's
func Today() Selection {
	return Selection{Kind: SelectToday}
}

// OnDate selects the menus of the calendar day of date
func OnDate(date time.Time) Selection {
	return Selection{Kind: SelectDate, Date: midnightUTC(date)}
}

// InDays selects the menus offset days after the local calendar day of now
func InDays(now time.Time, offset int) Selection {
	return OnDate(now.AddDate(0, 0, offset))
}

// Upcoming selects every menu yet to come
func Upcoming() Selection {
	return Selection{Kind: SelectUpcoming}
}

// Search selects the menus matching query
func Search(query string) Selection {
	return Selection{Kind: SelectSearch, Query: query}
}

// Menus fetches the menus described by sel
func (c *Client) Menus(ctx context.Context, sel Selection) ([]Menu, error) {
	switch sel.Kind {
	case SelectDate:
		return c.FetchByDate(ctx, sel.Date)
	case SelectUpcoming:
		return c.FetchUpcoming(ctx)
	case SelectSearch:
		return c.FetchSearch(ctx, sel.Query)
	default:
		return c.FetchToday(ctx)
	}
}

// midnightUTC keeps the calendar day of t in its own location and moves it to 00:00 UTC,
// which is how the service keys its days.
func midnightUTC(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
