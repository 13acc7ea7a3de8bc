package cli

import (
	"strconv"
	"strings"
	"time"

	"github.com/ka2n/menu/api"
	"github.com/ka2n/menu/config"
	"github.com/ka2n/menu/format"
	"github.com/morikuni/failure/v2"
)

// dateLayout accepts dd.mm.yy, leading zeros optional
const dateLayout = "2.1.06"

// parseDate parses a dd.mm.yy calendar date and rejects days that do not exist
func parseDate(s string) (time.Time, error) {
	t, err := time.Parse(dateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, failure.New(InputValidationFailure,
			failure.Message("Please provide a valid date (dd.mm.yy)"),
			failure.Context{"date": s, "error": err.Error()},
		)
	}
	return t, nil
}

func parseOffset(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, failure.New(InvalidArguments,
			failure.Message("Please provide a non-negative number of days"),
			failure.Context{"offset": s},
		)
	}
	return n, nil
}

func parseQuery(args []string) (api.Selection, error) {
	query := strings.TrimSpace(strings.Join(args, " "))
	if query == "" {
		return api.Selection{}, failure.New(InvalidArguments,
			failure.Message("Please provide a search query"),
		)
	}
	return api.Search(query), nil
}

func newPrinter(cfg config.Config, showIDs bool) *format.Printer {
	return format.NewPrinter(cfg.Format, format.Options{
		ShowIDs:  showIDs,
		LinkBase: cfg.LinkBase(),
	})
}
