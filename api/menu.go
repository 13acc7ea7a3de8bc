package api

import (
	"encoding/json"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/morikuni/failure/v2"
	"github.com/samber/lo"
)

var validate = validator.New()

// Menu is one meal offering of a day
type Menu struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
	Channel     int       `json:"channel"`
	Label       int       `json:"label"` // dietary category, 0 means none
	Prices      []Price   `json:"prices"`
	VoteBalance int       `json:"voteBalance"`
}

// Price is the amount charged for one group of customers
type Price struct {
	Tag    string  `json:"tag"`
	Amount float64 `json:"price"`
}

// Info describes the running API
type Info struct {
	Version string    `json:"version"`
	Started time.Time `json:"started"`
}

// Wire representations. Pointers distinguish missing fields from zero values.
type menuJSON struct {
	ID          *string     `json:"id" validate:"required"`
	Title       *string     `json:"title" validate:"required"`
	Description *string     `json:"description" validate:"required"`
	Date        *int64      `json:"date" validate:"required"`
	Channel     *int        `json:"channel" validate:"required"`
	Label       *int        `json:"label" validate:"required,gte=0"`
	Prices      []priceJSON `json:"prices" validate:"required,dive"`
	VoteBalance *int        `json:"voteBalance" validate:"required"`
}

type priceJSON struct {
	Tag   *string  `json:"tag" validate:"required"`
	Price *float64 `json:"price" validate:"required"`
}

type infoJSON struct {
	Version *string `json:"version" validate:"required"`
	Started *int64  `json:"started" validate:"required"`
}

type countJSON struct {
	Amount *int64 `json:"amount" validate:"required,gte=0"`
}

func (m menuJSON) toMenu() Menu {
	return Menu{
		ID:          *m.ID,
		Title:       *m.Title,
		Description: *m.Description,
		Date:        time.UnixMilli(*m.Date).UTC(),
		Channel:     *m.Channel,
		Label:       *m.Label,
		Prices: lo.Map(m.Prices, func(p priceJSON, _ int) Price {
			return Price{Tag: *p.Tag, Amount: *p.Price}
		}),
		VoteBalance: *m.VoteBalance,
	}
}

// parseMenus decodes a JSON array of menus. what names the endpoint in error messages.
func parseMenus(body []byte, what string) ([]Menu, error) {
	var raw []menuJSON
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, parseFailure(err, what)
	}

	menus := make([]Menu, 0, len(raw))
	for i, m := range raw {
		if err := validate.Struct(m); err != nil {
			return nil, failure.Wrap(parseFailure(err, what), failure.Context{"index": strconv.Itoa(i)})
		}
		menus = append(menus, m.toMenu())
	}
	return menus, nil
}

func parseInfo(body []byte) (Info, error) {
	var raw infoJSON
	if err := json.Unmarshal(body, &raw); err != nil {
		return Info{}, parseFailure(err, "api information")
	}
	if err := validate.Struct(raw); err != nil {
		return Info{}, parseFailure(err, "api information")
	}
	return Info{
		Version: *raw.Version,
		Started: time.UnixMilli(*raw.Started).UTC(),
	}, nil
}

func parseCount(body []byte) (int64, error) {
	var raw countJSON
	if err := json.Unmarshal(body, &raw); err != nil {
		return 0, parseFailure(err, "menu stats")
	}
	if err := validate.Struct(raw); err != nil {
		return 0, failure.New(ResponseParseFailure,
			failure.Message("Couldn't find property 'amount' on menu stats endpoint"),
			failure.Context{"error": err.Error()},
		)
	}
	return *raw.Amount, nil
}

func parseFailure(err error, what string) error {
	return failure.New(ResponseParseFailure,
		failure.Message("Failed to parse json from "+what),
		failure.Context{"error": err.Error()},
	)
}
