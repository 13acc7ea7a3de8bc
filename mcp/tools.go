package mcp

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/ka2n/menu/api"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/mitchellh/mapstructure"
)

var validate = validator.New()

type tools struct {
	client *api.Client
	now    func() time.Time
}

func (t *tools) serverTools() []server.ServerTool {
	return []server.ServerTool{
		newServerTool(t.fetchMenus()),
		newServerTool(t.fetchAPIInfo()),
	}
}

type fetchMenusArguments struct {
	When   string `mapstructure:"when" validate:"required,oneof=today tomorrow next date search upcoming"`
	Offset int    `mapstructure:"offset" validate:"gte=0"`
	Date   string `mapstructure:"date" validate:"required_if=When date"`
	Query  string `mapstructure:"query" validate:"required_if=When search"`
}

func (a fetchMenusArguments) selection(now time.Time) (api.Selection, error) {
	switch a.When {
	case "tomorrow":
		return api.InDays(now, 1), nil
	case "next":
		return api.InDays(now, a.Offset), nil
	case "date":
		d, err := time.Parse(time.DateOnly, a.Date)
		if err != nil {
			return api.Selection{}, err
		}
		return api.OnDate(d), nil
	case "search":
		return api.Search(a.Query), nil
	case "upcoming":
		return api.Upcoming(), nil
	default:
		return api.Today(), nil
	}
}

func (t *tools) fetchMenus() (tool mcp.Tool, handler server.ToolHandlerFunc) {
	return mcp.NewTool(
			"fetch_menus",
			mcp.WithDescription("Fetch cafeteria menus with title, description, dietary label and prices"),
			mcp.WithString("when", mcp.Required(),
				mcp.Description("Which menus to fetch"),
				mcp.Enum("today", "tomorrow", "next", "date", "search", "upcoming"),
			),
			mcp.WithNumber("offset", mcp.Description("Days in the future, used with when=next")),
			mcp.WithString("date", mcp.Description("Date as YYYY-MM-DD, used with when=date")),
			mcp.WithString("query", mcp.Description("Search query, used with when=search")),
		), func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			var args fetchMenusArguments
			if err := mapstructure.Decode(req.Params.Arguments, &args); err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			if err := validate.StructCtx(ctx, args); err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			sel, err := args.selection(t.now())
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			menus, err := t.client.Menus(ctx, sel)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			b, err := json.Marshal(menus)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			return mcp.NewToolResultText(string(b)), nil
		}
}

func (t *tools) fetchAPIInfo() (tool mcp.Tool, handler server.ToolHandlerFunc) {
	return mcp.NewTool(
			"fetch_api_info",
			mcp.WithDescription("Fetch the version, start time and number of menus of the menu api"),
		), func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			info, err := t.client.FetchInfo(ctx)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			count, err := t.client.FetchMenuCount(ctx)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			type APIInfo struct {
				URL     string    `json:"url"`
				Version string    `json:"version"`
				Started time.Time `json:"started"`
				Menus   int64     `json:"menus"`
			}

			b, err := json.Marshal(APIInfo{
				URL:     t.client.BaseURL(),
				Version: info.Version,
				Started: info.Started,
				Menus:   count,
			})
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			return mcp.NewToolResultText(string(b)), nil
		}
}
