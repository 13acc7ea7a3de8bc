// Package api implements the client for the menu service HTTP API.
//
// The api package provides:
// - Typed menu, price and service information records
// - JSON decoding with required field checks
// - Endpoint helpers for today's, dated, upcoming and searched menus
// - Selection of a menu set from command-line style input
package api
