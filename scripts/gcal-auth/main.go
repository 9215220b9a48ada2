// Command gcal-auth authorizes the Google Calendar mirror once and stores the
// OAuth token next to the service.
//
// Usage:
//
//	go run ./scripts/gcal-auth -credentials google-credentials.json -token token.json -calendar primary
//
// Open the printed URL, sign in, and paste the authorization code back. The
// token is checked by listing the calendar's events for the coming week.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"

	"bnapp/pkg/gcalendar"
	"bnapp/pkg/log"
)

func main() {
	credsPath := flag.String("credentials", "google-credentials.json", "OAuth desktop app credentials file")
	tokenPath := flag.String("token", "token.json", "where to store the token")
	calendarID := flag.String("calendar", gcalendar.DefaultCalendarID, "calendar to check access against")
	flag.Parse()

	ctx := context.Background()
	logger := log.Init(log.ZapConfig{Level: "info", Encoding: "console", ColorEnabled: true})

	data, err := os.ReadFile(*credsPath)
	if err != nil {
		logger.Fatalf(ctx, "Failed to read credentials file %q: %v", *credsPath, err)
	}

	cfg, err := google.ConfigFromJSON(data, calendar.CalendarScope)
	if err != nil {
		logger.Fatalf(ctx, "Failed to parse credentials (need an OAuth desktop app file): %v", err)
	}

	fmt.Println("1. Open this URL and sign in with the calendar's Google account:")
	fmt.Println()
	fmt.Println(cfg.AuthCodeURL("bnapp", oauth2.AccessTypeOffline))
	fmt.Println()
	fmt.Print("2. Paste the authorization code: ")

	code, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		logger.Fatalf(ctx, "Failed to read authorization code: %v", err)
	}

	tok, err := cfg.Exchange(ctx, strings.TrimSpace(code))
	if err != nil {
		logger.Fatalf(ctx, "Failed to exchange authorization code: %v", err)
	}

	if err := gcalendar.SaveToken(*tokenPath, tok); err != nil {
		logger.Fatalf(ctx, "%v", err)
	}
	logger.Infof(ctx, "Token saved to %s", *tokenPath)

	client, err := gcalendar.NewClientFromHTTP(ctx, cfg.Client(ctx, tok), gcalendar.Options{CalendarID: *calendarID})
	if err != nil {
		logger.Fatalf(ctx, "%v", err)
	}
	now := time.Now()
	events, err := client.ListEvents(ctx, gcalendar.ListEventsRequest{TimeMin: now, TimeMax: now.AddDate(0, 0, 7), MaxResults: 50})
	if err != nil {
		logger.Fatalf(ctx, "Token saved but calendar %q is not readable: %v", *calendarID, err)
	}
	logger.Infof(ctx, "Calendar %q reachable, %d events in the coming week. Restart the API to enable the calendar mirror", *calendarID, len(events))
}
