package report

import (
	"context"
	"fmt"

	"github.com/okian/rinkside/internal/adapters/feed"
	"github.com/okian/rinkside/internal/domain/classify"
	"github.com/okian/rinkside/internal/domain/model"
)

func newClient() *feed.Client {
	return feed.New(
		feed.WithBaseURL(feedURL),
		feed.WithTimeout(feedTimeout),
	)
}

// loadGame fetches and classifies one game's events along with its two
// team names.
func loadGame(ctx context.Context, client *feed.Client, gameID string) ([]model.ClassifiedEvent, []string, error) {
	events, err := client.Events(ctx, gameID)
	if err != nil {
		return nil, nil, fmt.Errorf("load events for game %s: %w", gameID, err)
	}
	teams, err := client.Teams(ctx, gameID)
	if err != nil {
		return nil, nil, fmt.Errorf("load teams for game %s: %w", gameID, err)
	}
	return classify.New().ClassifyAll(events), teams, nil
}
