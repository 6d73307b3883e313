// Follows shopping events on NATS and prints them as they arrive.
//
//	NATS_URL=nats://localhost:4222 go run ./cmd/events_tail
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"syscall"

	"ai-shopping-list-be/internal/config"
	"ai-shopping-list-be/pkg/events"
	pktNats "ai-shopping-list-be/pkg/nats"

	"github.com/fatih/color"
)

func main() {
	durable := flag.String("durable", "events-tail", "durable consumer name")
	eventType := flag.String("type", events.TypeShoppingListGenerated, "event type to follow (\">\" for all)")
	flag.Parse()

	cfg := config.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sub, err := pktNats.NewSubscriber(cfg.App.NatsURL)
	if err != nil {
		color.Red("Failed to connect: %v", err)
		os.Exit(1)
	}
	defer sub.Close()

	err = sub.Subscribe(ctx, *eventType, *durable, func(ctx context.Context, event events.Event) error {
		printEvent(event)
		return nil
	})
	if err != nil {
		color.Red("Failed to subscribe: %v", err)
		os.Exit(1)
	}

	color.Cyan("Listening on %s (Ctrl+C to stop)", cfg.App.NatsURL)
	<-ctx.Done()
}

func printEvent(event events.Event) {
	payload := event.Payload()
	color.Green("\n[%s] %s", event.Timestamp().Format("15:04:05"), event.EventType())
	fmt.Printf("  list:  %v\n  items: %v\n", payload["list_id"], payload["item_count"])

	counts, ok := payload["category_counts"].(map[string]interface{})
	if !ok {
		return
	}
	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Printf("    %-16s %v\n", name, counts[name])
	}
}
