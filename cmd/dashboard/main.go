// The dashboard is the booth admin view as a terminal program: it polls the
// order API, rings an alert when new orders arrive, shows pending orders
// with how long they have been waiting, and keeps the revenue report
// current.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"sync"
	"syscall"
	"time"

	"festival-orders/aggregate"
	"festival-orders/client"
	"festival-orders/config"
	"festival-orders/models"
	"festival-orders/notify"
	"festival-orders/refresh"
	"festival-orders/staleness"
	"festival-orders/store"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	base := os.Getenv("API_BASE_URL")
	if base == "" {
		base = "http://localhost:8080"
	}

	api := client.New(base)
	orders := store.New()
	notifier := buildNotifier()

	warning, critical := config.StaleThresholds()
	thresholds := staleness.Thresholds{Warning: warning, Critical: critical}
	aMax, bMax := config.ZoneBounds()
	opts := aggregate.Options{
		OnlyProcessed: !config.RevenueAllOrders(),
		Zones:         aggregate.ZoneConfig{AMax: aMax, BMax: bMax},
	}

	loop := refresh.Start(api.Orders, refresh.Config{
		Interval:   config.RefreshInterval(),
		OnSnapshot: orders.Replace,
		OnNewPending: func() {
			notifier.NewPending(countPending(orders.Snapshot()))
		},
	})
	defer loop.Stop()

	// Waiting list polls on its own; it shares nothing with the order loop.
	var waitingMu sync.Mutex
	var waiting []models.WaitingView
	go func() {
		ticker := time.NewTicker(config.RefreshInterval())
		defer ticker.Stop()
		for {
			ctx, cancel := context.WithTimeout(context.Background(), config.RefreshInterval())
			entries, err := api.AdminWaitingList(ctx)
			cancel()
			if err != nil {
				log.Printf("dashboard: waiting list fetch failed: %v", err)
			} else {
				waitingMu.Lock()
				waiting = entries
				waitingMu.Unlock()
			}
			<-ticker.C
		}
	}()

	// The 1-second display tick is independent of the network polls: a slow
	// fetch must never freeze the elapsed timers.
	render := time.NewTicker(time.Second)
	defer render.Stop()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	log.Printf("📋 dashboard polling %s every %s", base, config.RefreshInterval())
	for {
		select {
		case <-stop:
			return
		case <-render.C:
			waitingMu.Lock()
			w := waiting
			waitingMu.Unlock()
			draw(orders.Snapshot(), w, thresholds, opts)
		}
	}
}

func buildNotifier() notify.Notifier {
	sinks := notify.Multi{notify.Bell{}}
	token := os.Getenv("TELEGRAM_TOKEN")
	chat, _ := strconv.ParseInt(os.Getenv("TELEGRAM_CHAT_ID"), 10, 64)
	if token != "" && chat != 0 {
		tg, err := notify.NewTelegram(token, chat)
		if err != nil {
			log.Printf("dashboard: telegram disabled: %v", err)
		} else {
			sinks = append(sinks, tg)
		}
	}
	return sinks
}

func countPending(orders []models.OrderView) int {
	n := 0
	for _, o := range orders {
		if !o.Processed {
			n++
		}
	}
	return n
}

func draw(orders []models.OrderView, waiting []models.WaitingView, th staleness.Thresholds, opts aggregate.Options) {
	elapsed := staleness.ComputeElapsed(orders, time.Now().UTC())
	report := aggregate.Aggregate(orders, opts)

	fmt.Print("\033[2J\033[H")
	fmt.Printf("🎪 Festival Booth — %s\n\n", time.Now().Format("15:04:05"))

	fmt.Printf("💸 Total revenue: %d\n", report.TotalRevenue)
	for _, zone := range []string{aggregate.ZoneA, aggregate.ZoneB, aggregate.ZoneOther} {
		if amount, ok := report.ZoneRevenue[zone]; ok {
			fmt.Printf("   %-6s %d\n", zone, amount)
		}
	}
	if shares := aggregate.TopStaff(report); len(shares) > 0 {
		fmt.Println("👥 Staff credit:")
		for _, s := range shares {
			fmt.Printf("   %-12s %.0f\n", s.Name, s.Amount)
		}
	}

	fmt.Printf("\n⏳ Pending orders (%d):\n", countPending(orders))
	for _, o := range orders {
		if o.Processed {
			continue
		}
		secs := elapsed[o.ID]
		fmt.Printf("  #%-4d table %-4s %-10s %s %s  %d\n",
			o.ID, o.Table, o.Name, marker(th.Severity(secs)), staleness.FormatElapsed(secs), o.Total)
	}

	fmt.Printf("\n🪑 Waiting (%d):\n", len(waiting))
	for _, w := range waiting {
		fmt.Printf("  #%-4d %-10s %s party of %d\n", w.ID, w.Name, w.Phone, w.TableSize)
	}
}

func marker(s staleness.Severity) string {
	switch s {
	case staleness.Critical:
		return "🔴"
	case staleness.Warning:
		return "🟡"
	default:
		return "🟢"
	}
}
