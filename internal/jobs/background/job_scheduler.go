package background

import (
	"context"
	"log"
	"time"

	"github.com/go-co-op/gocron/v2"

	"instock/internal/jobs"
)

const lowStockInterval = 15 * time.Minute

// JobScheduler runs the periodic low-stock scan.
type JobScheduler struct {
	scheduler gocron.Scheduler
	lowStock  *jobs.LowStockService
}

func NewJobScheduler(lowStock *jobs.LowStockService) (*JobScheduler, error) {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return nil, err
	}

	js := &JobScheduler{
		scheduler: scheduler,
		lowStock:  lowStock,
	}

	if _, err := scheduler.NewJob(
		gocron.DurationJob(lowStockInterval),
		gocron.NewTask(js.runLowStockCheck),
	); err != nil {
		return nil, err
	}

	return js, nil
}

func (js *JobScheduler) Start() {
	js.scheduler.Start()
}

func (js *JobScheduler) Shutdown() error {
	return js.scheduler.Shutdown()
}

func (js *JobScheduler) runLowStockCheck() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	alerts, err := js.lowStock.Check(ctx)
	if err != nil {
		log.Printf("low stock check failed: %v", err)
		return
	}
	for _, alert := range alerts {
		log.Printf("low stock: item %q (inventory %d, warehouse %d) down to %d (threshold %d)",
			alert.ItemName, alert.InventoryID, alert.WarehouseID, alert.Quantity, alert.Threshold)
	}
}
