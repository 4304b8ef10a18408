package metrics

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var countedTables = []string{"users", "posts", "comments", "likes"}

// Collector periodically publishes estimated row counts of the forum tables
type Collector struct {
	DB       *gorm.DB
	Interval time.Duration
	Logger   *logrus.Logger
}

// Run collects until ctx is done
func (c *Collector) Run(ctx context.Context) error {
	interval := c.Interval
	if interval <= 0 {
		interval = 15 * time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			for _, table := range countedTables {
				if err := c.collectTableEstimatedCount(ctx, table); err != nil {
					c.Logger.WithError(err).WithField("table", table).Warn("Collecting table count failed")
				}
			}
		}
	}
}

func (c *Collector) collectTableEstimatedCount(ctx context.Context, table string) error {
	var count int64
	err := c.DB.WithContext(ctx).Raw(
		`SELECT reltuples::bigint AS count
				FROM pg_class
				WHERE relname = ?`, table,
	).Scan(&count).Error
	if err != nil {
		return err
	}
	tableCount.WithLabelValues(table).Set(float64(count))
	return nil
}
