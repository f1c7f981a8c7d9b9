// Package redis stores companies, assessments and settings as flat JSON
// records in Redis.
package redis

import (
	"context"
	"fmt"

	goredis "github.com/redis/go-redis/v9"
)

const (
	companiesKey   = "fraud-scout-companies"
	settingsKey    = "fraud-scout-settings"
	assessmentsKey = "fraud-scout:assessments"
	// assessmentSeqKey issues the insertion sequence used to order index
	// members that share a creation microsecond.
	assessmentSeqKey = "fraud-scout:assessment-seq"
)

func assessmentKey(id string) string {
	return "fraud-scout:assessment:" + id
}

func companyAssessmentsKey(companyID string) string {
	return "fraud-scout:company:" + companyID + ":assessments"
}

// Config holds Redis connection parameters.
type Config struct {
	Addr     string
	Password string
	DB       int
}

// NewClient creates a client and verifies connectivity.
func NewClient(ctx context.Context, cfg Config) (*goredis.Client, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis: ping %s: %w", cfg.Addr, err)
	}
	return client, nil
}

// HealthCheck pings Redis and returns an error if the connection is unhealthy.
func HealthCheck(ctx context.Context, client *goredis.Client) error {
	if err := client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis: health check: %w", err)
	}
	return nil
}
