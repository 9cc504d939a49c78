package database

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Pinger is satisfied by *mongo.Client.
type Pinger interface {
	Ping(ctx context.Context, rp *readpref.ReadPref) error
}

// HealthStatus represents current status of the database connection.
type HealthStatus struct {
	Status    string    `json:"status"`
	Mongo     bool      `json:"mongo"`
	CheckedAt time.Time `json:"checkedAt"`
}

// CheckHealth pings the primary with a short timeout.
func CheckHealth(ctx context.Context, p Pinger) HealthStatus {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	healthy := p.Ping(ctx, readpref.Primary()) == nil
	status := "ok"
	if !healthy {
		status = "degraded"
	}
	return HealthStatus{Status: status, Mongo: healthy, CheckedAt: time.Now()}
}
