package it

import (
	"math"
	"math/rand"
	"time"
)

var monitoredServices = []string{
	"Authentication Service", "Database Cluster", "API Gateway",
	"File Storage", "Email Service", "Monitoring System",
	"Cache Service", "Load Balancer", "CDN", "Message Queue",
	"Web Application", "Mobile API", "Payment Gateway", "Analytics Service",
}

// timestampLayout is the wire format for IT timestamps.
const timestampLayout = "2006-01-02 15:04:05"

// generateSystemStatus draws a weighted status per service. Roughly 70% come
// out operational, 15% degraded, 5% outage and 10% maintenance. Response
// times are healthy for operational services and elevated otherwise.
func generateSystemStatus(rng *rand.Rand, now time.Time) []ServiceStatus {
	statuses := make([]ServiceStatus, 0, len(monitoredServices))
	for _, name := range monitoredServices {
		status := drawStatus(rng)
		responseTime := round2(50 + rng.Float64()*450)
		incidents := 0
		if status != "operational" {
			responseTime = round2(800 + rng.Float64()*1200)
			incidents = rng.Intn(4)
		}
		statuses = append(statuses, ServiceStatus{
			ServiceName:      name,
			Status:           status,
			ResponseTime:     responseTime,
			Uptime:           round2(99.5 + rng.Float64()*0.49),
			LastUpdated:      now.Add(-time.Duration(1+rng.Intn(60)) * time.Minute).Format(timestampLayout),
			IncidentsLast24h: incidents,
		})
	}
	return statuses
}

func drawStatus(rng *rand.Rand) string {
	switch v := rng.Float64(); {
	case v < 0.70:
		return "operational"
	case v < 0.85:
		return "degraded"
	case v < 0.90:
		return "outage"
	default:
		return "maintenance"
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
