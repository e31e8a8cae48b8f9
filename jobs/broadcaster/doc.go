// Package broadcaster implements a background job that periodically
// scans the outbox for unacknowledged clearing events and publishes
// them to Kafka (durable stream) and NATS (live fanout).
package broadcaster
