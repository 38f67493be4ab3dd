package ports

import (
	"context"
	"route-refresh-service/internal/telemetry"
)

// Port: the hand-off boundary for emitted telemetry events. Upload
// transport and batching live behind this interface.
type TelemetrySink interface {
	// Accept a sealed reroute event for delivery.
	SendReroute(ctx context.Context, event *telemetry.RerouteEvent) error
}
