package mcp

import (
	"context"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

// Stats totals the walker counters recorded since the server started.
type Stats struct {
	Runs      int64 `json:"runs"`
	Processed int64 `json:"processed"`
	Failed    int64 `json:"failed"`
}

func collectStats(ctx context.Context, reader sdkmetric.Reader) (Stats, error) {
	var rm metricdata.ResourceMetrics
	if err := reader.Collect(ctx, &rm); err != nil {
		return Stats{}, err
	}

	var stats Stats
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			sum, ok := m.Data.(metricdata.Sum[int64])
			if !ok {
				continue
			}
			for _, dp := range sum.DataPoints {
				switch m.Name {
				case "translate_workflows.runs":
					stats.Runs += dp.Value
				case "translate_workflows.records":
					outcome, _ := dp.Attributes.Value("outcome")
					switch outcome.AsString() {
					case "processed":
						stats.Processed += dp.Value
					case "failed":
						stats.Failed += dp.Value
					}
				}
			}
		}
	}
	return stats, nil
}
