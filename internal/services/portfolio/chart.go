package portfolio

import (
	"bytes"
	"context"
	"fmt"

	"github.com/wcharczuk/go-chart/v2"
)

// AllocationChart renders a PNG donut of the owner's current allocation,
// one slice per asset weighted by current value.
func (s *Service) AllocationChart(ctx context.Context, owner string) ([]byte, error) {
	if owner == "" {
		return nil, fmt.Errorf("owner is required")
	}

	assets, err := s.storage.AssetStore().ListByOwner(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("failed to load assets for '%s': %w", owner, err)
	}
	if len(assets) == 0 {
		return nil, fmt.Errorf("no assets to chart for '%s'", owner)
	}

	values := make([]chart.Value, 0, len(assets))
	for _, a := range assets {
		if a.CurrentValue <= 0 {
			continue
		}
		values = append(values, chart.Value{
			Label: a.Name,
			Value: a.CurrentValue,
		})
	}
	if len(values) == 0 {
		return nil, fmt.Errorf("no assets with positive value to chart for '%s'", owner)
	}

	donut := chart.DonutChart{
		Width:  512,
		Height: 512,
		Values: values,
	}

	var buf bytes.Buffer
	if err := donut.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("failed to render allocation chart: %w", err)
	}
	return buf.Bytes(), nil
}
