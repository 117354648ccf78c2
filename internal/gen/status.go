package gen

import (
	"math"

	"shipment-generator/internal/shipment"
)

// StatusShare pairs a status with its weight or block fraction.
type StatusShare struct {
	Status shipment.Status
	Share  float64
}

// StatusPolicy assigns a status to record seq (0-based) out of total.
type StatusPolicy interface {
	Assign(src *Source, seq, total int) shipment.Status
}

// WeightedStatus draws every status independently by weight.
type WeightedStatus []StatusShare

func (w WeightedStatus) Assign(src *Source, _, _ int) shipment.Status {
	weights := make([]float64, len(w))
	for i, s := range w {
		weights[i] = s.Share
	}
	return w[src.Weighted(weights)].Status
}

// BlockStatus lays statuses out in contiguous blocks: the first Share of the
// run gets the first status, and so on. Records past the last block keep the
// last status.
type BlockStatus []StatusShare

func (b BlockStatus) Assign(_ *Source, seq, total int) shipment.Status {
	share := 0.0
	for _, s := range b {
		share += s.Share
		if float64(seq) < math.Round(share*float64(total)) {
			return s.Status
		}
	}
	return b[len(b)-1].Status
}

// Progress returns the progress percentage for status. Only in-transit
// shipments carry a drawn value; everything else gets idle.
func Progress(src *Source, status shipment.Status, idle int) int {
	if status == shipment.StatusInTransit {
		return src.IntRange(1, 99)
	}
	return idle
}
