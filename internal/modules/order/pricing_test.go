package order

import (
	"testing"

	"github.com/IWeppler/el-manantial/internal/modules/schedule"
	"github.com/stretchr/testify/assert"
)

func int64p(v int64) *int64 { return &v }

func deliverySchedule() *schedule.Schedule {
	return &schedule.Schedule{DayOfWeek: "Miércoles", StartTime: "13:00", EndTime: "20:00",
		Type: schedule.TypeDelivery, IsActive: true}
}

func pickupSchedule() *schedule.Schedule {
	return &schedule.Schedule{DayOfWeek: "Sábado", StartTime: "13:00", EndTime: "20:00",
		Type: schedule.TypePickup, IsActive: true}
}

func TestComputeQuote(t *testing.T) {
	base := &PricingConfig{
		PricePerMaple:         8000,
		DeliveryFee:           1000,
		FreeDeliveryThreshold: int64p(24000),
		MinimumOrderQuantity:  1,
		Tiers:                 []PriceTier{{MinQuantity: 3, Price: 7000}},
	}

	tests := []struct {
		name     string
		cfg      *PricingConfig
		sched    *schedule.Schedule
		quantity int
		want     Quote
	}{
		{
			name:     "tiered delivery below free threshold pays the fee",
			cfg:      base,
			sched:    deliverySchedule(),
			quantity: 3,
			want:     Quote{UnitPrice: 7000, Subtotal: 21000, DeliveryFee: 1000, Total: 22000},
		},
		{
			name:     "single maple pickup at base price",
			cfg:      base,
			sched:    pickupSchedule(),
			quantity: 1,
			want:     Quote{UnitPrice: 8000, Subtotal: 8000, DeliveryFee: 0, Total: 8000},
		},
		{
			name:     "delivery at or above the threshold ships free",
			cfg:      base,
			sched:    deliverySchedule(),
			quantity: 4, // 4*7000 = 28000 >= 24000
			want:     Quote{UnitPrice: 7000, Subtotal: 28000, DeliveryFee: 0, Total: 28000},
		},
		{
			name: "highest satisfied tier wins",
			cfg: &PricingConfig{
				PricePerMaple: 8000, DeliveryFee: 1000,
				Tiers: []PriceTier{
					{MinQuantity: 5, Price: 6500},
					{MinQuantity: 3, Price: 7000},
					{MinQuantity: 10, Price: 6000},
				},
			},
			sched:    pickupSchedule(),
			quantity: 6,
			want:     Quote{UnitPrice: 6500, Subtotal: 39000, DeliveryFee: 0, Total: 39000},
		},
		{
			name: "nil threshold means delivery always pays the fee",
			cfg: &PricingConfig{
				PricePerMaple: 8000, DeliveryFee: 1000,
				Tiers: []PriceTier{{MinQuantity: 3, Price: 7000}},
			},
			sched:    deliverySchedule(),
			quantity: 100,
			want:     Quote{UnitPrice: 7000, Subtotal: 700000, DeliveryFee: 1000, Total: 701000},
		},
		{
			name:     "no schedule means no delivery fee",
			cfg:      base,
			sched:    nil,
			quantity: 2,
			want:     Quote{UnitPrice: 8000, Subtotal: 16000, DeliveryFee: 0, Total: 16000},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, computeQuote(tt.cfg, tt.sched, tt.quantity))
		})
	}
}
