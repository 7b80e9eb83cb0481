package order

import "github.com/IWeppler/el-manantial/internal/modules/schedule"

// Quote is the server-side price breakdown for an order.
type Quote struct {
	UnitPrice   int64 `json:"unit_price"`
	Subtotal    int64 `json:"subtotal"`
	DeliveryFee int64 `json:"delivery_fee"`
	Total       int64 `json:"total"`
}

// computeQuote prices an order. The applicable tier is the one with the
// highest min_quantity the quantity still satisfies; the delivery fee applies
// only to DELIVERY schedules below the free-delivery threshold (a nil
// threshold means the fee always applies).
func computeQuote(cfg *PricingConfig, sched *schedule.Schedule, quantity int) Quote {
	unit := cfg.PricePerMaple
	best := 0
	for _, tier := range cfg.Tiers {
		if tier.MinQuantity <= quantity && tier.MinQuantity > best {
			best = tier.MinQuantity
			unit = tier.Price
		}
	}

	subtotal := int64(quantity) * unit

	var fee int64
	if sched != nil && sched.Type == schedule.TypeDelivery &&
		(cfg.FreeDeliveryThreshold == nil || subtotal < *cfg.FreeDeliveryThreshold) {
		fee = cfg.DeliveryFee
	}

	return Quote{
		UnitPrice:   unit,
		Subtotal:    subtotal,
		DeliveryFee: fee,
		Total:       subtotal + fee,
	}
}
