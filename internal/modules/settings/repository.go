package settings

import "context"

// Repository defines data access for the settings singleton.
type Repository interface {
	// Get retrieves the settings row with its price tiers, or sql.ErrNoRows
	// if the configuration was never initialized.
	Get(ctx context.Context) (*Settings, error)

	// Update applies the changed fields and, when tiers is non-nil, replaces
	// all price tiers, in one transaction.
	Update(ctx context.Context, s *Settings, tiers *[]PriceTierInput) (*Settings, error)
}
