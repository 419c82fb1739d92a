package appointment

import "github.com/groomly/salon-scheduler/internal/models"

// DefaultDurationMin is the fallback when neither the professional's
// override nor the catalog carries a duration.
const DefaultDurationMin = 60

// ResolveDuration returns the service duration in minutes for a
// professional. Precedence: per-professional override, then catalog,
// then the fixed fallback. Never fails on a missing record.
func ResolveDuration(override *models.ProfessionalPrice, svc *models.Service) int {
	if override != nil && override.Active && override.DurationMin != nil && *override.DurationMin > 0 {
		return *override.DurationMin
	}
	if svc != nil && svc.DurationMin > 0 {
		return svc.DurationMin
	}
	return DefaultDurationMin
}

// ResolvePrice returns the price snapshot for a booking: override price,
// then catalog fixed price, then the low end of the price band.
func ResolvePrice(override *models.ProfessionalPrice, svc *models.Service) float64 {
	if override != nil && override.Active && override.Price != nil && *override.Price > 0 {
		return *override.Price
	}
	if svc == nil {
		return 0
	}
	if svc.Price > 0 {
		return svc.Price
	}
	return svc.PriceMin
}
