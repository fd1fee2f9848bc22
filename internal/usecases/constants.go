package usecases

const (
	// DefaultMaxPlausibleSpeedKmh is the fallback segment speed ceiling when
	// no value is configured. Anything faster than this is treated as GPS
	// noise or vehicle use and pruned from the scored distance.
	DefaultMaxPlausibleSpeedKmh = 50.0

	// DefaultForfeitPenaltyKm is the fallback flat penalty written to the
	// ledger when a team forfeits a challenge.
	DefaultForfeitPenaltyKm = 5.0

	earthRadiusKm = 6371.0
)
