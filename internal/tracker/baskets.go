package tracker

// Estimated world population for 2025; one basket serves a household.
const (
	worldPopulation = 8_100_000_000
	peoplePerBasket = 4
	totalBaskets    = (worldPopulation + peoplePerBasket - 1) / peoplePerBasket
)

// BasketsDelivered estimates how many baskets have been delivered at the
// given completion percentage (0-100).
func BasketsDelivered(completionPercentage float64) int64 {
	if completionPercentage <= 0 {
		return 0
	}
	if completionPercentage >= 100 {
		return totalBaskets
	}
	return int64(float64(totalBaskets) * completionPercentage / 100)
}
