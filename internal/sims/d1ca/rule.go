package d1ca

// Neighborhood is the number of cells summed to pick the next state.
const Neighborhood = 5

// RuleTable decodes the low six bits of order, least significant first, into
// the next-state table indexed by neighbourhood sum.
func RuleTable(order uint32) [Neighborhood + 1]uint8 {
	var rule [Neighborhood + 1]uint8
	for s := range rule {
		rule[s] = uint8(order % 2)
		order /= 2
	}
	return rule
}
