package usecase

// maxBuyOrderLength is imposed by the payment gateway.
const maxBuyOrderLength = 26

// ValidateBuyOrder checks the merchant order code against gateway constraints.
func ValidateBuyOrder(buyOrder string) bool {
	if buyOrder == "" || len(buyOrder) > maxBuyOrderLength {
		return false
	}
	for i := 0; i < len(buyOrder); i++ {
		c := buyOrder[i]
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'z':
		case c >= 'A' && c <= 'Z':
		case c == '-' || c == '_':
		default:
			return false
		}
	}
	return true
}
