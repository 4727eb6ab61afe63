package domain

// Denominations are the coin values used by Change, largest first.
var Denominations = []int{25, 10, 5, 1}

// Change decomposes amount cents into the fewest coins, keyed by
// denomination. Every denomination is present in the result, possibly with
// a zero count.
func Change(amount int64) (map[int]int64, error) {
	if amount < 0 {
		return nil, NewValidationErrorWithValue("amount", "cannot be negative", amount)
	}

	counts := make(map[int]int64, len(Denominations))
	remaining := amount

	for _, d := range Denominations {
		counts[d] = remaining / int64(d)
		remaining %= int64(d)
	}

	return counts, nil
}
