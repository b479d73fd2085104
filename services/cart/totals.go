package cart

import "tripcart/models"

// TotalAmount sums accommodation totals and experience prices.
// Nearby suggestions carry no price and never contribute.
func (s *Store) TotalAmount() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.totalAmountLocked()
}

// TotalItems counts every stay and experience plus the selected suggestions.
func (s *Store) TotalItems() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.totalItemsLocked()
}

// Totals reads both derived values under a single lock.
func (s *Store) Totals() models.CartTotals {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return models.CartTotals{
		TotalAmount: s.totalAmountLocked(),
		TotalItems:  s.totalItemsLocked(),
	}
}

func (s *Store) totalAmountLocked() float64 {
	var total float64
	for _, a := range s.accommodations {
		total += a.TotalAmount
	}
	for _, e := range s.experiences {
		total += e.Price
	}
	return total
}

func (s *Store) totalItemsLocked() int {
	count := len(s.accommodations) + len(s.experiences)
	for _, sg := range s.suggestions {
		if sg.Selected {
			count++
		}
	}
	return count
}
