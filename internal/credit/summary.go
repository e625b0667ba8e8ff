package credit

// ClientSummary aggregates every credit held by one client.
type ClientSummary struct {
	ClientName     string
	ClientLastName string
	IDNumber       string
	Phone          string
	Credits        int
	ActiveCredits  int
	TotalCredit    int64 // Amount in cents
	TotalPaid      int64 // Amount in cents
}

// RemainingBalance returns the client's outstanding debt across all credits.
func (s ClientSummary) RemainingBalance() int64 {
	return s.TotalCredit - s.TotalPaid
}

// Summarize groups credits by client identity key. Each group sums the
// principal and payment amounts and counts the credits that have not been
// fully paid. The result follows first-appearance order of the input.
func Summarize(credits []*Credit) []ClientSummary {
	index := make(map[string]int, len(credits))

	var summaries []ClientSummary

	for _, c := range credits {
		key := c.IdentityKey()

		i, found := index[key]
		if !found {
			i = len(summaries)
			index[key] = i

			summaries = append(summaries, ClientSummary{
				ClientName:     c.ClientName,
				ClientLastName: c.ClientLastName,
				IDNumber:       c.IDNumber,
				Phone:          c.Phone,
			})
		}

		s := &summaries[i]
		s.Credits++
		s.TotalCredit += c.TotalAmount
		s.TotalPaid += c.TotalPaid()

		if c.Status != StatusPaid {
			s.ActiveCredits++
		}
	}

	return summaries
}
