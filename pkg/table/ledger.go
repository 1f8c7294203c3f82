package table

// LedgerEntry tracks a player's cumulative buy-ins and cash-outs
type LedgerEntry struct {
	BuyIn   int `json:"buyIn"`
	CashOut int `json:"cashOut"`
}

// Ledger maps a player's nickname to their running totals. It is keyed by
// nickname rather than seat so a player who leaves and returns keeps
// accumulating on the same entry.
type Ledger map[string]*LedgerEntry

// RecordBuyIn credits a buy-in to the player's entry
func (l Ledger) RecordBuyIn(nickname string, amount int) {
	l.entry(nickname).BuyIn += amount
}

// RecordCashOut credits a cash-out to the player's entry
func (l Ledger) RecordCashOut(nickname string, amount int) {
	l.entry(nickname).CashOut += amount
}

func (l Ledger) entry(nickname string) *LedgerEntry {
	entry, ok := l[nickname]
	if !ok {
		entry = &LedgerEntry{}
		l[nickname] = entry
	}

	return entry
}
