package table

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLedger(t *testing.T) {
	a := assert.New(t)
	ledger := make(Ledger)

	ledger.RecordBuyIn("alpha", 1000)
	ledger.RecordBuyIn("alpha", 500)
	ledger.RecordCashOut("alpha", 1800)

	a.Equal(1500, ledger["alpha"].BuyIn)
	a.Equal(1800, ledger["alpha"].CashOut)

	ledger.RecordCashOut("bravo", 0)
	a.Equal(0, ledger["bravo"].BuyIn)
	a.Equal(0, ledger["bravo"].CashOut)
}
