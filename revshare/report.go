package revshare

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"github.com/revoraorg/librevshare-go/events"
)

// ReportRevenue emits a single revenue notification for (issuer, token)
// carrying the amount, the period identifier and the token's blacklist as it
// stands at call time. The blacklist read and the emission happen under one
// lock acquisition, so no concurrent blacklist mutation can be observed
// half-applied by the report. Nothing is persisted; the registry records
// intent, it never moves funds.
func (r *Registry) ReportRevenue(issuer, token common.Address, amount *big.Int, periodID uint64) error {
	if err := r.auth.RequireAuth(issuer); err != nil {
		return fmt.Errorf("%w: %w", ErrUnauthorized, err)
	}
	if amount == nil {
		return fmt.Errorf("%w: amount", ErrNilParam)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	blacklist, err := r.readAddressList(blacklistKey(token))
	if err != nil {
		return err
	}

	r.emit.Emit(events.RevenueReported{
		Issuer:    issuer,
		Token:     token,
		Amount:    new(big.Int).Set(amount),
		PeriodID:  periodID,
		Blacklist: blacklist,
	})
	return nil
}
