package mock

import (
	"context"

	"github.com/mstolarski/emwiki"
)

var _ emwiki.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter is a mock implementation of emwiki.DomainLimiter.
type DomainLimiter struct {
	WaitFn func(ctx context.Context, domain string) error
}

func (d *DomainLimiter) Wait(ctx context.Context, domain string) error {
	if d.WaitFn != nil {
		return d.WaitFn(ctx, domain)
	}
	return nil
}
