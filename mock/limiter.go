package mock

import (
	"context"

	hndigest "github.com/chris-buckminster/hn-daily-digest"
)

var _ hndigest.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter is a mock implementation of hndigest.DomainLimiter.
type DomainLimiter struct {
	WaitFn func(ctx context.Context, domain string) error
}

func (d *DomainLimiter) Wait(ctx context.Context, domain string) error {
	return d.WaitFn(ctx, domain)
}
