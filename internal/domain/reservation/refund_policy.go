package reservation

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
)

var ErrInvalidRefundTier = errors.New("invalid refund tier")

type RefundTier struct {
	MinLeadTime time.Duration
	Percent     int
}

type RefundPolicy interface {
	RefundFor(total Money, leadTime time.Duration) Money
}

// TieredRefundPolicy refunds the percentage of the first tier whose lead time
// is met. Without a matching tier nothing is refunded.
type TieredRefundPolicy struct {
	tiers []RefundTier
}

func NewTieredRefundPolicy(tiers ...RefundTier) (*TieredRefundPolicy, error) {
	sorted := make([]RefundTier, len(tiers))
	copy(sorted, tiers)
	for _, t := range sorted {
		if t.MinLeadTime < 0 || t.Percent < 0 || t.Percent > 100 {
			return nil, fmt.Errorf("%w: %s/%d%%", ErrInvalidRefundTier, t.MinLeadTime, t.Percent)
		}
	}
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].MinLeadTime > sorted[j].MinLeadTime })
	return &TieredRefundPolicy{tiers: sorted}, nil
}

// DefaultRefundPolicy: full refund a day ahead, half refund two hours ahead.
func DefaultRefundPolicy() *TieredRefundPolicy {
	p, _ := NewTieredRefundPolicy(
		RefundTier{MinLeadTime: 24 * time.Hour, Percent: 100},
		RefundTier{MinLeadTime: 2 * time.Hour, Percent: 50},
	)
	return p
}

// ParseRefundTiers reads "24h:100,2h:50".
func ParseRefundTiers(s string) ([]RefundTier, error) {
	var tiers []RefundTier
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		lead, pct, ok := strings.Cut(part, ":")
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrInvalidRefundTier, part)
		}
		d, err := time.ParseDuration(strings.TrimSpace(lead))
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidRefundTier, part)
		}
		p, err := strconv.Atoi(strings.TrimSpace(pct))
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidRefundTier, part)
		}
		tiers = append(tiers, RefundTier{MinLeadTime: d, Percent: p})
	}
	return tiers, nil
}

func (p *TieredRefundPolicy) RefundFor(total Money, leadTime time.Duration) Money {
	for _, t := range p.tiers {
		if leadTime >= t.MinLeadTime {
			return total.Percent(t.Percent)
		}
	}
	return Money{}
}

func (p *TieredRefundPolicy) Tiers() []RefundTier {
	out := make([]RefundTier, len(p.tiers))
	copy(out, p.tiers)
	return out
}
