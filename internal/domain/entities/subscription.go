package entities

import "strings"

// Subscription is the tier a user pays for.
type Subscription string

const (
	SubscriptionFree Subscription = "FREE"
	SubscriptionPaid Subscription = "PAID"
)

func (s Subscription) IsValid() bool {
	switch s {
	case SubscriptionFree, SubscriptionPaid:
		return true
	default:
		return false
	}
}

// ParseSubscription accepts tier names case-insensitively.
func ParseSubscription(v string) (Subscription, bool) {
	s := Subscription(strings.ToUpper(strings.TrimSpace(v)))
	return s, s.IsValid()
}
