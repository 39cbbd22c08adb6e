package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// ListingKind identifies a topic listing.
type ListingKind string

// Available listings.
const (
	ListingTop    ListingKind = "top"
	ListingHot    ListingKind = "hot"
	ListingLatest ListingKind = "latest"
)

// IsValid returns true if the listing kind is recognised.
func (k ListingKind) IsValid() bool {
	switch k {
	case ListingTop, ListingHot, ListingLatest:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (k ListingKind) String() string {
	return string(k)
}

// Period is the time window of the top listing.
type Period string

// Available periods.
const (
	PeriodDaily     Period = "daily"
	PeriodWeekly    Period = "weekly"
	PeriodMonthly   Period = "monthly"
	PeriodQuarterly Period = "quarterly"
	PeriodYearly    Period = "yearly"
	PeriodAll       Period = "all"
)

// DefaultPeriod is used for the top listing when none is given.
const DefaultPeriod = PeriodWeekly

// IsValid returns true if the period is recognised.
func (p Period) IsValid() bool {
	switch p {
	case PeriodDaily, PeriodWeekly, PeriodMonthly, PeriodQuarterly, PeriodYearly, PeriodAll:
		return true
	default:
		return false
	}
}

// Order is the sort key of the latest listing.
type Order string

// Available orders.
const (
	OrderCreated  Order = "created"
	OrderActivity Order = "activity"
	OrderViews    Order = "views"
	OrderPosts    Order = "posts"
	OrderLikes    Order = "likes"
)

// IsValid returns true if the order is recognised.
func (o Order) IsValid() bool {
	switch o {
	case OrderCreated, OrderActivity, OrderViews, OrderPosts, OrderLikes:
		return true
	default:
		return false
	}
}

// CategoryRef narrows a listing to one category.
// Discourse addresses category listings by slug and id together.
type CategoryRef struct {
	Slug string
	ID   int
}

// IsZero reports whether no category was given.
func (c CategoryRef) IsZero() bool {
	return c.Slug == "" && c.ID == 0
}

// String returns the slug/id form.
func (c CategoryRef) String() string {
	if c.IsZero() {
		return ""
	}
	return fmt.Sprintf("%s/%d", c.Slug, c.ID)
}

// ParseCategoryRef parses "slug/id". An empty string yields the zero ref.
func ParseCategoryRef(s string) (CategoryRef, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return CategoryRef{}, nil
	}

	slug, idStr, ok := strings.Cut(s, "/")
	if !ok || slug == "" {
		return CategoryRef{}, fmt.Errorf("%w: category must be slug/id, got %q", ErrInvalidInput, s)
	}
	id, err := strconv.Atoi(idStr)
	if err != nil || id <= 0 {
		return CategoryRef{}, fmt.Errorf("%w: category id must be a positive integer, got %q", ErrInvalidInput, idStr)
	}
	return CategoryRef{Slug: slug, ID: id}, nil
}

// ListingRequest describes one topic listing fetch.
type ListingRequest struct {
	Kind     ListingKind
	Page     int
	Period   Period // top only
	Order    Order  // optional
	Category CategoryRef
}

// Validate checks the request and fills the default period for top.
func (r *ListingRequest) Validate() error {
	if !r.Kind.IsValid() {
		return fmt.Errorf("%w: unknown listing %q", ErrInvalidInput, r.Kind)
	}
	if r.Page < 0 {
		return fmt.Errorf("%w: page must be >= 0", ErrInvalidInput)
	}
	if r.Kind == ListingTop {
		if r.Period == "" {
			r.Period = DefaultPeriod
		}
		if !r.Period.IsValid() {
			return fmt.Errorf("%w: unknown period %q", ErrInvalidInput, r.Period)
		}
	}
	if r.Order != "" && !r.Order.IsValid() {
		return fmt.Errorf("%w: unknown order %q", ErrInvalidInput, r.Order)
	}
	return nil
}
