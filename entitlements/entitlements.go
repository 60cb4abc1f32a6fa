// Package entitlements simulates the billing vendor: a fixed offerings
// catalog, purchases that grant a 30-day premium entitlement, and customer
// info persisted as one blob in the key-value store. JSON field names
// follow the vendor SDK shapes clients already consume.
package entitlements

import (
	"context"
	"encoding/json"
	"math/rand"
	"sync"
	"time"

	"github.com/pkg/errors"

	"github.com/aigenie/genie-server/internal/ident"
	"github.com/aigenie/genie-server/internal/latency"
	"github.com/aigenie/genie-server/store"
)

const customerInfoKey = "revenuecat_customer_info"

const (
	purchaseDelay      = 2 * time.Second
	subscriptionPeriod = 30 * 24 * time.Hour
)

// EntitlementPremium is the entitlement granted by every catalog package.
const EntitlementPremium = "premium"

var (
	ErrUnknownPackage = errors.New("unknown package identifier")
	ErrNoPurchases    = errors.New("no purchases to restore")
)

type Product struct {
	Identifier   string `json:"identifier"`
	Description  string `json:"description"`
	Title        string `json:"title"`
	Price        string `json:"price"`
	PriceString  string `json:"priceString"`
	CurrencyCode string `json:"currencyCode"`
}

type Package struct {
	Identifier  string  `json:"identifier"`
	PackageType string  `json:"packageType"`
	Product     Product `json:"product"`
}

type Entitlement struct {
	Identifier        string `json:"identifier"`
	IsActive          bool   `json:"isActive"`
	WillRenew         bool   `json:"willRenew"`
	ProductIdentifier string `json:"productIdentifier"`
}

type EntitlementSet struct {
	Active map[string]Entitlement `json:"active"`
	All    map[string]Entitlement `json:"all"`
}

// CustomerInfo describes the simulated purchase state of the single
// customer this store serves.
type CustomerInfo struct {
	OriginalAppUserID   string            `json:"originalAppUserId"`
	AllPurchaseDates    map[string]string `json:"allPurchaseDates"`
	ActiveSubscriptions []string          `json:"activeSubscriptions"`
	AllExpirationDates  map[string]string `json:"allExpirationDates"`
	Entitlements        EntitlementSet    `json:"entitlements"`
}

// HasActivePremium reports whether the premium entitlement is active.
func (ci *CustomerInfo) HasActivePremium() bool {
	if ci == nil {
		return false
	}
	e, ok := ci.Entitlements.Active[EntitlementPremium]
	return ok && e.IsActive
}

var catalog = []Package{
	{
		Identifier:  "premium_monthly",
		PackageType: "MONTHLY",
		Product: Product{
			Identifier:   "ai_genie_premium_monthly",
			Description:  "Unlock unlimited AI conversations, voice responses, and premium features",
			Title:        "AI Genie Premium Monthly",
			Price:        "9.99",
			PriceString:  "$9.99",
			CurrencyCode: "USD",
		},
	},
	{
		Identifier:  "premium_yearly",
		PackageType: "ANNUAL",
		Product: Product{
			Identifier:   "ai_genie_premium_yearly",
			Description:  "Best value! Full access to all premium features",
			Title:        "AI Genie Premium Yearly",
			Price:        "99.99",
			PriceString:  "$99.99",
			CurrencyCode: "USD",
		},
	},
}

type Service struct {
	store   store.Store
	nowTime func() time.Time
	sleep   latency.Sleeper
	rand    *rand.Rand
	lock    sync.Mutex
}

type Option func(*Service)

func WithNowTime(nowFunc func() time.Time) Option {
	return func(s *Service) { s.nowTime = nowFunc }
}

func WithSleeper(sleep latency.Sleeper) Option {
	return func(s *Service) { s.sleep = sleep }
}

func WithRand(r *rand.Rand) Option {
	return func(s *Service) { s.rand = r }
}

func NewService(st store.Store, options ...Option) (*Service, error) {
	if st == nil {
		return nil, errors.New("[entitlements.NewService] store is required")
	}
	svc := &Service{store: st, nowTime: time.Now, sleep: latency.Wait, rand: ident.NewSource()}
	for _, opt := range options {
		opt(svc)
	}
	return svc, nil
}

// Offerings returns the fixed package catalog.
func (s *Service) Offerings() []Package {
	offerings := make([]Package, len(catalog))
	copy(offerings, catalog)
	return offerings
}

// Purchase simulates buying the identified package for appUserID and
// persists the resulting customer info, overwriting any previous purchase
// state. appUserID may be empty, in which case a demo identifier is
// generated from the user identity when present.
func (s *Service) Purchase(ctx context.Context, packageID, appUserID string) (*CustomerInfo, error) {
	if !s.knownPackage(packageID) {
		return nil, ErrUnknownPackage
	}
	if err := s.sleep(ctx, purchaseDelay); err != nil {
		return nil, err
	}

	s.lock.Lock()
	defer s.lock.Unlock()

	now := s.nowTime()
	if appUserID == "" {
		appUserID = ident.New(s.rand, now, "user")
	}

	info := &CustomerInfo{
		OriginalAppUserID: appUserID,
		AllPurchaseDates: map[string]string{
			packageID: now.UTC().Format(time.RFC3339),
		},
		ActiveSubscriptions: []string{packageID},
		AllExpirationDates: map[string]string{
			packageID: now.Add(subscriptionPeriod).UTC().Format(time.RFC3339),
		},
		Entitlements: EntitlementSet{
			Active: map[string]Entitlement{
				EntitlementPremium: {
					Identifier:        EntitlementPremium,
					IsActive:          true,
					WillRenew:         true,
					ProductIdentifier: packageID,
				},
			},
			All: map[string]Entitlement{},
		},
	}

	if err := s.save(ctx, info); err != nil {
		return nil, errors.Wrap(err, "[Purchase] save")
	}
	return info, nil
}

// CustomerInfo returns the stored purchase state, or (nil, nil) when no
// purchase has been made. Absence is a normal result.
func (s *Service) CustomerInfo(ctx context.Context) (*CustomerInfo, error) {
	raw, ok, err := s.store.Get(ctx, customerInfoKey)
	if err != nil {
		return nil, errors.Wrap(err, "[CustomerInfo] get")
	}
	if !ok {
		return nil, nil
	}

	var info CustomerInfo
	if err := json.Unmarshal([]byte(raw), &info); err != nil {
		return nil, nil
	}
	return &info, nil
}

// Restore returns the stored purchase state or ErrNoPurchases when there
// is nothing to restore.
func (s *Service) Restore(ctx context.Context) (*CustomerInfo, error) {
	info, err := s.CustomerInfo(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "[Restore] CustomerInfo")
	}
	if info == nil {
		return nil, ErrNoPurchases
	}
	return info, nil
}

func (s *Service) knownPackage(packageID string) bool {
	for _, pkg := range catalog {
		if pkg.Identifier == packageID {
			return true
		}
	}
	return false
}

func (s *Service) save(ctx context.Context, info *CustomerInfo) error {
	data, err := json.Marshal(info)
	if err != nil {
		return err
	}
	return s.store.Set(ctx, customerInfoKey, string(data))
}
