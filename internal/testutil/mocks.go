package testutil

import (
	"context"
	"math"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/pratik-mahalle/gigmarket/internal/domain/info"
	"github.com/pratik-mahalle/gigmarket/internal/domain/offer"
	"github.com/pratik-mahalle/gigmarket/internal/domain/order"
	"github.com/pratik-mahalle/gigmarket/internal/domain/profile"
	"github.com/pratik-mahalle/gigmarket/internal/domain/review"
	"github.com/pratik-mahalle/gigmarket/internal/domain/user"
	apperrors "github.com/pratik-mahalle/gigmarket/internal/pkg/errors"
)

// MockUserRepository is an in-memory user.Repository for service tests
type MockUserRepository struct {
	mu     sync.Mutex
	users  map[int64]*user.User
	nextID int64

	// Profiles mirrors what the real repository creates alongside each
	// user, so tests can chain a MockProfileRepository onto it.
	Profiles *MockProfileRepository
}

// NewMockUserRepository creates an empty MockUserRepository
func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{users: make(map[int64]*user.User), nextID: 1}
}

func (m *MockUserRepository) Create(_ context.Context, u *user.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, existing := range m.users {
		if existing.Username == u.Username || existing.Email == u.Email {
			return apperrors.UniqueViolation("username or email is already taken", nil)
		}
	}

	u.ID = m.nextID
	m.nextID++
	now := time.Now()
	u.CreatedAt = now
	u.UpdatedAt = now
	copied := *u
	m.users[u.ID] = &copied

	if m.Profiles != nil {
		m.Profiles.seed(&profile.Profile{
			UserID:    u.ID,
			Username:  u.Username,
			FirstName: u.FirstName,
			LastName:  u.LastName,
			Type:      u.Role,
			Email:     u.Email,
			CreatedAt: now,
		})
	}
	return nil
}

func (m *MockUserRepository) GetByID(_ context.Context, id int64) (*user.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return nil, apperrors.NotFound("user")
	}
	copied := *u
	return &copied, nil
}

func (m *MockUserRepository) GetByUsername(_ context.Context, username string) (*user.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Username == username {
			copied := *u
			return &copied, nil
		}
	}
	return nil, apperrors.NotFound("user")
}

func (m *MockUserRepository) GetByEmail(_ context.Context, email string) (*user.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, apperrors.NotFound("user")
}

func (m *MockUserRepository) Exists(_ context.Context, id int64) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.users[id]
	return ok, nil
}

func (m *MockUserRepository) UpdateEmail(_ context.Context, id int64, email string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return apperrors.NotFound("user")
	}
	u.Email = email
	u.UpdatedAt = time.Now()
	return nil
}

// Seed inserts a user directly, bypassing uniqueness checks
func (m *MockUserRepository) Seed(u *user.User) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if u.ID == 0 {
		u.ID = m.nextID
	}
	if u.ID >= m.nextID {
		m.nextID = u.ID + 1
	}
	copied := *u
	m.users[u.ID] = &copied
}

// MockProfileRepository is an in-memory profile.Repository for service tests
type MockProfileRepository struct {
	mu       sync.Mutex
	profiles map[int64]*profile.Profile
	nextID   int64
}

// NewMockProfileRepository creates an empty MockProfileRepository
func NewMockProfileRepository() *MockProfileRepository {
	return &MockProfileRepository{profiles: make(map[int64]*profile.Profile), nextID: 1}
}

func (m *MockProfileRepository) seed(p *profile.Profile) {
	if p.ID == 0 {
		p.ID = m.nextID
	}
	if p.ID >= m.nextID {
		m.nextID = p.ID + 1
	}
	copied := *p
	m.profiles[p.ID] = &copied
}

// Seed inserts a profile directly
func (m *MockProfileRepository) Seed(p *profile.Profile) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seed(p)
}

func (m *MockProfileRepository) GetByID(_ context.Context, id int64) (*profile.Profile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.profiles[id]
	if !ok {
		return nil, apperrors.NotFound("profile")
	}
	copied := *p
	return &copied, nil
}

func (m *MockProfileRepository) GetByUserID(_ context.Context, userID int64) (*profile.Profile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, p := range m.profiles {
		if p.UserID == userID {
			copied := *p
			return &copied, nil
		}
	}
	return nil, apperrors.NotFound("profile")
}

func (m *MockProfileRepository) Update(_ context.Context, p *profile.Profile, email *string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	stored, ok := m.profiles[p.ID]
	if !ok {
		return apperrors.NotFound("profile")
	}
	copied := *p
	copied.UserID = stored.UserID
	m.profiles[p.ID] = &copied
	return nil
}

func (m *MockProfileRepository) EmailInUse(_ context.Context, email string, excludeUserID int64) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, p := range m.profiles {
		if p.Email == email && p.UserID != excludeUserID {
			return true, nil
		}
	}
	return false, nil
}

func (m *MockProfileRepository) ListByRole(_ context.Context, role string) ([]*profile.Profile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	result := []*profile.Profile{}
	for _, p := range m.profiles {
		if p.Type == role {
			copied := *p
			result = append(result, &copied)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

// MockOfferRepository is an in-memory offer.Repository for service tests
type MockOfferRepository struct {
	mu           sync.Mutex
	offers       map[int64]*offer.Offer
	nextID       int64
	nextDetailID int64
}

// NewMockOfferRepository creates an empty MockOfferRepository
func NewMockOfferRepository() *MockOfferRepository {
	return &MockOfferRepository{offers: make(map[int64]*offer.Offer), nextID: 1, nextDetailID: 1}
}

func (m *MockOfferRepository) CreateWithDetails(_ context.Context, o *offer.Offer, details []offer.Detail) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	o.ID = m.nextID
	m.nextID++
	now := time.Now()
	o.CreatedAt = now
	o.UpdatedAt = now
	for i := range details {
		details[i].ID = m.nextDetailID
		details[i].OfferID = o.ID
		m.nextDetailID++
	}
	o.MinPrice, o.MinDeliveryTime = offer.RecomputeMins(details)
	o.Details = details

	copied := *o
	copied.Details = append([]offer.Detail(nil), details...)
	m.offers[o.ID] = &copied
	return nil
}

func (m *MockOfferRepository) GetByID(_ context.Context, id int64) (*offer.Offer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	o, ok := m.offers[id]
	if !ok {
		return nil, apperrors.NotFound("offer")
	}
	copied := *o
	copied.Details = append([]offer.Detail(nil), o.Details...)
	return &copied, nil
}

func (m *MockOfferRepository) UpdateWithDetails(_ context.Context, o *offer.Offer, details []offer.Detail) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	stored, ok := m.offers[o.ID]
	if !ok {
		return apperrors.NotFound("offer")
	}

	o.MinPrice, o.MinDeliveryTime = offer.RecomputeMins(details)
	o.UpdatedAt = time.Now()
	o.Details = details

	copied := *o
	copied.CreatedAt = stored.CreatedAt
	copied.Details = append([]offer.Detail(nil), details...)
	m.offers[o.ID] = &copied
	return nil
}

func (m *MockOfferRepository) Delete(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.offers[id]; !ok {
		return apperrors.NotFound("offer")
	}
	delete(m.offers, id)
	return nil
}

func (m *MockOfferRepository) List(_ context.Context, filter offer.Filter, limit, offset int) ([]*offer.Offer, int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	matched := []*offer.Offer{}
	for _, o := range m.offers {
		if filter.CreatorID != nil && o.UserID != *filter.CreatorID {
			continue
		}
		if filter.MinPrice != nil && (o.MinPrice == nil || *o.MinPrice < *filter.MinPrice) {
			continue
		}
		if filter.MaxDeliveryTime != nil {
			within := false
			for _, d := range o.Details {
				if d.DeliveryTimeInDays <= *filter.MaxDeliveryTime {
					within = true
					break
				}
			}
			if !within {
				continue
			}
		}
		if filter.Search != "" {
			s := strings.ToLower(filter.Search)
			if !strings.Contains(strings.ToLower(o.Title), s) &&
				!strings.Contains(strings.ToLower(o.Description), s) {
				continue
			}
		}
		copied := *o
		copied.Details = append([]offer.Detail(nil), o.Details...)
		matched = append(matched, &copied)
	}

	sort.Slice(matched, func(i, j int) bool {
		switch filter.Ordering {
		case "min_price":
			return derefFloat(matched[i].MinPrice) < derefFloat(matched[j].MinPrice)
		case "-min_price":
			return derefFloat(matched[i].MinPrice) > derefFloat(matched[j].MinPrice)
		case "updated_at":
			return matched[i].UpdatedAt.Before(matched[j].UpdatedAt)
		default:
			return matched[i].UpdatedAt.After(matched[j].UpdatedAt)
		}
	})

	total := int64(len(matched))
	if offset >= len(matched) {
		return []*offer.Offer{}, total, nil
	}
	end := offset + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], total, nil
}

func derefFloat(f *float64) float64 {
	if f == nil {
		return math.MaxFloat64
	}
	return *f
}

func (m *MockOfferRepository) GetDetail(_ context.Context, id int64) (*offer.Detail, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, o := range m.offers {
		for _, d := range o.Details {
			if d.ID == id {
				copied := d
				copied.OwnerID = o.UserID
				return &copied, nil
			}
		}
	}
	return nil, apperrors.NotFound("offer detail")
}

// MockOrderRepository is an in-memory order.Repository for service tests
type MockOrderRepository struct {
	mu     sync.Mutex
	orders map[int64]*order.Order
	nextID int64
}

// NewMockOrderRepository creates an empty MockOrderRepository
func NewMockOrderRepository() *MockOrderRepository {
	return &MockOrderRepository{orders: make(map[int64]*order.Order), nextID: 1}
}

func (m *MockOrderRepository) Create(_ context.Context, o *order.Order) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	o.ID = m.nextID
	m.nextID++
	now := time.Now()
	o.CreatedAt = now
	o.UpdatedAt = now
	copied := *o
	m.orders[o.ID] = &copied
	return nil
}

func (m *MockOrderRepository) GetByID(_ context.Context, id int64) (*order.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	o, ok := m.orders[id]
	if !ok {
		return nil, apperrors.NotFound("order")
	}
	copied := *o
	return &copied, nil
}

func (m *MockOrderRepository) ListForUser(_ context.Context, userID int64) ([]*order.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	result := []*order.Order{}
	for _, o := range m.orders {
		if o.CustomerUserID == userID || o.BusinessUserID == userID {
			copied := *o
			result = append(result, &copied)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID > result[j].ID })
	return result, nil
}

func (m *MockOrderRepository) UpdateStatus(_ context.Context, id int64, status string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	o, ok := m.orders[id]
	if !ok {
		return apperrors.NotFound("order")
	}
	o.Status = status
	o.UpdatedAt = time.Now()
	return nil
}

func (m *MockOrderRepository) Delete(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.orders[id]; !ok {
		return apperrors.NotFound("order")
	}
	delete(m.orders, id)
	return nil
}

func (m *MockOrderRepository) CountForBusiness(_ context.Context, businessUserID int64, status string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var count int64
	for _, o := range m.orders {
		if o.BusinessUserID != businessUserID {
			continue
		}
		if status != "" && o.Status != status {
			continue
		}
		count++
	}
	return count, nil
}

// MockReviewRepository is an in-memory review.Repository for service tests
type MockReviewRepository struct {
	mu      sync.Mutex
	reviews map[int64]*review.Review
	nextID  int64
}

// NewMockReviewRepository creates an empty MockReviewRepository
func NewMockReviewRepository() *MockReviewRepository {
	return &MockReviewRepository{reviews: make(map[int64]*review.Review), nextID: 1}
}

func (m *MockReviewRepository) Create(_ context.Context, rv *review.Review) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.reviews {
		if existing.ReviewerID == rv.ReviewerID && existing.BusinessUserID == rv.BusinessUserID {
			return apperrors.UniqueViolation("you have already reviewed this business user", nil)
		}
	}
	rv.ID = m.nextID
	m.nextID++
	now := time.Now()
	rv.CreatedAt = now
	rv.UpdatedAt = now
	copied := *rv
	m.reviews[rv.ID] = &copied
	return nil
}

func (m *MockReviewRepository) GetByID(_ context.Context, id int64) (*review.Review, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rv, ok := m.reviews[id]
	if !ok {
		return nil, apperrors.NotFound("review")
	}
	copied := *rv
	return &copied, nil
}

func (m *MockReviewRepository) Update(_ context.Context, rv *review.Review) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	stored, ok := m.reviews[rv.ID]
	if !ok {
		return apperrors.NotFound("review")
	}
	stored.Rating = rv.Rating
	stored.Description = rv.Description
	stored.UpdatedAt = time.Now()
	rv.UpdatedAt = stored.UpdatedAt
	return nil
}

func (m *MockReviewRepository) Delete(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.reviews[id]; !ok {
		return apperrors.NotFound("review")
	}
	delete(m.reviews, id)
	return nil
}

func (m *MockReviewRepository) List(_ context.Context, filter review.Filter) ([]*review.Review, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	result := []*review.Review{}
	for _, rv := range m.reviews {
		if filter.BusinessUserID != nil && rv.BusinessUserID != *filter.BusinessUserID {
			continue
		}
		if filter.ReviewerID != nil && rv.ReviewerID != *filter.ReviewerID {
			continue
		}
		copied := *rv
		result = append(result, &copied)
	}
	sort.Slice(result, func(i, j int) bool {
		switch filter.Ordering {
		case "rating":
			return result[i].Rating < result[j].Rating
		case "-rating":
			return result[i].Rating > result[j].Rating
		default:
			return result[i].ID > result[j].ID
		}
	})
	return result, nil
}

func (m *MockReviewRepository) ExistsForPair(_ context.Context, reviewerID, businessUserID int64) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, rv := range m.reviews {
		if rv.ReviewerID == reviewerID && rv.BusinessUserID == businessUserID {
			return true, nil
		}
	}
	return false, nil
}

// MockInfoRepository returns a fixed platform snapshot
type MockInfoRepository struct {
	Snapshot info.BaseInfo
}

func (m *MockInfoRepository) Stats(_ context.Context) (*info.BaseInfo, error) {
	copied := m.Snapshot
	return &copied, nil
}
