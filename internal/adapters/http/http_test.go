package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	httpapi "github.com/givehub/givehub/internal/adapters/http"
	"github.com/givehub/givehub/internal/adapters/security"
	"github.com/givehub/givehub/internal/application"
	"github.com/givehub/givehub/internal/domain"
	"github.com/givehub/givehub/internal/ports"
)

func TestRegisterLoginMeFlow(t *testing.T) {
	t.Parallel()

	f := newServerFixture(t)

	rec := f.postJSON("/auth/register", `{"email":"john@example.com","username":"johndoe","password":"SecurePass123","full_name":"John Doe"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("register status = %d, body %s", rec.Code, rec.Body.String())
	}
	var created struct {
		ID       int64  `json:"id"`
		Username string `json:"username"`
	}
	mustDecode(t, rec, &created)
	if created.ID == 0 || created.Username != "johndoe" {
		t.Fatalf("unexpected register body: %s", rec.Body.String())
	}

	rec = f.postForm("/auth/login", url.Values{"username": {"johndoe"}, "password": {"SecurePass123"}})
	if rec.Code != http.StatusOK {
		t.Fatalf("login status = %d, body %s", rec.Code, rec.Body.String())
	}
	var token struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
	}
	mustDecode(t, rec, &token)
	if token.AccessToken == "" || token.TokenType != "bearer" {
		t.Fatalf("unexpected token body: %s", rec.Body.String())
	}

	rec = f.get("/auth/me", withBearer(token.AccessToken))
	if rec.Code != http.StatusOK {
		t.Fatalf("me status = %d, body %s", rec.Code, rec.Body.String())
	}
	var me struct {
		Username string `json:"username"`
		IsActive bool   `json:"is_active"`
	}
	mustDecode(t, rec, &me)
	if me.Username != "johndoe" || !me.IsActive {
		t.Fatalf("unexpected me body: %s", rec.Body.String())
	}
}

func TestLoginRejectionBody(t *testing.T) {
	t.Parallel()

	f := newServerFixture(t)
	f.mustRegister(t, "johndoe", "john@example.com")

	rec := f.postForm("/auth/login", url.Values{"username": {"johndoe"}, "password": {"WrongPass123"}})
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
	if detail := stringDetail(t, rec); detail != "Incorrect username or password" {
		t.Fatalf("detail = %q", detail)
	}
	if got := rec.Header().Get("WWW-Authenticate"); got != "Bearer" {
		t.Fatalf("WWW-Authenticate = %q, want Bearer", got)
	}
}

func TestAuthMeWithoutToken(t *testing.T) {
	t.Parallel()

	f := newServerFixture(t)

	rec := f.get("/auth/me")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
	if detail := stringDetail(t, rec); detail != "Could not validate credentials" {
		t.Fatalf("detail = %q", detail)
	}
	if got := rec.Header().Get("WWW-Authenticate"); got != "Bearer" {
		t.Fatalf("WWW-Authenticate = %q, want Bearer", got)
	}

	rec = f.get("/auth/me", withBearer("not-a-token"))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("garbage token status = %d, want 401", rec.Code)
	}
}

func TestRegisterValidationDetailList(t *testing.T) {
	t.Parallel()

	f := newServerFixture(t)

	rec := f.postJSON("/auth/register", `{"email":"nope","username":"1x","password":"short"}`)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422, body %s", rec.Code, rec.Body.String())
	}
	var body struct {
		Detail []string `json:"detail"`
	}
	mustDecode(t, rec, &body)
	if len(body.Detail) != 5 {
		t.Fatalf("expected 5 messages, got %v", body.Detail)
	}
	if body.Detail[0] != "Username must be at least 3 characters" {
		t.Fatalf("first message = %q", body.Detail[0])
	}
}

func TestLoginRateLimitResponse(t *testing.T) {
	t.Parallel()

	f := newServerFixture(t)
	f.mustRegister(t, "johndoe", "john@example.com")

	form := url.Values{"username": {"johndoe"}, "password": {"SecurePass123"}}
	var rec *httptest.ResponseRecorder
	for i := 0; i < 11; i++ {
		rec = f.postForm("/auth/login", form, withForwardedFor("198.51.100.7"))
	}
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("attempt 11 status = %d, want 429", rec.Code)
	}
	if detail := stringDetail(t, rec); detail != "Rate limit exceeded. Please try again later." {
		t.Fatalf("detail = %q", detail)
	}
	if rec.Header().Get("Retry-After") == "" {
		t.Fatalf("Retry-After header missing")
	}
}

func TestNotFoundDetails(t *testing.T) {
	t.Parallel()

	f := newServerFixture(t)
	f.mustRegister(t, "johndoe", "john@example.com")
	token := f.mustLogin(t, "johndoe")

	cases := []struct {
		name   string
		path   string
		bearer string
		status int
		detail string
	}{
		{name: "missing campaign", path: "/campaigns/9999", status: http.StatusNotFound, detail: "Campaign not found"},
		{name: "non-integer campaign id", path: "/campaigns/abc", status: http.StatusUnprocessableEntity},
		{name: "unknown public giver", path: "/givers/profile/9999", status: http.StatusNotFound, detail: "Public giver profile not found"},
		{name: "missing donation", path: "/donations/9999", bearer: token, status: http.StatusNotFound, detail: "Donation not found"},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			var opts []requestOption
			if tc.bearer != "" {
				opts = append(opts, withBearer(tc.bearer))
			}
			rec := f.get(tc.path, opts...)
			if rec.Code != tc.status {
				t.Fatalf("status = %d, want %d, body %s", rec.Code, tc.status, rec.Body.String())
			}
			if tc.detail != "" {
				if detail := stringDetail(t, rec); detail != tc.detail {
					t.Fatalf("detail = %q, want %q", detail, tc.detail)
				}
			}
		})
	}
}

func TestMissingGiverProfileDetail(t *testing.T) {
	t.Parallel()

	f := newServerFixture(t)
	user := f.mustRegister(t, "johndoe", "john@example.com")
	token := f.mustLogin(t, "johndoe")
	f.store.removeGiverProfile(user.ID)

	rec := f.get("/givers/profile/me", withBearer(token))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	if detail := stringDetail(t, rec); detail != "Giver profile not found. Create one first." {
		t.Fatalf("detail = %q", detail)
	}
}

func TestCampaignOwnershipDetails(t *testing.T) {
	t.Parallel()

	f := newServerFixture(t)
	f.mustRegister(t, "creator", "creator@example.com")
	f.mustRegister(t, "stranger", "stranger@example.com")
	creatorToken := f.mustLogin(t, "creator")
	strangerToken := f.mustLogin(t, "stranger")

	rec := f.postJSON("/campaigns/", `{"title":"Community Garden","description":"Raising funds for a shared neighborhood garden."}`, withBearer(creatorToken))
	if rec.Code != http.StatusCreated {
		t.Fatalf("create status = %d, body %s", rec.Code, rec.Body.String())
	}
	var campaign struct {
		ID int64 `json:"id"`
	}
	mustDecode(t, rec, &campaign)

	rec = f.putJSON("/campaigns/1", `{"title":"Hijacked title"}`, withBearer(strangerToken))
	if rec.Code != http.StatusForbidden {
		t.Fatalf("update status = %d, want 403", rec.Code)
	}
	if detail := stringDetail(t, rec); detail != "You can only update your own campaigns" {
		t.Fatalf("detail = %q", detail)
	}

	rec = f.do(http.MethodDelete, "/campaigns/1", "", withBearer(strangerToken))
	if rec.Code != http.StatusForbidden {
		t.Fatalf("delete status = %d, want 403", rec.Code)
	}
	if detail := stringDetail(t, rec); detail != "You can only delete your own campaigns" {
		t.Fatalf("detail = %q", detail)
	}

	rec = f.do(http.MethodDelete, "/campaigns/1", "", withBearer(creatorToken))
	if rec.Code != http.StatusNoContent {
		t.Fatalf("creator delete status = %d, want 204", rec.Code)
	}
}

func TestHealthAndCount(t *testing.T) {
	t.Parallel()

	f := newServerFixture(t)
	f.mustRegister(t, "johndoe", "john@example.com")

	rec := f.get("/health")
	if rec.Code != http.StatusOK {
		t.Fatalf("health status = %d", rec.Code)
	}
	var health map[string]string
	mustDecode(t, rec, &health)
	if health["status"] != "healthy" || health["database"] != "not configured" {
		t.Fatalf("unexpected health body: %s", rec.Body.String())
	}

	rec = f.get("/users/count")
	var count struct {
		Count int64 `json:"count"`
	}
	mustDecode(t, rec, &count)
	if count.Count != 1 {
		t.Fatalf("count = %d, want 1", count.Count)
	}
}

func TestRequestIDHeader(t *testing.T) {
	t.Parallel()

	f := newServerFixture(t)
	rec := f.get("/")
	if rec.Header().Get("X-Request-Id") == "" {
		t.Fatalf("X-Request-Id header missing")
	}
}

// ---------------------------------------------------------------------------
// fixture

type serverFixture struct {
	router http.Handler
	store  *memoryStore
}

func newServerFixture(t *testing.T) *serverFixture {
	t.Helper()

	issuer, err := security.NewJWTIssuer("test-signing-secret", 30*time.Minute)
	if err != nil {
		t.Fatalf("jwt issuer: %v", err)
	}
	store := newMemoryStore()
	svc := application.NewService(application.Dependencies{
		Config: application.Config{
			LoginQuota:      10,
			LoginWindow:     time.Minute,
			RegisterQuota:   50,
			RegisterWindow:  time.Hour,
			DefaultCurrency: "GBP",
		},
		Users:     store.users,
		Campaigns: store.campaigns,
		Givers:    store.givers,
		Donations: store.donations,
		Windows:   store.windows,
		Hasher:    security.NewBcryptHasher(bcrypt.MinCost),
		Tokens:    issuer,
	})
	handler := httpapi.NewHandler(svc, nil)
	return &serverFixture{
		router: httpapi.NewRouter(handler, []string{"http://localhost:3000"}),
		store:  store,
	}
}

type requestOption func(*http.Request)

func withBearer(token string) requestOption {
	return func(r *http.Request) {
		r.Header.Set("Authorization", "Bearer "+token)
	}
}

func withForwardedFor(ip string) requestOption {
	return func(r *http.Request) {
		r.Header.Set("X-Forwarded-For", ip)
	}
}

func (f *serverFixture) do(method, path, body string, opts ...requestOption) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	for _, opt := range opts {
		opt(req)
	}
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func (f *serverFixture) get(path string, opts ...requestOption) *httptest.ResponseRecorder {
	return f.do(http.MethodGet, path, "", opts...)
}

func (f *serverFixture) postJSON(path, body string, opts ...requestOption) *httptest.ResponseRecorder {
	opts = append(opts, func(r *http.Request) {
		r.Header.Set("Content-Type", "application/json")
	})
	return f.do(http.MethodPost, path, body, opts...)
}

func (f *serverFixture) putJSON(path, body string, opts ...requestOption) *httptest.ResponseRecorder {
	opts = append(opts, func(r *http.Request) {
		r.Header.Set("Content-Type", "application/json")
	})
	return f.do(http.MethodPut, path, body, opts...)
}

func (f *serverFixture) postForm(path string, form url.Values, opts ...requestOption) *httptest.ResponseRecorder {
	opts = append(opts, func(r *http.Request) {
		r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	})
	return f.do(http.MethodPost, path, form.Encode(), opts...)
}

func (f *serverFixture) mustRegister(t *testing.T, username, email string) registeredUser {
	t.Helper()
	rec := f.postJSON("/auth/register", `{"email":"`+email+`","username":"`+username+`","password":"SecurePass123"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("register %s failed: %d %s", username, rec.Code, rec.Body.String())
	}
	var user registeredUser
	mustDecode(t, rec, &user)
	return user
}

func (f *serverFixture) mustLogin(t *testing.T, username string) string {
	t.Helper()
	rec := f.postForm("/auth/login", url.Values{"username": {username}, "password": {"SecurePass123"}})
	if rec.Code != http.StatusOK {
		t.Fatalf("login %s failed: %d %s", username, rec.Code, rec.Body.String())
	}
	var token struct {
		AccessToken string `json:"access_token"`
	}
	mustDecode(t, rec, &token)
	return token.AccessToken
}

type registeredUser struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

func mustDecode(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), v); err != nil {
		t.Fatalf("decode %q: %v", rec.Body.String(), err)
	}
}

func stringDetail(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Detail string `json:"detail"`
	}
	mustDecode(t, rec, &body)
	return body.Detail
}

// ---------------------------------------------------------------------------
// in-memory repositories

type memoryStore struct {
	users     *memUsers
	campaigns *memCampaigns
	givers    *memGivers
	donations *memDonations
	windows   *memWindows
}

func newMemoryStore() *memoryStore {
	givers := &memGivers{byUserID: map[int64]domain.GiverProfile{}}
	return &memoryStore{
		users:     &memUsers{byID: map[int64]domain.User{}, givers: givers},
		campaigns: &memCampaigns{byID: map[int64]domain.Campaign{}},
		givers:    givers,
		donations: &memDonations{byID: map[int64]domain.Donation{}},
		windows:   &memWindows{counts: map[string]int64{}},
	}
}

func (m *memoryStore) removeGiverProfile(userID int64) {
	m.givers.mu.Lock()
	defer m.givers.mu.Unlock()
	delete(m.givers.byUserID, userID)
}

type memUsers struct {
	mu     sync.Mutex
	nextID int64
	byID   map[int64]domain.User
	givers *memGivers
}

func (m *memUsers) CreateWithProfileTx(_ context.Context, params ports.CreateUserParams, _ ports.OutboxEvent) (domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.byID {
		if u.Username == params.Username {
			return domain.User{}, domain.ErrUsernameTaken
		}
		if u.Email == params.Email {
			return domain.User{}, domain.ErrEmailTaken
		}
	}
	m.nextID++
	u := domain.User{
		ID:             m.nextID,
		Email:          params.Email,
		Username:       params.Username,
		HashedPassword: params.HashedPassword,
		FullName:       params.FullName,
		IsActive:       true,
		CreatedAt:      params.RegisteredAt,
		UpdatedAt:      params.RegisteredAt,
	}
	m.byID[u.ID] = u
	m.givers.put(domain.GiverProfile{
		UserID:      u.ID,
		ProfileType: domain.ProfileIndividual,
		IsPublic:    true,
		CreatedAt:   params.RegisteredAt,
	})
	return u, nil
}

func (m *memUsers) GetByUsername(_ context.Context, username string) (domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.byID {
		if u.Username == username {
			return u, nil
		}
	}
	return domain.User{}, domain.ErrNotFound
}

func (m *memUsers) GetByEmail(_ context.Context, email string) (domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.byID {
		if u.Email == email {
			return u, nil
		}
	}
	return domain.User{}, domain.ErrNotFound
}

func (m *memUsers) GetByID(_ context.Context, userID int64) (domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.byID[userID]
	if !ok {
		return domain.User{}, domain.ErrNotFound
	}
	return u, nil
}

func (m *memUsers) Update(_ context.Context, user domain.User) (domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.byID[user.ID]; !ok {
		return domain.User{}, domain.ErrNotFound
	}
	m.byID[user.ID] = user
	return user, nil
}

func (m *memUsers) Count(context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return int64(len(m.byID)), nil
}

type memCampaigns struct {
	mu     sync.Mutex
	nextID int64
	byID   map[int64]domain.Campaign
}

func (m *memCampaigns) Create(_ context.Context, campaign domain.Campaign) (domain.Campaign, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	campaign.ID = m.nextID
	m.byID[campaign.ID] = campaign
	return campaign, nil
}

func (m *memCampaigns) GetByID(_ context.Context, campaignID int64) (domain.Campaign, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.byID[campaignID]
	if !ok {
		return domain.Campaign{}, domain.ErrCampaignNotFound
	}
	return c, nil
}

func (m *memCampaigns) List(_ context.Context, filter ports.CampaignFilter) ([]domain.Campaign, int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var matched []domain.Campaign
	for _, c := range m.byID {
		if filter.Status != "" && c.Status != filter.Status {
			continue
		}
		if filter.CampaignType != "" && c.CampaignType != filter.CampaignType {
			continue
		}
		if filter.CreatorID != 0 && c.CreatorID != filter.CreatorID {
			continue
		}
		matched = append(matched, c)
	}
	return matched, int64(len(matched)), nil
}

func (m *memCampaigns) Update(_ context.Context, campaign domain.Campaign) (domain.Campaign, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.byID[campaign.ID]; !ok {
		return domain.Campaign{}, domain.ErrCampaignNotFound
	}
	m.byID[campaign.ID] = campaign
	return campaign, nil
}

type memGivers struct {
	mu       sync.Mutex
	nextID   int64
	byUserID map[int64]domain.GiverProfile
}

func (m *memGivers) put(profile domain.GiverProfile) domain.GiverProfile {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	profile.ID = m.nextID
	m.byUserID[profile.UserID] = profile
	return profile
}

func (m *memGivers) Create(_ context.Context, profile domain.GiverProfile) (domain.GiverProfile, error) {
	m.mu.Lock()
	if _, ok := m.byUserID[profile.UserID]; ok {
		m.mu.Unlock()
		return domain.GiverProfile{}, domain.ErrConflict
	}
	m.mu.Unlock()
	return m.put(profile), nil
}

func (m *memGivers) GetByUserID(_ context.Context, userID int64) (domain.GiverProfile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.byUserID[userID]
	if !ok {
		return domain.GiverProfile{}, domain.ErrGiverProfileNotFound
	}
	return p, nil
}

func (m *memGivers) Update(_ context.Context, profile domain.GiverProfile) (domain.GiverProfile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.byUserID[profile.UserID]; !ok {
		return domain.GiverProfile{}, domain.ErrGiverProfileNotFound
	}
	m.byUserID[profile.UserID] = profile
	return profile, nil
}

func (m *memGivers) TopPublicGivers(context.Context, domain.ProfileType, int) ([]ports.LeaderboardRow, error) {
	return nil, nil
}

type memDonations struct {
	mu     sync.Mutex
	nextID int64
	byID   map[int64]domain.Donation
}

func (m *memDonations) Create(_ context.Context, donation domain.Donation) (domain.Donation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	donation.ID = m.nextID
	m.byID[donation.ID] = donation
	return donation, nil
}

func (m *memDonations) GetByID(_ context.Context, donationID int64) (domain.Donation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	d, ok := m.byID[donationID]
	if !ok {
		return domain.Donation{}, domain.ErrDonationNotFound
	}
	return d, nil
}

func (m *memDonations) List(context.Context, ports.DonationFilter) ([]domain.Donation, int64, float64, error) {
	return nil, 0, 0, nil
}

func (m *memDonations) UpdateStatus(_ context.Context, donationID int64, status domain.PaymentStatus, paymentIntentID string, at time.Time) (domain.Donation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	d, ok := m.byID[donationID]
	if !ok {
		return domain.Donation{}, domain.ErrDonationNotFound
	}
	d.PaymentStatus = status
	if paymentIntentID != "" {
		d.PaymentIntentID = paymentIntentID
	}
	d.UpdatedAt = at
	m.byID[donationID] = d
	return d, nil
}

func (m *memDonations) CompleteTx(_ context.Context, donationID int64, paymentIntentID string, at time.Time, _ ports.OutboxEvent) (domain.Donation, error) {
	return m.UpdateStatus(context.Background(), donationID, domain.PaymentCompleted, paymentIntentID, at)
}

type memWindows struct {
	mu     sync.Mutex
	counts map[string]int64
}

func (m *memWindows) Increment(_ context.Context, key string, window time.Duration) (int64, time.Duration, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counts[key]++
	return m.counts[key], window, nil
}
