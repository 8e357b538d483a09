package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"sync"
	"testing"

	"hungry-dine-api/handlers"
	"hungry-dine-api/middleware"
	"hungry-dine-api/models"
	"hungry-dine-api/routes"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var testSecret = []byte("test-secret")

// In-memory stand-ins for the Mongo stores. They return real driver result
// structs so the handlers shape responses exactly as in production.

type fakeUsers struct {
	docs     map[string]models.User // keyed by email
	findErr  error
	roleSets map[string]models.UserRole
	deleted  []string
}

func newFakeUsers(users ...models.User) *fakeUsers {
	f := &fakeUsers{docs: map[string]models.User{}, roleSets: map[string]models.UserRole{}}
	for _, u := range users {
		f.docs[u.Email] = u
	}
	return f
}

func (f *fakeUsers) All(context.Context) ([]models.User, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	var out []models.User
	for _, u := range f.docs {
		out = append(out, u)
	}
	return out, nil
}

func (f *fakeUsers) FindByEmail(_ context.Context, email string) (*models.User, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	u, ok := f.docs[email]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (f *fakeUsers) Insert(_ context.Context, user models.User) (*mongo.InsertOneResult, error) {
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	f.docs[user.Email] = user
	return &mongo.InsertOneResult{InsertedID: user.ID}, nil
}

func (f *fakeUsers) SetRole(_ context.Context, id string, role models.UserRole) (*mongo.UpdateResult, error) {
	f.roleSets[id] = role
	return &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
}

func (f *fakeUsers) Delete(_ context.Context, id string) (*mongo.DeleteResult, error) {
	f.deleted = append(f.deleted, id)
	return &mongo.DeleteResult{DeletedCount: 1}, nil
}

func (f *fakeUsers) Count(context.Context) (int64, error) {
	return int64(len(f.docs)), nil
}

type fakeMenu struct {
	docs    map[string]models.MenuItem // keyed by hex id
	updates map[string]models.MenuItemUpdate
}

func newFakeMenu(items ...models.MenuItem) *fakeMenu {
	f := &fakeMenu{docs: map[string]models.MenuItem{}, updates: map[string]models.MenuItemUpdate{}}
	for _, it := range items {
		f.docs[it.ID.Hex()] = it
	}
	return f
}

func (f *fakeMenu) All(context.Context) ([]models.MenuItem, error) {
	var out []models.MenuItem
	for _, it := range f.docs {
		out = append(out, it)
	}
	return out, nil
}

func (f *fakeMenu) FindByID(_ context.Context, id string) (*models.MenuItem, error) {
	it, ok := f.docs[id]
	if !ok {
		return nil, nil
	}
	return &it, nil
}

// FindByIDs behaves like an $in filter: each matching document comes back
// once no matter how often its id repeats, misses are dropped.
func (f *fakeMenu) FindByIDs(_ context.Context, ids []string) ([]models.MenuItem, error) {
	seen := map[string]bool{}
	var out []models.MenuItem
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		if it, ok := f.docs[id]; ok {
			out = append(out, it)
		}
	}
	return out, nil
}

func (f *fakeMenu) Insert(_ context.Context, item models.MenuItem) (*mongo.InsertOneResult, error) {
	if item.ID.IsZero() {
		item.ID = primitive.NewObjectID()
	}
	f.docs[item.ID.Hex()] = item
	return &mongo.InsertOneResult{InsertedID: item.ID}, nil
}

func (f *fakeMenu) Update(_ context.Context, id string, upd models.MenuItemUpdate) (*mongo.UpdateResult, error) {
	f.updates[id] = upd
	if _, ok := f.docs[id]; !ok {
		return &mongo.UpdateResult{}, nil
	}
	return &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
}

func (f *fakeMenu) Delete(_ context.Context, id string) (*mongo.DeleteResult, error) {
	if _, ok := f.docs[id]; !ok {
		return &mongo.DeleteResult{}, nil
	}
	delete(f.docs, id)
	return &mongo.DeleteResult{DeletedCount: 1}, nil
}

func (f *fakeMenu) Count(context.Context) (int64, error) {
	return int64(len(f.docs)), nil
}

type fakeReviews struct {
	docs []models.Review
}

func (f *fakeReviews) All(context.Context) ([]models.Review, error) {
	return f.docs, nil
}

type fakeCarts struct {
	docs        map[string]models.CartItem // keyed by hex id
	deletedMany [][]string
}

func newFakeCarts(items ...models.CartItem) *fakeCarts {
	f := &fakeCarts{docs: map[string]models.CartItem{}}
	for _, it := range items {
		f.docs[it.ID.Hex()] = it
	}
	return f
}

func (f *fakeCarts) ByEmail(_ context.Context, email string) ([]models.CartItem, error) {
	var out []models.CartItem
	for _, it := range f.docs {
		if it.Email == email {
			out = append(out, it)
		}
	}
	return out, nil
}

func (f *fakeCarts) Insert(_ context.Context, item models.CartItem) (*mongo.InsertOneResult, error) {
	if item.ID.IsZero() {
		item.ID = primitive.NewObjectID()
	}
	f.docs[item.ID.Hex()] = item
	return &mongo.InsertOneResult{InsertedID: item.ID}, nil
}

func (f *fakeCarts) Delete(_ context.Context, id string) (*mongo.DeleteResult, error) {
	if _, ok := f.docs[id]; !ok {
		return &mongo.DeleteResult{}, nil
	}
	delete(f.docs, id)
	return &mongo.DeleteResult{DeletedCount: 1}, nil
}

func (f *fakeCarts) DeleteMany(_ context.Context, ids []string) (*mongo.DeleteResult, error) {
	f.deletedMany = append(f.deletedMany, ids)
	var n int64
	for _, id := range ids {
		if _, ok := f.docs[id]; ok {
			delete(f.docs, id)
			n++
		}
	}
	return &mongo.DeleteResult{DeletedCount: n}, nil
}

type fakePayments struct {
	docs       map[string]models.Payment // keyed by hex id
	inserted   []models.Payment
	categories []models.CategorySales
}

func newFakePayments(payments ...models.Payment) *fakePayments {
	f := &fakePayments{docs: map[string]models.Payment{}}
	for _, p := range payments {
		f.docs[p.ID.Hex()] = p
	}
	return f
}

func (f *fakePayments) ByEmail(_ context.Context, email string) ([]models.Payment, error) {
	var out []models.Payment
	for _, p := range f.docs {
		if p.Email == email {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakePayments) FindByID(_ context.Context, id string) (*models.Payment, error) {
	p, ok := f.docs[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (f *fakePayments) Insert(_ context.Context, payment models.Payment) (*mongo.InsertOneResult, error) {
	if payment.ID.IsZero() {
		payment.ID = primitive.NewObjectID()
	}
	f.docs[payment.ID.Hex()] = payment
	f.inserted = append(f.inserted, payment)
	return &mongo.InsertOneResult{InsertedID: payment.ID}, nil
}

func (f *fakePayments) Count(context.Context) (int64, error) {
	return int64(len(f.docs)), nil
}

// TotalRevenue mirrors the aggregation: sum of price, 0 when empty.
func (f *fakePayments) TotalRevenue(context.Context) (float64, error) {
	var total float64
	for _, p := range f.docs {
		total += p.Price
	}
	return total, nil
}

func (f *fakePayments) CategorySales(context.Context) ([]models.CategorySales, error) {
	return f.categories, nil
}

type fakeGateway struct {
	secret string
	err    error
}

func (f *fakeGateway) CreateIntent(context.Context, float64) (string, error) {
	return f.secret, f.err
}

type fakeMailer struct {
	mu   sync.Mutex
	err  error
	sent []models.Payment
}

func (f *fakeMailer) SendOrderConfirmation(_ context.Context, payment models.Payment) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, payment)
	return f.err
}

func (f *fakeMailer) sentCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.sent)
}

// deps bundles the fakes behind a router wired exactly like production.
type deps struct {
	users    *fakeUsers
	menu     *fakeMenu
	reviews  *fakeReviews
	carts    *fakeCarts
	payments *fakePayments
	gateway  *fakeGateway
	mailer   *fakeMailer
	router   *gin.Engine
}

func newTestServer(t *testing.T) *deps {
	t.Helper()
	gin.SetMode(gin.TestMode)

	d := &deps{
		users:    newFakeUsers(),
		menu:     newFakeMenu(),
		reviews:  &fakeReviews{},
		carts:    newFakeCarts(),
		payments: newFakePayments(),
		gateway:  &fakeGateway{secret: "pi_test_secret"},
		mailer:   &fakeMailer{},
	}
	h := handlers.NewHandler(testSecret, d.users, d.menu, d.reviews, d.carts, d.payments, d.gateway, d.mailer)
	d.router = gin.New()
	routes.SetupRoutes(d.router, h, testSecret, d.users)
	return d
}

func tokenFor(t *testing.T, email string) string {
	t.Helper()
	token, err := middleware.GenerateToken(testSecret, email, "")
	require.NoError(t, err)
	return token
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}
