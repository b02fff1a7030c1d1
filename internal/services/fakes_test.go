package services

import (
	"context"
	"sort"
	"sync"
	"time"

	"fitple/internal/models/db_models"
	"github.com/google/uuid"
)

func assignID(b *db_models.BaseModel) {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	if b.CreatedAt == 0 {
		b.CreatedAt = time.Now().UnixNano()
	}
}

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[uuid.UUID]db_models.User
}

func newFakeUserRepo(users ...db_models.User) *fakeUserRepo {
	r := &fakeUserRepo{users: map[uuid.UUID]db_models.User{}}
	for _, u := range users {
		r.users[u.ID] = u
	}
	return r
}

func (r *fakeUserRepo) Create(_ context.Context, user *db_models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	assignID(&user.BaseModel)
	r.users[user.ID] = *user
	return nil
}

func (r *fakeUserRepo) Save(ctx context.Context, user *db_models.User) error {
	return r.Create(ctx, user)
}

func (r *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*db_models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (r *fakeUserRepo) match(keep func(db_models.User) bool) *db_models.User {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if keep(u) {
			return &u
		}
	}
	return nil
}

func (r *fakeUserRepo) FindByAccountID(_ context.Context, accountID string) (*db_models.User, error) {
	return r.match(func(u db_models.User) bool { return u.AccountID == accountID }), nil
}

func (r *fakeUserRepo) FindByAccountIDAndStatus(_ context.Context, accountID string, status db_models.AccountStatus) (*db_models.User, error) {
	return r.match(func(u db_models.User) bool { return u.AccountID == accountID && u.Status == status }), nil
}

func (r *fakeUserRepo) FindByEmailAndStatus(_ context.Context, email string, status db_models.AccountStatus) (*db_models.User, error) {
	return r.match(func(u db_models.User) bool { return u.Email == email && u.Status == status }), nil
}

func (r *fakeUserRepo) FindByPhoneNumberAndStatus(_ context.Context, phone string, status db_models.AccountStatus) (*db_models.User, error) {
	return r.match(func(u db_models.User) bool { return u.PhoneNumber == phone && u.Status == status }), nil
}

func (r *fakeUserRepo) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	u, _ := r.FindByID(ctx, id)
	return u != nil, nil
}

type fakeOwnerRepo struct {
	mu     sync.Mutex
	owners map[uuid.UUID]db_models.Owner
}

func newFakeOwnerRepo(owners ...db_models.Owner) *fakeOwnerRepo {
	r := &fakeOwnerRepo{owners: map[uuid.UUID]db_models.Owner{}}
	for _, o := range owners {
		r.owners[o.ID] = o
	}
	return r
}

func (r *fakeOwnerRepo) Create(_ context.Context, owner *db_models.Owner) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	assignID(&owner.BaseModel)
	r.owners[owner.ID] = *owner
	return nil
}

func (r *fakeOwnerRepo) Save(ctx context.Context, owner *db_models.Owner) error {
	return r.Create(ctx, owner)
}

func (r *fakeOwnerRepo) FindByID(_ context.Context, id uuid.UUID) (*db_models.Owner, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.owners[id]
	if !ok {
		return nil, nil
	}
	return &o, nil
}

func (r *fakeOwnerRepo) match(keep func(db_models.Owner) bool) *db_models.Owner {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, o := range r.owners {
		if keep(o) {
			return &o
		}
	}
	return nil
}

func (r *fakeOwnerRepo) FindByAccountID(_ context.Context, accountID string) (*db_models.Owner, error) {
	return r.match(func(o db_models.Owner) bool { return o.AccountID == accountID }), nil
}

func (r *fakeOwnerRepo) FindByAccountIDAndStatus(_ context.Context, accountID string, status db_models.AccountStatus) (*db_models.Owner, error) {
	return r.match(func(o db_models.Owner) bool { return o.AccountID == accountID && o.Status == status }), nil
}

func (r *fakeOwnerRepo) FindByEmailAndStatus(_ context.Context, email string, status db_models.AccountStatus) (*db_models.Owner, error) {
	return r.match(func(o db_models.Owner) bool { return o.Email == email && o.Status == status }), nil
}

func (r *fakeOwnerRepo) FindByPhoneNumberAndStatus(_ context.Context, phone string, status db_models.AccountStatus) (*db_models.Owner, error) {
	return r.match(func(o db_models.Owner) bool { return o.PhoneNumber == phone && o.Status == status }), nil
}

type fakeTrainerRepo struct {
	mu       sync.Mutex
	trainers map[uuid.UUID]db_models.Trainer
}

func newFakeTrainerRepo(trainers ...db_models.Trainer) *fakeTrainerRepo {
	r := &fakeTrainerRepo{trainers: map[uuid.UUID]db_models.Trainer{}}
	for _, t := range trainers {
		r.trainers[t.ID] = t
	}
	return r
}

func (r *fakeTrainerRepo) Create(_ context.Context, trainer *db_models.Trainer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	assignID(&trainer.BaseModel)
	r.trainers[trainer.ID] = *trainer
	return nil
}

func (r *fakeTrainerRepo) FindByID(_ context.Context, id uuid.UUID) (*db_models.Trainer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.trainers[id]
	if !ok {
		return nil, nil
	}
	return &t, nil
}

func (r *fakeTrainerRepo) FindByAccountID(_ context.Context, accountID string) (*db_models.Trainer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, t := range r.trainers {
		if t.AccountID == accountID {
			return &t, nil
		}
	}
	return nil, nil
}

func (r *fakeTrainerRepo) FindAllByStatus(_ context.Context, status db_models.AccountStatus) ([]db_models.Trainer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []db_models.Trainer
	for _, t := range r.trainers {
		if t.Status == status {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].TrainerName < out[j].TrainerName })
	return out, nil
}

type fakeStoreRepo struct {
	mu     sync.Mutex
	stores map[uuid.UUID]db_models.Store
}

func newFakeStoreRepo() *fakeStoreRepo {
	return &fakeStoreRepo{stores: map[uuid.UUID]db_models.Store{}}
}

func (r *fakeStoreRepo) Create(_ context.Context, store *db_models.Store) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	assignID(&store.BaseModel)
	r.stores[store.ID] = *store
	return nil
}

func (r *fakeStoreRepo) Save(ctx context.Context, store *db_models.Store) error {
	return r.Create(ctx, store)
}

func (r *fakeStoreRepo) Delete(_ context.Context, store *db_models.Store) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.stores, store.ID)
	return nil
}

func (r *fakeStoreRepo) FindByID(_ context.Context, id uuid.UUID) (*db_models.Store, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.stores[id]
	if !ok {
		return nil, nil
	}
	return &s, nil
}

func (r *fakeStoreRepo) list(keep func(db_models.Store) bool) []db_models.Store {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []db_models.Store
	for _, s := range r.stores {
		if keep(s) {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt < out[j].CreatedAt })
	return out
}

func (r *fakeStoreRepo) FindAllOrderByCreatedAt(context.Context) ([]db_models.Store, error) {
	return r.list(func(db_models.Store) bool { return true }), nil
}

func (r *fakeStoreRepo) FindAllByOwnerIDOrderByCreatedAt(_ context.Context, ownerID uuid.UUID) ([]db_models.Store, error) {
	return r.list(func(s db_models.Store) bool { return s.OwnerID == ownerID }), nil
}

type fakePtInformationRepo struct {
	mu    sync.Mutex
	infos map[uuid.UUID]db_models.PtInformation
}

func newFakePtInformationRepo() *fakePtInformationRepo {
	return &fakePtInformationRepo{infos: map[uuid.UUID]db_models.PtInformation{}}
}

func (r *fakePtInformationRepo) Create(_ context.Context, info *db_models.PtInformation) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	assignID(&info.BaseModel)
	r.infos[info.ID] = *info
	return nil
}

func (r *fakePtInformationRepo) FindByID(_ context.Context, id uuid.UUID) (*db_models.PtInformation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	info, ok := r.infos[id]
	if !ok {
		return nil, nil
	}
	return &info, nil
}

type fakePtPaymentRepo struct {
	mu       sync.Mutex
	payments map[uuid.UUID]db_models.PtPayment
	creates  int
	failWith error
}

func newFakePtPaymentRepo() *fakePtPaymentRepo {
	return &fakePtPaymentRepo{payments: map[uuid.UUID]db_models.PtPayment{}}
}

func (r *fakePtPaymentRepo) Create(_ context.Context, payment *db_models.PtPayment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failWith != nil {
		return r.failWith
	}
	assignID(&payment.BaseModel)
	r.payments[payment.ID] = *payment
	r.creates++
	return nil
}

func (r *fakePtPaymentRepo) Save(_ context.Context, payment *db_models.PtPayment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	assignID(&payment.BaseModel)
	r.payments[payment.ID] = *payment
	return nil
}

func (r *fakePtPaymentRepo) FindByID(_ context.Context, id uuid.UUID) (*db_models.PtPayment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.payments[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

type fakeUserPtRepo struct {
	mu   sync.Mutex
	rows []db_models.UserPt
}

func (r *fakeUserPtRepo) Create(_ context.Context, userPt *db_models.UserPt) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	assignID(&userPt.BaseModel)
	r.rows = append(r.rows, *userPt)
	return nil
}

func (r *fakeUserPtRepo) FindAllByTrainerIDAndUserIDAndIsActive(_ context.Context, trainerID, userID uuid.UUID, isActive bool) ([]db_models.UserPt, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []db_models.UserPt
	for _, row := range r.rows {
		if row.TrainerID == trainerID && row.UserID == userID && row.IsActive == isActive {
			out = append(out, row)
		}
	}
	return out, nil
}

// scriptedGateway answers attempt n (1-based) with script(n).
type scriptedGateway struct {
	mu     sync.Mutex
	calls  int
	script func(n int) (*ApprovalResult, error)
}

func (g *scriptedGateway) Approve(_ context.Context, _ uuid.UUID, _ float64) (*ApprovalResult, error) {
	g.mu.Lock()
	g.calls++
	n := g.calls
	g.mu.Unlock()
	return g.script(n)
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []PaymentCompletedEvent
	err    error
}

func (p *recordingPublisher) PublishPaymentCompleted(_ context.Context, event PaymentCompletedEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return p.err
}

type fakeTokenStore struct {
	mu   sync.Mutex
	data map[string]string
}

func newFakeTokenStore() *fakeTokenStore {
	return &fakeTokenStore{data: map[string]string{}}
}

func (s *fakeTokenStore) Save(_ context.Context, key, token string, _ time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = token
	return nil
}

func (s *fakeTokenStore) Get(_ context.Context, key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data[key], nil
}

func (s *fakeTokenStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
	return nil
}
