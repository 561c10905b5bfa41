package service

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"

	"github.com/staynest/staynest/internal/core/domain"
)

func testLogger() zerolog.Logger {
	return zerolog.Nop()
}

type stubUserRepo struct {
	users  map[string]*domain.User
	nextID int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == user.Email {
			return nil, domain.ErrUserExists
		}
	}
	r.nextID++
	copy := cloneUser(user)
	copy.ID = fmt.Sprintf("user_%d", r.nextID)
	r.users[copy.ID] = cloneUser(copy)
	return copy, nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) List(_ context.Context) ([]*domain.User, error) {
	out := make([]*domain.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, cloneUser(u))
	}
	return out, nil
}

func (r *stubUserRepo) Update(_ context.Context, user *domain.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return domain.ErrUserNotFound
	}
	r.users[user.ID] = cloneUser(user)
	return nil
}

func (r *stubUserRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.users[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

type stubRevoker struct {
	revoked map[string]time.Duration
}

func newStubRevoker() *stubRevoker {
	return &stubRevoker{revoked: make(map[string]time.Duration)}
}

func (r *stubRevoker) Revoke(_ context.Context, jti string, ttl time.Duration) error {
	r.revoked[jti] = ttl
	return nil
}

func (r *stubRevoker) IsRevoked(_ context.Context, jti string) (bool, error) {
	_, ok := r.revoked[jti]
	return ok, nil
}

type stubRoomRepo struct {
	rooms  map[string]*domain.Room
	nextID int
}

func newStubRoomRepo() *stubRoomRepo {
	return &stubRoomRepo{rooms: make(map[string]*domain.Room)}
}

func cloneRoom(r *domain.Room) *domain.Room {
	if r == nil {
		return nil
	}
	clone := *r
	return &clone
}

func (r *stubRoomRepo) Create(_ context.Context, room *domain.Room) (*domain.Room, error) {
	r.nextID++
	copy := cloneRoom(room)
	copy.ID = fmt.Sprintf("room_%d", r.nextID)
	r.rooms[copy.ID] = cloneRoom(copy)
	return copy, nil
}

func (r *stubRoomRepo) FindByID(_ context.Context, id string) (*domain.Room, error) {
	room, ok := r.rooms[id]
	if !ok {
		return nil, domain.ErrRoomNotFound
	}
	return cloneRoom(room), nil
}

func (r *stubRoomRepo) FindByNumber(_ context.Context, roomNumber string) (*domain.Room, error) {
	for _, room := range r.rooms {
		if room.RoomNumber == roomNumber {
			return cloneRoom(room), nil
		}
	}
	return nil, domain.ErrRoomNotFound
}

func (r *stubRoomRepo) FindByTenant(_ context.Context, tenantID string) (*domain.Room, error) {
	for _, room := range r.rooms {
		if room.TenantID == tenantID {
			return cloneRoom(room), nil
		}
	}
	return nil, domain.ErrRoomNotFound
}

func (r *stubRoomRepo) List(_ context.Context) ([]*domain.Room, error) {
	out := make([]*domain.Room, 0, len(r.rooms))
	for _, room := range r.rooms {
		out = append(out, cloneRoom(room))
	}
	return out, nil
}

func (r *stubRoomRepo) Update(_ context.Context, room *domain.Room) error {
	if _, ok := r.rooms[room.ID]; !ok {
		return domain.ErrRoomNotFound
	}
	r.rooms[room.ID] = cloneRoom(room)
	return nil
}

func (r *stubRoomRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.rooms[id]; !ok {
		return domain.ErrRoomNotFound
	}
	delete(r.rooms, id)
	return nil
}

type stubPaymentRepo struct {
	payments map[string]*domain.Payment
	nextID   int
}

func newStubPaymentRepo() *stubPaymentRepo {
	return &stubPaymentRepo{payments: make(map[string]*domain.Payment)}
}

func clonePayment(p *domain.Payment) *domain.Payment {
	if p == nil {
		return nil
	}
	clone := *p
	return &clone
}

func (r *stubPaymentRepo) Create(_ context.Context, p *domain.Payment) (*domain.Payment, error) {
	r.nextID++
	copy := clonePayment(p)
	copy.ID = fmt.Sprintf("pay_%d", r.nextID)
	r.payments[copy.ID] = clonePayment(copy)
	return copy, nil
}

func (r *stubPaymentRepo) FindByID(_ context.Context, id string) (*domain.Payment, error) {
	p, ok := r.payments[id]
	if !ok {
		return nil, domain.ErrPaymentNotFound
	}
	return clonePayment(p), nil
}

func (r *stubPaymentRepo) List(_ context.Context) ([]*domain.Payment, error) {
	out := make([]*domain.Payment, 0, len(r.payments))
	for _, p := range r.payments {
		out = append(out, clonePayment(p))
	}
	return out, nil
}

func (r *stubPaymentRepo) ListByTenant(_ context.Context, tenantID string) ([]*domain.Payment, error) {
	var out []*domain.Payment
	for _, p := range r.payments {
		if p.TenantID == tenantID {
			out = append(out, clonePayment(p))
		}
	}
	return out, nil
}

func (r *stubPaymentRepo) Update(_ context.Context, p *domain.Payment) error {
	if _, ok := r.payments[p.ID]; !ok {
		return domain.ErrPaymentNotFound
	}
	r.payments[p.ID] = clonePayment(p)
	return nil
}

type stubRequestRepo struct {
	requests map[string]*domain.ServiceRequest
	nextID   int
}

func newStubRequestRepo() *stubRequestRepo {
	return &stubRequestRepo{requests: make(map[string]*domain.ServiceRequest)}
}

func cloneRequest(req *domain.ServiceRequest) *domain.ServiceRequest {
	if req == nil {
		return nil
	}
	clone := *req
	return &clone
}

func (r *stubRequestRepo) Create(_ context.Context, req *domain.ServiceRequest) (*domain.ServiceRequest, error) {
	r.nextID++
	copy := cloneRequest(req)
	copy.ID = fmt.Sprintf("req_%d", r.nextID)
	r.requests[copy.ID] = cloneRequest(copy)
	return copy, nil
}

func (r *stubRequestRepo) FindByID(_ context.Context, id string) (*domain.ServiceRequest, error) {
	req, ok := r.requests[id]
	if !ok {
		return nil, domain.ErrRequestNotFound
	}
	return cloneRequest(req), nil
}

func (r *stubRequestRepo) List(_ context.Context) ([]*domain.ServiceRequest, error) {
	out := make([]*domain.ServiceRequest, 0, len(r.requests))
	for _, req := range r.requests {
		out = append(out, cloneRequest(req))
	}
	return out, nil
}

func (r *stubRequestRepo) ListByTenant(_ context.Context, tenantID string) ([]*domain.ServiceRequest, error) {
	var out []*domain.ServiceRequest
	for _, req := range r.requests {
		if req.TenantID == tenantID {
			out = append(out, cloneRequest(req))
		}
	}
	return out, nil
}

func (r *stubRequestRepo) Update(_ context.Context, req *domain.ServiceRequest) error {
	if _, ok := r.requests[req.ID]; !ok {
		return domain.ErrRequestNotFound
	}
	r.requests[req.ID] = cloneRequest(req)
	return nil
}

func (r *stubRequestRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.requests[id]; !ok {
		return domain.ErrRequestNotFound
	}
	delete(r.requests, id)
	return nil
}

type stubNoticeRepo struct {
	notices map[string]*domain.Notice
	nextID  int
}

func newStubNoticeRepo() *stubNoticeRepo {
	return &stubNoticeRepo{notices: make(map[string]*domain.Notice)}
}

func cloneNotice(n *domain.Notice) *domain.Notice {
	if n == nil {
		return nil
	}
	clone := *n
	return &clone
}

func (r *stubNoticeRepo) Create(_ context.Context, n *domain.Notice) (*domain.Notice, error) {
	r.nextID++
	copy := cloneNotice(n)
	copy.ID = fmt.Sprintf("notice_%d", r.nextID)
	r.notices[copy.ID] = cloneNotice(copy)
	return copy, nil
}

func (r *stubNoticeRepo) FindByID(_ context.Context, id string) (*domain.Notice, error) {
	n, ok := r.notices[id]
	if !ok {
		return nil, domain.ErrNoticeNotFound
	}
	return cloneNotice(n), nil
}

func (r *stubNoticeRepo) List(_ context.Context) ([]*domain.Notice, error) {
	out := make([]*domain.Notice, 0, len(r.notices))
	for _, n := range r.notices {
		out = append(out, cloneNotice(n))
	}
	return out, nil
}

func (r *stubNoticeRepo) Update(_ context.Context, n *domain.Notice) error {
	if _, ok := r.notices[n.ID]; !ok {
		return domain.ErrNoticeNotFound
	}
	r.notices[n.ID] = cloneNotice(n)
	return nil
}

func (r *stubNoticeRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.notices[id]; !ok {
		return domain.ErrNoticeNotFound
	}
	delete(r.notices, id)
	return nil
}

type stubDocRepo struct {
	docs       map[string]*domain.Document
	nextID     int
	failCreate bool
}

func newStubDocRepo() *stubDocRepo {
	return &stubDocRepo{docs: make(map[string]*domain.Document)}
}

func cloneDoc(d *domain.Document) *domain.Document {
	if d == nil {
		return nil
	}
	clone := *d
	return &clone
}

func (r *stubDocRepo) Create(_ context.Context, d *domain.Document) (*domain.Document, error) {
	if r.failCreate {
		return nil, fmt.Errorf("insert failed")
	}
	r.nextID++
	copy := cloneDoc(d)
	copy.ID = fmt.Sprintf("doc_%d", r.nextID)
	r.docs[copy.ID] = cloneDoc(copy)
	return copy, nil
}

func (r *stubDocRepo) FindByID(_ context.Context, id string) (*domain.Document, error) {
	d, ok := r.docs[id]
	if !ok {
		return nil, domain.ErrDocumentNotFound
	}
	return cloneDoc(d), nil
}

func (r *stubDocRepo) ListByTenant(_ context.Context, tenantID string) ([]*domain.Document, error) {
	var out []*domain.Document
	for _, d := range r.docs {
		if d.TenantID == tenantID {
			out = append(out, cloneDoc(d))
		}
	}
	return out, nil
}

func (r *stubDocRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.docs[id]; !ok {
		return domain.ErrDocumentNotFound
	}
	delete(r.docs, id)
	return nil
}

type stubBlobStore struct {
	blobs map[string][]byte
}

func newStubBlobStore() *stubBlobStore {
	return &stubBlobStore{blobs: make(map[string][]byte)}
}

func (s *stubBlobStore) Put(_ context.Context, name string, r io.Reader) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	s.blobs[name] = data
	return nil
}

func (s *stubBlobStore) Get(_ context.Context, name string) ([]byte, error) {
	data, ok := s.blobs[name]
	if !ok {
		return nil, domain.ErrDocumentNotFound
	}
	return data, nil
}

func (s *stubBlobStore) Delete(_ context.Context, name string) error {
	delete(s.blobs, name)
	return nil
}
