package services

import (
	"context"
	"database/sql"
	"sort"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/taskhub/internal/common"
	"github.com/dmitrijs2005/taskhub/internal/dbx"
	"github.com/dmitrijs2005/taskhub/internal/server/models"
	"github.com/dmitrijs2005/taskhub/internal/server/notify"
	"github.com/dmitrijs2005/taskhub/internal/server/repositories/invitations"
	"github.com/dmitrijs2005/taskhub/internal/server/repositories/projects"
	"github.com/dmitrijs2005/taskhub/internal/server/repositories/registrations"
	"github.com/dmitrijs2005/taskhub/internal/server/repositories/users"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

// memStore is an in-memory stand-in for the database. It enforces the same
// unique constraints and conditional updates as the Postgres schema, so race
// properties can be exercised without a server.
//
// Project memberships live in a SQLite table reached through the DBTX the
// repository was built with, so they commit and roll back with dbx.WithTx.
// Everything else is applied immediately.
type memStore struct {
	mu sync.Mutex
	db *sql.DB

	users         map[string]*models.User
	registrations map[string]*models.PendingRegistration
	invitations   map[string]*models.ProjectInvitation
	projects      map[string]*models.Project

	// onTransition, when set, runs once at the start of the next
	// invitation Transition, before the status is checked.
	onTransition func()

	seq int
}

func newMemStore(t *testing.T) *memStore {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	// every connection to ":memory:" is a separate database
	db.SetMaxOpenConns(1)
	_, err = db.Exec(`CREATE TABLE project_members (
		project_id TEXT NOT NULL,
		user_id    TEXT NOT NULL,
		PRIMARY KEY (project_id, user_id)
	)`)
	require.NoError(t, err)

	return &memStore{
		db:            db,
		users:         map[string]*models.User{},
		registrations: map[string]*models.PendingRegistration{},
		invitations:   map[string]*models.ProjectInvitation{},
		projects:      map[string]*models.Project{},
	}
}

func (m *memStore) RunMigrations(context.Context, *sql.DB) error     { return nil }
func (m *memStore) Users(dbx.DBTX) users.Repository                 { return memUsers{m} }
func (m *memStore) Registrations(dbx.DBTX) registrations.Repository { return memRegistrations{m} }
func (m *memStore) Invitations(dbx.DBTX) invitations.Repository     { return memInvitations{m} }

// Projects binds to db; a nil db means the store's own connection.
func (m *memStore) Projects(db dbx.DBTX) projects.Repository {
	if db == nil {
		db = m.db
	}
	return memProjects{m: m, db: db}
}

// tick must be called with the lock held.
func (m *memStore) tick() time.Time {
	m.seq++
	return time.Unix(int64(m.seq), 0)
}

func (m *memStore) memberCount(t *testing.T, projectID string) (n int) {
	t.Helper()
	err := m.db.QueryRow(`SELECT COUNT(*) FROM project_members WHERE project_id = ?`, projectID).Scan(&n)
	require.NoError(t, err)
	return n
}

func (m *memStore) takeTransitionHook() func() {
	m.mu.Lock()
	defer m.mu.Unlock()
	h := m.onTransition
	m.onTransition = nil
	return h
}

func cloneUser(u *models.User) *models.User {
	c := *u
	return &c
}

// ---- users ----

type memUsers struct{ m *memStore }

func (r memUsers) Create(_ context.Context, u *models.User) (*models.User, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	for _, x := range r.m.users {
		if x.Email == u.Email {
			return nil, common.ErrorConflict
		}
	}
	c := cloneUser(u)
	c.ID = uuid.NewString()
	c.CreatedAt = r.m.tick()
	r.m.users[c.ID] = c
	return cloneUser(c), nil
}

func (r memUsers) find(pred func(*models.User) bool) (*models.User, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	for _, u := range r.m.users {
		if pred(u) {
			return cloneUser(u), nil
		}
	}
	return nil, common.ErrorNotFound
}

func (r memUsers) GetByID(_ context.Context, id string) (*models.User, error) {
	return r.find(func(u *models.User) bool { return u.ID == id })
}

func (r memUsers) GetByEmail(_ context.Context, email string) (*models.User, error) {
	return r.find(func(u *models.User) bool { return u.Email == email })
}

func (r memUsers) GetByResetTokenHash(_ context.Context, hash string) (*models.User, error) {
	return r.find(func(u *models.User) bool { return u.ResetTokenHash != nil && *u.ResetTokenHash == hash })
}

func (r memUsers) GetByEmailVerificationTokenHash(_ context.Context, hash string) (*models.User, error) {
	return r.find(func(u *models.User) bool {
		return u.EmailVerificationTokenHash != nil && *u.EmailVerificationTokenHash == hash
	})
}

func (r memUsers) update(id string, noRows error, guard func(*models.User) bool, apply func(*models.User)) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	u, ok := r.m.users[id]
	if !ok || (guard != nil && !guard(u)) {
		return noRows
	}
	apply(u)
	return nil
}

func strPtr(s string) *string { return &s }

func (r memUsers) SetRefreshTokenHash(_ context.Context, id string, hash *string) error {
	return r.update(id, common.ErrorNotFound, nil, func(u *models.User) { u.RefreshTokenHash = hash })
}

func (r memUsers) RotateRefreshTokenHash(_ context.Context, id, oldHash, newHash string) error {
	return r.update(id, common.ErrorConflict,
		func(u *models.User) bool { return u.RefreshTokenHash != nil && *u.RefreshTokenHash == oldHash },
		func(u *models.User) { u.RefreshTokenHash = strPtr(newHash) })
}

func (r memUsers) SetResetToken(_ context.Context, id, hash string, expiry time.Time) error {
	return r.update(id, common.ErrorNotFound, nil, func(u *models.User) {
		u.ResetTokenHash = strPtr(hash)
		u.ResetTokenExpiry = &expiry
	})
}

func (r memUsers) ResetPassword(_ context.Context, id, resetHash, passwordHash string) error {
	return r.update(id, common.ErrorConflict,
		func(u *models.User) bool { return u.ResetTokenHash != nil && *u.ResetTokenHash == resetHash },
		func(u *models.User) {
			u.PasswordHash = passwordHash
			u.ResetTokenHash = nil
			u.ResetTokenExpiry = nil
			u.RefreshTokenHash = nil
		})
}

func (r memUsers) SetEmailVerificationToken(_ context.Context, id, hash string, expiry time.Time) error {
	return r.update(id, common.ErrorNotFound, nil, func(u *models.User) {
		u.EmailVerificationTokenHash = strPtr(hash)
		u.EmailVerificationExpiry = &expiry
	})
}

func (r memUsers) MarkEmailVerified(_ context.Context, id, hash string) error {
	return r.update(id, common.ErrorConflict,
		func(u *models.User) bool {
			return u.EmailVerificationTokenHash != nil && *u.EmailVerificationTokenHash == hash
		},
		func(u *models.User) {
			u.IsEmailVerified = true
			u.EmailVerificationTokenHash = nil
			u.EmailVerificationExpiry = nil
		})
}

// ---- registrations ----

type memRegistrations struct{ m *memStore }

func (r memRegistrations) Create(_ context.Context, p *models.PendingRegistration) (*models.PendingRegistration, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	for _, x := range r.m.registrations {
		if x.Email == p.Email {
			return nil, common.ErrorConflict
		}
	}
	c := *p
	c.ID = uuid.NewString()
	c.CreatedAt = r.m.tick()
	r.m.registrations[c.ID] = &c
	out := c
	return &out, nil
}

func (r memRegistrations) GetByEmail(_ context.Context, email string) (*models.PendingRegistration, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	for _, x := range r.m.registrations {
		if x.Email == email {
			c := *x
			return &c, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (r memRegistrations) UpdateOTP(_ context.Context, id, code string, expiry time.Time) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	x, ok := r.m.registrations[id]
	if !ok {
		return common.ErrorNotFound
	}
	x.OTPCode, x.OTPExpiry = code, expiry
	return nil
}

func (r memRegistrations) Delete(_ context.Context, id string) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if _, ok := r.m.registrations[id]; !ok {
		return common.ErrorNotFound
	}
	delete(r.m.registrations, id)
	return nil
}

func (r memRegistrations) DeleteByEmail(_ context.Context, email string) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	for id, x := range r.m.registrations {
		if x.Email == email {
			delete(r.m.registrations, id)
		}
	}
	return nil
}

// ---- invitations ----

type memInvitations struct{ m *memStore }

func (r memInvitations) Create(_ context.Context, inv *models.ProjectInvitation) (*models.ProjectInvitation, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	for _, x := range r.m.invitations {
		if x.Token == inv.Token {
			return nil, common.ErrorConflict
		}
	}
	c := *inv
	c.ID = uuid.NewString()
	c.CreatedAt = r.m.tick()
	r.m.invitations[c.ID] = &c
	out := c
	return &out, nil
}

// details must be called with the lock held.
func (r memInvitations) details(x *models.ProjectInvitation) *models.InvitationDetails {
	d := &models.InvitationDetails{ProjectInvitation: *x}
	if p, ok := r.m.projects[x.ProjectID]; ok {
		d.ProjectName, d.ProjectDescription = p.Name, p.Description
	}
	if u, ok := r.m.users[x.InviterID]; ok {
		d.InviterName = u.Name
	}
	return d
}

func (r memInvitations) GetByToken(_ context.Context, token string) (*models.InvitationDetails, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	for _, x := range r.m.invitations {
		if x.Token == token {
			return r.details(x), nil
		}
	}
	return nil, common.ErrorNotFound
}

func (r memInvitations) GetByID(_ context.Context, id string) (*models.InvitationDetails, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if x, ok := r.m.invitations[id]; ok {
		return r.details(x), nil
	}
	return nil, common.ErrorNotFound
}

func (r memInvitations) ListPendingByEmail(_ context.Context, email string, now time.Time) ([]*models.InvitationDetails, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	out := []*models.InvitationDetails{}
	for _, x := range r.m.invitations {
		if x.Email == email && x.Status == models.InvitationPending && x.ExpiresAt.After(now) {
			out = append(out, r.details(x))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r memInvitations) Transition(_ context.Context, id string, from, to models.InvitationStatus, acceptedUserID *string) error {
	if hook := r.m.takeTransitionHook(); hook != nil {
		hook()
	}

	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	x, ok := r.m.invitations[id]
	if !ok || x.Status != from {
		return common.ErrorConflict
	}
	x.Status = to
	if acceptedUserID != nil {
		x.AcceptedUserID = acceptedUserID
	}
	return nil
}

func (r memInvitations) ExpireStale(_ context.Context, email string, now time.Time) (int64, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	var n int64
	for _, x := range r.m.invitations {
		if x.Email == email && x.Status == models.InvitationPending && !x.ExpiresAt.After(now) {
			x.Status = models.InvitationExpired
			n++
		}
	}
	return n, nil
}

func (m *memStore) invitation(id string) models.ProjectInvitation {
	m.mu.Lock()
	defer m.mu.Unlock()
	return *m.invitations[id]
}

// ---- projects ----

type memProjects struct {
	m  *memStore
	db dbx.DBTX
}

func (r memProjects) GetByID(_ context.Context, id string) (*models.Project, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if p, ok := r.m.projects[id]; ok {
		c := *p
		return &c, nil
	}
	return nil, common.ErrorNotFound
}

// Membership queries must not hold r.m.mu: a transaction owns the only
// SQLite connection and may need the lock before it can finish.

func (r memProjects) AddMember(ctx context.Context, projectID, userID string) error {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO project_members (project_id, user_id) VALUES (?, ?) ON CONFLICT DO NOTHING`,
		projectID, userID)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err != nil {
		return err
	} else if n == 0 {
		return common.ErrorConflict
	}
	return nil
}

func (r memProjects) IsMember(ctx context.Context, projectID, userID string) (bool, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM project_members WHERE project_id = ? AND user_id = ?`,
		projectID, userID).Scan(&n)
	return n > 0, err
}

// ---- collaborators ----

type sentMessage struct {
	Template  notify.Template
	Recipient string
	Data      map[string]any
}

// recordingNotifier remembers every message and fails for addresses listed
// in failFor.
type recordingNotifier struct {
	mu      sync.Mutex
	sent    []sentMessage
	failFor map[string]bool
}

func (n *recordingNotifier) Send(_ context.Context, tpl notify.Template, recipient string, data map[string]any) notify.Result {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sent = append(n.sent, sentMessage{tpl, recipient, data})
	if n.failFor[recipient] {
		return notify.Failed(context.DeadlineExceeded)
	}
	return notify.Ok()
}

func (n *recordingNotifier) last(t *testing.T) sentMessage {
	t.Helper()
	n.mu.Lock()
	defer n.mu.Unlock()
	require.NotEmpty(t, n.sent, "no message sent")
	return n.sent[len(n.sent)-1]
}

// seqTokens hands out predictable tokens and codes.
type seqTokens struct {
	mu    sync.Mutex
	n     int
	codes []string
}

func (g *seqTokens) Token() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.n++
	return "tok-" + strconv.Itoa(g.n)
}

func (g *seqTokens) Code() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	if len(g.codes) == 0 {
		return "000000"
	}
	c := g.codes[0]
	g.codes = g.codes[1:]
	return c
}

// clock is a settable time source.
type clock struct {
	mu sync.Mutex
	t  time.Time
}

func newClock() *clock { return &clock{t: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)} }

func (c *clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *clock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}
