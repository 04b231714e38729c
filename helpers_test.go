package todoauth

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/hyeonuk/todoauth/password"
	"github.com/redis/go-redis/v9"
)

type memStore struct {
	mu      sync.Mutex
	members map[string]Member
	saveErr error
}

func newMemStore() *memStore {
	return &memStore{members: map[string]Member{}}
}

func (s *memStore) FindByID(_ context.Context, id string) (*Member, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.members[id]
	if !ok {
		return nil, ErrMemberNotFound
	}
	out := m
	return &out, nil
}

func (s *memStore) FindByEmail(_ context.Context, email string) (*Member, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, m := range s.members {
		if m.Email == email {
			out := m
			return &out, nil
		}
	}
	return nil, ErrMemberNotFound
}

func (s *memStore) Save(_ context.Context, member *Member) (*Member, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.saveErr != nil {
		return nil, s.saveErr
	}
	s.members[member.ID] = *member
	out := *member
	return &out, nil
}

func (s *memStore) get(t *testing.T, id string) Member {
	t.Helper()
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.members[id]
	if !ok {
		t.Fatalf("member %q not in store", id)
	}
	return m
}

type fakeSender struct {
	mu       sync.Mutex
	fail     bool
	messages []sentMessage
}

type sentMessage struct {
	To      string
	Subject string
	Content string
}

func (s *fakeSender) Send(_ context.Context, to, subject, content string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail {
		return errors.New("smtp unreachable")
	}
	s.messages = append(s.messages, sentMessage{To: to, Subject: subject, Content: content})
	return nil
}

// lastCode extracts the verification code from the most recent message body.
func (s *fakeSender) lastCode(t *testing.T) string {
	t.Helper()
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.messages) == 0 {
		t.Fatal("no messages sent")
	}
	body := s.messages[len(s.messages)-1].Content
	i := strings.LastIndex(body, "\n")
	if i < 0 {
		t.Fatalf("unexpected message body %q", body)
	}
	return body[i+1:]
}

type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func newTestClock() *testClock {
	return &testClock{now: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

type testEnv struct {
	engine *Engine
	redis  *miniredis.Miniredis
	store  *memStore
	sender *fakeSender
	clock  *testClock
}

func testHasher(t *testing.T) *password.Argon2 {
	t.Helper()
	h, err := password.NewArgon2(password.Config{
		Memory:      8 * 1024,
		Time:        1,
		Parallelism: 1,
		SaltLength:  16,
		KeyLength:   16,
	})
	if err != nil {
		t.Fatalf("hasher setup failed: %v", err)
	}
	return h
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("miniredis run failed: %v", err)
	}
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	cfg := defaultConfig()
	cfg.Token.Secret = []byte("0123456789abcdef0123456789abcdef")
	cfg.Audit.Enabled = false

	store := newMemStore()
	sender := &fakeSender{}
	clock := newTestClock()

	engine, err := New().
		WithConfig(cfg).
		WithRedis(rdb).
		WithCredentialStore(store).
		WithEmailSender(sender).
		WithPasswordHasher(testHasher(t)).
		WithClock(clock.Now).
		Build()
	if err != nil {
		t.Fatalf("engine build failed: %v", err)
	}

	t.Cleanup(func() {
		engine.Close()
		_ = rdb.Close()
		mr.Close()
	})

	return &testEnv{
		engine: engine,
		redis:  mr,
		store:  store,
		sender: sender,
		clock:  clock,
	}
}

// registerMember provisions a member directly in the store with a known
// password, bypassing the registration flow.
func registerMember(t *testing.T, env *testEnv, id, email, plaintext string) {
	t.Helper()
	hash, err := testHasher(t).Hash(plaintext)
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	if _, err := env.store.Save(context.Background(), &Member{
		ID:           id,
		Email:        email,
		PasswordHash: hash,
		Name:         "Tester",
		Roles:        []string{"USER"},
	}); err != nil {
		t.Fatalf("seed member failed: %v", err)
	}
}

// requestCode runs the verification request flow and returns the delivered code.
func requestCode(t *testing.T, env *testEnv, email string) string {
	t.Helper()
	if err := env.engine.RequestVerification(context.Background(), email); err != nil {
		t.Fatalf("RequestVerification failed: %v", err)
	}
	return env.sender.lastCode(t)
}

func validRegisterRequest(code string) RegisterRequest {
	return RegisterRequest{
		ID:               "tester1",
		Email:            "tester@example.com",
		Name:             "Tester",
		Password:         "Abcdef1!",
		PasswordConfirm:  "Abcdef1!",
		VerificationCode: code,
		Agreed:           true,
	}
}
