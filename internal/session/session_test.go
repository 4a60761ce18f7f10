package session

import (
	"testing"
	"time"

	"finance-view/internal/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/suite"
)

type SessionTestSuite struct {
	suite.Suite
	cfg     config.SessionConfig
	manager *Manager
	tokens  *Tokens
}

func TestSessionSuite(t *testing.T) {
	suite.Run(t, new(SessionTestSuite))
}

func (s *SessionTestSuite) SetupTest() {
	secret, err := config.GenerateSecret()
	s.Require().NoError(err)

	s.cfg = config.SessionConfig{
		CookieName:    "finance_session",
		Secret:        secret,
		Issuer:        "test-issuer",
		TTL:           time.Hour,
		CacheCounters: 1000,
		CacheMaxCost:  100,
	}

	s.manager, err = NewManager(s.cfg)
	s.Require().NoError(err)
	s.tokens = NewTokens(s.cfg)
}

func (s *SessionTestSuite) TearDownTest() {
	s.manager.Close()
}

func (s *SessionTestSuite) TestScopedStoresAreIsolated() {
	alice := s.manager.Scope("alice")
	bob := s.manager.Scope("bob")

	s.Require().NoError(alice.Set("transactionFilters", []byte(`{"search":"coffee"}`)))

	data, ok := alice.Get("transactionFilters")
	s.True(ok)
	s.JSONEq(`{"search":"coffee"}`, string(data))

	_, ok = bob.Get("transactionFilters")
	s.False(ok)
}

func (s *SessionTestSuite) TestStoreCopiesValues() {
	store := s.manager.Scope("sid")
	value := []byte("original")
	s.Require().NoError(store.Set("key", value))

	value[0] = 'X'
	data, ok := store.Get("key")
	s.Require().True(ok)
	s.Equal("original", string(data))

	data[0] = 'Y'
	again, _ := store.Get("key")
	s.Equal("original", string(again))
}

func (s *SessionTestSuite) TestStoreDelete() {
	store := s.manager.Scope("sid")
	s.Require().NoError(store.Set("key", []byte("v")))

	store.Delete("key")

	_, ok := store.Get("key")
	s.False(ok)
}

func (s *SessionTestSuite) TestValueRoundTrip() {
	type view struct{ page int }

	s.Require().NoError(s.manager.SetValue("sid", "view", &view{page: 3}))

	value, ok := s.manager.Value("sid", "view")
	s.Require().True(ok)
	s.Equal(3, value.(*view).page)

	s.manager.DeleteValue("sid", "view")
	_, ok = s.manager.Value("sid", "view")
	s.False(ok)
}

func (s *SessionTestSuite) TestNonByteValueIsAMiss() {
	s.Require().NoError(s.manager.SetValue("sid", "key", 42))

	_, ok := s.manager.Scope("sid").Get("key")
	s.False(ok)
}

func (s *SessionTestSuite) TestIssueAndValidate() {
	sid := NewSessionID()

	token, expiresAt, err := s.tokens.Issue(sid)
	s.Require().NoError(err)
	s.NotEmpty(token)
	s.WithinDuration(time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	got, err := s.tokens.Validate(token)
	s.NoError(err)
	s.Equal(sid, got)
}

func (s *SessionTestSuite) TestIssueRejectsEmptySessionID() {
	_, _, err := s.tokens.Issue("")
	s.Error(err)
}

func (s *SessionTestSuite) TestValidateEmptyToken() {
	_, err := s.tokens.Validate("")
	s.ErrorIs(err, ErrEmptyToken)
}

func (s *SessionTestSuite) TestValidateExpiredToken() {
	s.tokens.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	token, _, err := s.tokens.Issue(NewSessionID())
	s.Require().NoError(err)

	s.tokens.now = time.Now
	_, err = s.tokens.Validate(token)
	s.ErrorIs(err, ErrExpiredToken)
}

func (s *SessionTestSuite) TestValidateWrongSecret() {
	token, _, err := s.tokens.Issue(NewSessionID())
	s.Require().NoError(err)

	other := s.cfg
	other.Secret = []byte("another-secret-that-is-long-enough-000")
	_, err = NewTokens(other).Validate(token)
	s.ErrorIs(err, ErrInvalidToken)
}

func (s *SessionTestSuite) TestValidateWrongIssuer() {
	other := s.cfg
	other.Issuer = "someone-else"
	token, _, err := NewTokens(other).Issue(NewSessionID())
	s.Require().NoError(err)

	_, err = s.tokens.Validate(token)
	s.ErrorIs(err, ErrInvalidIssuer)
}

func (s *SessionTestSuite) TestValidateRejectsUnsignedToken() {
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.cfg.Issuer,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
		SessionID: NewSessionID(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	s.Require().NoError(err)

	_, err = s.tokens.Validate(token)
	s.ErrorIs(err, ErrInvalidToken)
}
