//go:build e2e

package auth_test

import (
	"net/http"
	"testing"

	"venue-booking/internal/domain/user"
	"venue-booking/internal/handler/dto/request"
	resdto "venue-booking/internal/handler/dto/response"
	"venue-booking/internal/usecase/queries"
	"venue-booking/tests/common/authtest"
	"venue-booking/tests/common/dbtest"
	"venue-booking/tests/common/httptest"
	"venue-booking/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	loginURL    = "/api/auth/login"
	logoutURL   = "/api/auth/logout"
	refreshURL  = "/api/auth/refresh"
	registerURL = "/api/auth/register"
	meURL       = "/api/auth/me"
)

type authSuite struct {
	e2e.SharedSuite
	jwt *authtest.JWTHelper
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(authSuite))
}

func (s *authSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.jwt = authtest.NewJWTHelper(s.Config.JWT)
}

func (s *authSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()

	dbtest.CreateTestUser(s.T(), s.DB, "customer@example.com", string(user.RoleCustomer))
	dbtest.CreateTestUser(s.T(), s.DB, "owner@example.com", string(user.RoleHallOwner))
	dbtest.CreateTestUser(s.T(), s.DB, "inactive@example.com", string(user.RoleCustomer))

	_, err := s.DB.Exec(s.T().Context(), "UPDATE users SET is_active = false WHERE email = 'inactive@example.com'")
	require.NoError(s.T(), err)
}

func (s *authSuite) TestLogin() {
	tests := []struct {
		name           string
		email          string
		password       string
		expectedStatus int
	}{
		{name: "success: customer", email: "customer@example.com", password: "password123", expectedStatus: http.StatusOK},
		{name: "success: seeded admin", email: dbtest.DefaultAdminEmail, password: "password123", expectedStatus: http.StatusOK},
		{name: "error: unknown user", email: "nobody@example.com", password: "password123", expectedStatus: http.StatusUnauthorized},
		{name: "error: wrong password", email: "customer@example.com", password: "wrongpassword", expectedStatus: http.StatusUnauthorized},
		{name: "error: inactive account", email: "inactive@example.com", password: "password123", expectedStatus: http.StatusForbidden},
		{name: "error: empty email", email: "", password: "password123", expectedStatus: http.StatusBadRequest},
		{name: "error: empty password", email: "customer@example.com", password: "", expectedStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()

			w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
				request.LoginRequest{Email: tt.email, Password: tt.password}, "")
			require.Equal(t, tt.expectedStatus, w.Code, w.Body.String())

			if tt.expectedStatus != http.StatusOK {
				return
			}
			var res resdto.LoginResponse
			require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &res))
			require.Equal(t, tt.email, res.User.Email)
			require.NotNil(t, httptest.ExtractCookie(w, "access_token"))
			require.NotNil(t, httptest.ExtractCookie(w, "refresh_token"))

			var lastLogin any
			err := s.DB.QueryRow(t.Context(), "SELECT last_login FROM users WHERE email = $1", tt.email).Scan(&lastLogin)
			require.NoError(t, err)
			require.NotNil(t, lastLogin, "last_login not updated")
		})
	}
}

func (s *authSuite) TestRegister() {
	s.Run("success: defaults to the customer role", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, registerURL, request.RegisterRequest{
			Email: "new@example.com", Password: "password123", FullName: "New Customer",
		}, "")
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var res queries.AuthorizedUserView
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &res))
		require.Equal(t, string(user.RoleCustomer), res.Role)

		authtest.LoginUser(t, s.Router, "new@example.com", "password123")
	})

	s.Run("success: hall owner sign-up", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, registerURL, request.RegisterRequest{
			Email: "venue@example.com", Password: "password123", FullName: "Venue Owner", Role: "hall_owner",
		}, "")
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	})

	s.Run("error: admin sign-up is rejected", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, registerURL, request.RegisterRequest{
			Email: "root@example.com", Password: "password123", FullName: "Root", Role: "admin",
		}, "")
		require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
	})

	s.Run("error: duplicate email", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, registerURL, request.RegisterRequest{
			Email: "customer@example.com", Password: "password123", FullName: "Again",
		}, "")
		require.Equal(t, http.StatusConflict, w.Code, w.Body.String())
	})
}

func (s *authSuite) TestRefresh() {
	s.Run("success: rotates the cookie pair", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
			request.LoginRequest{Email: "customer@example.com", Password: "password123"}, "")
		require.Equal(t, http.StatusOK, w.Code)
		refresh := httptest.ExtractCookie(w, "refresh_token")
		require.NotNil(t, refresh)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, refreshURL,
			request.RefreshRequest{RefreshToken: refresh.Value}, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		require.NotNil(t, httptest.ExtractCookie(w, "access_token"))
	})

	s.Run("error: invalid refresh token", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, refreshURL,
			request.RefreshRequest{RefreshToken: "invalid-refresh-token"}, "")
		require.Equal(s.T(), http.StatusUnauthorized, w.Code)
	})

	s.Run("error: missing refresh token", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, refreshURL, request.RefreshRequest{}, "")
		require.Equal(s.T(), http.StatusBadRequest, w.Code)
	})
}

func (s *authSuite) TestLogout() {
	s.Run("success: clears the session", func() {
		token := authtest.LoginUser(s.T(), s.Router, "customer@example.com", "password123")
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, logoutURL, nil, token)
		require.Equal(s.T(), http.StatusNoContent, w.Code)
	})

	s.Run("error: invalid token", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, logoutURL, nil, "invalid-token")
		require.Equal(s.T(), http.StatusUnauthorized, w.Code)
	})
}

func (s *authSuite) TestMe() {
	s.Run("success: returns the hall owner profile", func() {
		t := s.T()

		token := authtest.LoginUser(t, s.Router, "owner@example.com", "password123")
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		body := w.Body.String()
		require.Contains(t, body, "owner@example.com")
		require.Contains(t, body, string(user.RoleHallOwner))
		require.NotContains(t, body, "password")
	})

	s.Run("error: expired token", func() {
		t := s.T()

		userID := dbtest.CreateTestUser(t, s.DB, "expiry@example.com", string(user.RoleCustomer))
		expired := s.jwt.CreateExpiredToken(t, userID, user.RoleCustomer)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, expired)
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	s.Run("error: no token", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, meURL, nil, "")
		require.Equal(s.T(), http.StatusUnauthorized, w.Code)
	})
}
