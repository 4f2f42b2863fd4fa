package server

import (
	"strconv"
	"time"

	"wellspring/internal/middleware"
	"wellspring/internal/models"
	"wellspring/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const tokenTTL = 72 * time.Hour

// RegisterRequest is the payload for account creation.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the payload for credential verification.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse carries the issued token and the account it belongs to.
type AuthResponse struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

// Register handles new account creation
func (s *Server) Register(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, models.NewValidationError("Invalid request body"))
	}

	user, err := s.authService.Register(c.UserContext(), service.RegisterInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return fail(c, err)
	}

	token, err := s.generateToken(user.ID)
	if err != nil {
		middleware.Logger.ErrorContext(c.UserContext(), "token generation failed", "error", err)
		return fail(c, models.NewInternalError(err))
	}

	middleware.Logger.InfoContext(c.UserContext(), "account created",
		"user_id", user.ID, "username", user.Username)

	return c.Status(fiber.StatusCreated).JSON(AuthResponse{Token: token, User: user})
}

// Login verifies credentials and issues a token
func (s *Server) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, models.NewValidationError("Invalid request body"))
	}

	user, err := s.authService.Authenticate(c.UserContext(), req.Email, req.Password)
	if err != nil {
		return fail(c, err)
	}

	token, err := s.generateToken(user.ID)
	if err != nil {
		middleware.Logger.ErrorContext(c.UserContext(), "token generation failed", "error", err)
		return fail(c, models.NewInternalError(err))
	}

	middleware.Logger.InfoContext(c.UserContext(), "login", "user_id", user.ID)

	return c.JSON(AuthResponse{Token: token, User: user})
}

// Logout revokes the presented token by blacklisting its JTI until expiry.
func (s *Server) Logout(c *fiber.Ctx) error {
	s.revokeBearer(c)
	return c.JSON(fiber.Map{"message": "Logged out"})
}

// revokeBearer blacklists the JTI of the presented bearer token until the
// token itself expires, so it can no longer pass AuthRequired. Best-effort:
// without Redis there is no blacklist to write to.
func (s *Server) revokeBearer(c *fiber.Ctx) {
	if s.redis == nil {
		return
	}
	authHeader := c.Get("Authorization")
	if len(authHeader) < 8 || authHeader[:7] != "Bearer " {
		return
	}

	token, _, err := jwt.NewParser().ParseUnverified(authHeader[7:], jwt.MapClaims{})
	if err != nil {
		return
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return
	}
	jti, _ := claims["jti"].(string)
	if jti == "" {
		return
	}

	ttl := tokenTTL
	if exp, expOk := claims["exp"].(float64); expOk {
		if remaining := time.Until(time.Unix(int64(exp), 0)); remaining > 0 {
			ttl = remaining
		}
	}
	if err := s.redis.Set(c.Context(), "blacklist:"+jti, "1", ttl).Err(); err != nil {
		middleware.Logger.WarnContext(c.UserContext(), "token revocation write failed", "error", err)
	}
}

// generateToken issues a signed HS256 token for the given user.
func (s *Server) generateToken(userID uint) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": strconv.FormatUint(uint64(userID), 10),
		"iss": "wellspring-api",
		"aud": "wellspring-client",
		"jti": uuid.NewString(),
		"iat": now.Unix(),
		"exp": now.Add(tokenTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.config.JWTSecret))
}
