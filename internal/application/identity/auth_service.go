package identity

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/tableside/backend/internal/domain/identity"
	"github.com/tableside/backend/internal/domain/shared"
	"github.com/tableside/backend/internal/infrastructure/auth"
)

// AuthService handles restaurant signup, login, and logout
type AuthService struct {
	restaurantRepo identity.RestaurantRepository
	userRepo       identity.UserRepository
	jwtService     *auth.JWTService
	blacklist      auth.TokenBlacklist
	logger         *zap.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(
	restaurantRepo identity.RestaurantRepository,
	userRepo identity.UserRepository,
	jwtService *auth.JWTService,
	blacklist auth.TokenBlacklist,
	logger *zap.Logger,
) *AuthService {
	return &AuthService{
		restaurantRepo: restaurantRepo,
		userRepo:       userRepo,
		jwtService:     jwtService,
		blacklist:      blacklist,
		logger:         logger,
	}
}

// normalizeEmail matches the canonical form stored on the user aggregate,
// so lookups and the duplicate precheck cannot miss on letter case
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Signup registers a new restaurant together with its owner account. The
// two rows commit atomically: a duplicate email leaves no orphan restaurant.
func (s *AuthService) Signup(ctx context.Context, req SignupRequest) (*AuthResponse, error) {
	req.Email = normalizeEmail(req.Email)

	exists, err := s.userRepo.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "An account with this email already exists")
	}

	restaurant, err := identity.NewRestaurant(req.RestaurantName, req.City)
	if err != nil {
		return nil, err
	}

	owner, err := identity.NewOwner(restaurant.ID, req.OwnerName, req.Email, req.Password)
	if err != nil {
		return nil, err
	}

	if err := s.restaurantRepo.CreateWithOwner(ctx, restaurant, owner); err != nil {
		return nil, err
	}

	s.logger.Info("Restaurant signed up",
		zap.String("restaurant_id", restaurant.ID.String()),
		zap.String("email", owner.Email),
	)

	return s.issueToken(restaurant, owner)
}

// Login authenticates an owner by email and password
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*AuthResponse, error) {
	req.Email = normalizeEmail(req.Email)

	user, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		s.logger.Warn("Login attempt for unknown email", zap.String("email", req.Email))
		return nil, shared.NewDomainError("INVALID_CREDENTIALS", "Invalid email or password")
	}

	if !user.VerifyPassword(req.Password) {
		s.logger.Warn("Login attempt with wrong password", zap.String("email", req.Email))
		return nil, shared.NewDomainError("INVALID_CREDENTIALS", "Invalid email or password")
	}

	restaurant, err := s.restaurantRepo.FindByID(ctx, user.RestaurantID)
	if err != nil {
		return nil, err
	}

	return s.issueToken(restaurant, user)
}

// Logout blacklists the presented token until it would have expired anyway
func (s *AuthService) Logout(ctx context.Context, claims *auth.Claims) error {
	ttl := claims.GetRemainingTTL()
	if ttl <= 0 {
		return nil
	}

	if err := s.blacklist.AddToBlacklist(ctx, claims.ID, ttl); err != nil {
		return err
	}

	s.logger.Info("Token blacklisted on logout", zap.String("user_id", claims.UserID))
	return nil
}

// GetCurrentUser resolves the authenticated user and their restaurant
func (s *AuthService) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*AuthResponse, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	restaurant, err := s.restaurantRepo.FindByID(ctx, user.RestaurantID)
	if err != nil {
		return nil, err
	}

	return &AuthResponse{
		Restaurant: ToRestaurantResponse(restaurant),
		User:       ToUserResponse(user),
	}, nil
}

func (s *AuthService) issueToken(restaurant *identity.Restaurant, user *identity.User) (*AuthResponse, error) {
	token, err := s.jwtService.GenerateToken(auth.GenerateTokenInput{
		RestaurantID: restaurant.ID,
		UserID:       user.ID,
		Email:        user.Email,
		Role:         string(user.Role),
	})
	if err != nil {
		return nil, err
	}

	return &AuthResponse{
		Token:      token,
		Restaurant: ToRestaurantResponse(restaurant),
		User:       ToUserResponse(user),
	}, nil
}
