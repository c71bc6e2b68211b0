package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/koinonia-app/koinonia/internal/domain"
	"github.com/koinonia-app/koinonia/internal/domain/mocks"
	"github.com/koinonia-app/koinonia/pkg/geocode"
	pkgmocks "github.com/koinonia-app/koinonia/pkg/mocks"
)

type userServiceMocks struct {
	repo        *mocks.MockUserRepository
	profileRepo *mocks.MockPublicProfileRepository
	authService *mocks.MockAuthService
	geocoder    *pkgmocks.MockGeocoder
	mailer      *pkgmocks.MockMailer
}

func newUserServiceTest(t *testing.T) (*UserService, userServiceMocks) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	m := userServiceMocks{
		repo:        mocks.NewMockUserRepository(ctrl),
		profileRepo: mocks.NewMockPublicProfileRepository(ctrl),
		authService: mocks.NewMockAuthService(ctrl),
		geocoder:    pkgmocks.NewMockGeocoder(ctrl),
		mailer:      pkgmocks.NewMockMailer(ctrl),
	}

	mockLogger := pkgmocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().WithField(gomock.Any(), gomock.Any()).Return(mockLogger).AnyTimes()
	mockLogger.EXPECT().Error(gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Warn(gomock.Any()).AnyTimes()

	service := NewUserService(m.repo, m.profileRepo, m.authService, m.geocoder, m.mailer, mockLogger)
	return service, m
}

func TestUserService_SignUp(t *testing.T) {
	ctx := context.Background()

	t.Run("creates pending account", func(t *testing.T) {
		service, m := newUserServiceTest(t)
		m.repo.EXPECT().GetUserByEmail(ctx, "maria@example.com").
			Return(nil, &domain.ErrUserNotFound{Message: "user not found"})
		m.repo.EXPECT().CreateUser(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, user *domain.User) error {
				assert.Equal(t, domain.RolePending, user.Role)
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("supersecret")))
				return nil
			})
		m.authService.EXPECT().GenerateAuthToken(gomock.Any()).Return("token123", time.Now().Add(time.Hour))

		resp, err := service.SignUp(ctx, domain.SignUpRequest{
			Email:    "maria@example.com",
			Password: "supersecret",
			Name:     "Maria Silva",
		})
		require.NoError(t, err)
		assert.Equal(t, "token123", resp.Token)
		assert.Equal(t, domain.RolePending, resp.User.Role)
	})

	t.Run("duplicate email rejected", func(t *testing.T) {
		service, m := newUserServiceTest(t)
		m.repo.EXPECT().GetUserByEmail(ctx, "maria@example.com").
			Return(&domain.User{ID: "u1", Email: "maria@example.com"}, nil)

		_, err := service.SignUp(ctx, domain.SignUpRequest{
			Email:    "maria@example.com",
			Password: "supersecret",
			Name:     "Maria Silva",
		})
		require.Error(t, err)
		assert.IsType(t, domain.ValidationError{}, err)
	})

	t.Run("short password rejected", func(t *testing.T) {
		service, _ := newUserServiceTest(t)
		_, err := service.SignUp(ctx, domain.SignUpRequest{
			Email:    "maria@example.com",
			Password: "short",
			Name:     "Maria Silva",
		})
		require.Error(t, err)
	})
}

func TestUserService_SignIn(t *testing.T) {
	ctx := context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte("supersecret"), bcrypt.MinCost)
	require.NoError(t, err)
	stored := &domain.User{ID: "u1", Email: "maria@example.com", PasswordHash: string(hash)}

	t.Run("successful sign in", func(t *testing.T) {
		service, m := newUserServiceTest(t)
		m.repo.EXPECT().GetUserByEmail(ctx, "maria@example.com").Return(stored, nil)
		m.authService.EXPECT().GenerateAuthToken(stored).Return("token123", time.Now().Add(time.Hour))

		resp, err := service.SignIn(ctx, domain.SignInRequest{Email: "maria@example.com", Password: "supersecret"})
		require.NoError(t, err)
		assert.Equal(t, "token123", resp.Token)
	})

	t.Run("wrong password", func(t *testing.T) {
		service, m := newUserServiceTest(t)
		m.repo.EXPECT().GetUserByEmail(ctx, "maria@example.com").Return(stored, nil)

		_, err := service.SignIn(ctx, domain.SignInRequest{Email: "maria@example.com", Password: "wrong"})
		assert.IsType(t, &domain.ErrInvalidCredentials{}, err)
	})

	t.Run("unknown email reports the same error", func(t *testing.T) {
		service, m := newUserServiceTest(t)
		m.repo.EXPECT().GetUserByEmail(ctx, "nobody@example.com").
			Return(nil, &domain.ErrUserNotFound{Message: "user not found"})

		_, err := service.SignIn(ctx, domain.SignInRequest{Email: "nobody@example.com", Password: "whatever"})
		assert.IsType(t, &domain.ErrInvalidCredentials{}, err)
	})
}

func TestUserService_UpdateUser_Promotion(t *testing.T) {
	ctx := context.Background()

	t.Run("promotion to leader generates gc id, geocodes and syncs profile", func(t *testing.T) {
		service, m := newUserServiceTest(t)
		m.authService.EXPECT().AuthenticateAdmin(ctx).Return(adminUser(), nil)
		m.repo.EXPECT().GetUserByID(ctx, "abcdef123456").Return(&domain.User{
			ID:       "abcdef123456",
			Email:    "joao@example.com",
			Name:     "João",
			Role:     domain.RoleMember,
			Endereco: "10 Downing Street, London",
			PostCod:  "SW1A 2AA",
		}, nil)
		m.geocoder.EXPECT().Geocode(ctx, "10 Downing Street, London", "SW1A 2AA").
			Return(&geocode.Coordinates{Lat: 51.5034, Lng: -0.1276}, nil)
		m.repo.EXPECT().UpdateUser(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, user *domain.User) error {
				assert.Equal(t, "gc_abcdef", user.GCID)
				require.NotNil(t, user.Lat)
				assert.Equal(t, 51.5034, *user.Lat)
				return nil
			})
		m.profileRepo.EXPECT().UpsertProfile(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, profile *domain.PublicProfile) error {
				assert.Equal(t, "abcdef123456", profile.UserID)
				assert.Equal(t, "João Pereira", profile.Name)
				return nil
			})
		m.mailer.EXPECT().SendLeaderWelcome("joao@example.com", "João Pereira", "gc_abcdef").Return(nil)

		user, err := service.UpdateUser(ctx, domain.UpdateUserRequest{
			ID:   "abcdef123456",
			Name: "João Pereira",
			Role: domain.RoleLeader,
		})
		require.NoError(t, err)
		assert.Equal(t, domain.RoleLeader, user.Role)
	})

	t.Run("geocode failure does not block promotion", func(t *testing.T) {
		service, m := newUserServiceTest(t)
		m.authService.EXPECT().AuthenticateAdmin(ctx).Return(adminUser(), nil)
		m.repo.EXPECT().GetUserByID(ctx, "u1").Return(&domain.User{
			ID:       "u1",
			Email:    "joao@example.com",
			Name:     "João",
			Role:     domain.RoleMember,
			Endereco: "Nowhere",
		}, nil)
		m.geocoder.EXPECT().Geocode(ctx, "Nowhere", "").
			Return(nil, &geocode.ErrNoResults{Address: "Nowhere"})
		m.repo.EXPECT().UpdateUser(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, user *domain.User) error {
				assert.Nil(t, user.Lat)
				return nil
			})
		m.profileRepo.EXPECT().UpsertProfile(ctx, gomock.Any()).Return(nil)
		m.mailer.EXPECT().SendLeaderWelcome(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		_, err := service.UpdateUser(ctx, domain.UpdateUserRequest{
			ID:   "u1",
			Name: "João",
			Role: domain.RoleLeader,
		})
		require.NoError(t, err)
	})

	t.Run("demotion deletes public profile", func(t *testing.T) {
		service, m := newUserServiceTest(t)
		m.authService.EXPECT().AuthenticateAdmin(ctx).Return(adminUser(), nil)
		m.repo.EXPECT().GetUserByID(ctx, "u1").Return(&domain.User{
			ID:   "u1",
			Name: "João",
			Role: domain.RoleLeader,
			GCID: "gc_u1",
		}, nil)
		m.repo.EXPECT().UpdateUser(ctx, gomock.Any()).Return(nil)
		m.profileRepo.EXPECT().DeleteProfile(ctx, "u1").Return(nil)

		user, err := service.UpdateUser(ctx, domain.UpdateUserRequest{
			ID:   "u1",
			Name: "João",
			Role: domain.RoleMember,
		})
		require.NoError(t, err)
		assert.Equal(t, domain.RoleMember, user.Role)
	})

	t.Run("activation from pendente sends notice", func(t *testing.T) {
		service, m := newUserServiceTest(t)
		m.authService.EXPECT().AuthenticateAdmin(ctx).Return(adminUser(), nil)
		m.repo.EXPECT().GetUserByID(ctx, "u1").Return(&domain.User{
			ID:    "u1",
			Email: "ana@example.com",
			Name:  "Ana",
			Role:  domain.RolePending,
		}, nil)
		m.repo.EXPECT().UpdateUser(ctx, gomock.Any()).Return(nil)
		m.profileRepo.EXPECT().DeleteProfile(ctx, "u1").Return(nil)
		m.mailer.EXPECT().SendAccountActivated("ana@example.com", "Ana").Return(nil)

		_, err := service.UpdateUser(ctx, domain.UpdateUserRequest{
			ID:   "u1",
			Name: "Ana",
			Role: domain.RoleMember,
		})
		require.NoError(t, err)
	})
}

func TestUserService_DeleteUser(t *testing.T) {
	ctx := context.Background()

	t.Run("profile removed before the account", func(t *testing.T) {
		service, m := newUserServiceTest(t)
		m.authService.EXPECT().AuthenticateAdmin(ctx).Return(adminUser(), nil)
		gomock.InOrder(
			m.profileRepo.EXPECT().DeleteProfile(ctx, "u1").Return(nil),
			m.repo.EXPECT().DeleteUser(ctx, "u1").Return(nil),
		)

		require.NoError(t, service.DeleteUser(ctx, "u1"))
	})
}
