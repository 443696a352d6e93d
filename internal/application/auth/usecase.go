package auth

import (
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/pedidos-api/internal/application/dto"
	"github.com/jhoicas/pedidos-api/internal/domain"
	"github.com/jhoicas/pedidos-api/internal/domain/access"
	"github.com/jhoicas/pedidos-api/internal/domain/entity"
	"github.com/jhoicas/pedidos-api/internal/domain/repository"
	"github.com/jhoicas/pedidos-api/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: login y registro.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// Login verifica username/password contra el hash bcrypt, exige cuenta activa,
// estampa ultimo_login y genera el JWT. Cualquier fallo (usuario inexistente,
// password incorrecto o cuenta inactiva) devuelve el mismo ErrAuthFailed para
// no filtrar cuál de las tres condiciones falló.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByUsername(in.Username)
	if err != nil {
		return nil, err
	}
	if user == nil || !user.Activo {
		return nil, domain.ErrAuthFailed
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrAuthFailed
	}
	now := time.Now().UTC()
	user.UltimoLogin = &now
	if err := uc.userRepo.Update(user); err != nil {
		return nil, err
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Username, user.Rol, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User:  *toUserResponse(user),
	}, nil
}

// Register crea un usuario nuevo. Solo un administrador puede registrar usuarios.
// Devuelve ErrUsernameExists o ErrEmailExists si alguno ya está tomado.
func (uc *AuthUseCase) Register(actor access.Actor, in dto.RegisterRequest) (*dto.UserResponse, error) {
	if err := access.Authorize(actor, entity.RolAdministrador); err != nil {
		return nil, err
	}
	if existing, _ := uc.userRepo.GetByUsername(in.Username); existing != nil {
		return nil, domain.ErrUsernameExists
	}
	if existing, _ := uc.userRepo.GetByEmail(in.Email); existing != nil {
		return nil, domain.ErrEmailExists
	}
	rol := in.Rol
	if rol == "" {
		rol = entity.RolVendedor
	}
	if !entity.RolValido(rol) {
		return nil, domain.ErrInvalidInput
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := &entity.User{
		ID:            uuid.New().String(),
		Username:      in.Username,
		Email:         in.Email,
		PasswordHash:  string(hash),
		Nombre:        in.Nombre,
		Rol:           rol,
		Activo:        true,
		FechaCreacion: time.Now().UTC(),
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:            u.ID,
		Username:      u.Username,
		Email:         u.Email,
		Nombre:        u.Nombre,
		Rol:           u.Rol,
		Activo:        u.Activo,
		FechaCreacion: u.FechaCreacion,
		UltimoLogin:   u.UltimoLogin,
	}
}
