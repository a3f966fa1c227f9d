package auth

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/pdv-api/internal/application/dto"
	"github.com/jhoicas/pdv-api/internal/domain"
	"github.com/jhoicas/pdv-api/pkg/jwt"
)

// MethodAccessCode sesión abierta con el código de acceso del PDV.
const MethodAccessCode = "code"

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase login por código de acceso compartido. Es una barrera de conveniencia
// para la caja, no un control de seguridad.
type AuthUseCase struct {
	codeHash []byte
	jwtCfg   JWTConfig
	now      func() time.Time
}

// NewAuthUseCase acepta el código en claro o ya hasheado con bcrypt ($2a$/$2b$...).
// Un código vacío deshabilita el login.
func NewAuthUseCase(accessCode string, jwtCfg JWTConfig) (*AuthUseCase, error) {
	uc := &AuthUseCase{jwtCfg: jwtCfg, now: time.Now}
	switch {
	case accessCode == "":
	case strings.HasPrefix(accessCode, "$2"):
		if _, err := bcrypt.Cost([]byte(accessCode)); err != nil {
			return nil, err
		}
		uc.codeHash = []byte(accessCode)
	default:
		hash, err := bcrypt.GenerateFromPassword([]byte(accessCode), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		uc.codeHash = hash
	}
	return uc, nil
}

// Login verifica el código y emite un token de sesión.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	if len(uc.codeHash) == 0 || in.AccessCode == "" {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword(uc.codeHash, []byte(in.AccessCode)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, uuid.NewString(), MethodAccessCode, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token:     token,
		ExpiresAt: uc.now().Add(time.Duration(uc.jwtCfg.ExpMinutes) * time.Minute).UTC(),
	}, nil
}
