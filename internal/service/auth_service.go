package service

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
	"golang.org/x/crypto/bcrypt"

	"trufapro/internal/contract"
	"trufapro/internal/utils"
	"trufapro/internal/utils/apierror"
)

type DefaultAuthService struct {
	PinHash  []byte
	Secret   []byte
	Validate *validator.Validate

	Now func() time.Time
}

func NewAuthService(pinHash, secret []byte, validate *validator.Validate) *DefaultAuthService {
	return &DefaultAuthService{
		PinHash:  pinHash,
		Secret:   secret,
		Validate: validate,
		Now:      time.Now,
	}
}

// Login compares the PIN against the stored bcrypt hash and issues a
// session token.
func (a *DefaultAuthService) Login(req *contract.LoginRequest) (*contract.LoginResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if valerr := a.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	if err := bcrypt.CompareHashAndPassword(a.PinHash, []byte(req.Pin)); err != nil {
		return nil, apierror.InvalidPinError
	}

	token, err := utils.GenerateToken(a.Secret, a.Now())
	if err != nil {
		log.Errorf("failed to sign session token: %v", err)
		return nil, apierror.InternalServerError
	}
	return &contract.LoginResponse{Token: token}, nil
}
