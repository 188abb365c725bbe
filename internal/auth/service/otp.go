package service

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"errors"
	"math/big"
	"strconv"
	"time"

	"flamesblue/internal/auth/repository"
	apperrors "flamesblue/pkg/errors"
	"flamesblue/pkg/logger"
	"flamesblue/pkg/model"
	"flamesblue/pkg/sanitizer"
	"flamesblue/pkg/store"
	"flamesblue/pkg/validator"
)

const (
	minOtpCode = 100000
	maxOtpCode = 999999
)

type OtpService interface {
	SendOtp(ctx context.Context, req *model.SendOtpRequest) (*model.SendOtpResponse, error)
	VerifyOtp(ctx context.Context, req *model.VerifyOtpRequest) error
}

type otpService struct {
	otps      repository.OtpRepository
	users     repository.UserRepository
	sender    CodeSender
	validator *validator.RecordValidator
	log       *logger.Logger
	echoCode  bool
	now       func() time.Time
	generate  func() (string, error)
}

// NewOtpService builds the two-step phone login. With echoCode set the
// generated code is also returned to the caller.
func NewOtpService(
	otps repository.OtpRepository,
	users repository.UserRepository,
	sender CodeSender,
	validator *validator.RecordValidator,
	log *logger.Logger,
	echoCode bool,
) OtpService {
	return &otpService{
		otps:      otps,
		users:     users,
		sender:    sender,
		validator: validator,
		log:       log,
		echoCode:  echoCode,
		now:       time.Now,
		generate:  generateCode,
	}
}

// generateCode returns a uniformly random code in [100000, 999999].
func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(maxOtpCode-minOtpCode+1))
	if err != nil {
		return "", err
	}
	return strconv.FormatInt(n.Int64()+minOtpCode, 10), nil
}

func (s *otpService) SendOtp(ctx context.Context, req *model.SendOtpRequest) (*model.SendOtpResponse, error) {
	req.Phone = sanitizer.NormalizePhone(req.Phone)
	if err := s.validator.Check(req); err != nil {
		s.log.Warn("Send OTP validation failed", "error", err)
		return nil, err
	}

	code, err := s.generate()
	if err != nil {
		s.log.Error("Failed to generate OTP", "error", err)
		return nil, apperrors.Internal("Internal server error", err)
	}

	otp := &model.Otp{
		Phone:     req.Phone,
		Code:      code,
		CreatedAt: model.Timestamp(s.now()),
	}
	if err := s.validator.Check(otp); err != nil {
		s.log.Error("Generated OTP failed validation", "error", err)
		return nil, apperrors.Internal("Internal server error", err)
	}

	if err := s.otps.Create(ctx, otp); err != nil {
		s.log.Error("Failed to store OTP", "error", err)
		return nil, store.AppError(err, "store otp")
	}

	// The code is stored; a delivery failure must not fail the request.
	if err := s.sender.SendCode(ctx, otp.Phone, otp.Code); err != nil {
		s.log.Error("Failed to dispatch OTP", "otp_id", otp.ID, "error", err)
	}

	s.log.Info("OTP issued", "otp_id", otp.ID)

	resp := &model.SendOtpResponse{Status: model.OtpStatusSent}
	if s.echoCode {
		resp.Code = otp.Code
	}
	return resp, nil
}

// VerifyOtp checks code against the latest code issued for the phone and
// makes sure a user exists for it. Verifying again with the same code
// succeeds and does not create a second user.
func (s *otpService) VerifyOtp(ctx context.Context, req *model.VerifyOtpRequest) error {
	req.Phone = sanitizer.NormalizePhone(req.Phone)
	if err := s.validator.Check(req); err != nil {
		s.log.Warn("Verify OTP validation failed", "error", err)
		return err
	}

	latest, err := s.otps.FindLatest(ctx, req.Phone)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			s.log.Warn("OTP verification failed", "reason", "no code issued")
			return apperrors.Authentication(apperrors.MsgInvalidOtp)
		}
		s.log.Error("Failed to look up OTP", "error", err)
		return store.AppError(err, "find otp")
	}

	if subtle.ConstantTimeCompare([]byte(latest.Code), []byte(*req.Code)) != 1 {
		s.log.Warn("OTP verification failed", "reason", "code mismatch", "otp_id", latest.ID)
		return apperrors.Authentication(apperrors.MsgInvalidOtp)
	}

	user := &model.User{
		Phone:     req.Phone,
		CreatedAt: model.Timestamp(s.now()),
	}
	created, err := s.users.CreateIfAbsent(ctx, user)
	if err != nil {
		s.log.Error("Failed to upsert user", "error", err)
		return store.AppError(err, "upsert user")
	}

	s.log.Info("OTP verified", "otp_id", latest.ID, "user_created", created)
	return nil
}
