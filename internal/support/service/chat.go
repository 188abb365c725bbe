package service

import (
	"context"
	"time"

	"flamesblue/internal/support/repository"
	"flamesblue/pkg/logger"
	"flamesblue/pkg/model"
	"flamesblue/pkg/sanitizer"
	"flamesblue/pkg/store"
	"flamesblue/pkg/validator"
)

const BotReply = "Thanks! A support specialist will reach out shortly. Meanwhile, can I help you with bookings or vehicle listings?"

type ChatService interface {
	Chat(ctx context.Context, req *model.ChatRequest) (*model.ChatResponse, error)
}

type chatService struct {
	repo      repository.MessageRepository
	validator *validator.RecordValidator
	log       *logger.Logger
	now       func() time.Time
}

func NewChatService(repo repository.MessageRepository, validator *validator.RecordValidator, log *logger.Logger) ChatService {
	return &chatService{
		repo:      repo,
		validator: validator,
		log:       log,
		now:       time.Now,
	}
}

// Chat logs the user's message followed by the fixed bot reply. If the
// reply cannot be stored the user message stays behind.
func (s *chatService) Chat(ctx context.Context, req *model.ChatRequest) (*model.ChatResponse, error) {
	req.UserID = sanitizer.NormalizeID(req.UserID)
	req.Message = sanitizer.NormalizeText(req.Message)

	if err := s.validator.Check(req); err != nil {
		s.log.Warn("Chat validation failed", "user_id", req.UserID, "error", err)
		return nil, err
	}

	for _, message := range []*model.SupportMessage{
		{UserID: req.UserID, Role: model.RoleUser, Message: req.Message},
		{UserID: req.UserID, Role: model.RoleBot, Message: BotReply},
	} {
		message.CreatedAt = model.Timestamp(s.now())
		if err := s.repo.Create(ctx, message); err != nil {
			s.log.Error("Failed to store support message",
				"user_id", req.UserID,
				"role", message.Role,
				"error", err,
			)
			return nil, store.AppError(err, "store support message")
		}
	}

	s.log.Info("Support chat answered", "user_id", req.UserID)

	return &model.ChatResponse{Reply: BotReply}, nil
}
