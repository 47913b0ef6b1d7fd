package v1

import (
	"context"

	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/Totarae/SecondBrain/internal/apperr"
	"github.com/Totarae/SecondBrain/internal/middleware"
	"github.com/Totarae/SecondBrain/internal/model"
	"github.com/Totarae/SecondBrain/internal/service"
	"github.com/Totarae/SecondBrain/internal/validation"
)

// GRPCServer реализует BrainServiceServer поверх тех же сервисов, что и REST.
type GRPCServer struct {
	Users     *service.UserService
	Content   *service.ContentService
	Validator *validation.Validator
	Logger    *zap.Logger
}

var _ BrainServiceServer = (*GRPCServer)(nil)

func NewGRPCServer(users *service.UserService, content *service.ContentService, logger *zap.Logger) *GRPCServer {
	return &GRPCServer{
		Users:     users,
		Content:   content,
		Validator: validation.New(),
		Logger:    logger,
	}
}

func (s *GRPCServer) Signup(ctx context.Context, req *model.SignupRequest) (*model.SignupResponse, error) {
	if err := s.Validator.Validate(req); err != nil {
		return nil, s.toStatus(err)
	}
	id, err := s.Users.CreateUser(ctx, req.Username, req.Password)
	if err != nil {
		return nil, s.toStatus(err)
	}
	return &model.SignupResponse{ID: id}, nil
}

func (s *GRPCServer) Signin(ctx context.Context, req *model.SigninRequest) (*model.SigninResponse, error) {
	if err := s.Validator.Validate(req); err != nil {
		return nil, s.toStatus(err)
	}
	token, expires, err := s.Users.Authenticate(ctx, req.Username, req.Password)
	if err != nil {
		return nil, s.toStatus(err)
	}
	return &model.SigninResponse{Token: token, ExpiresAt: expires}, nil
}

func (s *GRPCServer) AddContent(ctx context.Context, req *model.AddContentRequest) (*model.AddContentResponse, error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.Validator.Validate(req); err != nil {
		return nil, s.toStatus(err)
	}
	id, err := s.Content.AddContent(ctx, userID, req.Title, req.Link, model.ContentType(req.Type), req.Tags)
	if err != nil {
		return nil, s.toStatus(err)
	}
	return &model.AddContentResponse{ID: id}, nil
}

func (s *GRPCServer) ListContent(ctx context.Context, req *ListContentRequest) (*model.ContentListResponse, error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	items, err := s.Content.ListContent(ctx, userID, model.ContentType(req.Type))
	if err != nil {
		return nil, s.toStatus(err)
	}
	resp := model.NewContentListResponse(items)
	return &resp, nil
}

func (s *GRPCServer) DeleteContent(ctx context.Context, req *model.DeleteContentRequest) (*model.MessageResponse, error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.Validator.Validate(req); err != nil {
		return nil, s.toStatus(err)
	}
	if err := s.Content.DeleteContent(ctx, userID, req.ContentID); err != nil {
		return nil, s.toStatus(err)
	}
	return &model.MessageResponse{Message: "content deleted"}, nil
}

func (s *GRPCServer) ShareBrain(ctx context.Context, req *model.ShareRequest) (*ShareBrainResponse, error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	if !req.Enabled() {
		if err := s.Content.DisableShareLink(ctx, userID); err != nil {
			return nil, s.toStatus(err)
		}
		return &ShareBrainResponse{Message: "share link removed"}, nil
	}
	hash, err := s.Content.GetOrCreateShareLink(ctx, userID)
	if err != nil {
		return nil, s.toStatus(err)
	}
	return &ShareBrainResponse{Hash: hash}, nil
}

func (s *GRPCServer) ResolveShare(ctx context.Context, req *ResolveShareRequest) (*model.SharedBrainResponse, error) {
	if err := s.Validator.Validate(req); err != nil {
		return nil, s.toStatus(err)
	}
	username, items, err := s.Content.ResolveShareLink(ctx, req.Hash)
	if err != nil {
		return nil, s.toStatus(err)
	}
	return &model.SharedBrainResponse{
		Username: username,
		Content:  model.NewContentListResponse(items).Content,
	}, nil
}

func requireUser(ctx context.Context) (string, error) {
	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		return "", status.Error(codes.Unauthenticated, "missing authorization token")
	}
	return userID, nil
}

// toStatus переводит ошибку в gRPC-статус. Внутренние ошибки логируются и скрываются.
func (s *GRPCServer) toStatus(err error) error {
	appErr := apperr.From(err)

	var code codes.Code
	switch appErr.Code {
	case apperr.CodeValidation:
		code = codes.InvalidArgument
	case apperr.CodeAuth:
		code = codes.Unauthenticated
	case apperr.CodeForbidden:
		code = codes.PermissionDenied
	case apperr.CodeNotFound:
		code = codes.NotFound
	case apperr.CodeConflict:
		code = codes.AlreadyExists
	default:
		s.Logger.Error("grpc request failed", zap.Error(err))
		return status.Error(codes.Internal, apperr.ErrInternal.Message)
	}
	return status.Error(code, appErr.Message)
}
