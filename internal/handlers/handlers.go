package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/Totarae/SecondBrain/internal/apperr"
	"github.com/Totarae/SecondBrain/internal/middleware"
	"github.com/Totarae/SecondBrain/internal/model"
	"github.com/Totarae/SecondBrain/internal/response"
	"github.com/Totarae/SecondBrain/internal/service"
	"github.com/Totarae/SecondBrain/internal/validation"
)

// maxBodySize ограничивает размер тела запроса.
const maxBodySize = 1 << 20

// Handler обрабатывает HTTP-запросы API.
type Handler struct {
	Users     *service.UserService
	Content   *service.ContentService
	Validator *validation.Validator
	Logger    *zap.Logger
}

// NewHandler создаёт обработчик
func NewHandler(users *service.UserService, content *service.ContentService, logger *zap.Logger) *Handler {
	return &Handler{
		Users:     users,
		Content:   content,
		Validator: validation.New(),
		Logger:    logger,
	}
}

// Signup регистрирует пользователя: 201 {id}, 409 если имя занято.
func (h *Handler) Signup(res http.ResponseWriter, req *http.Request) {
	var body model.SignupRequest
	if !h.decode(res, req, &body) {
		return
	}

	id, err := h.Users.CreateUser(req.Context(), body.Username, body.Password)
	if err != nil {
		response.Error(res, req, err, h.Logger)
		return
	}
	response.Created(res, model.SignupResponse{ID: id}, h.Logger)
}

// Signin проверяет учётные данные и возвращает токен.
func (h *Handler) Signin(res http.ResponseWriter, req *http.Request) {
	var body model.SigninRequest
	if !h.decode(res, req, &body) {
		return
	}

	token, expires, err := h.Users.Authenticate(req.Context(), body.Username, body.Password)
	if err != nil {
		response.Error(res, req, err, h.Logger)
		return
	}
	response.OK(res, model.SigninResponse{Token: token, ExpiresAt: expires}, h.Logger)
}

// AddContent сохраняет ссылку текущего пользователя.
func (h *Handler) AddContent(res http.ResponseWriter, req *http.Request) {
	userID, ok := h.userID(res, req)
	if !ok {
		return
	}

	var body model.AddContentRequest
	if !h.decode(res, req, &body) {
		return
	}

	id, err := h.Content.AddContent(req.Context(), userID, body.Title, body.Link, model.ContentType(body.Type), body.Tags)
	if err != nil {
		response.Error(res, req, err, h.Logger)
		return
	}
	response.OK(res, model.AddContentResponse{ID: id}, h.Logger)
}

// ListContent возвращает ссылки пользователя, ?type= фильтрует по платформе.
func (h *Handler) ListContent(res http.ResponseWriter, req *http.Request) {
	userID, ok := h.userID(res, req)
	if !ok {
		return
	}

	contentType := model.ContentType(strings.TrimSpace(req.URL.Query().Get("type")))
	items, err := h.Content.ListContent(req.Context(), userID, contentType)
	if err != nil {
		response.Error(res, req, err, h.Logger)
		return
	}
	response.OK(res, model.NewContentListResponse(items), h.Logger)
}

// DeleteContent удаляет ссылку. ID берётся из пути или из тела {contentId}.
func (h *Handler) DeleteContent(res http.ResponseWriter, req *http.Request) {
	userID, ok := h.userID(res, req)
	if !ok {
		return
	}

	contentID := chi.URLParam(req, "contentId")
	if contentID == "" {
		var body model.DeleteContentRequest
		if !h.decode(res, req, &body) {
			return
		}
		contentID = body.ContentID
	}

	if err := h.Content.DeleteContent(req.Context(), userID, contentID); err != nil {
		response.Error(res, req, err, h.Logger)
		return
	}
	response.OK(res, model.MessageResponse{Message: "content deleted"}, h.Logger)
}

// ShareBrain включает (share=true или без тела) или выключает публичную ссылку.
func (h *Handler) ShareBrain(res http.ResponseWriter, req *http.Request) {
	userID, ok := h.userID(res, req)
	if !ok {
		return
	}

	var body model.ShareRequest
	if req.Method == http.MethodPost && !h.decodeOptional(res, req, &body) {
		return
	}

	if !body.Enabled() {
		if err := h.Content.DisableShareLink(req.Context(), userID); err != nil {
			response.Error(res, req, err, h.Logger)
			return
		}
		response.OK(res, model.MessageResponse{Message: "share link removed"}, h.Logger)
		return
	}

	hash, err := h.Content.GetOrCreateShareLink(req.Context(), userID)
	if err != nil {
		response.Error(res, req, err, h.Logger)
		return
	}
	response.OK(res, model.ShareResponse{Hash: hash}, h.Logger)
}

// ResolveShare публичный просмотр чужих ссылок по hash.
func (h *Handler) ResolveShare(res http.ResponseWriter, req *http.Request) {
	hash := chi.URLParam(req, "shareHash")
	if hash == "" {
		response.Error(res, req, apperr.Validation("share hash is required"), h.Logger)
		return
	}

	username, items, err := h.Content.ResolveShareLink(req.Context(), hash)
	if err != nil {
		response.Error(res, req, err, h.Logger)
		return
	}
	response.OK(res, model.SharedBrainResponse{
		Username: username,
		Content:  model.NewContentListResponse(items).Content,
	}, h.Logger)
}

// PingHandler проверяет доступность хранилища
func (h *Handler) PingHandler(res http.ResponseWriter, req *http.Request) {
	if err := h.Content.Ping(req.Context()); err != nil {
		h.Logger.Error("storage ping failed", zap.Error(err))
		http.Error(res, "Storage unavailable", http.StatusInternalServerError)
		return
	}
	res.WriteHeader(http.StatusOK)
	_, _ = res.Write([]byte("OK"))
}

func (h *Handler) userID(res http.ResponseWriter, req *http.Request) (string, bool) {
	userID, ok := middleware.UserIDFromContext(req.Context())
	if !ok {
		response.Error(res, req, apperr.Auth("missing authorization token"), h.Logger)
	}
	return userID, ok
}

// decode читает JSON в dst и валидирует его. При ошибке ответ уже записан.
func (h *Handler) decode(res http.ResponseWriter, req *http.Request, dst any) bool {
	if err := readJSON(res, req, dst); err != nil {
		if errors.Is(err, io.EOF) {
			err = apperr.Validation("request body is empty")
		}
		response.Error(res, req, err, h.Logger)
		return false
	}
	return h.validate(res, req, dst)
}

// decodeOptional то же, что decode, но пустое тело допустимо.
func (h *Handler) decodeOptional(res http.ResponseWriter, req *http.Request, dst any) bool {
	if err := readJSON(res, req, dst); err != nil && !errors.Is(err, io.EOF) {
		response.Error(res, req, err, h.Logger)
		return false
	}
	return h.validate(res, req, dst)
}

func (h *Handler) validate(res http.ResponseWriter, req *http.Request, dst any) bool {
	if err := h.Validator.Validate(dst); err != nil {
		response.Error(res, req, err, h.Logger)
		return false
	}
	return true
}

func readJSON(res http.ResponseWriter, req *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(res, req.Body, maxBodySize))
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return err
		}
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return apperr.Validation("request body too large")
		}
		return apperr.Validation("invalid JSON body").WithCause(err)
	}
	return nil
}
