package users

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/dheurymy/api-task-manager/internal/apperr"
	"github.com/dheurymy/api-task-manager/internal/auth"
)

type Handler struct {
	Repo   *Repository
	Tokens *auth.TokenService
}

func NewHandler(repo *Repository, tokens *auth.TokenService) *Handler {
	return &Handler{Repo: repo, Tokens: tokens}
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

func (h *Handler) Register(c *fiber.Ctx) error {
	var body registerRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Corpo da requisição inválido")
	}

	body.Name = strings.TrimSpace(body.Name)
	body.Email = strings.TrimSpace(body.Email)
	if body.Name == "" || body.Email == "" || body.Password == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Nome, email e senha são obrigatórios")
	}

	hash, err := auth.HashPassword(body.Password)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Erro interno")
	}

	user := &User{Name: body.Name, Email: body.Email, PasswordHash: hash}
	if err := h.Repo.Create(c.UserContext(), user); err != nil {
		if errors.Is(err, apperr.ErrEmailTaken) {
			return fiber.NewError(fiber.StatusBadRequest, "Email já cadastrado")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Erro ao salvar usuário")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Usuário registrado com sucesso"})
}

func (h *Handler) Login(c *fiber.Ctx) error {
	var body loginRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Corpo da requisição inválido")
	}

	user, err := h.Repo.GetByEmail(c.UserContext(), body.Email)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return fiber.NewError(fiber.StatusUnauthorized, "Credenciais inválidas")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Erro ao buscar usuário")
	}

	if !auth.CheckPassword(user.PasswordHash, body.Password) {
		return fiber.NewError(fiber.StatusUnauthorized, "Credenciais inválidas")
	}

	token, err := h.Tokens.Issue(user.ID, user.Name, user.Email)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Erro ao gerar token")
	}

	return c.JSON(tokenResponse{Token: token})
}

// Logout keeps no server-side session state; tokens stay valid until expiry.
func (h *Handler) Logout(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"message": "Logout bem-sucedido"})
}
