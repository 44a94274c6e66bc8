package tasks

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/dheurymy/api-task-manager/internal/apperr"
	"github.com/dheurymy/api-task-manager/internal/auth"
)

// allowedUpdates is the only field set a PATCH may touch. A request carrying
// any other key is rejected wholesale before anything is read or written.
var allowedUpdates = map[string]bool{
	"text":        true,
	"category":    true,
	"isCompleted": true,
}

type Handler struct {
	Repo *Repository
}

func NewHandler(repo *Repository) *Handler {
	return &Handler{Repo: repo}
}

type createRequest struct {
	Text     string `json:"text"`
	Category string `json:"category"`
}

func (h *Handler) List(c *fiber.Ctx) error {
	claims, ok := auth.CurrentUser(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "Autorização negada")
	}

	items, err := h.Repo.ListByUser(c.UserContext(), claims.UserID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Erro ao buscar tarefas")
	}
	return c.JSON(items)
}

func (h *Handler) Create(c *fiber.Ctx) error {
	claims, ok := auth.CurrentUser(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "Autorização negada")
	}

	var body createRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Corpo da requisição inválido")
	}

	body.Text = strings.TrimSpace(body.Text)
	if body.Text == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Texto da tarefa é obrigatório")
	}

	task := &Task{UserID: claims.UserID, Text: body.Text, Category: body.Category}
	if err := h.Repo.Create(c.UserContext(), task); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Erro ao criar tarefa")
	}

	return c.Status(fiber.StatusCreated).JSON(task)
}

func (h *Handler) Update(c *fiber.Ctx) error {
	claims, ok := auth.CurrentUser(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "Autorização negada")
	}

	// Validate the key set before touching anything: one disallowed key
	// rejects the whole request, no field is applied.
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(c.Body(), &raw); err != nil || len(raw) == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "Corpo da requisição inválido")
	}
	for key := range raw {
		if !allowedUpdates[key] {
			return fiber.NewError(fiber.StatusBadRequest, "Atualizações inválidas")
		}
	}

	var fields UpdateFields
	if err := json.Unmarshal(c.Body(), &fields); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Corpo da requisição inválido")
	}

	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Tarefa não encontrada")
	}

	task, err := h.Repo.Update(c.UserContext(), claims.UserID, id, fields)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Tarefa não encontrada")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Erro ao atualizar tarefa")
	}
	return c.JSON(task)
}

func (h *Handler) Delete(c *fiber.Ctx) error {
	claims, ok := auth.CurrentUser(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "Autorização negada")
	}

	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Tarefa não encontrada")
	}

	if err := h.Repo.Delete(c.UserContext(), claims.UserID, id); err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Tarefa não encontrada")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Erro ao deletar tarefa")
	}
	return c.JSON(fiber.Map{"message": "Tarefa deletada"})
}
