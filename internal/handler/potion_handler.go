package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/GoArmGo/PotionApp/internal/domain"
	"github.com/GoArmGo/PotionApp/internal/usecase"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// PotionHandler — обработчик HTTP-запросов для работы с зельями.
type PotionHandler struct {
	potionUseCase usecase.PotionUseCase
	logger        *slog.Logger
}

// NewPotionHandler создаёт новый экземпляр PotionHandler.
func NewPotionHandler(uc usecase.PotionUseCase, logger *slog.Logger) *PotionHandler {
	return &PotionHandler{potionUseCase: uc, logger: logger}
}

// potionID разбирает параметр {id} маршрута.
// Некорректный формат отсекается здесь, до обращения к хранилищу.
func potionID(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		return uuid.Nil, domain.NewValidationError("некорректный идентификатор зелья")
	}
	return id, nil
}

// List — возвращает все зелья.
func (h *PotionHandler) List(w http.ResponseWriter, r *http.Request) {
	potions, err := h.potionUseCase.List(r.Context())
	if err != nil {
		respondDomainError(w, err, h.logger)
		return
	}
	respondWithJSON(w, http.StatusOK, potions, h.logger)
}

// ListNames — возвращает список имен зелий.
func (h *PotionHandler) ListNames(w http.ResponseWriter, r *http.Request) {
	names, err := h.potionUseCase.ListNames(r.Context())
	if err != nil {
		respondDomainError(w, err, h.logger)
		return
	}
	respondWithJSON(w, http.StatusOK, names, h.logger)
}

// FindByVendor — возвращает зелья указанного продавца.
func (h *PotionHandler) FindByVendor(w http.ResponseWriter, r *http.Request) {
	vendorID := chi.URLParam(r, "vendor_id")

	potions, err := h.potionUseCase.FindByVendor(r.Context(), vendorID)
	if err != nil {
		respondDomainError(w, err, h.logger)
		return
	}
	respondWithJSON(w, http.StatusOK, potions, h.logger)
}

// FindByPriceRange — возвращает зелья в диапазоне цен min..max (включительно).
// Отсутствующая граница оставляет свою сторону открытой,
// нечисловая — ошибка валидации.
func (h *PotionHandler) FindByPriceRange(w http.ResponseWriter, r *http.Request) {
	parseBound := func(name string) (*float64, error) {
		raw := r.URL.Query().Get(name)
		if raw == "" {
			return nil, nil
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, domain.NewValidationError("параметр " + name + " должен быть числом")
		}
		return &v, nil
	}

	min, err := parseBound("min")
	if err != nil {
		respondDomainError(w, err, h.logger)
		return
	}
	max, err := parseBound("max")
	if err != nil {
		respondDomainError(w, err, h.logger)
		return
	}

	potions, err := h.potionUseCase.FindByPriceRange(r.Context(), min, max)
	if err != nil {
		respondDomainError(w, err, h.logger)
		return
	}
	respondWithJSON(w, http.StatusOK, potions, h.logger)
}

// FindByID — возвращает зелье по ID, 404 если запись отсутствует.
func (h *PotionHandler) FindByID(w http.ResponseWriter, r *http.Request) {
	id, err := potionID(r)
	if err != nil {
		respondDomainError(w, err, h.logger)
		return
	}

	potion, err := h.potionUseCase.FindByID(r.Context(), id)
	if err != nil {
		respondDomainError(w, err, h.logger)
		return
	}
	respondWithJSON(w, http.StatusOK, potion, h.logger)
}

// Create — создает зелье и возвращает сохраненную запись.
func (h *PotionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input domain.PotionInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.logger.Warn("invalid potion body", "error", err)
		respondWithError(w, http.StatusBadRequest, "некорректное тело запроса", h.logger)
		return
	}

	potion, err := h.potionUseCase.Create(r.Context(), input)
	if err != nil {
		respondDomainError(w, err, h.logger)
		return
	}

	h.logger.Info("potion created", "id", potion.ID)
	respondWithJSON(w, http.StatusCreated, potion, h.logger)
}

// Update — частично обновляет переданные поля зелья.
func (h *PotionHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := potionID(r)
	if err != nil {
		respondDomainError(w, err, h.logger)
		return
	}

	var input domain.PotionInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.logger.Warn("invalid potion body", "error", err)
		respondWithError(w, http.StatusBadRequest, "некорректное тело запроса", h.logger)
		return
	}

	if err := h.potionUseCase.Update(r.Context(), id, input); err != nil {
		respondDomainError(w, err, h.logger)
		return
	}

	h.logger.Info("potion updated", "id", id)
	respondWithJSON(w, http.StatusOK, map[string]string{"message": "Зелье обновлено"}, h.logger)
}

// Delete — удаляет зелье, 404 если запись отсутствует.
func (h *PotionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := potionID(r)
	if err != nil {
		respondDomainError(w, err, h.logger)
		return
	}

	if err := h.potionUseCase.Delete(r.Context(), id); err != nil {
		respondDomainError(w, err, h.logger)
		return
	}

	h.logger.Info("potion deleted", "id", id)
	respondWithJSON(w, http.StatusOK, map[string]string{"message": "Зелье удалено"}, h.logger)
}
