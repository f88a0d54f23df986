package handler

import (
	"log/slog"
	"net/http"

	"github.com/GoArmGo/PotionApp/internal/analytics"
	"github.com/GoArmGo/PotionApp/internal/usecase"
)

// AnalyticsHandler — обработчик HTTP-запросов аналитики.
type AnalyticsHandler struct {
	analyticsUseCase usecase.AnalyticsUseCase
	logger           *slog.Logger
}

// NewAnalyticsHandler создаёт новый экземпляр AnalyticsHandler.
func NewAnalyticsHandler(uc usecase.AnalyticsUseCase, logger *slog.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsUseCase: uc, logger: logger}
}

// DistinctCategories — число различных категорий по всей коллекции.
// Ответ — просто число, как в исходном контракте API.
func (h *AnalyticsHandler) DistinctCategories(w http.ResponseWriter, r *http.Request) {
	count, err := h.analyticsUseCase.DistinctCategoryCount(r.Context())
	if err != nil {
		respondDomainError(w, err, h.logger)
		return
	}
	respondWithJSON(w, http.StatusOK, count, h.logger)
}

// AverageScoreByVendor — средний балл по каждому продавцу.
func (h *AnalyticsHandler) AverageScoreByVendor(w http.ResponseWriter, r *http.Request) {
	rows, err := h.analyticsUseCase.AverageScoreByVendor(r.Context())
	if err != nil {
		respondDomainError(w, err, h.logger)
		return
	}
	respondWithJSON(w, http.StatusOK, rows, h.logger)
}

// AverageScoreByCategory — средний балл по каждой категории.
func (h *AnalyticsHandler) AverageScoreByCategory(w http.ResponseWriter, r *http.Request) {
	rows, err := h.analyticsUseCase.AverageScoreByCategory(r.Context())
	if err != nil {
		respondDomainError(w, err, h.logger)
		return
	}
	respondWithJSON(w, http.StatusOK, rows, h.logger)
}

// StrengthFlavorRatio — отношение strength/flavor по каждому зелью.
func (h *AnalyticsHandler) StrengthFlavorRatio(w http.ResponseWriter, r *http.Request) {
	rows, err := h.analyticsUseCase.StrengthFlavorRatio(r.Context())
	if err != nil {
		respondDomainError(w, err, h.logger)
		return
	}
	respondWithJSON(w, http.StatusOK, rows, h.logger)
}

// Search — обобщенная агрегация по параметрам groupBy/metric/field.
// Параметры проверяются по белым спискам до построения запроса.
func (h *AnalyticsHandler) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	query, err := analytics.ParseSearchQuery(q.Get("groupBy"), q.Get("metric"), q.Get("field"))
	if err != nil {
		h.logger.Warn("rejected analytics search parameters",
			"group_by", q.Get("groupBy"),
			"metric", q.Get("metric"),
			"field", q.Get("field"),
		)
		respondDomainError(w, err, h.logger)
		return
	}

	rows, err := h.analyticsUseCase.Search(r.Context(), query)
	if err != nil {
		respondDomainError(w, err, h.logger)
		return
	}
	respondWithJSON(w, http.StatusOK, rows, h.logger)
}
