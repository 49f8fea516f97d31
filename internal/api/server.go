package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/erasmus-survival/erasmusbot/internal/models"
	"github.com/erasmus-survival/erasmusbot/internal/service"
)

// Server provides the HTTP JSON API consumed by the web client.
type Server struct {
	svc    *service.Service
	logger *logrus.Logger
	mux    *http.ServeMux
}

// NewServer creates a Server, registers all routes, and returns it.
func NewServer(svc *service.Service, logger *logrus.Logger) *Server {
	s := &Server{svc: svc, logger: logger, mux: http.NewServeMux()}
	s.routes()
	return s
}

// Handler returns the http.Handler that can be passed to http.Server.
func (s *Server) Handler() http.Handler {
	return s.mux
}

// ---------------------------------------------------------------------------
// Routes
// ---------------------------------------------------------------------------

func (s *Server) routes() {
	// Expenses
	s.mux.HandleFunc("GET /api/expenses", s.handleGetExpenses)
	s.mux.HandleFunc("POST /api/expenses", s.handleAddExpense)
	s.mux.HandleFunc("DELETE /api/expenses/{id}", s.handleDeleteExpense)

	// Expense categories
	s.mux.HandleFunc("GET /api/categories", s.handleGetCategories)
	s.mux.HandleFunc("POST /api/categories", s.handleAddCategory)
	s.mux.HandleFunc("PUT /api/categories/{id}", s.handleUpdateCategory)
	s.mux.HandleFunc("DELETE /api/categories/{id}", s.handleDeleteCategory)

	// Pantry
	s.mux.HandleFunc("GET /api/pantry", s.handleGetPantry)
	s.mux.HandleFunc("POST /api/pantry", s.handleAddPantryItem)
	s.mux.HandleFunc("PUT /api/pantry/{id}", s.handleUpdatePantryItem)
	s.mux.HandleFunc("DELETE /api/pantry/{id}", s.handleDeletePantryItem)
	s.mux.HandleFunc("POST /api/pantry/{id}/use", s.handleUsePantryItem)
	s.mux.HandleFunc("POST /api/pantry/{id}/refill", s.handleRefillPantryItem)

	// Shopping lists
	s.mux.HandleFunc("GET /api/lists", s.handleGetLists)
	s.mux.HandleFunc("POST /api/lists", s.handleAddList)
	s.mux.HandleFunc("PUT /api/lists/{id}", s.handleUpdateList)
	s.mux.HandleFunc("DELETE /api/lists/{id}", s.handleDeleteList)
	s.mux.HandleFunc("POST /api/lists/{id}/items", s.handleAddListItem)
	s.mux.HandleFunc("PUT /api/lists/{id}/items/{itemID}/toggle", s.handleToggleListItem)
	s.mux.HandleFunc("DELETE /api/lists/{id}/items/{itemID}", s.handleDeleteListItem)
	s.mux.HandleFunc("POST /api/lists/{id}/clear-checked", s.handleClearChecked)

	// Schedule
	s.mux.HandleFunc("GET /api/events", s.handleGetEvents)
	s.mux.HandleFunc("POST /api/events", s.handleAddEvent)
	s.mux.HandleFunc("PUT /api/events/{id}", s.handleUpdateEvent)
	s.mux.HandleFunc("DELETE /api/events/{id}", s.handleDeleteEvent)

	// Reminders
	s.mux.HandleFunc("GET /api/reminders", s.handleGetReminders)
	s.mux.HandleFunc("POST /api/reminders", s.handleAddReminder)
	s.mux.HandleFunc("PUT /api/reminders/{id}/toggle", s.handleToggleReminder)
	s.mux.HandleFunc("DELETE /api/reminders/{id}", s.handleDeleteReminder)

	// Data portability
	s.mux.HandleFunc("GET /api/export", s.handleExport)
	s.mux.HandleFunc("POST /api/import", s.handleImport)
	s.mux.HandleFunc("POST /api/reset", s.handleReset)
}

// ---------------------------------------------------------------------------
// JSON helpers
// ---------------------------------------------------------------------------

func (s *Server) respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			s.logger.WithError(err).Error("failed to encode JSON response")
		}
	}
}

func (s *Server) respondError(w http.ResponseWriter, status int, message string) {
	s.respondJSON(w, status, map[string]string{"error": message})
}

// decodeJSON reads the request body into dst and returns an error message
// on failure. The caller should return immediately when ok == false.
func (s *Server) decodeJSON(r *http.Request, dst any) (ok bool, errMsg string) {
	if r.Body == nil {
		return false, "request body is empty"
	}
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return false, fmt.Sprintf("invalid JSON: %v", err)
	}
	return true, ""
}

// ---------------------------------------------------------------------------
// Expenses
// ---------------------------------------------------------------------------

func (s *Server) handleGetExpenses(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, s.svc.Expenses())
}

func (s *Server) handleAddExpense(w http.ResponseWriter, r *http.Request) {
	var in models.Expense
	if ok, msg := s.decodeJSON(r, &in); !ok {
		s.respondError(w, http.StatusBadRequest, msg)
		return
	}
	// Amounts are validated here, at the boundary; the store accepts what
	// it is given.
	if in.Amount <= 0 {
		s.respondError(w, http.StatusBadRequest, "amount must be a positive number")
		return
	}

	expense, err := s.svc.AddExpense(r.Context(), in)
	if err != nil {
		s.respondError(w, http.StatusInternalServerError, "failed to store expense")
		return
	}
	s.respondJSON(w, http.StatusCreated, expense)
}

func (s *Server) handleDeleteExpense(w http.ResponseWriter, r *http.Request) {
	if err := s.svc.DeleteExpense(r.Context(), r.PathValue("id")); err != nil {
		s.respondError(w, http.StatusInternalServerError, "failed to delete expense")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ---------------------------------------------------------------------------
// Expense categories
// ---------------------------------------------------------------------------

func (s *Server) handleGetCategories(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, s.svc.ExpenseCategories())
}

func (s *Server) handleAddCategory(w http.ResponseWriter, r *http.Request) {
	var in models.ExpenseCategory
	if ok, msg := s.decodeJSON(r, &in); !ok {
		s.respondError(w, http.StatusBadRequest, msg)
		return
	}
	if in.Name == "" {
		s.respondError(w, http.StatusBadRequest, "name is required")
		return
	}

	category, err := s.svc.AddExpenseCategory(r.Context(), in)
	if err != nil {
		s.respondError(w, http.StatusInternalServerError, "failed to store category")
		return
	}
	s.respondJSON(w, http.StatusCreated, category)
}

func (s *Server) handleUpdateCategory(w http.ResponseWriter, r *http.Request) {
	var in models.ExpenseCategory
	if ok, msg := s.decodeJSON(r, &in); !ok {
		s.respondError(w, http.StatusBadRequest, msg)
		return
	}
	in.ID = r.PathValue("id")

	if err := s.svc.UpdateExpenseCategory(r.Context(), in); err != nil {
		s.respondError(w, http.StatusInternalServerError, "failed to update category")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleDeleteCategory(w http.ResponseWriter, r *http.Request) {
	if err := s.svc.DeleteExpenseCategory(r.Context(), r.PathValue("id")); err != nil {
		s.respondError(w, http.StatusInternalServerError, "failed to delete category")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ---------------------------------------------------------------------------
// Pantry
// ---------------------------------------------------------------------------

// pantryItemView decorates a pantry item with its derived stock level for
// clients, so they never reimplement the classification.
type pantryItemView struct {
	models.PantryItem
	StockLevel models.StockLevel `json:"stockLevel"`
}

func (s *Server) handleGetPantry(w http.ResponseWriter, r *http.Request) {
	items := s.svc.PantryItems()
	views := make([]pantryItemView, len(items))
	for i, item := range items {
		views[i] = pantryItemView{PantryItem: item, StockLevel: item.StockLevel()}
	}
	s.respondJSON(w, http.StatusOK, views)
}

func (s *Server) handleAddPantryItem(w http.ResponseWriter, r *http.Request) {
	var in models.PantryItem
	if ok, msg := s.decodeJSON(r, &in); !ok {
		s.respondError(w, http.StatusBadRequest, msg)
		return
	}
	if in.Name == "" {
		s.respondError(w, http.StatusBadRequest, "name is required")
		return
	}
	if in.MaxQty <= 0 {
		s.respondError(w, http.StatusBadRequest, "maxQty must be above zero")
		return
	}

	item, err := s.svc.AddPantryItem(r.Context(), in)
	if err != nil {
		s.respondError(w, http.StatusInternalServerError, "failed to store pantry item")
		return
	}
	s.respondJSON(w, http.StatusCreated, item)
}

func (s *Server) handleUpdatePantryItem(w http.ResponseWriter, r *http.Request) {
	var in models.PantryItem
	if ok, msg := s.decodeJSON(r, &in); !ok {
		s.respondError(w, http.StatusBadRequest, msg)
		return
	}
	in.ID = r.PathValue("id")

	if err := s.svc.UpdatePantryItem(r.Context(), in); err != nil {
		s.respondError(w, http.StatusInternalServerError, "failed to update pantry item")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleDeletePantryItem(w http.ResponseWriter, r *http.Request) {
	if err := s.svc.DeletePantryItem(r.Context(), r.PathValue("id")); err != nil {
		s.respondError(w, http.StatusInternalServerError, "failed to delete pantry item")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleUsePantryItem(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Amount float64 `json:"amount"`
	}
	if ok, msg := s.decodeJSON(r, &in); !ok {
		s.respondError(w, http.StatusBadRequest, msg)
		return
	}
	if in.Amount <= 0 {
		s.respondError(w, http.StatusBadRequest, "amount must be a positive number")
		return
	}

	if err := s.svc.ConsumePantryItem(r.Context(), r.PathValue("id"), in.Amount); err != nil {
		s.respondError(w, http.StatusInternalServerError, "failed to update pantry item")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleRefillPantryItem(w http.ResponseWriter, r *http.Request) {
	if err := s.svc.RefillPantryItem(r.Context(), r.PathValue("id")); err != nil {
		s.respondError(w, http.StatusInternalServerError, "failed to update pantry item")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ---------------------------------------------------------------------------
// Shopping lists
// ---------------------------------------------------------------------------

func (s *Server) handleGetLists(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, s.svc.ShoppingLists())
}

func (s *Server) handleAddList(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Name string `json:"name"`
		Icon string `json:"icon"`
	}
	if ok, msg := s.decodeJSON(r, &in); !ok {
		s.respondError(w, http.StatusBadRequest, msg)
		return
	}
	if in.Name == "" {
		s.respondError(w, http.StatusBadRequest, "name is required")
		return
	}

	list, err := s.svc.AddShoppingList(r.Context(), in.Name, in.Icon)
	if err != nil {
		s.respondError(w, http.StatusInternalServerError, "failed to store shopping list")
		return
	}
	s.respondJSON(w, http.StatusCreated, list)
}

func (s *Server) handleUpdateList(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Name string `json:"name"`
		Icon string `json:"icon"`
	}
	if ok, msg := s.decodeJSON(r, &in); !ok {
		s.respondError(w, http.StatusBadRequest, msg)
		return
	}

	if err := s.svc.UpdateShoppingList(r.Context(), r.PathValue("id"), in.Name, in.Icon); err != nil {
		s.respondError(w, http.StatusInternalServerError, "failed to update shopping list")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleDeleteList(w http.ResponseWriter, r *http.Request) {
	if err := s.svc.DeleteShoppingList(r.Context(), r.PathValue("id")); err != nil {
		s.respondError(w, http.StatusInternalServerError, "failed to delete shopping list")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleAddListItem(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Name     string `json:"name"`
		Quantity string `json:"quantity"`
	}
	if ok, msg := s.decodeJSON(r, &in); !ok {
		s.respondError(w, http.StatusBadRequest, msg)
		return
	}
	if in.Name == "" {
		s.respondError(w, http.StatusBadRequest, "name is required")
		return
	}

	item, err := s.svc.AddShoppingItem(r.Context(), r.PathValue("id"), in.Name, in.Quantity)
	if err != nil {
		s.respondError(w, http.StatusInternalServerError, "failed to store shopping item")
		return
	}
	if item == nil {
		s.respondError(w, http.StatusNotFound, "shopping list not found")
		return
	}
	s.respondJSON(w, http.StatusCreated, item)
}

func (s *Server) handleToggleListItem(w http.ResponseWriter, r *http.Request) {
	err := s.svc.ToggleShoppingItem(r.Context(), r.PathValue("id"), r.PathValue("itemID"))
	if err != nil {
		s.respondError(w, http.StatusInternalServerError, "failed to toggle shopping item")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleDeleteListItem(w http.ResponseWriter, r *http.Request) {
	err := s.svc.DeleteShoppingItem(r.Context(), r.PathValue("id"), r.PathValue("itemID"))
	if err != nil {
		s.respondError(w, http.StatusInternalServerError, "failed to delete shopping item")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleClearChecked(w http.ResponseWriter, r *http.Request) {
	if err := s.svc.ClearCheckedItems(r.Context(), r.PathValue("id")); err != nil {
		s.respondError(w, http.StatusInternalServerError, "failed to clear checked items")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ---------------------------------------------------------------------------
// Schedule
// ---------------------------------------------------------------------------

func (s *Server) handleGetEvents(w http.ResponseWriter, r *http.Request) {
	if day := r.URL.Query().Get("day"); day != "" {
		s.respondJSON(w, http.StatusOK, s.svc.EventsForDay(day))
		return
	}
	s.respondJSON(w, http.StatusOK, s.svc.ScheduleEvents())
}

func (s *Server) handleAddEvent(w http.ResponseWriter, r *http.Request) {
	var in models.ScheduleEvent
	if ok, msg := s.decodeJSON(r, &in); !ok {
		s.respondError(w, http.StatusBadRequest, msg)
		return
	}
	if in.Title == "" {
		s.respondError(w, http.StatusBadRequest, "title is required")
		return
	}
	if !models.ValidWeekday(in.Day) {
		s.respondError(w, http.StatusBadRequest, "day must be a weekday name")
		return
	}

	event, err := s.svc.AddScheduleEvent(r.Context(), in)
	if err != nil {
		s.respondError(w, http.StatusInternalServerError, "failed to store event")
		return
	}
	s.respondJSON(w, http.StatusCreated, event)
}

func (s *Server) handleUpdateEvent(w http.ResponseWriter, r *http.Request) {
	var in models.ScheduleEvent
	if ok, msg := s.decodeJSON(r, &in); !ok {
		s.respondError(w, http.StatusBadRequest, msg)
		return
	}
	in.ID = r.PathValue("id")
	if in.Day != "" && !models.ValidWeekday(in.Day) {
		s.respondError(w, http.StatusBadRequest, "day must be a weekday name")
		return
	}

	if err := s.svc.UpdateScheduleEvent(r.Context(), in); err != nil {
		s.respondError(w, http.StatusInternalServerError, "failed to update event")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleDeleteEvent(w http.ResponseWriter, r *http.Request) {
	if err := s.svc.DeleteScheduleEvent(r.Context(), r.PathValue("id")); err != nil {
		s.respondError(w, http.StatusInternalServerError, "failed to delete event")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ---------------------------------------------------------------------------
// Reminders
// ---------------------------------------------------------------------------

func (s *Server) handleGetReminders(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, s.svc.Reminders())
}

func (s *Server) handleAddReminder(w http.ResponseWriter, r *http.Request) {
	var in models.Reminder
	if ok, msg := s.decodeJSON(r, &in); !ok {
		s.respondError(w, http.StatusBadRequest, msg)
		return
	}
	if in.Title == "" {
		s.respondError(w, http.StatusBadRequest, "title is required")
		return
	}

	reminder, err := s.svc.AddReminder(r.Context(), in)
	if err != nil {
		s.respondError(w, http.StatusInternalServerError, "failed to store reminder")
		return
	}
	s.respondJSON(w, http.StatusCreated, reminder)
}

func (s *Server) handleToggleReminder(w http.ResponseWriter, r *http.Request) {
	if err := s.svc.ToggleReminder(r.Context(), r.PathValue("id")); err != nil {
		s.respondError(w, http.StatusInternalServerError, "failed to toggle reminder")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleDeleteReminder(w http.ResponseWriter, r *http.Request) {
	if err := s.svc.DeleteReminder(r.Context(), r.PathValue("id")); err != nil {
		s.respondError(w, http.StatusInternalServerError, "failed to delete reminder")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ---------------------------------------------------------------------------
// Data portability
// ---------------------------------------------------------------------------

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	snapshot := s.svc.ExportSnapshot()

	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		s.respondError(w, http.StatusInternalServerError, "failed to encode snapshot")
		return
	}

	filename := fmt.Sprintf("erasmus-backup-%s.json", time.Now().Format("2006-01-02"))
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

func (s *Server) handleImport(w http.ResponseWriter, r *http.Request) {
	// A payload that does not decode is rejected wholesale; nothing of a
	// corrupt backup is ever applied.
	var data models.AppData
	if ok, _ := s.decodeJSON(r, &data); !ok {
		s.respondError(w, http.StatusBadRequest, "invalid backup file")
		return
	}

	if err := s.svc.ImportSnapshot(r.Context(), data); err != nil {
		s.respondError(w, http.StatusInternalServerError, "failed to store imported data")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	if err := s.svc.ResetAll(r.Context()); err != nil {
		s.respondError(w, http.StatusInternalServerError, "failed to reset data")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
