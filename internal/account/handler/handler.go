package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/DuDupedrosa/krt-bank/internal/account/service"
	"github.com/DuDupedrosa/krt-bank/internal/middleware"
	"github.com/DuDupedrosa/krt-bank/internal/models"
)

// AccountManager defines the lifecycle operations used by AccountHandler.
type AccountManager interface {
	Create(ctx context.Context, input service.CreateAccountInput) (*models.Account, error)
	Update(ctx context.Context, input service.UpdateAccountInput) (*models.Account, error)
	Get(ctx context.Context, id string) (*models.Account, error)
	List(ctx context.Context, input service.ListAccountsInput) (*models.AccountPage, error)
	Delete(ctx context.Context, id string) error
}

// AccountHandler translates HTTP requests into lifecycle operations and the
// operation outcome back into status codes. All business decisions live in
// the service; this layer only binds, delegates and maps.
type AccountHandler struct {
	accounts AccountManager
}

type CreateAccountRequest struct {
	Name       string `json:"name"`
	NationalID string `json:"nationalId"`
}

type UpdateAccountRequest struct {
	Name       string `json:"name"`
	NationalID string `json:"nationalId"`
}

func NewAccountHandler(accounts AccountManager) *AccountHandler {
	return &AccountHandler{accounts: accounts}
}

// Register mounts the account routes on the given group.
func (h *AccountHandler) Register(g *gin.RouterGroup) {
	g.POST("", h.CreateAccount)
	g.GET("", h.ListAccounts)
	g.GET("/:id", h.GetAccount)
	g.PUT("/:id", h.UpdateAccount)
	g.DELETE("/:id", h.DeleteAccount)
}

func (h *AccountHandler) CreateAccount(c *gin.Context) {
	var req CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.RespondWithError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	account, err := h.accounts.Create(c, service.CreateAccountInput{
		Name:       req.Name,
		NationalID: req.NationalID,
	})
	if err != nil {
		middleware.RespondWithAppError(c, err)
		return
	}

	c.JSON(http.StatusCreated, account)
}

func (h *AccountHandler) UpdateAccount(c *gin.Context) {
	var req UpdateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.RespondWithError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	account, err := h.accounts.Update(c, service.UpdateAccountInput{
		ID:         c.Param("id"),
		Name:       req.Name,
		NationalID: req.NationalID,
	})
	if err != nil {
		middleware.RespondWithAppError(c, err)
		return
	}

	c.JSON(http.StatusOK, account)
}

func (h *AccountHandler) GetAccount(c *gin.Context) {
	account, err := h.accounts.Get(c, c.Param("id"))
	if err != nil {
		middleware.RespondWithAppError(c, err)
		return
	}

	c.JSON(http.StatusOK, account)
}

func (h *AccountHandler) ListAccounts(c *gin.Context) {
	input := service.ListAccountsInput{
		Filter: c.Query("filter"),
		Order:  models.ParseOrder(c.Query("order")),
		Page:   1,
	}

	if raw := c.Query("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil || page < 1 {
			middleware.RespondWithError(c, http.StatusBadRequest, "Invalid page number")
			return
		}
		input.Page = page
	}

	if raw := c.Query("status"); raw != "" {
		status := models.AccountStatus(raw)
		if !status.Valid() {
			middleware.RespondWithError(c, http.StatusBadRequest, "Invalid account status")
			return
		}
		input.Status = &status
	}

	page, err := h.accounts.List(c, input)
	if err != nil {
		middleware.RespondWithAppError(c, err)
		return
	}

	c.JSON(http.StatusOK, page)
}

func (h *AccountHandler) DeleteAccount(c *gin.Context) {
	if err := h.accounts.Delete(c, c.Param("id")); err != nil {
		middleware.RespondWithAppError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": service.MsgAccountDeleted,
	})
}
