package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/DuDupedrosa/krt-bank/internal/apperr"
	"github.com/DuDupedrosa/krt-bank/internal/events"
	"github.com/DuDupedrosa/krt-bank/internal/metrics"
	"github.com/DuDupedrosa/krt-bank/internal/models"
	"github.com/DuDupedrosa/krt-bank/internal/account/repository"
	"github.com/DuDupedrosa/krt-bank/internal/validation"
)

// User-facing messages, kept stable because clients display them verbatim.
const (
	MsgAccountNotFound   = "Account not found"
	MsgAlreadyRegistered = "Another user is already registered with this national ID"
	MsgOnlyActiveUpdate  = "Only active accounts can be updated"
	MsgOnlyActiveDelete  = "Only active accounts can be deleted"
	MsgAccountDeleted    = "Account deleted successfully"
)

// Repository is the durable store contract. It is the source of truth for
// every invariant; the cache and the bus are follow-ups.
type Repository interface {
	Create(ctx context.Context, account *models.Account) error
	GetByID(ctx context.Context, id string) (*models.Account, error)
	GetActiveByNationalID(ctx context.Context, nationalID string) (*models.Account, error)
	AnotherActiveHoldsNationalID(ctx context.Context, id, nationalID string) (bool, error)
	Update(ctx context.Context, account *models.Account) error
	List(ctx context.Context, filter string, status *models.AccountStatus, order models.Order, page int) (*models.AccountPage, error)
}

// Cache is the snapshot cache contract. Writes never fail the operation.
type Cache interface {
	Get(ctx context.Context, id string) (*models.Account, bool)
	Save(ctx context.Context, account *models.Account)
	Remove(ctx context.Context, id string)
}

// Publisher hands lifecycle events to the bus.
type Publisher interface {
	Publish(ctx context.Context, routingKey, exchange, kind string, payload any) error
}

// CreateAccountInput is the validated shape for Create.
type CreateAccountInput struct {
	Name       string `json:"name" validate:"required"`
	NationalID string `json:"nationalId" validate:"required,len=11,numeric,cpf"`
}

// UpdateAccountInput is the validated shape for Update.
type UpdateAccountInput struct {
	ID         string `json:"id" validate:"required,uuid4"`
	Name       string `json:"name" validate:"required"`
	NationalID string `json:"nationalId" validate:"required,len=11,numeric,cpf"`
}

// ListAccountsInput carries the optional listing filters.
type ListAccountsInput struct {
	Filter string
	Status *models.AccountStatus
	Order  models.Order
	Page   int
}

// AccountService orchestrates the account lifecycle: validate, persist, cache,
// publish. Persistence always commits first; the cache write and the event
// publish are best-effort follow-ups that never fail a committed operation.
type AccountService struct {
	repo      Repository
	cache     Cache
	publisher Publisher
	metrics   *metrics.Metrics
}

func NewAccountService(repo Repository, cache Cache, publisher Publisher, m *metrics.Metrics) *AccountService {
	return &AccountService{repo: repo, cache: cache, publisher: publisher, metrics: m}
}

// Create registers a new account. The national ID must be valid and not held
// by any ACTIVE account; the durable store's unique index is the final arbiter
// under concurrent creates.
func (s *AccountService) Create(ctx context.Context, input CreateAccountInput) (result *models.Account, err error) {
	const op = "AccountService.Create"
	defer func() { s.metrics.RecordOperation("create", resultLabel(err)) }()

	if fields := validation.Struct(input); fields != nil {
		return nil, &apperr.ValidationError{Fields: fields}
	}

	_, err = s.repo.GetActiveByNationalID(ctx, input.NationalID)
	if err == nil {
		return nil, &apperr.ConflictError{Message: MsgAlreadyRegistered}
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, apperr.Internal(op, err)
	}

	now := time.Now().UTC()
	account := &models.Account{
		ID:         uuid.NewString(),
		Name:       input.Name,
		NationalID: input.NationalID,
		Status:     models.StatusActive,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.repo.Create(ctx, account); err != nil {
		if errors.Is(err, repository.ErrDuplicateNationalID) {
			// A concurrent create won the race between pre-check and commit.
			return nil, &apperr.ConflictError{Message: MsgAlreadyRegistered}
		}
		return nil, apperr.Internal(op, err)
	}

	s.cache.Save(ctx, account)
	s.publish(ctx, events.AccountCreated, account)

	return account, nil
}

// Update changes the name and national ID of an ACTIVE account.
func (s *AccountService) Update(ctx context.Context, input UpdateAccountInput) (result *models.Account, err error) {
	const op = "AccountService.Update"
	defer func() { s.metrics.RecordOperation("update", resultLabel(err)) }()

	if fields := validation.Struct(input); fields != nil {
		return nil, &apperr.ValidationError{Fields: fields}
	}

	// Skip cache repopulation: this path writes its own cache entry below.
	account, err := s.getAccountData(ctx, op, input.ID, false)
	if err != nil {
		return nil, err
	}

	if account.Status != models.StatusActive {
		return nil, &apperr.StateError{Message: MsgOnlyActiveUpdate}
	}

	if input.NationalID != account.NationalID {
		taken, err := s.repo.AnotherActiveHoldsNationalID(ctx, account.ID, input.NationalID)
		if err != nil {
			return nil, apperr.Internal(op, err)
		}
		if taken {
			return nil, &apperr.ConflictError{Message: MsgAlreadyRegistered}
		}
	}

	account.Name = input.Name
	account.NationalID = input.NationalID
	account.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, account); err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicateNationalID):
			return nil, &apperr.ConflictError{Message: MsgAlreadyRegistered}
		case errors.Is(err, repository.ErrNotFound):
			return nil, &apperr.NotFoundError{Message: MsgAccountNotFound}
		default:
			return nil, apperr.Internal(op, err)
		}
	}

	s.cache.Save(ctx, account)
	s.publish(ctx, events.AccountUpdated, account)

	return account, nil
}

// Get returns the account snapshot, cache first, repopulating on a store hit.
func (s *AccountService) Get(ctx context.Context, id string) (result *models.Account, err error) {
	const op = "AccountService.Get"
	defer func() { s.metrics.RecordOperation("get", resultLabel(err)) }()

	return s.getAccountData(ctx, op, id, true)
}

// List pages through accounts. The cache is never consulted here: listings are
// query-shaped, not key-shaped, and only the durable store can answer them.
func (s *AccountService) List(ctx context.Context, input ListAccountsInput) (result *models.AccountPage, err error) {
	const op = "AccountService.List"
	defer func() { s.metrics.RecordOperation("list", resultLabel(err)) }()

	page, err := s.repo.List(ctx, input.Filter, input.Status, input.Order, input.Page)
	if err != nil {
		return nil, apperr.Internal(op, err)
	}
	return page, nil
}

// Delete deactivates an ACTIVE account. The record stays in the store with
// status INACTIVE; its cache entry is evicted, never refreshed.
func (s *AccountService) Delete(ctx context.Context, id string) (err error) {
	const op = "AccountService.Delete"
	defer func() { s.metrics.RecordOperation("delete", resultLabel(err)) }()

	account, err := s.getAccountData(ctx, op, id, false)
	if err != nil {
		return err
	}

	if account.Status == models.StatusInactive {
		return &apperr.StateError{Message: MsgOnlyActiveDelete}
	}

	account.Status = models.StatusInactive
	account.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, account); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return &apperr.NotFoundError{Message: MsgAccountNotFound}
		}
		return apperr.Internal(op, err)
	}

	s.cache.Remove(ctx, id)
	s.publish(ctx, events.AccountDeleted, account)

	return nil
}

// getAccountData is the read-through path: cache first, durable store on a
// miss. Callers about to mutate pass repopulate=false so the store hit is not
// cached immediately before their own cache write.
func (s *AccountService) getAccountData(ctx context.Context, op, id string, repopulate bool) (*models.Account, error) {
	if _, parseErr := uuid.Parse(id); parseErr != nil {
		return nil, &apperr.NotFoundError{Message: MsgAccountNotFound}
	}

	if account, ok := s.cache.Get(ctx, id); ok {
		s.metrics.RecordCacheRead("hit")
		return account, nil
	}
	s.metrics.RecordCacheRead("miss")

	account, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, &apperr.NotFoundError{Message: MsgAccountNotFound}
	}
	if err != nil {
		return nil, apperr.Internal(op, err)
	}

	if repopulate {
		s.cache.Save(ctx, account)
	}
	return account, nil
}

// publish sends the post-mutation snapshot under routingKey. Failure is logged
// and swallowed: the durable write already committed and the caller still gets
// success. There is no retry or redelivery queue for lost events.
func (s *AccountService) publish(ctx context.Context, routingKey string, account *models.Account) {
	err := s.publisher.Publish(ctx, routingKey, events.AccountsExchange, events.ExchangeDirect, account)
	if err != nil {
		log.Printf("Failed to publish %s event for account %s: %v", routingKey, account.ID, err)
	}
}

func resultLabel(err error) string {
	if err == nil {
		return "success"
	}
	var (
		validationErr *apperr.ValidationError
		conflictErr   *apperr.ConflictError
		notFoundErr   *apperr.NotFoundError
		stateErr      *apperr.StateError
	)
	switch {
	case errors.As(err, &validationErr):
		return "validation_error"
	case errors.As(err, &conflictErr):
		return "conflict"
	case errors.As(err, &notFoundErr):
		return "not_found"
	case errors.As(err, &stateErr):
		return "state_error"
	default:
		return "internal_error"
	}
}
