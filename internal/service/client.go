package service

import (
	"context"
	"time"

	"github.com/samber/lo"
	"github.com/veloralabs/agencydesk/internal/api/dto"
	"github.com/veloralabs/agencydesk/internal/cache"
	"github.com/veloralabs/agencydesk/internal/domain/client"
	ierr "github.com/veloralabs/agencydesk/internal/errors"
	"github.com/veloralabs/agencydesk/internal/types"
)

const clientCacheExpiry = 5 * time.Minute

// ClientService handles client onboarding and lookup
type ClientService interface {
	CreateClient(ctx context.Context, req dto.CreateClientRequest) (*dto.ClientResponse, error)
	GetClient(ctx context.Context, id string) (*dto.ClientResponse, error)
	GetClientByClientID(ctx context.Context, clientID string) (*dto.ClientResponse, error)
	UpdateClient(ctx context.Context, id string, req dto.UpdateClientRequest) (*dto.ClientResponse, error)
	ListClients(ctx context.Context) (*dto.ListClientsResponse, error)
}

type clientService struct {
	ServiceParams
}

func NewClientService(params ServiceParams) ClientService {
	return &clientService{
		ServiceParams: params,
	}
}

// CreateClient onboards a client directly, without an inquiry. The
// identifier allocation and the insert commit together so a failed
// insert never burns a visible identifier.
func (s *clientService) CreateClient(ctx context.Context, req dto.CreateClientRequest) (*dto.ClientResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Please check the client details").
			Mark(ierr.ErrValidation)
	}

	cl := req.ToClient(ctx)
	now := time.Now().UTC()

	err := s.DB.WithTx(ctx, func(txCtx context.Context) error {
		identifier, err := s.IDGen.NextClientID(txCtx, req.ProjectCode, req.PlatformCode, req.CountryCode, now)
		if err != nil {
			return err
		}
		cl.ClientID = identifier.ID
		cl.SequenceNumber = identifier.Sequence

		return s.ClientRepo.Create(txCtx, cl)
	})
	if err != nil {
		return nil, err
	}

	return &dto.ClientResponse{Client: cl}, nil
}

func (s *clientService) GetClient(ctx context.Context, id string) (*dto.ClientResponse, error) {
	cacheKey := cache.GenerateKey(cache.PrefixClient, id)
	if cached, found := s.Cache.Get(ctx, cacheKey); found {
		if cl, ok := cached.(*client.Client); ok {
			return &dto.ClientResponse{Client: cl}, nil
		}
	}

	cl, err := s.ClientRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	s.Cache.Set(ctx, cacheKey, cl, clientCacheExpiry)
	return &dto.ClientResponse{Client: cl}, nil
}

func (s *clientService) GetClientByClientID(ctx context.Context, clientID string) (*dto.ClientResponse, error) {
	cl, err := s.ClientRepo.GetByClientID(ctx, clientID)
	if err != nil {
		return nil, err
	}
	return &dto.ClientResponse{Client: cl}, nil
}

func (s *clientService) UpdateClient(ctx context.Context, id string, req dto.UpdateClientRequest) (*dto.ClientResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Please check the client details").
			Mark(ierr.ErrValidation)
	}

	cl, err := s.ClientRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		cl.Name = *req.Name
	}
	if req.Email != nil {
		cl.Email = *req.Email
	}
	if req.Phone != nil {
		cl.Phone = *req.Phone
	}
	if req.Company != nil {
		cl.Company = *req.Company
	}
	if req.Metadata != nil {
		cl.Metadata = req.Metadata
	}
	cl.UpdatedAt = time.Now().UTC()
	cl.UpdatedBy = types.GetUserID(ctx)

	if err := s.ClientRepo.Update(ctx, cl); err != nil {
		return nil, err
	}

	s.Cache.Delete(ctx, cache.GenerateKey(cache.PrefixClient, id))
	return &dto.ClientResponse{Client: cl}, nil
}

func (s *clientService) ListClients(ctx context.Context) (*dto.ListClientsResponse, error) {
	clients, err := s.ClientRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	items := lo.Map(clients, func(cl *client.Client, _ int) *dto.ClientResponse {
		return &dto.ClientResponse{Client: cl}
	})

	response := types.NewListResponse(items)
	return &response, nil
}
