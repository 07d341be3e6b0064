package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/terraincognita07/fertilitrack/internal/models"
	"github.com/terraincognita07/fertilitrack/internal/security"
)

var (
	ErrPartnerInviteForbidden = errors.New("only owners can invite a partner")
	ErrPartnerAcceptForbidden = errors.New("only partner accounts can accept an invite")
	ErrPartnerInviteSelf      = errors.New("cannot accept your own invite")
	ErrPartnerAlreadyLinked   = errors.New("account is already linked to a partner")
)

type PartnerRepository interface {
	Create(ctx context.Context, link *models.PartnerLink) error
	FindPendingByInviteCode(ctx context.Context, code string) (models.PartnerLink, error)
	Accept(ctx context.Context, linkID uint, partnerID uint, acceptedAt time.Time) error
	FindAcceptedForUser(ctx context.Context, userID uint) (models.PartnerLink, bool, error)
}

type PartnerService struct {
	partners PartnerRepository
}

func NewPartnerService(partners PartnerRepository) *PartnerService {
	return &PartnerService{partners: partners}
}

func (service *PartnerService) Invite(ctx context.Context, owner *models.User, now time.Time) (models.PartnerLink, error) {
	if !IsOwnerUser(owner) {
		return models.PartnerLink{}, ErrPartnerInviteForbidden
	}

	code, err := security.InviteCode()
	if err != nil {
		return models.PartnerLink{}, fmt.Errorf("generate invite code: %w", err)
	}
	link := models.PartnerLink{
		OwnerID:    owner.ID,
		InviteCode: code,
		Status:     models.PartnerLinkPending,
		CreatedAt:  now.UTC(),
	}
	if err := service.partners.Create(ctx, &link); err != nil {
		return models.PartnerLink{}, fmt.Errorf("create partner invite: %w", err)
	}
	slog.InfoContext(ctx, "partner invite created", "owner_id", owner.ID, "link_id", link.ID)
	return link, nil
}

// Accept links a partner account to the owner behind code. Both sides may hold at most one
// accepted link.
func (service *PartnerService) Accept(ctx context.Context, user *models.User, codeRaw string, now time.Time) (models.PartnerLink, error) {
	code := strings.ToUpper(strings.TrimSpace(codeRaw))
	if code == "" {
		return models.PartnerLink{}, ErrInviteNotFound
	}

	link, err := service.partners.FindPendingByInviteCode(ctx, code)
	if err != nil {
		return models.PartnerLink{}, notFound(err, ErrInviteNotFound)
	}
	if link.OwnerID == user.ID {
		return models.PartnerLink{}, ErrPartnerInviteSelf
	}
	if !IsPartnerUser(user) {
		return models.PartnerLink{}, ErrPartnerAcceptForbidden
	}
	for _, userID := range []uint{user.ID, link.OwnerID} {
		_, linked, err := service.partners.FindAcceptedForUser(ctx, userID)
		if err != nil {
			return models.PartnerLink{}, fmt.Errorf("load partner link: %w", err)
		}
		if linked {
			return models.PartnerLink{}, ErrPartnerAlreadyLinked
		}
	}

	acceptedAt := now.UTC()
	if err := service.partners.Accept(ctx, link.ID, user.ID, acceptedAt); err != nil {
		return models.PartnerLink{}, notFound(err, ErrInviteNotFound)
	}
	partnerID := user.ID
	link.PartnerID = &partnerID
	link.Status = models.PartnerLinkAccepted
	link.AcceptedAt = &acceptedAt
	slog.InfoContext(ctx, "partner invite accepted", "owner_id", link.OwnerID, "partner_id", user.ID)
	return link, nil
}
