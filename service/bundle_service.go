package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"rightsguard-backend/models"
	"rightsguard-backend/storage"
	"rightsguard-backend/store"

	"github.com/google/uuid"
)

// OfflineBundle is a snapshot of content suitable for disconnected use:
// every card flagged for offline access plus the full legal-aid directory.
type OfflineBundle struct {
	Cards       []models.RightsCard  `json:"cards"`
	Orgs        []models.LegalAidOrg `json:"organizations"`
	GeneratedAt time.Time            `json:"generatedAt"`
}

// BundleService assembles offline bundles and exports them to blob storage.
type BundleService struct {
	store store.ContentStore
	blob  storage.Storage
}

// BundleServiceOption is a functional option for BundleService
type BundleServiceOption func(*BundleService)

// BundleWithContentStore sets the content store
func BundleWithContentStore(cs store.ContentStore) BundleServiceOption {
	return func(s *BundleService) {
		s.store = cs
	}
}

// BundleWithBlobStorage sets the blob storage used for exports
func BundleWithBlobStorage(blob storage.Storage) BundleServiceOption {
	return func(s *BundleService) {
		s.blob = blob
	}
}

// NewBundleService creates a new bundle service
func NewBundleService(opts ...BundleServiceOption) *BundleService {
	s := &BundleService{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// BuildOfflineBundle assembles the snapshot from current store state. A fault
// on either side of the store surfaces as one aggregate error: a bundle
// missing cards or orgs would be indistinguishable from a complete one to an
// offline consumer.
func (s *BundleService) BuildOfflineBundle(ctx context.Context) (*OfflineBundle, error) {
	if s.store == nil {
		return nil, errors.New("content store not set")
	}

	cards, err := s.store.ListCards(ctx)
	if err != nil {
		return nil, fmt.Errorf("offline bundle unavailable: %w", err)
	}

	orgs, err := s.store.ListOrgs(ctx)
	if err != nil {
		return nil, fmt.Errorf("offline bundle unavailable: %w", err)
	}

	offlineCards := make([]models.RightsCard, 0, len(cards))
	for _, card := range cards {
		if card.OfflineAccessEnabled {
			offlineCards = append(offlineCards, card)
		}
	}

	return &OfflineBundle{
		Cards:       offlineCards,
		Orgs:        orgs,
		GeneratedAt: time.Now().UTC(),
	}, nil
}

// ExportBundle builds the bundle, encodes it as JSON and uploads it to blob
// storage. It returns the storage path of the uploaded snapshot.
func (s *BundleService) ExportBundle(ctx context.Context) (string, error) {
	if s.blob == nil {
		return "", errors.New("bundle storage not configured")
	}

	bundle, err := s.BuildOfflineBundle(ctx)
	if err != nil {
		return "", err
	}

	data, err := json.MarshalIndent(bundle, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode bundle: %w", err)
	}

	snapshotID := uuid.New()
	filename := fmt.Sprintf("offline-bundle-%s.json", bundle.GeneratedAt.Format("2006-01-02"))
	path, err := s.blob.Upload(ctx, snapshotID, filename, bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("failed to upload bundle: %w", err)
	}

	return path, nil
}
