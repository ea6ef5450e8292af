package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/velora-motors/storefront-backend/internal/catalog"
	"github.com/velora-motors/storefront-backend/pkg/db/models"
	pkgerrors "github.com/velora-motors/storefront-backend/pkg/errors"
	"github.com/velora-motors/storefront-backend/pkg/logger"
)

// snapshotSchemaVersion is the serialization contract of the persisted
// payload. Any older version hydrates as an empty cart.
const snapshotSchemaVersion = 1

type snapshotEnvelope struct {
	SchemaVersion int        `json:"schema_version"`
	Items         []LineItem `json:"items"`
}

// LineItem is one configured-vehicle purchase intent in the cart.
type LineItem struct {
	ID            string    `json:"id"`
	VehicleID     string    `json:"vehicle_id"`
	Name          string    `json:"name"`
	BasePrice     int64     `json:"base_price"`
	Year          int       `json:"year"`
	Image         string    `json:"image"`
	Color         string    `json:"color"`
	Interior      string    `json:"interior"`
	InteriorDelta int64     `json:"interior_delta"`
	TotalPrice    int64     `json:"total_price"`
	AddedAt       time.Time `json:"added_at"`
}

// View is the cart as returned to callers: items in insertion order plus
// the derived total.
type View struct {
	Items []LineItem `json:"items"`
	Total int64      `json:"total"`
}

// AddItemInput identifies the vehicle and customization to append. Pricing
// is recomputed from the catalog; the client never supplies a total.
type AddItemInput struct {
	VehicleID string `json:"vehicle_id" validate:"required"`
	Color     string `json:"color" validate:"required"`
	Interior  string `json:"interior" validate:"required"`
}

type optionLookup interface {
	GetVehicle(ctx context.Context, id string) (*catalog.Vehicle, error)
	ColorByName(name string) (*catalog.ColorOption, bool)
	InteriorByName(name string) (*catalog.InteriorOption, bool)
}

// Service owns the per-session cart collection.
type Service interface {
	GetCart(ctx context.Context, sessionID string) (*View, error)
	AddItem(ctx context.Context, sessionID string, input AddItemInput) (*View, error)
	RemoveItem(ctx context.Context, sessionID, itemID string) (*View, error)
	Clear(ctx context.Context, sessionID string) error
}

type service struct {
	store   SnapshotStore
	catalog optionLookup
	logg    *logger.Logger
	now     func() time.Time
}

// NewService builds the cart service over the snapshot store.
func NewService(store SnapshotStore, catalogSvc optionLookup, logg *logger.Logger) (Service, error) {
	if store == nil {
		return nil, fmt.Errorf("snapshot store required")
	}
	if catalogSvc == nil {
		return nil, fmt.Errorf("catalog service required")
	}
	if logg == nil {
		return nil, fmt.Errorf("logger required")
	}
	return &service{
		store:   store,
		catalog: catalogSvc,
		logg:    logg,
		now:     time.Now,
	}, nil
}

// GetCart hydrates the session's cart. A missing, unreadable, or outdated
// snapshot yields an empty cart, never an error.
func (s *service) GetCart(ctx context.Context, sessionID string) (*View, error) {
	items, err := s.hydrate(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return buildView(items), nil
}

// AddItem appends a freshly priced line item and persists the snapshot.
func (s *service) AddItem(ctx context.Context, sessionID string, input AddItemInput) (*View, error) {
	vehicle, err := s.catalog.GetVehicle(ctx, input.VehicleID)
	if err != nil {
		return nil, err
	}
	color, ok := s.catalog.ColorByName(strings.TrimSpace(input.Color))
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "unknown exterior color").
			WithDetails(map[string]string{"color": "not an offered color"})
	}
	interior, ok := s.catalog.InteriorByName(strings.TrimSpace(input.Interior))
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "unknown interior package").
			WithDetails(map[string]string{"interior": "not an offered interior package"})
	}

	items, err := s.hydrate(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	items = append(items, LineItem{
		ID:            uuid.NewString(),
		VehicleID:     vehicle.ID,
		Name:          vehicle.Name,
		BasePrice:     vehicle.BasePrice,
		Year:          vehicle.Year,
		Image:         vehicle.Image,
		Color:         color.Name,
		Interior:      interior.Name,
		InteriorDelta: interior.PriceDelta,
		TotalPrice:    vehicle.BasePrice + interior.PriceDelta,
		AddedAt:       s.now().UTC(),
	})

	if err := s.persist(ctx, sessionID, items); err != nil {
		return nil, err
	}
	return buildView(items), nil
}

// RemoveItem drops the first item with the given id. A missing id leaves
// the cart unchanged and is not an error.
func (s *service) RemoveItem(ctx context.Context, sessionID, itemID string) (*View, error) {
	items, err := s.hydrate(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	removed := false
	kept := make([]LineItem, 0, len(items))
	for _, item := range items {
		if !removed && item.ID == itemID {
			removed = true
			continue
		}
		kept = append(kept, item)
	}

	if removed {
		if err := s.persist(ctx, sessionID, kept); err != nil {
			return nil, err
		}
	}
	return buildView(kept), nil
}

// Clear empties the session's cart.
func (s *service) Clear(ctx context.Context, sessionID string) error {
	if err := s.store.Delete(ctx, sessionID); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete cart snapshot")
	}
	return nil
}

func (s *service) hydrate(ctx context.Context, sessionID string) ([]LineItem, error) {
	if strings.TrimSpace(sessionID) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "session id is required")
	}

	snapshot, err := s.store.Load(ctx, sessionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load cart snapshot")
	}

	var envelope snapshotEnvelope
	if err := json.Unmarshal([]byte(snapshot.Payload), &envelope); err != nil {
		s.logg.Warn(s.logg.WithSessionID(ctx, sessionID), "discarding unreadable cart snapshot")
		return nil, nil
	}
	if envelope.SchemaVersion != snapshotSchemaVersion {
		s.logg.Warn(s.logg.WithSessionID(ctx, sessionID), "discarding cart snapshot with stale schema version")
		return nil, nil
	}
	return envelope.Items, nil
}

func (s *service) persist(ctx context.Context, sessionID string, items []LineItem) error {
	if items == nil {
		items = []LineItem{}
	}
	raw, err := json.Marshal(snapshotEnvelope{
		SchemaVersion: snapshotSchemaVersion,
		Items:         items,
	})
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "encode cart snapshot")
	}

	if err := s.store.Save(ctx, &models.CartSnapshot{
		SessionID: sessionID,
		Version:   snapshotSchemaVersion,
		Payload:   string(raw),
	}); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "save cart snapshot")
	}
	return nil
}

func buildView(items []LineItem) *View {
	if items == nil {
		items = []LineItem{}
	}
	var total int64
	for _, item := range items {
		total += item.TotalPrice
	}
	return &View{Items: items, Total: total}
}
