// Package session is the view orchestrator: it owns the per-run UI state
// (selected shop, open modal, pending add-shop draft, viewport target,
// last known user position) and wires user actions onto the store, the
// search resolver, the compass engine, and the geolocation source.
package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mesh-intelligence/ramenreality/internal/compass"
	"github.com/mesh-intelligence/ramenreality/internal/geocode"
	"github.com/mesh-intelligence/ramenreality/internal/geoloc"
	"github.com/mesh-intelligence/ramenreality/internal/search"
	"github.com/mesh-intelligence/ramenreality/internal/store"
	"github.com/mesh-intelligence/ramenreality/pkg/types"
)

// Modal identifies the single open overlay. At most one is open at a time.
type Modal string

const (
	ModalNone       Modal = "none"
	ModalShopDetail Modal = "shop-detail"
	ModalCompass    Modal = "compass"
	ModalJournal    Modal = "journal"
	ModalAddShop    Modal = "add-shop"
)

// ErrNoDraft is returned when confirming an add-shop flow that was never
// staged.
var ErrNoDraft = errors.New("no pending add-shop draft")

// ErrNoSelection is returned when submitting a tasting log with no shop
// selected.
var ErrNoSelection = errors.New("no shop selected")

// AddShopDraft is a staged new-shop creation: a location plus optional
// prefilled name and address. Nothing is persisted until the draft is
// confirmed.
type AddShopDraft struct {
	Location types.Location
	Name     string
	Address  string
}

// LogForm carries the user-editable fields of a tasting record. The
// session synthesizes or preserves ID, ShopID, and Date.
type LogForm struct {
	ItemName          string
	Rating            float64
	NoodleHardness    string
	SoupConcentration string
	BackFat           string
	Price             int
	QueueTime         int
	Notes             string
	HasKaedama        bool
}

// Session wires the collaborators together for one run.
type Session struct {
	store    *store.Store
	resolver *search.Resolver
	engine   *compass.Engine
	locator  geoloc.Source
	logger   *zap.Logger

	selectedShopID string
	modal          Modal
	draft          *AddShopDraft
	query          string
	target         *types.Location
	userLocation   *types.Location

	now func() time.Time
}

// New creates a session over the given collaborators.
func New(st *store.Store, resolver *search.Resolver, engine *compass.Engine,
	locator geoloc.Source, logger *zap.Logger) *Session {
	return &Session{
		store:    st,
		resolver: resolver,
		engine:   engine,
		locator:  locator,
		logger:   logger,
		modal:    ModalNone,
		now:      time.Now,
	}
}

// newID generates a UUID v7 string for a fresh record.
func newID() string {
	return uuid.Must(uuid.NewV7()).String()
}

// SelectShop marks the shop selected, centers the viewport on it, and
// opens the shop detail view. Returns ErrNotFound for an unknown ID.
func (s *Session) SelectShop(id string) (types.Shop, error) {
	shop, err := s.store.ShopByID(id)
	if err != nil {
		return types.Shop{}, err
	}
	s.selectedShopID = shop.ID
	loc := shop.Location
	s.target = &loc
	s.modal = ModalShopDetail
	return shop, nil
}

// ClearSelection drops the selected shop and closes the detail view.
func (s *Session) ClearSelection() {
	s.selectedShopID = ""
	if s.modal == ModalShopDetail {
		s.modal = ModalNone
	}
}

// SelectedShop returns the currently selected shop, if any. A selection
// whose shop has been removed from the collection reads as no selection.
func (s *Session) SelectedShop() (types.Shop, bool) {
	if s.selectedShopID == "" {
		return types.Shop{}, false
	}
	shop, err := s.store.ShopByID(s.selectedShopID)
	if err != nil {
		return types.Shop{}, false
	}
	return shop, true
}

// OpenModal opens the given overlay, replacing whichever was open.
func (s *Session) OpenModal(m Modal) { s.modal = m }

// CloseModal closes any open overlay.
func (s *Session) CloseModal() { s.modal = ModalNone }

// Modal returns the currently open overlay.
func (s *Session) Modal() Modal { return s.modal }

// Target returns the pending viewport center, if any.
func (s *Session) Target() (types.Location, bool) {
	if s.target == nil {
		return types.Location{}, false
	}
	return *s.target, true
}

// UserLocation returns the last known user position, if any.
func (s *Session) UserLocation() (types.Location, bool) {
	if s.userLocation == nil {
		return types.Location{}, false
	}
	return *s.userLocation, true
}

// SetQuery feeds the live search box. Local results are recomputed on
// demand; the remote side is debounced inside the resolver.
func (s *Session) SetQuery(query string) {
	s.query = query
	s.resolver.SetQuery(query)
}

// LocalResults returns the saved shops matching the current query.
func (s *Session) LocalResults() ([]types.Shop, error) {
	shops, err := s.store.Shops()
	if err != nil {
		return nil, err
	}
	return search.Local(s.query, shops), nil
}

// RemoteResults returns the latest committed remote search results and
// whether a lookup is still pending.
func (s *Session) RemoteResults() ([]geocode.Result, bool) {
	return s.resolver.Results()
}

// PickLocalResult selects the matched shop and recenters on it, then
// clears the search box.
func (s *Session) PickLocalResult(shopID string) (types.Shop, error) {
	shop, err := s.SelectShop(shopID)
	if err != nil {
		return types.Shop{}, err
	}
	s.SetQuery("")
	return shop, nil
}

// PickRemoteResult stages a new-shop creation prefilled from the remote
// result: its coordinates, its name (falling back to the raw query text
// when the result has none), and its display address. The shop is not
// created until ConfirmAddShop.
func (s *Session) PickRemoteResult(result geocode.Result) (AddShopDraft, error) {
	loc, err := result.Location()
	if err != nil {
		return AddShopDraft{}, fmt.Errorf("unusable search result: %w", err)
	}

	name := result.Name
	if name == "" {
		name = s.query
	}

	s.target = &loc
	s.selectedShopID = ""
	s.draft = &AddShopDraft{Location: loc, Name: name, Address: result.DisplayName}
	s.modal = ModalAddShop
	s.SetQuery("")
	return *s.draft, nil
}

// StageAddShop starts the add-shop flow from a bare map coordinate, as a
// map click does: no prefilled name or address.
func (s *Session) StageAddShop(loc types.Location) {
	s.selectedShopID = ""
	s.draft = &AddShopDraft{Location: loc}
	s.modal = ModalAddShop
}

// Draft returns the pending add-shop draft, if any.
func (s *Session) Draft() (AddShopDraft, bool) {
	if s.draft == nil {
		return AddShopDraft{}, false
	}
	return *s.draft, true
}

// CancelAddShop discards the pending draft.
func (s *Session) CancelAddShop() {
	s.draft = nil
	if s.modal == ModalAddShop {
		s.modal = ModalNone
	}
}

// ConfirmAddShop turns the pending draft into a Shop record with a fresh
// ID and the current timestamp, appends it to the collection, and selects
// it. The name is required; everything else is taken as submitted.
func (s *Session) ConfirmAddShop(name, address string) (types.Shop, error) {
	if s.draft == nil {
		return types.Shop{}, ErrNoDraft
	}
	if name == "" {
		return types.Shop{}, types.ErrInvalidName
	}

	shop := types.Shop{
		ID:        newID(),
		Name:      name,
		Address:   address,
		Location:  s.draft.Location,
		CreatedAt: s.now().UTC(),
	}
	if err := s.store.AppendShop(shop); err != nil {
		return types.Shop{}, err
	}

	s.draft = nil
	s.selectedShopID = shop.ID
	s.modal = ModalShopDetail
	return shop, nil
}

// SubmitLog records a new tasting at the selected shop, synthesizing the
// ID, ShopID, and Date. Rating bounds and option-set membership are the
// input layer's concern; the record is stored as submitted.
func (s *Session) SubmitLog(form LogForm) (types.BowlLog, error) {
	if s.selectedShopID == "" {
		return types.BowlLog{}, ErrNoSelection
	}
	if form.ItemName == "" {
		return types.BowlLog{}, types.ErrInvalidName
	}

	log := types.BowlLog{
		ID:                newID(),
		ShopID:            s.selectedShopID,
		ItemName:          form.ItemName,
		Rating:            form.Rating,
		NoodleHardness:    form.NoodleHardness,
		SoupConcentration: form.SoupConcentration,
		BackFat:           form.BackFat,
		Price:             form.Price,
		QueueTime:         form.QueueTime,
		Notes:             form.Notes,
		Date:              s.now().UTC(),
		HasKaedama:        form.HasKaedama,
	}
	if err := s.store.AppendLog(log); err != nil {
		return types.BowlLog{}, err
	}
	return log, nil
}

// EditLog updates an existing tasting record in place. The stored ID,
// ShopID, and Date are preserved; all other fields take the form values.
func (s *Session) EditLog(logID string, form LogForm) (types.BowlLog, error) {
	if form.ItemName == "" {
		return types.BowlLog{}, types.ErrInvalidName
	}
	return s.store.UpdateLog(types.BowlLog{
		ID:                logID,
		ItemName:          form.ItemName,
		Rating:            form.Rating,
		NoodleHardness:    form.NoodleHardness,
		SoupConcentration: form.SoupConcentration,
		BackFat:           form.BackFat,
		Price:             form.Price,
		QueueTime:         form.QueueTime,
		Notes:             form.Notes,
		HasKaedama:        form.HasKaedama,
	})
}

// SpinCompass opens the compass and starts a spin over the currently
// eligible logs. Engine rules apply: an empty eligible set or an
// in-progress spin rejects the request.
func (s *Session) SpinCompass() error {
	s.modal = ModalCompass
	eligible, err := s.store.EligibleLogs()
	if err != nil {
		return err
	}
	return s.engine.Spin(eligible)
}

// CompassState exposes the engine state for presentation.
func (s *Session) CompassState() string { return s.engine.State() }

// CommitCompass surfaces the settled compass choice, closes the compass,
// and navigates to the chosen shop. If the shop is gone the choice is
// discarded and the compass stays available for another spin.
func (s *Session) CommitCompass() (types.CompassResult, error) {
	result, err := s.engine.Commit(func(id string) (types.Shop, bool) {
		shop, err := s.store.ShopByID(id)
		return shop, err == nil
	})
	if err != nil {
		return types.CompassResult{}, err
	}

	s.modal = ModalNone
	s.selectedShopID = result.Shop.ID
	loc := result.Shop.Location
	s.target = &loc
	return result, nil
}

// JumpToLog navigates from a journal row to its shop. A dangling ShopID is
// a no-op, mirroring the unknown-shop rendering elsewhere.
func (s *Session) JumpToLog(shopID string) {
	shop, err := s.store.ShopByID(shopID)
	if err != nil {
		return
	}
	s.selectedShopID = shop.ID
	loc := shop.Location
	s.target = &loc
}

// Locate performs the one-shot current-position query. On success the
// user location and viewport target are updated; on failure the previous
// fix is kept and the error is returned for user-visible notice.
func (s *Session) Locate(ctx context.Context) (types.Location, error) {
	loc, err := s.locator.Current(ctx)
	if err != nil {
		s.logger.Warn("geolocation failed", zap.Error(err))
		return types.Location{}, err
	}
	s.userLocation = &loc
	target := loc
	s.target = &target
	return loc, nil
}
